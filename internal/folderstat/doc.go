// Package folderstat provides recursive folder scanning and reporting.
//
// It walks a directory tree using fastwalk in sequential lexical order,
// aggregates file statistics by extension with optional include/exclude
// filtering, tracks the largest file, and renders the result as a
// fixed-layout text report.
package folderstat
