package folderstat

import (
	"path/filepath"
	"strings"
)

// NoExtension is the bucket name for files whose name has no suffix.
const NoExtension = "(no extension)"

// ExtStat represents statistics for a file extension.
type ExtStat struct {
	// Count is the number of files with this extension.
	Count int
	// Size is the cumulative size in bytes.
	Size int64
}

// FileStat represents a single file path and size.
type FileStat struct {
	// Path is the absolute file path.
	Path string
	// Size is the size in bytes.
	Size int64
}

// Options configures a folder scan.
type Options struct {
	// Path is the folder to scan.
	Path string
	// Include lists extensions to include (empty = all).
	Include []string
	// Exclude lists extensions to drop.
	Exclude []string
	// MinSize is the minimum file size in bytes.
	MinSize int64
}

// Result holds aggregate statistics for one folder scan.
// It is frozen once returned by Run.
type Result struct {
	// Root is the absolute path of the scanned folder.
	Root string
	// TotalFiles is the number of files retained after filtering.
	TotalFiles int
	// TotalBytes is the cumulative size of all retained files.
	TotalBytes int64
	// Largest points at the largest retained file (nil when none).
	Largest *FileStat
	// ByExtension maps file extensions to their statistics.
	ByExtension map[string]ExtStat
	// Skipped is the number of files dropped by the extension filter.
	Skipped int
	// ErrorCount is the number of size reads that failed.
	ErrorCount int
	// Include and Exclude echo the normalized filters that were applied.
	Include []string
	Exclude []string
}

// Filtered reports whether any extension filter was active for this scan.
func (r *Result) Filtered() bool {
	return len(r.Include) > 0 || len(r.Exclude) > 0
}

// Ext returns the normalized extension of a file name: the lower-cased
// suffix including the dot, or NoExtension when the name has none.
// Dotfiles like ".gitignore" have no extension segment.
func Ext(name string) string {
	base := filepath.Base(name)

	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return NoExtension
	}

	return strings.ToLower(ext)
}

// NormalizeExt normalizes a user-supplied extension: whitespace and
// quotes stripped, lower-cased, dot-prefixed. Returns "" for blank input.
func NormalizeExt(ext string) string {
	ext = strings.Trim(strings.TrimSpace(ext), "'\"")
	if ext == "" {
		return ""
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return strings.ToLower(ext)
}

// normalizeExts normalizes a list of extensions, dropping blanks.
func normalizeExts(exts []string) []string {
	out := make([]string, 0, len(exts))

	for _, ext := range exts {
		if normalized := NormalizeExt(ext); normalized != "" {
			out = append(out, normalized)
		}
	}

	return out
}

// extSet builds a lookup set from a normalized extension list.
func extSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set[ext] = struct{}{}
	}

	return set
}

// aggregate accumulates statistics during a single walk. Each scan owns
// its aggregate exclusively; the walk is sequential, so no locking.
type aggregate struct {
	include map[string]struct{}
	exclude map[string]struct{}
	result  *Result
}

// newAggregate creates an aggregate for one scan rooted at root.
// The include and exclude lists must already be normalized.
func newAggregate(root string, include, exclude []string) *aggregate {
	return &aggregate{
		include: extSet(include),
		exclude: extSet(exclude),
		result: &Result{
			Root:        root,
			ByExtension: make(map[string]ExtStat),
			Include:     include,
			Exclude:     exclude,
		},
	}
}

// admit reports whether a file with the given extension passes the
// active filters. When both filters are set the file must match the
// include set and not the exclude set.
func (a *aggregate) admit(ext string) bool {
	if len(a.include) > 0 {
		if _, ok := a.include[ext]; !ok {
			return false
		}
	}

	if _, ok := a.exclude[ext]; ok {
		return false
	}

	return true
}

// record folds one file into the aggregate. Filtered files only bump
// the skipped counter. A candidate whose size equals the current
// largest replaces it, so among equal sizes the file visited later in
// traversal order wins.
func (a *aggregate) record(path string, size int64) {
	ext := Ext(path)

	if !a.admit(ext) {
		a.result.Skipped++

		return
	}

	res := a.result
	res.TotalFiles++
	res.TotalBytes += size

	stat := res.ByExtension[ext]
	stat.Count++
	stat.Size += size
	res.ByExtension[ext] = stat

	if res.Largest == nil || size >= res.Largest.Size {
		res.Largest = &FileStat{Path: path, Size: size}
	}
}

// addError counts a failed size read.
func (a *aggregate) addError() {
	a.result.ErrorCount++
}
