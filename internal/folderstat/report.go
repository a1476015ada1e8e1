package folderstat

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// bannerWidth is the width of the "=" rules framing the report.
	bannerWidth = 60
	// sectionWidth is the width of the "-" rules under section headers.
	sectionWidth = 40
)

// sizeUnits are the units stepped through by FormatSize. Values past
// the last entry render under PB at whatever magnitude results.
var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count in human-readable form, dividing by
// 1024 through B, KB, MB, GB and TB with two decimal places.
func FormatSize(size int64) string {
	value := float64(size)

	for _, unit := range sizeUnits {
		if value < 1024 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}

		value /= 1024
	}

	return fmt.Sprintf("%.2f PB", value)
}

// Render builds the report text for a scan result. The returned string
// is what both the console and the saved report file receive, byte for
// byte. Render never fails: an all-zero result renders with the
// explicit "(none)" largest-file line and an empty breakdown.
func Render(res *Result) string {
	banner := strings.Repeat("=", bannerWidth)
	rule := strings.Repeat("-", sectionWidth)

	lines := []string{
		banner,
		"FOLDER SCAN REPORT",
		banner,
		"Folder: " + res.Root,
		"",
	}

	if res.Filtered() {
		if len(res.Include) > 0 {
			lines = append(lines, "Include extensions: "+strings.Join(res.Include, ", "))
		}

		if len(res.Exclude) > 0 {
			lines = append(lines, "Exclude extensions: "+strings.Join(res.Exclude, ", "))
		}

		lines = append(lines, fmt.Sprintf("Files skipped by filter: %d", res.Skipped), "")
	}

	lines = append(lines,
		"SUMMARY",
		rule,
		fmt.Sprintf("Total files:  %d", res.TotalFiles),
		fmt.Sprintf("Total size:   %s", FormatSize(res.TotalBytes)),
		"",
	)

	if res.Largest != nil {
		lines = append(lines,
			fmt.Sprintf("Largest file: %s (%s)", filepath.Base(res.Largest.Path), FormatSize(res.Largest.Size)),
			"  Path: "+res.Largest.Path,
		)
	} else {
		lines = append(lines, "Largest file: (none)")
	}

	lines = append(lines, "", "FILE TYPES BREAKDOWN", rule)

	exts := make([]string, 0, len(res.ByExtension))
	for ext := range res.ByExtension {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	for _, ext := range exts {
		stat := res.ByExtension[ext]
		lines = append(lines, fmt.Sprintf("  %-20s  count: %6d  size: %s", ext, stat.Count, FormatSize(stat.Size)))
	}

	lines = append(lines, banner)

	return strings.Join(lines, "\n")
}
