package folderstat

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charlievieth/fastwalk"
)

// ErrNotDirectory is returned by Run when the supplied path does not
// resolve to an existing directory.
var ErrNotDirectory = errors.New("not a directory")

// Run performs one folder scan and returns the aggregated statistics.
// It walks the tree at opts.Path sequentially in lexical order, filters
// files by extension, and collects counts, sizes and the largest file.
//
// The scan never mutates the filesystem and holds no state between
// calls. Per-entry failures are swallowed: a file whose size cannot be
// read is still counted, contributing zero bytes.
func Run(opts Options) (*Result, error) {
	if opts.Path == "" {
		opts.Path = "."
	}

	root, err := filepath.Abs(filepath.Clean(opts.Path))
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	// validate path exists and is a directory before touching anything else
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrNotDirectory, opts.Path)
	}

	agg := newAggregate(root, normalizeExts(opts.Include), normalizeExts(opts.Exclude))

	// One worker plus lexical sorting keeps the traversal sequential and
	// deterministic, which the largest-file tie-break depends on.
	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
		Sort:       fastwalk.SortLexical,
	}

	walkErr := fastwalk.Walk(conf, root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // Silently skip unreadable entries
		}

		if entry.IsDir() || !entry.Type().IsRegular() {
			return nil
		}

		var size int64

		if fileInfo, err := entry.Info(); err != nil {
			agg.addError()
		} else {
			size = fileInfo.Size()
		}

		if size < opts.MinSize {
			return nil
		}

		agg.record(path, size)

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking %q: %w", root, walkErr)
	}

	return agg.result, nil
}
