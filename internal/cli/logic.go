package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/folderstat/internal/folderstat"
)

// run executes one scan-render-save pipeline. The report is printed to
// console first, so a persistence failure never loses the output.
func run(console io.Writer, opts *options) error {
	result, err := folderstat.Run(opts.scan)
	if err != nil {
		return err
	}

	report := folderstat.Render(result)

	fmt.Fprintln(console, report)

	if opts.noSave {
		return nil
	}

	path := opts.output
	if path == "" {
		path = defaultReportPath(result.Root)
	}

	path, err = filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving report path: %w", err)
	}

	// Same bytes as the console output, plus the trailing newline.
	if err := os.WriteFile(path, []byte(report+"\n"), 0o644); err != nil {
		return fmt.Errorf("saving report to %q: %w", path, err)
	}

	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintf(console, "\nReport saved to: %s\n", path)
	}

	return nil
}

// defaultReportPath derives the report file location from the scanned
// root: folder_report_<name>.txt inside the folder itself.
func defaultReportPath(root string) string {
	name := filepath.Base(root)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "root"
	}

	return filepath.Join(root, "folder_report_"+name+".txt")
}
