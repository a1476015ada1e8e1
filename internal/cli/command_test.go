package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/folderstat/internal/folderstat"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		opts        options
		wantErr     bool
		wantMinSize int64
	}{
		{
			name: "No filters",
			opts: options{minSize: "0B"},
		},
		{
			name: "Include only",
			opts: options{scan: folderstat.Options{Include: []string{".py"}}},
		},
		{
			name: "Exclude only",
			opts: options{scan: folderstat.Options{Exclude: []string{".log"}}},
		},
		{
			name: "Both filters",
			opts: options{scan: folderstat.Options{
				Include: []string{".py"},
				Exclude: []string{".log"},
			}},
			wantErr: true,
		},
		{
			name:    "Bad min-size",
			opts:    options{minSize: "lots"},
			wantErr: true,
		},
		{
			name:        "SI min-size",
			opts:        options{minSize: "1KB"},
			wantMinSize: 1000,
		},
		{
			name:        "Binary min-size",
			opts:        options{minSize: "1KiB"},
			wantMinSize: 1024,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(&tc.opts)

			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUsage)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantMinSize, tc.opts.scan.MinSize)
		})
	}
}

func TestCommandBothFiltersRejectedBeforeScan(t *testing.T) {
	cmd := NewCommand("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	// A path that does not exist: the usage error must fire first.
	cmd.SetArgs([]string{"/does/not/exist", "--ext", ".py", "--exclude", ".log"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, ErrUsage)
}

func TestCommandInvalidRoot(t *testing.T) {
	cmd := NewCommand("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing"), "--no-save"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, folderstat.ErrNotDirectory)
	assert.NotErrorIs(t, err, ErrUsage)
}

func TestCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("0123456789"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.py"), []byte("01234"), 0o644))

	out := &bytes.Buffer{}
	cmd := NewCommand("test")
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{dir, "--ext", "txt"})

	require.NoError(t, cmd.Execute())

	console := out.String()
	assert.Contains(t, console, "FOLDER SCAN REPORT")
	assert.Contains(t, console, "Include extensions: .txt")
	assert.Contains(t, console, "Total files:  1")
	assert.Contains(t, console, "Files skipped by filter: 1")

	// The persisted report holds the same bytes as the console output.
	name := filepath.Base(dir)
	saved, err := os.ReadFile(filepath.Join(dir, "folder_report_"+name+".txt"))
	require.NoError(t, err)
	assert.Contains(t, console, string(saved))
}

func TestCommandNoSave(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644))

	cmd := NewCommand("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{dir, "--no-save"})

	require.NoError(t, cmd.Execute())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.txt", entries[0].Name())
}
