package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/glotscan/glotscan/internal/report"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts changed flags back to their defaults. A package-level
// cobra command keeps flag state across Execute calls, and slice flags
// even append across parses.
func resetFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd.PersistentFlags())
	resetFlags(rootCmd.Flags()) // help and version live here
	resetFlags(scanCmd.Flags())

	// Reset cached config so flags from this invocation take effect.
	globalConfig = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestScanCommandMusicFolderOnly(t *testing.T) {
	musicDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(musicDir, "Премьера.mp3"), nil, 0o600))

	out, err := runCommand(t, "scan", "--source", "music-folder", "--music-dir", musicDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Detected Languages in Music Folder:")
	assert.Contains(t, out, "Cyrillic x 8: Премьера.mp3")
	assert.Contains(t, out, "Operating System:")
}

func TestScanCommandJSONOutput(t *testing.T) {
	out, err := runCommand(t, "scan", "--source", "steam", "--format", "json")
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Len(t, r.Sections, 7)
}

func TestScanCommandWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	_, err := runCommand(t, "scan", "--source", "steam", "--output", path, "--format", "text")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Operating System:")
}

func TestScanCommandCustomTables(t *testing.T) {
	tables := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(tables, []byte("tlds: {zz: xx}\n"), 0o600))

	out, err := runCommand(t, "scan", "--source", "steam", "--tables", tables)
	require.NoError(t, err)
	assert.Contains(t, out, "Steam Language:")
}

func TestRenderReportUnsupportedFormat(t *testing.T) {
	err := renderReport(new(bytes.Buffer), &report.Report{}, "xml")
	assert.Error(t, err)
}
