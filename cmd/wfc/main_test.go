package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcollapse/internal/config"
	"gridcollapse/internal/sims/wfc"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, args)
	return out.String(), errOut.String(), err
}

func TestRunPrintsSnapshotPerStep(t *testing.T) {
	out, logs, err := runCmd(t, "-size", "3", "-seed", "4")
	require.NoError(t, err)

	g := wfc.NewWithConfig(wfc.Config{Size: 3, Seed: 4})
	stats := g.Run(nil)

	snapshots := strings.Split(strings.TrimSuffix(out, "\n\n"), "\n\n")
	assert.Len(t, snapshots, stats.Steps)
	assert.Equal(t, g.String(), snapshots[len(snapshots)-1]+"\n\n")
	assert.Contains(t, logs, "collapse finished")
}

func TestRunQuietFinal(t *testing.T) {
	out, _, err := runCmd(t, "-size", "4", "-seed", "9", "-quiet", "-final")
	require.NoError(t, err)

	g := wfc.NewWithConfig(wfc.Config{Size: 4, Seed: 9})
	g.Run(nil)
	assert.Equal(t, g.String(), out)
}

func TestRunHelp(t *testing.T) {
	out, logs, err := runCmd(t, "-h")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, logs, "Usage:")
}

func TestRunRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		args []string
		err  error
	}{
		{"Propagation", []string{"-propagation", "bfs"}, config.ErrUnknownPropagation},
		{"Size", []string{"-size", "0"}, config.ErrInvalidSize},
		{"LogFormat", []string{"-log-format", "xml"}, config.ErrUnknownLogFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runCmd(t, tc.args...)
			require.ErrorIs(t, err, tc.err)
			var ue usageError
			assert.ErrorAs(t, err, &ue)
		})
	}

	_, _, err := runCmd(t, "extra")
	require.Error(t, err)
	_, _, err = runCmd(t, "-pin", "1,1")
	require.Error(t, err)
	_, _, err = runCmd(t, "-size", "2", "-pin", "5,5=1")
	require.Error(t, err)
}

func TestRunConfigFileWithOverride(t *testing.T) {
	src := `
grid {
  size        = 5
  seed        = 3
  propagation = "worklist"
}
log {
  format = "json"
}
output {
  dump  = false
  final = true
}
`
	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	out, logs, err := runCmd(t, "-config", path, "-seed", "8")
	require.NoError(t, err)

	g := wfc.NewWithConfig(wfc.Config{Size: 5, Seed: 8, Propagation: wfc.PropagateWorklist})
	g.Run(nil)
	assert.Equal(t, g.String(), out)
	assert.Contains(t, logs, `"msg":"collapse finished"`)
}

func TestRunPinsAndParams(t *testing.T) {
	out, _, err := runCmd(t, "-size", "3", "-quiet", "-final", "-params", "-pin", "1,1=4")
	require.NoError(t, err)
	assert.Contains(t, out, "Grid:\n  size = 3\n")

	// Row 1 of the final grid carries the pinned glyph in its centre.
	lines := strings.Split(out, "\n")
	rows := []string{}
	for _, l := range lines {
		if strings.Contains(l, " | ") {
			rows = append(rows, l)
		}
	}
	require.Len(t, rows, 3)
	glyphs := rows[1][strings.Index(rows[1], " | ")+3:]
	assert.Equal(t, byte('4'), glyphs[1])
}

func TestParsePin(t *testing.T) {
	at, tt, err := parsePin(" 2, 3 = 8")
	require.NoError(t, err)
	assert.Equal(t, wfc.Coord{X: 2, Y: 3}, at)
	assert.Equal(t, 7, tt)

	for _, bad := range []string{"1=2", "a,b=3", "1,1=9", "1,1=0", "1,1"} {
		_, _, err := parsePin(bad)
		assert.Errorf(t, err, "pin %q", bad)
	}
}
