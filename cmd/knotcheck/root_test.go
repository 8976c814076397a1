package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknot/grid"
	"github.com/katalvlaran/lvknot/internal/fixtures"
	"github.com/katalvlaran/lvknot/knot"
)

// writeDiagram encodes b into a file under t.TempDir.
func writeDiagram(t *testing.T, name string, b grid.Reader) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name+".yaml")
	var buf bytes.Buffer
	require.NoError(t, grid.Encode(&buf, name, b))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func readDiagram(t *testing.T, path string) *grid.Board {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	b, _, err := grid.Decode(f)
	require.NoError(t, err)
	return b
}

func TestValidate(t *testing.T) {
	path := writeDiagram(t, "eight", fixtures.FigureEight(grid.Right))
	out, err := run(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "[success] diagram is valid")
	assert.Contains(t, out, "nodes: 42\ncrossings: 1\nturns: 8\nstraights: 32\n")
}

func TestValidate_Rejected(t *testing.T) {
	b := fixtures.FigureEight(grid.Right)
	b.Delete(grid.Pt(9, 3), grid.Primary)
	path := writeDiagram(t, "open", b)

	out, err := run(t, "validate", path)
	require.ErrorIs(t, err, knot.ErrOpenLoop)
	assert.Contains(t, out, "[error]")
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := run(t, "validate", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve(t *testing.T) {
	path := writeDiagram(t, "eight", fixtures.FigureEightResolvable(grid.Right))
	dst := filepath.Join(t.TempDir(), "resolved.yaml")

	out, err := run(t, "resolve", "--out", dst, path)
	require.NoError(t, err)
	assert.Contains(t, out, "handedness: left\nforward: true\n")

	b := readDiagram(t, dst)
	n := 0
	for _, s := range b.Segments(grid.Secondary) {
		if s.Kind == grid.KindArcMarker {
			n++
		}
	}
	assert.Equal(t, 10, n)
}

func TestResolve_Inconsistent(t *testing.T) {
	path := writeDiagram(t, "fingers", fixtures.FingersContradictory())
	out, err := run(t, "resolve", path)
	require.ErrorIs(t, err, knot.ErrNoAssignment)
	assert.Contains(t, out, "[error]")
	assert.NotContains(t, out, "handedness:")
}

func TestMove(t *testing.T) {
	path := writeDiagram(t, "eight", fixtures.FigureEightResolvable(grid.Right))
	dst := filepath.Join(t.TempDir(), "moved.yaml")

	_, err := run(t, "move", "-v", "-o", dst, path)
	require.NoError(t, err)

	b := readDiagram(t, dst)
	assert.Zero(t, b.Len(grid.Secondary))
	loop, err := knot.Trace(b)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{fixtures.FigureEightAuxCrossing}, loop.Crossings)
}
