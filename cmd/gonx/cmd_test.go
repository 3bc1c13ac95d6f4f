package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runGonx(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestStatsCommand(t *testing.T) {
	a := writeSample(t, "a.csv", "0,1\n1,2\n")
	b := writeSample(t, "b.csv", "0,1,0.5\n")

	out, err := runGonx(t, "stats", a, b)
	require.NoError(t, err)
	require.Contains(t, out, "3 nodes, 2 edges, unweighted")
	require.Contains(t, out, "2 nodes, 1 edges, weighted")
}

func TestStatsCommand_MissingFile(t *testing.T) {
	_, err := runGonx(t, "stats", filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	path := writeSample(t, "path.csv", "0,1\n1,2\n")
	out, err := runGonx(t, "check", path)
	require.NoError(t, err)
	require.Contains(t, out, "connected=true, tree=true")

	forest := writeSample(t, "forest.csv", "0,1\n2,3\n")
	out, err = runGonx(t, "check", forest)
	require.NoError(t, err)
	require.Contains(t, out, "connected=false, tree=false")
}

func TestSpanCommand(t *testing.T) {
	path := writeSample(t, "ring.csv", "0,1\n1,2\n2,3\n3,0\n")
	out, err := runGonx(t, "span", "--algo", "dfs", "--start", "2", path)
	require.NoError(t, err)
	require.Contains(t, out, "dfs tree from 2: 4 nodes, 3 edges")
}

func TestSpanCommand_WritesTree(t *testing.T) {
	in := writeSample(t, "ring.csv", "0,1\n1,2\n2,0\n")
	outPath := filepath.Join(t.TempDir(), "tree.csv")
	out, err := runGonx(t, "span", "--start", "0", "--out", outPath, in)
	require.NoError(t, err)
	require.Contains(t, out, "bfs tree from 0: 3 nodes, 2 edges")

	checkOut, err := runGonx(t, "check", outPath)
	require.NoError(t, err)
	require.Contains(t, checkOut, "tree=true")
}

func TestSpanCommand_UnknownAlgo(t *testing.T) {
	path := writeSample(t, "g.csv", "0,1\n")
	_, err := runGonx(t, "span", "--algo", "prim", path)
	require.Error(t, err)
}
