package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SolvesFromFileArgument(t *testing.T) {
	dir := t.TempDir()
	inputPath := dir + "/input.txt"
	require.NoError(t, os.WriteFile(inputPath, []byte("1 1\n5 5 0\n"), 0o644))

	outPath := dir + "/out.txt"
	outFile, err := os.Create(outPath)
	require.NoError(t, err)

	code := run([]string{inputPath}, os.Stdin, outFile)
	outFile.Close()

	assert.Equal(t, 0, code)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n1\n4\n")
}

func TestRun_MalformedInputExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	inputPath := dir + "/bad.txt"
	require.NoError(t, os.WriteFile(inputPath, []byte("garbage\n"), 0o644))

	outFile, err := os.Create(dir + "/out.txt")
	require.NoError(t, err)
	defer outFile.Close()

	code := run([]string{inputPath}, os.Stdin, outFile)
	assert.NotEqual(t, 0, code)
}

func TestRun_MissingFileExitsNonZero(t *testing.T) {
	code := run([]string{"/no/such/path"}, os.Stdin, os.Stdout)
	assert.Equal(t, 1, code)
}
