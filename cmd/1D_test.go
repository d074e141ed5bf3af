package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofd/model_problems/FDProblem1D"
)

func TestReadProblem(t *testing.T) {
	var (
		dir    = t.TempDir()
		icFile = filepath.Join(dir, "advection.yaml")
	)
	require.NoError(t, os.WriteFile(icFile, []byte(exampleFile), 0o644))
	{
		p, err := readProblem(icFile)
		require.NoError(t, err)
		assert.Equal(t, 1, p.RequiredInitial())
		assert.Contains(t, p.Info(), "Ready to march")
	}
	{
		_, err := readProblem("")
		assert.ErrorIs(t, err, errNoInput)
		_, err = readProblem(filepath.Join(dir, "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	}
	{
		pngFile := filepath.Join(dir, "advection.png")
		require.NoError(t, Run1D(&Model1D{ICFile: icFile, PNGFile: pngFile}))
		_, err := os.Stat(pngFile)
		assert.NoError(t, err)
	}
	{
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("Domain: [1, 0]\nDx: 0.1\nDt: 0.1\n"), 0o644))
		_, err := readProblem(bad)
		assert.ErrorIs(t, err, FDProblem1D.ErrDomain)
	}
	{
		csvFile := filepath.Join(dir, "study.csv")
		require.NoError(t, RunConvergence(icFile, 2, csvFile))
		data, err := os.ReadFile(csvFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Advection,0.2,")
		assert.ErrorIs(t, RunConvergence("", 2, ""), errNoInput)
	}
}
