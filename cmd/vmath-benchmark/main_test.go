package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fixkernel/vmath"
)

func fixedKernel() vmath.Kernel[vmath.Backend] {
	return vmath.NewKernel[vmath.Backend](vmath.FixedBackend{})
}

func TestAccuracyWithinDefaultTolerance(t *testing.T) {
	tol := vmath.MustParseFixed("0.0001")
	k := fixedKernel()

	var rows []accuracyRow
	rows = append(rows, sqrtAccuracy(k, tol)...)
	rows = append(rows, trigAccuracy(k, tol)...)
	rows = append(rows, matrixAccuracy(k, tol, 20)...)
	require.NotEmpty(t, rows)
	for _, r := range rows {
		require.True(t, r.Pass, "%s %s: kernel %g ref %g", r.Op, r.Input, r.Kernel, r.Ref)
	}
}

func TestAccuracyRowsCSV(t *testing.T) {
	rows := sqrtAccuracy(fixedKernel(), vmath.One)
	path := filepath.Join(t.TempDir(), "acc.csv")
	require.NoError(t, writeCSV(path, &rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	var back []accuracyRow
	require.NoError(t, gocsv.UnmarshalFile(f, &back))
	require.Equal(t, len(rows), len(back))
	require.Equal(t, rows[0].Input, back[0].Input)
}

func TestMeasureShape(t *testing.T) {
	if testing.Short() {
		t.Skip("runs testing.Benchmark")
	}
	kernels := []vmath.Kernel[vmath.Backend]{fixedKernel()}
	rows := measure(kernels, timedOps[:2])
	require.Len(t, rows, 2)
	require.Equal(t, "fixed/checked", rows[0].Backend)
	require.Equal(t, "mul", rows[0].Op)
	require.Positive(t, rows[0].N)
}
