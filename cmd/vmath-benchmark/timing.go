package main

import (
	"log/slog"
	"testing"

	"github.com/lixenwraith/fixkernel/vmath"
)

// timingRow is one backend/operation measurement
type timingRow struct {
	Backend string  `csv:"backend"`
	Op      string  `csv:"op"`
	N       int     `csv:"iterations"`
	NsPerOp float64 `csv:"ns_per_op"`
}

func (r timingRow) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", r.Backend),
		slog.String("op", r.Op),
		slog.Int("n", r.N),
		slog.Float64("ns_per_op", r.NsPerOp),
	)
}

type timedOp struct {
	name string
	run  func(k vmath.Kernel[vmath.Backend], i int)
}

var (
	benchA   = vmath.FromFloat(123.456)
	benchB   = vmath.FromFloat(-7.25)
	benchMat = func() vmath.Mat4 {
		m, err := vmath.TRS(vmath.V3Int(1, 2, 3), vmath.V3Int(10, 20, 30), vmath.V3Int(2, 2, 2))
		if err != nil {
			panic(err)
		}
		return m
	}()
	benchVec = vmath.V3(vmath.Half, vmath.FromInt(-3), vmath.FromInt(9))
)

var timedOps = []timedOp{
	{"mul", func(k vmath.Kernel[vmath.Backend], i int) { _, _ = k.B.Mul(benchA+vmath.Fixed(i), benchB) }},
	{"div", func(k vmath.Kernel[vmath.Backend], i int) { _, _ = k.B.Div(benchA+vmath.Fixed(i), benchB) }},
	{"sqrt", func(k vmath.Kernel[vmath.Backend], i int) { _, _ = k.B.Sqrt(benchA + vmath.Fixed(i)) }},
	{"sincos", func(k vmath.Kernel[vmath.Backend], i int) { _, _ = k.B.SinCos(vmath.Fixed(i) << 20) }},
	{"normalize3", func(k vmath.Kernel[vmath.Backend], i int) { _, _ = k.Normalize3(benchVec) }},
	{"mat4.mul", func(k vmath.Kernel[vmath.Backend], i int) { _, _ = k.MatMul(benchMat, benchMat) }},
	{"mat4.inverse", func(k vmath.Kernel[vmath.Backend], i int) { _, _ = k.Inverse(benchMat) }},
	{"trs", func(k vmath.Kernel[vmath.Backend], i int) {
		_, _ = k.TRS(benchVec, vmath.V3Int(int32(i%360), 20, 30), vmath.V3Int(1, 1, 1))
	}},
}

// measure runs every op against every kernel with testing.Benchmark
func measure(kernels []vmath.Kernel[vmath.Backend], ops []timedOp) []timingRow {
	var rows []timingRow
	for _, k := range kernels {
		for _, op := range ops {
			res := testing.Benchmark(func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					op.run(k, i)
				}
			})
			row := timingRow{Backend: k.B.Name(), Op: op.name, N: res.N, NsPerOp: float64(res.NsPerOp())}
			slog.Debug("measured", "row", row)
			rows = append(rows, row)
		}
	}
	return rows
}
