// vmath-benchmark compares the fixed-point kernel with the float64 reference backend:
// accuracy against math and gonum, then per-operation timing
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/fixkernel/config"
	"github.com/lixenwraith/fixkernel/vmath"
)

var (
	configPath  string
	accuracyCSV string
	timingCSV   string
	matrixCount int
	skipTiming  bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "vmath-benchmark",
	Short: "fixed-point kernel accuracy and speed report",
	Long: `
  Compares the configured kernel against math and gonum references, then times
  each operation on the fixed and float backends. Tolerance comes from the config.
`,
	Args: cobra.NoArgs,
	RunE: runBenchmark,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "kernel config YAML, defaults when empty")
	f.StringVar(&accuracyCSV, "accuracy-csv", "", "write accuracy rows to this CSV file")
	f.StringVar(&timingCSV, "timing-csv", "", "write timing rows to this CSV file")
	f.IntVar(&matrixCount, "matrices", 50, "random matrices for det/inverse checks")
	f.BoolVar(&skipTiming, "skip-timing", false, "only run the accuracy checks")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func writeCSV(path string, rows interface{}) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()
	if err := gocsv.MarshalFile(rows, f); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	slog.Info("wrote csv", "file", path)
	return nil
}

func printAccuracy(rows []accuracyRow) (failed int) {
	fmt.Println("=== Accuracy Verification ===")
	fmt.Println()
	fmt.Printf("%-8s %-14s %18s %18s %12s\n", "Op", "Input", "Kernel", "Reference", "AbsError")
	fmt.Println(strings.Repeat("-", 74))
	for _, r := range rows {
		mark := ""
		if !r.Pass {
			mark = "  FAIL"
			failed++
		}
		fmt.Printf("%-8s %-14s %18.10f %18.10f %12.3e%s\n", r.Op, r.Input, r.Kernel, r.Ref, r.AbsError, mark)
	}
	fmt.Println()
	return failed
}

func printTiming(rows []timingRow) {
	fmt.Println("=== Timing ===")
	fmt.Println()
	fmt.Printf("%-16s %-14s %12s %12s\n", "Backend", "Op", "N", "ns/op")
	fmt.Println(strings.Repeat("-", 57))
	for _, r := range rows {
		fmt.Printf("%-16s %-14s %12d %12.1f\n", r.Backend, r.Op, r.N, r.NsPerOp)
	}
	fmt.Println()
}

func runBenchmark(cmd *cobra.Command, _ []string) error {
	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	slog.Info("kernel config", "config", cfg)

	selected := cfg.Kernel()
	var rows []accuracyRow
	rows = append(rows, sqrtAccuracy(selected, cfg.Tolerance)...)
	rows = append(rows, trigAccuracy(selected, cfg.Tolerance)...)
	rows = append(rows, matrixAccuracy(selected, cfg.Tolerance, matrixCount)...)

	failed := printAccuracy(rows)
	if err := writeCSV(accuracyCSV, &rows); err != nil {
		return err
	}

	if !skipTiming {
		kernels := []vmath.Kernel[vmath.Backend]{
			vmath.NewKernel[vmath.Backend](vmath.FixedBackend{Mode: cfg.Mode()}),
			vmath.NewKernel[vmath.Backend](vmath.FloatBackend{}),
		}
		timing := measure(kernels, timedOps)
		printTiming(timing)
		if err := writeCSV(timingCSV, &timing); err != nil {
			return err
		}
	}

	if failed > 0 {
		return errors.Newf("%d of %d accuracy checks exceed tolerance %s", failed, len(rows), cfg.Tolerance)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("vmath-benchmark failed", "err", err)
		os.Exit(1)
	}
}
