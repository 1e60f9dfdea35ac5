// Command fastdc compares three ways of computing the DC coefficient of a
// flat block for every 8-bit sample value: the full forward transform, a
// DC-only sum, and the closed form v*n<<3.
//
//	fastdc blocksize
//
// Writes results.csv and error.csv to the working directory.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/octu0/tfmerge"
	"github.com/octu0/tfmerge/internal/cli"
	"github.com/octu0/tfmerge/internal/report"
	"github.com/octu0/tfmerge/transform"
)

const (
	usage       = "fastdc blocksize"
	resultsFile = "results.csv"
	errorFile   = "error.csv"
)

type outcome struct {
	results    report.Table
	errors     report.Table
	errFDCT    int64
	errFast    int64
	mismatches int
}

// reconstructs reports whether coeffs inverse transform back to a block of v.
func reconstructs(t tfmerge.Transform, coeffs tfmerge.View[int32], v int32) (bool, uint8) {
	n := t.Size.Int()
	out := tfmerge.NewView[uint8](n, n)
	t.Inverse(out, coeffs)
	for _, p := range out.Values() {
		if int32(p) != v {
			return false, out.At(0, 0)
		}
	}
	return true, out.At(0, 0)
}

func experiment(t tfmerge.Transform) outcome {
	n := t.Size.Int()
	o := outcome{
		results: report.Table{Header: []string{"Pixel", "DCT DC", "DCT_1 DC", "FAST DC", "FAST DC IDCT"}},
		errors:  report.Table{Header: []string{"DCT_DC vs DCT_1_DC Error"}},
	}

	block := tfmerge.NewView[int32](n, n)
	coeffs := tfmerge.NewView[int32](n, n)
	for v := int32(0); v < 256; v += 1 {
		block.Fill(v)

		t.Forward(coeffs, block)
		dctDC := coeffs.At(0, 0)
		if ok, _ := reconstructs(t, coeffs, v); ok != true {
			o.mismatches += 1
			slog.Warn("full transform does not reconstruct", "value", v)
		}

		coeffs.Fill(0)
		fdctDC := transform.DCOnly(block)
		coeffs.Set(0, 0, fdctDC)
		if ok, _ := reconstructs(t, coeffs, v); ok != true {
			o.mismatches += 1
			slog.Warn("dc only does not reconstruct", "value", v)
		}

		coeffs.Fill(0)
		fast := transform.FastDC(v, t.Size)
		coeffs.Set(0, 0, fast)
		ok, fastInv := reconstructs(t, coeffs, v)
		if ok != true {
			o.mismatches += 1
			slog.Warn("fast dc does not reconstruct", "value", v)
		}

		o.results.Append(int64(v), int64(dctDC), int64(fdctDC), int64(fast), int64(fastInv))
		o.errors.Append(abs(int64(dctDC) - int64(fdctDC)))
		o.errFDCT += abs(int64(dctDC) - int64(fdctDC))
		o.errFast += abs(int64(fast) - int64(fdctDC))
	}
	return o
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func main() {
	cli.Setup("fastdc")

	if len(os.Args) != 2 {
		cli.Usage(usage, errors.Errorf("invalid number of arguments: %d", len(os.Args)-1))
	}
	size, err := tfmerge.ParseBlockSize(os.Args[1])
	if err != nil {
		cli.Usage(usage, err)
	}

	backend, err := transform.NewBackend(transform.DCT, transform.NewTables())
	if err != nil {
		cli.Fatal("backend", err)
	}
	t, err := backend.Transform(size, transform.DCT_DCT)
	if err != nil {
		cli.Fatal("transform", err)
	}

	o := experiment(t)
	if err := o.results.Save(resultsFile); err != nil {
		cli.Fatal("save results", err)
	}
	if err := o.errors.Save(errorFile); err != nil {
		cli.Fatal("save errors", err)
	}

	fmt.Printf("Sum of the absolute error between DCT_DC and DCT_1_DC: %d\n", o.errFDCT)
	fmt.Printf("Sum of the absolute error between DCT_1_DC and FAST DC: %d\n", o.errFast)
	slog.Info("dc error", "summary", report.Summarize(o.errors.Column(0)).String(), "mismatches", o.mismatches)
}
