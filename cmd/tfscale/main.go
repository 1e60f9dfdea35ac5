// Command tfscale walks a flat block of value 127 through the
// transform-domain merge and prints every stage as a table.
//
//	tfscale blocksize
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/octu0/tfmerge"
	"github.com/octu0/tfmerge/internal/cli"
	"github.com/octu0/tfmerge/internal/report"
	"github.com/octu0/tfmerge/transform"
)

const (
	usage     = "tfscale blocksize"
	flatValue = 127
)

func walkthrough(w io.Writer, size tfmerge.BlockSize, backend transform.Backend) (tfmerge.View[uint8], error) {
	t, err := backend.Transform(size, transform.DCT_DCT)
	if err != nil {
		return tfmerge.View[uint8]{}, errors.WithStack(err)
	}
	n := size.Int()

	block := tfmerge.NewView[int32](n, n)
	block.Fill(flatValue)
	fmt.Fprintln(w, "Pixel Values")
	report.FormatBlock(w, block.Values(), n)
	fmt.Fprintln(w)

	coeffs := tfmerge.NewView[int32](2*n, 2*n)
	for qy := 0; qy < 2*n; qy += n {
		for qx := 0; qx < 2*n; qx += n {
			t.Forward(coeffs.Sub(qx, qy, n, n), block)
		}
	}
	fmt.Fprintln(w, "Transformed Coefficients")
	report.FormatBlock(w, coeffs.Values(), 2*n)
	fmt.Fprintln(w)

	merged := tfmerge.NewView[int32](n, n)
	tfmerge.MergeLowPass(merged, coeffs, n)
	fmt.Fprintln(w, "TF")
	report.FormatBlock(w, merged.Values(), n)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Zigzag: %v\n\n", tfmerge.Zigzag(merged))

	tfmerge.Rescale(merged, backend.DownShift)
	out := tfmerge.NewView[uint8](n, n)
	t.Inverse(out, merged)
	fmt.Fprintln(w, "Reconstructed Pixels")
	report.FormatBlock(w, out.Values(), n)
	fmt.Fprintln(w)
	return out, nil
}

func main() {
	cli.Setup("tfscale")

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
	if _, err := walkthrough(os.Stdout, size, backend); err != nil {
		cli.Fatal("tfscale failed", err)
	}
}
