// Command txcompare prints the fixed-point DCT next to the float64 DCT for
// a single row, a flat 4x4 block and a random 4x4 block, together with
// both reconstructions.
//
//	txcompare [seed]
package main

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/octu0/tfmerge"
	"github.com/octu0/tfmerge/internal/cli"
	"github.com/octu0/tfmerge/internal/report"
	"github.com/octu0/tfmerge/transform"
)

const (
	usage       = "txcompare [seed]"
	defaultSeed = 1
	flatValue   = 127
)

type blockResult struct {
	Fixed      []int32
	Float      []int32
	FixedRecon []uint8
	FloatRecon []uint8
}

func maxDiff[T int32 | uint8](a, b []T) int32 {
	m := int32(0)
	for i := range a {
		d := int32(a[i]) - int32(b[i])
		if d < 0 {
			d = -d
		}
		m = max(m, d)
	}
	return m
}

// compareRow evaluates the 1D DCT of row with the fixed table and with the
// float64 basis, both on the orthonormal scale.
func compareRow(tables *transform.Tables, size tfmerge.BlockSize, row []int32) ([]int32, []int32, error) {
	tbl, err := tables.Table(transform.DCT, size)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	basis, err := tables.Matrix(transform.DCT, size)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	fixed := make([]int32, len(row))
	tbl.Forward1D(fixed, row, transform.TableBits)

	in := make([]float64, len(row))
	for i, v := range row {
		in[i] = float64(v)
	}
	var out mat.VecDense
	out.MulVec(basis, mat.NewVecDense(len(in), in))
	float := make([]int32, len(row))
	for i := range float {
		float[i] = int32(math.Round(out.AtVec(i)))
	}
	return fixed, float, nil
}

func transformBoth(fixed, float tfmerge.Transform, block tfmerge.View[int32]) blockResult {
	n := fixed.Size.Int()
	fc := tfmerge.NewView[int32](n, n)
	dc := tfmerge.NewView[int32](n, n)
	fixed.Forward(fc, block)
	float.Forward(dc, block)

	fr := tfmerge.NewView[uint8](n, n)
	dr := tfmerge.NewView[uint8](n, n)
	fixed.Inverse(fr, fc)
	float.Inverse(dr, dc)

	return blockResult{
		Fixed:      fc.Values(),
		Float:      dc.Values(),
		FixedRecon: fr.Values(),
		FloatRecon: dr.Values(),
	}
}

func printBlock(w io.Writer, title string, r blockResult, n int) {
	fmt.Fprintf(w, "%s: Fixed-point DCT\n", title)
	report.FormatBlock(w, r.Fixed, n)
	fmt.Fprintf(w, "%s: Float DCT\n", title)
	report.FormatBlock(w, r.Float, n)
	fmt.Fprintf(w, "Max coefficient difference: %d\n", maxDiff(r.Fixed, r.Float))
	fmt.Fprintf(w, "%s: Fixed-point reconstruction\n", title)
	report.FormatBlock(w, r.FixedRecon, n)
	fmt.Fprintf(w, "%s: Float reconstruction\n", title)
	report.FormatBlock(w, r.FloatRecon, n)
	fmt.Fprintf(w, "Max reconstruction difference: %d\n\n", maxDiff(r.FixedRecon, r.FloatRecon))
}

func compare(w io.Writer, rnd *rand.Rand) error {
	size := tfmerge.Block4
	n := size.Int()
	tables := transform.NewTables()

	row := make([]int32, n)
	for i := range row {
		row[i] = int32(rnd.IntN(256))
	}
	fixedRow, floatRow, err := compareRow(tables, size, row)
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Fprintf(w, "Input Row: %v\n", row)
	fmt.Fprintf(w, "Fixed-point DCT: %v\n", fixedRow)
	fmt.Fprintf(w, "Float DCT: %v\n", floatRow)
	fmt.Fprintf(w, "Max difference: %d\n\n", maxDiff(fixedRow, floatRow))

	fixedBackend, err := transform.NewBackend(transform.DCT, tables)
	if err != nil {
		return errors.WithStack(err)
	}
	floatBackend, err := transform.NewBackend(transform.Float, tables)
	if err != nil {
		return errors.WithStack(err)
	}
	fixed, err := fixedBackend.Transform(size, transform.DCT_DCT)
	if err != nil {
		return errors.WithStack(err)
	}
	float, err := floatBackend.Transform(size, transform.DCT_DCT)
	if err != nil {
		return errors.WithStack(err)
	}

	flat := tfmerge.NewView[int32](n, n)
	flat.Fill(flatValue)
	printBlock(w, "Flat Block", transformBoth(fixed, float, flat), n)

	random := tfmerge.NewView[int32](n, n)
	for y := 0; y < n; y += 1 {
		for x := 0; x < n; x += 1 {
			random.Set(x, y, int32(rnd.IntN(256)))
		}
	}
	printBlock(w, "Random Block", transformBoth(fixed, float, random), n)
	return nil
}

func main() {
	cli.Setup("txcompare")

	seed := uint64(defaultSeed)
	switch len(os.Args) {
	case 1:
	case 2:
		s, err := strconv.ParseUint(os.Args[1], 10, 64)
		if err != nil {
			cli.Usage(usage, errors.Wrapf(err, "seed %q", os.Args[1]))
		}
		seed = s
	default:
		cli.Usage(usage, errors.Errorf("invalid number of arguments: %d", len(os.Args)-1))
	}

	if err := compare(os.Stdout, rand.New(rand.NewPCG(seed, seed))); err != nil {
		cli.Fatal("txcompare failed", err)
	}
}
