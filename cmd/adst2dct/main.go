// Command adst2dct converts the 4-point ADST of a random row straight into
// DCT coefficients and prints it next to the directly computed DCT.
//
//	adst2dct [seed]
package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/octu0/tfmerge"
	"github.com/octu0/tfmerge/internal/cli"
	"github.com/octu0/tfmerge/transform"
)

const (
	usage       = "adst2dct [seed]"
	defaultSeed = 1
)

type rowResult struct {
	Input     []int32
	ADST      []int32
	DCT       []int32
	Converted []int32
}

// maxDiff is the largest absolute difference between DCT and Converted.
func (r rowResult) maxDiff() int32 {
	m := int32(0)
	for i := range r.DCT {
		d := r.DCT[i] - r.Converted[i]
		if d < 0 {
			d = -d
		}
		m = max(m, d)
	}
	return m
}

func convertRow(tables *transform.Tables, size tfmerge.BlockSize, input []int32) (rowResult, error) {
	adst, err := tables.Table(transform.ADST, size)
	if err != nil {
		return rowResult{}, errors.WithStack(err)
	}
	dct, err := tables.Table(transform.DCT, size)
	if err != nil {
		return rowResult{}, errors.WithStack(err)
	}
	conv, err := transform.NewConverter(tables, transform.ADST, transform.DCT, size)
	if err != nil {
		return rowResult{}, errors.WithStack(err)
	}

	n := size.Int()
	r := rowResult{
		Input:     input,
		ADST:      make([]int32, n),
		DCT:       make([]int32, n),
		Converted: make([]int32, n),
	}
	adst.Forward1D(r.ADST, input, transform.TableBits)
	dct.Forward1D(r.DCT, input, transform.TableBits)
	conv.Apply(r.Converted, r.ADST)
	return r, nil
}

func randomRow(rnd *rand.Rand, n int) []int32 {
	row := make([]int32, n)
	for i := range row {
		row[i] = int32(rnd.IntN(256))
	}
	return row
}

func printRow(w io.Writer, r rowResult) {
	fmt.Fprintf(w, "Input Row: %v\n", r.Input)
	fmt.Fprintf(w, "ADST Coefficients: %v\n", r.ADST)
	fmt.Fprintf(w, "DCT Coefficients: %v\n", r.DCT)
	fmt.Fprintf(w, "Converted DCT Coefficients: %v\n", r.Converted)
	fmt.Fprintf(w, "Max Difference: %d\n", r.maxDiff())
}

func main() {
	cli.Setup("adst2dct")

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

	rnd := rand.New(rand.NewPCG(seed, seed))
	r, err := convertRow(transform.NewTables(), tfmerge.Block4, randomRow(rnd, tfmerge.Block4.Int()))
	if err != nil {
		cli.Fatal("convert", err)
	}
	printRow(os.Stdout, r)
}
