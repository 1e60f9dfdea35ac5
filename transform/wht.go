package transform

import (
	"math/bits"

	"github.com/octu0/tfmerge"
)

// wht4 is the natural (Hadamard) ordered 4-point Walsh-Hadamard transform.
func wht4(in []int32) {
	a0 := in[0] + in[1]
	a1 := in[0] - in[1]
	a2 := in[2] + in[3]
	a3 := in[2] - in[3]

	in[0] = a0 + a2
	in[1] = a1 + a3
	in[2] = a0 - a2
	in[3] = a1 - a3
}

func wht8(in []int32) {
	a0 := in[0] + in[1]
	a1 := in[0] - in[1]
	a2 := in[2] + in[3]
	a3 := in[2] - in[3]
	a4 := in[4] + in[5]
	a5 := in[4] - in[5]
	a6 := in[6] + in[7]
	a7 := in[6] - in[7]

	b0 := a0 + a2
	b1 := a1 + a3
	b2 := a0 - a2
	b3 := a1 - a3
	b4 := a4 + a6
	b5 := a5 + a7
	b6 := a4 - a6
	b7 := a5 - a7

	in[0] = b0 + b4
	in[1] = b1 + b5
	in[2] = b2 + b6
	in[3] = b3 + b7
	in[4] = b0 - b4
	in[5] = b1 - b5
	in[6] = b2 - b6
	in[7] = b3 - b7
}

// fwht is the recursive in-place transform for any power of two length.
func fwht(in []int32) {
	n := len(in)
	if n < 2 {
		return
	}

	half := n / 2

	fwht(in[:half])
	fwht(in[half:])

	for i := 0; i < half; i += 1 {
		a := in[i]
		b := in[i+half]
		in[i] = a + b
		in[i+half] = a - b
	}
}

// whtRow dispatches to the unrolled kernels where one exists.
func whtRow(in []int32) {
	switch len(in) {
	case 4:
		wht4(in)
	case 8:
		wht8(in)
	default:
		fwht(in)
	}
}

// whtTransform is the unnormalized separable 2D WHT: the DC of a flat
// block of value v is n*n*v, and the inverse divides by n*n.
type whtTransform struct {
	n int
}

func (w whtTransform) apply(buf []int32) {
	n := w.n
	for y := 0; y < n; y += 1 {
		whtRow(buf[y*n : (y+1)*n])
	}
	col := make([]int32, n)
	for x := 0; x < n; x += 1 {
		for y := 0; y < n; y += 1 {
			col[y] = buf[(y*n)+x]
		}
		whtRow(col)
		for y := 0; y < n; y += 1 {
			buf[(y*n)+x] = col[y]
		}
	}
}

func (w whtTransform) forward(dst, src tfmerge.View[int32]) {
	n := w.n
	buf := make([]int32, n*n)
	for y := 0; y < n; y += 1 {
		copy(buf[y*n:(y+1)*n], src.Row(y))
	}
	w.apply(buf)
	for y := 0; y < n; y += 1 {
		copy(dst.Row(y), buf[y*n:(y+1)*n])
	}
}

func (w whtTransform) inverse(dst tfmerge.View[uint8], src tfmerge.View[int32]) {
	n := w.n
	buf := make([]int32, n*n)
	for y := 0; y < n; y += 1 {
		copy(buf[y*n:(y+1)*n], src.Row(y))
	}
	w.apply(buf)
	if tfmerge.Debug {
		checkRange(buf, intermediateBits+2)
	}

	shift := 2 * bits.TrailingZeros(uint(n))
	for y := 0; y < n; y += 1 {
		for x := 0; x < n; x += 1 {
			v := int32(roundShift(int64(buf[(y*n)+x]), shift))
			dst.Set(x, y, clipAdd(dst.At(x, y), v))
		}
	}
}
