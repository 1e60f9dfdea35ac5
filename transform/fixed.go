package transform

import (
	"fmt"

	"github.com/octu0/tfmerge"
)

const (
	// intermediateBits bounds every value between the two 1D passes.
	intermediateBits = 24
)

// UnitShift is the number of fractional bits coefficients carry over the
// orthonormal scale. The 32x32 transform keeps one bit less headroom.
func UnitShift(size tfmerge.BlockSize) int {
	if size == tfmerge.Block32 {
		return 2
	}
	return 3
}

func checkRange(vals []int32, bits int) {
	limit := int32(1) << (bits - 1)
	for i, v := range vals {
		if v < -limit || limit <= v {
			panic(fmt.Sprintf("transform: intermediate[%d]=%d exceeds %d bits", i, v, bits))
		}
	}
}

// fixedTransform is a separable 2D transform over integer basis tables.
// It keeps no scratch state, so a value can be shared between goroutines.
type fixedTransform struct {
	n    int
	unit int
	vert *Table
	horz *Table
}

func (f fixedTransform) forward(dst, src tfmerge.View[int32]) {
	n := f.n
	tmp := make([]int32, n*n)
	for y := 0; y < n; y += 1 {
		f.horz.Forward1D(tmp[y*n:(y+1)*n], src.Row(y), TableBits-f.unit)
	}
	if tfmerge.Debug {
		checkRange(tmp, intermediateBits)
	}

	col := make([]int32, n)
	out := make([]int32, n)
	for x := 0; x < n; x += 1 {
		for y := 0; y < n; y += 1 {
			col[y] = tmp[(y*n)+x]
		}
		f.vert.Forward1D(out, col, TableBits)
		for k := 0; k < n; k += 1 {
			dst.Set(x, k, out[k])
		}
	}
}

func (f fixedTransform) inverse(dst tfmerge.View[uint8], src tfmerge.View[int32]) {
	n := f.n
	tmp := make([]int32, n*n)
	for k := 0; k < n; k += 1 {
		f.horz.Inverse1D(tmp[k*n:(k+1)*n], src.Row(k), TableBits)
	}
	if tfmerge.Debug {
		checkRange(tmp, intermediateBits)
	}

	col := make([]int32, n)
	out := make([]int32, n)
	for x := 0; x < n; x += 1 {
		for k := 0; k < n; k += 1 {
			col[k] = tmp[(k*n)+x]
		}
		f.vert.Inverse1D(out, col, TableBits+f.unit)
		for y := 0; y < n; y += 1 {
			dst.Set(x, y, clipAdd(dst.At(x, y), out[y]))
		}
	}
}

func clipAdd(p uint8, delta int32) uint8 {
	return tfmerge.ClipU8(int32(p) + delta)
}
