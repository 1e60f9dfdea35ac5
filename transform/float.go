package transform

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/octu0/tfmerge"
)

// floatTransform evaluates the separable transform in float64 with gonum
// and rounds to the same coefficient unit as fixedTransform.
type floatTransform struct {
	n    int
	unit int
	vert *mat.Dense
	horz *mat.Dense
}

func toDense(src tfmerge.View[int32], n int) *mat.Dense {
	data := make([]float64, n*n)
	for y := 0; y < n; y += 1 {
		for x, v := range src.Row(y) {
			data[(y*n)+x] = float64(v)
		}
	}
	return mat.NewDense(n, n, data)
}

// forward computes V * X * H^T.
func (f floatTransform) forward(dst, src tfmerge.View[int32]) {
	x := toDense(src, f.n)

	var tmp, out mat.Dense
	tmp.Mul(f.vert, x)
	out.Mul(&tmp, f.horz.T())

	scale := float64(int64(1) << f.unit)
	for k := 0; k < f.n; k += 1 {
		for j := 0; j < f.n; j += 1 {
			dst.Set(j, k, int32(math.Round(out.At(k, j)*scale)))
		}
	}
}

// inverse computes V^T * Y * H and adds the result onto dst.
func (f floatTransform) inverse(dst tfmerge.View[uint8], src tfmerge.View[int32]) {
	y := toDense(src, f.n)

	var tmp, out mat.Dense
	tmp.Mul(f.vert.T(), y)
	out.Mul(&tmp, f.horz)

	scale := float64(int64(1) << f.unit)
	for i := 0; i < f.n; i += 1 {
		for j := 0; j < f.n; j += 1 {
			v := int32(math.Round(out.At(i, j) / scale))
			dst.Set(j, i, clipAdd(dst.At(j, i), v))
		}
	}
}
