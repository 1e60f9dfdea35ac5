package transform

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/octu0/tfmerge"
)

// Converter maps 1D coefficients of one basis directly onto another
// without going back to the sample domain: out = To * From^T * in.
type Converter struct {
	n    int
	coef []int32
}

// NewConverter builds the fixed-point conversion matrix from kind from to
// kind to; both must be DCT or ADST.
func NewConverter(tables *Tables, from, to Kind, size tfmerge.BlockSize) (*Converter, error) {
	if from == WHT || from == Float || to == WHT || to == Float {
		return nil, errors.Errorf("conversion supports dct and adst only: %s -> %s", from, to)
	}
	src, err := tables.Matrix(from, size)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	dst, err := tables.Matrix(to, size)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var m mat.Dense
	m.Mul(dst, src.T())

	n := size.Int()
	scale := float64(int64(1) << TableBits)
	coef := make([]int32, n*n)
	for k := 0; k < n; k += 1 {
		for j := 0; j < n; j += 1 {
			coef[(k*n)+j] = int32(math.Round(m.At(k, j) * scale))
		}
	}
	return &Converter{n: n, coef: coef}, nil
}

func (c *Converter) At(k, j int) int32 {
	return c.coef[(c.n*k)+j]
}

// Apply converts the row in src into dst.
func (c *Converter) Apply(dst, src []int32) {
	for k := 0; k < c.n; k += 1 {
		sum := int64(0)
		for j := 0; j < c.n; j += 1 {
			sum += int64(src[j]) * int64(c.At(k, j))
		}
		dst[k] = int32(roundShift(sum, TableBits))
	}
}
