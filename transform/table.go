package transform

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/octu0/tfmerge"
)

const (
	// TableBits is the fixed-point precision of every basis table.
	TableBits = 14
)

type basisFunc func(k, i, n int) float64

// dctBasis is the orthonormal DCT-II basis.
func dctBasis(k, i, n int) float64 {
	scale := math.Sqrt(2.0 / float64(n))
	if k == 0 {
		scale = math.Sqrt(1.0 / float64(n))
	}
	return scale * math.Cos(math.Pi*float64(k)*float64(2*i+1)/(2.0*float64(n)))
}

// adstBasis is the orthonormal DST-VII basis used as the asymmetric DST.
func adstBasis(k, i, n int) float64 {
	scale := 2.0 / math.Sqrt(float64(2*n+1))
	return scale * math.Sin(math.Pi*float64(2*k+1)*float64(i+1)/float64(2*n+1))
}

func basisOf(kind Kind) basisFunc {
	if kind == ADST {
		return adstBasis
	}
	return dctBasis
}

// Table is an immutable fixed-point basis: row k holds the k-th basis
// vector scaled by 2^TableBits.
type Table struct {
	n    int
	coef []int32
}

func (t *Table) Size() int {
	return t.n
}

// At returns basis vector k at sample i.
func (t *Table) At(k, i int) int32 {
	return t.coef[(k*t.n)+i]
}

// Forward1D computes dst[k] = sum(src[i] * basis[k][i]) >> shift, rounded.
func (t *Table) Forward1D(dst, src []int32, shift int) {
	for k := 0; k < t.n; k += 1 {
		sum := int64(0)
		for i := 0; i < t.n; i += 1 {
			sum += int64(src[i]) * int64(t.At(k, i))
		}
		dst[k] = int32(roundShift(sum, shift))
	}
}

// Inverse1D computes dst[i] = sum(src[k] * basis[k][i]) >> shift, rounded.
func (t *Table) Inverse1D(dst, src []int32, shift int) {
	for i := 0; i < t.n; i += 1 {
		sum := int64(0)
		for k := 0; k < t.n; k += 1 {
			sum += int64(src[k]) * int64(t.At(k, i))
		}
		dst[i] = int32(roundShift(sum, shift))
	}
}

func newTable(n int, basis basisFunc) *Table {
	coef := make([]int32, n*n)
	scale := float64(int64(1) << TableBits)
	for k := 0; k < n; k += 1 {
		for i := 0; i < n; i += 1 {
			coef[(k*n)+i] = int32(math.Round(basis(k, i, n) * scale))
		}
	}
	return &Table{n: n, coef: coef}
}

func NewDCTTable(n int) *Table {
	return newTable(n, dctBasis)
}

func NewADSTTable(n int) *Table {
	return newTable(n, adstBasis)
}

// newBasisMatrix is the float64 counterpart of newTable.
func newBasisMatrix(n int, basis basisFunc) *mat.Dense {
	data := make([]float64, n*n)
	for k := 0; k < n; k += 1 {
		for i := 0; i < n; i += 1 {
			data[(k*n)+i] = basis(k, i, n)
		}
	}
	return mat.NewDense(n, n, data)
}

type tableKey struct {
	kind Kind
	size tfmerge.BlockSize
}

// Tables holds every basis for every supported block size. It is built
// once by NewTables and never mutated afterwards, so it is safe to share.
type Tables struct {
	fixed  map[tableKey]*Table
	floats map[tableKey]*mat.Dense
}

func NewTables() *Tables {
	t := &Tables{
		fixed:  make(map[tableKey]*Table),
		floats: make(map[tableKey]*mat.Dense),
	}
	for _, kind := range []Kind{DCT, ADST} {
		for _, size := range tfmerge.BlockSizes() {
			key := tableKey{kind, size}
			t.fixed[key] = newTable(size.Int(), basisOf(kind))
			t.floats[key] = newBasisMatrix(size.Int(), basisOf(kind))
		}
	}
	return t
}

// Table returns the fixed-point basis of kind (DCT or ADST) at size.
func (t *Tables) Table(kind Kind, size tfmerge.BlockSize) (*Table, error) {
	tbl, ok := t.fixed[tableKey{kind, size}]
	if ok != true {
		return nil, errors.Wrapf(tfmerge.ErrInvalidBlockSize, "%s table %d", kind, size)
	}
	return tbl, nil
}

// Matrix returns the float64 basis of kind (DCT or ADST) at size.
func (t *Tables) Matrix(kind Kind, size tfmerge.BlockSize) (*mat.Dense, error) {
	m, ok := t.floats[tableKey{kind, size}]
	if ok != true {
		return nil, errors.Wrapf(tfmerge.ErrInvalidBlockSize, "%s matrix %d", kind, size)
	}
	return m, nil
}

// roundShift divides by 2^shift rounding half up; shift <= 0 scales up instead.
func roundShift(v int64, shift int) int64 {
	if shift <= 0 {
		return v << -shift
	}
	return (v + (int64(1) << (shift - 1))) >> shift
}
