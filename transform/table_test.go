package transform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/octu0/tfmerge"
)

func TestTableOrthonormal(t *testing.T) {
	tables := NewTables()
	one := float64(int64(1) << (2 * TableBits))
	for _, kind := range []Kind{DCT, ADST} {
		for _, size := range tfmerge.BlockSizes() {
			t.Run(kind.String()+"/"+size.String(), func(tt *testing.T) {
				tbl, err := tables.Table(kind, size)
				require.NoError(tt, err)
				n := tbl.Size()
				require.Equal(tt, size.Int(), n)

				for k := 0; k < n; k += 1 {
					for j := 0; j < n; j += 1 {
						dot := int64(0)
						for i := 0; i < n; i += 1 {
							dot += int64(tbl.At(k, i)) * int64(tbl.At(j, i))
						}
						expect := 0.0
						if k == j {
							expect = one
						}
						assert.InDelta(tt, expect, float64(dot), float64(n)*(1<<TableBits), "k=%d j=%d", k, j)
					}
				}
			})
		}
	}
}

func TestMatrixOrthonormal(t *testing.T) {
	tables := NewTables()
	for _, kind := range []Kind{DCT, ADST} {
		for _, size := range tfmerge.BlockSizes() {
			t.Run(kind.String()+"/"+size.String(), func(tt *testing.T) {
				m, err := tables.Matrix(kind, size)
				require.NoError(tt, err)

				var p mat.Dense
				p.Mul(m, m.T())
				id := mat.NewDiagDense(size.Int(), nil)
				for i := 0; i < size.Int(); i += 1 {
					id.SetDiag(i, 1)
				}
				if mat.EqualApprox(&p, id, 1e-9) != true {
					tt.Errorf("basis is not orthonormal\n%v", mat.Formatted(&p))
				}
			})
		}
	}
}

func TestTableLookup(t *testing.T) {
	tables := NewTables()
	t.Run("unsupported size", func(tt *testing.T) {
		_, err := tables.Table(DCT, tfmerge.BlockSize(64))
		assert.ErrorIs(tt, err, tfmerge.ErrInvalidBlockSize)
		_, err = tables.Matrix(ADST, tfmerge.BlockSize(2))
		assert.ErrorIs(tt, err, tfmerge.ErrInvalidBlockSize)
	})
	t.Run("no wht table", func(tt *testing.T) {
		_, err := tables.Table(WHT, tfmerge.Block4)
		assert.Error(tt, err)
	})
	t.Run("dct4", func(tt *testing.T) {
		tbl := NewDCTTable(4)
		row0 := []int32{tbl.At(0, 0), tbl.At(0, 1), tbl.At(0, 2), tbl.At(0, 3)}
		expect := []int32{8192, 8192, 8192, 8192}
		if cmp.Equal(row0, expect) != true {
			tt.Errorf("%v != %v", row0, expect)
		}
	})
}

func TestTable1D(t *testing.T) {
	for _, tbl := range []*Table{NewDCTTable(8), NewADSTTable(8)} {
		src := []int32{12, 250, 3, 77, 140, 18, 99, 201}
		coef := make([]int32, 8)
		tbl.Forward1D(coef, src, TableBits-3)
		out := make([]int32, 8)
		tbl.Inverse1D(out, coef, TableBits+3)
		for i := range src {
			assert.InDelta(t, src[i], out[i], 1, "i=%d", i)
		}
	}
}

func TestRoundShift(t *testing.T) {
	in := []int64{5, 6, 7, -5, -6, -7}
	expect := []int64{1, 2, 2, -1, -1, -2}
	for i, v := range in {
		if r := roundShift(v, 2); r != expect[i] {
			t.Errorf("roundShift(%d, 2)=%d expect %d", v, r, expect[i])
		}
	}
	if r := roundShift(3, -2); r != 12 {
		t.Errorf("roundShift(3, -2)=%d", r)
	}
	if r := roundShift(3, 0); r != 3 {
		t.Errorf("roundShift(3, 0)=%d", r)
	}
}
