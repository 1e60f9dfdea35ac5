package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octu0/tfmerge"
)

func TestConverter(t *testing.T) {
	tables := NewTables()

	t.Run("identity", func(tt *testing.T) {
		c, err := NewConverter(tables, DCT, DCT, tfmerge.Block8)
		require.NoError(tt, err)
		for k := 0; k < 8; k += 1 {
			for j := 0; j < 8; j += 1 {
				expect := 0.0
				if k == j {
					expect = 1 << TableBits
				}
				assert.InDelta(tt, expect, c.At(k, j), 1, "k=%d j=%d", k, j)
			}
		}
	})
	for _, size := range tfmerge.BlockSizes() {
		n := size.Int()
		t.Run("adst to dct/"+size.String(), func(tt *testing.T) {
			adst, err := tables.Table(ADST, size)
			require.NoError(tt, err)
			dct, err := tables.Table(DCT, size)
			require.NoError(tt, err)
			c, err := NewConverter(tables, ADST, DCT, size)
			require.NoError(tt, err)

			src := make([]int32, n)
			for i := range src {
				src[i] = int32((i*53 + 17) % 256)
			}
			a := make([]int32, n)
			d := make([]int32, n)
			out := make([]int32, n)
			adst.Forward1D(a, src, TableBits-3)
			dct.Forward1D(d, src, TableBits-3)
			c.Apply(out, a)
			for k := range d {
				assert.InDelta(tt, d[k], out[k], 2+float64(n)/8, "k=%d", k)
			}
		})
	}
	t.Run("unsupported", func(tt *testing.T) {
		_, err := NewConverter(tables, WHT, DCT, tfmerge.Block4)
		assert.Error(tt, err)
		_, err = NewConverter(tables, DCT, Float, tfmerge.Block4)
		assert.Error(tt, err)
		_, err = NewConverter(tables, ADST, DCT, tfmerge.BlockSize(5))
		assert.ErrorIs(tt, err, tfmerge.ErrInvalidBlockSize)
	})
}
