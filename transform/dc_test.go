package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octu0/tfmerge"
)

func TestDCOnly(t *testing.T) {
	tables := NewTables()
	b, err := NewBackend(DCT, tables)
	require.NoError(t, err)

	for _, size := range tfmerge.BlockSizes() {
		n := size.Int()
		t.Run(size.String(), func(tt *testing.T) {
			tx, err := b.Transform(size, DCT_DCT)
			require.NoError(tt, err)

			block := tfmerge.NewView[int32](n, n)
			coeffs := tfmerge.NewView[int32](n, n)
			for v := int32(0); v < 256; v += 17 {
				block.Fill(v)
				tx.Forward(coeffs, block)
				dc := DCOnly(block)
				// the 32-point table rounds its DC basis down by about 1e-4
				assert.InDelta(tt, coeffs.At(0, 0), dc, 2+float64(dc)/1000, "v=%d", v)
				assert.Equal(tt, FastDC(v, size), dc, "v=%d", v)
			}
		})
	}
}

func TestFastDC(t *testing.T) {
	assert.Equal(t, int32(127*32), FastDC(127, tfmerge.Block4))
	assert.Equal(t, int32(127*64), FastDC(127, tfmerge.Block8))
	assert.Equal(t, int32(128), FastDC(1, tfmerge.Block32))
	assert.Equal(t, int32(0), FastDC(0, tfmerge.Block16))
}

func TestDCOnlyRounding(t *testing.T) {
	block := tfmerge.WrapView([]int32{1, 0, 0, 0}, 2, 2, 2)
	// 1<<3 / 2 = 4
	assert.Equal(t, int32(4), DCOnly(block))

	neg := tfmerge.WrapView([]int32{-1, 0, 0, 0}, 2, 2, 2)
	assert.Equal(t, int32(-4), DCOnly(neg))
}
