package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octu0/tfmerge"
	"github.com/octu0/tfmerge/transform"
)

func TestExperiment(t *testing.T) {
	backend, err := transform.NewBackend(transform.DCT, nil)
	require.NoError(t, err)

	t.Run("4", func(tt *testing.T) {
		tx, err := backend.Transform(tfmerge.Block4, transform.DCT_DCT)
		require.NoError(tt, err)

		o := experiment(tx)
		assert.Len(tt, o.results.Rows, 256)
		assert.Len(tt, o.errors.Rows, 256)
		assert.Equal(tt, []int64{127, 4064, 4064, 4064, 127}, o.results.Rows[127])
		assert.Equal(tt, int64(0), o.errFDCT)
		assert.Equal(tt, int64(0), o.errFast)
		assert.Equal(tt, 0, o.mismatches)
	})
	t.Run("8", func(tt *testing.T) {
		tx, err := backend.Transform(tfmerge.Block8, transform.DCT_DCT)
		require.NoError(tt, err)

		o := experiment(tx)
		row := o.results.Rows[127]
		assert.Equal(tt, int64(127), row[0])
		assert.Equal(tt, int64(8128), row[2])
		assert.Equal(tt, int64(8128), row[3])
		assert.InDelta(tt, 8128, row[1], 2)
		assert.Equal(tt, int64(0), o.errFast)
	})
}

func TestAbs(t *testing.T) {
	assert.Equal(t, int64(3), abs(-3))
	assert.Equal(t, int64(3), abs(3))
	assert.Equal(t, int64(0), abs(0))
}
