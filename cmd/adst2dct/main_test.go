package main

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octu0/tfmerge"
	"github.com/octu0/tfmerge/transform"
)

func TestConvertRow(t *testing.T) {
	tables := transform.NewTables()

	t.Run("fixed row", func(tt *testing.T) {
		r, err := convertRow(tables, tfmerge.Block4, []int32{10, 200, 30, 90})
		require.NoError(tt, err)
		assert.Len(tt, r.ADST, 4)
		assert.LessOrEqual(tt, r.maxDiff(), int32(2))
	})
	t.Run("random rows", func(tt *testing.T) {
		rnd := rand.New(rand.NewPCG(1, 1))
		for i := 0; i < 100; i += 1 {
			r, err := convertRow(tables, tfmerge.Block4, randomRow(rnd, 4))
			require.NoError(tt, err)
			assert.LessOrEqual(tt, r.maxDiff(), int32(2), "%v", r.Input)
		}
	})
	t.Run("print", func(tt *testing.T) {
		r, err := convertRow(tables, tfmerge.Block4, []int32{1, 2, 3, 4})
		require.NoError(tt, err)
		buf := bytes.NewBuffer(nil)
		printRow(buf, r)
		assert.True(tt, strings.HasPrefix(buf.String(), "Input Row: [1 2 3 4]\n"))
		assert.Contains(tt, buf.String(), "Converted DCT Coefficients:")
	})
}
