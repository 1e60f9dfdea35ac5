package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octu0/tfmerge"
	"github.com/octu0/tfmerge/transform"
)

func TestWalkthrough(t *testing.T) {
	tables := transform.NewTables()
	for _, kind := range []transform.Kind{transform.DCT, transform.Float, transform.WHT} {
		backend, err := transform.NewBackend(kind, tables)
		require.NoError(t, err)
		for _, size := range tfmerge.BlockSizes() {
			t.Run(kind.String()+"/"+size.String(), func(tt *testing.T) {
				buf := bytes.NewBuffer(nil)
				out, err := walkthrough(buf, size, backend)
				require.NoError(tt, err)

				for _, v := range out.Values() {
					if assert.InDelta(tt, flatValue, int(v), 1) != true {
						break
					}
				}
				for _, title := range []string{"Pixel Values", "Transformed Coefficients", "TF", "Zigzag:", "Reconstructed Pixels"} {
					assert.True(tt, strings.Contains(buf.String(), title), "missing %q", title)
				}
			})
		}
	}
}
