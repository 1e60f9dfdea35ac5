package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octu0/tfmerge"
	"github.com/octu0/tfmerge/internal/frame"
	"github.com/octu0/tfmerge/transform"
)

func TestParseArgs(t *testing.T) {
	t.Run("valid", func(tt *testing.T) {
		cfg, err := parseArgs([]string{"in.y4m", "16", "1", "3"})
		require.NoError(tt, err)
		assert.Equal(tt, "tf_recon_16.png", cfg.output)
		assert.Equal(tt, tfmerge.Block16, cfg.size)
		assert.Equal(tt, transform.ADST_DCT, cfg.fwd)
		assert.Equal(tt, transform.ADST_ADST, cfg.inv)
	})
	t.Run("invalid", func(tt *testing.T) {
		_, err := parseArgs([]string{"in.y4m", "8", "0"})
		assert.Error(tt, err)
		_, err = parseArgs([]string{"in.y4m", "32", "0", "0"})
		assert.True(tt, errors.Is(err, tfmerge.ErrInvalidBlockSize))
		_, err = parseArgs([]string{"in.y4m", "8", "0", "4"})
		assert.True(tt, errors.Is(err, transform.ErrUnsupportedTxType))
	})
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	luma := tfmerge.NewView[uint8](24, 16)
	luma.Fill(60)
	require.NoError(t, frame.SavePNG(input, luma))

	cfg, err := parseArgs([]string{input, "4", "0", "0"})
	require.NoError(t, err)
	cfg.output = filepath.Join(dir, cfg.output)
	require.NoError(t, run(context.Background(), cfg))

	out, err := frame.Load(cfg.output)
	require.NoError(t, err)
	assert.Equal(t, 24, out.Width())
	assert.Equal(t, 16, out.Height())
	for _, v := range out.Values() {
		if assert.InDelta(t, 60, int(v), 1) != true {
			break
		}
	}
}
