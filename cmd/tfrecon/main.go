// Command tfrecon merges every 2x2 group of transformed blocks into one
// block of twice the size and inverse transforms it at full resolution.
//
//	tfrecon image.y4m blocksize fwd_tx_type inv_tx_type
//
// Transform types: 0 DCT_DCT, 1 ADST_DCT, 2 DCT_ADST, 3 ADST_ADST.
// Block sizes 4, 8 and 16 are supported; the result is tf_recon_<blocksize>.png.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pkg/errors"

	"github.com/octu0/tfmerge"
	"github.com/octu0/tfmerge/internal/cli"
	"github.com/octu0/tfmerge/internal/frame"
	"github.com/octu0/tfmerge/internal/metric"
	"github.com/octu0/tfmerge/transform"
)

const usage = "tfrecon image.y4m blocksize fwd_tx_type inv_tx_type"

type config struct {
	input   string
	output  string
	size    tfmerge.BlockSize
	fwd     transform.TxType
	inv     transform.TxType
	workers int
}

func parseArgs(args []string) (config, error) {
	if len(args) != 4 {
		return config{}, errors.Errorf("invalid number of arguments: %d", len(args))
	}
	size, err := tfmerge.ParseBlockSize(args[1])
	if err != nil {
		return config{}, errors.WithStack(err)
	}
	if _, err := size.Double(); err != nil {
		return config{}, errors.WithStack(err)
	}
	fwd, err := transform.ParseTxType(args[2])
	if err != nil {
		return config{}, errors.WithStack(err)
	}
	inv, err := transform.ParseTxType(args[3])
	if err != nil {
		return config{}, errors.WithStack(err)
	}
	return config{
		input:   args[0],
		output:  fmt.Sprintf("tf_recon_%d.png", size),
		size:    size,
		fwd:     fwd,
		inv:     inv,
		workers: cli.Workers(),
	}, nil
}

func run(ctx context.Context, cfg config) error {
	luma, err := frame.Load(cfg.input)
	if err != nil {
		return errors.WithStack(err)
	}
	slog.Info("opened", "input", cfg.input, "size", fmt.Sprintf("%dx%d", luma.Width(), luma.Height()), "blocksize", cfg.size)

	backend, err := transform.NewBackend(transform.DCT, transform.NewTables())
	if err != nil {
		return errors.WithStack(err)
	}
	rcfg, err := backend.ReconstructConfig(cfg.size, cfg.fwd, cfg.inv, cfg.workers)
	if err != nil {
		return errors.WithStack(err)
	}

	out, err := tfmerge.Reconstruct(ctx, luma, rcfg)
	if err != nil {
		return errors.WithStack(err)
	}
	slog.Info("reconstructed",
		"fwd", cfg.fwd,
		"inv", cfg.inv,
		"psnr", fmt.Sprintf("%.2f", metric.PSNR(luma, out)),
		"ssim", fmt.Sprintf("%.4f", metric.SSIM(luma, out)),
	)

	if err := frame.SavePNG(cfg.output, out); err != nil {
		return errors.WithStack(err)
	}
	slog.Info("saved", "output", cfg.output)
	return nil
}

func main() {
	cli.Setup("tfrecon")

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		cli.Usage(usage, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg)
	stop()
	if err != nil {
		cli.Fatal("tfrecon failed", err)
	}
}
