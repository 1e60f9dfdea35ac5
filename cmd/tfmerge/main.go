// Command tfmerge halves the resolution of a frame in the transform domain.
//
//	tfmerge image.y4m blocksize [dct|adst|wht|float]
//
// Every 2n x 2n tile is transformed as four n x n blocks, merged into one
// n x n block and inverse transformed. The result is written to
// tf_<backend>_<blocksize>.png.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"

	"github.com/octu0/tfmerge"
	"github.com/octu0/tfmerge/internal/cli"
	"github.com/octu0/tfmerge/internal/frame"
	"github.com/octu0/tfmerge/internal/metric"
	"github.com/octu0/tfmerge/transform"
)

const usage = "tfmerge image.y4m blocksize [dct|adst|wht|float]"

type config struct {
	input   string
	output  string
	size    tfmerge.BlockSize
	kind    transform.Kind
	workers int
}

func parseArgs(args []string) (config, error) {
	if len(args) != 2 && len(args) != 3 {
		return config{}, errors.Errorf("invalid number of arguments: %d", len(args))
	}
	size, err := tfmerge.ParseBlockSize(args[1])
	if err != nil {
		return config{}, errors.WithStack(err)
	}
	kind := transform.DCT
	if len(args) == 3 {
		k, err := transform.ParseKind(args[2])
		if err != nil {
			return config{}, errors.WithStack(err)
		}
		kind = k
	}
	return config{
		input:   args[0],
		output:  fmt.Sprintf("tf_%s_%d.png", kind, size),
		size:    size,
		kind:    kind,
		workers: cli.Workers(),
	}, nil
}

func run(ctx context.Context, cfg config) error {
	luma, err := frame.Load(cfg.input)
	if err != nil {
		return errors.WithStack(err)
	}

	backend, err := transform.NewBackend(cfg.kind, transform.NewTables())
	if err != nil {
		return errors.WithStack(err)
	}
	dcfg, err := backend.DownsampleConfig(cfg.size, cfg.workers)
	if err != nil {
		return errors.WithStack(err)
	}

	t := time.Now()
	out, err := tfmerge.Downsample(ctx, luma, dcfg)
	if err != nil {
		return errors.WithStack(err)
	}
	elapse := time.Since(t)

	ref := metric.HalveBox(luma)
	slog.Info("downsampled",
		"input", cfg.input,
		"blocksize", cfg.size,
		"backend", cfg.kind,
		"src", fmt.Sprintf("%dx%d", luma.Width(), luma.Height()),
		"dst", fmt.Sprintf("%dx%d", out.Width(), out.Height()),
		"elapse", elapse,
		"psnr", fmt.Sprintf("%.2f", metric.PSNR(ref, out)),
		"ssim", fmt.Sprintf("%.4f", metric.SSIM(ref, out)),
	)

	if err := frame.SavePNG(cfg.output, out); err != nil {
		return errors.WithStack(err)
	}
	slog.Info("saved", "output", cfg.output)
	return nil
}

func main() {
	cli.Setup("tfmerge")

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		cli.Usage(usage, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg)
	stop()
	if err != nil {
		cli.Fatal("tfmerge failed", err)
	}
}
