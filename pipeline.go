package tfmerge

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoTransform  = errors.New("forward or inverse transform not set")
	ErrSizeMismatch = errors.New("inverse transform must be twice the forward size")
	ErrEmptyPicture = errors.New("picture has no samples")
)

// DownsampleConfig selects the transform pair and calibration of Downsample.
// Shift rescales merged coefficients to the unit the n x n inverse expects.
type DownsampleConfig struct {
	Transform Transform
	Shift     int
	Workers   int
}

func (c DownsampleConfig) validate() error {
	if c.Transform.Size.Valid() != true {
		return errors.Wrapf(ErrInvalidBlockSize, "%d", c.Transform.Size)
	}
	if c.Transform.Forward == nil || c.Transform.Inverse == nil {
		return errors.WithStack(ErrNoTransform)
	}
	return nil
}

// ReconstructConfig selects the transforms of Reconstruct: Forward at n,
// Inverse at 2n.
type ReconstructConfig struct {
	Forward Transform
	Inverse Transform
	Shift   int
	Workers int
}

func (c ReconstructConfig) validate() error {
	if c.Forward.Size.Valid() != true {
		return errors.Wrapf(ErrInvalidBlockSize, "%d", c.Forward.Size)
	}
	if c.Forward.Forward == nil || c.Inverse.Inverse == nil {
		return errors.WithStack(ErrNoTransform)
	}
	if c.Inverse.Size != c.Forward.Size*2 {
		return errors.Wrapf(ErrSizeMismatch, "forward=%d inverse=%d", c.Forward.Size, c.Inverse.Size)
	}
	return nil
}

// reflect folds a coordinate that falls outside [0, size) back into it.
func reflect(v, size int) int {
	switch {
	case size <= v:
		v = size - 1 - (v - size)
		if v < 0 {
			v = 0
		}
	case v < 0:
		v = -v
		if size <= v {
			v = size - 1
		}
	}
	return v
}

type tile struct {
	n      int
	pixels View[int32]
	coeffs View[int32]
	merged View[int32]
	recon  View[uint8]
}

func newTile(n, mergedSize int) *tile {
	return &tile{
		n:      n,
		pixels: NewView[int32](2*n, 2*n),
		coeffs: NewView[int32](2*n, 2*n),
		merged: NewView[int32](mergedSize, mergedSize),
		recon:  NewView[uint8](mergedSize, mergedSize),
	}
}

// load copies the 2n x 2n neighbourhood at (x, y), widening to int32.
func (t *tile) load(src View[uint8], x, y int) {
	w, h := src.Width(), src.Height()
	for by := 0; by < t.pixels.Height(); by += 1 {
		row := t.pixels.Row(by)
		py := reflect(y+by, h)
		for bx := range row {
			row[bx] = int32(src.At(reflect(x+bx, w), py))
		}
	}
}

// forward transforms each n x n quadrant into the matching quadrant of coeffs.
func (t *tile) forward(fn ForwardFunc) {
	n := t.n
	for qy := 0; qy < 2*n; qy += n {
		for qx := 0; qx < 2*n; qx += n {
			fn(t.coeffs.Sub(qx, qy, n, n), t.pixels.Sub(qx, qy, n, n))
		}
	}
}

func (t *tile) inverse(fn InverseFunc) {
	t.recon.Fill(0)
	fn(t.recon, t.merged)
}

// store writes the reconstructed block at (x, y), dropping whatever falls outside dst.
func (t *tile) store(dst View[uint8], x, y int) {
	for by := 0; by < t.recon.Height(); by += 1 {
		if dst.Height() <= y+by {
			break
		}
		for bx := 0; bx < t.recon.Width(); bx += 1 {
			if dst.Width() <= x+bx {
				break
			}
			dst.Set(x+bx, y+by, t.recon.At(bx, by))
		}
	}
}

// Downsample resizes src to half its linear resolution in the transform
// domain: every 2n x 2n tile is forward transformed as four n x n blocks,
// merged into one n x n low-pass block and inverse transformed at n.
func Downsample(ctx context.Context, src View[uint8], cfg DownsampleConfig) (View[uint8], error) {
	if err := cfg.validate(); err != nil {
		return View[uint8]{}, err
	}
	if src.Width() < 2 || src.Height() < 2 {
		return View[uint8]{}, errors.Wrapf(ErrEmptyPicture, "%dx%d", src.Width(), src.Height())
	}

	n := cfg.Transform.Size.Int()
	step := 2 * n
	out := NewView[uint8](src.Width()>>1, src.Height()>>1)

	err := forEachTileRow(ctx, src.Height(), step, cfg.Workers, func(y int) error {
		t := newTile(n, n)
		for x := 0; x < src.Width(); x += step {
			t.load(src, x, y)
			t.forward(cfg.Transform.Forward)
			MergeLowPass(t.merged, t.coeffs, n)
			Rescale(t.merged, cfg.Shift)
			t.inverse(cfg.Transform.Inverse)
			t.store(out, x>>1, y>>1)
		}
		return nil
	})
	if err != nil {
		return View[uint8]{}, err
	}
	return out, nil
}

// Reconstruct keeps the input resolution: the four n x n blocks of each
// tile are merged into one 2n x 2n block and inverse transformed at 2n.
func Reconstruct(ctx context.Context, src View[uint8], cfg ReconstructConfig) (View[uint8], error) {
	if err := cfg.validate(); err != nil {
		return View[uint8]{}, err
	}
	if src.Width() < 1 || src.Height() < 1 {
		return View[uint8]{}, errors.Wrapf(ErrEmptyPicture, "%dx%d", src.Width(), src.Height())
	}

	n := cfg.Forward.Size.Int()
	step := 2 * n
	out := NewView[uint8](src.Width(), src.Height())

	err := forEachTileRow(ctx, src.Height(), step, cfg.Workers, func(y int) error {
		t := newTile(n, step)
		for x := 0; x < src.Width(); x += step {
			t.load(src, x, y)
			t.forward(cfg.Forward.Forward)
			Merge(t.merged, t.coeffs, n)
			Rescale(t.merged, cfg.Shift)
			t.inverse(cfg.Inverse.Inverse)
			t.store(out, x, y)
		}
		return nil
	})
	if err != nil {
		return View[uint8]{}, err
	}
	return out, nil
}

// forEachTileRow calls fn for every tile row origin. Rows write disjoint
// output regions, so with workers > 1 they run concurrently.
func forEachTileRow(ctx context.Context, height, step, workers int, fn func(y int) error) error {
	if workers <= 1 {
		for y := 0; y < height; y += step {
			if err := ctx.Err(); err != nil {
				return errors.WithStack(err)
			}
			if err := fn(y); err != nil {
				return err
			}
		}
		return nil
	}

	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for y := 0; y < height; y += step {
		if ectx.Err() != nil {
			break
		}
		eg.Go(func() error {
			return fn(y)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	return errors.WithStack(ctx.Err())
}
