package transform

import (
	"github.com/pkg/errors"

	"github.com/octu0/tfmerge"
)

// Backend binds a transform family to the calibration constants the
// merge pipelines need. DownShift rescales a merged n x n block before the
// n-point inverse, UpShift a merged 2n x 2n block before the 2n-point inverse.
type Backend struct {
	Kind      Kind
	DownShift int
	UpShift   int
	tables    *Tables
}

// calibration is {DownShift, UpShift} per backend, matched against the DC
// gain each inverse expects. A merged flat block carries twice the DC of
// one n x n block.
var calibration = map[Kind][2]int{
	DCT:   {1, 0},
	ADST:  {1, 0},
	Float: {1, 0},
	WHT:   {1, -1},
}

func NewBackend(kind Kind, tables *Tables) (Backend, error) {
	shifts, ok := calibration[kind]
	if ok != true {
		return Backend{}, errors.Wrapf(ErrUnknownKind, "%d", kind)
	}
	if tables == nil {
		tables = NewTables()
	}
	return Backend{
		Kind:      kind,
		DownShift: shifts[0],
		UpShift:   shifts[1],
		tables:    tables,
	}, nil
}

// Transform selects the forward/inverse pair for size. tx picks the 1D
// kernels of DCT, ADST and Float backends; the ADST backend turns DCT_DCT
// into ADST_ADST. WHT only accepts DCT_DCT.
func (b Backend) Transform(size tfmerge.BlockSize, tx TxType) (tfmerge.Transform, error) {
	if size.Valid() != true {
		return tfmerge.Transform{}, errors.Wrapf(tfmerge.ErrInvalidBlockSize, "%d", size)
	}
	if ADST_ADST < tx {
		return tfmerge.Transform{}, errors.Wrapf(ErrUnsupportedTxType, "%d", tx)
	}
	if b.tables == nil {
		return tfmerge.Transform{}, errors.New("backend not created by NewBackend")
	}
	if b.Kind == ADST && tx == DCT_DCT {
		tx = ADST_ADST
	}

	switch b.Kind {
	case DCT, ADST:
		vert, err := b.tables.Table(tx.vertical(), size)
		if err != nil {
			return tfmerge.Transform{}, errors.WithStack(err)
		}
		horz, err := b.tables.Table(tx.horizontal(), size)
		if err != nil {
			return tfmerge.Transform{}, errors.WithStack(err)
		}
		f := fixedTransform{n: size.Int(), unit: UnitShift(size), vert: vert, horz: horz}
		return tfmerge.Transform{Size: size, Forward: f.forward, Inverse: f.inverse}, nil

	case Float:
		vert, err := b.tables.Matrix(tx.vertical(), size)
		if err != nil {
			return tfmerge.Transform{}, errors.WithStack(err)
		}
		horz, err := b.tables.Matrix(tx.horizontal(), size)
		if err != nil {
			return tfmerge.Transform{}, errors.WithStack(err)
		}
		f := floatTransform{n: size.Int(), unit: UnitShift(size), vert: vert, horz: horz}
		return tfmerge.Transform{Size: size, Forward: f.forward, Inverse: f.inverse}, nil

	case WHT:
		if tx != DCT_DCT {
			return tfmerge.Transform{}, errors.Wrapf(ErrUnsupportedTxType, "wht does not support %s", tx)
		}
		w := whtTransform{n: size.Int()}
		return tfmerge.Transform{Size: size, Forward: w.forward, Inverse: w.inverse}, nil
	}
	return tfmerge.Transform{}, errors.Wrapf(ErrUnknownKind, "%d", b.Kind)
}

// DownsampleConfig wires the backend into tfmerge.Downsample.
func (b Backend) DownsampleConfig(size tfmerge.BlockSize, workers int) (tfmerge.DownsampleConfig, error) {
	t, err := b.Transform(size, DCT_DCT)
	if err != nil {
		return tfmerge.DownsampleConfig{}, errors.WithStack(err)
	}
	return tfmerge.DownsampleConfig{
		Transform: t,
		Shift:     b.DownShift,
		Workers:   workers,
	}, nil
}

// ReconstructConfig wires the backend into tfmerge.Reconstruct: fwd at
// size and inv at twice size. The shift also absorbs any change of
// coefficient unit between the two sizes.
func (b Backend) ReconstructConfig(size tfmerge.BlockSize, fwd, inv TxType, workers int) (tfmerge.ReconstructConfig, error) {
	big, err := size.Double()
	if err != nil {
		return tfmerge.ReconstructConfig{}, errors.WithStack(err)
	}
	f, err := b.Transform(size, fwd)
	if err != nil {
		return tfmerge.ReconstructConfig{}, errors.WithStack(err)
	}
	i, err := b.Transform(big, inv)
	if err != nil {
		return tfmerge.ReconstructConfig{}, errors.WithStack(err)
	}
	shift := b.UpShift
	if b.Kind != WHT {
		shift += UnitShift(size) - UnitShift(big)
	}
	return tfmerge.ReconstructConfig{
		Forward: f,
		Inverse: i,
		Shift:   shift,
		Workers: workers,
	}, nil
}
