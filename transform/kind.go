package transform

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownKind       = errors.New("unknown transform backend, values are: dct, adst, wht, float")
	ErrUnsupportedTxType = errors.New("unsupported transform type")
)

// Kind selects a transform backend.
type Kind uint8

const (
	DCT Kind = iota
	ADST
	WHT
	Float
)

func (k Kind) String() string {
	switch k {
	case DCT:
		return "dct"
	case ADST:
		return "adst"
	case WHT:
		return "wht"
	case Float:
		return "float"
	}
	return "unknown(" + strconv.Itoa(int(k)) + ")"
}

func ParseKind(v string) (Kind, error) {
	switch strings.ToLower(v) {
	case "dct":
		return DCT, nil
	case "adst":
		return ADST, nil
	case "wht":
		return WHT, nil
	case "float":
		return Float, nil
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", v)
}

// TxType picks the 1D kernel of each direction, vertical first.
type TxType uint8

const (
	DCT_DCT TxType = iota
	ADST_DCT
	DCT_ADST
	ADST_ADST
)

func (t TxType) String() string {
	switch t {
	case DCT_DCT:
		return "DCT_DCT"
	case ADST_DCT:
		return "ADST_DCT"
	case DCT_ADST:
		return "DCT_ADST"
	case ADST_ADST:
		return "ADST_ADST"
	}
	return "TX(" + strconv.Itoa(int(t)) + ")"
}

func (t TxType) vertical() Kind {
	if t == ADST_DCT || t == ADST_ADST {
		return ADST
	}
	return DCT
}

func (t TxType) horizontal() Kind {
	if t == DCT_ADST || t == ADST_ADST {
		return ADST
	}
	return DCT
}

// ParseTxType reads the small integer selector used on the command line.
func ParseTxType(v string) (TxType, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(ErrUnsupportedTxType, "%q", v)
	}
	if n < int(DCT_DCT) || int(ADST_ADST) < n {
		return 0, errors.Wrapf(ErrUnsupportedTxType, "%d", n)
	}
	return TxType(n), nil
}
