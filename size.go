package tfmerge

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrInvalidBlockSize = errors.New("invalid block size, values are: 4, 8, 16, 32")
)

// BlockSize is the side length of a square transform block.
type BlockSize int

const (
	Block4  BlockSize = 4
	Block8  BlockSize = 8
	Block16 BlockSize = 16
	Block32 BlockSize = 32
)

var blockSizes = [...]BlockSize{Block4, Block8, Block16, Block32}

// BlockSizes lists every supported size in ascending order.
func BlockSizes() []BlockSize {
	return blockSizes[:]
}

func (s BlockSize) Valid() bool {
	for _, b := range blockSizes {
		if b == s {
			return true
		}
	}
	return false
}

func (s BlockSize) Int() int {
	return int(s)
}

// Square is the number of coefficients in one block.
func (s BlockSize) Square() int {
	return int(s) * int(s)
}

// Double returns 2s, which must itself be a supported size.
func (s BlockSize) Double() (BlockSize, error) {
	d := s * 2
	if d.Valid() != true {
		return 0, errors.Wrapf(ErrInvalidBlockSize, "%d has no supported double", s)
	}
	return d, nil
}

func (s BlockSize) String() string {
	return strconv.Itoa(int(s))
}

// ParseBlockSize accepts only the members of the closed set {4, 8, 16, 32}.
func ParseBlockSize(v string) (BlockSize, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidBlockSize, "%q", v)
	}
	s := BlockSize(n)
	if s.Valid() != true {
		return 0, errors.Wrapf(ErrInvalidBlockSize, "%d", n)
	}
	return s, nil
}
