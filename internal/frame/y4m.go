package frame

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/octu0/tfmerge"
)

const (
	y4mMagic      = "YUV4MPEG2"
	y4mFrameMagic = "FRAME"
	maxHeaderLen  = 4096
)

const (
	// largest luma plane accepted, in samples
	maxPictureSize = 1 << 28
)

var (
	ErrNotY4M         = errors.New("not a YUV4MPEG2 stream")
	ErrUnsupportedY4M = errors.New("unsupported YUV4MPEG2 colorspace")
)

// Y4MHeader is the subset of stream parameters needed to walk frames.
type Y4MHeader struct {
	Width, Height int
	Colorspace    string
}

// chromaSize returns the number of bytes following the luma plane of one frame.
func (h Y4MHeader) chromaSize() (int, error) {
	cw := (h.Width + 1) / 2
	ch := (h.Height + 1) / 2
	switch h.Colorspace {
	case "", "420", "420jpeg", "420paldv", "420mpeg2":
		return 2 * cw * ch, nil
	case "422":
		return 2 * cw * h.Height, nil
	case "444":
		return 2 * h.Width * h.Height, nil
	case "444alpha":
		return 3 * h.Width * h.Height, nil
	case "mono":
		return 0, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedY4M, "C%s", h.Colorspace)
}

// Y4MReader yields the luma plane of each frame in a YUV4MPEG2 stream.
type Y4MReader struct {
	r      *bufio.Reader
	header Y4MHeader
	chroma int
}

func (r *Y4MReader) Header() Y4MHeader {
	return r.header
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", errors.WithStack(err)
	}
	if maxHeaderLen < len(line) {
		return "", errors.Wrapf(ErrNotY4M, "header line of %d bytes", len(line))
	}
	return strings.TrimRight(line, "\n"), nil
}

func parseY4MHeader(line string) (Y4MHeader, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != y4mMagic {
		return Y4MHeader{}, errors.WithStack(ErrNotY4M)
	}

	h := Y4MHeader{}
	for _, f := range fields[1:] {
		tag, val := f[0], f[1:]
		switch tag {
		case 'W':
			w, err := strconv.Atoi(val)
			if err != nil {
				return Y4MHeader{}, errors.Wrapf(ErrNotY4M, "width %q", val)
			}
			h.Width = w
		case 'H':
			v, err := strconv.Atoi(val)
			if err != nil {
				return Y4MHeader{}, errors.Wrapf(ErrNotY4M, "height %q", val)
			}
			h.Height = v
		case 'C':
			h.Colorspace = val
		}
	}
	if h.Width <= 0 || h.Height <= 0 {
		return Y4MHeader{}, errors.Wrapf(ErrNotY4M, "picture size %dx%d", h.Width, h.Height)
	}
	if maxPictureSize < h.Width || maxPictureSize < h.Height || maxPictureSize < int64(h.Width)*int64(h.Height) {
		return Y4MHeader{}, errors.Wrapf(ErrNotY4M, "picture size %dx%d exceeds %d samples", h.Width, h.Height, maxPictureSize)
	}
	return h, nil
}

func NewY4MReader(r io.Reader) (*Y4MReader, error) {
	br := bufio.NewReader(r)
	line, err := readLine(br)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	header, err := parseY4MHeader(line)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	chroma, err := header.chromaSize()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Y4MReader{r: br, header: header, chroma: chroma}, nil
}

// Next returns the luma plane of the next frame, or io.EOF after the last one.
func (r *Y4MReader) Next() (tfmerge.View[uint8], error) {
	line, err := readLine(r.r)
	if err != nil {
		if errors.Cause(err) == io.EOF {
			return tfmerge.View[uint8]{}, io.EOF
		}
		return tfmerge.View[uint8]{}, errors.WithStack(err)
	}
	if strings.HasPrefix(line, y4mFrameMagic) != true {
		return tfmerge.View[uint8]{}, errors.Wrapf(ErrNotY4M, "frame marker %q", line)
	}

	luma := tfmerge.NewView[uint8](r.header.Width, r.header.Height)
	for y := 0; y < luma.Height(); y += 1 {
		if _, err := io.ReadFull(r.r, luma.Row(y)); err != nil {
			return tfmerge.View[uint8]{}, errors.Wrapf(err, "luma row %d", y)
		}
	}
	if _, err := io.CopyN(io.Discard, r.r, int64(r.chroma)); err != nil {
		return tfmerge.View[uint8]{}, errors.Wrap(err, "chroma planes")
	}
	return luma, nil
}

// ReadY4M returns the luma plane of the first frame of a YUV4MPEG2 stream.
func ReadY4M(r io.Reader) (tfmerge.View[uint8], error) {
	yr, err := NewY4MReader(r)
	if err != nil {
		return tfmerge.View[uint8]{}, errors.WithStack(err)
	}
	luma, err := yr.Next()
	if err != nil {
		return tfmerge.View[uint8]{}, errors.Wrap(err, "first frame")
	}
	return luma, nil
}
