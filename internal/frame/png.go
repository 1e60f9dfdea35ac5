package frame

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/octu0/tfmerge"

	_ "image/gif"
	_ "image/jpeg"
)

// Load reads the luma plane of the first frame in path. ".y4m" files are
// parsed as YUV4MPEG2, anything else goes through image.Decode.
func Load(path string) (tfmerge.View[uint8], error) {
	f, err := os.Open(path)
	if err != nil {
		return tfmerge.View[uint8]{}, errors.WithStack(err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".y4m") {
		luma, err := ReadY4M(f)
		if err != nil {
			return tfmerge.View[uint8]{}, errors.Wrapf(err, "read %s", path)
		}
		return luma, nil
	}

	luma, err := ReadImage(f)
	if err != nil {
		return tfmerge.View[uint8]{}, errors.Wrapf(err, "read %s", path)
	}
	return luma, nil
}

// ReadImage decodes any registered image format and keeps only its luma.
func ReadImage(r io.Reader) (tfmerge.View[uint8], error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return tfmerge.View[uint8]{}, errors.WithStack(err)
	}
	return Luma(img), nil
}

// Luma extracts the Y plane of img.
func Luma(img image.Image) tfmerge.View[uint8] {
	rect := img.Bounds()
	width, height := rect.Dx(), rect.Dy()
	luma := tfmerge.NewView[uint8](width, height)

	switch src := img.(type) {
	case *image.Gray:
		for h := 0; h < height; h += 1 {
			off := src.PixOffset(rect.Min.X, rect.Min.Y+h)
			copy(luma.Row(h), src.Pix[off:off+width])
		}
	case *image.YCbCr:
		for h := 0; h < height; h += 1 {
			off := src.YOffset(rect.Min.X, rect.Min.Y+h)
			copy(luma.Row(h), src.Y[off:off+width])
		}
	default:
		for h := 0; h < height; h += 1 {
			for w := 0; w < width; w += 1 {
				r, g, b, _ := img.At(rect.Min.X+w, rect.Min.Y+h).RGBA()
				y, _, _ := color.RGBToYCbCr(uint8(r>>8), uint8(g>>8), uint8(b>>8))
				luma.Set(w, h, y)
			}
		}
	}
	return luma
}

// Gray wraps a copy of luma as an 8-bit grayscale image.
func Gray(luma tfmerge.View[uint8]) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, luma.Width(), luma.Height()))
	for y := 0; y < luma.Height(); y += 1 {
		off := img.PixOffset(0, y)
		copy(img.Pix[off:off+luma.Width()], luma.Row(y))
	}
	return img
}

// WritePNG encodes luma as an 8-bit grayscale PNG.
func WritePNG(w io.Writer, luma tfmerge.View[uint8]) error {
	if err := png.Encode(w, Gray(luma)); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func SavePNG(name string, luma tfmerge.View[uint8]) error {
	out, err := os.Create(name)
	if err != nil {
		return errors.WithStack(err)
	}
	defer out.Close()

	if err := WritePNG(out, luma); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return errors.WithStack(out.Close())
}
