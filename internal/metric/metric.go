package metric

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/octu0/tfmerge"
)

const (
	ssimBlockSize = 8
	// PSNR reported for identical planes
	infinitePSNR = 100.0
)

// PSNR calculates the Peak Signal-to-Noise Ratio of two luma planes over
// their overlapping area.
func PSNR(a, b tfmerge.View[uint8]) float64 {
	w := min(a.Width(), b.Width())
	h := min(a.Height(), b.Height())
	if w == 0 || h == 0 {
		return 0
	}

	mse := 0.0
	for y := 0; y < h; y += 1 {
		ra, rb := a.Row(y), b.Row(y)
		for x := 0; x < w; x += 1 {
			d := float64(ra[x]) - float64(rb[x])
			mse += (d * d)
		}
	}
	mse /= float64(w * h)

	if mse == 0 {
		return infinitePSNR
	}
	return 20 * math.Log10(255.0/math.Sqrt(mse))
}

// SSIM calculates the mean Structural Similarity Index over
// non-overlapping 8x8 blocks.
func SSIM(a, b tfmerge.View[uint8]) float64 {
	c1 := (0.01 * 0.01) * (255 * 255)
	c2 := (0.03 * 0.03) * (255 * 255)

	w := min(a.Width(), b.Width())
	h := min(a.Height(), b.Height())

	total := 0.0
	count := 0
	p1 := make([]float64, ssimBlockSize*ssimBlockSize)
	p2 := make([]float64, ssimBlockSize*ssimBlockSize)
	for y := 0; y+ssimBlockSize <= h; y += ssimBlockSize {
		for x := 0; x+ssimBlockSize <= w; x += ssimBlockSize {
			gatherBlock(p1, a, x, y)
			gatherBlock(p2, b, x, y)
			l, cs := ssimComponents(p1, p2, c1, c2)
			total += l * cs
			count += 1
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func gatherBlock(dst []float64, v tfmerge.View[uint8], x, y int) {
	i := 0
	for j := 0; j < ssimBlockSize; j += 1 {
		row := v.Row(y + j)
		for k := 0; k < ssimBlockSize; k += 1 {
			dst[i] = float64(row[x+k])
			i += 1
		}
	}
}

// ssimComponents returns the luminance term and the contrast*structure term.
func ssimComponents(p1, p2 []float64, c1, c2 float64) (float64, float64) {
	mu1 := stat.Mean(p1, nil)
	mu2 := stat.Mean(p2, nil)
	sigma1Sq := stat.Variance(p1, nil)
	sigma2Sq := stat.Variance(p2, nil)
	sigma12 := stat.Covariance(p1, p2, nil)

	lNum := (2 * mu1 * mu2) + c1
	lDen := (mu1 * mu1) + (mu2 * mu2) + c1

	csNum := (2 * sigma12) + c2
	csDen := sigma1Sq + sigma2Sq + c2

	return lNum / lDen, csNum / csDen
}

// HalveBox reduces a plane by 2x using 2x2 averaging, the reference the
// transform-domain downsampling is compared against.
func HalveBox(src tfmerge.View[uint8]) tfmerge.View[uint8] {
	dst := tfmerge.NewView[uint8](src.Width()/2, src.Height()/2)
	for y := 0; y < dst.Height(); y += 1 {
		r0 := src.Row(y * 2)
		r1 := src.Row((y * 2) + 1)
		for x := 0; x < dst.Width(); x += 1 {
			sum := int(r0[x*2]) + int(r0[(x*2)+1]) + int(r1[x*2]) + int(r1[(x*2)+1])
			dst.Set(x, y, uint8((sum+2)/4))
		}
	}
	return dst
}
