package tfmerge

// ForwardFunc transforms the n x n samples in src into n x n coefficients in dst.
type ForwardFunc func(dst View[int32], src View[int32])

// InverseFunc inverse transforms the coefficients in src and adds the
// result onto dst, clipping every sample to [0, 255].
type InverseFunc func(dst View[uint8], src View[int32])

// Transform is the forward/inverse pair for one block size.
type Transform struct {
	Size    BlockSize
	Forward ForwardFunc
	Inverse InverseFunc
}

// Rescale shifts every coefficient right by shift, or left when shift is negative.
func Rescale(v View[int32], shift int) {
	if shift == 0 {
		return
	}
	for y := 0; y < v.Height(); y += 1 {
		row := v.Row(y)
		if 0 < shift {
			for x := range row {
				row[x] >>= shift
			}
			continue
		}
		for x := range row {
			row[x] <<= -shift
		}
	}
}

// ClipU8 saturates v into the 8-bit sample range.
func ClipU8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if 255 < v {
		return 255
	}
	return uint8(v)
}
