package tfmerge

// haar is an in-place reversible Haar butterfly over one 2x2 group, 7 adds and 1 shift.
// lh and hl are updated from the same mid, ll and hh from the updated lh and hl.
// Daala's od_tf_up_hv passes lh and hl swapped; the two orders differ only
// in which band absorbs the >>1 rounding.
func haar[T SignedInt](ll, lh, hl, hh T) (T, T, T, T) {
	ll += hl
	hh -= lh
	mid := (ll - hh) >> 1
	lh = mid - lh
	hl = mid - hl
	ll -= lh
	hh += hl
	return ll, lh, hl, hh
}

// unhaar undoes haar. It is the same butterfly with lh and hl swapped.
func unhaar[T SignedInt](ll, lh, hl, hh T) (T, T, T, T) {
	ll, hl, lh, hh = haar(ll, hl, lh, hh)
	return ll, lh, hl, hh
}

// put writes one butterfly result as a 2x2 group at (2x, 2y).
// The parity of the group position decides which corner each band lands in.
func put[T SignedInt](dst View[T], x, y int, ll, lh, hl, hh T) {
	hswap := x & 1
	vswap := y & 1
	top := (2 * y) + vswap
	bottom := (2 * y) + 1 - vswap
	left := (2 * x) + hswap
	right := (2 * x) + 1 - hswap

	dst.Set(left, top, ll)
	dst.Set(right, top, lh)
	dst.Set(left, bottom, hl)
	dst.Set(right, bottom, hh)
}

// take reads the 2x2 group at (2x, 2y) written by put.
func take[T SignedInt](src View[T], x, y int) (T, T, T, T) {
	hswap := x & 1
	vswap := y & 1
	top := (2 * y) + vswap
	bottom := (2 * y) + 1 - vswap
	left := (2 * x) + hswap
	right := (2 * x) + 1 - hswap

	return src.At(left, top), src.At(right, top), src.At(left, bottom), src.At(right, bottom)
}

func gather[T SignedInt](src View[T], x, y, n int) (T, T, T, T) {
	ll := src.At(x, y)
	lh := src.At(x+n, y)
	hl := src.At(x, y+n)
	hh := src.At(x+n, y+n)
	return ll, lh, hl, hh
}

// MergeLowPass collapses the 2x2 group of n x n coefficient blocks in src
// (2n x 2n, quadrants TL TR BL BR) into the n x n low-pass block dst.
// Only coefficients with x, y < n/2 of each quadrant contribute.
// n must be a power of two >= 2; sizes are not validated.
func MergeLowPass[T SignedInt](dst, src View[T], n int) {
	half := n >> 1
	for y := 0; y < half; y += 1 {
		for x := 0; x < half; x += 1 {
			ll, lh, hl, hh := gather(src, x, y, n)
			ll, lh, hl, hh = haar(ll, lh, hl, hh)
			put(dst, x, y, ll, lh, hl, hh)
		}
	}
}

// Merge increases horizontal and vertical frequency resolution of the
// 2x2 group of n x n blocks in src, writing a single 2n x 2n block to dst.
func Merge[T SignedInt](dst, src View[T], n int) {
	for y := 0; y < n; y += 1 {
		for x := 0; x < n; x += 1 {
			ll, lh, hl, hh := gather(src, x, y, n)
			ll, lh, hl, hh = haar(ll, lh, hl, hh)
			put(dst, x, y, ll, lh, hl, hh)
		}
	}
}

// Split is the exact inverse of Merge: it restores the four n x n
// quadrants of dst from the 2n x 2n merged block src.
func Split[T SignedInt](dst, src View[T], n int) {
	for y := 0; y < n; y += 1 {
		for x := 0; x < n; x += 1 {
			ll, lh, hl, hh := take(src, x, y)
			ll, lh, hl, hh = unhaar(ll, lh, hl, hh)
			dst.Set(x, y, ll)
			dst.Set(x+n, y, lh)
			dst.Set(x, y+n, hl)
			dst.Set(x+n, y+n, hh)
		}
	}
}
