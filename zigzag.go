package tfmerge

// diagonal visits the anti-diagonal x+y == d of an n x n block in scan
// order: odd diagonals run down-left, even ones up-right.
func diagonal(n, d int, fn func(x, y int)) {
	lo := max(0, d-n+1)
	hi := min(d, n-1)
	if d&1 == 1 {
		for y := lo; y <= hi; y += 1 {
			fn(d-y, y)
		}
		return
	}
	for y := hi; lo <= y; y -= 1 {
		fn(d-y, y)
	}
}

// Zigzag scans a square block from the DC corner towards the highest
// frequency, alternating diagonal direction.
func Zigzag[T Sample](block View[T]) []T {
	n := block.Width()
	result := make([]T, 0, n*n)
	for d := 0; d < (2*n)-1; d += 1 {
		diagonal(n, d, func(x, y int) {
			result = append(result, block.At(x, y))
		})
	}
	return result
}

// Unzigzag writes a zigzag ordered scan back into the square block dst.
// Positions past the end of data are left untouched.
func Unzigzag[T Sample](data []T, dst View[T]) {
	n := dst.Width()
	i := 0
	for d := 0; d < (2*n)-1; d += 1 {
		diagonal(n, d, func(x, y int) {
			if i < len(data) {
				dst.Set(x, y, data[i])
			}
			i += 1
		})
	}
}
