package transform

import (
	"github.com/octu0/tfmerge"
)

// DCOnly computes only the DC coefficient of src, in the fixed-point
// coefficient unit, from the plain sample sum.
func DCOnly(src tfmerge.View[int32]) int32 {
	n := int64(src.Width())
	sum := int64(0)
	for y := 0; y < src.Height(); y += 1 {
		for _, v := range src.Row(y) {
			sum += int64(v)
		}
	}
	unit := UnitShift(tfmerge.BlockSize(n))
	scaled := sum << unit
	if scaled < 0 {
		return int32(-((-scaled + (n / 2)) / n))
	}
	return int32((scaled + (n / 2)) / n)
}

// FastDC is the closed form DC of a flat n x n block of value v.
func FastDC(v int32, size tfmerge.BlockSize) int32 {
	return (v * int32(size)) << UnitShift(size)
}
