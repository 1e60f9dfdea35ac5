package tfmerge

import (
	"fmt"
)

// View is a rectangular window over a flat row-major buffer.
// It is passed by value; sub views share the underlying storage.
type View[T Sample] struct {
	data          []T
	offset        int
	stride        int
	width, height int
}

// NewView allocates a zero filled width x height view whose stride equals its width.
func NewView[T Sample](width, height int) View[T] {
	return View[T]{
		data:   make([]T, width*height),
		offset: 0,
		stride: width,
		width:  width,
		height: height,
	}
}

// WrapView exposes an existing buffer as a view starting at data[0].
func WrapView[T Sample](data []T, stride, width, height int) View[T] {
	if Debug {
		if stride < width || len(data) < (height-1)*stride+width {
			panic(fmt.Sprintf("tfmerge: buffer len=%d too small for %dx%d stride=%d", len(data), width, height, stride))
		}
	}
	return View[T]{
		data:   data,
		offset: 0,
		stride: stride,
		width:  width,
		height: height,
	}
}

func (v View[T]) Width() int {
	return v.width
}

func (v View[T]) Height() int {
	return v.height
}

func (v View[T]) Stride() int {
	return v.stride
}

func (v View[T]) check(x, y int) {
	if x < 0 || v.width <= x || y < 0 || v.height <= y {
		panic(fmt.Sprintf("tfmerge: (%d,%d) out of %dx%d view", x, y, v.width, v.height))
	}
}

func (v View[T]) index(x, y int) int {
	if Debug {
		v.check(x, y)
	}
	return v.offset + (y * v.stride) + x
}

// At returns the sample at column x, row y.
func (v View[T]) At(x, y int) T {
	return v.data[v.index(x, y)]
}

func (v View[T]) Set(x, y int, val T) {
	v.data[v.index(x, y)] = val
}

func (v View[T]) Add(x, y int, val T) {
	v.data[v.index(x, y)] += val
}

// Row returns row y as a slice aliasing the view storage.
func (v View[T]) Row(y int) []T {
	start := v.index(0, y)
	return v.data[start : start+v.width]
}

// Sub returns the w x h window whose top-left corner is (x, y).
func (v View[T]) Sub(x, y, w, h int) View[T] {
	if Debug {
		if x < 0 || y < 0 || w < 0 || h < 0 || v.width < x+w || v.height < y+h {
			panic(fmt.Sprintf("tfmerge: sub %dx%d+%d+%d out of %dx%d view", w, h, x, y, v.width, v.height))
		}
	}
	return View[T]{
		data:   v.data,
		offset: v.offset + (y * v.stride) + x,
		stride: v.stride,
		width:  w,
		height: h,
	}
}

func (v View[T]) Fill(val T) {
	for y := 0; y < v.height; y += 1 {
		row := v.Row(y)
		for x := range row {
			row[x] = val
		}
	}
}

// CopyFrom copies the overlapping top-left region of src into v.
func (v View[T]) CopyFrom(src View[T]) {
	w := min(v.width, src.width)
	h := min(v.height, src.height)
	for y := 0; y < h; y += 1 {
		copy(v.Row(y)[:w], src.Row(y)[:w])
	}
}

// Clone returns a compact copy of v.
func (v View[T]) Clone() View[T] {
	out := NewView[T](v.width, v.height)
	out.CopyFrom(v)
	return out
}

// Values returns the samples in row-major order.
func (v View[T]) Values() []T {
	out := make([]T, 0, v.width*v.height)
	for y := 0; y < v.height; y += 1 {
		out = append(out, v.Row(y)...)
	}
	return out
}
