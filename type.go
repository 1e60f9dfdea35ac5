package tfmerge

// SignedInt is the coefficient domain of the Haar merge. The butterfly
// relies on arithmetic right shift, so floats are not allowed here.
type SignedInt interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Sample is anything a View can hold: signed coefficients or unsigned
// pixel samples.
type Sample interface {
	~uint8 | ~uint16 | ~int8 | ~int16 | ~int32 | ~int64
}
