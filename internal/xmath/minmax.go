package xmath

// Ordered is any type supporting the < and > operators.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// SetMax overwrites *dst with v only if v is strictly greater than the
// previous *dst, and reports whether it did. Mirrors lvlath/tsp's SetMinMax.setmax
// and the original Rust's ChangeMinMax::change_max.
func SetMax[T Ordered](dst *T, v T) bool {
	if *dst < v {
		*dst = v

		return true
	}

	return false
}

// SetMin overwrites *dst with v only if v is strictly less than the
// previous *dst, and reports whether it did.
func SetMin[T Ordered](dst *T, v T) bool {
	if *dst > v {
		*dst = v

		return true
	}

	return false
}
