package lerp

// Slice lifts an element interpolator to index-aligned slices. The result
// has end's length. Entries past the end of start have nothing to ease
// from and are copied from end unchanged.
func Slice[T any](elem Func[T]) Func[[]T] {
	return func(start, end []T, p float64) []T {
		if end == nil {
			return nil
		}
		out := make([]T, len(end))
		for i := range end {
			if i < len(start) {
				out[i] = elem(start[i], end[i], p)
			} else {
				out[i] = end[i]
			}
		}
		return out
	}
}

// Floats eases a []float64.
func Floats(start, end []float64, p float64) []float64 {
	return Slice(Float)(start, end, p)
}

// Points eases a []Point, such as a polyline.
func Points(start, end []Point, p float64) []Point {
	return Slice(LerpPoint)(start, end, p)
}
