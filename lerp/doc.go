// Package lerp interpolates values between a start and an end state.
//
// Every interpolator has the shape of [Func]: it is pure, returns start at
// p=0 and end at p=1, and returns end unchanged when start equals end so
// repeated ticks on a settled value never drift. Progress may leave [0, 1]
// when an overshooting ease drives it; results extrapolate linearly.
//
// Scalars go through [Float] and the generic [Scalar]. Composite values
// (colors, points, rectangles, matrices, transforms, brushes, effects)
// are eased component-wise. [Slice] lifts any element interpolator to
// slices aligned by index; entries past the end of the start slice are
// copied from end. Path geometry is eased segment by segment, and a pair
// of segments with different concrete types yields the end segment.
//
// The [Positive] variants clamp at zero for sizes and radii that cannot
// go negative.
package lerp
