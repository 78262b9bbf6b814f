// Package ease provides the easing equations used by glide tweens.
//
// Each family (Linear, Quad, Cubic, Quart, Quint, Sine, Expo, Circ,
// Elastic, Bounce, Back) is available in Penner's four-argument form
// (InQuad, OutQuad, InOutQuad, OutInQuad, ...) and as a [Set] of
// single-ratio [Func] values:
//
//	anim.AddTween(sprite, "x", 300.0, 0.5, ease.Cubic.Out, 0)
//
// In-out and out-in variants are built from the family's in and out
// halves, so every family is continuous at the midpoint.
//
// Custom curves are drawn with [NewBezier]; gween functions plug in
// through [FromGween].
package ease
