package lerp

// Matrix is a 2D affine transform:
//
//	| M11  M12  0 |
//	| M21  M22  0 |
//	| OffsetX OffsetY 1 |
type Matrix struct {
	M11, M12, M21, M22, OffsetX, OffsetY float64
}

// IdentityMatrix is the 2D identity transform.
var IdentityMatrix = Matrix{M11: 1, M22: 1}

// Matrix3D is a row-major 4x4 matrix.
type Matrix3D [16]float64

// IdentityMatrix3D is the 4x4 identity.
var IdentityMatrix3D = Matrix3D{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Affine returns the matrix in [a, b, c, d, tx, ty] order, the layout
// 2D scene graphs commonly use for world transforms.
func (m Matrix) Affine() [6]float64 {
	return [6]float64{m.M11, m.M12, m.M21, m.M22, m.OffsetX, m.OffsetY}
}

// MatrixFromAffine is the inverse of Matrix.Affine.
func MatrixFromAffine(a [6]float64) Matrix {
	return Matrix{a[0], a[1], a[2], a[3], a[4], a[5]}
}

// LerpMatrix eases each of the six components independently.
func LerpMatrix(start, end Matrix, p float64) Matrix {
	if start == end {
		return end
	}
	return Matrix{
		M11:     Float(start.M11, end.M11, p),
		M12:     Float(start.M12, end.M12, p),
		M21:     Float(start.M21, end.M21, p),
		M22:     Float(start.M22, end.M22, p),
		OffsetX: Float(start.OffsetX, end.OffsetX, p),
		OffsetY: Float(start.OffsetY, end.OffsetY, p),
	}
}

// LerpMatrix3D eases all sixteen components independently.
func LerpMatrix3D(start, end Matrix3D, p float64) Matrix3D {
	if start == end {
		return end
	}
	var m Matrix3D
	for i := range m {
		m[i] = Float(start[i], end[i], p)
	}
	return m
}
