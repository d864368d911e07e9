package types

import "github.com/go-gl/mathgl/mgl32"

// A column-major 4x4 matrix. Element (row, col) is stored at index col*4 + row.
type Mat4 mgl32.Mat4

// Create an identity matrix.
func Ident4() Mat4 {
	return Mat4(mgl32.Ident4())
}

// Create a translation matrix.
func Translate4(v Vec3) Mat4 {
	return Mat4(mgl32.Translate3D(v[0], v[1], v[2]))
}

// Create a scale matrix.
func Scale4(v Vec3) Mat4 {
	return Mat4(mgl32.Scale3D(v[0], v[1], v[2]))
}

// Multiply with another 4x4 matrix (m * m2).
func (m Mat4) Mul4(m2 Mat4) Mat4 {
	return Mat4(mgl32.Mat4(m).Mul4(mgl32.Mat4(m2)))
}

// Multiply with a column vector.
func (m Mat4) Mul4x1(v Vec4) Vec4 {
	return Vec4(mgl32.Mat4(m).Mul4x1(mgl32.Vec4(v)))
}

// Transform a point (w = 1) and drop the w component.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// Calculate the matrix inverse. Singular matrices yield the zero matrix.
func (m Mat4) Inv() Mat4 {
	return Mat4(mgl32.Mat4(m).Inv())
}

// Create a rotation matrix from rotation angles (radians) around the X, Y and Z
// axes. The X rotation is applied first, followed by Y and finally Z.
func Rotate4(angles Vec3) Mat4 {
	xRot := mgl32.QuatRotate(angles[0], mgl32.Vec3{1, 0, 0})
	yRot := mgl32.QuatRotate(angles[1], mgl32.Vec3{0, 1, 0})
	zRot := mgl32.QuatRotate(angles[2], mgl32.Vec3{0, 0, 1})
	return Mat4(zRot.Mul(yRot.Mul(xRot)).Normalize().Mat4())
}
