package tilekit

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Matrix is a 2D affine transform.
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// A point (x, y) maps to (a*x + c*y + tx, b*x + d*y + ty).
type Matrix struct {
	A, B, C, D float64
	TX, TY     float64
}

// NewMatrix returns a matrix with the given elements.
func NewMatrix(a, b, c, d, tx, ty float64) *Matrix {
	return &Matrix{A: a, B: b, C: c, D: d, TX: tx, TY: ty}
}

// NewIdentityMatrix returns a new identity matrix.
func NewIdentityMatrix() *Matrix {
	return &Matrix{A: 1, D: 1}
}

// Identity resets m to the identity transform.
func (m *Matrix) Identity() {
	*m = Matrix{A: 1, D: 1}
}

// SetTo sets all six elements of m.
func (m *Matrix) SetTo(a, b, c, d, tx, ty float64) {
	m.A, m.B, m.C, m.D, m.TX, m.TY = a, b, c, d, tx, ty
}

// CopyFrom copies the elements of src into m.
func (m *Matrix) CopyFrom(src *Matrix) {
	*m = *src
}

// Clone returns a new matrix with the same elements.
func (m *Matrix) Clone() *Matrix {
	c := *m
	return &c
}

// Equals reports whether m and other have identical elements.
func (m *Matrix) Equals(other *Matrix) bool {
	return other != nil && *m == *other
}

// Concat sets m to m followed by other: a point transformed by the result
// is transformed by m first, then by other.
func (m *Matrix) Concat(other *Matrix) {
	a := m.A*other.A + m.B*other.C
	b := m.A*other.B + m.B*other.D
	c := m.C*other.A + m.D*other.C
	d := m.C*other.B + m.D*other.D
	tx := m.TX*other.A + m.TY*other.C + other.TX
	ty := m.TX*other.B + m.TY*other.D + other.TY
	m.A, m.B, m.C, m.D, m.TX, m.TY = a, b, c, d, tx, ty
}

// Invert inverts m in place. A singular matrix zeroes its linear part and
// negates its translation.
func (m *Matrix) Invert() {
	norm := m.A*m.D - m.B*m.C
	if norm == 0 {
		m.A, m.B, m.C, m.D = 0, 0, 0, 0
		m.TX = -m.TX
		m.TY = -m.TY
		return
	}
	norm = 1.0 / norm

	a1 := m.D * norm
	m.D = m.A * norm
	m.A = a1
	m.B *= -norm
	m.C *= -norm

	tx1 := -m.A*m.TX - m.C*m.TY
	m.TY = -m.B*m.TX - m.D*m.TY
	m.TX = tx1
}

// Translate applies a translation after the current transform.
func (m *Matrix) Translate(dx, dy float64) {
	m.TX += dx
	m.TY += dy
}

// Scale applies a scale after the current transform.
func (m *Matrix) Scale(sx, sy float64) {
	m.A *= sx
	m.B *= sy
	m.C *= sx
	m.D *= sy
	m.TX *= sx
	m.TY *= sy
}

// Rotate applies a rotation (in radians) after the current transform.
func (m *Matrix) Rotate(theta float64) {
	sin, cos := math.Sincos(theta)
	a := m.A*cos - m.B*sin
	b := m.A*sin + m.B*cos
	c := m.C*cos - m.D*sin
	d := m.C*sin + m.D*cos
	tx := m.TX*cos - m.TY*sin
	ty := m.TX*sin + m.TY*cos
	m.A, m.B, m.C, m.D, m.TX, m.TY = a, b, c, d, tx, ty
}

// TransformPoint applies m to the point (x, y).
func (m *Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.TX, m.B*x + m.D*y + m.TY
}

// DeltaTransformPoint applies the linear part of m to (x, y), ignoring translation.
func (m *Matrix) DeltaTransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.C*y, m.B*x + m.D*y
}

// InverseTransformPoint maps (x, y) through the inverse of m without
// allocating the inverse. A singular m yields (-tx, -ty).
func (m *Matrix) InverseTransformPoint(x, y float64) (float64, float64) {
	norm := m.A*m.D - m.B*m.C
	if norm == 0 {
		return -m.TX, -m.TY
	}
	inv := 1.0 / norm
	return inv * (m.C*(m.TY-y) + m.D*(x-m.TX)),
		inv * (m.A*(y-m.TY) + m.B*(m.TX-x))
}

// GeoM returns m as an ebiten.GeoM.
func (m *Matrix) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(1, 0, m.B)
	g.SetElement(0, 1, m.C)
	g.SetElement(1, 1, m.D)
	g.SetElement(0, 2, m.TX)
	g.SetElement(1, 2, m.TY)
	return g
}

// matrixPool recycles scratch matrices for bounds computations. Callers get a
// matrix, defer putMatrix, and never read it after release.
var matrixPool = sync.Pool{
	New: func() any { return NewIdentityMatrix() },
}

func getMatrix() *Matrix {
	m := matrixPool.Get().(*Matrix)
	m.Identity()
	return m
}

func putMatrix(m *Matrix) {
	if m == nil {
		return
	}
	matrixPool.Put(m)
}
