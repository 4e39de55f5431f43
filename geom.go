package tilekit

// Rectangle is an axis-aligned rectangle. The coordinate system has its origin
// at the top-left, with Y increasing downward. Rectangle is a value type.
type Rectangle struct {
	X, Y, Width, Height float64
}

// NewRectangle returns a rectangle with the given position and size.
func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// SetTo sets all four members of r.
func (r *Rectangle) SetTo(x, y, width, height float64) {
	r.X = x
	r.Y = y
	r.Width = width
	r.Height = height
}

// CopyFrom copies src into r.
func (r *Rectangle) CopyFrom(src Rectangle) {
	*r = src
}

// Clone returns a pointer to a copy of r.
func (r Rectangle) Clone() *Rectangle {
	return &r
}

func (r Rectangle) Left() float64   { return r.X }
func (r Rectangle) Top() float64    { return r.Y }
func (r Rectangle) Right() float64  { return r.X + r.Width }
func (r Rectangle) Bottom() float64 { return r.Y + r.Height }

// IsEmpty reports whether r has zero or negative area.
func (r Rectangle) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside r. The left and top
// edges are inside, the right and bottom edges are outside.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x < r.Right() && y < r.Bottom()
}

// Intersects reports whether r and other overlap with a positive area.
// Rectangles that only share an edge do not intersect.
func (r Rectangle) Intersects(other Rectangle) bool {
	x0 := max(r.X, other.X)
	x1 := min(r.Right(), other.Right())
	if x1 <= x0 {
		return false
	}
	y0 := max(r.Y, other.Y)
	y1 := min(r.Bottom(), other.Bottom())
	return y1 > y0
}

// Intersection returns the overlapping area of r and other, or the zero
// rectangle when they do not intersect.
func (r Rectangle) Intersection(other Rectangle) Rectangle {
	x0 := max(r.X, other.X)
	x1 := min(r.Right(), other.Right())
	if x1 <= x0 {
		return Rectangle{}
	}
	y0 := max(r.Y, other.Y)
	y1 := min(r.Bottom(), other.Bottom())
	if y1 <= y0 {
		return Rectangle{}
	}
	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Union returns the smallest rectangle containing both r and other. An empty
// operand contributes nothing.
func (r Rectangle) Union(other Rectangle) Rectangle {
	if r.Width == 0 || r.Height == 0 {
		return other
	}
	if other.Width == 0 || other.Height == 0 {
		return r
	}
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.Right(), other.Right())
	y1 := max(r.Bottom(), other.Bottom())
	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Expand grows r in place to also cover the rectangle (x, y, width, height).
// A zero-size r takes the given rectangle as is.
func (r *Rectangle) Expand(x, y, width, height float64) {
	if r.Width == 0 && r.Height == 0 {
		r.SetTo(x, y, width, height)
		return
	}

	right := r.Right()
	bottom := r.Bottom()

	if r.X > x {
		r.X = x
		r.Width = right - x
	}
	if r.Y > y {
		r.Y = y
		r.Height = bottom - y
	}
	if right < x+width {
		r.Width = x + width - r.X
	}
	if bottom < y+height {
		r.Height = y + height - r.Y
	}
}

// Transform returns the axis-aligned bounding box of r after applying m.
// All four corners go through the linear part of m, the min/max is taken,
// and the result is translated by (m.TX, m.TY). Valid under rotation and shear.
func (r Rectangle) Transform(m *Matrix) Rectangle {
	tx0 := m.A*r.X + m.C*r.Y
	tx1 := tx0
	ty0 := m.B*r.X + m.D*r.Y
	ty1 := ty0

	corner := func(x, y float64) {
		tx := m.A*x + m.C*y
		ty := m.B*x + m.D*y
		if tx < tx0 {
			tx0 = tx
		}
		if ty < ty0 {
			ty0 = ty
		}
		if tx > tx1 {
			tx1 = tx
		}
		if ty > ty1 {
			ty1 = ty
		}
	}
	corner(r.Right(), r.Y)
	corner(r.Right(), r.Bottom())
	corner(r.X, r.Bottom())

	return Rectangle{X: tx0 + m.TX, Y: ty0 + m.TY, Width: tx1 - tx0, Height: ty1 - ty0}
}
