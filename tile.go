package tilekit

import "math"

// TileNode is anything that can be a child of a TileContainer or Tilemap:
// a *Tile or a *TileContainer.
type TileNode interface {
	// Bounds returns the node's bounding box in the coordinate space of
	// targetCoordinateSpace; nil means the node's own space.
	Bounds(targetCoordinateSpace TileNode) Rectangle

	asTile() *Tile
	cloneNode() TileNode
	childNodes() ([]TileNode, bool)
}

// TileOwner is the parent side of a tile: a *TileContainer or a *Tilemap.
// A tile holds its owner as a non-owning back-reference.
type TileOwner interface {
	// RemoveTile detaches tile from the owner and returns it.
	RemoveTile(tile TileNode) TileNode

	asTile() *Tile // nil for the Tilemap root
	findTileset() *Tileset
	setRenderDirty()
	worldTransformInto(m *Matrix)
}

// decomposed is a value derived lazily from a tile's matrix. It is unknown
// until read or set, and reset only when the whole matrix is replaced.
type decomposed struct {
	value float64
	known bool
}

func (d *decomposed) store(v float64) {
	d.value = v
	d.known = true
}

func (d *decomposed) reset() {
	*d = decomposed{}
}

func (d *decomposed) differs(v float64) bool {
	return !d.known || d.value != v
}

// Tile is a single positioned, transformed reference into a Tileset region.
// Its matrix is the authority for position, scale and rotation; the
// accessors read from and write into it. Every tracked setter that changes
// a value marks the tile dirty and notifies its parent chain.
//
// Tiles are not safe for concurrent use. Mutate the graph in an update phase
// and read it in a separate render phase.
type Tile struct {
	// Data is an opaque user value. It is not copied by Clone.
	Data any

	id     int
	matrix *Matrix

	rotation       decomposed // degrees
	scaleX, scaleY decomposed
	rotationSine   float64
	rotationCosine float64

	originX, originY float64

	rect           *Rectangle
	tileset        *Tileset
	alpha          float64
	blendMode      BlendMode
	colorTransform *ColorTransform
	shader         *Shader
	visible        bool

	dirty  bool
	parent TileOwner
}

// NewTile creates a tile drawing region id, at the origin with no scale or
// rotation applied.
func NewTile(id int) *Tile {
	t := &Tile{}
	t.init(id)
	return t
}

// NewTileTransformed creates a tile with an initial transform. rotation is
// in degrees; originX and originY are stored as pivot metadata.
func NewTileTransformed(id int, x, y, scaleX, scaleY, rotation, originX, originY float64) *Tile {
	t := &Tile{}
	t.init(id)
	t.applyInitialTransform(x, y, scaleX, scaleY, rotation)
	t.originX = originX
	t.originY = originY
	return t
}

func (t *Tile) init(id int) {
	t.id = id
	t.matrix = NewIdentityMatrix()
	t.rotation.store(0)
	t.rotationCosine = 1
	t.scaleX.store(1)
	t.scaleY.store(1)
	t.alpha = 1
	t.visible = true
	t.dirty = true
}

func (t *Tile) applyInitialTransform(x, y, scaleX, scaleY, rotation float64) {
	if x != 0 {
		t.SetX(x)
	}
	if y != 0 {
		t.SetY(y)
	}
	if scaleX != 1 {
		t.SetScaleX(scaleX)
	}
	if scaleY != 1 {
		t.SetScaleY(scaleY)
	}
	if rotation != 0 {
		t.SetRotation(rotation)
	}
	t.dirty = true
}

func (t *Tile) asTile() *Tile { return t }

func (t *Tile) cloneNode() TileNode { return t.Clone() }

func (t *Tile) childNodes() ([]TileNode, bool) { return nil, false }

// Clone returns an unparented copy of t. The rect, matrix and color transform
// are copied; the shader and tileset are shared.
func (t *Tile) Clone() *Tile {
	c := NewTile(t.id)
	copyTileState(c, t)
	return c
}

func copyTileState(dst, src *Tile) {
	dst.alpha = src.alpha
	dst.blendMode = src.blendMode
	dst.originX = src.originX
	dst.originY = src.originY
	if src.rect != nil {
		dst.rect = src.rect.Clone()
	}
	dst.SetMatrix(src.matrix.Clone())
	dst.shader = src.shader
	dst.SetTileset(src.tileset)
	if src.colorTransform != nil {
		dst.colorTransform = src.colorTransform.Clone()
	}
}

// Invalidate marks the tile dirty for the next render, for state changes the
// setters do not see, such as editing the uniforms of a shared Shader.
func (t *Tile) Invalidate() {
	t.setRenderDirty()
}

// Dirty reports whether the tile needs re-rendering.
func (t *Tile) Dirty() bool {
	return t.dirty
}

// Parent returns the owning container or tilemap, or nil.
func (t *Tile) Parent() TileOwner {
	return t.parent
}

// setRenderDirty latches the dirty flag and notifies the parent on the
// false to true transition only.
func (t *Tile) setRenderDirty() {
	if t.dirty {
		return
	}
	t.dirty = true
	if t.parent != nil {
		t.parent.setRenderDirty()
	}
}

// --- Transform ---

func (t *Tile) X() float64 {
	return t.matrix.TX
}

func (t *Tile) SetX(v float64) {
	if v == t.matrix.TX {
		return
	}
	t.matrix.TX = v
	t.setRenderDirty()
}

func (t *Tile) Y() float64 {
	return t.matrix.TY
}

func (t *Tile) SetY(v float64) {
	if v == t.matrix.TY {
		return
	}
	t.matrix.TY = v
	t.setRenderDirty()
}

// Rotation returns the rotation in degrees. It is derived from the matrix on
// first read after the matrix was replaced, and cached with its sine and
// cosine. An axis-aligned matrix (b == 0 and c == 0) reads as exactly 0.
func (t *Tile) Rotation() float64 {
	if !t.rotation.known {
		if t.matrix.B == 0 && t.matrix.C == 0 {
			t.rotation.store(0)
			t.rotationSine = 0
			t.rotationCosine = 1
		} else {
			radians := math.Atan2(t.matrix.D, t.matrix.C) - math.Pi/2
			t.rotation.store(radians * (180 / math.Pi))
			t.rotationSine, t.rotationCosine = math.Sincos(radians)
		}
	}
	return t.rotation.value
}

// SetRotation sets the rotation in degrees. The current scale magnitudes are
// kept and the linear part of the matrix is rewritten.
func (t *Tile) SetRotation(degrees float64) {
	if !t.rotation.differs(degrees) {
		return
	}
	t.rotation.store(degrees)
	t.rotationSine, t.rotationCosine = math.Sincos(degrees * (math.Pi / 180))

	sx := t.ScaleX()
	sy := t.ScaleY()

	t.matrix.A = t.rotationCosine * sx
	t.matrix.B = t.rotationSine * sx
	t.matrix.C = -t.rotationSine * sy
	t.matrix.D = t.rotationCosine * sy

	t.setRenderDirty()
}

// ScaleX returns the horizontal scale. Without shear (b == 0) this is a;
// otherwise it is the length of (a, b) and always non-negative.
func (t *Tile) ScaleX() float64 {
	if !t.scaleX.known {
		if t.matrix.B == 0 {
			t.scaleX.store(t.matrix.A)
		} else {
			t.scaleX.store(math.Sqrt(t.matrix.A*t.matrix.A + t.matrix.B*t.matrix.B))
		}
	}
	return t.scaleX.value
}

// SetScaleX sets the horizontal scale, keeping the current rotation.
func (t *Tile) SetScaleX(v float64) {
	if !t.scaleX.differs(v) {
		return
	}
	t.scaleX.store(v)

	if t.matrix.B == 0 {
		t.matrix.A = v
	} else {
		t.Rotation()
		t.matrix.A = t.rotationCosine * v
		t.matrix.B = t.rotationSine * v
	}

	t.setRenderDirty()
}

// ScaleY returns the vertical scale. Without shear (c == 0) this is d;
// otherwise it is the length of (c, d) and always non-negative.
func (t *Tile) ScaleY() float64 {
	if !t.scaleY.known {
		if t.matrix.C == 0 {
			t.scaleY.store(t.matrix.D)
		} else {
			t.scaleY.store(math.Sqrt(t.matrix.C*t.matrix.C + t.matrix.D*t.matrix.D))
		}
	}
	return t.scaleY.value
}

// SetScaleY sets the vertical scale, keeping the current rotation.
func (t *Tile) SetScaleY(v float64) {
	if !t.scaleY.differs(v) {
		return
	}
	t.scaleY.store(v)

	if t.matrix.C == 0 {
		t.matrix.D = v
	} else {
		t.Rotation()
		t.matrix.C = -t.rotationSine * v
		t.matrix.D = t.rotationCosine * v
	}

	t.setRenderDirty()
}

// Matrix returns the tile's matrix. Editing it in place bypasses dirty
// tracking and the decomposition cache; call Invalidate, or use SetMatrix.
func (t *Tile) Matrix() *Matrix {
	return t.matrix
}

// SetMatrix replaces the matrix. A different instance discards the cached
// rotation and scale, which are derived again on the next read. nil is ignored.
func (t *Tile) SetMatrix(m *Matrix) {
	if m == nil || m == t.matrix {
		return
	}
	t.rotation.reset()
	t.scaleX.reset()
	t.scaleY.reset()
	t.matrix = m
	t.setRenderDirty()
}

// Width returns the width of the tile's region after its own transform.
func (t *Tile) Width() float64 {
	return t.findTileRect().Transform(t.matrix).Width
}

// SetWidth adjusts ScaleX so the untransformed region spans v. A region of
// zero width leaves the tile unchanged.
func (t *Tile) SetWidth(v float64) {
	r := t.findTileRect()
	if r.Width != 0 {
		t.SetScaleX(v / r.Width)
	}
}

// Height returns the height of the tile's region after its own transform.
func (t *Tile) Height() float64 {
	return t.findTileRect().Transform(t.matrix).Height
}

// SetHeight adjusts ScaleY so the untransformed region spans v. A region of
// zero height leaves the tile unchanged.
func (t *Tile) SetHeight(v float64) {
	r := t.findTileRect()
	if r.Height != 0 {
		t.SetScaleY(v / r.Height)
	}
}

func (t *Tile) OriginX() float64 {
	return t.originX
}

func (t *Tile) SetOriginX(v float64) {
	if v == t.originX {
		return
	}
	t.originX = v
	t.setRenderDirty()
}

func (t *Tile) OriginY() float64 {
	return t.originY
}

func (t *Tile) SetOriginY(v float64) {
	if v == t.originY {
		return
	}
	t.originY = v
	t.setRenderDirty()
}

// --- Appearance ---

// ID returns the tileset region index the tile draws.
func (t *Tile) ID() int {
	return t.id
}

func (t *Tile) SetID(v int) {
	if v == t.id {
		return
	}
	t.id = v
	t.setRenderDirty()
}

// Rect returns the explicit source region, or nil when the tileset region
// for ID is used.
func (t *Tile) Rect() *Rectangle {
	return t.rect
}

func (t *Tile) SetRect(r *Rectangle) {
	if r == t.rect {
		return
	}
	t.rect = r
	t.setRenderDirty()
}

// Tileset returns the tile's own tileset. nil means the nearest ancestor's
// tileset is used.
func (t *Tile) Tileset() *Tileset {
	return t.tileset
}

func (t *Tile) SetTileset(ts *Tileset) {
	if ts == t.tileset {
		return
	}
	t.tileset = ts
	t.setRenderDirty()
}

func (t *Tile) Shader() *Shader {
	return t.shader
}

func (t *Tile) SetShader(s *Shader) {
	if s == t.shader {
		return
	}
	t.shader = s
	t.setRenderDirty()
}

func (t *Tile) ColorTransform() *ColorTransform {
	return t.colorTransform
}

func (t *Tile) SetColorTransform(ct *ColorTransform) {
	if ct == t.colorTransform {
		return
	}
	t.colorTransform = ct
	t.setRenderDirty()
}

func (t *Tile) BlendMode() BlendMode {
	return t.blendMode
}

func (t *Tile) SetBlendMode(b BlendMode) {
	if b == t.blendMode {
		return
	}
	t.blendMode = b
	t.setRenderDirty()
}

func (t *Tile) Visible() bool {
	return t.visible
}

func (t *Tile) SetVisible(v bool) {
	if v == t.visible {
		return
	}
	t.visible = v
	t.setRenderDirty()
}

// Alpha returns the transparency in [0, 1]. Tiles with alpha 0 are still
// part of the tree and hit tests.
func (t *Tile) Alpha() float64 {
	return t.alpha
}

func (t *Tile) SetAlpha(v float64) {
	if v == t.alpha {
		return
	}
	t.alpha = v
	t.setRenderDirty()
}
