package tilekit

// findTileRect resolves the tile's local source rectangle. An explicit rect
// wins; otherwise the region for ID is looked up in the tile's own tileset,
// or in the nearest ancestor tileset. Anything unresolved yields the zero
// rectangle. The origin is always normalized to (0, 0): only the size
// matters locally, position comes from the matrix.
func (t *Tile) findTileRect() Rectangle {
	var r Rectangle
	switch {
	case t.rect != nil:
		r = *t.rect
	case t.tileset != nil:
		r, _ = t.tileset.Rect(t.id)
	case t.parent != nil:
		r, _ = t.parent.findTileset().Rect(t.id)
	}
	r.X = 0
	r.Y = 0
	return r
}

// findTileset returns the nearest tileset at or above t. The walk goes
// strictly upward and ends at a tile with its own tileset, at the Tilemap
// root, or at a nil parent.
func (t *Tile) findTileset() *Tileset {
	if t.tileset != nil {
		return t.tileset
	}
	if t.parent == nil {
		return nil
	}
	return t.parent.findTileset()
}

// WorldTransform returns a new matrix mapping the tile's local coordinates
// to the root's coordinate space: the tile's matrix followed by each
// ancestor's, innermost first.
func (t *Tile) WorldTransform() *Matrix {
	m := NewIdentityMatrix()
	t.worldTransformInto(m)
	return m
}

func (t *Tile) worldTransformInto(m *Matrix) {
	m.CopyFrom(t.matrix)
	if t.parent == nil {
		return
	}
	p := getMatrix()
	defer putMatrix(p)
	t.parent.worldTransformInto(p)
	m.Concat(p)
}

// spaceTransformInto sets m to the transform from t's space into target's.
// A nil target, or t itself, is the identity.
func (t *Tile) spaceTransformInto(target TileNode, m *Matrix) {
	if target == nil {
		m.Identity()
		return
	}
	tt := target.asTile()
	if tt == nil || tt == t {
		m.Identity()
		return
	}

	t.worldTransformInto(m)

	inv := getMatrix()
	defer putMatrix(inv)
	tt.worldTransformInto(inv)
	inv.Invert()

	m.Concat(inv)
}

// Bounds returns the tile's bounding box in the coordinate space of
// targetCoordinateSpace. With nil, or the tile itself, the box is the bare
// source region at the origin. An unresolved region yields the zero rectangle.
func (t *Tile) Bounds(targetCoordinateSpace TileNode) Rectangle {
	m := getMatrix()
	defer putMatrix(m)
	t.spaceTransformInto(targetCoordinateSpace, m)
	return t.findTileRect().Transform(m)
}

// HitTestTile reports whether the bounding boxes of t and other intersect,
// both expressed in t's space. Both tiles must be attached to a parent;
// otherwise the result is false.
func (t *Tile) HitTestTile(other TileNode) bool {
	return hitTest(t, other)
}

func hitTest(self, other TileNode) bool {
	if other == nil || self.asTile().parent == nil {
		return false
	}
	ot := other.asTile()
	if ot == nil || ot.parent == nil {
		return false
	}
	return self.Bounds(self).Intersects(other.Bounds(self))
}
