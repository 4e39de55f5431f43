package tilekit

import "sort"

// tileList is the ordered child list shared by TileContainer and Tilemap.
// It keeps every child's parent back-reference pointing at owner.
type tileList struct {
	owner    TileOwner
	children []TileNode
}

// AddTile appends tile and returns it.
// If tile already has a parent, it is removed from that parent first.
// Panics if tile is nil or would become its own ancestor.
func (l *tileList) AddTile(tile TileNode) TileNode {
	return l.AddTileAt(tile, len(l.children))
}

// AddTileAt inserts tile at index and returns it.
// Same reparenting and cycle-check behavior as AddTile.
func (l *tileList) AddTileAt(tile TileNode, index int) TileNode {
	t := nodeTile(tile)
	if t == nil {
		panic("tilekit: cannot add nil tile")
	}
	if l.createsCycle(t) {
		panic("tilekit: adding tile would create a cycle")
	}
	if index < 0 || index > len(l.children) {
		panic("tilekit: tile index out of range")
	}

	if t.parent != nil {
		if t.parent == l.owner {
			if old := l.TileIndex(tile); old < index {
				index--
			}
		}
		t.parent.RemoveTile(tile)
	}

	l.children = append(l.children, nil)
	copy(l.children[index+1:], l.children[index:])
	l.children[index] = tile
	t.parent = l.owner
	l.owner.setRenderDirty()

	if globalDebug {
		debugCheckTreeDepth(t)
		debugCheckChildCount(l)
	}
	return tile
}

// AddTiles appends each tile in order.
func (l *tileList) AddTiles(tiles ...TileNode) {
	for _, tile := range tiles {
		l.AddTile(tile)
	}
}

// RemoveTile detaches tile and returns it.
// Panics if tile is not a child of this owner.
func (l *tileList) RemoveTile(tile TileNode) TileNode {
	t := nodeTile(tile)
	if t == nil || t.parent != l.owner {
		panic("tilekit: tile's parent is not this container")
	}
	return l.RemoveTileAt(l.TileIndex(tile))
}

// RemoveTileAt detaches and returns the tile at index.
func (l *tileList) RemoveTileAt(index int) TileNode {
	if index < 0 || index >= len(l.children) {
		panic("tilekit: tile index out of range")
	}
	tile := l.children[index]
	copy(l.children[index:], l.children[index+1:])
	l.children[len(l.children)-1] = nil
	l.children = l.children[:len(l.children)-1]
	tile.asTile().parent = nil
	l.owner.setRenderDirty()
	return tile
}

// RemoveTiles detaches the tiles in [begin, end). Both bounds are clamped
// to the child list.
func (l *tileList) RemoveTiles(begin, end int) {
	begin = max(begin, 0)
	end = min(end, len(l.children))
	if begin >= end {
		return
	}
	for _, tile := range l.children[begin:end] {
		tile.asTile().parent = nil
	}
	n := copy(l.children[begin:], l.children[end:])
	for i := begin + n; i < len(l.children); i++ {
		l.children[i] = nil
	}
	l.children = l.children[:begin+n]
	l.owner.setRenderDirty()
}

// TileAt returns the tile at index, or nil when index is out of range.
func (l *tileList) TileAt(index int) TileNode {
	if index < 0 || index >= len(l.children) {
		return nil
	}
	return l.children[index]
}

// TileIndex returns the index of tile, or -1.
func (l *tileList) TileIndex(tile TileNode) int {
	t := nodeTile(tile)
	if t == nil {
		return -1
	}
	for i, c := range l.children {
		if c.asTile() == t {
			return i
		}
	}
	return -1
}

// ContainsTile reports whether tile is a direct child.
func (l *tileList) ContainsTile(tile TileNode) bool {
	return l.TileIndex(tile) >= 0
}

// SetTileIndex moves tile to a new index among its siblings.
func (l *tileList) SetTileIndex(tile TileNode, index int) {
	old := l.TileIndex(tile)
	if old < 0 {
		panic("tilekit: tile's parent is not this container")
	}
	if index < 0 || index >= len(l.children) {
		panic("tilekit: tile index out of range")
	}
	if old == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if old < index {
		copy(l.children[old:], l.children[old+1:index+1])
	} else {
		copy(l.children[index+1:], l.children[index:old])
	}
	l.children[index] = tile
	l.owner.setRenderDirty()
}

// SwapTiles exchanges the positions of two children.
func (l *tileList) SwapTiles(a, b TileNode) {
	i, j := l.TileIndex(a), l.TileIndex(b)
	if i < 0 || j < 0 {
		panic("tilekit: tile's parent is not this container")
	}
	l.SwapTilesAt(i, j)
}

// SwapTilesAt exchanges the children at indices i and j.
func (l *tileList) SwapTilesAt(i, j int) {
	if i < 0 || i >= len(l.children) || j < 0 || j >= len(l.children) {
		panic("tilekit: tile index out of range")
	}
	if i == j {
		return
	}
	l.children[i], l.children[j] = l.children[j], l.children[i]
	l.owner.setRenderDirty()
}

// SortTiles reorders the children with a stable sort.
func (l *tileList) SortTiles(less func(a, b TileNode) bool) {
	sort.SliceStable(l.children, func(i, j int) bool {
		return less(l.children[i], l.children[j])
	})
	l.owner.setRenderDirty()
}

// NumTiles returns the number of direct children.
func (l *tileList) NumTiles() int {
	return len(l.children)
}

// Tiles returns the child list. The returned slice MUST NOT be mutated by the caller.
func (l *tileList) Tiles() []TileNode {
	return l.children
}

// createsCycle reports whether t is the owner or one of its ancestors.
func (l *tileList) createsCycle(t *Tile) bool {
	for p := l.owner; p != nil; {
		pt := p.asTile()
		if pt == nil {
			return false
		}
		if pt == t {
			return true
		}
		p = pt.parent
	}
	return false
}

// nodeTile unwraps n, treating a nil interface and a typed nil alike.
func nodeTile(n TileNode) *Tile {
	if n == nil {
		return nil
	}
	return n.asTile()
}

// TileContainer is a Tile that holds an ordered list of child tiles. Its own
// matrix applies to all children, and its tileset (if set) is the fallback
// for descendants without one.
type TileContainer struct {
	Tile
	tileList
}

// NewTileContainer creates an empty container at the origin.
func NewTileContainer() *TileContainer {
	c := &TileContainer{}
	c.Tile.init(0)
	c.tileList.owner = c
	return c
}

// NewTileContainerTransformed creates an empty container with an initial
// transform. rotation is in degrees.
func NewTileContainerTransformed(x, y, scaleX, scaleY, rotation, originX, originY float64) *TileContainer {
	c := NewTileContainer()
	c.applyInitialTransform(x, y, scaleX, scaleY, rotation)
	c.originX = originX
	c.originY = originY
	return c
}

func (c *TileContainer) cloneNode() TileNode { return c.Clone() }

func (c *TileContainer) childNodes() ([]TileNode, bool) { return c.children, true }

// Clone returns an unparented deep copy: the container's own state as
// Tile.Clone copies it, plus a clone of every child.
func (c *TileContainer) Clone() *TileContainer {
	nc := NewTileContainer()
	copyTileState(&nc.Tile, &c.Tile)
	for _, child := range c.children {
		nc.AddTile(child.cloneNode())
	}
	return nc
}

// Bounds returns the union of the children's bounds in the coordinate space
// of targetCoordinateSpace; nil means the container's own space. An empty
// container yields the zero rectangle.
func (c *TileContainer) Bounds(targetCoordinateSpace TileNode) Rectangle {
	space := targetCoordinateSpace
	if nodeTile(space) == nil {
		space = c
	}
	var result Rectangle
	for _, child := range c.children {
		r := child.Bounds(space)
		result.Expand(r.X, r.Y, r.Width, r.Height)
	}
	return result
}

// HitTestTile reports whether the bounds of c and other intersect in c's space.
func (c *TileContainer) HitTestTile(other TileNode) bool {
	return hitTest(c, other)
}

// Width returns the width of the children's bounds after the container's
// own transform.
func (c *TileContainer) Width() float64 {
	return c.Bounds(c).Transform(c.matrix).Width
}

// SetWidth adjusts ScaleX so the untransformed children span v. Zero-width
// content leaves the container unchanged.
func (c *TileContainer) SetWidth(v float64) {
	b := c.Bounds(c)
	if b.Width != 0 {
		c.SetScaleX(v / b.Width)
	}
}

// Height returns the height of the children's bounds after the container's
// own transform.
func (c *TileContainer) Height() float64 {
	return c.Bounds(c).Transform(c.matrix).Height
}

// SetHeight adjusts ScaleY so the untransformed children span v. Zero-height
// content leaves the container unchanged.
func (c *TileContainer) SetHeight(v float64) {
	b := c.Bounds(c)
	if b.Height != 0 {
		c.SetScaleY(v / b.Height)
	}
}
