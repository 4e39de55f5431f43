package tilekit

import (
	"math"
	"testing"
)

type countingSink struct {
	events []InvalidationEvent
}

func (s *countingSink) EmitInvalidation(e InvalidationEvent) {
	s.events = append(s.events, e)
}

func testTileset() *Tileset {
	return NewTileset(nil, []Rectangle{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 10, Y: 0, Width: 20, Height: 8},
	})
}

// --- Construction ---

func TestNewTileDefaults(t *testing.T) {
	tile := NewTile(3)
	if tile.ID() != 3 {
		t.Errorf("ID = %d, want 3", tile.ID())
	}
	if tile.X() != 0 || tile.Y() != 0 {
		t.Errorf("position = (%v, %v), want (0, 0)", tile.X(), tile.Y())
	}
	if tile.ScaleX() != 1 || tile.ScaleY() != 1 {
		t.Errorf("scale = (%v, %v), want (1, 1)", tile.ScaleX(), tile.ScaleY())
	}
	if tile.Rotation() != 0 {
		t.Errorf("Rotation = %v, want 0", tile.Rotation())
	}
	if tile.Alpha() != 1 {
		t.Errorf("Alpha = %v, want 1", tile.Alpha())
	}
	if !tile.Visible() {
		t.Error("new tile should be visible")
	}
	if !tile.Dirty() {
		t.Error("new tile should start dirty")
	}
	if tile.BlendMode() != BlendInherit {
		t.Errorf("BlendMode = %v, want inherit", tile.BlendMode())
	}
	if tile.Parent() != nil || tile.Tileset() != nil || tile.Rect() != nil {
		t.Error("new tile should have no parent, tileset or rect")
	}
}

func TestNewTileTransformed(t *testing.T) {
	tile := NewTileTransformed(1, 10, 20, 2, 3, 90, 4, 5)
	assertNear(t, "X", tile.X(), 10)
	assertNear(t, "Y", tile.Y(), 20)
	assertNear(t, "ScaleX", tile.ScaleX(), 2)
	assertNear(t, "ScaleY", tile.ScaleY(), 3)
	assertNear(t, "Rotation", tile.Rotation(), 90)
	assertNear(t, "OriginX", tile.OriginX(), 4)
	assertNear(t, "OriginY", tile.OriginY(), 5)

	m := tile.Matrix()
	assertMatrix(t, "matrix", m, Matrix{A: 0, B: 2, C: -3, D: 0, TX: 10, TY: 20})
}

func TestOriginDoesNotMoveTile(t *testing.T) {
	tile := NewTileTransformed(0, 0, 0, 1, 1, 0, 5, 5)
	tm := NewTilemap(100, 100, testTileset())
	tm.AddTile(tile)
	assertRect(t, "bounds", tile.Bounds(nil), Rectangle{0, 0, 10, 10})
	assertNear(t, "TX", tile.WorldTransform().TX, 0)
}

// --- Matrix decomposition ---

func TestSetMatrixAxisAligned(t *testing.T) {
	tile := NewTile(0)
	tile.SetMatrix(NewMatrix(2, 0, 0, 3, 5, 6))
	assertNear(t, "ScaleX", tile.ScaleX(), 2)
	assertNear(t, "ScaleY", tile.ScaleY(), 3)
	if tile.Rotation() != 0 {
		t.Errorf("Rotation = %v, want exactly 0", tile.Rotation())
	}
	assertNear(t, "X", tile.X(), 5)
	assertNear(t, "Y", tile.Y(), 6)
}

func TestSetMatrixRotated(t *testing.T) {
	theta := 30 * math.Pi / 180
	sin, cos := math.Sincos(theta)
	tile := NewTile(0)
	tile.SetMatrix(NewMatrix(cos*2, sin*2, -sin*3, cos*3, 0, 0))

	assertNear(t, "Rotation", tile.Rotation(), 30)
	assertNear(t, "ScaleX", tile.ScaleX(), 2)
	assertNear(t, "ScaleY", tile.ScaleY(), 3)
}

func TestSetMatrixNegativeScaleFastPath(t *testing.T) {
	tile := NewTile(0)
	tile.SetMatrix(NewMatrix(-2, 0, 0, -1, 0, 0))
	assertNear(t, "ScaleX", tile.ScaleX(), -2)
	assertNear(t, "ScaleY", tile.ScaleY(), -1)
}

func TestSetMatrixShearedScaleIsNonNegative(t *testing.T) {
	tile := NewTile(0)
	tile.SetMatrix(NewMatrix(-1, 1, 0, 1, 0, 0))
	assertNear(t, "ScaleX", tile.ScaleX(), math.Sqrt2)
}

func TestSetMatrixSameInstanceKeepsCache(t *testing.T) {
	tile := NewTile(0)
	tile.SetRotation(45)
	m := tile.Matrix()
	m.A, m.B, m.C, m.D = 1, 0, 0, 1
	tile.SetMatrix(m)
	assertNear(t, "Rotation", tile.Rotation(), 45)
}

func TestSetMatrixNilIgnored(t *testing.T) {
	tile := NewTile(0)
	tile.SetX(7)
	tile.SetMatrix(nil)
	if tile.Matrix() == nil {
		t.Fatal("SetMatrix(nil) replaced the matrix")
	}
	assertNear(t, "X", tile.X(), 7)
}

func TestRotationAndScaleCoupling(t *testing.T) {
	tile := NewTile(0)
	tile.SetRotation(90)
	tile.SetScaleX(2)

	assertNear(t, "Rotation", tile.Rotation(), 90)
	assertNear(t, "ScaleX", tile.ScaleX(), 2)
	assertMatrix(t, "matrix", tile.Matrix(), Matrix{A: 0, B: 2, C: -1, D: 0})

	// Re-derive from a fresh matrix instance.
	tile.SetMatrix(tile.Matrix().Clone())
	assertNear(t, "derived Rotation", tile.Rotation(), 90)
	assertNear(t, "derived ScaleX", tile.ScaleX(), 2)
	assertNear(t, "derived ScaleY", tile.ScaleY(), 1)
}

func TestSetScaleKeepsTranslation(t *testing.T) {
	tile := NewTile(0)
	tile.SetX(10)
	tile.SetY(20)
	tile.SetScaleX(3)
	tile.SetScaleY(4)
	tile.SetRotation(30)
	assertNear(t, "X", tile.X(), 10)
	assertNear(t, "Y", tile.Y(), 20)
}

// --- Dirty tracking ---

func TestSetterEqualValueIsNoOp(t *testing.T) {
	tm := NewTilemap(10, 10, nil)
	tile := NewTile(0)
	tm.AddTile(tile)
	tm.ClearDirty()

	tile.SetX(0)
	tile.SetY(0)
	tile.SetAlpha(1)
	tile.SetVisible(true)
	tile.SetID(0)
	tile.SetBlendMode(BlendInherit)
	tile.SetScaleX(1)
	tile.SetRotation(0)

	if tile.Dirty() {
		t.Error("setting equal values should not mark dirty")
	}
	if tm.Dirty() {
		t.Error("tilemap should not be dirty")
	}
}

func TestDirtyLatchPropagatesOnce(t *testing.T) {
	sink := &countingSink{}
	tm := NewTilemap(10, 10, nil)
	tm.SetInvalidationSink(sink)
	c := NewTileContainer()
	tile := NewTile(0)
	c.AddTile(tile)
	tm.AddTile(c)
	tm.ClearDirty()

	tile.SetX(1)
	tile.SetX(2)
	tile.SetY(3)
	tile.SetAlpha(0.5)

	if !tile.Dirty() || !c.Dirty() || !tm.Dirty() {
		t.Errorf("dirty = tile %v, container %v, tilemap %v; want all true",
			tile.Dirty(), c.Dirty(), tm.Dirty())
	}
	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want 1", len(sink.events))
	}
	if sink.events[0].Tilemap != tm {
		t.Error("event should carry the tilemap")
	}

	tm.ClearDirty()
	if tile.Dirty() || c.Dirty() {
		t.Error("ClearDirty should reset the whole tree")
	}
	tile.SetX(5)
	if len(sink.events) != 2 {
		t.Errorf("events after second change = %d, want 2", len(sink.events))
	}
}

func TestSiblingStaysClean(t *testing.T) {
	tm := NewTilemap(10, 10, nil)
	a, b := NewTile(0), NewTile(0)
	tm.AddTiles(a, b)
	tm.ClearDirty()

	a.SetX(1)
	if b.Dirty() {
		t.Error("sibling should not be marked dirty")
	}
}

func TestInvalidate(t *testing.T) {
	tm := NewTilemap(10, 10, nil)
	tile := NewTile(0)
	tm.AddTile(tile)
	tm.ClearDirty()

	tile.Invalidate()
	if !tile.Dirty() || !tm.Dirty() {
		t.Error("Invalidate should mark the tile and tilemap dirty")
	}
}

// --- Width / Height ---

func TestWidthHeight(t *testing.T) {
	tile := NewTile(1)
	tile.SetTileset(testTileset())
	assertNear(t, "Width", tile.Width(), 20)
	assertNear(t, "Height", tile.Height(), 8)

	tile.SetWidth(50)
	assertNear(t, "ScaleX", tile.ScaleX(), 2.5)
	assertNear(t, "Width", tile.Width(), 50)

	tile.SetHeight(4)
	assertNear(t, "ScaleY", tile.ScaleY(), 0.5)
}

func TestWidthRotated(t *testing.T) {
	tile := NewTile(1)
	tile.SetTileset(testTileset())
	tile.SetRotation(90)
	assertNear(t, "Width", tile.Width(), 8)
	assertNear(t, "Height", tile.Height(), 20)
}

func TestSetWidthWithoutRegionIsNoOp(t *testing.T) {
	tile := NewTile(0)
	tile.SetWidth(50)
	tile.SetHeight(50)
	if tile.ScaleX() != 1 || tile.ScaleY() != 1 {
		t.Errorf("scale = (%v, %v), want unchanged", tile.ScaleX(), tile.ScaleY())
	}
}

// --- Clone ---

func TestTileClone(t *testing.T) {
	ts := testTileset()
	sh := &Shader{}
	ct := NewColorTransform()
	ct.RedMultiplier = 0.5

	tile := NewTileTransformed(1, 10, 20, 2, 2, 45, 3, 4)
	tile.SetTileset(ts)
	tile.SetRect(&Rectangle{Width: 5, Height: 5})
	tile.SetAlpha(0.3)
	tile.SetBlendMode(BlendAdd)
	tile.SetShader(sh)
	tile.SetColorTransform(ct)
	tile.SetVisible(false)
	tile.Data = "payload"

	tm := NewTilemap(10, 10, nil)
	tm.AddTile(tile)

	c := tile.Clone()
	if c.Parent() != nil {
		t.Error("clone should be unparented")
	}
	if c.ID() != 1 || c.Alpha() != 0.3 || c.BlendMode() != BlendAdd {
		t.Errorf("clone state = id %d alpha %v blend %v", c.ID(), c.Alpha(), c.BlendMode())
	}
	assertNear(t, "OriginX", c.OriginX(), 3)
	assertNear(t, "Rotation", c.Rotation(), 45)
	if !c.Matrix().Equals(tile.Matrix()) {
		t.Error("clone matrix should equal original")
	}
	if !c.Visible() {
		t.Error("visibility is not copied")
	}
	if c.Data != nil {
		t.Error("Data is not copied")
	}

	// Shared references.
	if c.Tileset() != ts || c.Shader() != sh {
		t.Error("tileset and shader should be shared")
	}

	// Independent copies.
	if c.Matrix() == tile.Matrix() || c.Rect() == tile.Rect() || c.ColorTransform() == tile.ColorTransform() {
		t.Fatal("matrix, rect and color transform should be copied")
	}
	c.Matrix().TX = 999
	c.Rect().Width = 99
	c.ColorTransform().RedMultiplier = 1
	if tile.X() != 10 || tile.Rect().Width != 5 || tile.ColorTransform().RedMultiplier != 0.5 {
		t.Error("mutating the clone changed the original")
	}
}
