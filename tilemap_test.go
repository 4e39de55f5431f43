package tilekit

import "testing"

func TestNewTilemapDefaults(t *testing.T) {
	ts := testTileset()
	tm := NewTilemap(320, 240, ts)
	if tm.Width() != 320 || tm.Height() != 240 {
		t.Errorf("size = %dx%d, want 320x240", tm.Width(), tm.Height())
	}
	if tm.Tileset() != ts {
		t.Error("Tileset mismatch")
	}
	if !tm.TileAlphaEnabled() || !tm.TileBlendModeEnabled() || !tm.TileColorTransformEnabled() {
		t.Error("per-tile features should default to enabled")
	}
	if !tm.Smoothing() {
		t.Error("smoothing should default to on")
	}
	if !tm.Dirty() {
		t.Error("new tilemap should start dirty")
	}
	if tm.NumTiles() != 0 {
		t.Errorf("NumTiles = %d, want 0", tm.NumTiles())
	}
}

func TestTilemapSettersMarkDirty(t *testing.T) {
	tests := []struct {
		name string
		fn   func(tm *Tilemap)
	}{
		{"SetSize", func(tm *Tilemap) { tm.SetSize(1, 2) }},
		{"SetTileset", func(tm *Tilemap) { tm.SetTileset(testTileset()) }},
		{"SetTileAlphaEnabled", func(tm *Tilemap) { tm.SetTileAlphaEnabled(false) }},
		{"SetTileBlendModeEnabled", func(tm *Tilemap) { tm.SetTileBlendModeEnabled(false) }},
		{"SetTileColorTransformEnabled", func(tm *Tilemap) { tm.SetTileColorTransformEnabled(false) }},
		{"SetSmoothing", func(tm *Tilemap) { tm.SetSmoothing(false) }},
		{"Invalidate", func(tm *Tilemap) { tm.Invalidate() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewTilemap(10, 10, nil)
			tm.ClearDirty()
			tt.fn(tm)
			if !tm.Dirty() {
				t.Errorf("%s should mark the tilemap dirty", tt.name)
			}
		})
	}
}

func TestTilemapSetterEqualValueIsNoOp(t *testing.T) {
	sink := &countingSink{}
	tm := NewTilemap(10, 10, nil)
	tm.SetInvalidationSink(sink)
	tm.ClearDirty()

	tm.SetSize(10, 10)
	tm.SetSmoothing(true)
	tm.SetTileAlphaEnabled(true)
	tm.SetTileset(nil)

	if tm.Dirty() || len(sink.events) != 0 {
		t.Error("equal values should not invalidate")
	}
}

func TestTilemapIsTilesetRoot(t *testing.T) {
	ts := testTileset()
	tm := NewTilemap(10, 10, ts)
	tile := NewTile(0)
	tm.AddTile(tile)

	if tile.Parent() != tm {
		t.Error("tile parent should be the tilemap")
	}
	if tm.asTile() != nil {
		t.Error("tilemap has no tile state")
	}

	var m Matrix
	m.SetTo(3, 3, 3, 3, 3, 3)
	tm.worldTransformInto(&m)
	assertMatrix(t, "root transform", &m, Matrix{A: 1, D: 1})
}

func TestClearDirtyNested(t *testing.T) {
	tm := NewTilemap(10, 10, nil)
	outer := NewTileContainer()
	inner := NewTileContainer()
	leaf := NewTile(0)
	inner.AddTile(leaf)
	outer.AddTile(inner)
	tm.AddTile(outer)

	tm.ClearDirty()
	for name, d := range map[string]bool{
		"tilemap": tm.Dirty(), "outer": outer.Dirty(), "inner": inner.Dirty(), "leaf": leaf.Dirty(),
	} {
		if d {
			t.Errorf("%s still dirty after ClearDirty", name)
		}
	}
}
