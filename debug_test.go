package tilekit

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTreeDepth(t *testing.T) {
	tm := NewTilemap(10, 10, nil)
	c := NewTileContainer()
	tile := NewTile(0)
	c.AddTile(tile)

	if d := treeDepth(tile); d != 2 {
		t.Errorf("detached depth = %d, want 2", d)
	}
	tm.AddTile(c)
	if d := treeDepth(tile); d != 3 {
		t.Errorf("depth = %d, want 3", d)
	}
	if d := treeDepth(NewTile(0)); d != 1 {
		t.Errorf("lone tile depth = %d, want 1", d)
	}
}

func TestDebugModeDoesNotChangeBehavior(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	tm := NewTilemap(32, 32, renderTileset())
	c := NewTileContainer()
	c.AddTile(NewTile(0))
	tm.AddTile(c)

	if _, ok := tm.Tileset().ID("nothing"); ok {
		t.Error("unknown name should not resolve")
	}
	tm.Draw(ebiten.NewImage(32, 32), nil)
	if tm.Dirty() {
		t.Error("Draw should clear dirty in debug mode")
	}
}
