package tilekit

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tileset is an atlas: one shared image and a table of source rectangles
// indexed by tile id. Many tiles reference the same Tileset, which lets a
// Tilemap draw them from a single image.
type Tileset struct {
	image *ebiten.Image
	rects []Rectangle
	names map[string]int
}

// NewTileset creates a tileset over img with the given regions. Region i gets
// id i. img may be nil when only geometry is needed.
func NewTileset(img *ebiten.Image, rects []Rectangle) *Tileset {
	ts := &Tileset{image: img}
	ts.rects = append(ts.rects, rects...)
	return ts
}

// NewGridTileset slices img into tileWidth x tileHeight cells, row major,
// left to right. Partial cells at the right and bottom edges are dropped.
func NewGridTileset(img *ebiten.Image, tileWidth, tileHeight int) *Tileset {
	ts := &Tileset{image: img}
	if img == nil || tileWidth <= 0 || tileHeight <= 0 {
		return ts
	}
	b := img.Bounds()
	cols := b.Dx() / tileWidth
	rows := b.Dy() / tileHeight
	ts.rects = make([]Rectangle, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			ts.rects = append(ts.rects, Rectangle{
				X:      float64(col * tileWidth),
				Y:      float64(row * tileHeight),
				Width:  float64(tileWidth),
				Height: float64(tileHeight),
			})
		}
	}
	return ts
}

// Image returns the atlas image, or nil.
func (ts *Tileset) Image() *ebiten.Image {
	return ts.image
}

// SetImage replaces the atlas image. Regions are kept.
func (ts *Tileset) SetImage(img *ebiten.Image) {
	ts.image = img
}

// AddRect appends a region and returns its id.
func (ts *Tileset) AddRect(r Rectangle) int {
	ts.rects = append(ts.rects, r)
	return len(ts.rects) - 1
}

// Rect returns the region for id. ok is false for an unknown id.
func (ts *Tileset) Rect(id int) (r Rectangle, ok bool) {
	if ts == nil || id < 0 || id >= len(ts.rects) {
		return Rectangle{}, false
	}
	return ts.rects[id], true
}

// HasRect reports whether a region equal to r exists.
func (ts *Tileset) HasRect(r Rectangle) bool {
	return ts.RectID(r) >= 0
}

// RectID returns the id of the first region equal to r, or -1.
func (ts *Tileset) RectID(r Rectangle) int {
	for i, rr := range ts.rects {
		if rr == r {
			return i
		}
	}
	return -1
}

// NumRects returns the number of regions.
func (ts *Tileset) NumRects() int {
	return len(ts.rects)
}

// ID returns the id registered under name by a loader. Unknown names log a
// warning in debug mode.
func (ts *Tileset) ID(name string) (int, bool) {
	id, ok := ts.names[name]
	if !ok && globalDebug {
		log.Printf("tilekit: tileset region %q not found", name)
	}
	return id, ok
}

// Clone returns a tileset sharing the same image with a copy of the region table.
func (ts *Tileset) Clone() *Tileset {
	c := NewTileset(ts.image, ts.rects)
	if ts.names != nil {
		c.names = make(map[string]int, len(ts.names))
		for k, v := range ts.names {
			c.names[k] = v
		}
	}
	return c
}

// subImage returns the atlas sub-image for src, or nil when there is no image
// or src is empty.
func (ts *Tileset) subImage(src Rectangle) *ebiten.Image {
	if ts == nil || ts.image == nil || src.IsEmpty() {
		return nil
	}
	r := image.Rect(int(src.X), int(src.Y), int(src.Right()), int(src.Bottom()))
	return ts.image.SubImage(r).(*ebiten.Image)
}
