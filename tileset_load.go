package tilekit

import (
	"encoding/json"
	"fmt"
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// LoadTilesetJSON parses TexturePacker JSON data into a Tileset over img.
// Both the hash format (single "frames" object) and the array format
// ("textures" array) are accepted; the array format must hold exactly one
// page since a Tileset has one image. Ids follow sorted frame names and each
// name is registered for Tileset.ID. Rotated frames are rejected.
func LoadTilesetJSON(jsonData []byte, img *ebiten.Image) (*Tileset, error) {
	// Probe top-level keys to detect format.
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("tilekit: failed to parse tileset JSON: %w", err)
	}

	var frames map[string]jsonFrame
	switch {
	case probe.Textures != nil:
		var textures []jsonTexturePage
		if err := json.Unmarshal(probe.Textures, &textures); err != nil {
			return nil, fmt.Errorf("tilekit: failed to parse tileset textures array: %w", err)
		}
		if len(textures) != 1 {
			return nil, fmt.Errorf("tilekit: tileset JSON has %d texture pages, want 1", len(textures))
		}
		frames = textures[0].Frames
	case probe.Frames != nil:
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("tilekit: failed to parse tileset frames: %w", err)
		}
	default:
		return nil, fmt.Errorf("tilekit: tileset JSON has neither \"frames\" nor \"textures\" key")
	}

	names := make([]string, 0, len(frames))
	for name := range frames {
		names = append(names, name)
	}
	sort.Strings(names)

	ts := &Tileset{
		image: img,
		rects: make([]Rectangle, 0, len(names)),
		names: make(map[string]int, len(names)),
	}
	for _, name := range names {
		f := frames[name]
		if f.Rotated {
			return nil, fmt.Errorf("tilekit: tileset frame %q is rotated; repack without rotation", name)
		}
		ts.names[name] = ts.AddRect(Rectangle{
			X:      float64(f.Frame.X),
			Y:      float64(f.Frame.Y),
			Width:  float64(f.Frame.W),
			Height: float64(f.Frame.H),
		})
	}
	return ts, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// NewTilesetFromImages packs loose tile images left to right into a single
// atlas strip. Each tile is drawn into a tileWidth x tileHeight cell and
// tile i gets id i.
func NewTilesetFromImages(tiles []image.Image, tileWidth, tileHeight int) *Tileset {
	if len(tiles) == 0 || tileWidth <= 0 || tileHeight <= 0 {
		return &Tileset{}
	}
	strip := packStrip(tiles, tileWidth, tileHeight)
	return NewGridTileset(ebiten.NewImageFromImage(strip), tileWidth, tileHeight)
}

// packStrip composes tiles into one RGBA image, one cell per tile.
func packStrip(tiles []image.Image, tileWidth, tileHeight int) *image.RGBA {
	strip := image.NewRGBA(image.Rect(0, 0, tileWidth*len(tiles), tileHeight))
	for i, tile := range tiles {
		if tile == nil {
			continue
		}
		cell := image.Rect(i*tileWidth, 0, (i+1)*tileWidth, tileHeight)
		draw.Draw(strip, cell, tile, tile.Bounds().Min, draw.Src)
	}
	return strip
}
