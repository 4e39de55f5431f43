package tilekit

// InvalidationSink receives an event each time a Tilemap turns dirty.
// The ecs sub-package provides a Donburi-backed implementation.
type InvalidationSink interface {
	EmitInvalidation(event InvalidationEvent)
}

// InvalidationEvent reports that a tilemap needs to be redrawn.
type InvalidationEvent struct {
	Tilemap *Tilemap
}

// Tilemap is the root of a tile hierarchy and the default tileset source for
// every tile under it. World transforms are expressed in the tilemap's
// space, so the tilemap itself contributes the identity.
type Tilemap struct {
	tileList

	width, height int
	tileset       *Tileset

	tileAlphaEnabled          bool
	tileBlendModeEnabled      bool
	tileColorTransformEnabled bool
	smoothing                 bool

	dirty bool
	sink  InvalidationSink

	commands []tileCommand
}

const defaultCommandCap = 256

// NewTilemap creates a width x height tilemap drawing from tileset.
// Per-tile alpha, blend modes and color transforms are on, as is smoothing.
func NewTilemap(width, height int, tileset *Tileset) *Tilemap {
	tm := &Tilemap{
		width:                     width,
		height:                    height,
		tileset:                   tileset,
		tileAlphaEnabled:          true,
		tileBlendModeEnabled:      true,
		tileColorTransformEnabled: true,
		smoothing:                 true,
		dirty:                     true,
		commands:                  make([]tileCommand, 0, defaultCommandCap),
	}
	tm.tileList.owner = tm
	return tm
}

func (tm *Tilemap) asTile() *Tile { return nil }

// findTileset is the terminal case of the upward walk.
func (tm *Tilemap) findTileset() *Tileset { return tm.tileset }

func (tm *Tilemap) worldTransformInto(m *Matrix) { m.Identity() }

func (tm *Tilemap) setRenderDirty() {
	if tm.dirty {
		return
	}
	tm.dirty = true
	if tm.sink != nil {
		tm.sink.EmitInvalidation(InvalidationEvent{Tilemap: tm})
	}
}

// Invalidate marks the tilemap dirty.
func (tm *Tilemap) Invalidate() {
	tm.setRenderDirty()
}

// Dirty reports whether the tilemap or any tile under it changed since the
// last Draw or ClearDirty.
func (tm *Tilemap) Dirty() bool {
	return tm.dirty
}

// ClearDirty resets the dirty flag of the tilemap and of every tile under it.
// Draw calls this after submitting.
func (tm *Tilemap) ClearDirty() {
	tm.dirty = false
	clearDirty(tm.children)
}

func clearDirty(nodes []TileNode) {
	for _, n := range nodes {
		n.asTile().dirty = false
		if kids, ok := n.childNodes(); ok {
			clearDirty(kids)
		}
	}
}

// SetInvalidationSink sets the optional receiver of invalidation events.
func (tm *Tilemap) SetInvalidationSink(sink InvalidationSink) {
	tm.sink = sink
}

func (tm *Tilemap) Width() int  { return tm.width }
func (tm *Tilemap) Height() int { return tm.height }

// SetSize sets the visible area of the tilemap in its own space.
func (tm *Tilemap) SetSize(width, height int) {
	if width == tm.width && height == tm.height {
		return
	}
	tm.width = width
	tm.height = height
	tm.setRenderDirty()
}

// Tileset returns the default tileset.
func (tm *Tilemap) Tileset() *Tileset {
	return tm.tileset
}

func (tm *Tilemap) SetTileset(ts *Tileset) {
	if ts == tm.tileset {
		return
	}
	tm.tileset = ts
	tm.setRenderDirty()
}

func (tm *Tilemap) TileAlphaEnabled() bool { return tm.tileAlphaEnabled }

// SetTileAlphaEnabled controls whether tile alpha is applied when drawing.
func (tm *Tilemap) SetTileAlphaEnabled(v bool) {
	if v == tm.tileAlphaEnabled {
		return
	}
	tm.tileAlphaEnabled = v
	tm.setRenderDirty()
}

func (tm *Tilemap) TileBlendModeEnabled() bool { return tm.tileBlendModeEnabled }

// SetTileBlendModeEnabled controls whether tile blend modes are applied.
func (tm *Tilemap) SetTileBlendModeEnabled(v bool) {
	if v == tm.tileBlendModeEnabled {
		return
	}
	tm.tileBlendModeEnabled = v
	tm.setRenderDirty()
}

func (tm *Tilemap) TileColorTransformEnabled() bool { return tm.tileColorTransformEnabled }

// SetTileColorTransformEnabled controls whether tile color transforms are applied.
func (tm *Tilemap) SetTileColorTransformEnabled(v bool) {
	if v == tm.tileColorTransformEnabled {
		return
	}
	tm.tileColorTransformEnabled = v
	tm.setRenderDirty()
}

func (tm *Tilemap) Smoothing() bool { return tm.smoothing }

// SetSmoothing selects linear (true) or nearest (false) filtering.
func (tm *Tilemap) SetSmoothing(v bool) {
	if v == tm.smoothing {
		return
	}
	tm.smoothing = v
	tm.setRenderDirty()
}
