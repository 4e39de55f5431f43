package tilekit

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// DrawOptions configures Tilemap.Draw.
type DrawOptions struct {
	// GeoM maps tilemap space onto the destination image.
	GeoM ebiten.GeoM
}

// tileCommand is one resolved tile, ready for submission.
type tileCommand struct {
	tile      *Tile
	image     *ebiten.Image // atlas sub-image for the source region
	transform Matrix        // tile space to tilemap space
	alpha     float64
	blend     BlendMode
	color     *ColorTransform // composed through containers; nil for none
	shader    *Shader
}

// collect walks the tree and rebuilds tm.commands in painter's order.
func (tm *Tilemap) collect() {
	tm.commands = tm.commands[:0]
	var root Matrix
	root.Identity()
	for _, child := range tm.children {
		tm.collectNode(child, &root, 1, BlendNormal, nil, nil)
	}
}

func (tm *Tilemap) collectNode(n TileNode, parent *Matrix, alpha float64, blend BlendMode, ct *ColorTransform, shader *Shader) {
	t := n.asTile()
	if !t.visible {
		return
	}
	if tm.tileAlphaEnabled {
		alpha *= t.alpha
	}
	if alpha <= 0 {
		return
	}

	world := *t.matrix
	world.Concat(parent)

	if tm.tileBlendModeEnabled && t.blendMode != BlendInherit {
		blend = t.blendMode
	}
	if tm.tileColorTransformEnabled && t.colorTransform != nil {
		if ct == nil {
			ct = t.colorTransform.Clone()
		} else {
			composed := ct.Clone()
			composed.Concat(t.colorTransform)
			ct = composed
		}
	}
	if t.shader != nil {
		shader = t.shader
	}

	if kids, ok := n.childNodes(); ok {
		for _, child := range kids {
			tm.collectNode(child, &world, alpha, blend, ct, shader)
		}
		return
	}

	ts := t.findTileset()
	var src Rectangle
	if t.rect != nil {
		src = *t.rect
	} else {
		var ok bool
		if src, ok = ts.Rect(t.id); !ok {
			return
		}
	}
	img := ts.subImage(src)
	if img == nil {
		return
	}

	tm.commands = append(tm.commands, tileCommand{
		tile:      t,
		image:     img,
		transform: world,
		alpha:     alpha,
		blend:     blend,
		color:     ct,
		shader:    shader,
	})
}

// Draw renders every visible tile onto dst, clipped to the tilemap's width
// and height, then clears the dirty flags. opts may be nil.
func (tm *Tilemap) Draw(dst *ebiten.Image, opts *DrawOptions) {
	var view ebiten.GeoM
	if opts != nil {
		view = opts.GeoM
	}

	var stats drawStats
	var t0 time.Time
	if globalDebug {
		t0 = time.Now()
	}

	tm.collect()

	if globalDebug {
		stats.collectTime = time.Since(t0)
		stats.commandCount = len(tm.commands)
		t0 = time.Now()
	}

	target := tm.clipTarget(dst, view)
	if target != nil {
		stats.drawCallCount = tm.submit(target, view)
	}

	if globalDebug {
		stats.submitTime = time.Since(t0)
		debugLog(stats)
	}

	tm.ClearDirty()
}

// clipTarget returns the part of dst covered by the tilemap's area under
// view, or nil when that area is empty.
func (tm *Tilemap) clipTarget(dst *ebiten.Image, view ebiten.GeoM) *ebiten.Image {
	if tm.width <= 0 || tm.height <= 0 {
		return nil
	}
	m := geoMMatrix(view)
	area := Rectangle{Width: float64(tm.width), Height: float64(tm.height)}.Transform(&m)
	clip := image.Rect(int(area.X), int(area.Y), int(area.Right()), int(area.Bottom())).Intersect(dst.Bounds())
	if clip.Empty() {
		return nil
	}
	return dst.SubImage(clip).(*ebiten.Image)
}

// submit issues one draw call per command and returns the count.
func (tm *Tilemap) submit(target *ebiten.Image, view ebiten.GeoM) int {
	filter := ebiten.FilterNearest
	if tm.smoothing {
		filter = ebiten.FilterLinear
	}

	for i := range tm.commands {
		cmd := &tm.commands[i]
		geoM := cmd.transform.GeoM()
		geoM.Concat(view)

		switch {
		case cmd.shader != nil && cmd.shader.Program != nil:
			var op ebiten.DrawRectShaderOptions
			op.GeoM = geoM
			op.Blend = cmd.blend.EbitenBlend()
			op.ColorScale.ScaleAlpha(float32(cmd.alpha))
			op.Uniforms = cmd.shader.Uniforms
			op.Images[0] = cmd.image
			b := cmd.image.Bounds()
			target.DrawRectShader(b.Dx(), b.Dy(), cmd.shader.Program, &op)
		case cmd.color != nil:
			cm := cmd.color.ColorM()
			cm.Scale(1, 1, 1, cmd.alpha)
			var op colorm.DrawImageOptions
			op.GeoM = geoM
			op.Blend = cmd.blend.EbitenBlend()
			op.Filter = filter
			colorm.DrawImage(target, cmd.image, cm, &op)
		default:
			var op ebiten.DrawImageOptions
			op.GeoM = geoM
			op.Blend = cmd.blend.EbitenBlend()
			op.Filter = filter
			op.ColorScale.ScaleAlpha(float32(cmd.alpha))
			target.DrawImage(cmd.image, &op)
		}
	}
	return len(tm.commands)
}

// geoMMatrix converts an ebiten.GeoM back to a Matrix.
func geoMMatrix(g ebiten.GeoM) Matrix {
	return Matrix{
		A:  g.Element(0, 0),
		B:  g.Element(1, 0),
		C:  g.Element(0, 1),
		D:  g.Element(1, 1),
		TX: g.Element(0, 2),
		TY: g.Element(1, 2),
	}
}
