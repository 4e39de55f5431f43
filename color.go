package tilekit

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// ColorTransform adjusts color channels of a tile. Each channel ends up as
// channel*multiplier + offset, with offsets in the 0..255 range.
type ColorTransform struct {
	RedMultiplier, GreenMultiplier, BlueMultiplier, AlphaMultiplier float64
	RedOffset, GreenOffset, BlueOffset, AlphaOffset                 float64
}

// NewColorTransform returns the identity color transform.
func NewColorTransform() *ColorTransform {
	return &ColorTransform{
		RedMultiplier:   1,
		GreenMultiplier: 1,
		BlueMultiplier:  1,
		AlphaMultiplier: 1,
	}
}

// Clone returns a new ColorTransform with the same values.
func (ct *ColorTransform) Clone() *ColorTransform {
	c := *ct
	return &c
}

// Equals reports whether ct and other hold identical values.
func (ct *ColorTransform) Equals(other *ColorTransform) bool {
	return other != nil && *ct == *other
}

// IsIdentity reports whether ct leaves colors unchanged.
func (ct *ColorTransform) IsIdentity() bool {
	return *ct == ColorTransform{RedMultiplier: 1, GreenMultiplier: 1, BlueMultiplier: 1, AlphaMultiplier: 1}
}

// Concat combines ct with second so that second is applied first, then ct.
func (ct *ColorTransform) Concat(second *ColorTransform) {
	ct.RedOffset += second.RedOffset * ct.RedMultiplier
	ct.GreenOffset += second.GreenOffset * ct.GreenMultiplier
	ct.BlueOffset += second.BlueOffset * ct.BlueMultiplier
	ct.AlphaOffset += second.AlphaOffset * ct.AlphaMultiplier

	ct.RedMultiplier *= second.RedMultiplier
	ct.GreenMultiplier *= second.GreenMultiplier
	ct.BlueMultiplier *= second.BlueMultiplier
	ct.AlphaMultiplier *= second.AlphaMultiplier
}

// ColorM returns ct as a colorm.ColorM.
func (ct *ColorTransform) ColorM() colorm.ColorM {
	var cm colorm.ColorM
	cm.Scale(ct.RedMultiplier, ct.GreenMultiplier, ct.BlueMultiplier, ct.AlphaMultiplier)
	cm.Translate(ct.RedOffset/255, ct.GreenOffset/255, ct.BlueOffset/255, ct.AlphaOffset/255)
	return cm
}

// BlendMode selects a compositing operation. The zero value, BlendInherit,
// means no blend mode is set and the owner's mode applies.
type BlendMode uint8

const (
	BlendInherit  BlendMode = iota // unset; inherit from the container or tilemap
	BlendNormal                    // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendScreen                    // screen (1 - (1-src)*(1-dst); only brightens)
	BlendErase                     // destination-out (punch transparent holes)
	BlendAlpha                     // clip destination to source alpha
	BlendSubtract                  // destination - source
	BlendDarken                    // per-channel minimum
	BlendLighten                   // per-channel maximum
)

var blendModeNames = [...]string{
	BlendInherit:  "inherit",
	BlendNormal:   "normal",
	BlendAdd:      "add",
	BlendMultiply: "multiply",
	BlendScreen:   "screen",
	BlendErase:    "erase",
	BlendAlpha:    "alpha",
	BlendSubtract: "subtract",
	BlendDarken:   "darken",
	BlendLighten:  "lighten",
}

func (b BlendMode) String() string {
	if int(b) < len(blendModeNames) {
		return blendModeNames[b]
	}
	return "unknown"
}

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
// BlendInherit maps to source-over.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendErase:
		return ebiten.BlendDestinationOut
	case BlendAlpha:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorZero,
			BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
			BlendFactorDestinationRGB:   ebiten.BlendFactorSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendSubtract:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
			BlendOperationRGB:           ebiten.BlendOperationReverseSubtract,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendDarken:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationMin,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendLighten:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationMax,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}
