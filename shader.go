package tilekit

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Shader is a Kage program plus the uniforms it is drawn with. A Shader is
// shared by reference between tiles; changing Uniforms does not mark any tile
// dirty, so call Tile.Invalidate afterwards.
type Shader struct {
	Program  *ebiten.Shader
	Uniforms map[string]any
}

// NewShader compiles Kage source into a Shader with no uniforms.
func NewShader(src []byte) (*Shader, error) {
	prog, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("tilekit: failed to compile shader: %w", err)
	}
	return &Shader{Program: prog, Uniforms: make(map[string]any)}, nil
}
