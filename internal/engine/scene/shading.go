// Package scene renders the desk scene: it binds transforms, materials and
// textures to shader uniforms and walks the declarative draw list each frame.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxellab/deskscene/internal/engine/material"
)

// Uniform names shared with the shader sources.
const (
	uniformModel        = "model"
	uniformView         = "view"
	uniformProjection   = "projection"
	uniformViewPosition = "viewPosition"
	uniformColor        = "objectColor"
	uniformTexture      = "objectTexture"
	uniformUseTexture   = "bUseTexture"
	uniformUseLighting  = "bUseLighting"
	uniformUVScale      = "UVscale"
)

// UniformWriter is the subset of shader.Program the scene writes through.
type UniformWriter interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec4(name string, v mgl32.Vec4)
	SetVec3(name string, v mgl32.Vec3)
	SetVec2(name string, v mgl32.Vec2)
	SetFloat(name string, f float32)
	SetBool(name string, b bool)
	SetSampler(name string, unit int)
}

// TextureResolver maps loaded texture tags to their bound texture units.
type TextureResolver interface {
	Slot(tag string) (int, bool)
}

// MaterialFinder looks up material profiles by tag.
type MaterialFinder interface {
	Find(tag string) (material.Profile, bool)
	Len() int
}

// Transform positions a mesh in the world. Rotations are in degrees and
// compose as Z then Y then X, applied after scaling and before translation.
type Transform struct {
	Scale       mgl32.Vec3
	RotationDeg mgl32.Vec3
	Position    mgl32.Vec3
}

// Matrix builds the model matrix: translation * Rz * Ry * Rx * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(t.RotationDeg.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(t.RotationDeg.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.RotationDeg.Z()))
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	return translate.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(scale)
}

// Bridge translates scene-level state (transforms, colors, textures,
// materials) into uniform writes on the active shader program.
type Bridge struct {
	prog      UniformWriter
	textures  TextureResolver
	materials MaterialFinder
}

// NewBridge returns a Bridge writing through prog and resolving tags against
// the given registries.
func NewBridge(prog UniformWriter, textures TextureResolver, materials MaterialFinder) *Bridge {
	return &Bridge{prog: prog, textures: textures, materials: materials}
}

// SetTransform writes the model matrix for the given transform.
func (b *Bridge) SetTransform(t Transform) {
	b.prog.SetMat4(uniformModel, t.Matrix())
}

// SetColor switches the shader to flat-color mode with the given RGBA color.
func (b *Bridge) SetColor(r, g, bl, a float32) {
	b.prog.SetBool(uniformUseTexture, false)
	b.prog.SetVec4(uniformColor, mgl32.Vec4{r, g, bl, a})
}

// SetTexture switches the shader to textured mode, sampling from the unit the
// tag was bound to. Unknown tags are an error and leave the mode unchanged.
func (b *Bridge) SetTexture(tag string) error {
	slot, ok := b.textures.Slot(tag)
	if !ok {
		return fmt.Errorf("scene: texture tag %q not registered", tag)
	}
	b.prog.SetBool(uniformUseTexture, true)
	b.prog.SetSampler(uniformTexture, slot)
	return nil
}

// SetUVScale sets the texture coordinate scale applied in the vertex stage.
func (b *Bridge) SetUVScale(u, v float32) {
	b.prog.SetVec2(uniformUVScale, mgl32.Vec2{u, v})
}

// SetMaterial writes the five material uniforms for the tagged profile.
// With no materials defined at all the call is a no-op, so unlit scenes can
// share the draw path; an unknown tag against a populated registry is an
// error and writes nothing.
func (b *Bridge) SetMaterial(tag string) error {
	if b.materials.Len() == 0 {
		return nil
	}
	p, ok := b.materials.Find(tag)
	if !ok {
		return fmt.Errorf("scene: material tag %q not defined", tag)
	}
	b.prog.SetVec3("material.ambientColor", p.AmbientColor)
	b.prog.SetFloat("material.ambientStrength", p.AmbientStrength)
	b.prog.SetVec3("material.diffuseColor", p.DiffuseColor)
	b.prog.SetVec3("material.specularColor", p.SpecularColor)
	b.prog.SetFloat("material.shininess", p.Shininess)
	return nil
}

// SetViewProjection writes the per-frame camera uniforms.
func (b *Bridge) SetViewProjection(view, projection mgl32.Mat4, eye mgl32.Vec3) {
	b.prog.SetMat4(uniformView, view)
	b.prog.SetMat4(uniformProjection, projection)
	b.prog.SetVec3(uniformViewPosition, eye)
}
