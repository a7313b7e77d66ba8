package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxellab/deskscene/internal/engine/mesh"
)

// DrawEntry describes one object in the scene: which mesh to draw, where,
// and how to shade it. Texture and Color are mutually exclusive; an empty
// Texture tag means the entry uses its flat Color.
type DrawEntry struct {
	Name      string
	Mesh      mesh.Kind
	Transform Transform
	Material  string
	Texture   string
	Color     mgl32.Vec4
	UVScale   mgl32.Vec2
}

// DeskScene returns the draw list for the desk scene. Entries render in
// declaration order.
func DeskScene() []DrawEntry {
	return []DrawEntry{
		{
			Name: "desk surface",
			Mesh: mesh.KindPlane,
			Transform: Transform{
				Scale: mgl32.Vec3{5, 1, 3},
			},
			Material: "satin",
			Texture:  "desk",
			UVScale:  mgl32.Vec2{1, 1},
		},
		{
			Name: "monitor screen",
			Mesh: mesh.KindBox,
			Transform: Transform{
				Scale:       mgl32.Vec3{2, 1.2, 0.1},
				RotationDeg: mgl32.Vec3{-5, 0, 0},
				Position:    mgl32.Vec3{0, 1.1, -1.75},
			},
			Material: "monitor",
			Texture:  "monitor",
			UVScale:  mgl32.Vec2{1, 1},
		},
		{
			Name: "monitor body",
			Mesh: mesh.KindBox,
			Transform: Transform{
				Scale:       mgl32.Vec3{2.1, 1.3, 0.3},
				RotationDeg: mgl32.Vec3{-5, 0, 0},
				Position:    mgl32.Vec3{0, 1.1, -1.9},
			},
			Material: "satin",
			Texture:  "pc_tower",
			UVScale:  mgl32.Vec2{1, 1},
		},
		{
			Name: "monitor stand",
			Mesh: mesh.KindBox,
			Transform: Transform{
				Scale:    mgl32.Vec3{0.3, 1, 0.25},
				Position: mgl32.Vec3{0, 0.5, -1.9},
			},
			Material: "satin",
			Texture:  "pc_tower",
			UVScale:  mgl32.Vec2{1, 1},
		},
		{
			Name: "keyboard keys",
			Mesh: mesh.KindBox,
			Transform: Transform{
				Scale:    mgl32.Vec3{2.4, 0.2, 1},
				Position: mgl32.Vec3{0, 0.09, -1},
			},
			Material: "satin",
			Texture:  "keyboard",
			UVScale:  mgl32.Vec2{1, 1},
		},
		{
			Name: "keyboard body",
			Mesh: mesh.KindBox,
			Transform: Transform{
				Scale:    mgl32.Vec3{2.5, 0.15, 1.1},
				Position: mgl32.Vec3{0, 0.1, -1},
			},
			Material: "satin",
			Texture:  "pc_tower",
			UVScale:  mgl32.Vec2{1, 1},
		},
		{
			Name: "mouse",
			Mesh: mesh.KindCylinder,
			Transform: Transform{
				Scale:    mgl32.Vec3{0.3, 0.1, 0.4},
				Position: mgl32.Vec3{1.5, 0, 0.5},
			},
			Material: "satin",
			Texture:  "mouse",
			UVScale:  mgl32.Vec2{1, 1},
		},
		{
			Name: "pc tower",
			Mesh: mesh.KindBox,
			Transform: Transform{
				Scale:    mgl32.Vec3{1, 2.5, 1.5},
				Position: mgl32.Vec3{3, 1.26, -0.5},
			},
			Material: "satin",
			Texture:  "pc_tower",
			UVScale:  mgl32.Vec2{1, 1},
		},
		{
			Name: "power button",
			Mesh: mesh.KindTorus,
			Transform: Transform{
				Scale:    mgl32.Vec3{0.1, 0.1, 0.1},
				Position: mgl32.Vec3{2.7, 2, 0.25},
			},
			Material: "green",
			Texture:  "mouse",
			UVScale:  mgl32.Vec2{1, 1},
		},
	}
}
