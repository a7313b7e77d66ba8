package scene

import (
	"go.uber.org/zap"

	"github.com/voxellab/deskscene/internal/engine/camera"
	"github.com/voxellab/deskscene/internal/engine/input"
	"github.com/voxellab/deskscene/internal/engine/mesh"
	"github.com/voxellab/deskscene/internal/logger"
)

// MeshDrawer issues draw calls for uploaded meshes.
type MeshDrawer interface {
	Draw(k mesh.Kind)
}

// Renderer walks the draw list each frame, driving the camera and pushing
// per-object state through the shading bridge.
type Renderer struct {
	bridge  *Bridge
	meshes  MeshDrawer
	camera  *camera.Controller
	entries []DrawEntry
}

// NewRenderer returns a Renderer over the given draw list.
func NewRenderer(bridge *Bridge, meshes MeshDrawer, cam *camera.Controller, entries []DrawEntry) *Renderer {
	return &Renderer{bridge: bridge, meshes: meshes, camera: cam, entries: entries}
}

// RenderFrame advances the camera by dt, writes the frame uniforms, and
// draws every entry in declaration order. A bad texture or material tag is
// logged and the entry still draws with whatever state is already bound.
func (r *Renderer) RenderFrame(snap input.Snapshot, dt, aspect float32) {
	r.camera.Update(snap, dt)

	view := r.camera.ViewMatrix()
	projection := r.camera.ProjectionMatrix(aspect)
	r.bridge.SetViewProjection(view, projection, r.camera.Position)

	for _, e := range r.entries {
		r.bridge.SetTransform(e.Transform)

		if e.Material != "" {
			if err := r.bridge.SetMaterial(e.Material); err != nil {
				logger.Warn("material bind failed",
					zap.String("entry", e.Name), zap.Error(err))
			}
		}

		if e.Texture != "" {
			if err := r.bridge.SetTexture(e.Texture); err != nil {
				logger.Warn("texture bind failed",
					zap.String("entry", e.Name), zap.Error(err))
			}
		} else {
			r.bridge.SetColor(e.Color.X(), e.Color.Y(), e.Color.Z(), e.Color.W())
		}

		r.bridge.SetUVScale(e.UVScale.X(), e.UVScale.Y())
		r.meshes.Draw(e.Mesh)
	}
}
