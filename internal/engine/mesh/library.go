package mesh

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/voxellab/deskscene/internal/logger"
)

// Kind identifies a primitive shape.
type Kind int

const (
	KindPlane Kind = iota
	KindBox
	KindCylinder
	KindTorus

	kindCount
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindBox:
		return "box"
	case KindCylinder:
		return "cylinder"
	case KindTorus:
		return "torus"
	}
	return fmt.Sprintf("mesh.Kind(%d)", int(k))
}

// floatsPerVertex is position (3) + normal (3) + uv (2).
const floatsPerVertex = 8

type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Library caches one GPU mesh per primitive kind. A kind is generated
// and uploaded once no matter how many times it is drawn.
type Library struct {
	meshes [kindCount]*glMesh
}

// NewLibrary creates an empty mesh library.
func NewLibrary() *Library {
	return &Library{}
}

// Load generates and uploads the given kinds. Already-loaded kinds are
// skipped.
func (l *Library) Load(kinds ...Kind) error {
	for _, k := range kinds {
		if k < 0 || k >= kindCount {
			return fmt.Errorf("mesh: unknown kind %d", int(k))
		}
		if l.meshes[k] != nil {
			continue
		}
		l.meshes[k] = upload(generate(k))
		logger.Debug("mesh loaded", zap.Stringer("kind", k))
	}
	return nil
}

// Draw issues the draw call for a loaded kind. Drawing an unloaded
// kind is a logged no-op.
func (l *Library) Draw(k Kind) {
	if k < 0 || k >= kindCount || l.meshes[k] == nil {
		logger.Warn("draw of unloaded mesh", zap.Stringer("kind", k))
		return
	}
	m := l.meshes[k]
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Release deletes all uploaded meshes.
func (l *Library) Release() {
	for k := Kind(0); k < kindCount; k++ {
		m := l.meshes[k]
		if m == nil {
			continue
		}
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		l.meshes[k] = nil
	}
}

func generate(k Kind) Data {
	switch k {
	case KindPlane:
		return Plane()
	case KindBox:
		return Box()
	case KindCylinder:
		return Cylinder(32)
	default:
		return Torus(32, 16)
	}
}

// upload interleaves the mesh data and creates its VAO/VBO/EBO.
func upload(data Data) *glMesh {
	interleaved := make([]float32, 0, len(data.Vertices)*floatsPerVertex)
	for _, v := range data.Vertices {
		interleaved = append(interleaved,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Normal.X(), v.Normal.Y(), v.Normal.Z(),
			v.UV.X(), v.UV.Y(),
		)
	}

	m := &glMesh{indexCount: int32(len(data.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(interleaved)*4, gl.Ptr(interleaved), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	// Position (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	// Normal (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, uintptr(3*4))
	gl.EnableVertexAttribArray(1)
	// UV (location = 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, uintptr(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}
