// Package mesh generates and draws the primitive shapes the scene is
// built from. Generation is pure; GPU upload lives in the Library.
package mesh

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one interleaved mesh vertex.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Data is generated mesh geometry, ready for upload.
type Data struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// Plane generates a 2x2 plane in the XZ plane at y=0, facing +Y.
func Plane() Data {
	vertices := []Vertex{
		{Position: mgl32.Vec3{-1, 0, -1}, Normal: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{1, 0, -1}, Normal: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{1, 0, 1}, Normal: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{-1, 0, 1}, Normal: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{0, 1}},
	}
	indices := []uint32{0, 3, 1, 1, 3, 2}
	return Data{Name: "plane", Vertices: vertices, Indices: indices}
}

// Box generates a unit cube centered at the origin with per-face
// normals and UVs.
func Box() Data {
	type face struct {
		normal mgl32.Vec3
		// corners in UV order: (0,0) (1,0) (1,1) (0,1)
		corners [4]mgl32.Vec3
	}
	const h = 0.5

	faces := []face{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},     // front
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}}, // back
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}}, // left
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},      // right
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},      // top
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}}, // bottom
	}
	uvs := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var vertices []Vertex
	var indices []uint32
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, corner := range f.corners {
			vertices = append(vertices, Vertex{Position: corner, Normal: f.normal, UV: uvs[i]})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return Data{Name: "box", Vertices: vertices, Indices: indices}
}

// Cylinder generates a capped cylinder of radius 0.5 and height 1,
// centered at the origin, with the given number of side segments.
func Cylinder(segments int) Data {
	if segments < 3 {
		segments = 3
	}

	const radius, halfHeight = 0.5, 0.5
	var vertices []Vertex
	var indices []uint32

	// Side wall.
	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2 * stdmath.Pi / float64(segments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		normal := mgl32.Vec3{cosT, 0, sinT}
		u := float32(i) / float32(segments)

		vertices = append(vertices,
			Vertex{
				Position: mgl32.Vec3{cosT * radius, -halfHeight, sinT * radius},
				Normal:   normal,
				UV:       mgl32.Vec2{u, 0},
			},
			Vertex{
				Position: mgl32.Vec3{cosT * radius, halfHeight, sinT * radius},
				Normal:   normal,
				UV:       mgl32.Vec2{u, 1},
			},
		)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2, base+2, base+1, base+3)
	}

	// Caps.
	for _, lid := range []struct {
		y      float32
		normal mgl32.Vec3
		flip   bool
	}{
		{halfHeight, mgl32.Vec3{0, 1, 0}, false},
		{-halfHeight, mgl32.Vec3{0, -1, 0}, true},
	} {
		center := uint32(len(vertices))
		vertices = append(vertices, Vertex{
			Position: mgl32.Vec3{0, lid.y, 0},
			Normal:   lid.normal,
			UV:       mgl32.Vec2{0.5, 0.5},
		})
		ring := uint32(len(vertices))
		for i := 0; i <= segments; i++ {
			theta := float64(i) * 2 * stdmath.Pi / float64(segments)
			cosT := float32(stdmath.Cos(theta))
			sinT := float32(stdmath.Sin(theta))
			vertices = append(vertices, Vertex{
				Position: mgl32.Vec3{cosT * radius, lid.y, sinT * radius},
				Normal:   lid.normal,
				UV:       mgl32.Vec2{cosT*0.5 + 0.5, sinT*0.5 + 0.5},
			})
		}
		for i := 0; i < segments; i++ {
			a, b := ring+uint32(i), ring+uint32(i)+1
			if lid.flip {
				indices = append(indices, center, a, b)
			} else {
				indices = append(indices, center, b, a)
			}
		}
	}

	return Data{Name: "cylinder", Vertices: vertices, Indices: indices}
}

// Torus generates a torus with major radius 0.5 and minor radius 0.25,
// centered at the origin in the XZ plane.
func Torus(majorSegments, minorSegments int) Data {
	if majorSegments < 3 {
		majorSegments = 3
	}
	if minorSegments < 3 {
		minorSegments = 3
	}

	const majorRadius, minorRadius = 0.5, 0.25
	var vertices []Vertex
	var indices []uint32

	for i := 0; i <= majorSegments; i++ {
		theta := float64(i) * 2 * stdmath.Pi / float64(majorSegments)
		cosTheta := float32(stdmath.Cos(theta))
		sinTheta := float32(stdmath.Sin(theta))

		for j := 0; j <= minorSegments; j++ {
			phi := float64(j) * 2 * stdmath.Pi / float64(minorSegments)
			cosPhi := float32(stdmath.Cos(phi))
			sinPhi := float32(stdmath.Sin(phi))

			position := mgl32.Vec3{
				(majorRadius + minorRadius*cosPhi) * cosTheta,
				minorRadius * sinPhi,
				(majorRadius + minorRadius*cosPhi) * sinTheta,
			}
			normal := mgl32.Vec3{cosPhi * cosTheta, sinPhi, cosPhi * sinTheta}.Normalize()

			vertices = append(vertices, Vertex{
				Position: position,
				Normal:   normal,
				UV: mgl32.Vec2{
					float32(i) / float32(majorSegments),
					float32(j) / float32(minorSegments),
				},
			})
		}
	}

	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			current := uint32(i*(minorSegments+1) + j)
			next := uint32((i+1)*(minorSegments+1) + j)
			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return Data{Name: "torus", Vertices: vertices, Indices: indices}
}
