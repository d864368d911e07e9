package input

import (
	"github.com/zhzh2001/litewq/shape"
	"github.com/zhzh2001/litewq/types"
)

// A named triangle mesh parsed from a scene file.
type Mesh struct {
	Name string

	// Vertex positions and triangle indices.
	shape.Mesh
}

// Create a new mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name: name,
		Mesh: shape.Mesh{
			Vertices: make([]types.Vec3, 0),
			Indices:  make([]uint32, 0),
		},
	}
}

// Append a triangle to the mesh. Vertices are copied into the mesh vertex list.
func (m *Mesh) AddTriangle(v0, v1, v2 types.Vec3) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, v0, v1, v2)
	m.Indices = append(m.Indices, base, base+1, base+2)
}

// Get the mesh bounding box in object space.
func (m *Mesh) BBox() types.Bounds3 {
	bbox := types.EmptyBounds()
	for _, index := range m.Indices {
		bbox = bbox.UnionPoint(m.Vertices[index])
	}
	return bbox
}

// A mesh instance applies a transformation to a particular Mesh.
type MeshInstance struct {
	Name      string
	MeshIndex uint32
	Transform types.Mat4
}

// The scene contains all elements that are processed by the scene compiler.
type Scene struct {
	Meshes        []*Mesh
	MeshInstances []*MeshInstance
}

// Create a new scene.
func NewScene() *Scene {
	return &Scene{
		Meshes:        make([]*Mesh, 0),
		MeshInstances: make([]*MeshInstance, 0),
	}
}
