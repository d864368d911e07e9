package shape

import (
	"fmt"

	"github.com/zhzh2001/litewq/types"
)

// A Mesh stores the vertex buffer referenced by triangle shapes. Indices are
// grouped in triplets, one per triangle.
type Mesh struct {
	Vertices []types.Vec3
	Indices  []uint32
}

// Number of triangles defined by the mesh index list.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Check that the index list describes whole triangles and references existing vertices.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("shape: mesh index count %d is not a multiple of 3", len(m.Indices))
	}
	for pos, index := range m.Indices {
		if int(index) >= len(m.Vertices) {
			return fmt.Errorf("shape: index %d at position %d is out of bounds (%d vertices)", index, pos, len(m.Vertices))
		}
	}
	return nil
}

// Create a triangle shape for each index triplet. All triangles share the
// supplied object-to-world transform.
func (m *Mesh) Triangles(objectToWorld *types.Mat4) []Shape {
	shapes := make([]Shape, m.TriangleCount())
	for tri := range shapes {
		shapes[tri] = &Triangle{
			base: base{objectToWorld: objectToWorld},
			mesh: m,
			v:    [3]uint32{m.Indices[3*tri], m.Indices[3*tri+1], m.Indices[3*tri+2]},
		}
	}
	return shapes
}

// A Triangle references three vertices of a mesh.
type Triangle struct {
	base

	mesh *Mesh
	v    [3]uint32
}

// Create a triangle from three vertex indices into mesh.
func NewTriangle(objectToWorld *types.Mat4, mesh *Mesh, v [3]uint32) *Triangle {
	return &Triangle{
		base: base{objectToWorld: objectToWorld},
		mesh: mesh,
		v:    v,
	}
}

func (t *Triangle) Kind() Kind {
	return KindTriangle
}

// Get the triangle vertex positions in object space.
func (t *Triangle) Vertices() [3]types.Vec3 {
	return [3]types.Vec3{
		t.mesh.Vertices[t.v[0]],
		t.mesh.Vertices[t.v[1]],
		t.mesh.Vertices[t.v[2]],
	}
}

// Get the vertex indices.
func (t *Triangle) Indices() [3]uint32 {
	return t.v
}

func (t *Triangle) ObjectBound() types.Bounds3 {
	verts := t.Vertices()
	return types.BoundsFromPoints(verts[0], verts[1]).UnionPoint(verts[2])
}

func (t *Triangle) WorldBound() types.Bounds3 {
	return t.toWorld(t.ObjectBound())
}
