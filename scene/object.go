package scene

import (
	"github.com/zhzh2001/litewq/bvh"
	"github.com/zhzh2001/litewq/shape"
	"github.com/zhzh2001/litewq/types"
)

// An Object positions a triangle mesh inside the scene.
type Object struct {
	Name string
	Mesh *shape.Mesh

	model types.Mat4

	// The collision BVH for the object; nil until BuildBVH is called.
	bvh *bvh.BVH
}

// Create a new object with the given model transform.
func NewObject(name string, mesh *shape.Mesh, model types.Mat4) *Object {
	return &Object{
		Name:  name,
		Mesh:  mesh,
		model: model,
	}
}

// Get the model transform.
func (o *Object) Model() types.Mat4 {
	return o.model
}

// Update the model transform. Trees are never refitted so any previously
// built BVH is dropped and must be rebuilt with BuildBVH. Trees returned by
// earlier BuildBVH calls keep the transform they were built with.
func (o *Object) SetModel(model types.Mat4) {
	o.model = model
	o.bvh = nil
}

// Build the collision BVH from the object mesh triangles. The triangles of
// the tree reference a snapshot of the current model transform.
func (o *Object) BuildBVH() *bvh.BVH {
	model := o.model
	o.bvh = bvh.Build(o.Mesh.Triangles(&model))
	return o.bvh
}

// Get the object BVH or nil if it has not been built.
func (o *Object) BVH() *bvh.BVH {
	return o.bvh
}
