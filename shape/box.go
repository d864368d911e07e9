package shape

import "github.com/zhzh2001/litewq/types"

// An axis-aligned box primitive, typically used for simple colliders.
type Box struct {
	base

	bound types.Bounds3
}

// Create a box shape from an object space bound.
func NewBox(objectToWorld *types.Mat4, bound types.Bounds3) *Box {
	return &Box{
		base:  base{objectToWorld: objectToWorld},
		bound: bound,
	}
}

// Create an untransformed box with the given center and edge length.
func NewCube(center types.Vec3, size float32) *Box {
	half := types.Splat3(size * 0.5)
	return NewBox(nil, types.Bounds3{Min: center.Sub(half), Max: center.Add(half)})
}

func (b *Box) Kind() Kind {
	return KindBox
}

func (b *Box) ObjectBound() types.Bounds3 {
	return b.bound
}

func (b *Box) WorldBound() types.Bounds3 {
	return b.toWorld(b.bound)
}
