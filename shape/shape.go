// Package shape defines the primitives that can be partitioned by a BVH.
//
// Every shape reports an object-space bound and a world-space bound. The world
// bound is derived from the object bound by applying an object-to-world
// transform that is owned by the caller (usually the scene object the shape
// belongs to); shapes only keep a reference to it. Callers must only submit
// shapes whose world bounds are finite and must not mutate the referenced
// geometry or transform while a BVH built from the shapes is in use.
package shape

import (
	"fmt"

	"github.com/zhzh2001/litewq/types"
)

// The Kind of a shape.
type Kind uint8

const (
	KindTriangle Kind = iota
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindTriangle:
		return "triangle"
	case KindBox:
		return "box"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// The Shape interface is implemented by all primitives that can be partitioned
// by the bvh builder. The set of implementations is closed to this package.
type Shape interface {
	// The shape kind.
	Kind() Kind

	// Bounds in object space.
	ObjectBound() types.Bounds3

	// Bounds in world space.
	WorldBound() types.Bounds3

	sealed()
}

// Transformed state shared by all shape kinds.
type base struct {
	objectToWorld *types.Mat4
}

// Map an object space bound to world space. A nil transform is the identity.
func (b base) toWorld(bound types.Bounds3) types.Bounds3 {
	if b.objectToWorld == nil {
		return bound
	}
	return bound.Transform(*b.objectToWorld)
}

func (base) sealed() {}

// Get the center of the shape's world bound.
func Centroid(s Shape) types.Vec3 {
	return s.WorldBound().Centroid()
}

// Union of the world bounds of a list of shapes.
func WorldBounds(shapes []Shape) types.Bounds3 {
	bound := types.EmptyBounds()
	for _, s := range shapes {
		bound = bound.Union(s.WorldBound())
	}
	return bound
}
