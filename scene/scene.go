package scene

import (
	"errors"

	"github.com/zhzh2001/litewq/types"
)

// Height of the ground plane used when sweeping movement for collisions.
const GroundLevel float32 = 0

// A Scene is a collection of objects that can be tested for collisions.
type Scene struct {
	Objects []*Object
}

// Create a new empty scene.
func NewScene() *Scene {
	return &Scene{
		Objects: make([]*Object, 0),
	}
}

// Add an object to the scene.
func (s *Scene) AddObject(object *Object) error {
	if object == nil {
		return errors.New("scene: nil object")
	}
	for _, obj := range s.Objects {
		if obj == object {
			return errors.New("scene: object already added")
		}
	}
	s.Objects = append(s.Objects, object)
	return nil
}

// Find an object by name.
func (s *Scene) Object(name string) *Object {
	for _, obj := range s.Objects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// Returns true if hitbox overlaps the BVH of any object. Objects without a
// BVH do not participate in collision detection.
func (s *Scene) Collision(hitbox types.Bounds3) bool {
	for _, obj := range s.Objects {
		if obj.bvh != nil && obj.bvh.Intersect(hitbox) {
			return true
		}
	}
	return false
}

// Union of the world bounds of all objects with a BVH.
func (s *Scene) WorldBound() types.Bounds3 {
	bound := types.EmptyBounds()
	for _, obj := range s.Objects {
		if obj.bvh != nil {
			bound = bound.Union(obj.bvh.WorldBound())
		}
	}
	return bound
}

// Get the box swept when moving between two positions.
func SweepBounds(from, to types.Vec3) types.Bounds3 {
	return types.BoundsFromPoints(from, to)
}

// Get the box swept when moving the camera between two positions. The end
// point is projected onto the ground plane.
func MoveSweep(from, to types.Vec3) types.Bounds3 {
	sweepEnd := to
	sweepEnd[1] = GroundLevel
	return SweepBounds(from, sweepEnd)
}

// Returns true if moving between two positions collides with scene geometry.
func (s *Scene) MoveBlocked(from, to types.Vec3) bool {
	return s.Collision(MoveSweep(from, to))
}

// Resolve a movement from one position to another. If the sweep returned by
// MoveSweep collides with scene geometry the movement is rejected and from is
// returned; otherwise to is returned unchanged.
func (s *Scene) ResolveMove(from, to types.Vec3) types.Vec3 {
	if s.MoveBlocked(from, to) {
		return from
	}
	return to
}
