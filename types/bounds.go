package types

import (
	"fmt"
	"math"
)

// Bounds3 is an axis-aligned bounding box. A valid box satisfies
// Min[i] <= Max[i] for every axis.
//
// The empty box returned by EmptyBounds stores the largest representable
// float32 in Min and the lowest in Max. Unioning it with any box or point
// yields that box or point unchanged, so it is used as the identity element
// when folding bounds together.
type Bounds3 struct {
	Min Vec3
	Max Vec3
}

// Create an empty bounding box.
func EmptyBounds() Bounds3 {
	return Bounds3{
		Min: Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// Create a degenerate bounding box that contains a single point.
func BoundsFromPoint(p Vec3) Bounds3 {
	return Bounds3{Min: p, Max: p}
}

// Create the smallest bounding box containing both points.
func BoundsFromPoints(p1, p2 Vec3) Bounds3 {
	return Bounds3{Min: MinVec3(p1, p2), Max: MaxVec3(p1, p2)}
}

// Returns true if Min exceeds Max along any axis. This is the case for the
// empty box and for the result of intersecting two disjoint boxes.
func (b Bounds3) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Diagonal vector from Min to Max.
func (b Bounds3) Diagonal() Vec3 {
	return b.Max.Sub(b.Min)
}

// Midpoint of the box.
func (b Bounds3) Centroid() Vec3 {
	return b.Min.Mul(0.5).Add(b.Max.Mul(0.5))
}

func (b Bounds3) SurfaceArea() float32 {
	d := b.Diagonal()
	return 2 * (d[0]*d[1] + d[0]*d[2] + d[1]*d[2])
}

func (b Bounds3) Volume() float32 {
	d := b.Diagonal()
	return d[0] * d[1] * d[2]
}

// Index of the axis with the largest extent (0=x, 1=y, 2=z). Ties prefer X
// over Y over Z.
func (b Bounds3) MaximumExtent() int {
	d := b.Diagonal()
	if d[0] > d[1] && d[0] > d[2] {
		return 0
	} else if d[1] > d[2] {
		return 1
	}
	return 2
}

// Interpolate between Min and Max using a per-axis parameter.
func (b Bounds3) Lerp(t Vec3) Vec3 {
	return Vec3{
		Lerp(t[0], b.Min[0], b.Max[0]),
		Lerp(t[1], b.Min[1], b.Max[1]),
		Lerp(t[2], b.Min[2], b.Max[2]),
	}
}

// Position of p relative to the box where Min maps to 0 and Max to 1. Axes
// with zero extent are left unnormalized (p - Min).
func (b Bounds3) Offset(p Vec3) Vec3 {
	o := p.Sub(b.Min)
	for axis := 0; axis < 3; axis++ {
		if b.Max[axis] > b.Min[axis] {
			o[axis] /= b.Max[axis] - b.Min[axis]
		}
	}
	return o
}

// Get one of the 8 box corners. Bits 0, 1 and 2 of corner select Max
// (instead of Min) for the x, y and z coordinates respectively.
func (b Bounds3) Corner(corner int) Vec3 {
	var out Vec3
	for axis := 0; axis < 3; axis++ {
		if corner&(1<<uint(axis)) != 0 {
			out[axis] = b.Max[axis]
		} else {
			out[axis] = b.Min[axis]
		}
	}
	return out
}

// Grow the box by delta along every axis.
func (b Bounds3) Expand(delta float32) Bounds3 {
	return Bounds3{Min: b.Min.Sub(Splat3(delta)), Max: b.Max.Add(Splat3(delta))}
}

// Map the box through a transformation matrix. All 8 corners are transformed
// since rotations and shears do not preserve the min/max corners.
func (b Bounds3) Transform(m Mat4) Bounds3 {
	out := EmptyBounds()
	for corner := 0; corner < 8; corner++ {
		out = out.UnionPoint(m.TransformPoint(b.Corner(corner)))
	}
	return out
}

// Smallest box containing both boxes.
func (b Bounds3) Union(b2 Bounds3) Bounds3 {
	return Bounds3{Min: MinVec3(b.Min, b2.Min), Max: MaxVec3(b.Max, b2.Max)}
}

// Smallest box containing b and p.
func (b Bounds3) UnionPoint(p Vec3) Bounds3 {
	return Bounds3{Min: MinVec3(b.Min, p), Max: MaxVec3(b.Max, p)}
}

// Intersection of two boxes. The result is degenerate (see IsEmpty) when the
// boxes do not overlap; use Overlaps to check first.
func (b Bounds3) Intersect(b2 Bounds3) Bounds3 {
	return Bounds3{Min: MaxVec3(b.Min, b2.Min), Max: MinVec3(b.Max, b2.Max)}
}

// Returns true if the boxes overlap along every axis. Touching boxes overlap.
func (b Bounds3) Overlaps(b2 Bounds3) bool {
	x := b.Max[0] >= b2.Min[0] && b.Min[0] <= b2.Max[0]
	y := b.Max[1] >= b2.Min[1] && b.Min[1] <= b2.Max[1]
	z := b.Max[2] >= b2.Min[2] && b.Min[2] <= b2.Max[2]
	return x && y && z
}

// Returns true if p lies inside the box or on its boundary.
func (b Bounds3) Inside(p Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

func (b Bounds3) String() string {
	return fmt.Sprintf("[(%g, %g, %g), (%g, %g, %g)]", b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
}
