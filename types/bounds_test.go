package types

import (
	"math"
	"testing"
)

func TestEmptyBoundsIsUnionIdentity(t *testing.T) {
	boxes := []Bounds3{
		{Vec3{-1, -2, -3}, Vec3{1, 2, 3}},
		{Vec3{5, 5, 5}, Vec3{5, 5, 5}},
		{Vec3{-1e30, 0, 0}, Vec3{0, 1e30, 0}},
	}

	for idx, box := range boxes {
		if got := box.Union(EmptyBounds()); got != box {
			t.Fatalf("[box %d] expected union with empty box to be %v; got %v", idx, box, got)
		}
		if got := EmptyBounds().Union(box); got != box {
			t.Fatalf("[box %d] expected empty box union to be %v; got %v", idx, box, got)
		}
	}

	p := Vec3{1, 2, 3}
	if got := EmptyBounds().UnionPoint(p); got != BoundsFromPoint(p) {
		t.Fatalf("expected empty box union with point to be %v; got %v", BoundsFromPoint(p), got)
	}

	if !EmptyBounds().IsEmpty() {
		t.Fatal("expected empty box to report IsEmpty")
	}
	if EmptyBounds().Min[0] != math.MaxFloat32 || EmptyBounds().Max[0] != -math.MaxFloat32 {
		t.Fatalf("unexpected empty box sentinel %v", EmptyBounds())
	}
}

func TestUnionIsCommutativeAndAssociative(t *testing.T) {
	a := Bounds3{Vec3{0, 0, 0}, Vec3{1, 1, 1}}
	b := Bounds3{Vec3{-2, 0.5, 3}, Vec3{-1, 4, 5}}
	c := Bounds3{Vec3{7, -7, 0}, Vec3{8, -6, 0}}

	if a.Union(b) != b.Union(a) {
		t.Fatalf("expected union to be commutative; got %v and %v", a.Union(b), b.Union(a))
	}
	if a.Union(b).Union(c) != a.Union(b.Union(c)) {
		t.Fatalf("expected union to be associative; got %v and %v", a.Union(b).Union(c), a.Union(b.Union(c)))
	}

	exp := Bounds3{Vec3{-2, -7, 0}, Vec3{8, 4, 5}}
	if got := a.Union(b).Union(c); got != exp {
		t.Fatalf("expected union to be %v; got %v", exp, got)
	}
}

func TestBoundsFromPoints(t *testing.T) {
	exp := Bounds3{Vec3{-1, 0, 2}, Vec3{3, 4, 5}}
	if got := BoundsFromPoints(Vec3{3, 0, 5}, Vec3{-1, 4, 2}); got != exp {
		t.Fatalf("expected %v; got %v", exp, got)
	}
}

func TestIntersectAndOverlaps(t *testing.T) {
	specs := []struct {
		a, b     Bounds3
		overlaps bool
	}{
		{Bounds3{Vec3{0, 0, 0}, Vec3{2, 2, 2}}, Bounds3{Vec3{1, 1, 1}, Vec3{3, 3, 3}}, true},
		// Touching faces count as overlapping
		{Bounds3{Vec3{0, 0, 0}, Vec3{1, 1, 1}}, Bounds3{Vec3{1, 0, 0}, Vec3{2, 1, 1}}, true},
		{Bounds3{Vec3{0, 0, 0}, Vec3{1, 1, 1}}, Bounds3{Vec3{1.5, 0, 0}, Vec3{2, 1, 1}}, false},
		// Overlap along two axes only
		{Bounds3{Vec3{0, 0, 0}, Vec3{1, 1, 1}}, Bounds3{Vec3{0, 0, 2}, Vec3{1, 1, 3}}, false},
		// Containment
		{Bounds3{Vec3{-5, -5, -5}, Vec3{5, 5, 5}}, Bounds3{Vec3{0, 0, 0}, Vec3{1, 1, 1}}, true},
		{Bounds3{Vec3{0, 0, 0}, Vec3{1, 1, 1}}, EmptyBounds(), false},
	}

	for idx, spec := range specs {
		if got := spec.a.Overlaps(spec.b); got != spec.overlaps {
			t.Fatalf("[spec %d] expected Overlaps to return %t; got %t", idx, spec.overlaps, got)
		}
		if spec.a.Overlaps(spec.b) != spec.b.Overlaps(spec.a) {
			t.Fatalf("[spec %d] expected Overlaps to be symmetric", idx)
		}
		if got := spec.a.Intersect(spec.b).IsEmpty(); got == spec.overlaps {
			t.Fatalf("[spec %d] expected intersection emptiness to be %t; got %t", idx, !spec.overlaps, got)
		}
	}

	exp := Bounds3{Vec3{1, 1, 1}, Vec3{2, 2, 2}}
	if got := specs[0].a.Intersect(specs[0].b); got != exp {
		t.Fatalf("expected intersection %v; got %v", exp, got)
	}
}

func TestInside(t *testing.T) {
	b := Bounds3{Vec3{0, 0, 0}, Vec3{1, 1, 1}}
	if !b.Inside(Vec3{0.5, 0.5, 0.5}) {
		t.Fatal("expected center point to be inside")
	}
	if !b.Inside(Vec3{1, 0, 1}) {
		t.Fatal("expected boundary point to be inside")
	}
	if b.Inside(Vec3{1.01, 0.5, 0.5}) {
		t.Fatal("expected outside point to not be inside")
	}
}

func TestMaximumExtent(t *testing.T) {
	specs := []struct {
		diag Vec3
		exp  int
	}{
		{Vec3{3, 1, 1}, 0},
		{Vec3{1, 3, 1}, 1},
		{Vec3{1, 1, 3}, 2},
		// Ties
		{Vec3{2, 2, 2}, 2},
		{Vec3{2, 2, 1}, 1},
		{Vec3{2, 1, 2}, 2},
		{Vec3{0, 0, 0}, 2},
	}

	for idx, spec := range specs {
		b := Bounds3{Vec3{}, spec.diag}
		if got := b.MaximumExtent(); got != spec.exp {
			t.Fatalf("[spec %d] expected max extent axis %d; got %d", idx, spec.exp, got)
		}
	}
}

func TestDerivedProperties(t *testing.T) {
	b := Bounds3{Vec3{-1, 0, 1}, Vec3{1, 4, 4}}

	if got := b.Diagonal(); got != (Vec3{2, 4, 3}) {
		t.Fatalf("expected diagonal (2, 4, 3); got %v", got)
	}
	if got := b.Centroid(); got != (Vec3{0, 2, 2.5}) {
		t.Fatalf("expected centroid (0, 2, 2.5); got %v", got)
	}
	if got := b.SurfaceArea(); got != 2*(8+6+12) {
		t.Fatalf("expected surface area 52; got %f", got)
	}
	if got := b.Volume(); got != 24 {
		t.Fatalf("expected volume 24; got %f", got)
	}
	if got := b.Lerp(Vec3{0, 0.5, 1}); got != (Vec3{-1, 2, 4}) {
		t.Fatalf("expected lerp (-1, 2, 4); got %v", got)
	}
	if got := b.Expand(1); got != (Bounds3{Vec3{-2, -1, 0}, Vec3{2, 5, 5}}) {
		t.Fatalf("unexpected expanded box %v", got)
	}
}

func TestOffset(t *testing.T) {
	b := Bounds3{Vec3{0, 0, 0}, Vec3{2, 4, 8}}
	if got := b.Offset(Vec3{1, 1, 8}); got != (Vec3{0.5, 0.25, 1}) {
		t.Fatalf("expected offset (0.5, 0.25, 1); got %v", got)
	}

	// Zero width axes are left unnormalized
	flat := Bounds3{Vec3{1, 0, 3}, Vec3{1, 2, 3}}
	got := flat.Offset(Vec3{1.5, 1, 5})
	if got != (Vec3{0.5, 0.5, 2}) {
		t.Fatalf("expected offset (0.5, 0.5, 2); got %v", got)
	}
	for axis := 0; axis < 3; axis++ {
		if math.IsNaN(float64(got[axis])) || math.IsInf(float64(got[axis]), 0) {
			t.Fatalf("expected finite offset along axis %d; got %v", axis, got)
		}
	}
}

func TestCorners(t *testing.T) {
	b := Bounds3{Vec3{0, 1, 2}, Vec3{3, 4, 5}}
	expCorners := []Vec3{
		{0, 1, 2}, {3, 1, 2}, {0, 4, 2}, {3, 4, 2},
		{0, 1, 5}, {3, 1, 5}, {0, 4, 5}, {3, 4, 5},
	}
	for corner, exp := range expCorners {
		if got := b.Corner(corner); got != exp {
			t.Fatalf("expected corner %d to be %v; got %v", corner, exp, got)
		}
	}
}

func TestTransform(t *testing.T) {
	b := Bounds3{Vec3{0, 0, 0}, Vec3{1, 2, 3}}

	got := b.Transform(Translate4(Vec3{10, 0, -1}))
	exp := Bounds3{Vec3{10, 0, -1}, Vec3{11, 2, 2}}
	if got != exp {
		t.Fatalf("expected translated box %v; got %v", exp, got)
	}

	// A 90 degree rotation around Z maps x -> y and y -> -x. Transforming only
	// the min/max corners would produce an inverted box.
	got = b.Transform(Rotate4(Vec3{0, 0, math.Pi / 2}))
	exp = Bounds3{Vec3{-2, 0, 0}, Vec3{0, 1, 3}}
	if !ApproxEqual(got.Min, exp.Min, 1e-5) || !ApproxEqual(got.Max, exp.Max, 1e-5) {
		t.Fatalf("expected rotated box %v; got %v", exp, got)
	}

	// A 45 degree rotation grows the box
	got = Bounds3{Vec3{-1, -1, 0}, Vec3{1, 1, 0}}.Transform(Rotate4(Vec3{0, 0, math.Pi / 4}))
	r := float32(math.Sqrt2)
	if !ApproxEqual(got.Min, Vec3{-r, -r, 0}, 1e-5) || !ApproxEqual(got.Max, Vec3{r, r, 0}, 1e-5) {
		t.Fatalf("expected rotated box to span +/-%f; got %v", r, got)
	}
}
