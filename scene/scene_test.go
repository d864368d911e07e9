package scene

import (
	"testing"

	"github.com/zhzh2001/litewq/shape"
	"github.com/zhzh2001/litewq/types"
)

// A unit quad lying on the XY plane with its lower left corner at the origin.
func quadMesh() *shape.Mesh {
	return &shape.Mesh{
		Vertices: []types.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Indices:  []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestCollision(t *testing.T) {
	sc := NewScene()
	wall := NewObject("wall", quadMesh(), types.Translate4(types.Vec3{0, 0, -5}))
	wall.BuildBVH()
	if err := sc.AddObject(wall); err != nil {
		t.Fatal(err)
	}

	// Objects without a BVH are ignored
	ghost := NewObject("ghost", quadMesh(), types.Ident4())
	if err := sc.AddObject(ghost); err != nil {
		t.Fatal(err)
	}

	if !sc.Collision(types.Bounds3{Min: types.Vec3{0.2, 0.2, -6}, Max: types.Vec3{0.4, 0.4, -4}}) {
		t.Fatal("expected hitbox crossing the wall to collide")
	}
	if sc.Collision(types.Bounds3{Min: types.Vec3{0.2, 0.2, -0.1}, Max: types.Vec3{0.4, 0.4, 0.1}}) {
		t.Fatal("expected hitbox at the ghost object to not collide")
	}

	exp := types.Bounds3{Min: types.Vec3{0, 0, -5}, Max: types.Vec3{1, 1, -5}}
	if got := sc.WorldBound(); got != exp {
		t.Fatalf("expected scene bound %v; got %v", exp, got)
	}

	if sc.Object("ghost") != ghost || sc.Object("missing") != nil {
		t.Fatal("unexpected object lookup result")
	}
}

func TestAddObjectErrors(t *testing.T) {
	sc := NewScene()
	obj := NewObject("obj", quadMesh(), types.Ident4())
	if err := sc.AddObject(obj); err != nil {
		t.Fatal(err)
	}

	expError := "scene: object already added"
	if err := sc.AddObject(obj); err == nil || err.Error() != expError {
		t.Fatalf("expected to get %s; got %v", expError, err)
	}

	expError = "scene: nil object"
	if err := sc.AddObject(nil); err == nil || err.Error() != expError {
		t.Fatalf("expected to get %s; got %v", expError, err)
	}
}

func TestSetModelDropsBVH(t *testing.T) {
	obj := NewObject("obj", quadMesh(), types.Ident4())
	tree := obj.BuildBVH()
	if obj.BVH() != tree || tree.Len() != 2 {
		t.Fatalf("expected object BVH with 2 triangles; got %v", obj.BVH())
	}

	obj.SetModel(types.Translate4(types.Vec3{3, 0, 0}))
	if obj.BVH() != nil {
		t.Fatal("expected BVH to be dropped after updating the model")
	}

	// Trees built before the update stay consistent with their shapes
	root, _ := tree.Root()
	expOld := types.Bounds3{Min: types.Vec3{0, 0, 0}, Max: types.Vec3{1, 1, 0}}
	if root.Bounds != expOld || tree.WorldBound() != expOld {
		t.Fatalf("expected stale BVH bound to remain %v; got %v", expOld, root.Bounds)
	}
	for idx, s := range tree.Shapes() {
		if s.WorldBound().Union(expOld) != expOld {
			t.Fatalf("expected shape %d of the stale BVH to stay inside %v; got %v", idx, expOld, s.WorldBound())
		}
	}

	tree = obj.BuildBVH()
	exp := types.Bounds3{Min: types.Vec3{3, 0, 0}, Max: types.Vec3{4, 1, 0}}
	if got := tree.WorldBound(); got != exp {
		t.Fatalf("expected rebuilt BVH bound %v; got %v", exp, got)
	}
	if obj.Model() != types.Translate4(types.Vec3{3, 0, 0}) {
		t.Fatal("expected model transform to be updated")
	}
}

func TestResolveMove(t *testing.T) {
	// A wall on the ground plane spanning x in [0, 1] at z = -5
	sc := NewScene()
	wall := NewObject("wall", quadMesh(), types.Translate4(types.Vec3{0, 0, -5}))
	wall.BuildBVH()
	sc.AddObject(wall)

	from := types.Vec3{0.5, 1.7, -4}

	// Moving through the wall is rejected
	to := types.Vec3{0.5, 1.7, -6}
	if got := sc.ResolveMove(from, to); got != from {
		t.Fatalf("expected blocked move to return %v; got %v", from, got)
	}

	// Moving parallel to the wall is allowed and keeps the camera height
	to = types.Vec3{0.5, 1.7, -3}
	if got := sc.ResolveMove(from, to); got != to {
		t.Fatalf("expected free move to return %v; got %v", to, got)
	}

	// Empty scenes never collide
	if got := NewScene().ResolveMove(from, types.Vec3{0.5, 1.7, -6}); got != (types.Vec3{0.5, 1.7, -6}) {
		t.Fatalf("expected move in empty scene to succeed; got %v", got)
	}
}

func TestSweepBounds(t *testing.T) {
	exp := types.Bounds3{Min: types.Vec3{-1, 0, 2}, Max: types.Vec3{1, 3, 4}}
	if got := SweepBounds(types.Vec3{1, 0, 4}, types.Vec3{-1, 3, 2}); got != exp {
		t.Fatalf("expected sweep bound %v; got %v", exp, got)
	}
}

func TestMoveSweep(t *testing.T) {
	exp := types.Bounds3{Min: types.Vec3{1, 0, 3}, Max: types.Vec3{4, 2, 6}}
	if got := MoveSweep(types.Vec3{1, 2, 3}, types.Vec3{4, 5, 6}); got != exp {
		t.Fatalf("expected move sweep %v; got %v", exp, got)
	}
}

func TestMoveBlocked(t *testing.T) {
	sc := NewScene()
	wall := NewObject("wall", quadMesh(), types.Translate4(types.Vec3{0, 0, -5}))
	wall.BuildBVH()
	sc.AddObject(wall)

	// Staying in place inside the wall still collides
	inside := types.Vec3{0.5, 0.5, -5}
	if !sc.MoveBlocked(inside, inside) {
		t.Fatal("expected a stationary move inside the wall to be blocked")
	}
	if got := sc.ResolveMove(inside, inside); got != inside {
		t.Fatalf("expected blocked move to return %v; got %v", inside, got)
	}

	away := types.Vec3{0.5, 0.5, 3}
	if sc.MoveBlocked(away, away) {
		t.Fatal("expected a stationary move away from the wall to not be blocked")
	}
	if !sc.MoveBlocked(types.Vec3{0.5, 1.7, -4}, types.Vec3{0.5, 1.7, -6}) {
		t.Fatal("expected a move through the wall to be blocked")
	}
}
