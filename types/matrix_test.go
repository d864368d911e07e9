package types

import (
	"math"
	"testing"
)

func TestRotate4AxisOrder(t *testing.T) {
	type spec struct {
		angles     Vec3
		in, expOut Vec3
	}
	specs := []spec{
		{Vec3{math.Pi / 2, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{Vec3{0, math.Pi / 2, 0}, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{Vec3{0, 0, math.Pi / 2}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		// X is applied first: y -> z, then the Z rotation leaves z alone
		{Vec3{math.Pi / 2, 0, math.Pi / 2}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		// Y after X: y -> z -> x
		{Vec3{math.Pi / 2, math.Pi / 2, 0}, Vec3{0, 1, 0}, Vec3{1, 0, 0}},
	}

	for idx, s := range specs {
		out := Rotate4(s.angles).TransformPoint(s.in)
		if !ApproxEqual(out, s.expOut, 1e-5) {
			t.Fatalf("[spec %d] expected rotated point to be %v; got %v", idx, s.expOut, out)
		}
	}
}

func TestInverseTransformRoundTrip(t *testing.T) {
	m := Translate4(Vec3{3, -2, 10}).Mul4(Rotate4(Vec3{0.3, -1.2, 2.5}).Mul4(Scale4(Vec3{2, 0.5, 4})))
	inv := m.Inv()

	points := []Vec3{
		{0, 0, 0},
		{1, 2, 3},
		{-7.5, 0.25, 10},
	}
	for idx, p := range points {
		out := inv.TransformPoint(m.TransformPoint(p))
		if !ApproxEqual(out, p, 1e-3) {
			t.Fatalf("[point %d] expected inverse transform to restore %v; got %v", idx, p, out)
		}
	}

	ident := Ident4()
	prod := m.Mul4(inv)
	for i := range prod {
		if float32(math.Abs(float64(prod[i]-ident[i]))) > 1e-3 {
			t.Fatalf("expected m * inv(m) to be the identity matrix; got %v", prod)
		}
	}

	var singular Mat4
	if got := Scale4(Vec3{1, 0, 1}).Inv(); got != singular {
		t.Fatalf("expected singular matrix inverse to be the zero matrix; got %v", got)
	}
}
