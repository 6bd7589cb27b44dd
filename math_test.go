package rocket

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSign(t *testing.T) {
	for _, v := range []float64{1e-300, 0.5, 1, 42, math.Inf(1)} {
		if sign(v) != 1 {
			t.Fatalf("sign(%v) != 1", v)
		}
		if sign(-v) != -1 {
			t.Fatalf("sign(%v) != -1", -v)
		}
	}
	if sign(0) != 0 {
		t.Fatal("sign(0) != 0")
	}
	if sign(math.Copysign(0, -1)) != 0 {
		t.Fatal("sign(-0) != 0")
	}
}

func TestDiscArea(t *testing.T) {
	if discArea(0) != 0 {
		t.Fatal("empty disc has an area")
	}
	if !scalar.EqualWithinAbs(discArea(1), math.Pi, 1e-15) {
		t.Fatal("unit disc area != π")
	}
	if !scalar.EqualWithinRel(discArea(0.1), 0.031415926535897934, 1e-12) {
		t.Fatalf("parachute area is %v", discArea(0.1))
	}
}
