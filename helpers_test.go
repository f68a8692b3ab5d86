package pinwheel

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// approx compares floats inside structs and slices to within epsilon.
var approx = cmpopts.EquateApprox(0, epsilon)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustScalar(t *testing.T, v float64) Scalar {
	t.Helper()
	s, err := NewScalar(v)
	if err != nil {
		t.Fatalf("NewScalar(%v): %v", v, err)
	}
	return s
}

// looseApprox is a looser comparison for values that went through
// trigonometry.
var looseApprox = cmpopts.EquateApprox(0, 1e-6)
