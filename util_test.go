package contour

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and thus points and commands, with a tolerance.
func approx(eps float64) cmp.Option {
	return cmpopts.EquateApprox(0, eps)
}

func assertNear(t *testing.T, p0, p1 Point, eps float64) {
	t.Helper()
	if p0.Distance(p1) > eps {
		t.Errorf("got %v, want %v (within %g)", p0, p1, eps)
	}
}

func isNear(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
