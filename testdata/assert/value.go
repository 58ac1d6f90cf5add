package assert

import (
	"testing"

	"github.com/damedic/scalar-toolbox-go/scalar"
	"github.com/google/go-cmp/cmp"
	"github.com/samber/mo"
)

func ValueEqual(t *testing.T, expected, actual scalar.Value) {
	t.Helper()
	// values with different dynamic types are never equal, Equal takes care of the rest
	if diff := cmp.Diff(expected, actual, cmp.Comparer(func(a, b scalar.Value) bool {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		return a.Equal(b)
	})); diff != "" {
		t.Errorf("value mismatch (-expected +actual):\n%s", diff)
	}
}

func OptionEqual(t *testing.T, expected, actual mo.Option[scalar.Value]) {
	t.Helper()
	e, expectedPresent := expected.Get()
	a, actualPresent := actual.Get()
	if expectedPresent != actualPresent {
		t.Errorf("expected value present: %v, actual value present: %v (%v)", expectedPresent, actualPresent, a)
		return
	}
	if expectedPresent {
		ValueEqual(t, e, a)
	}
}
