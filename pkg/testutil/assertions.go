package testutil

import (
	"reflect"
	"testing"
)

// AssertSameFunc checks that two function values share the same code.
// Closures created from the same literal share code too, so pair this
// with a behavioural check when that matters.
func AssertSameFunc(t *testing.T, expected, actual interface{}) {
	t.Helper()

	ev, av := reflect.ValueOf(expected), reflect.ValueOf(actual)
	if ev.Kind() != reflect.Func || av.Kind() != reflect.Func {
		t.Errorf("Expected two functions, got %T and %T", expected, actual)
		return
	}
	if ev.IsNil() || av.IsNil() {
		if ev.IsNil() != av.IsNil() {
			t.Errorf("Expected both functions nil or both non-nil")
		}
		return
	}
	if ev.Pointer() != av.Pointer() {
		t.Errorf("Functions differ: %v != %v", ev.Pointer(), av.Pointer())
	}
}
