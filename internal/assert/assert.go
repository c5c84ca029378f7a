// Package assert provides minimal assertion helpers for tests.
package assert

import (
	"reflect"
	"testing"
)

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// Nil fails the test if v is non-nil.
func Nil(t *testing.T, v any) {
	t.Helper()
	if !isNil(v) {
		t.Fatalf("expected nil, got %v", v)
	}
}

// NotNil fails the test if v is nil.
func NotNil(t *testing.T, v any) {
	t.Helper()
	if isNil(v) {
		t.Fatalf("expected non-nil value")
	}
}

// True fails the test if the condition is false.
func True(t *testing.T, condition bool) {
	t.Helper()
	if !condition {
		t.Fatalf("expected condition to be true")
	}
}

// False fails the test if the condition is true.
func False(t *testing.T, condition bool) {
	t.Helper()
	if condition {
		t.Fatalf("expected condition to be false")
	}
}

// Equal fails the test if got and want differ.
func Equal[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v; want %v", got, want)
	}
}

// DeepEqual fails the test if got and want differ under reflect.DeepEqual.
func DeepEqual(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v; want %#v", got, want)
	}
}
