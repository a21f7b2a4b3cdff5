//go:build !release

package assert

import (
	"errors"
	"testing"
)

func TestThatHolds(t *testing.T) {
	if !That(true, "unused %d", 1) {
		t.Fatal("That(true) = false")
	}
}

func TestThatPanics(t *testing.T) {
	defer func() {
		r := recover()
		var v Violation
		err, ok := r.(error)
		if !ok || !errors.As(err, &v) {
			t.Fatalf("recovered %#v, want Violation", r)
		}
		if v.Message != "size 3 != 4" {
			t.Errorf("message = %q", v.Message)
		}
	}()
	That(false, "size %d != %d", 3, 4)
	t.Fatal("That(false) did not panic")
}
