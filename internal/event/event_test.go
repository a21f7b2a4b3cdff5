package event

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPublishOrder(t *testing.T) {
	var e Event[int]
	var got []string
	e.Subscribe(func(v int) { got = append(got, "a") })
	e.Subscribe(func(v int) { got = append(got, "b") })
	e.Subscribe(func(v int) { got = append(got, "c") })

	e.Publish(1)
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestUnsubscribe(t *testing.T) {
	var e Event[string]
	var got []string
	a := e.Subscribe(func(v string) { got = append(got, "a:"+v) })
	b := e.Subscribe(func(v string) { got = append(got, "b:"+v) })

	if a == b {
		t.Fatalf("duplicate IDs %d", a)
	}
	if !e.Unsubscribe(a) {
		t.Fatal("Unsubscribe(a) = false")
	}
	if e.Unsubscribe(a) {
		t.Error("second Unsubscribe(a) = true")
	}
	c := e.Subscribe(func(v string) { got = append(got, "c:"+v) })
	if c == a {
		t.Error("ID reused after unsubscribe")
	}

	e.Publish("x")
	if diff := cmp.Diff([]string{"b:x", "c:x"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if e.Len() != 2 {
		t.Errorf("Len() = %d", e.Len())
	}
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	var e Event[int]
	calls := 0
	var second ID
	e.Subscribe(func(int) {
		calls++
		e.Unsubscribe(second)
	})
	second = e.Subscribe(func(int) { calls++ })

	e.Publish(0)
	if calls != 2 {
		t.Errorf("first publish made %d calls, want 2", calls)
	}
	e.Publish(0)
	if calls != 3 {
		t.Errorf("second publish made %d calls total, want 3", calls)
	}
}

func TestClear(t *testing.T) {
	var e Event[int]
	e.Subscribe(func(int) { t.Error("handler called after Clear") })
	e.Clear()
	e.Publish(1)
	if e.Len() != 0 {
		t.Errorf("Len() = %d", e.Len())
	}
}
