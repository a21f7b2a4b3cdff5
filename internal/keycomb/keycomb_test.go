package keycomb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tinyrange/kvmio/internal/assert"
	"github.com/tinyrange/kvmio/internal/rawinput"
)

var (
	keyA = rawinput.KeyboardInput{MakeCode: 0x1E, VirtualKey: rawinput.Letter('a')}
	keyB = rawinput.KeyboardInput{MakeCode: 0x30, VirtualKey: rawinput.Letter('b')}
	keyC = rawinput.KeyboardInput{MakeCode: 0x2E, VirtualKey: rawinput.Letter('c')}
)

func press(in rawinput.KeyboardInput) rawinput.KeyboardInput {
	in.Status = rawinput.Pressed
	return in
}

func release(in rawinput.KeyboardInput) rawinput.KeyboardInput {
	in.Status = rawinput.Released
	return in
}

func vkeys(seq []rawinput.KeyboardInput) []rawinput.VirtualKey {
	out := []rawinput.VirtualKey{}
	for _, in := range seq {
		out = append(out, in.VirtualKey)
	}
	return out
}

func TestTrackerSequence(t *testing.T) {
	a, b := keyA.VirtualKey, keyB.VirtualKey
	steps := []struct {
		in    rawinput.KeyboardInput
		fresh bool
		want  []rawinput.VirtualKey
	}{
		{press(keyA), true, []rawinput.VirtualKey{a}},
		{press(keyB), true, []rawinput.VirtualKey{a, b}},
		{press(keyA), false, []rawinput.VirtualKey{a, b}},
		{release(keyB), false, []rawinput.VirtualKey{a}},
		{release(keyA), false, []rawinput.VirtualKey{}},
	}

	tr := NewTracker()
	if got := vkeys(tr.Sequence()); len(got) != 0 {
		t.Fatalf("initial sequence = %v", got)
	}
	for i, s := range steps {
		if fresh := tr.Update(s.in); fresh != s.fresh {
			t.Errorf("step %d: Update() = %v, want %v", i, fresh, s.fresh)
		}
		if diff := cmp.Diff(s.want, vkeys(tr.Sequence())); diff != "" {
			t.Errorf("step %d: sequence mismatch (-want +got):\n%s", i, diff)
		}
	}
	if tr.Held() != 0 {
		t.Errorf("Held() = %d after releasing everything", tr.Held())
	}
}

func TestTrackerOutOfOrderReleaseClears(t *testing.T) {
	tr := NewTracker()
	tr.Update(press(keyA))
	tr.Update(press(keyB))
	tr.Update(press(keyC))

	tr.Update(release(keyA))
	if got := tr.Sequence(); len(got) != 0 {
		t.Errorf("sequence = %v, want empty", vkeys(got))
	}
	if tr.IsPressed(keyA.MakeCode) {
		t.Error("A still pressed")
	}
	if !tr.IsPressed(keyB.MakeCode) || !tr.IsPressed(keyC.MakeCode) {
		t.Error("B or C no longer pressed")
	}

	// Releasing the rest with an empty sequence is harmless.
	tr.Update(release(keyC))
	tr.Update(release(keyB))
	if tr.Held() != 0 {
		t.Errorf("Held() = %d", tr.Held())
	}
}

func TestTrackerReleaseMatchesByVirtualKey(t *testing.T) {
	leftShift := rawinput.KeyboardInput{MakeCode: 0x2A, VirtualKey: rawinput.VKShift}
	rightShift := rawinput.KeyboardInput{MakeCode: 0x36, VirtualKey: rawinput.VKShift}

	tr := NewTracker()
	tr.Update(press(leftShift))
	tr.Update(press(rightShift))
	tr.Update(release(leftShift))

	got := tr.Sequence()
	if len(got) != 1 || got[0].MakeCode != leftShift.MakeCode {
		t.Errorf("sequence = %+v, want only the left shift press", got)
	}
}

func TestTrackerReleaseUnpressed(t *testing.T) {
	if !assert.Enabled {
		t.Skip("contract checks do not panic in release builds")
	}
	defer func() {
		if recover() == nil {
			t.Error("release of an unpressed key was accepted")
		}
	}()
	NewTracker().Update(release(keyA))
}

func TestMatcherFiresOnExactSequence(t *testing.T) {
	var m Matcher
	c := m.Register(keyA.VirtualKey, keyB.VirtualKey)
	var fired [][]rawinput.KeyboardInput
	c.Subscribe(func(seq []rawinput.KeyboardInput) { fired = append(fired, seq) })

	tr := NewTracker()
	feed := func(in rawinput.KeyboardInput) {
		if tr.Update(in) {
			m.Match(tr.Sequence())
		}
	}

	feed(press(keyA))
	feed(press(keyB))
	feed(press(keyB))
	want := [][]rawinput.KeyboardInput{{press(keyA), press(keyB)}}
	if diff := cmp.Diff(want, fired); diff != "" {
		t.Fatalf("fired mismatch (-want +got):\n%s", diff)
	}

	feed(release(keyB))
	feed(release(keyA))
	feed(press(keyB))
	feed(press(keyA))
	if len(fired) != 1 {
		t.Errorf("B then A fired the A+B combination")
	}
}

func TestMatcherFirstRegistrationWins(t *testing.T) {
	var m Matcher
	var order []string
	m.Register(keyA.VirtualKey).Subscribe(func([]rawinput.KeyboardInput) { order = append(order, "short") })
	m.Register(keyA.VirtualKey, keyB.VirtualKey).Subscribe(func([]rawinput.KeyboardInput) { order = append(order, "first") })
	m.Register(keyA.VirtualKey, keyB.VirtualKey).Subscribe(func([]rawinput.KeyboardInput) { order = append(order, "second") })

	if !m.Match([]rawinput.KeyboardInput{press(keyA)}) {
		t.Fatal("[A] did not match")
	}
	if !m.Match([]rawinput.KeyboardInput{press(keyA), press(keyB)}) {
		t.Fatal("[A B] did not match")
	}
	if m.Match([]rawinput.KeyboardInput{press(keyB)}) {
		t.Error("[B] matched")
	}
	if diff := cmp.Diff([]string{"short", "first"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestMatcherPayloadIsCopy(t *testing.T) {
	var m Matcher
	var got []rawinput.KeyboardInput
	m.Register(keyA.VirtualKey).Subscribe(func(seq []rawinput.KeyboardInput) { got = seq })

	seq := []rawinput.KeyboardInput{press(keyA)}
	m.Match(seq)
	seq[0].MakeCode = 0
	if got[0].MakeCode != keyA.MakeCode {
		t.Error("handler payload aliases the caller's sequence")
	}
}

func TestMatcherClear(t *testing.T) {
	var m Matcher
	c := m.Register(keyA.VirtualKey)
	c.Subscribe(func([]rawinput.KeyboardInput) { t.Error("cleared combination fired") })
	if c.String() != "A" {
		t.Errorf("String() = %q", c.String())
	}
	m.Clear()
	if m.Len() != 0 {
		t.Errorf("Len() = %d", m.Len())
	}
	m.Match([]rawinput.KeyboardInput{press(keyA)})
}
