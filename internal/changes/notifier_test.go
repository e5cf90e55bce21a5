package changes

import "testing"

func TestNotifyCallsSubscribersInOrder(t *testing.T) {
	n := New()
	var got []string
	n.Subscribe(func() { got = append(got, "a") })
	n.Subscribe(func() { got = append(got, "b") })

	n.Notify()
	n.Notify()

	want := []string{"a", "b", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	n := New()
	calls := 0
	unsub := n.Subscribe(func() { calls++ })
	other := n.Subscribe(func() {})

	unsub()
	unsub()
	n.Notify()

	if calls != 0 {
		t.Errorf("calls after unsubscribe = %d, want 0", calls)
	}
	if n.Len() != 1 {
		t.Errorf("Len = %d, want 1", n.Len())
	}
	other()
	if n.Len() != 0 {
		t.Errorf("Len = %d, want 0", n.Len())
	}
}

func TestReentrantUnsubscribe(t *testing.T) {
	n := New()
	calls := 0
	var unsub func()
	unsub = n.Subscribe(func() {
		calls++
		unsub()
	})

	n.Notify()
	n.Notify()

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestNilNotifier(t *testing.T) {
	var n *Notifier
	n.Notify()
}
