// Package changes broadcasts payload-free "progress changed" signals from the
// single owner of the progress state to any number of readers.
package changes

import "sync"

// Notifier fans a change signal out to subscribers. Listeners run
// synchronously on the notifying goroutine, in subscription order, and
// should re-read whatever state they care about.
type Notifier struct {
	mu     sync.RWMutex
	nextID int
	order  []int
	subs   map[int]func()
}

// New creates an empty Notifier.
func New() *Notifier {
	return &Notifier{subs: make(map[int]func())}
}

// Subscribe registers fn and returns a function that removes it. The
// returned function may be called more than once.
func (n *Notifier) Subscribe(fn func()) (unsubscribe func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	n.order = append(n.order, id)
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs, id)
			for i, v := range n.order {
				if v == id {
					n.order = append(n.order[:i], n.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Notify calls every current subscriber. A nil Notifier is a no-op.
func (n *Notifier) Notify() {
	if n == nil {
		return
	}
	n.mu.RLock()
	fns := make([]func(), 0, len(n.order))
	for _, id := range n.order {
		fns = append(fns, n.subs[id])
	}
	n.mu.RUnlock()

	// Listeners may subscribe or unsubscribe re-entrantly.
	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of active subscribers.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}
