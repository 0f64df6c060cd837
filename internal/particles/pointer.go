package particles

import "sync"

// Pointer is the last-known pointer position in surface coordinates.
type Pointer struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Active bool    `json:"active"`
}

// Tracker records pointer input. Input arrives on one goroutine (an HTTP
// handler, a terminal event loop) while the frame loop reads on another.
type Tracker struct {
	mu  sync.Mutex
	ptr Pointer
}

func (t *Tracker) Move(x, y float64) {
	t.mu.Lock()
	t.ptr = Pointer{X: x, Y: y, Active: true}
	t.mu.Unlock()
}

// Leave keeps the last coordinates but marks the pointer inactive.
func (t *Tracker) Leave() {
	t.mu.Lock()
	t.ptr.Active = false
	t.mu.Unlock()
}

// Set applies a full update, as sent by a client.
func (t *Tracker) Set(p Pointer) {
	t.mu.Lock()
	t.ptr = p
	t.mu.Unlock()
}

// Pointer returns a snapshot. A nil Tracker reports an idle pointer.
func (t *Tracker) Pointer() Pointer {
	if t == nil {
		return Pointer{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ptr
}
