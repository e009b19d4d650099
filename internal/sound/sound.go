// Package sound provides the named one-shot effects the game plays and the
// backends that output them.
package sound

import "sync"

// Name identifies a sound effect.
type Name string

const (
	Wing   Name = "wing"   // Flap
	Hit    Name = "hit"    // Collision
	Die    Name = "die"    // Death
	Point  Name = "point"  // Score
	Swoosh Name = "swoosh" // Menu transition
)

// Names lists every effect in a stable order.
var Names = []Name{Wing, Hit, Die, Point, Swoosh}

// Path returns the effect's file relative to the asset root.
func (n Name) Path() string {
	return "audio/" + string(n) + ".wav"
}

// Set plays named effects. Implementations must not block the game loop.
type Set interface {
	Play(name Name)
	StopAll()
}

// Nop is a silent Set.
type Nop struct{}

func (Nop) Play(Name) {}
func (Nop) StopAll()  {}

// Recorder is a Set that remembers what it was asked to do.
type Recorder struct {
	mu     sync.Mutex
	played []Name
	stops  int
}

// Play records name.
func (r *Recorder) Play(name Name) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = append(r.played, name)
}

// StopAll records a stop.
func (r *Recorder) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stops++
}

// Played returns a copy of the effects played so far, oldest first.
func (r *Recorder) Played() []Name {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Name(nil), r.played...)
}

// Count returns how many times name was played.
func (r *Recorder) Count(name Name) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.played {
		if p == name {
			n++
		}
	}
	return n
}

// Stops returns how many times StopAll was called.
func (r *Recorder) Stops() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stops
}

// Reset forgets everything recorded.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = nil
	r.stops = 0
}
