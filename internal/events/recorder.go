package events

import "sync"

// Recorder is a Publisher that keeps every event it receives.
// It is meant for tests that need to assert what a store announced.
type Recorder struct {
	mu     sync.Mutex
	Events []Event
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{Events: []Event{}}
}

// Publish records the event
func (r *Recorder) Publish(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, event)
}

// ByType returns all recorded events of a specific type
func (r *Recorder) ByType(t EventType) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the total number of recorded events
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Events)
}

// Reset clears all recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = []Event{}
}
