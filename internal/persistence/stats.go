package persistence

import "sync/atomic"

// Stats tracks persistence activity using atomic operations for thread-safety
type Stats struct {
	Saves         atomic.Int64
	SaveFailures  atomic.Int64
	Loads         atomic.Int64
	LoadFallbacks atomic.Int64
	LoadRepairs   atomic.Int64
}

// NewStats creates a zeroed Stats
func NewStats() *Stats {
	return &Stats{}
}

// IncSaves increments the successful saves counter
func (s *Stats) IncSaves() {
	s.Saves.Add(1)
}

// IncSaveFailures increments the failed saves counter
func (s *Stats) IncSaveFailures() {
	s.SaveFailures.Add(1)
}

// IncLoads increments the board loads counter
func (s *Stats) IncLoads() {
	s.Loads.Add(1)
}

// IncLoadFallbacks increments the counter of loads that fell back to a default board
func (s *Stats) IncLoadFallbacks() {
	s.LoadFallbacks.Add(1)
}

// IncLoadRepairs increments the counter of loads that had to repair the stored board
func (s *Stats) IncLoadRepairs() {
	s.LoadRepairs.Add(1)
}

// Snapshot is a plain copy of the counters, suitable for printing
type Snapshot struct {
	Saves         int64 `json:"saves"`
	SaveFailures  int64 `json:"save_failures"`
	Loads         int64 `json:"loads"`
	LoadFallbacks int64 `json:"load_fallbacks"`
	LoadRepairs   int64 `json:"load_repairs"`
}

// Snapshot returns the current counter values
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Saves:         s.Saves.Load(),
		SaveFailures:  s.SaveFailures.Load(),
		Loads:         s.Loads.Load(),
		LoadFallbacks: s.LoadFallbacks.Load(),
		LoadRepairs:   s.LoadRepairs.Load(),
	}
}
