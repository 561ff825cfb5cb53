// Package results publishes the planner's per-cycle output for other
// planning components: the ranked colonizable-planet list, the ranked
// outpost list, and the reachable-system ring partition. Each cycle
// overwrites the previous one wholesale.
package results

import (
	"context"
	"sync"
)

// Entry is one ranked (planet, score) pair. Species is empty for outposts.
type Entry struct {
	PlanetID int     `json:"planetId"`
	Score    float64 `json:"score"`
	Species  string  `json:"species,omitempty"`
}

// RingPartition is the reachable-system set split into the base supply set
// and the BFS rings beyond it, all as sorted system ids.
type RingPartition struct {
	Base  []int   `json:"base"`
	Rings [][]int `json:"rings"`
}

// Cycle is everything published at the end of one planning cycle.
type Cycle struct {
	Turn     int           `json:"turn"`
	Colony   []Entry       `json:"colony"`
	Outposts []Entry       `json:"outposts"`
	Reach    RingPartition `json:"reach"`
}

// Publisher receives one Cycle per turn.
type Publisher interface {
	Publish(ctx context.Context, c Cycle) error
}

// Store is an in-memory Publisher for in-process consumers. The latest
// cycle replaces the previous one; reads never observe a partial write.
type Store struct {
	mu   sync.RWMutex
	last Cycle
	seen bool
}

// NewStore returns an empty in-memory store.
func NewStore() *Store { return &Store{} }

// Publish replaces the stored cycle.
func (s *Store) Publish(_ context.Context, c Cycle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = c
	s.seen = true
	return nil
}

// Latest returns the most recently published cycle, and whether one exists.
func (s *Store) Latest() (Cycle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.seen
}

// Fanout publishes to multiple publishers, returning the first error after
// attempting all of them.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, c Cycle) error {
	var firstErr error
	for _, p := range f {
		if err := p.Publish(ctx, c); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
