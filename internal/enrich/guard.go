// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package enrich

import (
	"errors"
	"sync"
)

// ErrSuperseded is returned when a newer request for the same viewer began
// before this one finished.
var ErrSuperseded = errors.New("enrich: superseded by a newer request")

// Ticket identifies one enrichment request.
type Ticket struct {
	viewer     string
	generation uint64
}

// Viewer returns the viewer the ticket was issued for.
func (t Ticket) Viewer() string {
	return t.viewer
}

// Guard tracks the newest request per viewer. Generations come from one
// counter shared by all viewers, so a ticket can never match a later one
// even after its viewer's entry was released.
type Guard struct {
	mu      sync.Mutex
	next    uint64
	current map[string]uint64
}

// NewGuard creates an empty guard.
func NewGuard() *Guard {
	return &Guard{current: make(map[string]uint64)}
}

// Begin records a new request for viewer, superseding earlier ones.
func (g *Guard) Begin(viewer string) Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next++
	g.current[viewer] = g.next
	return Ticket{viewer: viewer, generation: g.next}
}

// Current reports whether no newer request for the ticket's viewer began.
func (g *Guard) Current(t Ticket) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	gen, ok := g.current[t.viewer]
	return ok && gen == t.generation
}

// Done releases the viewer's entry if t is still the newest request.
func (g *Guard) Done(t Ticket) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current[t.viewer] == t.generation {
		delete(g.current, t.viewer)
	}
}

// Len returns the number of viewers with a request in progress.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.current)
}
