// Package state provides thread-safe session state for the atlas: the
// scene index, the visibility filter, the selection, and the
// resolution event log.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-atlas/internal/astro"
	"github.com/litescript/ls-atlas/internal/catalog"
	"github.com/litescript/ls-atlas/internal/scene"
)

// EventType represents the type of resolution event.
type EventType string

const (
	EventDetailed EventType = "DETAILED"
	EventFallback EventType = "FALLBACK"
	EventSkipped  EventType = "SKIPPED"
)

// Event records the outcome of resolving one catalog entity.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	EntityID  string    `json:"entity_id"`
	Entity    string    `json:"entity"`
	Detail    string    `json:"detail,omitempty"`
}

// Config holds configuration for the session manager.
type Config struct {
	MaxEvents int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents: 50, // Last 50 resolution events
	}
}

// Manager handles all shared session state with thread-safe access.
// The TUI mutates it from the event loop as resolution messages
// arrive; headless modes drive it directly.
type Manager struct {
	mu sync.RWMutex

	entities []catalog.Entity
	index    *scene.Index
	filter   *scene.FilterState

	selectedID string

	// Resolution tallies
	detailed  int
	fallbacks int
	skipped   int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int
}

// NewManager creates a session manager for a catalog. Every type and
// every sector present in the catalog starts visible.
func NewManager(entities []catalog.Entity, cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		entities:  entities,
		index:     scene.NewIndex(),
		filter:    scene.NewFilterState(entities),
		events:    make([]Event, 0, maxEvents),
		maxEvents: maxEvents,
	}
}

// Entities returns the catalog entities. The slice is shared and must
// not be mutated.
func (m *Manager) Entities() []catalog.Entity {
	return m.entities
}

// Record logs a resolution outcome and, when it carries a handle,
// attaches it to the scene under the filter state and scale the
// operator has already chosen. A second outcome for the same entity
// returns an error from the index.
func (m *Manager) Record(o scene.Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if o.Skipped {
		m.skipped++
		m.addEvent(Event{
			Type:      EventSkipped,
			Timestamp: now,
			EntityID:  o.Entity.ID,
			Entity:    o.Entity.Name,
			Detail:    "unknown type " + o.Entity.Type.String(),
		})
		return nil
	}

	// Attach before tallying so a rejected duplicate leaves the counts
	// and the event log untouched.
	if err := m.index.Attach(o.Handle); err != nil {
		return err
	}
	o.Handle.Visible = m.filter.Visible(o.Entity)
	o.Handle.Pos = o.Entity.Pos.Scale(m.filter.ScaleFactor)

	if o.Fallback {
		m.fallbacks++
		detail := ""
		if o.LoadErr != nil {
			detail = o.LoadErr.Error()
		}
		m.addEvent(Event{
			Type:      EventFallback,
			Timestamp: now,
			EntityID:  o.Entity.ID,
			Entity:    o.Entity.Name,
			Detail:    detail,
		})
		return nil
	}

	m.detailed++
	m.addEvent(Event{
		Type:      EventDetailed,
		Timestamp: now,
		EntityID:  o.Entity.ID,
		Entity:    o.Entity.Name,
	})
	return nil
}

// addEvent adds an event to the ring buffer. Caller holds the lock.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// ToggleType flips visibility for a type facet and reapplies the
// filter to every handle in the scene.
func (m *Manager) ToggleType(t catalog.Type) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filter.ToggleType(t)
	m.filter.Apply(m.index)
}

// ToggleSector flips visibility for a sector facet and reapplies the
// filter.
func (m *Manager) ToggleSector(s int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filter.ToggleSector(s)
	m.filter.Apply(m.index)
}

// SetScale sets the placement scale factor and repositions every
// handle from its original catalog coordinates.
func (m *Manager) SetScale(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filter.SetScale(v)
	m.filter.Rescale(m.index)
}

// ScaleFactor returns the current placement scale factor.
func (m *Manager) ScaleFactor() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filter.ScaleFactor
}

// Select records the selected entity by ID.
func (m *Manager) Select(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedID = id
}

// ClearSelection drops the current selection.
func (m *Manager) ClearSelection() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedID = ""
}

// Pick resolves a pointer position against the visible scene and
// returns the hit handle, or nil. Selection state is not touched;
// callers decide what to do with the hit.
func (m *Manager) Pick(px, py int, vp scene.Viewport, view astro.View) *scene.VisualHandle {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return scene.Pick(px, py, vp, view, m.index)
}

// Snapshot represents an immutable snapshot of session state.
type Snapshot struct {
	Handles       []*scene.VisualHandle
	SelectedID    string
	Selected      *scene.VisualHandle
	TypeEnabled   map[catalog.Type]bool
	SectorEnabled map[int]bool
	ScaleFactor   float64
	Detailed      int
	Fallbacks     int
	Skipped       int
	Total         int
	Events        []Event
}

// Done reports whether every catalog entity has a recorded outcome.
func (s Snapshot) Done() bool {
	return s.Detailed+s.Fallbacks+s.Skipped >= s.Total
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	handles := make([]*scene.VisualHandle, len(m.index.Handles()))
	copy(handles, m.index.Handles())

	types := make(map[catalog.Type]bool, len(m.filter.Types))
	for k, v := range m.filter.Types {
		types[k] = v
	}
	sectors := make(map[int]bool, len(m.filter.Sectors))
	for k, v := range m.filter.Sectors {
		sectors[k] = v
	}

	return Snapshot{
		Handles:       handles,
		SelectedID:    m.selectedID,
		Selected:      m.index.ByID(m.selectedID),
		TypeEnabled:   types,
		SectorEnabled: sectors,
		ScaleFactor:   m.filter.ScaleFactor,
		Detailed:      m.detailed,
		Fallbacks:     m.fallbacks,
		Skipped:       m.skipped,
		Total:         len(m.entities),
		Events:        m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}
