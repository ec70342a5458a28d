package state

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Strokes is the permanent, ordered element collection. Insertion order is
// z-order. Elements are deep-copied on the way in and on the way out.
type Strokes struct {
	mu    sync.RWMutex
	items []Committed
	index map[string]int

	// OnChange, if set, is called after every mutation without the lock held.
	OnChange func()
}

func NewStrokes() *Strokes {
	return &Strokes{index: make(map[string]int)}
}

// Append stores a deep copy of el and returns its ID.
func (s *Strokes) Append(el Element) string {
	if el == nil {
		return ""
	}
	entry := Committed{
		ID:        uuid.NewString(),
		Element:   el.Clone(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.index[entry.ID] = len(s.items)
	s.items = append(s.items, entry)
	s.mu.Unlock()

	log.Printf("[STROKES] Appended %s %s", entry.Element.Kind(), entry.ID)
	s.changed()
	return entry.ID
}

// Accrete adds a point to the committed soft stroke id. It reports whether
// the point was accepted; unknown IDs and non-shader elements are ignored.
func (s *Strokes) Accrete(id string, p Point) bool {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	ss, ok := s.items[i].Element.(*SoftStroke)
	accepted := ok && ss.AddPoint(p)
	s.mu.Unlock()

	if accepted {
		s.changed()
	}
	return accepted
}

// All returns a snapshot of the collection.
func (s *Strokes) All() []Committed {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Committed, len(s.items))
	for i, c := range s.items {
		c.Element = c.Element.Clone()
		out[i] = c
	}
	return out
}

// Elements returns a snapshot of just the elements, in z-order.
func (s *Strokes) Elements() []Element {
	all := s.All()
	els := make([]Element, len(all))
	for i, c := range all {
		els[i] = c.Element
	}
	return els
}

func (s *Strokes) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear empties the collection for a new drawing.
func (s *Strokes) Clear() {
	s.mu.Lock()
	s.items = nil
	s.index = make(map[string]int)
	s.mu.Unlock()

	log.Println("[STROKES] Cleared")
	s.changed()
}

func (s *Strokes) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
