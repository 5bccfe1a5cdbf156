package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/borgmon/ycalendar/pkg/models"
)

// ErrIndexOutOfRange is returned when deleting an event index that does not exist
var ErrIndexOutOfRange = errors.New("event index out of range")

// EventStore maps each day to its ordered list of event descriptions. A day
// with no events has no key. The whole map is saved as one JSON object.
type EventStore struct {
	backend Backend
	events  map[models.DateKey][]string
}

// NewEventStore creates an empty store backed by backend
func NewEventStore(backend Backend) *EventStore {
	return &EventStore{
		backend: backend,
		events:  make(map[models.DateKey][]string),
	}
}

// Load replaces the in-memory events with the saved ones. Missing or
// malformed data leaves the store empty; it is never fatal.
func (s *EventStore) Load() {
	s.events = make(map[models.DateKey][]string)

	data, err := s.backend.Read()
	if err != nil {
		log.Printf("Error loading events: %v", err)
		return
	}
	if data == "" {
		return
	}

	events, err := Unmarshal([]byte(data))
	if err != nil {
		log.Printf("Error loading events: %v", err)
		return
	}
	s.events = events
}

// Save writes the whole store to the backend
func (s *EventStore) Save() error {
	data, err := json.Marshal(s.events)
	if err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}
	if err := s.backend.Write(string(data)); err != nil {
		return fmt.Errorf("failed to save events: %w", err)
	}
	return nil
}

// Backend returns the storage the store saves to
func (s *EventStore) Backend() Backend {
	return s.backend
}

// Events returns a copy of the events for key, nil if there are none
func (s *EventStore) Events(key models.DateKey) []string {
	list := s.events[key]
	if len(list) == 0 {
		return nil
	}
	return append([]string(nil), list...)
}

// Count returns the number of events on key
func (s *EventStore) Count(key models.DateKey) int {
	return len(s.events[key])
}

// Add appends text to the list for key
func (s *EventStore) Add(key models.DateKey, text string) {
	s.events[key] = append(s.events[key], text)
}

// Delete removes the event at index from key, dropping the key once its
// list is empty
func (s *EventStore) Delete(key models.DateKey, index int) error {
	list := s.events[key]
	if index < 0 || index >= len(list) {
		return fmt.Errorf("%w: %s has %d events, got index %d", ErrIndexOutOfRange, key, len(list), index)
	}

	list = append(list[:index:index], list[index+1:]...)
	if len(list) == 0 {
		delete(s.events, key)
	} else {
		s.events[key] = list
	}
	return nil
}

// Keys returns every day with events, in date order
func (s *EventStore) Keys() []models.DateKey {
	keys := make([]models.DateKey, 0, len(s.events))
	for key := range s.events {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Len returns the number of days with events
func (s *EventStore) Len() int {
	return len(s.events)
}

// Snapshot returns a deep copy of the store contents
func (s *EventStore) Snapshot() map[models.DateKey][]string {
	out := make(map[models.DateKey][]string, len(s.events))
	for key, list := range s.events {
		out[key] = append([]string(nil), list...)
	}
	return out
}

// Merge appends events from other. Each incoming text is matched against at
// most one copy the day already had, so merging the same input twice adds
// nothing while repeated texts within other are all kept.
// It returns how many events were added.
func (s *EventStore) Merge(other map[models.DateKey][]string) int {
	added := 0
	for key, list := range other {
		existing := make(map[string]int, len(s.events[key]))
		for _, text := range s.events[key] {
			existing[text]++
		}

		for _, text := range list {
			if text == "" {
				continue
			}
			if existing[text] > 0 {
				existing[text]--
				continue
			}
			s.events[key] = append(s.events[key], text)
			added++
		}
	}
	return added
}

// Unmarshal decodes a saved blob, dropping any empty lists it contains
func Unmarshal(data []byte) (map[models.DateKey][]string, error) {
	var events map[models.DateKey][]string
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	if events == nil {
		events = make(map[models.DateKey][]string)
	}
	for key, list := range events {
		if len(list) == 0 {
			delete(events, key)
		}
	}
	return events, nil
}
