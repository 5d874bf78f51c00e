package preferences

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"tripplanner-api/internal/models"
)

// ErrNotSet is returned when a preference has neither a stored value nor a default.
var ErrNotSet = errors.New("preferences: not set")

// ChangeFunc observes writes to a store. deleted is true when the value was cleared.
type ChangeFunc func(name Name, raw string, deleted bool)

// Store keeps the preferences of one session as JSON text, keyed by name.
type Store struct {
	mu       sync.RWMutex
	values   map[Name]string
	defaults Defaults
	onChange ChangeFunc
}

// NewStore creates an empty store falling back to defaults.
func NewStore(defaults Defaults) *Store {
	return &Store{
		values:   make(map[Name]string),
		defaults: defaults,
	}
}

// Load replaces the stored values with raw JSON text, without notifying observers.
func (s *Store) Load(raw map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[Name]string, len(raw))
	for k, v := range raw {
		s.values[Name(k)] = v
	}
}

// OnChange registers fn to be called after every Set or Clear.
func (s *Store) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Set stores val as JSON. A nil val clears the preference.
func (s *Store) Set(name Name, val any) error {
	if val == nil {
		s.Clear(name)
		return nil
	}

	raw, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("preferences: failed to encode %s: %w", name, err)
	}

	s.mu.Lock()
	prev, had := s.values[name]
	s.values[name] = string(raw)
	fn := s.onChange
	s.mu.Unlock()

	// observers only hear about actual changes
	if fn != nil && !(had && prev == string(raw)) {
		fn(name, string(raw), false)
	}
	return nil
}

// Clear removes the stored value so the next Get falls back to the default.
func (s *Store) Clear(name Name) {
	s.mu.Lock()
	_, had := s.values[name]
	delete(s.values, name)
	fn := s.onChange
	s.mu.Unlock()

	if had && fn != nil {
		fn(name, "", true)
	}
}

// Get decodes the preference into dst, substituting (and storing) the default when
// the stored value is missing or empty.
func (s *Store) Get(name Name, dst any) error {
	return s.Lookup(name, true, dst)
}

// Lookup decodes the preference into dst. When setDefault is false a missing value is
// reported as ErrNotSet instead of being replaced by the default; a stored empty
// string is always replaced.
func (s *Store) Lookup(name Name, setDefault bool, dst any) error {
	s.mu.RLock()
	raw, ok := s.values[name]
	s.mu.RUnlock()

	empty, emptyString := true, false
	if ok && raw != "" {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return fmt.Errorf("preferences: failed to decode %s: %w", name, err)
		}
		empty = isEmpty(v)
		emptyString = v == ""
	}

	if (setDefault && empty) || emptyString {
		def, hasDefault := s.defaults[name]
		if !hasDefault || def == nil {
			return ErrNotSet
		}
		if err := s.Set(name, def); err != nil {
			return err
		}
		s.mu.RLock()
		raw = s.values[name]
		s.mu.RUnlock()
	} else if !ok || raw == "" {
		return ErrNotSet
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("preferences: failed to decode %s: %w", name, err)
	}
	return nil
}

// Raw returns the stored JSON text for name, if any.
func (s *Store) Raw(name Name) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.values[name]
	return raw, ok
}

// Values returns a copy of every stored value.
func (s *Store) Values() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[string(k)] = v
	}
	return out
}

// SetLocation stores loc under key and its display text under key+"Text". An empty
// text falls back to the location name.
func (s *Store) SetLocation(key Name, loc models.Location, text string) error {
	if err := s.Set(key, loc); err != nil {
		return err
	}
	if text == "" {
		text = loc.Name
	}
	return s.Set(key.TextName(), text)
}

// ClearLocation clears key and key+"Text".
func (s *Store) ClearLocation(key Name) {
	s.Clear(key)
	s.Clear(key.TextName())
}

// isEmpty mirrors the falsy values a client treats as "nothing chosen".
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	}
	return false
}
