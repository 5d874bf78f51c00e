package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tripplanner-api/internal/preferences"
)

// SessionRegistry creates and looks up preference stores
type SessionRegistry interface {
	Create(ctx context.Context) (string, *preferences.Store, error)
	Get(ctx context.Context, id string) (*preferences.Store, error)
}

// SessionService manages sessions and their raw preferences.
type SessionService struct {
	sessions SessionRegistry
}

// NewSessionService creates a new session service
func NewSessionService(sessions SessionRegistry) *SessionService {
	return &SessionService{sessions: sessions}
}

// Create starts a session and returns its ID with the default settings.
func (s *SessionService) Create(ctx context.Context) (string, preferences.Settings, error) {
	id, store, err := s.sessions.Create(ctx)
	if err != nil {
		return "", preferences.Settings{}, fmt.Errorf("service: failed to create session: %w", err)
	}
	settings, err := store.Settings()
	if err != nil {
		return "", preferences.Settings{}, fmt.Errorf("service: failed to read preferences: %w", err)
	}
	return id, settings, nil
}

// Settings returns every preference of a session, defaults applied.
func (s *SessionService) Settings(ctx context.Context, session string) (preferences.Settings, error) {
	store, err := s.store(ctx, session)
	if err != nil {
		return preferences.Settings{}, err
	}
	settings, err := store.Settings()
	if err != nil {
		return preferences.Settings{}, fmt.Errorf("service: failed to read preferences: %w", err)
	}
	return settings, nil
}

// Preference returns one preference as JSON, or nil when it has neither a value nor
// a default.
func (s *SessionService) Preference(ctx context.Context, session, name string) (json.RawMessage, error) {
	pref, err := preferenceName(name)
	if err != nil {
		return nil, err
	}
	store, err := s.store(ctx, session)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := store.Get(pref, &raw); err != nil {
		if errors.Is(err, preferences.ErrNotSet) {
			return nil, nil
		}
		return nil, fmt.Errorf("service: failed to read %s: %w", pref, err)
	}
	return raw, nil
}

// SetPreference stores a JSON value after checking it has the preference's type. A
// JSON null clears the preference.
func (s *SessionService) SetPreference(ctx context.Context, session, name string, value json.RawMessage) error {
	pref, err := preferenceName(name)
	if err != nil {
		return err
	}

	decoded, err := preferences.Decode(pref, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	store, err := s.store(ctx, session)
	if err != nil {
		return err
	}
	if err := store.Set(pref, decoded); err != nil {
		return fmt.Errorf("service: failed to store %s: %w", pref, err)
	}
	return nil
}

// ClearPreference removes a stored value so the default applies again.
func (s *SessionService) ClearPreference(ctx context.Context, session, name string) error {
	pref, err := preferenceName(name)
	if err != nil {
		return err
	}
	store, err := s.store(ctx, session)
	if err != nil {
		return err
	}
	store.Clear(pref)
	return nil
}

func (s *SessionService) store(ctx context.Context, session string) (*preferences.Store, error) {
	store, err := s.sessions.Get(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load session: %w", err)
	}
	return store, nil
}

func preferenceName(name string) (preferences.Name, error) {
	pref := preferences.Name(name)
	if !pref.Valid() {
		return "", fmt.Errorf("%w: unknown preference %q", ErrInvalidInput, name)
	}
	return pref, nil
}
