package preferences

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bluele/gcache"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrSessionNotFound is returned for unknown or expired session IDs.
var ErrSessionNotFound = errors.New("preferences: session not found")

// Repository persists session preferences beyond the in-memory cache.
type Repository interface {
	CreateSession(ctx context.Context, id string) error
	LoadPreferences(ctx context.Context, id string) (map[string]string, bool, error)
	SavePreference(ctx context.Context, id, name, value string) error
	DeletePreference(ctx context.Context, id, name string) error
}

// Sessions hands out one Store per browsing session.
type Sessions struct {
	cache    gcache.Cache
	repo     Repository
	defaults Defaults
	logger   zerolog.Logger
	timeout  time.Duration

	mu      sync.RWMutex
	onEvict []func(id string)
}

// NewSessions creates a session registry holding at most size stores, each dropped
// after ttl without use. repo may be nil for purely in-memory sessions.
func NewSessions(size int, ttl time.Duration, defaults Defaults, repo Repository, logger zerolog.Logger) *Sessions {
	return newSessions(size, ttl, gcache.NewRealClock(), defaults, repo, logger)
}

func newSessions(size int, ttl time.Duration, clock gcache.Clock, defaults Defaults, repo Repository, logger zerolog.Logger) *Sessions {
	s := &Sessions{
		repo:     repo,
		defaults: defaults,
		logger:   logger,
		timeout:  5 * time.Second,
	}
	s.cache = gcache.New(size).
		LRU().
		Clock(clock).
		Expiration(ttl).
		EvictedFunc(s.evicted).
		Build()
	return s
}

// OnEvict registers fn to run when a session leaves the cache, either because it
// expired or because newer sessions pushed it out. fn runs while the cache is locked
// and must not call back into Sessions.
func (s *Sessions) OnEvict(fn func(id string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = append(s.onEvict, fn)
}

func (s *Sessions) evicted(key, _ interface{}) {
	id, ok := key.(string)
	if !ok {
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fn := range s.onEvict {
		fn(id)
	}
	s.logger.Debug().Str("session", id).Msg("session evicted")
}

// Create starts a new session and returns its ID and store.
func (s *Sessions) Create(ctx context.Context) (string, *Store, error) {
	id := uuid.NewString()

	if s.repo != nil {
		if err := s.repo.CreateSession(ctx, id); err != nil {
			return "", nil, fmt.Errorf("preferences: failed to create session: %w", err)
		}
	}

	store := s.newStore(id)
	if err := s.cache.Set(id, store); err != nil {
		return "", nil, fmt.Errorf("preferences: failed to cache session: %w", err)
	}
	return id, store, nil
}

// Get returns the store for id, reloading it from the repository after eviction.
func (s *Sessions) Get(ctx context.Context, id string) (*Store, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}

	if cached, err := s.cache.Get(id); err == nil {
		if store, ok := cached.(*Store); ok {
			// setting again restarts the idle timer
			if err := s.cache.Set(id, store); err != nil {
				return nil, fmt.Errorf("preferences: failed to cache session: %w", err)
			}
			return store, nil
		}
	}

	if s.repo == nil {
		return nil, ErrSessionNotFound
	}

	values, found, err := s.repo.LoadPreferences(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("preferences: failed to load session: %w", err)
	}
	if !found {
		return nil, ErrSessionNotFound
	}

	store := s.newStore(id)
	store.Load(values)
	if err := s.cache.Set(id, store); err != nil {
		return nil, fmt.Errorf("preferences: failed to cache session: %w", err)
	}
	s.logger.Debug().Str("session", id).Int("preferences", len(values)).Msg("session reloaded")
	return store, nil
}

// Len returns the number of cached sessions.
func (s *Sessions) Len() int {
	return s.cache.Len(false)
}

func (s *Sessions) newStore(id string) *Store {
	store := NewStore(s.defaults)
	if s.repo != nil {
		store.OnChange(s.persist(id))
	}
	return store
}

// persist writes every change through to the repository. Failures are logged; the
// in-memory value stays authoritative for the rest of the session.
func (s *Sessions) persist(id string) ChangeFunc {
	return func(name Name, raw string, deleted bool) {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		var err error
		if deleted {
			err = s.repo.DeletePreference(ctx, id, string(name))
		} else {
			err = s.repo.SavePreference(ctx, id, string(name), raw)
		}
		if err != nil {
			s.logger.Error().Err(err).Str("session", id).Str("preference", string(name)).Msg("failed to persist preference")
		}
	}
}
