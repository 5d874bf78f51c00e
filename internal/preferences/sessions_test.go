package preferences

import (
	"context"
	"testing"
	"time"

	"github.com/bluele/gcache"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateSession(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) LoadPreferences(ctx context.Context, id string) (map[string]string, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(map[string]string), args.Bool(1), args.Error(2)
}

func (m *MockRepository) SavePreference(ctx context.Context, id, name, value string) error {
	args := m.Called(ctx, id, name, value)
	return args.Error(0)
}

func (m *MockRepository) DeletePreference(ctx context.Context, id, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func TestSessions_InMemory(t *testing.T) {
	sessions := NewSessions(10, time.Hour, DefaultValues(CityHall), nil, zerolog.Nop())
	ctx := context.Background()

	id, store, err := sessions.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Set(Mode, "WALK"))

	got, err := sessions.Get(ctx, id)
	require.NoError(t, err)
	assert.Same(t, store, got)
	assert.Equal(t, 1, sessions.Len())

	_, err = sessions.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = sessions.Get(ctx, "2b7f0b3c-5a53-4c1e-9a43-3f1d8f2c0a11")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessions_WriteThrough(t *testing.T) {
	repo := new(MockRepository)
	sessions := NewSessions(10, time.Hour, DefaultValues(CityHall), repo, zerolog.Nop())
	ctx := context.Background()

	repo.On("CreateSession", ctx, mock.AnythingOfType("string")).Return(nil)
	id, store, err := sessions.Create(ctx)
	require.NoError(t, err)

	repo.On("SavePreference", mock.Anything, id, "mode", `"BICYCLE"`).Return(nil)
	repo.On("DeletePreference", mock.Anything, id, "mode").Return(nil)

	require.NoError(t, store.Set(Mode, "BICYCLE"))
	store.Clear(Mode)

	repo.AssertExpectations(t)
}

func TestSessions_ReloadFromRepository(t *testing.T) {
	repo := new(MockRepository)
	sessions := NewSessions(10, time.Hour, DefaultValues(CityHall), repo, zerolog.Nop())
	ctx := context.Background()

	id := "2b7f0b3c-5a53-4c1e-9a43-3f1d8f2c0a11"
	missing := "6f9619ff-8b86-4d01-b42d-00cf4fc964ff"
	repo.On("LoadPreferences", ctx, id).Return(map[string]string{"mode": `"WALK"`}, true, nil)
	repo.On("LoadPreferences", ctx, missing).Return(map[string]string(nil), false, nil)

	store, err := sessions.Get(ctx, id)
	require.NoError(t, err)

	var mode string
	require.NoError(t, store.Get(Mode, &mode))
	assert.Equal(t, "WALK", mode)

	// second lookup is served from the cache
	again, err := sessions.Get(ctx, id)
	require.NoError(t, err)
	assert.Same(t, store, again)
	repo.AssertNumberOfCalls(t, "LoadPreferences", 1)

	_, err = sessions.Get(ctx, missing)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessions_CreateFails(t *testing.T) {
	repo := new(MockRepository)
	sessions := NewSessions(10, time.Hour, DefaultValues(CityHall), repo, zerolog.Nop())
	ctx := context.Background()

	repo.On("CreateSession", ctx, mock.AnythingOfType("string")).Return(assert.AnError)

	_, _, err := sessions.Create(ctx)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSessions_IdleExpiration(t *testing.T) {
	clock := gcache.NewFakeClock()
	sessions := newSessions(10, time.Hour, clock, DefaultValues(CityHall), nil, zerolog.Nop())
	ctx := context.Background()

	var evicted []string
	sessions.OnEvict(func(id string) { evicted = append(evicted, id) })

	id, store, err := sessions.Create(ctx)
	require.NoError(t, err)

	// each access restarts the timer
	for i := 0; i < 3; i++ {
		clock.Advance(45 * time.Minute)
		got, err := sessions.Get(ctx, id)
		require.NoError(t, err)
		assert.Same(t, store, got)
	}
	assert.Empty(t, evicted)

	clock.Advance(61 * time.Minute)
	_, err = sessions.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, []string{id}, evicted)
}

func TestSessions_OnEvictWhenFull(t *testing.T) {
	sessions := NewSessions(2, time.Hour, DefaultValues(CityHall), nil, zerolog.Nop())
	ctx := context.Background()

	var evicted []string
	sessions.OnEvict(func(id string) { evicted = append(evicted, id) })

	first, _, err := sessions.Create(ctx)
	require.NoError(t, err)
	_, _, err = sessions.Create(ctx)
	require.NoError(t, err)
	assert.Empty(t, evicted)

	_, _, err = sessions.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{first}, evicted)
	assert.Equal(t, 2, sessions.Len())
}
