package mapview

import (
	"time"

	"github.com/bluele/gcache"
)

// Views keeps one View per session, created on first use and dropped after ttl
// without use.
type Views struct {
	cache gcache.Cache
}

func NewViews(size int, ttl time.Duration) *Views {
	return newViews(size, ttl, gcache.NewRealClock())
}

func newViews(size int, ttl time.Duration, clock gcache.Clock) *Views {
	return &Views{
		cache: gcache.New(size).
			LRU().
			Clock(clock).
			Expiration(ttl).
			LoaderFunc(func(key interface{}) (interface{}, error) {
				return NewView(), nil
			}).
			Build(),
	}
}

// Get returns the session's view, creating an empty one if needed.
func (v *Views) Get(session string) *View {
	value, err := v.cache.Get(session)
	if err != nil {
		// the loader never fails; fall back to a detached view
		return NewView()
	}
	// restarts the idle timer; Set only fails when a SerializeFunc is configured
	_ = v.cache.Set(session, value)
	return value.(*View)
}

// Len returns the number of cached views.
func (v *Views) Len() int {
	return v.cache.Len(false)
}

// Forget drops the session's view.
func (v *Views) Forget(session string) {
	v.cache.Remove(session)
}
