package app

import (
	"sync"
	"testing"
	"time"

	"roadmap/domain/quarter"
	"roadmap/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionSelect(t *testing.T) {
	sel, err := NewSelection(quarter.Q1)
	require.NoError(t, err)
	assert.Equal(t, quarter.Q1, sel.Active())

	var seen []Change
	sel.OnSelect(func(c Change) { seen = append(seen, c) })

	change, err := sel.Select(quarter.Q3)
	require.NoError(t, err)
	assert.Equal(t, Change{From: quarter.Q1, To: quarter.Q3}, change)
	assert.True(t, change.Changed())
	assert.Equal(t, quarter.Q3, sel.Active())

	again, err := sel.Select(quarter.Q3)
	require.NoError(t, err)
	assert.False(t, again.Changed(), "re-selecting is a no-op")
	assert.Equal(t, quarter.Q3, sel.Active())

	assert.Equal(t, []Change{{From: 1, To: 3}, {From: 3, To: 3}}, seen, "listeners hear no-op selects too")
}

func TestSelectionRejectsInvalidQuarter(t *testing.T) {
	_, err := NewSelection(quarter.ID(0))
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	sel, err := NewSelection(quarter.Q2)
	require.NoError(t, err)

	notified := false
	sel.OnSelect(func(Change) { notified = true })
	_, err = sel.Select(quarter.ID(5))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	assert.Equal(t, quarter.Q2, sel.Active())
	assert.False(t, notified)
}

func TestSelectionConcurrentSelects(t *testing.T) {
	sel, err := NewSelection(quarter.Q1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(q quarter.ID) {
			defer wg.Done()
			_, _ = sel.Select(q)
		}(quarter.All[i%4])
	}
	wg.Wait()
	assert.True(t, sel.Active().Valid())
}

func TestSessionStoreResolve(t *testing.T) {
	store, err := NewSessionStore(quarter.Q2, DefaultSessionLimits)
	require.NoError(t, err)

	id, sel := store.Resolve("")
	_, err = uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, quarter.Q2, sel.Active())
	assert.Equal(t, 1, store.Len())

	_, err = sel.Select(quarter.Q4)
	require.NoError(t, err)

	sameID, same := store.Resolve(id)
	assert.Equal(t, id, sameID)
	assert.Same(t, sel, same)
	assert.Equal(t, quarter.Q4, same.Active())

	otherID, other := store.Resolve("not-a-uuid")
	assert.NotEqual(t, id, otherID)
	assert.Equal(t, quarter.Q2, other.Active(), "sessions are independent")

	unknownID, _ := store.Resolve(uuid.NewString())
	assert.NotEqual(t, id, unknownID)
	assert.Equal(t, 3, store.Len())

	store.Forget(id)
	assert.Equal(t, 2, store.Len())
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time           { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestSessionStoreExpiresIdleSessions(t *testing.T) {
	store, err := NewSessionStore(quarter.Q1, SessionLimits{TTL: time.Hour, Max: 100})
	require.NoError(t, err)
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store.now = clock.Now

	idle, _ := store.Resolve("")
	busy, busySel := store.Resolve("")

	clock.Advance(40 * time.Minute)
	again, sel := store.Resolve(busy)
	assert.Equal(t, busy, again)
	assert.Same(t, busySel, sel, "a request refreshes the session")

	clock.Advance(30 * time.Minute)
	fresh, _ := store.Resolve(idle)
	assert.NotEqual(t, idle, fresh, "an idle session expires")

	assert.Equal(t, 0, store.Prune(), "the expired one was dropped on lookup")
	assert.Equal(t, 2, store.Len())

	clock.Advance(2 * time.Hour)
	assert.Equal(t, 2, store.Prune())
	assert.Equal(t, 0, store.Len())
}

func TestSessionStoreStaysBounded(t *testing.T) {
	store, err := NewSessionStore(quarter.Q1, SessionLimits{TTL: time.Hour, Max: 50})
	require.NoError(t, err)
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store.now = clock.Now

	first, _ := store.Resolve("")
	clock.Advance(time.Second)
	kept, _ := store.Resolve("")
	for i := 0; i < 10000; i++ {
		clock.Advance(time.Millisecond)
		if i%10 == 0 {
			_, _ = store.Resolve(kept)
		}
		store.Resolve("")
	}
	assert.Equal(t, 50, store.Len())

	again, _ := store.Resolve(first)
	assert.NotEqual(t, first, again, "least recently seen session was evicted")
	same, _ := store.Resolve(kept)
	assert.Equal(t, kept, same, "recently used session survives the cap")
}

func TestSessionStoreDefaults(t *testing.T) {
	store, err := NewSessionStore(quarter.Q1, SessionLimits{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSessionLimits.TTL, store.TTL())
	assert.Equal(t, DefaultSessionLimits.Max, store.limits.Max)
}
