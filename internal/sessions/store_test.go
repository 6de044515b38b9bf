package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	store := NewMemoryStore(24 * time.Hour)

	session, err := store.Create(1, "margot")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "margot", session.Username)

	got, ok := store.Get(session.Token)
	require.True(t, ok)
	assert.Equal(t, session, got)
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	store := NewMemoryStore(24 * time.Hour)

	first, err := store.Create(1, "margot")
	require.NoError(t, err)
	second, err := store.Create(1, "margot")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)

	_, ok := store.Get(first.Token)
	assert.True(t, ok, "creating a second session must not evict the first")
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(24 * time.Hour)

	_, ok := store.Get("no-such-token")
	assert.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(24 * time.Hour)
	session, err := store.Create(1, "margot")
	require.NoError(t, err)

	store.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	_, ok := store.Get(session.Token)
	assert.False(t, ok, "session must expire after its ttl")

	// expired entry is dropped, not just hidden
	store.mu.RLock()
	_, stillThere := store.sessions[session.Token]
	store.mu.RUnlock()
	assert.False(t, stillThere)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(24 * time.Hour)
	session, err := store.Create(1, "margot")
	require.NoError(t, err)

	require.NoError(t, store.Delete(session.Token))
	_, ok := store.Get(session.Token)
	assert.False(t, ok)

	// deleting twice stays silent
	assert.NoError(t, store.Delete(session.Token))
}
