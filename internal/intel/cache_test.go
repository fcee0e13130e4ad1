package intel

import (
	"phishsniper/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCache_TTL(t *testing.T) {
	now := time.Now()
	c := newCache(10)
	c.put("a.com", cacheEntry{reg: domain.Registration{Domain: "a.com"}, ok: true, storedAt: now, expiresAt: now.Add(time.Minute)}, now)

	e, ok := c.get("a.com", now.Add(30*time.Second))
	require.True(t, ok)
	require.Equal(t, "a.com", e.reg.Domain)

	_, ok = c.get("a.com", now.Add(time.Minute))
	require.False(t, ok)
	require.Equal(t, 0, c.len())
}

func TestCache_EvictsExpiredThenOldest(t *testing.T) {
	now := time.Now()
	c := newCache(2)
	c.put("old.com", cacheEntry{storedAt: now, expiresAt: now.Add(time.Hour)}, now)
	c.put("expired.com", cacheEntry{storedAt: now.Add(time.Second), expiresAt: now.Add(2 * time.Second)}, now)

	// expired.com is dropped first
	later := now.Add(5 * time.Second)
	c.put("new.com", cacheEntry{storedAt: later, expiresAt: later.Add(time.Hour)}, later)
	require.Equal(t, 2, c.len())
	_, ok := c.get("old.com", later)
	require.True(t, ok)

	// then the oldest live entry
	c.put("newer.com", cacheEntry{storedAt: later.Add(time.Second), expiresAt: later.Add(time.Hour)}, later)
	require.Equal(t, 2, c.len())
	_, ok = c.get("old.com", later)
	require.False(t, ok)
	_, ok = c.get("new.com", later)
	require.True(t, ok)
}

func TestCache_Disabled(t *testing.T) {
	c := newCache(0)
	now := time.Now()
	c.put("a.com", cacheEntry{expiresAt: now.Add(time.Hour)}, now)
	require.Equal(t, 0, c.len())
}

func TestAbuseRegistrar(t *testing.T) {
	r := New(Deps{}, DefaultOptions())
	require.True(t, r.abuseRegistrar("NameCheap, Inc."))
	require.True(t, r.abuseRegistrar("Registrar of Domain Names REG.RU LLC"))
	require.False(t, r.abuseRegistrar("MarkMonitor Inc."))
}
