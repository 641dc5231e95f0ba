package cache

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCacheSetGet(t *testing.T) {
	c := New(testLogger(), 8, time.Minute)

	c.Set("menu-list", []byte(`[]`))

	value, ok := c.Get("menu-list")
	require.True(t, ok)
	require.Equal(t, []byte(`[]`), value)

	_, ok = c.Get("unknown")
	require.False(t, ok)
}

func TestCacheDeleteMany(t *testing.T) {
	c := New(testLogger(), 8, time.Minute)

	menuUUID := uuid.New()
	submenuUUID := uuid.New()

	c.Set(MenuListKey, []byte(`[]`))
	c.Set(MenuKey(menuUUID), []byte(`{}`))
	c.Set(SubmenuListKey(menuUUID), []byte(`[]`))
	c.Set(SubmenuKey(submenuUUID), []byte(`{}`))

	c.Delete(KeysOnSubmenuWrite(menuUUID, submenuUUID)...)

	for _, key := range []string{
		MenuListKey,
		MenuKey(menuUUID),
		SubmenuListKey(menuUUID),
		SubmenuKey(submenuUUID),
	} {
		_, ok := c.Get(key)
		require.False(t, ok, "key %q should have been invalidated", key)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New(testLogger(), 8, 50*time.Millisecond)

	c.Set("menu-list", []byte(`[]`))

	time.Sleep(120 * time.Millisecond)

	_, ok := c.Get("menu-list")
	require.False(t, ok)
}

func TestKeysOnDishWrite(t *testing.T) {
	menuUUID := uuid.New()
	submenuUUID := uuid.New()
	dishUUID := uuid.New()

	keys := KeysOnDishWrite(menuUUID, submenuUUID, dishUUID)

	require.ElementsMatch(t, []string{
		DishKey(dishUUID),
		DishListKey(menuUUID, submenuUUID),
		SubmenuKey(submenuUUID),
		SubmenuListKey(menuUUID),
		MenuKey(menuUUID),
		MenuListKey,
	}, keys)
}
