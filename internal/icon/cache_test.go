package icon

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCache_FIFOEviction(t *testing.T) {
	c := NewCache[int](3)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	require.Equal(t, 3, c.Len())

	c.Put("d", 4)
	require.Equal(t, 3, c.Len())

	if _, ok := c.Get("a"); ok {
		t.Fatal("expected earliest-inserted entry to be evicted")
	}
	for _, key := range []string{"b", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Fatalf("expected %q to survive eviction", key)
		}
	}
}

func TestCache_UpdateDoesNotRefreshPosition(t *testing.T) {
	c := NewCache[int](2)

	c.Put("a", 1)
	c.Put("b", 2)

	// Re-inserting "a" must not move it to the back of the queue.
	c.Put("a", 10)
	require.Equal(t, 2, c.Len())

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 10, v)

	c.Put("c", 3)
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected re-inserted key to keep its original FIFO position")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatal("expected second-inserted key to survive")
	}
}

func TestCache_NeverExceedsCapacity(t *testing.T) {
	c := NewCache[int](10)

	for i := 0; i < 200; i++ {
		c.Put(fmt.Sprintf("key-%d", i), i)
		if c.Len() > c.Capacity() {
			t.Fatalf("cache grew to %d entries, capacity %d", c.Len(), c.Capacity())
		}
	}
	require.Equal(t, 10, c.Len())

	// The survivors are exactly the ten most recent inserts.
	for i := 190; i < 200; i++ {
		if _, ok := c.Get(fmt.Sprintf("key-%d", i)); !ok {
			t.Fatalf("expected key-%d to be cached", i)
		}
	}
}

func TestCache_DefaultCapacity(t *testing.T) {
	c := NewCache[string](0)
	require.Equal(t, DefaultCacheCapacity, c.Capacity())

	c = NewCache[string](-5)
	require.Equal(t, DefaultCacheCapacity, c.Capacity())
}

func TestCache_Purge(t *testing.T) {
	c := NewCache[int](5)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Purge()
	require.Equal(t, 0, c.Len())

	if _, ok := c.Get("a"); ok {
		t.Fatal("expected purge to drop all entries")
	}

	// Purged cache keeps working.
	c.Put("c", 3)
	require.Equal(t, 1, c.Len())
}

func TestCacheKey_SizeOrderInsensitive(t *testing.T) {
	a := CacheKey("notepad.exe", []int{64, 32, 128, 48})
	b := CacheKey("notepad.exe", []int{32, 48, 64, 128})
	require.Equal(t, a, b)

	c := CacheKey("notepad.exe", []int{32, 48})
	require.NotEqual(t, a, c)
}

func TestCacheKey_ResolvesPath(t *testing.T) {
	rel := CacheKey("notepad.exe", []int{48})
	wd, err := os.Getwd()
	require.NoError(t, err)
	abs := CacheKey(filepath.Join(wd, "notepad.exe"), []int{48})
	require.Equal(t, abs, rel)
}
