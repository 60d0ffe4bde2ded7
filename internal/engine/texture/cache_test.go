package texture

import (
	"testing"

	"github.com/archiviz/universe/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "")
	m.Run()
}

// Success paths need a live OpenGL context, so tests cover the cache
// behavior around load failures only.

func TestGetCachesFailure(t *testing.T) {
	c := NewCache()

	e := c.Get(1, "does/not/exist.webp")
	if e == nil {
		t.Fatal("entry is nil")
	}
	if e.Texture != nil {
		t.Error("expected nil texture for missing file")
	}

	again := c.Get(1, "does/not/exist.webp")
	if again != e {
		t.Error("second Get did not return the cached entry")
	}
}

func TestGetEmptyPath(t *testing.T) {
	c := NewCache()
	if e := c.Get(7, ""); e.Texture != nil {
		t.Error("expected nil texture for empty path")
	}
}

func TestEvictForcesReload(t *testing.T) {
	c := NewCache()
	e := c.Get(3, "missing.png")
	c.Evict(3)
	if c.Get(3, "missing.png") == e {
		t.Error("Evict did not drop the entry")
	}
}

func TestClear(t *testing.T) {
	c := NewCache()
	c.Get(1, "a.png")
	c.Get(2, "b.png")
	c.Clear()
	if len(c.entries) != 0 {
		t.Errorf("entries = %d after Clear, want 0", len(c.entries))
	}
}
