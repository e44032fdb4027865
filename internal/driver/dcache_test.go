package driver_test

import (
	"path/filepath"
	"testing"

	"jsxc/internal/driver"
)

func openTestCache(t *testing.T) *driver.DiskCache {
	t.Helper()
	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "jsxc"))
	if err != nil {
		t.Fatal(err)
	}
	return cache
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)
	opts := driver.TransformOptions{Pragma: "h", Production: true}
	src := []byte("let a = <b/>;")

	if _, ok := cache.Lookup(opts, src); ok {
		t.Fatal("unexpected hit on empty cache")
	}
	cache.Store(opts, src, "let a = h('b', {});")
	out, ok := cache.Lookup(opts, src)
	if !ok {
		t.Fatal("expected hit")
	}
	if out != "let a = h('b', {});" {
		t.Errorf("got %q", out)
	}
}

func TestDiskCacheKeyedByOptions(t *testing.T) {
	cache := openTestCache(t)
	src := []byte("let a = <b/>;")
	cache.Store(driver.TransformOptions{Production: true}, src, "prod")

	if _, ok := cache.Lookup(driver.TransformOptions{}, src); ok {
		t.Error("development lookup must miss a production entry")
	}
	if _, ok := cache.Lookup(driver.TransformOptions{Pragma: "h", Production: true}, src); ok {
		t.Error("different pragma must miss")
	}
}

func TestDiskCacheKeyedByContent(t *testing.T) {
	cache := openTestCache(t)
	opts := driver.TransformOptions{}
	cache.Store(opts, []byte("a"), "out-a")

	if _, ok := cache.Lookup(opts, []byte("b")); ok {
		t.Error("different content must miss")
	}
}

func TestNilDiskCacheIsInert(t *testing.T) {
	var cache *driver.DiskCache
	cache.Store(driver.TransformOptions{}, []byte("x"), "y")
	if _, ok := cache.Lookup(driver.TransformOptions{}, []byte("x")); ok {
		t.Error("nil cache must never hit")
	}
	if err := cache.DropAll(); err != nil {
		t.Errorf("nil DropAll: %v", err)
	}
}

func TestDropAll(t *testing.T) {
	cache := openTestCache(t)
	opts := driver.TransformOptions{}
	cache.Store(opts, []byte("x"), "y")
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Lookup(opts, []byte("x")); ok {
		t.Error("expected miss after DropAll")
	}
}
