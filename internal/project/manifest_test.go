package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"jsxc/internal/project"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jsxc.toml")
	writeFile(t, path, "[transform]\npragma = \"h\"\nproduction = true\nout_dir = \"dist\"\n\n[cache]\nenabled = true\n")

	m, err := project.LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Transform.Pragma != "h" || !m.Transform.Production || m.Transform.OutDir != "dist" {
		t.Errorf("unexpected transform section: %+v", m.Transform)
	}
	if !m.Cache.Enabled {
		t.Error("cache section not decoded")
	}
}

func TestLoadManifestRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jsxc.toml")
	writeFile(t, path, "[transform]\npragme = \"typo\"\n")

	if _, err := project.LoadManifest(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "jsxc.toml"), "[transform]\n")
	nested := filepath.Join(root, "src", "components")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := project.FindManifest(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if path != filepath.Join(root, "jsxc.toml") {
		t.Errorf("got %q", path)
	}
}

func TestDiscoverManifestMissing(t *testing.T) {
	m, path, err := project.DiscoverManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if m != nil || path != "" {
		t.Errorf("expected no manifest, got %v at %q", m, path)
	}
}

func TestCombineIsOrderSensitive(t *testing.T) {
	a := project.HashBytes([]byte("a"))
	b := project.HashBytes([]byte("b"))
	if project.Combine(a, b) == project.Combine(b, a) {
		t.Error("combined digest ignores order")
	}
}
