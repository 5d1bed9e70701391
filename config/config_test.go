package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Query.CollisionMask != 1 {
		t.Errorf("collision mask = %d, want 1", cfg.Query.CollisionMask)
	}
	if cfg.Query.MaxResults != 32 {
		t.Errorf("max results = %d, want 32", cfg.Query.MaxResults)
	}
	if cfg.Shape.RingVertexCount != 24 {
		t.Errorf("ring vertex count = %d, want 24", cfg.Shape.RingVertexCount)
	}
	if cfg.Derived.EdgeRadius32 != 0.25 {
		t.Errorf("derived edge radius = %v, want 0.25", cfg.Derived.EdgeRadius32)
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	body := "query:\n  max_results: 8\nshape:\n  ring_vertex_count: 2\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load override: %v", err)
	}

	if cfg.Query.MaxResults != 8 {
		t.Errorf("max results = %d, want 8", cfg.Query.MaxResults)
	}
	// Untouched fields keep their defaults.
	if cfg.Query.CollisionMask != 1 {
		t.Errorf("collision mask = %d, want 1", cfg.Query.CollisionMask)
	}
	// Out-of-range tessellation clamps to the minimum.
	if cfg.Shape.RingVertexCount != 3 {
		t.Errorf("ring vertex count = %d, want 3", cfg.Shape.RingVertexCount)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Preview.GridSpacing = 2.5

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if back.Preview.GridSpacing != 2.5 {
		t.Errorf("grid spacing after roundtrip = %v, want 2.5", back.Preview.GridSpacing)
	}
}
