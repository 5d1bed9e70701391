// Package config provides configuration loading and access for the library's
// tools and tunable defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable parameters.
type Config struct {
	Query   QueryConfig   `yaml:"query"`
	Shape   ShapeConfig   `yaml:"shape"`
	Preview PreviewConfig `yaml:"preview"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// QueryConfig holds point-query parameters.
type QueryConfig struct {
	CollisionMask uint32 `yaml:"collision_mask"` // Layers a query collides with
	MaxResults    int    `yaml:"max_results"`    // Cap on fields gathered per query
}

// ShapeConfig holds default shape generation parameters.
type ShapeConfig struct {
	RingOuterRadius float64 `yaml:"ring_outer_radius"`
	RingInnerRadius float64 `yaml:"ring_inner_radius"`
	RingHeight      float64 `yaml:"ring_height"`
	RingVertexCount int     `yaml:"ring_vertex_count"` // Tessellation; minimum 3
	EdgeRadius      float64 `yaml:"edge_radius"`       // Corner rounding for cuboids
}

// PreviewConfig holds settings for the preview tool window.
type PreviewConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	TargetFPS   int     `yaml:"target_fps"`
	GridSpacing float64 `yaml:"grid_spacing"` // World units between sampled arrows
	ArrowLength float64 `yaml:"arrow_length"` // Arrow length in pixels
	OutputDir   string  `yaml:"output_dir"`   // Sample dump destination; empty disables
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	GridSpacing32 float32 // Preview.GridSpacing as float32
	ArrowLength32 float32 // Preview.ArrowLength as float32
	EdgeRadius32  float32 // Shape.EdgeRadius as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Query.MaxResults <= 0 {
		c.Query.MaxResults = 32
	}
	if c.Shape.RingVertexCount < 3 {
		c.Shape.RingVertexCount = 3
	}
	c.Derived.GridSpacing32 = float32(c.Preview.GridSpacing)
	c.Derived.ArrowLength32 = float32(c.Preview.ArrowLength)
	c.Derived.EdgeRadius32 = float32(c.Shape.EdgeRadius)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
