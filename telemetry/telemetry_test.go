package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fieldway/updraft/field"
	"github.com/fieldway/updraft/query"
	"github.com/fieldway/updraft/space"
	"github.com/fieldway/updraft/vec"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		samples  []Sample
		coverage float64
		mean     float64
		max      float64
	}{
		{
			name: "all aligned",
			samples: []Sample{
				{UpY: 1, Found: true},
				{UpY: 1, Found: true},
			},
			coverage: 1,
		},
		{
			name: "half covered",
			samples: []Sample{
				{UpY: 1, Found: true},
				{},
			},
			coverage: 0.5,
		},
		{
			name: "orthogonal deviation",
			samples: []Sample{
				{UpX: 1, Found: true},
			},
			coverage: 1,
			mean:     math.Pi / 2,
			max:      math.Pi / 2,
		},
		{
			name: "mixed deviation",
			samples: []Sample{
				{UpY: 1, Found: true},
				{UpY: -1, Found: true},
			},
			coverage: 1,
			mean:     math.Pi / 2,
			max:      math.Pi,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.samples, 0, 1, 0)
			if math.Abs(got.Coverage-tt.coverage) > 0.001 {
				t.Errorf("coverage = %v, want %v", got.Coverage, tt.coverage)
			}
			if math.Abs(got.DeviationMean-tt.mean) > 0.001 {
				t.Errorf("mean deviation = %v, want %v", got.DeviationMean, tt.mean)
			}
			if math.Abs(got.DeviationMax-tt.max) > 0.001 {
				t.Errorf("max deviation = %v, want %v", got.DeviationMax, tt.max)
			}
		})
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	got := ComputeStats(nil, 0, 1, 0)
	if got.Count != 0 || got.Coverage != 0 || got.DeviationMean != 0 {
		t.Errorf("empty stats = %+v, want zeros", got)
	}
}

func TestSampleGrid3(t *testing.T) {
	w := space.NewWorld3()
	f := field.NewFlat3()
	w.Add(f, space.Volume3{Min: vec.V3(-1, -1, -1), Max: vec.V3(1, 1, 1)}, 0b1)

	samples := SampleGrid3(w, query.NewPointQuery3(), vec.V3(-1, 0, 0), vec.V3(1, 0, 0), 1)
	if len(samples) != 3 {
		t.Fatalf("sample count = %d, want 3", len(samples))
	}
	for _, s := range samples {
		if !s.Found {
			t.Errorf("sample at (%v %v %v) not covered", s.PosX, s.PosY, s.PosZ)
		}
		if math.Abs(s.UpY-1) > 0.001 {
			t.Errorf("up = (%v %v %v), want +Y", s.UpX, s.UpY, s.UpZ)
		}
	}

	if got := SampleGrid3(w, query.NewPointQuery3(), vec.Vec3{}, vec.V3(1, 0, 0), 0); got != nil {
		t.Error("zero spacing should yield no samples")
	}
}

func TestOutputManager(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	batch := []Sample{{PosX: 1, UpY: 1, Found: true}}
	if err := om.WriteSamples(batch); err != nil {
		t.Fatalf("WriteSamples: %v", err)
	}
	// Second batch must not repeat the header.
	if err := om.WriteSamples(batch); err != nil {
		t.Fatalf("WriteSamples second batch: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "samples.csv"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if strings.Count(content, "pos_x") != 1 {
		t.Errorf("expected exactly one header row, got:\n%s", content)
	}
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != 3 {
		t.Errorf("line count = %d, want 3 (header + 2 records)", len(lines))
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\"): %v", err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output")
	}
	// All methods are nil-safe.
	if err := om.WriteSamples([]Sample{{}}); err != nil {
		t.Errorf("WriteSamples on nil manager: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("Dir on nil manager = %q", om.Dir())
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}
