package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/fieldway/updraft/config"
)

// OutputManager handles structured sample output with CSV logging.
type OutputManager struct {
	dir        string
	sampleFile *os.File

	// Track if headers have been written
	sampleHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	samplePath := filepath.Join(dir, "samples.csv")
	f, err := os.Create(samplePath)
	if err != nil {
		return nil, fmt.Errorf("creating samples.csv: %w", err)
	}
	om.sampleFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteSamples appends sample records to samples.csv.
func (om *OutputManager) WriteSamples(samples []Sample) error {
	if om == nil || len(samples) == 0 {
		return nil
	}

	if !om.sampleHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(samples, om.sampleFile); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
		om.sampleHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(samples, om.sampleFile); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.sampleFile == nil {
		return nil
	}
	return om.sampleFile.Close()
}
