package telemetry

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// SampleStats summarizes a batch of samples against a reference up
// direction.
type SampleStats struct {
	Count    int     // Samples taken
	Covered  int     // Samples where a field applied
	Coverage float64 // Covered / Count

	// Deviation angle (radians) between each covered sample's up and the
	// reference direction.
	DeviationMean   float64
	DeviationStdDev float64
	DeviationMax    float64
}

// ComputeStats summarizes samples against a reference direction. The
// reference must be unit length. Uncovered samples count toward coverage
// only.
func ComputeStats(samples []Sample, refX, refY, refZ float64) SampleStats {
	s := SampleStats{Count: len(samples)}
	if len(samples) == 0 {
		return s
	}

	var angles []float64
	for _, sample := range samples {
		if !sample.Found {
			continue
		}
		s.Covered++
		dot := sample.UpX*refX + sample.UpY*refY + sample.UpZ*refZ
		dot = math.Max(-1, math.Min(1, dot))
		angle := math.Acos(dot)
		angles = append(angles, angle)
		if angle > s.DeviationMax {
			s.DeviationMax = angle
		}
	}

	s.Coverage = float64(s.Covered) / float64(s.Count)
	if len(angles) > 0 {
		s.DeviationMean = stat.Mean(angles, nil)
		s.DeviationStdDev = stat.StdDev(angles, nil)
		if math.IsNaN(s.DeviationStdDev) {
			// StdDev of a single sample
			s.DeviationStdDev = 0
		}
	}
	return s
}
