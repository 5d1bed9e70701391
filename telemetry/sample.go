// Package telemetry records sampled field directions and summarizes them,
// for tooling and offline analysis of a configured scene.
package telemetry

import (
	"github.com/fieldway/updraft/query"
	"github.com/fieldway/updraft/vec"
)

// Sample is one resolved up-direction query.
type Sample struct {
	PosX float64 `csv:"pos_x"`
	PosY float64 `csv:"pos_y"`
	PosZ float64 `csv:"pos_z"`
	UpX  float64 `csv:"up_x"`
	UpY  float64 `csv:"up_y"`
	UpZ  float64 `csv:"up_z"`

	// Found reports whether any field covered the position.
	Found bool `csv:"found"`
}

// SampleGrid3 queries the space on a regular grid spanning min..max with the
// given spacing and returns one sample per grid point. A non-positive
// spacing yields no samples.
func SampleGrid3(space query.Space3, q query.PointQuery3, min, max vec.Vec3, spacing float32) []Sample {
	if spacing <= 0 {
		return nil
	}

	var samples []Sample
	for x := min.X; x <= max.X; x += spacing {
		for y := min.Y; y <= max.Y; y += spacing {
			for z := min.Z; z <= max.Z; z += spacing {
				pos := vec.V3(x, y, z)
				res, found := q.Direction(space, pos)
				samples = append(samples, Sample{
					PosX: float64(pos.X), PosY: float64(pos.Y), PosZ: float64(pos.Z),
					UpX: float64(res.Up.X), UpY: float64(res.Up.Y), UpZ: float64(res.Up.Z),
					Found: found,
				})
			}
		}
	}
	return samples
}

// SampleGrid2 is the 2D grid sampler; the Z columns stay zero.
func SampleGrid2(space query.Space2, q query.PointQuery2, min, max vec.Vec2, spacing float32) []Sample {
	if spacing <= 0 {
		return nil
	}

	var samples []Sample
	for x := min.X; x <= max.X; x += spacing {
		for y := min.Y; y <= max.Y; y += spacing {
			pos := vec.V2(x, y)
			res, found := q.Direction(space, pos)
			samples = append(samples, Sample{
				PosX: float64(pos.X), PosY: float64(pos.Y),
				UpX: float64(res.Up.X), UpY: float64(res.Up.Y),
				Found: found,
			})
		}
	}
	return samples
}
