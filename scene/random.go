package scene

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// Region is an axis-aligned rectangular sampling region.
type Region struct {
	Min r2.Point
	Max r2.Point
}

// Contains reports whether the point lies inside the region, bounds included.
func (r Region) Contains(pt r2.Point) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// fieldObstacleCount obstacles of size fieldObstacleSize are sampled per band
// of a procedural scene.
const fieldObstacleCount = 150

var fieldObstacleSize = r2.Point{X: 1, Y: 1}

// Sampling bands used by the procedural scenes. The gap between them leaves a
// horizontal corridor near y in (-1, 1).
var (
	upperBand = Region{Min: r2.Point{X: -8, Y: 1}, Max: r2.Point{X: 8, Y: 8}}
	lowerBand = Region{Min: r2.Point{X: -8, Y: -8}, Max: r2.Point{X: 8, Y: -1}}
)

// RandomField draws count positions uniformly from the region and returns
// rectangle obstacles of the given size centered at them. Each obstacle consumes
// an x draw then a y draw from the stream, so a given seed always produces the
// same field.
func RandomField(rSeed *rand.Rand, region Region, count int, size r2.Point) []Obstacle {
	if rSeed == nil {
		rSeed = rand.New(rand.NewSource(1))
	}
	obstacles := make([]Obstacle, 0, count)
	for i := 0; i < count; i++ {
		x := rSeed.Float64()*(region.Max.X-region.Min.X) + region.Min.X
		y := rSeed.Float64()*(region.Max.Y-region.Min.Y) + region.Min.Y
		obstacles = append(obstacles, NewRect(r2.Point{X: x, Y: y}, size))
	}
	return obstacles
}

// NarrowPassageField returns the obstacle field of the NarrowPassage scene: one
// random band above the corridor followed by one below it. The upper band is
// sampled first; reordering the bands would change what a seed produces.
func NarrowPassageField(rSeed *rand.Rand) []Obstacle {
	if rSeed == nil {
		rSeed = rand.New(rand.NewSource(1))
	}
	obstacles := make([]Obstacle, 0, 2*fieldObstacleCount)
	obstacles = append(obstacles, RandomField(rSeed, upperBand, fieldObstacleCount, fieldObstacleSize)...)
	obstacles = append(obstacles, RandomField(rSeed, lowerBand, fieldObstacleCount, fieldObstacleSize)...)
	return obstacles
}

// HalfNarrowField returns the obstacle field of the HalfNarrow scene, a single
// random band above the workspace.
func HalfNarrowField(rSeed *rand.Rand) []Obstacle {
	return RandomField(rSeed, upperBand, fieldObstacleCount, fieldObstacleSize)
}
