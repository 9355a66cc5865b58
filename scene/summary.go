package scene

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Summary aggregates layout statistics for display and sanity checks.
type Summary struct {
	Count   int
	Circles int
	Rects   int
	// ClassCounts maps class tags to the number of obstacles carrying them.
	ClassCounts map[int]int
	// Bounds is the tightest region containing every obstacle.
	Bounds Region
	// MeanCenter is the centroid of the obstacle centers.
	MeanCenter r2.Point
	// MedianSize is the median of the obstacles' larger side length, where a
	// circle's side is its diameter.
	MedianSize float64
}

// Summarize computes layout statistics over an obstacle sequence.
func Summarize(obstacles []Obstacle) (Summary, error) {
	if len(obstacles) == 0 {
		return Summary{}, errors.New("cannot summarize an empty obstacle layout")
	}

	summary := Summary{Count: len(obstacles), ClassCounts: map[int]int{}}
	var (
		minXs = make([]float64, 0, len(obstacles))
		minYs = make([]float64, 0, len(obstacles))
		maxXs = make([]float64, 0, len(obstacles))
		maxYs = make([]float64, 0, len(obstacles))
		xs    = make([]float64, 0, len(obstacles))
		ys    = make([]float64, 0, len(obstacles))
		sizes = make([]float64, 0, len(obstacles))
	)
	for _, obstacle := range obstacles {
		switch obstacle.Kind {
		case KindCircle:
			summary.Circles++
			sizes = append(sizes, 2*obstacle.Radius)
		case KindRect:
			summary.Rects++
			sizes = append(sizes, math.Max(obstacle.Extents.X, obstacle.Extents.Y))
		}
		if obstacle.Class != nil {
			summary.ClassCounts[*obstacle.Class]++
		}

		bounds := obstacle.Bounds()
		minXs = append(minXs, bounds.Min.X)
		minYs = append(minYs, bounds.Min.Y)
		maxXs = append(maxXs, bounds.Max.X)
		maxYs = append(maxYs, bounds.Max.Y)
		xs = append(xs, obstacle.Center.X)
		ys = append(ys, obstacle.Center.Y)
	}

	summary.Bounds = Region{
		Min: r2.Point{X: floats.Min(minXs), Y: floats.Min(minYs)},
		Max: r2.Point{X: floats.Max(maxXs), Y: floats.Max(maxYs)},
	}

	meanX, err := stats.Mean(xs)
	if err != nil {
		return Summary{}, err
	}
	meanY, err := stats.Mean(ys)
	if err != nil {
		return Summary{}, err
	}
	summary.MeanCenter = r2.Point{X: meanX, Y: meanY}

	summary.MedianSize, err = stats.Median(sizes)
	if err != nil {
		return Summary{}, err
	}
	return summary, nil
}
