package scene

import (
	"math/rand"
	"sort"

	"github.com/golang/geo/r2"
)

// Names of the two procedurally generated scenes. Scene identifiers double as
// dataset environment ids, so they are kept verbatim from the datasets they
// produce.
const (
	// NarrowPassage is a random field split into two bands with a horizontal
	// corridor between them.
	NarrowPassage = "7d_narrow"
	// HalfNarrow is a random field above the workspace only.
	HalfNarrow = "3d_halfnarrow"
)

// Entry holds the catalog metadata of a named scene.
type Entry struct {
	// Obstacles is nil for procedural scenes.
	Obstacles []Obstacle
	// DOF is the arm the scene was authored for; 0 means any.
	DOF int
	// LinkLength is the arm link length associated with the scene; 0 means the
	// length is resolved from the arm's degrees of freedom instead.
	LinkLength float64
	// Procedural marks scenes whose obstacles are sampled at run time.
	Procedural bool
}

var catalog = map[string]Entry{
	"1rect_1circle": {
		Obstacles: []Obstacle{
			NewRect(r2.Point{X: 4, Y: 3}, r2.Point{X: 2, Y: 2}),
			NewCircle(r2.Point{X: -4, Y: -3}, 1),
		},
	},
	"3circle": {
		Obstacles: []Obstacle{
			NewCircle(r2.Point{X: 0, Y: 4.5}, 1),
			NewCircle(r2.Point{X: -2, Y: -3}, 2),
			NewCircle(r2.Point{X: -2, Y: 2}, 1.5),
		},
	},
	"1rect_1circle_7d": {
		Obstacles: []Obstacle{
			NewCircle(r2.Point{X: -2, Y: 3}, 1),
			NewRect(r2.Point{X: 3, Y: 2}, r2.Point{X: 2, Y: 2}),
		},
		DOF: 7,
	},
	"2class_1": {
		Obstacles: []Obstacle{
			NewRect(r2.Point{X: 5, Y: 0}, r2.Point{X: 2, Y: 2}).WithClass(0),
			NewCircle(r2.Point{X: -3, Y: 6}, 1).WithClass(1),
			NewRect(r2.Point{X: -5, Y: 2}, r2.Point{X: 2, Y: 1.5}).WithClass(1),
			NewCircle(r2.Point{X: -5, Y: -2}, 1.5).WithClass(1),
			NewCircle(r2.Point{X: -3, Y: -6}, 1).WithClass(1),
		},
	},
	"2class_2": {
		Obstacles: []Obstacle{
			NewRect(r2.Point{X: 0, Y: 3}, r2.Point{X: 16, Y: 0.5}).WithClass(1),
			NewRect(r2.Point{X: 0, Y: -3}, r2.Point{X: 16, Y: 0.5}).WithClass(0),
		},
	},
	"3circle_7d": {
		Obstacles: []Obstacle{
			NewCircle(r2.Point{X: -2, Y: 2}, 1),
			NewCircle(r2.Point{X: -3, Y: 3}, 1),
			NewCircle(r2.Point{X: -6, Y: -3}, 1),
		},
		DOF: 7,
	},
	NarrowPassage: {DOF: 7, LinkLength: 1, Procedural: true},
	HalfNarrow:    {DOF: 3, LinkLength: 2.5, Procedural: true},
}

// Names returns all valid scene identifiers, fixed and procedural, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Info returns the catalog metadata of a named scene.
func Info(name string) (Entry, error) {
	entry, ok := catalog[name]
	if !ok {
		return Entry{}, NewUnknownSceneError(name)
	}
	entry.Obstacles = copyObstacles(entry.Obstacles)
	return entry, nil
}

// Lookup returns the obstacle sequence of a fixed catalog scene. The order of
// the returned obstacles is significant and is preserved verbatim.
func Lookup(name string) ([]Obstacle, error) {
	entry, ok := catalog[name]
	if !ok {
		return nil, NewUnknownSceneError(name)
	}
	if entry.Procedural {
		return nil, newProceduralSceneError(name)
	}
	return copyObstacles(entry.Obstacles), nil
}

// Resolve returns the obstacle layout of any valid scene identifier, sampling
// the procedural scenes from the given random stream.
func Resolve(name string, rSeed *rand.Rand) ([]Obstacle, error) {
	switch name {
	case NarrowPassage:
		return NarrowPassageField(rSeed), nil
	case HalfNarrow:
		return HalfNarrowField(rSeed), nil
	default:
		return Lookup(name)
	}
}

// copyObstacles deep copies an obstacle slice so callers cannot mutate the
// catalog through shared class tag pointers.
func copyObstacles(obstacles []Obstacle) []Obstacle {
	if obstacles == nil {
		return nil
	}
	copied := make([]Obstacle, 0, len(obstacles))
	for _, obstacle := range obstacles {
		if obstacle.Class != nil {
			class := *obstacle.Class
			obstacle.Class = &class
		}
		copied = append(copied, obstacle)
	}
	return copied
}
