// Package scene provides the obstacle layouts that planar-arm datasets are
// generated against, as a catalog of fixed scenes plus procedurally sampled
// obstacle fields.
package scene

import (
	"encoding/json"
	"fmt"

	"github.com/golang/geo/r2"
)

// Kind enumerates the obstacle shapes a scene can contain.
type Kind string

const (
	// KindCircle is a circle given by its center and radius.
	KindCircle = Kind("circle")
	// KindRect is an axis-aligned rectangle given by its center and full side lengths.
	KindRect = Kind("rect")
)

// Obstacle is one shape in a scene. It is immutable once constructed; either
// Radius or Extents is meaningful depending on Kind.
type Obstacle struct {
	Kind   Kind
	Center r2.Point
	// Radius of a circle obstacle.
	Radius float64
	// Extents holds the full side lengths of a rect obstacle.
	Extents r2.Point
	// Class optionally tags the obstacle for class-labeled datasets.
	Class *int
}

// NewCircle instantiates a new circle obstacle.
func NewCircle(center r2.Point, radius float64) Obstacle {
	return Obstacle{Kind: KindCircle, Center: center, Radius: radius}
}

// NewRect instantiates a new axis-aligned rectangle obstacle.
func NewRect(center, extents r2.Point) Obstacle {
	return Obstacle{Kind: KindRect, Center: center, Extents: extents}
}

// WithClass returns a copy of the obstacle tagged with the given class label.
func (o Obstacle) WithClass(class int) Obstacle {
	o.Class = &class
	return o
}

// Validate ensures the obstacle has a supported kind and positive dimensions.
func (o Obstacle) Validate() error {
	switch o.Kind {
	case KindCircle:
		if o.Radius <= 0 {
			return newBadObstacleDimensionsError(o)
		}
	case KindRect:
		if o.Extents.X <= 0 || o.Extents.Y <= 0 {
			return newBadObstacleDimensionsError(o)
		}
	default:
		return newObstacleKindUnsupportedError(string(o.Kind))
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the obstacle.
func (o Obstacle) Bounds() Region {
	var half r2.Point
	switch o.Kind {
	case KindCircle:
		half = r2.Point{X: o.Radius, Y: o.Radius}
	case KindRect:
		half = o.Extents.Mul(0.5)
	}

	return Region{Min: o.Center.Sub(half), Max: o.Center.Add(half)}
}

func (o Obstacle) String() string {
	tag := ""
	if o.Class != nil {
		tag = fmt.Sprintf(" class %d", *o.Class)
	}
	switch o.Kind {
	case KindCircle:
		return fmt.Sprintf("circle r=%.2f at (%.2f, %.2f)%s", o.Radius, o.Center.X, o.Center.Y, tag)
	case KindRect:
		return fmt.Sprintf("rect %.2fx%.2f at (%.2f, %.2f)%s", o.Extents.X, o.Extents.Y, o.Center.X, o.Center.Y, tag)
	default:
		return string(o.Kind)
	}
}

// MarshalJSON writes the obstacle in its config form.
func (o Obstacle) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewObstacleConfig(o))
}

// ObstacleConfig specifies the format obstacles are stored and transmitted in.
type ObstacleConfig struct {
	Type  string  `json:"type"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r,omitempty"`
	SizeX float64 `json:"size_x,omitempty"`
	SizeY float64 `json:"size_y,omitempty"`
	Class *int    `json:"class,omitempty"`
}

// NewObstacleConfig converts an obstacle to its config form.
func NewObstacleConfig(o Obstacle) *ObstacleConfig {
	config := &ObstacleConfig{Type: string(o.Kind), X: o.Center.X, Y: o.Center.Y, Class: o.Class}
	switch o.Kind {
	case KindCircle:
		config.R = o.Radius
	case KindRect:
		config.SizeX = o.Extents.X
		config.SizeY = o.Extents.Y
	}
	return config
}

// ParseConfig converts an ObstacleConfig to an Obstacle, inferring the kind
// from whichever dimensions were set when no type is given.
func (config *ObstacleConfig) ParseConfig() (Obstacle, error) {
	kind := Kind(config.Type)
	if config.Type == "" {
		switch {
		case config.R > 0:
			kind = KindCircle
		case config.SizeX > 0 || config.SizeY > 0:
			kind = KindRect
		}
	}

	obstacle := Obstacle{Kind: kind, Center: r2.Point{X: config.X, Y: config.Y}, Class: config.Class}
	switch kind {
	case KindCircle:
		obstacle.Radius = config.R
	case KindRect:
		obstacle.Extents = r2.Point{X: config.SizeX, Y: config.SizeY}
	default:
		return Obstacle{}, newObstacleKindUnsupportedError(config.Type)
	}
	if err := obstacle.Validate(); err != nil {
		return Obstacle{}, err
	}
	return obstacle, nil
}
