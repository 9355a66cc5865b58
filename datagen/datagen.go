// Package datagen assembles dataset generation requests for planar arm
// collision experiments and hands them to a generator.
//
// A request pins down everything a generator needs to reproduce a dataset:
// the obstacle course, the arm description, labeling parameters and the seed
// the obstacles were drawn with. The heavy lifting of sampling configurations
// and labeling them is the generator's job, not this package's.
package datagen

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"go.viam.com/planargen/robot"
	"go.viam.com/planargen/scene"
)

// A Generator produces a dataset from a build request.
type Generator interface {
	Generate(ctx context.Context, req *Request) error
}

// LabelType selects how generated configurations are labeled.
type LabelType string

// The label types generators understand.
const (
	// LabelInstance labels each configuration with the obstacle it collides with.
	LabelInstance = LabelType("instance")
	// LabelClass labels each configuration with the class of the colliding obstacle.
	LabelClass = LabelType("class")
	// LabelBinary labels each configuration as colliding or free.
	LabelBinary = LabelType("binary")
)

// Validate ensures the label type is one a generator understands.
func (lt LabelType) Validate() error {
	switch lt {
	case LabelInstance, LabelClass, LabelBinary:
		return nil
	default:
		return NewUnsupportedLabelTypeError(lt)
	}
}

// A Request fully describes one dataset generation run.
type Request struct {
	ID         uuid.UUID
	SceneName  string
	Obstacles  []scene.Obstacle
	Robot      *robot.RevolutePlanar
	OutputDir  string
	LabelType  LabelType
	NumClasses int
	NumPoints  int
	Seed       int64
	Visualize  bool
}

// Validate ensures all required fields of a request are filled in.
func (r *Request) Validate() error {
	if r.SceneName == "" {
		return errMissingSceneName
	}
	if len(r.Obstacles) == 0 {
		return errNoObstacles
	}
	if r.Robot == nil {
		return errMissingRobot
	}
	if r.OutputDir == "" {
		return errMissingOutputDir
	}
	if err := r.LabelType.Validate(); err != nil {
		return err
	}
	if r.NumClasses < 1 {
		return errBadNumClasses
	}
	if r.NumPoints < 1 {
		return errBadNumPoints
	}
	return nil
}

// requestConfig is the serialized form of a Request, the schema generators
// consume.
type requestConfig struct {
	ID         uuid.UUID          `json:"id"`
	Scene      string             `json:"scene"`
	Obstacles  []scene.Obstacle   `json:"obstacles"`
	Robot      *robot.ModelConfig `json:"robot"`
	OutputDir  string             `json:"output_dir"`
	LabelType  LabelType          `json:"label_type"`
	NumClasses int                `json:"num_classes"`
	NumPoints  int                `json:"num_points"`
	Seed       int64              `json:"seed"`
	Visualize  bool               `json:"visualize"`
}

// MarshalJSON serializes the request with the arm expanded into its chain
// description.
func (r *Request) MarshalJSON() ([]byte, error) {
	var model *robot.ModelConfig
	if r.Robot != nil {
		model = r.Robot.ModelConfig()
	}
	return json.Marshal(requestConfig{
		ID:         r.ID,
		Scene:      r.SceneName,
		Obstacles:  r.Obstacles,
		Robot:      model,
		OutputDir:  r.OutputDir,
		LabelType:  r.LabelType,
		NumClasses: r.NumClasses,
		NumPoints:  r.NumPoints,
		Seed:       r.Seed,
		Visualize:  r.Visualize,
	})
}
