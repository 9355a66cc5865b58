package datagen

import (
	"context"
	"math/rand"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"go.viam.com/planargen/logging"
	"go.viam.com/planargen/robot"
	"go.viam.com/planargen/scene"
)

// Config contains the parameters needed to build a dataset request.
type Config struct {
	// SceneName identifies a catalog scene. Ignored when SceneFile is set.
	SceneName string
	// SceneFile is the path of a scene layout on disk, overriding SceneName.
	SceneFile  string
	OutputDir  string
	LabelType  LabelType
	NumClasses int
	// DOF is the arm's degrees of freedom and picks its link length.
	DOF       int
	NumPoints int
	LinkWidth float64
	// Seed feeds the random stream procedural scenes are drawn from.
	Seed   int64
	Logger logging.Logger
	// Clock defaults to the wall clock and exists for tests.
	Clock clock.Clock
}

// Validate validates that c contains all required parameters.
func (c Config) Validate() error {
	if c.SceneName == "" && c.SceneFile == "" {
		return errMissingSceneName
	}
	if c.OutputDir == "" {
		return errMissingOutputDir
	}
	if c.Logger == nil {
		return errMissingLogger
	}
	if err := c.LabelType.Validate(); err != nil {
		return err
	}
	if c.NumClasses < 1 {
		return errBadNumClasses
	}
	if c.NumPoints < 1 {
		return errBadNumPoints
	}
	if c.LinkWidth <= 0 {
		return errBadLinkWidth
	}
	return nil
}

// BuildRequest resolves the configured scene and arm into a full generation
// request. Rebuilding with the same config yields the same obstacle layout;
// only the request id differs.
func BuildRequest(cfg Config) (*Request, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	linkLength, err := robot.LinkLengthForDOF(cfg.DOF)
	if err != nil {
		return nil, err
	}

	rSeed := rand.New(rand.NewSource(cfg.Seed))

	var (
		name      string
		sceneDOF  int
		obstacles []scene.Obstacle
	)
	if cfg.SceneFile != "" {
		file, err := scene.LoadFile(cfg.SceneFile)
		if err != nil {
			return nil, err
		}
		obstacles, err = file.Parse()
		if err != nil {
			return nil, err
		}
		name = file.Name
		sceneDOF = file.DOF
	} else {
		entry, err := scene.Info(cfg.SceneName)
		if err != nil {
			return nil, err
		}
		obstacles, err = scene.Resolve(cfg.SceneName, rSeed)
		if err != nil {
			return nil, err
		}
		name = cfg.SceneName
		sceneDOF = entry.DOF
		if entry.LinkLength > 0 {
			linkLength = entry.LinkLength
		}
	}

	// Scenes are authored with a particular arm in mind, but any supported
	// arm can run in them.
	if sceneDOF != 0 && sceneDOF != cfg.DOF {
		cfg.Logger.Warnw("scene is usually paired with a different arm",
			"scene", name,
			"scene_dof", sceneDOF,
			"requested_dof", cfg.DOF,
		)
	}

	arm, err := robot.NewRevolutePlanar(linkLength, cfg.LinkWidth, cfg.DOF)
	if err != nil {
		return nil, err
	}

	return &Request{
		ID:         uuid.New(),
		SceneName:  name,
		Obstacles:  obstacles,
		Robot:      arm,
		OutputDir:  cfg.OutputDir,
		LabelType:  cfg.LabelType,
		NumClasses: cfg.NumClasses,
		NumPoints:  cfg.NumPoints,
		Seed:       cfg.Seed,
		Visualize:  true,
	}, nil
}

// Run builds a request from the config, makes sure the output directory
// exists and hands the request to the generator.
func Run(ctx context.Context, cfg Config, gen Generator) (*Request, error) {
	if gen == nil {
		return nil, errMissingGenerator
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	req, err := BuildRequest(cfg)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(req.OutputDir); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "problem checking the output directory %q", req.OutputDir)
		}
		if err := os.MkdirAll(req.OutputDir, os.ModePerm); err != nil {
			return nil, errors.Wrapf(err, "problem creating the output directory %q", req.OutputDir)
		}
	}

	start := clk.Now()
	if err := gen.Generate(ctx, req); err != nil {
		return nil, err
	}
	cfg.Logger.Infow("dataset generated",
		"run_id", req.ID,
		"scene", req.SceneName,
		"obstacles", len(req.Obstacles),
		"points", req.NumPoints,
		"elapsed", clk.Since(start).String(),
	)
	return req, nil
}
