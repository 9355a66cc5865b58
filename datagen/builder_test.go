package datagen_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	clk "github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/planargen/datagen"
	"go.viam.com/planargen/datagen/fake"
	"go.viam.com/planargen/logging"
	"go.viam.com/planargen/scene"
)

func defaultConfig(t *testing.T) datagen.Config {
	t.Helper()
	return datagen.Config{
		SceneName:  scene.HalfNarrow,
		OutputDir:  t.TempDir(),
		LabelType:  datagen.LabelBinary,
		NumClasses: 2,
		DOF:        3,
		NumPoints:  8000,
		LinkWidth:  0.3,
		Seed:       2021,
		Logger:     logging.NewTestLogger(t),
	}
}

func TestConfigValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		breakC func(*datagen.Config)
		errMsg string
	}{
		{"no scene", func(c *datagen.Config) { c.SceneName = "" }, "scene name"},
		{"no output dir", func(c *datagen.Config) { c.OutputDir = "" }, "output directory"},
		{"no logger", func(c *datagen.Config) { c.Logger = nil }, "logger"},
		{"bad label type", func(c *datagen.Config) { c.LabelType = "voxel" }, "unsupported label type"},
		{"no classes", func(c *datagen.Config) { c.NumClasses = 0 }, "at least one class"},
		{"no points", func(c *datagen.Config) { c.NumPoints = 0 }, "at least one point"},
		{"bad link width", func(c *datagen.Config) { c.LinkWidth = 0 }, "width must be positive"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			tc.breakC(&cfg)
			err := cfg.Validate()
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, tc.errMsg)
		})
	}

	test.That(t, defaultConfig(t).Validate(), test.ShouldBeNil)
}

func TestBuildRequestDeterminism(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.SceneName = scene.NarrowPassage
	cfg.DOF = 7

	req1, err := datagen.BuildRequest(cfg)
	test.That(t, err, test.ShouldBeNil)
	req2, err := datagen.BuildRequest(cfg)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, req1.Obstacles, test.ShouldHaveLength, 300)
	test.That(t, req1.Obstacles, test.ShouldResemble, req2.Obstacles)
	// Run ids are unique even when the layout is identical.
	test.That(t, req1.ID.String(), test.ShouldNotEqual, req2.ID.String())

	cfg.Seed = 7
	req3, err := datagen.BuildRequest(cfg)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, req3.Obstacles, test.ShouldNotResemble, req1.Obstacles)
}

func TestBuildRequestLinkLengths(t *testing.T) {
	for _, tc := range []struct {
		scene      string
		dof        int
		linkLength float64
	}{
		{"1rect_1circle", 2, 3.5},
		{"3circle", 3, 2},
		{"3circle_7d", 7, 1},
		{scene.NarrowPassage, 7, 1},
		{scene.HalfNarrow, 3, 2.5},
		// Procedural scenes pin their link length no matter the arm.
		{scene.HalfNarrow, 7, 2.5},
	} {
		t.Run(fmt.Sprintf("%s_%dd", tc.scene, tc.dof), func(t *testing.T) {
			cfg := defaultConfig(t)
			cfg.SceneName = tc.scene
			cfg.DOF = tc.dof

			req, err := datagen.BuildRequest(cfg)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, req.Robot.DOF(), test.ShouldEqual, tc.dof)
			test.That(t, req.Robot.LinkLength(), test.ShouldEqual, tc.linkLength)
			test.That(t, req.Robot.LinkWidth(), test.ShouldEqual, 0.3)
		})
	}
}

func TestBuildRequestUnsupportedDOF(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.DOF = 5
	_, err := datagen.BuildRequest(cfg)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unsupported DOF 5")
}

func TestBuildRequestUnknownScene(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.SceneName = "hallway"
	_, err := datagen.BuildRequest(cfg)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `no scene named "hallway"`)
}

func TestBuildRequestDOFMismatchWarns(t *testing.T) {
	logger, observed := logging.NewObservedTestLogger(t)
	cfg := defaultConfig(t)
	cfg.Logger = logger
	cfg.SceneName = "3circle_7d"
	cfg.DOF = 3

	req, err := datagen.BuildRequest(cfg)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, req.Robot.DOF(), test.ShouldEqual, 3)
	test.That(t, req.Robot.LinkLength(), test.ShouldEqual, 2)
	test.That(t, observed.FilterMessageSnippet("usually paired").Len(), test.ShouldEqual, 1)

	logger, observed = logging.NewObservedTestLogger(t)
	cfg.Logger = logger
	cfg.DOF = 7
	_, err = datagen.BuildRequest(cfg)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, observed.FilterMessageSnippet("usually paired").Len(), test.ShouldEqual, 0)
}

func TestBuildRequestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corridor.json")
	layout := `{"obstacles": [
		{"type": "circle", "x": 1, "y": 2, "r": 0.5},
		{"x": -1, "y": 0, "size_x": 2, "size_y": 1}
	]}`
	test.That(t, os.WriteFile(path, []byte(layout), 0o644), test.ShouldBeNil)

	cfg := defaultConfig(t)
	cfg.SceneFile = path
	req, err := datagen.BuildRequest(cfg)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, req.SceneName, test.ShouldEqual, "corridor")
	test.That(t, req.Obstacles, test.ShouldHaveLength, 2)
	test.That(t, req.Obstacles[0].Kind, test.ShouldEqual, scene.KindCircle)
	test.That(t, req.Obstacles[1].Kind, test.ShouldEqual, scene.KindRect)
	// File scenes have no pinned link length, the arm's own applies.
	test.That(t, req.Robot.LinkLength(), test.ShouldEqual, 2)
}

func TestRunCreatesOutputDir(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.OutputDir = filepath.Join(t.TempDir(), "data", "landscape")
	gen := fake.NewGenerator(cfg.Logger)

	req, err := datagen.Run(context.Background(), cfg, gen)
	test.That(t, err, test.ShouldBeNil)

	info, err := os.Stat(cfg.OutputDir)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info.IsDir(), test.ShouldBeTrue)
	test.That(t, gen.Requests(), test.ShouldHaveLength, 1)
	test.That(t, gen.Requests()[0], test.ShouldEqual, req)
}

func TestRunReportsElapsed(t *testing.T) {
	logger, observed := logging.NewObservedTestLogger(t)
	mockClock := clk.NewMock()

	cfg := defaultConfig(t)
	cfg.Logger = logger
	cfg.Clock = mockClock

	gen := fake.NewGenerator(logger)
	gen.GenerateFunc = func(ctx context.Context, req *datagen.Request) error {
		mockClock.Add(5 * time.Second)
		return nil
	}

	_, err := datagen.Run(context.Background(), cfg, gen)
	test.That(t, err, test.ShouldBeNil)

	entries := observed.FilterMessageSnippet("dataset generated").All()
	test.That(t, entries, test.ShouldHaveLength, 1)
	test.That(t, entries[0].ContextMap()["elapsed"], test.ShouldEqual, "5s")
	test.That(t, entries[0].ContextMap()["scene"], test.ShouldEqual, scene.HalfNarrow)
}

func TestRunGeneratorError(t *testing.T) {
	cfg := defaultConfig(t)
	gen := fake.NewGenerator(cfg.Logger)
	gen.GenerateFunc = func(ctx context.Context, req *datagen.Request) error {
		return errors.New("disk full")
	}

	_, err := datagen.Run(context.Background(), cfg, gen)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "disk full")
}

func TestRunNilGenerator(t *testing.T) {
	_, err := datagen.Run(context.Background(), defaultConfig(t), nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "generator")
}
