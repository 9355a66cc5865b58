// Package main is the planargen CLI, which prepares and launches dataset
// generation runs for planar arm collision experiments.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"
	goutils "go.viam.com/utils"

	"go.viam.com/planargen/datagen"
	"go.viam.com/planargen/datagen/external"
	"go.viam.com/planargen/datagen/fake"
	"go.viam.com/planargen/logging"
	"go.viam.com/planargen/scene"
)

const (
	// Flags.
	envFlag          = "env"
	outputDirFlag    = "output-dir"
	labelTypeFlag    = "label-type"
	numClassesFlag   = "num-classes"
	dofFlag          = "dof"
	numPointsFlag    = "num-init-points"
	widthFlag        = "width"
	seedFlag         = "random-seed"
	generatorFlag    = "generator"
	generatorArgFlag = "generator-arg"
	sceneFileFlag    = "scene-file"
	dryRunFlag       = "dry-run"
	debugFlag        = "debug"
)

var logger = logging.NewLogger("planargen")

func main() {
	goutils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, logger logging.Logger) error {
	return newApp(logger).RunContext(ctx, args)
}

func newApp(logger logging.Logger) *cli.App {
	return &cli.App{
		Name:  "planargen",
		Usage: "prepare collision datasets for planar arms",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  debugFlag,
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:    envFlag,
				Aliases: []string{"e"},
				Value:   scene.HalfNarrow,
				Usage:   "scene to generate data in",
			},
			&cli.PathFlag{
				Name:    outputDirFlag,
				Aliases: []string{"o"},
				Value:   "data/landscape",
				Usage:   "directory the dataset is written to",
			},
			&cli.StringFlag{
				Name:    labelTypeFlag,
				Aliases: []string{"l"},
				Value:   string(datagen.LabelBinary),
				Usage:   "labeling mode: instance, class or binary",
			},
			&cli.IntFlag{
				Name:    numClassesFlag,
				Aliases: []string{"n"},
				Value:   2,
				Usage:   "number of classes for class labeling",
			},
			&cli.IntFlag{
				Name:    dofFlag,
				Aliases: []string{"d"},
				Value:   3,
				Usage:   "degrees of freedom of the arm: 2, 3 or 7",
			},
			&cli.IntFlag{
				Name:    numPointsFlag,
				Aliases: []string{"i"},
				Value:   8000,
				Usage:   "number of configurations to sample",
			},
			&cli.Float64Flag{
				Name:    widthFlag,
				Aliases: []string{"w"},
				Value:   0.3,
				Usage:   "width of each arm link",
			},
			&cli.Int64Flag{
				Name:    seedFlag,
				Aliases: []string{"r"},
				Value:   2021,
				Usage:   "seed for procedural scenes and sampling",
			},
			&cli.PathFlag{
				Name:    generatorFlag,
				Aliases: []string{"g"},
				Usage:   "path of the generator binary to run",
			},
			&cli.StringSliceFlag{
				Name:  generatorArgFlag,
				Usage: "extra argument passed to the generator binary, repeatable",
			},
			&cli.PathFlag{
				Name:  sceneFileFlag,
				Usage: "JSON scene layout to use instead of a catalog scene",
			},
			&cli.BoolFlag{
				Name:  dryRunFlag,
				Usage: "build and record the request without running a generator",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(debugFlag) {
				logging.GlobalLogLevel.SetLevel(zapcore.DebugLevel)
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			return generate(c, logger)
		},
		Commands: []*cli.Command{
			{
				Name:   "scenes",
				Usage:  "list the scene catalog",
				Action: scenesAction,
			},
			{
				Name:      "inspect",
				Usage:     "print the obstacle layout of a scene",
				ArgsUsage: "<scene>",
				Action:    inspectAction,
			},
		},
	}
}

func generate(c *cli.Context, logger logging.Logger) error {
	cfg := datagen.Config{
		SceneName:  c.String(envFlag),
		SceneFile:  c.Path(sceneFileFlag),
		OutputDir:  c.Path(outputDirFlag),
		LabelType:  datagen.LabelType(c.String(labelTypeFlag)),
		NumClasses: c.Int(numClassesFlag),
		DOF:        c.Int(dofFlag),
		NumPoints:  c.Int(numPointsFlag),
		LinkWidth:  c.Float64(widthFlag),
		Seed:       c.Int64(seedFlag),
		Logger:     logger,
	}

	var gen datagen.Generator
	if c.Bool(dryRunFlag) {
		gen = fake.NewGenerator(logger)
	} else {
		if c.Path(generatorFlag) == "" {
			return errors.Errorf("no generator binary set, pass --%s or use --%s", generatorFlag, dryRunFlag)
		}
		extGen, err := external.NewGenerator(c.Path(generatorFlag), c.StringSlice(generatorArgFlag), logger)
		if err != nil {
			return err
		}
		gen = extGen
	}

	req, err := datagen.Run(c.Context, cfg, gen)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "request %s for scene %q written to %s\n", req.ID, req.SceneName, req.OutputDir)
	return nil
}

func scenesAction(c *cli.Context) error {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Scene", "Kind", "Obstacles", "DOF", "Link Length"})
	for _, name := range scene.Names() {
		entry, err := scene.Info(name)
		if err != nil {
			return err
		}

		kind := "fixed"
		obstacles := fmt.Sprintf("%d", len(entry.Obstacles))
		if entry.Procedural {
			kind = "procedural"
			obstacles = "sampled"
		}
		dof := "any"
		if entry.DOF != 0 {
			dof = fmt.Sprintf("%d", entry.DOF)
		}
		linkLength := "per DOF"
		if entry.LinkLength > 0 {
			linkLength = fmt.Sprintf("%.1f", entry.LinkLength)
		}
		t.AppendRow([]interface{}{name, kind, obstacles, dof, linkLength})
	}
	fmt.Fprintln(c.App.Writer, t.Render())
	return nil
}

func inspectAction(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		fmt.Fprintln(c.App.ErrWriter, "scene name required")
		cli.ShowSubcommandHelpAndExit(c, 1)
		return nil
	}

	rSeed := rand.New(rand.NewSource(c.Int64(seedFlag)))
	obstacles, err := scene.Resolve(name, rSeed)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Kind", "Center", "Size", "Class"})
	for i, obstacle := range obstacles {
		size := fmt.Sprintf("r=%.2f", obstacle.Radius)
		if obstacle.Kind == scene.KindRect {
			size = fmt.Sprintf("%.2fx%.2f", obstacle.Extents.X, obstacle.Extents.Y)
		}
		class := ""
		if obstacle.Class != nil {
			class = fmt.Sprintf("%d", *obstacle.Class)
		}
		t.AppendRow([]interface{}{
			fmt.Sprintf("%d", i+1),
			string(obstacle.Kind),
			fmt.Sprintf("(%.2f, %.2f)", obstacle.Center.X, obstacle.Center.Y),
			size,
			class,
		})
	}
	fmt.Fprintln(c.App.Writer, t.Render())

	summary, err := scene.Summarize(obstacles)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%d obstacles: %d circles, %d rects\n", summary.Count, summary.Circles, summary.Rects)
	fmt.Fprintf(c.App.Writer, "bounds (%.2f, %.2f) to (%.2f, %.2f)\n",
		summary.Bounds.Min.X, summary.Bounds.Min.Y, summary.Bounds.Max.X, summary.Bounds.Max.Y)
	fmt.Fprintf(c.App.Writer, "mean center (%.2f, %.2f), median size %.2f\n",
		summary.MeanCenter.X, summary.MeanCenter.Y, summary.MedianSize)

	classes := make([]int, 0, len(summary.ClassCounts))
	for class := range summary.ClassCounts {
		classes = append(classes, class)
	}
	sort.Ints(classes)
	for _, class := range classes {
		fmt.Fprintf(c.App.Writer, "class %d: %d obstacles\n", class, summary.ClassCounts[class])
	}
	return nil
}
