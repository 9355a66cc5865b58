// Package external implements a dataset generator that delegates the actual
// sampling and labeling work to a generator binary.
package external

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils/pexec"

	"go.viam.com/planargen/datagen"
	"go.viam.com/planargen/logging"
)

// manifestFilename names the request manifest written next to the generated
// dataset, so a dataset can always be traced back to the request it came from.
const manifestFilename = "request.json"

// Generator runs a generator binary once per request.
type Generator struct {
	binaryPath string
	extraArgs  []string
	logger     logging.Logger
}

// NewGenerator returns a generator backed by the binary at the given path.
// Extra args are appended after the request-derived ones.
func NewGenerator(binaryPath string, extraArgs []string, logger logging.Logger) (*Generator, error) {
	if binaryPath == "" {
		return nil, errors.New("missing required parameter generator binary path")
	}
	if logger == nil {
		return nil, errors.New("missing required parameter logger")
	}
	return &Generator{binaryPath: binaryPath, extraArgs: extraArgs, logger: logger}, nil
}

// ProcessConfig returns the process config the generator binary is launched
// with for the given request.
func (g *Generator) ProcessConfig(req *datagen.Request, manifestPath string) pexec.ProcessConfig {
	var args []string

	args = append(args, "-manifest="+manifestPath)
	args = append(args, "-output_dir="+req.OutputDir)
	args = append(args, "-env="+req.SceneName)
	args = append(args, "-label_type="+string(req.LabelType))
	args = append(args, "-num_classes="+strconv.Itoa(req.NumClasses))
	args = append(args, "-num_points="+strconv.Itoa(req.NumPoints))
	args = append(args, "-seed="+strconv.FormatInt(req.Seed, 10))
	args = append(args, "-visualize="+strconv.FormatBool(req.Visualize))
	args = append(args, g.extraArgs...)

	return pexec.ProcessConfig{
		ID:      "datagen_" + req.SceneName,
		Name:    g.binaryPath,
		Args:    args,
		Log:     true,
		OneShot: true,
	}
}

// Generate writes the request manifest and runs the generator binary to
// completion.
func (g *Generator) Generate(ctx context.Context, req *datagen.Request) (err error) {
	if err := req.Validate(); err != nil {
		return err
	}

	manifestPath, err := g.writeManifest(req)
	if err != nil {
		return err
	}

	procManager := pexec.NewProcessManager(g.logger)
	defer func() {
		err = multierr.Combine(err, procManager.Stop())
	}()

	if _, err := procManager.AddProcessFromConfig(ctx, g.ProcessConfig(req, manifestPath)); err != nil {
		return errors.Wrap(err, "problem adding the generator process")
	}

	g.logger.Debugw("starting the generator process", "binary", g.binaryPath, "run_id", req.ID)

	if err := procManager.Start(ctx); err != nil {
		return errors.Wrap(err, "problem running the generator process")
	}
	return nil
}

func (g *Generator) writeManifest(req *datagen.Request) (string, error) {
	buf, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(req.OutputDir, manifestFilename)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return "", errors.Wrapf(err, "problem writing the request manifest %q", path)
	}
	return path, nil
}
