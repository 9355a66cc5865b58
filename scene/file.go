package scene

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
)

// File is the schema of a user-provided scene layout on disk.
type File struct {
	Name      string           `json:"name"`
	DOF       int              `json:"dof,omitempty"`
	Obstacles []ObstacleConfig `json:"obstacles"`
}

// LoadFile reads a scene layout from a JSON file. Environment variables
// referenced in the document are substituted before parsing. A missing name
// defaults to the file's base name.
func LoadFile(path string) (*File, error) {
	buf, err := envsubst.ReadFile(path)
	if err != nil {
		return nil, err
	}

	file := &File{}
	if err := json.Unmarshal(buf, file); err != nil {
		return nil, errors.Wrapf(err, "cannot parse scene file %q", path)
	}
	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if len(file.Obstacles) == 0 {
		return nil, errors.Errorf("scene file %q has no obstacles", path)
	}
	return file, nil
}

// Parse validates the layout and converts it to obstacles, preserving order.
func (f *File) Parse() ([]Obstacle, error) {
	obstacles := make([]Obstacle, 0, len(f.Obstacles))
	for i, config := range f.Obstacles {
		obstacle, err := config.ParseConfig()
		if err != nil {
			return nil, errors.Wrapf(err, "obstacle %d in scene %q", i, f.Name)
		}
		obstacles = append(obstacles, obstacle)
	}
	return obstacles, nil
}
