package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func writeTempScene(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	test.That(t, os.WriteFile(path, []byte(contents), 0o644), test.ShouldBeNil)
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeTempScene(t, "corridor.json", `{
		"name": "corridor",
		"dof": 3,
		"obstacles": [
			{"type": "rect", "x": 0, "y": 3, "size_x": 16, "size_y": 0.5, "class": 1},
			{"type": "circle", "x": -4, "y": -3, "r": 1}
		]
	}`)

	file, err := LoadFile(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, file.Name, test.ShouldEqual, "corridor")
	test.That(t, file.DOF, test.ShouldEqual, 3)

	obstacles, err := file.Parse()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, obstacles, test.ShouldResemble, []Obstacle{
		NewRect(r2.Point{X: 0, Y: 3}, r2.Point{X: 16, Y: 0.5}).WithClass(1),
		NewCircle(r2.Point{X: -4, Y: -3}, 1),
	})
}

func TestLoadFileDefaultsName(t *testing.T) {
	path := writeTempScene(t, "my_scene.json", `{"obstacles": [{"type": "circle", "x": 0, "y": 0, "r": 1}]}`)
	file, err := LoadFile(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, file.Name, test.ShouldEqual, "my_scene")
}

func TestLoadFileSubstitutesEnv(t *testing.T) {
	t.Setenv("TEST_SCENE_RADIUS", "2.5")
	path := writeTempScene(t, "env.json", `{
		"name": "env",
		"obstacles": [{"type": "circle", "x": 0, "y": 0, "r": ${TEST_SCENE_RADIUS}}]
	}`)

	file, err := LoadFile(path)
	test.That(t, err, test.ShouldBeNil)
	obstacles, err := file.Parse()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, obstacles[0].Radius, test.ShouldEqual, 2.5)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	test.That(t, err, test.ShouldNotBeNil)

	path := writeTempScene(t, "broken.json", `{"name": "broken", "obstacles": [`)
	_, err = LoadFile(path)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot parse scene file")

	path = writeTempScene(t, "empty.json", `{"name": "empty", "obstacles": []}`)
	_, err = LoadFile(path)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "has no obstacles")

	path = writeTempScene(t, "baddims.json", `{"name": "baddims", "obstacles": [{"type": "circle", "x": 0, "y": 0, "r": -1}]}`)
	file, err := LoadFile(path)
	test.That(t, err, test.ShouldBeNil)
	_, err = file.Parse()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `obstacle 0 in scene "baddims"`)
}
