package scene

import (
	"encoding/json"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestObstacleConfigParse(t *testing.T) {
	class := 1
	testCases := []struct {
		name    string
		config  ObstacleConfig
		success bool
	}{
		{"circle", ObstacleConfig{Type: "circle", X: -4, Y: -3, R: 1}, true},
		{"circle bad dims", ObstacleConfig{Type: "circle", R: -1}, false},
		{"infer circle", ObstacleConfig{X: 1, Y: 2, R: 0.5}, true},
		{"rect", ObstacleConfig{Type: "rect", X: 4, Y: 3, SizeX: 2, SizeY: 2}, true},
		{"rect bad dims", ObstacleConfig{Type: "rect", SizeX: 2, SizeY: -2}, false},
		{"infer rect", ObstacleConfig{X: 0, Y: 3, SizeX: 16, SizeY: 0.5}, true},
		{"tagged", ObstacleConfig{Type: "circle", X: -3, Y: 6, R: 1, Class: &class}, true},
		{"bad type", ObstacleConfig{Type: "triangle", X: 1, Y: 1, R: 1}, false},
		{"no dims", ObstacleConfig{X: 1, Y: 1}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			obstacle, err := testCase.config.ParseConfig()
			if !testCase.success {
				test.That(t, err, test.ShouldNotBeNil)
				return
			}
			test.That(t, err, test.ShouldBeNil)
			test.That(t, obstacle.Validate(), test.ShouldBeNil)
			test.That(t, obstacle.Center, test.ShouldResemble, r2.Point{X: testCase.config.X, Y: testCase.config.Y})

			// The config form survives a JSON round trip.
			md, err := json.Marshal(obstacle)
			test.That(t, err, test.ShouldBeNil)
			roundTrip := ObstacleConfig{}
			test.That(t, json.Unmarshal(md, &roundTrip), test.ShouldBeNil)
			parsed, err := roundTrip.ParseConfig()
			test.That(t, err, test.ShouldBeNil)
			test.That(t, parsed, test.ShouldResemble, obstacle)
		})
	}
}

func TestObstacleValidate(t *testing.T) {
	test.That(t, NewCircle(r2.Point{}, 1).Validate(), test.ShouldBeNil)
	test.That(t, NewCircle(r2.Point{}, 0).Validate(), test.ShouldNotBeNil)
	test.That(t, NewRect(r2.Point{}, r2.Point{X: 1, Y: 1}).Validate(), test.ShouldBeNil)
	test.That(t, NewRect(r2.Point{}, r2.Point{X: 1, Y: 0}).Validate(), test.ShouldNotBeNil)
	test.That(t, Obstacle{Kind: Kind("blob")}.Validate(), test.ShouldNotBeNil)
}

func TestObstacleBounds(t *testing.T) {
	bounds := NewCircle(r2.Point{X: -4, Y: -3}, 1).Bounds()
	test.That(t, bounds, test.ShouldResemble, Region{Min: r2.Point{X: -5, Y: -4}, Max: r2.Point{X: -3, Y: -2}})

	bounds = NewRect(r2.Point{X: 0, Y: 3}, r2.Point{X: 16, Y: 0.5}).Bounds()
	test.That(t, bounds, test.ShouldResemble, Region{Min: r2.Point{X: -8, Y: 2.75}, Max: r2.Point{X: 8, Y: 3.25}})
}

func TestObstacleString(t *testing.T) {
	test.That(t, NewCircle(r2.Point{X: -4, Y: -3}, 1).String(), test.ShouldEqual, "circle r=1.00 at (-4.00, -3.00)")
	test.That(t,
		NewRect(r2.Point{X: 5, Y: 0}, r2.Point{X: 2, Y: 2}).WithClass(0).String(),
		test.ShouldEqual, "rect 2.00x2.00 at (5.00, 0.00) class 0")
}

func TestWithClassCopies(t *testing.T) {
	plain := NewCircle(r2.Point{X: 1, Y: 1}, 1)
	tagged := plain.WithClass(1)
	test.That(t, plain.Class, test.ShouldBeNil)
	test.That(t, *tagged.Class, test.ShouldEqual, 1)
}
