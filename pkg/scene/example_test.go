package scene_test

import (
	"fmt"

	"github.com/matzehuels/keyedit/pkg/scene"
)

func ExampleScene_Press() {
	s := scene.New()
	a := scene.NewObject("a", 0, 0, 60, 60)
	b := scene.NewObject("b", 30, 30, 60, 60)
	s.Add(a)
	s.Add(b)

	// The overlap belongs to b, which is on top. Press a where b does not
	// cover it: a is raised and selected.
	s.Press(scene.Pointer{X: 20, Y: 20})
	s.Release()

	for _, o := range s.Objects() {
		fmt.Println(o.Label(), o.Status())
	}
	// Output:
	// b normal
	// a selected
}

func ExampleScene_SnapDelta() {
	s := scene.New(scene.WithGrid(30, 30))
	sn := s.SnapDelta(scene.Rect{X: 28, Y: 61, W: 60, H: 60})
	fmt.Println(sn.DX, sn.SourceX)
	fmt.Println(sn.DY, sn.SourceY)
	// Output:
	// 2 grid
	// -1 grid
}

func ExampleScene_Motion() {
	s := scene.New()
	s.Add(scene.NewObject("key", 100, 100, 60, 60))

	// Grab the bottom-right handle and pull it out by 30 units.
	s.Press(scene.Pointer{X: 158, Y: 158})
	s.Motion(scene.Pointer{X: 188, Y: 168})
	s.Release()

	fmt.Printf("%+v\n", s.Objects()[0].Rect())
	// Output:
	// {X:100 Y:100 W:90 H:70}
}
