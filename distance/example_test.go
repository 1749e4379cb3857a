package distance_test

import (
	"fmt"

	"github.com/A-Alaa/aleph/diagram"
	"github.com/A-Alaa/aleph/distance"
)

func ExampleWasserstein() {
	d1 := diagram.New(1)
	d1.Add(0, 2)

	// Against an empty diagram the only option is projecting the point
	// onto the diagonal, at half its persistence.
	d2 := diagram.New(1)

	w, err := distance.Wasserstein(d1, d2, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(w)
	// Output: 1
}

func ExampleHausdorff() {
	d1 := diagram.New(0)
	d1.Add(0, 1)

	d2 := diagram.New(0)
	d2.Add(0, 2)

	fmt.Println(distance.Hausdorff(d1, d2, distance.Infinity{}))
	// Output: 1
}
