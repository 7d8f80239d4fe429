package dawg_test

import (
	"fmt"

	"github.com/wordlattice/lattice/pkg/dawg"
)

func Example() {
	d := dawg.New()
	for _, w := range []string{"eat", "seat", "heat"} {
		if err := d.Insert(w); err != nil {
			fmt.Println("skipping:", err)
		}
	}

	fmt.Println("nodes before:", d.NodeCount())
	merged := d.Minimize()
	fmt.Println("merged:", merged)
	fmt.Println("nodes after:", d.NodeCount())
	fmt.Println("words:", d.Words())
	// Output:
	// nodes before: 13
	// merged: 6
	// nodes after: 7
	// words: [eat heat seat]
}

func ExampleDAWG_Validate() {
	d := dawg.New()
	_ = d.Insert("cat")
	_ = d.Insert("cats")
	d.Minimize()

	report := d.Validate()
	fmt.Println("ok:", report.OK)
	fmt.Println("dead ends:", report.DeadEnds)
	// Output:
	// ok: true
	// dead ends: 0
}

func ExampleDAWG_AssignLevels() {
	d := dawg.New()
	_ = d.Insert("eat")
	_ = d.Insert("seat")
	d.Minimize()
	d.AssignLevels()

	fmt.Println("sink level:", d.Sink().Level)
	// Output:
	// sink level: 5
}
