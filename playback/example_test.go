package playback_test

import (
	"fmt"

	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/playback"
	"github.com/katalvlaran/searchtrace/search"
)

// ExampleController replays a finished BFS run step by step, the way an
// animating front end would — minus the ticker, which stays with the
// caller.
func ExampleController() {
	g := core.NewGraph()
	g.AddVertex("A", core.WithPosition(0, 0))
	g.AddVertex("B", core.WithPosition(100, 0))
	g.AddVertex("C", core.WithPosition(200, 0))
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.SetSource("A")
	g.SetGoal("C")

	tr, err := search.Run(search.AlgorithmBFS, g.Snapshot())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ctl, err := playback.NewController(tr, playback.WithSpeed(10))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for {
		s := ctl.Current()
		fmt.Printf("%d: %s %s\n", s.Index, s.Node, s.Action)
		if !ctl.Next() {
			break
		}
	}
	fmt.Println("delay per step:", ctl.Interval())
	// Output:
	// 0: A Expand
	// 1: B Expand
	// 2: C Goal-Found
	// delay per step: 100ms
}
