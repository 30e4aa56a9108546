package engine_test

import (
	"fmt"

	"github.com/plus3/tetoris/engine"
)

// ExampleLineReward shows the score table for lines cleared in a single tick.
func ExampleLineReward() {
	for lines := 0; lines <= 4; lines++ {
		fmt.Printf("%d lines: %d\n", lines, engine.LineReward(lines))
	}

	// Output:
	// 0 lines: 0
	// 1 lines: 40
	// 2 lines: 100
	// 3 lines: 300
	// 4 lines: 1200
}

// ExampleShape_Rotate prints a shape before and after a clockwise turn.
func ExampleShape_Rotate() {
	show := func(s engine.Shape) {
		for _, row := range s {
			for _, filled := range row {
				if filled {
					fmt.Print("#")
				} else {
					fmt.Print(".")
				}
			}
			fmt.Println()
		}
	}

	l := engine.ShapeOf(engine.KindL)
	show(l)
	fmt.Println()
	show(l.Rotate())

	// Output:
	// ###
	// #..
	//
	// ##
	// .#
	// .#
}

// ExampleEngine_Tick drops the first piece of a seeded game to the floor.
func ExampleEngine_Tick() {
	e := engine.New(engine.WithSeed(7))

	ticks := 0
	for {
		ticks++
		if res := e.Tick(); res.Locked {
			break
		}
	}

	snap := e.Snapshot()
	fmt.Println("locked within", engine.Rows, "ticks:", ticks <= engine.Rows)
	fmt.Println("score:", snap.Score, "game over:", snap.GameOver)
	fmt.Println("blocks on board:", snap.Board.Filled())

	// Output:
	// locked within 20 ticks: true
	// score: 0 game over: false
	// blocks on board: 4
}
