// statesearch runs the graph and game tree searches on files.
//
// Usage:
//
//	statesearch solve maze.yaml [--algorithm=astar] [--heuristic=manhattan]
//	statesearch play tree.yaml [--algorithm=alphabeta] [--depth=3]
//	statesearch match tree.yaml --agents=alphabeta,random [--games=10] [--out=experiments]
//	statesearch bench maze.yaml [--algorithms=bfs,astar] [--out=experiments]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
