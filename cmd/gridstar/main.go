// gridstar searches occupancy grids with A* and draws the result.
//
// Usage:
//
//	gridstar find --map a --from 1,1 --to 8,8 [--heuristic octile] [--live]
//	gridstar maps
//	gridstar show --map c
//	gridstar run -f scenario.yaml
//	gridstar demo [--pace 30ms]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
