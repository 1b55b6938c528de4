package main

import (
	"fmt"
	"os"

	"github.com/chronos-tachyon/hufftree/cmd/huffproc/app"
)

func main() {
	if err := app.NewRootCommandeer().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "huffproc: %v\n", err)
		os.Exit(1)
	}
}
