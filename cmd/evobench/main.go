package main

import (
	"fmt"
	"os"

	"github.com/evolib/evo/pkg/cli"
)

func main() {
	w := os.Stdout
	switch c := cli.Parse(w, os.Args).(type) {
	case cli.CommandRun:
		if !run(w, os.Stderr, c) {
			os.Exit(1)
		}
	case cli.CommandList:
		list(w)
	default:
		if c != nil {
			panic(fmt.Errorf("unexpected command: %#v", c))
		}
	}
}
