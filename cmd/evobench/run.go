package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/evolib/evo/pkg/bench"
	"github.com/evolib/evo/pkg/cli"
	"github.com/evolib/evo/pkg/config"
	"github.com/phuslu/log"
)

// run executes the benchmarks and prints the results to w.
// Partial results are printed when interrupted or timed out.
func run(w, logOut io.Writer, c cli.CommandRun) (ok bool) {
	conf := ReadConfig(w, c.ConfigDirPath)
	if conf == nil {
		return false
	}

	impls := conf.Implementations
	if c.Only != nil {
		impls = []config.Implementation{*c.Only}
	}

	l := log.Logger{
		Level:      conf.LogLevel,
		TimeFormat: "15:04:05.000",
		Writer:     &log.IOWriter{Writer: logOut},
	}
	l.Context = log.NewContext(nil).
		Int64("seed", conf.Seed).Value()

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	l.Info().
		Ints("sizes", conf.Sizes).
		Int("rounds", conf.Rounds).
		Dur("timeout", conf.Timeout).
		Msg("starting")

	results, err := bench.New(conf, l).Run(ctx, impls)
	if werr := bench.Write(w, results); werr != nil {
		l.Error().Err(werr).Msg("writing results")
		return false
	}
	if err != nil {
		fmt.Fprintf(w, "benchmark: %s\n", err)
		return false
	}
	return true
}

func list(w io.Writer) {
	for _, n := range config.Implementations.Names() {
		fmt.Fprintln(w, n)
	}
}
