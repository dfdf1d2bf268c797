// Package cli parses the command line of the evobench executable.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/evolib/evo/pkg/config"
)

const EnvConfigDir = "EVOBENCH_CONFIG"

// Command can be any of:
//
//	CommandRun
//	CommandList
type Command any

type CommandRun struct {
	// ConfigDirPath is empty when the defaults should be used.
	ConfigDirPath string

	// Only restricts the run to a single implementation when set.
	Only *config.Implementation
}

type CommandList struct{}

func Parse(w io.Writer, args []string) (cmd Command) {
	fm := fmt.Sprintf

	executableName := "evobench"
	if len(args) > 0 {
		executableName = filepath.Base(args[0])
	}

	flags := flag.NewFlagSet("evobench", flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() {
		writeLines(w,
			fm("usage: %s <command> [flags]", executableName),
			"",
			"commands available:",
			" run - runs the map benchmarks",
			" list - lists the available map implementations",
			" help - prints this help",
		)
	}

	parseFlags := func() (ok bool) {
		err := flags.Parse(args[2:])
		// flags will automatically call .Usage()
		return err == nil
	}

	if len(args) < 2 {
		flags.Usage()
		return nil
	}

	switch args[1] {
	case "run":
		c := CommandRun{}
		var only string

		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s run [-config <path>] [-only <name>]",
					executableName),
				"",
				"flags:",
				"-config <path>: defines the configuration directory path "+
					"(default: $"+EnvConfigDir+" or built-in defaults)",
				"-only <name>: benchmarks a single implementation ("+
					strings.Join(config.Implementations.Names(), ", ")+")",
				"",
				"environment variables:",
				fm("%s: configuration directory path", EnvConfigDir),
			)
		}

		flags.StringVar(&c.ConfigDirPath, "config", os.Getenv(EnvConfigDir), "")
		flags.StringVar(&only, "only", "", "")
		if !parseFlags() {
			return nil
		}

		if only != "" {
			v, err := config.Implementations.ParseValue(only)
			if err != nil {
				writeLines(w, fm("-only: %s", err))
				flags.Usage()
				return nil
			}
			c.Only = &v
		}

		cmd = c

	case "list":
		if !parseFlags() {
			return nil
		}
		cmd = CommandList{}

	case "help":
		PrintHelp(w)
		return

	default:
		flags.Usage()
		return nil
	}
	return cmd
}

func writeLines(w io.Writer, lines ...string) {
	for i := range lines {
		_, _ = w.Write([]byte(lines[i]))
		_, _ = w.Write([]byte("\n"))
	}
}

func PrintHelp(w io.Writer) {
	writeLines(w,
		"evobench measures the associative containers of evolib",
		"against each other and the builtin Go map.",
	)
}
