package main

import (
	"fmt"
	"io"
	"os"

	"github.com/evolib/evo/pkg/config"
)

// ReadConfig returns the defaults when configDirPath is empty.
func ReadConfig(w io.Writer, configDirPath string) *config.Config {
	if configDirPath == "" {
		return config.Default()
	}
	conf, err := config.Read(os.DirFS(configDirPath), ".")
	if err != nil {
		fmt.Fprintf(w, "reading config: %s\n", err)
		return nil
	}
	return conf
}
