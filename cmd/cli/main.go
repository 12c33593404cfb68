// Command cli runs maintenance tasks and the scheduled jobs outside the HTTP
// server. Cron entries call it once per job.
package main

import (
	"os"

	"github.com/amirasaad/alphaquantum/infra/initializer"
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/fatih/color"
)

func main() {
	e := &env{
		load:         func(path string) (*config.App, error) { return config.Load(path) },
		initialize:   initializer.InitializeDependencies,
		readPassword: promptPassword,
	}
	err := newRootCmd(e).Execute()
	_ = e.close()
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
