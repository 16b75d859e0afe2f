package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/quadsnake/config"
)

// parseConfig builds the runtime config: defaults, then the -config file,
// then any flags given explicitly on the command line
func parseConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("quadsnake", flag.ContinueOnError)
	fs.SetOutput(stderr)

	path := fs.String("config", "", "path to a YAML config file")
	debug := fs.Bool("debug", false, "write a debug log to the log directory")
	logDir := fs.String("logdir", "", "log directory (default \"logs\")")
	seed := fs.Uint64("seed", 0, "food placement seed, 0 for random")
	tick := fs.Duration("tick", 0, "time between snake steps (default 200ms)")
	remoteOn := fs.Bool("remote", false, "serve the browser touch pad")
	listen := fs.String("listen", "", "touch pad listen address (default 127.0.0.1:8420)")
	allowRemote := fs.Bool("allow-remote", false, "accept touch pad clients from non-loopback addresses")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *path != "" {
		loaded, err := config.Load(*path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debug
		case "logdir":
			cfg.LogDir = *logDir
		case "seed":
			cfg.Seed = *seed
		case "tick":
			cfg.TickInterval = *tick
		case "remote":
			cfg.Remote.Enabled = *remoteOn
		case "listen":
			cfg.Remote.Listen = *listen
		case "allow-remote":
			cfg.Remote.AllowRemote = *allowRemote
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
