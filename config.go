package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/peterbourgon/ff"

	"github.com/a-bouts/cadenceur/roadbook"
)

type config struct {
	roadbook   string
	zone       int
	start      time.Time
	at         time.Time
	interval   uint64
	debug      bool
	logJSON    bool
	cpuprofile bool
}

func parseTime(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("-%s %q is not a RFC3339 time: %w", name, value, roadbook.ErrInvalidInput)
	}
	return t, nil
}

// parseConfig gives flags precedence over the file given by -config, and
// that file precedence over ROADBOOK, ZONE, ... environment variables.
func parseConfig(args []string) (config, error) {
	fs := flag.NewFlagSet("cadenceur", flag.ContinueOnError)
	var (
		roadbookFile = fs.String("roadbook", "roadbook.json", "road book file")
		zone         = fs.String("zone", "1", "number of the zr to pace")
		start        = fs.String("start", "", "override the zr start time (RFC3339)")
		at           = fs.String("at", "", "print the distance at this time (RFC3339) and exit")
		interval     = fs.Uint64("interval", 1, "seconds between two distances")
		debug        = fs.Bool("debug", false, "debug logs")
		logJSON      = fs.Bool("log-json", false, "log as json")
		cpuprofile   = fs.Bool("cpuprofile", false, "write a cpu profile")
		_            = fs.String("config", "", "config file")
	)
	err := ff.Parse(fs, args,
		ff.WithEnvVarNoPrefix(),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser))
	if err != nil {
		return config{}, err
	}

	cfg := config{
		roadbook:   *roadbookFile,
		interval:   *interval,
		debug:      *debug,
		logJSON:    *logJSON,
		cpuprofile: *cpuprofile,
	}
	if cfg.interval == 0 {
		return config{}, fmt.Errorf("-interval must be positive: %w", roadbook.ErrInvalidInput)
	}
	if cfg.zone, err = roadbook.ParseZoneNumber(*zone); err != nil {
		return config{}, err
	}
	if cfg.start, err = parseTime("start", *start); err != nil {
		return config{}, err
	}
	if cfg.at, err = parseTime("at", *at); err != nil {
		return config{}, err
	}
	return cfg, nil
}
