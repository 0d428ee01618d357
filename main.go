package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/cadenceur/pacer"
	"github.com/a-bouts/cadenceur/roadbook"
)

type stopper interface {
	Stop()
}

type noProfile struct{}

func (noProfile) Stop() {}

// startProfile leaves signal handling to the pacing loop.
func startProfile(enabled bool, path string) stopper {
	if !enabled {
		return noProfile{}
	}
	return profile.Start(profile.NoShutdownHook, profile.ProfilePath(path))
}

func main() {
	envErr := godotenv.Load()

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("Error parsing configuration")
	}
	initLogger(cfg)
	if envErr != nil {
		log.Debug("No .env file found (using environment variables)")
	}

	prof := startProfile(cfg.cpuprofile, ".")
	err = run(cfg, os.Stdout, func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	})
	prof.Stop()
	if err != nil {
		log.WithError(err).Fatal("Error pacing")
	}
}

// run prints a single distance when cfg.at is set, otherwise paces until
// wait returns.
func run(cfg config, out io.Writer, wait func()) error {
	rb, err := roadbook.ReadFile(cfg.roadbook)
	if err != nil {
		return err
	}
	z, err := rb.Load(cfg.zone)
	if err != nil {
		return fmt.Errorf("loading zr %d: %w", cfg.zone, err)
	}

	p := pacer.New()
	if err := p.Enter(z); err != nil {
		return fmt.Errorf("entering zr %d: %w", cfg.zone, err)
	}
	if !cfg.start.IsZero() {
		p.StartAt(cfg.start)
	}

	if !cfg.at.IsZero() {
		d, err := p.DistanceAt(cfg.at)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%.1f\n", d)
		return nil
	}

	log.Infof("Pace zr %d from %s every %ds", cfg.zone, p.StartTime().String(), cfg.interval)

	pc := newPacing(p)
	stop, err := pc.schedule(cfg.interval)
	if err != nil {
		return fmt.Errorf("scheduling: %w", err)
	}

	wait()

	stop()
	pc.tick()
	return nil
}
