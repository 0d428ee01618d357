// Package pacer projects the elapsed time in a regulated zone onto the
// distance that should have been covered at the mandated speeds.
package pacer

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/cadenceur/roadbook"
)

var (
	// ErrNotArmed is returned when no zone has been entered.
	ErrNotArmed = errors.New("no zr entered")
	// ErrEmptyProfile is returned when the entered zone has no speed.
	ErrEmptyProfile = errors.New("zr has no speed")
)

// Pacer is not safe for concurrent use.
type Pacer struct {
	zone      *roadbook.Zone
	startTime time.Time
	now       func() time.Time
}

type Option func(*Pacer)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Pacer) {
		p.now = now
	}
}

// New returns an idle pacer started now.
func New(opts ...Option) *Pacer {
	p := &Pacer{now: time.Now}
	for _, o := range opts {
		o(p)
	}
	p.startTime = p.now()
	return p
}

// Enter attaches zone and takes over its start time.
func (p *Pacer) Enter(zone *roadbook.Zone) error {
	if zone == nil {
		return fmt.Errorf("entering nil zr: %w", roadbook.ErrInvalidInput)
	}
	p.zone = zone
	p.startTime = zone.StartTime()
	log.Debugf("Enter zr %d started at %s", zone.Number(), p.startTime.Format(time.RFC3339))
	return nil
}

// Reset detaches the zone and restarts the clock now.
func (p *Pacer) Reset() {
	p.zone = nil
	p.startTime = p.now()
	log.Debug("Reset pacer")
}

func (p *Pacer) Start() {
	p.startTime = p.now()
}

// StartAt overrides the start time, whether a zone is entered or not.
func (p *Pacer) StartAt(t time.Time) {
	p.startTime = t
}

func (p *Pacer) StartTime() time.Time {
	return p.startTime
}

func (p *Pacer) Armed() bool {
	return p.zone != nil
}

func (p *Pacer) ZoneNumber() (int, error) {
	if p.zone == nil {
		return 0, ErrNotArmed
	}
	return p.zone.Number(), nil
}

// Distance is DistanceAt now.
func (p *Pacer) Distance() (float64, error) {
	return p.DistanceAt(p.now())
}

// DistanceAt returns the distance covered at t when driving each speed of
// the zone from its distance up to the next one. The last speed holds
// forever.
func (p *Pacer) DistanceAt(t time.Time) (float64, error) {
	if p.zone == nil {
		return 0, ErrNotArmed
	}
	if t.Before(p.startTime) {
		return 0, nil
	}
	profile := p.zone.Profile()

	current, ok, err := profile.Lookup(0, roadbook.Next)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("zr %d: %w", p.zone.Number(), ErrEmptyProfile)
	}

	elapsed := t.Sub(p.startTime).Seconds()
	distance := 0.0
	for elapsed >= 0 {
		next, ok := profile.Successor(current.Distance)
		d := current.Speed * elapsed
		if !ok || distance+d <= next.Distance {
			return distance + d, nil
		}

		distance = next.Distance
		elapsed -= (next.Distance - current.Distance) / current.Speed
		current = next
	}
	return distance, nil
}
