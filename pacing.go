package main

import (
	"sync"
	"time"

	"github.com/jasonlvhit/gocron"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/cadenceur/pacer"
)

// pacing logs the target distance of a pacer on a schedule.
type pacing struct {
	lock sync.Mutex
	p    *pacer.Pacer
	now  func() time.Time
}

func newPacing(p *pacer.Pacer) *pacing {
	return &pacing{p: p, now: time.Now}
}

// tick logs and returns the distance to be at right now.
func (pc *pacing) tick() float64 {
	pc.lock.Lock()
	defer pc.lock.Unlock()

	now := pc.now()
	fields := log.Fields{
		"elapsed": now.Sub(pc.p.StartTime()).Truncate(time.Second).String(),
	}
	if n, err := pc.p.ZoneNumber(); err == nil {
		fields["zr"] = n
	}
	logger := log.WithFields(fields)

	d, err := pc.p.DistanceAt(now)
	if err != nil {
		logger.WithError(err).Error("Error computing distance")
		return 0
	}
	logger.Infof("Target %.1f", d)
	return d
}

// schedule ticks every interval seconds until the returned func is called.
func (pc *pacing) schedule(interval uint64) (func(), error) {
	s := gocron.NewScheduler()
	job := s.Every(interval).Seconds()
	if err := job.Do(pc.tick); err != nil {
		return nil, err
	}

	stopped := s.Start()
	return func() {
		stopped <- true
		s.Clear()
	}, nil
}
