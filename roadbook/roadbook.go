// Package roadbook holds the regulated zones of a rally road book and the
// speed profile of each of them.
package roadbook

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

var (
	// ErrNoLoadedZone is returned by the operations acting on the loaded zone
	// when none is loaded.
	ErrNoLoadedZone = errors.New("there is no loaded zr")
	// ErrDuplicateZone reports two zones sharing a number.
	ErrDuplicateZone = errors.New("zr already exists")
)

// Roadbook owns its zones, sorted by number. At most one of them is loaded.
type Roadbook struct {
	zones  []*Zone
	loaded int
}

func New() *Roadbook {
	return &Roadbook{loaded: -1}
}

func (r *Roadbook) index(number int) (int, bool) {
	return slices.BinarySearchFunc(r.zones, number, func(z *Zone, n int) int {
		return z.number - n
	})
}

func (r *Roadbook) insert(i int, z *Zone) {
	r.zones = slices.Insert(r.zones, i, z)
	if r.loaded >= i {
		r.loaded++
	}
}

// Add inserts a zone built elsewhere, typically by the file loader.
func (r *Roadbook) Add(z *Zone) error {
	i, found := r.index(z.number)
	if found {
		return fmt.Errorf("zr %d: %w", z.number, ErrDuplicateZone)
	}
	r.insert(i, z)
	return nil
}

// Load makes the zone numbered number the loaded one, creating it if needed.
func (r *Roadbook) Load(number int) (*Zone, error) {
	i, found := r.index(number)
	if !found {
		z, err := NewZone(number)
		if err != nil {
			return nil, err
		}
		r.insert(i, z)
		log.Debugf("Create zr %d", number)
	}
	r.loaded = i
	log.Debugf("Load zr %d", number)
	return r.zones[i], nil
}

func (r *Roadbook) Loaded() (*Zone, error) {
	if r.loaded < 0 {
		return nil, ErrNoLoadedZone
	}
	return r.zones[r.loaded], nil
}

func (r *Roadbook) Zone(number int) (*Zone, bool) {
	if i, found := r.index(number); found {
		return r.zones[i], true
	}
	return nil, false
}

// Zones returns the zones by ascending number.
func (r *Roadbook) Zones() []*Zone {
	return slices.Clone(r.zones)
}

func (r *Roadbook) Len() int {
	return len(r.zones)
}

// Delete removes the zone numbered number. It is unloaded first when loaded.
func (r *Roadbook) Delete(number int) {
	i, found := r.index(number)
	if !found {
		return
	}
	r.zones = slices.Delete(r.zones, i, i+1)
	switch {
	case r.loaded == i:
		r.loaded = -1
	case r.loaded > i:
		r.loaded--
	}
	log.Debugf("Delete zr %d", number)
}

// Reset replaces the zone numbered number by an empty one and loads it.
func (r *Roadbook) Reset(number int) (*Zone, error) {
	r.Delete(number)
	return r.Load(number)
}

func (r *Roadbook) AddSpeed(s Speed) error {
	z, err := r.Loaded()
	if err != nil {
		return err
	}
	return z.AddSpeed(s)
}

func (r *Roadbook) DeleteSpeed(distance float64) error {
	z, err := r.Loaded()
	if err != nil {
		return err
	}
	z.DeleteSpeed(distance)
	return nil
}

func (r *Roadbook) Speed(distance float64, g Getter) (Speed, bool, error) {
	z, err := r.Loaded()
	if err != nil {
		return Speed{}, false, err
	}
	return z.Speed(distance, g)
}
