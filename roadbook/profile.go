package roadbook

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Profile is the set of speeds of a zone, kept sorted by distance.
type Profile struct {
	speeds []Speed
}

func cmpDistance(s Speed, distance float64) int {
	switch {
	case s.Distance < distance:
		return -1
	case s.Distance > distance:
		return 1
	}
	return 0
}

func (p *Profile) search(distance float64) (int, bool) {
	return slices.BinarySearchFunc(p.speeds, distance, cmpDistance)
}

// Add inserts s, refusing a second speed at the same distance.
func (p *Profile) Add(s Speed) error {
	i, found := p.search(s.Distance)
	if found {
		return fmt.Errorf("%s: %w", s, ErrDuplicateDistance)
	}
	p.speeds = slices.Insert(p.speeds, i, s)
	return nil
}

// Remove deletes the speed at distance, if any.
func (p *Profile) Remove(distance float64) {
	if i, found := p.search(distance); found {
		p.speeds = slices.Delete(p.speeds, i, i+1)
	}
}

// Lookup finds the speed matching distance according to g. ok is false when
// no speed qualifies.
func (p *Profile) Lookup(distance float64, g Getter) (s Speed, ok bool, err error) {
	if err := checkDistance(distance); err != nil {
		return Speed{}, false, err
	}

	i, found := p.search(distance)
	switch g {
	case Exact:
		if !found {
			return Speed{}, false, nil
		}
	case Next:
		// i is already the first speed at or beyond distance
		if i == len(p.speeds) {
			return Speed{}, false, nil
		}
	case Previous:
		if !found {
			if i == 0 {
				return Speed{}, false, nil
			}
			i--
		}
	default:
		return Speed{}, false, fmt.Errorf("unknown %s: %w", g, ErrInvalidInput)
	}
	return p.speeds[i], true, nil
}

// Successor returns the first speed strictly beyond distance.
func (p *Profile) Successor(distance float64) (Speed, bool) {
	i, found := p.search(distance)
	if found {
		i++
	}
	if i >= len(p.speeds) {
		return Speed{}, false
	}
	return p.speeds[i], true
}

func (p *Profile) Len() int {
	return len(p.speeds)
}

// Speeds returns a copy of the speeds by ascending distance.
func (p *Profile) Speeds() []Speed {
	return slices.Clone(p.speeds)
}
