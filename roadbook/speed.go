package roadbook

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput reports a malformed distance, speed, zone number or getter.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateDistance reports a speed added where one already exists.
	ErrDuplicateDistance = errors.New("speed already exists at this distance")
)

// Speed holds from Distance until the next speed of the profile.
type Speed struct {
	Distance float64 `json:"distance"`
	Speed    float64 `json:"speed"`
}

// NewSpeed checks distance >= 0 and speed > 0.
func NewSpeed(distance, speed float64) (Speed, error) {
	if err := checkDistance(distance); err != nil {
		return Speed{}, err
	}
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed <= 0 {
		return Speed{}, fmt.Errorf("speed %v can't be negative or null: %w", speed, ErrInvalidInput)
	}
	return Speed{Distance: distance, Speed: speed}, nil
}

func (s Speed) String() string {
	return "{" + strconv.FormatFloat(s.Distance, 'f', -1, 64) + ";" + strconv.FormatFloat(s.Speed, 'f', -1, 64) + "}"
}

func checkDistance(distance float64) error {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return fmt.Errorf("distance %v can't be negative: %w", distance, ErrInvalidInput)
	}
	return nil
}

// ParseDistance reads a distance typed by a user.
func ParseDistance(s string) (float64, error) {
	d, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("distance %q must be a float: %w", s, ErrInvalidInput)
	}
	if err := checkDistance(d); err != nil {
		return 0, err
	}
	return d, nil
}

// ParseSpeed reads a "distance;speed" pair, as printed by String, or a lone
// speed value placed at distance 0.
func ParseSpeed(s string) (Speed, error) {
	s = strings.Trim(strings.TrimSpace(s), "{}")
	d, v := "0", s
	if i := strings.IndexByte(s, ';'); i >= 0 {
		d, v = s[:i], s[i+1:]
	}
	distance, err := ParseDistance(d)
	if err != nil {
		return Speed{}, err
	}
	speed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return Speed{}, fmt.Errorf("speed %q must be a float: %w", v, ErrInvalidInput)
	}
	return NewSpeed(distance, speed)
}

// Getter selects how a lookup matches a distance.
type Getter int

const (
	Previous Getter = -1
	Exact    Getter = 0
	Next     Getter = 1
)

func (g Getter) String() string {
	switch g {
	case Previous:
		return "previous"
	case Exact:
		return "exact"
	case Next:
		return "next"
	}
	return "getter(" + strconv.Itoa(int(g)) + ")"
}
