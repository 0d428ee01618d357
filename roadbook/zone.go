package roadbook

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Zone is a regulated zone (ZR): a number, a start time and the speeds to
// hold along it.
type Zone struct {
	number    int
	startTime time.Time
	profile   Profile
}

// NewZone creates an empty zone starting now.
func NewZone(number int) (*Zone, error) {
	if number < 0 {
		return nil, fmt.Errorf("zr number %d must be positive: %w", number, ErrInvalidInput)
	}
	return &Zone{number: number, startTime: time.Now()}, nil
}

// ParseZoneNumber reads a zone number typed by a user. "12" and "12.0" are
// accepted, "3.5" and "-5" are not.
func ParseZoneNumber(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 {
		return 0, fmt.Errorf("zr number %q must be an integer: %w", s, ErrInvalidInput)
	}
	if f < 0 {
		return 0, fmt.Errorf("zr number %q must be positive: %w", s, ErrInvalidInput)
	}
	return int(f), nil
}

func (z *Zone) Number() int {
	return z.number
}

func (z *Zone) StartTime() time.Time {
	return z.startTime
}

func (z *Zone) SetStartTime(t time.Time) error {
	if t.IsZero() {
		return fmt.Errorf("zr %d start time must be set: %w", z.number, ErrInvalidInput)
	}
	z.startTime = t
	return nil
}

// Profile gives access to the speeds owned by the zone.
func (z *Zone) Profile() *Profile {
	return &z.profile
}

func (z *Zone) AddSpeed(s Speed) error {
	if err := z.profile.Add(s); err != nil {
		return fmt.Errorf("zr %d: %w", z.number, err)
	}
	return nil
}

func (z *Zone) DeleteSpeed(distance float64) {
	z.profile.Remove(distance)
}

func (z *Zone) Speed(distance float64, g Getter) (Speed, bool, error) {
	return z.profile.Lookup(distance, g)
}

func (z *Zone) String() string {
	return fmt.Sprintf("zr %d at %s %v", z.number, z.startTime.Format(time.RFC3339), z.profile.speeds)
}
