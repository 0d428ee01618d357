package roadbook

import (
	"errors"
	"testing"
	"time"
)

func TestNewZone(t *testing.T) {
	z, err := NewZone(0)
	if err != nil {
		t.Fatal(err)
	}
	if z.Number() != 0 || z.Profile().Len() != 0 {
		t.Errorf("NewZone(0) = (%v); want empty zr 0", z)
	}
	if d := time.Since(z.StartTime()); d < 0 || d > time.Second {
		t.Errorf("NewZone(0) start time %s is not now", z.StartTime())
	}

	z, err = NewZone(5)
	if err != nil || z.Number() != 5 {
		t.Errorf("NewZone(5) = (%v, %v); want zr 5", z, err)
	}

	if _, err := NewZone(-5); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewZone(-5) = (%v); want (%v)", err, ErrInvalidInput)
	}
}

func TestParseZoneNumber(t *testing.T) {
	for in, want := range map[string]int{"12": 12, "0": 0, " 7 ": 7, "3.0": 3} {
		n, err := ParseZoneNumber(in)
		if err != nil || n != want {
			t.Errorf("ParseZoneNumber(%q) = (%d, %v); want (%d, nil)", in, n, err, want)
		}
	}

	for _, in := range []string{"test", "3.5", "-5", "", "Inf"} {
		if _, err := ParseZoneNumber(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseZoneNumber(%q) = (%v); want (%v)", in, err, ErrInvalidInput)
		}
	}
}

func TestZoneStartTime(t *testing.T) {
	z, _ := NewZone(1)

	if err := z.SetStartTime(time.Time{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("SetStartTime(zero) = (%v); want (%v)", err, ErrInvalidInput)
	}

	start := time.Date(2020, 1, 11, 13, 37, 42, 0, time.UTC)
	if err := z.SetStartTime(start); err != nil {
		t.Fatal(err)
	}
	if !z.StartTime().Equal(start) {
		t.Errorf("StartTime() = (%s); want (%s)", z.StartTime(), start)
	}
}

func TestZoneSpeeds(t *testing.T) {
	z, _ := NewZone(3)
	s := mustSpeed(t, 0.5, 42.5)

	if err := z.AddSpeed(s); err != nil {
		t.Fatal(err)
	}
	if err := z.AddSpeed(s); !errors.Is(err, ErrDuplicateDistance) {
		t.Errorf("AddSpeed(duplicate) = (%v); want (%v)", err, ErrDuplicateDistance)
	}

	got, ok, err := z.Speed(0.4, Next)
	if err != nil || !ok || got != s {
		t.Errorf("Speed(0.4, next) = (%v, %t, %v); want (%v, true, nil)", got, ok, err, s)
	}

	z.DeleteSpeed(0.5)
	if _, ok, _ := z.Speed(0.5, Exact); ok {
		t.Errorf("Speed(0.5, exact) found a deleted speed")
	}
}
