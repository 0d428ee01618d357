package roadbook

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

type fileZone struct {
	Number    int       `json:"number"`
	StartTime time.Time `json:"startTime"`
	Speeds    []Speed   `json:"speeds"`
}

type file struct {
	Zones []fileZone `json:"zones"`
}

// Decode reads a JSON road book. No zone is loaded in the result.
func Decode(r io.Reader) (*Roadbook, error) {
	var f file
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding roadbook: %w", err)
	}

	rb := New()
	for _, fz := range f.Zones {
		z, err := NewZone(fz.Number)
		if err != nil {
			return nil, err
		}
		if !fz.StartTime.IsZero() {
			if err := z.SetStartTime(fz.StartTime); err != nil {
				return nil, err
			}
		}
		for i, fs := range fz.Speeds {
			s, err := NewSpeed(fs.Distance, fs.Speed)
			if err != nil {
				return nil, fmt.Errorf("zr %d speed %d: %w", fz.Number, i, err)
			}
			if err := z.AddSpeed(s); err != nil {
				return nil, err
			}
		}
		if err := rb.Add(z); err != nil {
			return nil, err
		}
	}
	return rb, nil
}

// ReadFile loads the road book stored at path.
func ReadFile(path string) (*Roadbook, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Errorf("Error reading file '%s'", path)
		return nil, err
	}
	defer f.Close()

	rb, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("Loaded %d zr from '%s'", rb.Len(), path)
	return rb, nil
}
