package model

import (
	"fmt"
	"strings"
)

// OctaveShift is an octave bracket in effect over a region of a staff.
type OctaveShift int

const (
	OctaveShiftNone OctaveShift = iota
	// VA8 (8va) notes sound an octave above where they are drawn.
	VA8
	// VB8 (8vb) notes sound an octave below where they are drawn.
	VB8
	// MA15 (15ma) notes sound two octaves above where they are drawn.
	MA15
	// MB15 (15mb) notes sound two octaves below where they are drawn.
	MB15
)

var octaveShiftNames = []string{"none", "8va", "8vb", "15ma", "15mb"}

// Octaves is how many octaves the drawn note is displaced from the
// sounding one.
func (o OctaveShift) Octaves() int {
	switch o {
	case VA8:
		return -1
	case VB8:
		return 1
	case MA15:
		return -2
	case MB15:
		return 2
	}
	return 0
}

func (o OctaveShift) String() string {
	if int(o) >= 0 && int(o) < len(octaveShiftNames) {
		return octaveShiftNames[o]
	}
	return fmt.Sprintf("OctaveShift(%d)", int(o))
}

func ParseOctaveShift(s string) (OctaveShift, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return OctaveShiftNone, nil
	}
	for i, name := range octaveShiftNames {
		if name == s {
			return OctaveShift(i), nil
		}
	}
	return OctaveShiftNone, fmt.Errorf("unknown octave shift %q", s)
}
