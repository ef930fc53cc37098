package model

import (
	"fmt"
	"strings"
)

type ClefEnum int

const (
	ClefG ClefEnum = iota
	ClefF
	ClefC
	ClefPercussion
	ClefTAB
)

func (c ClefEnum) String() string {
	switch c {
	case ClefG:
		return "G"
	case ClefF:
		return "F"
	case ClefC:
		return "C"
	case ClefPercussion:
		return "percussion"
	case ClefTAB:
		return "TAB"
	}
	return fmt.Sprintf("ClefEnum(%d)", int(c))
}

// Clef is a clef instruction. Line counts staff lines from the bottom.
// OctaveChange is the octave transposition of the clef (-1 for the G clef
// with an 8 below).
type Clef struct {
	Sign         ClefEnum
	Line         int
	OctaveChange int
}

var (
	TrebleClef     = Clef{Sign: ClefG, Line: 2}
	BassClef       = Clef{Sign: ClefF, Line: 4}
	AltoClef       = Clef{Sign: ClefC, Line: 3}
	TenorClef      = Clef{Sign: ClefC, Line: 4}
	PercussionClef = Clef{Sign: ClefPercussion, Line: 3}
)

var clefNames = map[string]Clef{
	"treble":     TrebleClef,
	"treble8vb":  {Sign: ClefG, Line: 2, OctaveChange: -1},
	"treble8va":  {Sign: ClefG, Line: 2, OctaveChange: 1},
	"bass":       BassClef,
	"bass8vb":    {Sign: ClefF, Line: 4, OctaveChange: -1},
	"alto":       AltoClef,
	"tenor":      TenorClef,
	"soprano":    {Sign: ClefC, Line: 1},
	"percussion": PercussionClef,
	"tab":        {Sign: ClefTAB, Line: 5},
}

// ParseClef looks a clef up by its common name.
func ParseClef(name string) (Clef, error) {
	if c, ok := clefNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return Clef{}, fmt.Errorf("unknown clef %q", name)
}

func (c Clef) String() string {
	s := fmt.Sprintf("%v/%d", c.Sign, c.Line)
	if c.OctaveChange != 0 {
		s += fmt.Sprintf("%+d", c.OctaveChange)
	}
	return s
}
