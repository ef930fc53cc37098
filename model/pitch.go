package model

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// NoteEnum is the fundamental note of a pitch, valued by its half tone
// distance from C.
type NoteEnum int

const (
	C NoteEnum = 0
	D NoteEnum = 2
	E NoteEnum = 4
	F NoteEnum = 5
	G NoteEnum = 7
	A NoteEnum = 9
	B NoteEnum = 11
)

// Steps lists the fundamental notes in staff order.
var Steps = []NoteEnum{C, D, E, F, G, A, B}

var stepNames = map[NoteEnum]string{C: "C", D: "D", E: "E", F: "F", G: "G", A: "A", B: "B"}

// Index is the position of the note within Steps, or -1.
func (n NoteEnum) Index() int {
	for i, s := range Steps {
		if s == n {
			return i
		}
	}
	return -1
}

func (n NoteEnum) String() string {
	if name, ok := stepNames[n]; ok {
		return name
	}
	return fmt.Sprintf("NoteEnum(%d)", int(n))
}

type AccidentalEnum int

const (
	AccidentalNone AccidentalEnum = iota
	Sharp
	Flat
	Natural
	DoubleSharp
	DoubleFlat
	TripleSharp
	TripleFlat
	QuarterToneSharp
	QuarterToneFlat
	ThreeQuarterToneSharp
	ThreeQuarterToneFlat
)

var accidentalAlters = map[AccidentalEnum]float64{
	AccidentalNone:        0,
	Sharp:                 1,
	Flat:                  -1,
	Natural:               0,
	DoubleSharp:           2,
	DoubleFlat:            -2,
	TripleSharp:           3,
	TripleFlat:            -3,
	QuarterToneSharp:      0.5,
	QuarterToneFlat:       -0.5,
	ThreeQuarterToneSharp: 1.5,
	ThreeQuarterToneFlat:  -1.5,
}

var accidentalSymbols = map[AccidentalEnum]string{
	AccidentalNone: "",
	Sharp:          "#",
	Flat:           "b",
	Natural:        "n",
	DoubleSharp:    "x",
	DoubleFlat:     "bb",
	TripleSharp:    "#x",
	TripleFlat:     "bbb",
}

// Alter is the alteration in half tones, fractional for quarter tones.
func (a AccidentalEnum) Alter() float64 {
	return accidentalAlters[a]
}

// HalfTones is the whole half tone part of the alteration.
func (a AccidentalEnum) HalfTones() int {
	return int(a.Alter())
}

// AccidentalFromHalfTones maps an alteration to its accidental. Zero maps
// to AccidentalNone.
func AccidentalFromHalfTones(alter int) (AccidentalEnum, bool) {
	switch alter {
	case 0:
		return AccidentalNone, true
	case 1:
		return Sharp, true
	case -1:
		return Flat, true
	case 2:
		return DoubleSharp, true
	case -2:
		return DoubleFlat, true
	case 3:
		return TripleSharp, true
	case -3:
		return TripleFlat, true
	}
	return AccidentalNone, false
}

func (a AccidentalEnum) String() string {
	switch a {
	case AccidentalNone:
		return "none"
	case Sharp:
		return "sharp"
	case Flat:
		return "flat"
	case Natural:
		return "natural"
	case DoubleSharp:
		return "double-sharp"
	case DoubleFlat:
		return "double-flat"
	case TripleSharp:
		return "triple-sharp"
	case TripleFlat:
		return "triple-flat"
	case QuarterToneSharp:
		return "quarter-sharp"
	case QuarterToneFlat:
		return "quarter-flat"
	case ThreeQuarterToneSharp:
		return "three-quarters-sharp"
	case ThreeQuarterToneFlat:
		return "three-quarters-flat"
	}
	return fmt.Sprintf("AccidentalEnum(%d)", int(a))
}

// Pitch is an immutable written pitch. Octave 4 holds middle C.
type Pitch struct {
	Step       NoteEnum
	Octave     int
	Accidental AccidentalEnum
}

func NewPitch(step NoteEnum, octave int, accidental AccidentalEnum) Pitch {
	return Pitch{Step: step, Octave: octave, Accidental: accidental}
}

// HalfTone is the pitch as a MIDI style key number, rounding quarter tones
// towards the fundamental note.
func (p Pitch) HalfTone() int {
	return (p.Octave+1)*12 + int(p.Step) + p.Accidental.HalfTones()
}

// MIDIKey clamps HalfTone into the MIDI key range.
func (p Pitch) MIDIKey() uint8 {
	ht := p.HalfTone()
	if ht < 0 {
		return 0
	}
	if ht > 127 {
		return 127
	}
	return uint8(ht)
}

func (p Pitch) String() string {
	sym, ok := accidentalSymbols[p.Accidental]
	if !ok {
		sym = "(" + p.Accidental.String() + ")"
	}
	return fmt.Sprintf("%s%s%d", p.Step, sym, p.Octave)
}

// ParsePitch reads pitches written like "C4", "f#3", "Bb2", "Ebb5" or "Cn4".
func ParsePitch(s string) (Pitch, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) < 2 {
		return Pitch{}, fmt.Errorf("pitch %q too short", s)
	}
	var p Pitch
	found := false
	for step, name := range stepNames {
		if strings.EqualFold(name, string(runes[0])) {
			p.Step = step
			found = true
		}
	}
	if !found {
		return Pitch{}, fmt.Errorf("pitch %q has invalid step", s)
	}
	i := 1
	for i < len(runes) && !unicode.IsDigit(runes[i]) && runes[i] != '-' {
		i++
	}
	switch acc := string(runes[1:i]); acc {
	case "":
		p.Accidental = AccidentalNone
	case "#", "s":
		p.Accidental = Sharp
	case "b", "f":
		p.Accidental = Flat
	case "n":
		p.Accidental = Natural
	case "x", "##":
		p.Accidental = DoubleSharp
	case "bb":
		p.Accidental = DoubleFlat
	case "#x", "###":
		p.Accidental = TripleSharp
	case "bbb":
		p.Accidental = TripleFlat
	default:
		return Pitch{}, fmt.Errorf("pitch %q has invalid accidental %q", s, acc)
	}
	octave, err := strconv.Atoi(string(runes[i:]))
	if err != nil {
		return Pitch{}, fmt.Errorf("pitch %q has invalid octave: %v", s, err)
	}
	p.Octave = octave
	return p, nil
}
