package model

import (
	"fmt"
	"math/big"
)

type NoteheadShape int

const (
	NoteheadNormal NoteheadShape = iota
	NoteheadX
	NoteheadDiamond
	NoteheadTriangle
	NoteheadSquare
	NoteheadRectangle
	NoteheadSlash
	NoteheadCircleX
)

var noteheadNames = []string{"normal", "x", "diamond", "triangle", "square", "rectangle", "slash", "circle-x"}

func (s NoteheadShape) String() string {
	if int(s) >= 0 && int(s) < len(noteheadNames) {
		return noteheadNames[s]
	}
	return fmt.Sprintf("NoteheadShape(%d)", int(s))
}

func ParseNoteheadShape(s string) (NoteheadShape, error) {
	if s == "" {
		return NoteheadNormal, nil
	}
	for i, name := range noteheadNames {
		if name == s {
			return NoteheadShape(i), nil
		}
	}
	return NoteheadNormal, fmt.Errorf("unknown notehead %q", s)
}

type Notehead struct {
	Shape  NoteheadShape
	Filled bool
}

// Note is a source note of the score. Pitch is nil for unpitched rests;
// a rest may carry a pitch that only positions it on the staff. Length is
// a fraction of a whole note.
type Note struct {
	Pitch    *Pitch
	Length   *big.Rat
	Rest     bool
	Notehead *Notehead
}

func NewNote(pitch Pitch, length *big.Rat) *Note {
	return &Note{Pitch: &pitch, Length: length}
}

func NewRest(length *big.Rat) *Note {
	return &Note{Length: length, Rest: true}
}

func (n *Note) IsRest() bool {
	return n.Rest
}
