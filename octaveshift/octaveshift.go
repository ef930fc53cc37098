// Package octaveshift moves pitches between their sounding and drawn
// octaves under an octave bracket.
package octaveshift

import (
	"github.com/jsphweid/engrave/model"
)

// Apply returns the pitch drawn under shift. The step and accidental are
// kept, only the octave moves.
func Apply(pitch model.Pitch, shift model.OctaveShift) model.Pitch {
	return model.NewPitch(pitch.Step, pitch.Octave+shift.Octaves(), pitch.Accidental)
}

// Inverse returns the bracket that undoes shift.
func Inverse(shift model.OctaveShift) model.OctaveShift {
	switch shift {
	case model.VA8:
		return model.VB8
	case model.VB8:
		return model.VA8
	case model.MA15:
		return model.MB15
	case model.MB15:
		return model.MA15
	}
	return model.OctaveShiftNone
}

// DrawPitch is the pitch to draw for note under shift. Rests keep their
// positioning pitch regardless of brackets. ok is false when the note has
// no pitch.
func DrawPitch(note *model.Note, shift model.OctaveShift) (pitch model.Pitch, ok bool) {
	if note.Pitch == nil {
		return model.Pitch{}, false
	}
	if note.IsRest() {
		return *note.Pitch, true
	}
	return Apply(*note.Pitch, shift), true
}
