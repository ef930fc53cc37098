// Package transpose computes the pitch a note moves to when the score is
// transposed, spelled for the key it lands in.
package transpose

import (
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/util"
)

// Calculator is the base transposition a graphical note delegates to.
type Calculator interface {
	TransposePitch(pitch model.Pitch, key *model.KeyInstruction, halfTones int) model.Pitch
}

// KeyAware spells transposed pitches with the key's own alterations where
// possible, sharps in sharp keys and flats in flat keys otherwise.
type KeyAware struct{}

func (KeyAware) TransposePitch(pitch model.Pitch, key *model.KeyInstruction, halfTones int) model.Pitch {
	if halfTones == 0 {
		return pitch
	}
	return Spell(pitch.HalfTone()+halfTones, key)
}

// Spell picks the written pitch for the key number halfTone.
func Spell(halfTone int, key *model.KeyInstruction) model.Pitch {
	var k model.KeyInstruction
	if key != nil {
		k = *key
	}
	class := util.Mod(halfTone, 12)

	// a step the key already alters onto this class
	for _, step := range model.Steps {
		alter := k.Alter(step)
		if util.Mod(int(step)+alter, 12) == class {
			acc, _ := model.AccidentalFromHalfTones(alter)
			return pitchAt(halfTone, step, acc)
		}
	}

	// the natural step, cancelling the key's alteration
	for _, step := range model.Steps {
		if int(step) == class {
			return pitchAt(halfTone, step, model.Natural)
		}
	}

	// chromatic: raise the step below in sharp keys, lower the one above
	// in flat keys
	if k.Fifths >= 0 {
		return pitchAt(halfTone, model.NoteEnum(util.Mod(class-1, 12)), model.Sharp)
	}
	return pitchAt(halfTone, model.NoteEnum(util.Mod(class+1, 12)), model.Flat)
}

func pitchAt(halfTone int, step model.NoteEnum, acc model.AccidentalEnum) model.Pitch {
	octave := util.FloorDiv(halfTone-int(step)-acc.HalfTones(), 12) - 1
	return model.NewPitch(step, octave, acc)
}
