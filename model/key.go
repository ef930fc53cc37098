package model

// KeyInstruction is a key signature: positive fifths count sharps,
// negative count flats.
type KeyInstruction struct {
	Fifths int
}

// order in which sharps enter the key signature
var sharpOrder = []NoteEnum{F, C, G, D, A, E, B}

// Alter is the alteration in half tones the key applies to step.
func (k KeyInstruction) Alter(step NoteEnum) int {
	if k.Fifths > 0 {
		for i := 0; i < k.Fifths && i < len(sharpOrder); i++ {
			if sharpOrder[i] == step {
				return 1
			}
		}
	} else if k.Fifths < 0 {
		for i := 0; i < -k.Fifths && i < len(sharpOrder); i++ {
			if sharpOrder[len(sharpOrder)-1-i] == step {
				return -1
			}
		}
	}
	return 0
}
