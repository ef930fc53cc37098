package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/engrave/graphical"
)

func CreateChordKey(notes []uint8) string {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	var res string
	for i, note := range notes {
		res += fmt.Sprintf("%v", note)
		if i < len(notes)-1 {
			res += "-"
		}
	}
	return res
}

// Order returns the pitched notes of entry from the lowest drawn pitch up,
// which is the order the renderer stacks noteheads in. Notes without a
// pitch are left out.
func Order(entry *graphical.VoiceEntry) []*graphical.GraphicalNote {
	var notes []*graphical.GraphicalNote
	for _, n := range entry.Notes {
		if _, ok := n.Pitch(); ok {
			notes = append(notes, n)
		}
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return drawnHalfTone(notes[i]) < drawnHalfTone(notes[j])
	})
	return notes
}

func drawnHalfTone(n *graphical.GraphicalNote) int {
	return n.DrawPitch(*n.SourceNote().Pitch).HalfTone()
}

// Key identifies the chord sounding at entry.
func Key(entry *graphical.VoiceEntry) string {
	var keys []uint8
	for _, n := range Order(entry) {
		keys = append(keys, n.SourceNote().Pitch.MIDIKey())
	}
	return CreateChordKey(keys)
}

// Bind hands every pitched note of entry its chord index in v.
func Bind(entry *graphical.VoiceEntry, v graphical.VisualNote) []*graphical.GraphicalNote {
	notes := Order(entry)
	for i, n := range notes {
		n.SetIndex(v, i)
	}
	return notes
}
