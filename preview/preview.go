// Package preview writes graphical notes out as a Standard MIDI File so a
// layout can be auditioned.
package preview

import (
	"math/big"

	"github.com/jsphweid/engrave/graphical"
	"github.com/jsphweid/engrave/log"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const TicksPerQuarter = 960

// lengthTicks converts a fraction of a whole note to ticks.
func lengthTicks(length *big.Rat) uint32 {
	if length == nil {
		return 0
	}
	ticks := new(big.Rat).Mul(length, big.NewRat(4*TicksPerQuarter, 1))
	f, _ := ticks.Float64()
	return uint32(f + 0.5)
}

// Create plays the entries one after the other, each lasting as long as its
// longest note. Rests sound nothing but still take their time.
func Create(entries []*graphical.VoiceEntry) *smf.SMF {
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var track smf.Track
	var delta uint32
	var numNotes int
	for _, entry := range entries {
		var keys []uint8
		var length uint32
		for _, n := range entry.Notes {
			src := n.SourceNote()
			if l := lengthTicks(src.Length); l > length {
				length = l
			}
			if src.Pitch != nil && !src.IsRest() {
				keys = append(keys, src.Pitch.MIDIKey())
			}
		}
		for _, key := range keys {
			track.Add(delta, midi.NoteOn(0, key, 100))
			delta = 0
		}
		delta += length
		for _, key := range keys {
			track.Add(delta, midi.NoteOff(0, key))
			delta = 0
		}
		numNotes += len(keys)
	}
	track.Close(delta)
	res.Add(track)
	log.MID.Printf("preview: %d entries, %d notes\n", len(entries), numNotes)
	return res
}
