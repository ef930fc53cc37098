package midi

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sort"

	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/transpose"
	"github.com/jsphweid/engrave/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// Onset is the notes starting at one tick.
type Onset struct {
	Tick  int64
	Notes []*model.Note
}

type sounding struct {
	tick int64
	key  uint8
}

// ReadNotes turns the note on/off pairs of s into source notes spelled in
// key, grouped by start tick. Lengths are fractions of a whole note.
func ReadNotes(s *smf.SMF, key *model.KeyInstruction) ([]Onset, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok || ticks == 0 {
		return nil, errors.New("only metric time formats are supported")
	}
	whole := int64(ticks) * 4

	byTick := make(map[int64][]*model.Note)
	for _, track := range s.Tracks {
		var absTicks int64
		pressed := make(map[uint8]sounding)
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, k, velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &k, &velocity):
				pressed[k] = sounding{absTicks, k}
			case event.Message.GetNoteEnd(&channel, &k):
				on, ok := pressed[k]
				if !ok {
					continue
				}
				delete(pressed, k)
				pitch := transpose.Spell(int(on.key), key)
				byTick[on.tick] = append(byTick[on.tick], model.NewNote(pitch, big.NewRat(absTicks-on.tick, whole)))
			}
		}
	}

	res := make([]Onset, 0, len(byTick))
	for _, tick := range util.GetKeysSorted(byTick) {
		notes := byTick[tick]
		sort.Slice(notes, func(i, j int) bool {
			return notes[i].Pitch.HalfTone() < notes[j].Pitch.HalfTone()
		})
		res = append(res, Onset{Tick: tick, Notes: notes})
	}
	return res, nil
}
