package chord

import (
	"math/big"
	"testing"

	"github.com/jsphweid/engrave/graphical"
	"github.com/jsphweid/engrave/model"
	"github.com/stretchr/testify/assert"
)

type stubVisual struct{}

func (stubVisual) Attribute(name string) (interface{}, bool) {
	if name == "id" {
		return "chord", true
	}
	return nil, false
}

func (stubVisual) Notehead(index int) (graphical.NoteheadPosition, bool) {
	return graphical.NoteheadPosition{Line: float64(index)}, true
}

func entryOf(pitches ...model.Pitch) *graphical.VoiceEntry {
	clef := model.TrebleClef
	entry := graphical.NewVoiceEntry(nil)
	for _, p := range pitches {
		graphical.New(model.NewNote(p, big.NewRat(1, 2)), entry, &clef, model.OctaveShiftNone)
	}
	return entry
}

func TestCreateChordKey(t *testing.T) {
	assert.Equal(t, "60-64-67", CreateChordKey([]uint8{67, 60, 64}))
	assert.Equal(t, "", CreateChordKey(nil))
}

func TestOrderAndBind(t *testing.T) {
	g4 := model.NewPitch(model.G, 4, model.AccidentalNone)
	c4 := model.NewPitch(model.C, 4, model.AccidentalNone)
	e4 := model.NewPitch(model.E, 4, model.Flat)
	entry := entryOf(g4, c4, e4)
	graphical.New(model.NewRest(big.NewRat(1, 2)), entry, nil, model.OctaveShiftNone)

	notes := Bind(entry, stubVisual{})

	assert := assert.New(t)
	assert.Len(notes, 3)
	assert.Equal(c4, *notes[0].SourceNote().Pitch)
	assert.Equal(e4, *notes[1].SourceNote().Pitch)
	assert.Equal(g4, *notes[2].SourceNote().Pitch)
	for i, n := range notes {
		index, ok := n.Index()
		assert.True(ok)
		assert.Equal(i, index)
		assert.Equal(float64(i), n.Notehead().Line)
	}
	_, ok := entry.Notes[3].Index()
	assert.False(ok)
	assert.Equal("60-63-67", Key(entry))
}
