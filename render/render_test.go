package render

import (
	"math/big"
	"testing"

	"github.com/jsphweid/engrave/graphical"
	"github.com/jsphweid/engrave/model"
	"github.com/stretchr/testify/assert"
)

func TestKeyLine(t *testing.T) {
	cases := []struct {
		key, clef string
		line      float64
	}{
		{"e/4", "treble", 1},
		{"c/4", "treble", 0},
		{"f/5", "treble", 5},
		{"g/2", "bass", 1},
		{"c/4/X2", "alto", 3},
	}
	for _, c := range cases {
		line, err := KeyLine(c.key, c.clef)
		assert.NoError(t, err)
		assert.Equal(t, c.line, line, c.key)
	}
	_, err := KeyLine("h/4", "treble")
	assert.Error(t, err)
	_, err = KeyLine("c/4", "banjo")
	assert.Error(t, err)
}

func TestRenderBindsNotes(t *testing.T) {
	clef := model.TrebleClef
	entry := graphical.NewVoiceEntry(nil)
	top := graphical.New(model.NewNote(model.NewPitch(model.G, 4, model.AccidentalNone), big.NewRat(1, 8)), entry, &clef, model.OctaveShiftNone)
	bottom := graphical.New(model.NewNote(model.NewPitch(model.E, 4, model.AccidentalNone), big.NewRat(1, 8)), entry, &clef, model.OctaveShiftNone)

	r := NewRenderer("vf")
	s, ok := r.RenderVoiceEntry(entry)
	assert := assert.New(t)
	assert.True(ok)
	s.AddStem()
	s.AddBeam()
	s.AddBeam()

	id, ok := top.VisualID()
	assert.True(ok)
	bottomID, _ := bottom.VisualID()
	assert.Equal(id, bottomID)

	el, ok := top.VisualElement()
	assert.True(ok)
	assert.Equal("vf-"+id, el.ID())

	assert.Equal(2.0, top.Notehead().Line)
	assert.Equal(1.0, bottom.Notehead().Line)

	stem, ok := bottom.StemElement(r.Doc)
	assert.True(ok)
	assert.Equal("vf-"+id+"-stem", stem.ID())

	beams := top.BeamElements(r.Doc)
	assert.Len(beams, 2)
	assert.Equal("vf-"+id+"-beam1", beams[1].ID())
	assert.Equal(4, r.Doc.Len())
}

func TestRenderSkipsUnpitched(t *testing.T) {
	entry := graphical.NewVoiceEntry(nil)
	rest := graphical.New(model.NewRest(big.NewRat(1, 1)), entry, nil, model.OctaveShiftNone)

	r := NewRenderer("vf")
	_, ok := r.RenderVoiceEntry(entry)
	assert.False(t, ok)
	_, ok = rest.VisualID()
	assert.False(t, ok)
	assert.Empty(t, rest.BeamElements(r.Doc))
}
