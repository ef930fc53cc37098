package graphical

import (
	"testing"

	"github.com/jsphweid/engrave/model"
	"github.com/stretchr/testify/assert"
)

type fakeElement string

func (e fakeElement) ID() string {
	return string(e)
}

type fakeVisual struct {
	attrs map[string]interface{}
	heads []NoteheadPosition
}

func (v *fakeVisual) Attribute(name string) (interface{}, bool) {
	a, ok := v.attrs[name]
	return a, ok
}

func (v *fakeVisual) Notehead(index int) (NoteheadPosition, bool) {
	if index < 0 || index >= len(v.heads) {
		return NoteheadPosition{}, false
	}
	return v.heads[index], true
}

type fakeSurface struct {
	elements map[string]Element
	lookups  []string
}

func (s *fakeSurface) ElementByID(id string) (Element, bool) {
	s.lookups = append(s.lookups, id)
	el, ok := s.elements[id]
	return el, ok
}

func newSurface(ids ...string) *fakeSurface {
	s := &fakeSurface{elements: make(map[string]Element)}
	for _, id := range ids {
		s.elements[id] = fakeElement(id)
	}
	return s
}

func boundNote() *GraphicalNote {
	clef := model.TrebleClef
	g := New(middleC(), nil, &clef, model.OctaveShiftNone)
	g.SetIndex(&fakeVisual{
		attrs: map[string]interface{}{"id": "auto7", "el": fakeElement("vf-auto7")},
		heads: []NoteheadPosition{{Line: 0}, {Line: 1.5}},
	}, 1)
	return g
}

func TestUnboundIsAbsent(t *testing.T) {
	clef := model.TrebleClef
	g := New(middleC(), nil, &clef, model.OctaveShiftNone)
	s := newSurface("vf--stem", "vf--beam0")

	assert := assert.New(t)
	_, ok := g.VisualID()
	assert.False(ok)
	_, ok = g.VisualElement()
	assert.False(ok)
	_, ok = g.StemElement(s)
	assert.False(ok)
	assert.Empty(g.BeamElements(s))
	assert.Empty(s.lookups)
	_, ok = g.Index()
	assert.False(ok)
	assert.Equal(NoteheadPosition{}, g.Notehead())
}

func TestIdentity(t *testing.T) {
	g := boundNote()

	assert := assert.New(t)
	id, ok := g.VisualID()
	assert.True(ok)
	assert.Equal("auto7", id)
	el, ok := g.VisualElement()
	assert.True(ok)
	assert.Equal("vf-auto7", el.ID())
	index, _ := g.Index()
	assert.Equal(1, index)
	assert.Equal(NoteheadPosition{Line: 1.5}, g.Notehead())
}

func TestNoteheadOutOfRange(t *testing.T) {
	g := boundNote()
	other := &fakeVisual{heads: []NoteheadPosition{{Line: 4}}}
	assert.Equal(t, NoteheadPosition{}, g.NoteheadOf(other))
}

func TestStemElement(t *testing.T) {
	g := boundNote()
	el, ok := g.StemElement(newSurface("vf-auto7-stem"))
	assert.True(t, ok)
	assert.Equal(t, "vf-auto7-stem", el.ID())

	_, ok = g.StemElement(newSurface())
	assert.False(t, ok)
	_, ok = g.StemElement(nil)
	assert.False(t, ok)
}

func TestBeamElementsStopAtFirstMiss(t *testing.T) {
	g := boundNote()
	s := newSurface("vf-auto7-beam0", "vf-auto7-beam1", "vf-auto7-beam3")

	beams := g.BeamElements(s)
	assert := assert.New(t)
	assert.Len(beams, 2)
	assert.Equal("vf-auto7-beam0", beams[0].ID())
	assert.Equal("vf-auto7-beam1", beams[1].ID())
	assert.Equal([]string{"vf-auto7-beam0", "vf-auto7-beam1", "vf-auto7-beam2"}, s.lookups)
}

func TestRebindOverwrites(t *testing.T) {
	g := boundNote()
	g.SetIndex(&fakeVisual{attrs: map[string]interface{}{"id": "auto9"}}, 0)

	id, _ := g.VisualID()
	index, _ := g.Index()
	assert.Equal(t, "auto9", id)
	assert.Equal(t, 0, index)
	_, ok := g.VisualElement()
	assert.False(t, ok)
	d, _ := g.Pitch()
	assert.Equal(t, "c/4", d.Key)
}

func TestPrefixFromFactory(t *testing.T) {
	clef := model.TrebleClef
	f := DefaultFactory
	f.Prefix = "ov"
	g := f.New(middleC(), nil, &clef, model.OctaveShiftNone)
	g.SetIndex(&fakeVisual{attrs: map[string]interface{}{"id": "n1"}}, 0)
	id, ok := g.StemID()
	assert.True(t, ok)
	assert.Equal(t, "ov-n1-stem", id)
}
