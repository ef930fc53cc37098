// Package graphical binds source notes to their drawable pitch and to the
// visual objects the rendering engine produces for them.
package graphical

import (
	"github.com/jsphweid/engrave/convert"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/octaveshift"
	"github.com/jsphweid/engrave/resolve"
	"github.com/jsphweid/engrave/transpose"
)

// Factory carries the collaborators shared by the notes it creates.
type Factory struct {
	Converter  convert.Converter
	Transposer transpose.Calculator
	// Prefix starts the ids of elements the renderer adds to the host
	// document.
	Prefix string
}

var DefaultFactory = Factory{
	Converter:  convert.VexConverter{},
	Transposer: transpose.KeyAware{},
	Prefix:     "vf",
}

// GraphicalNote is the graphical counterpart of one source note.
type GraphicalNote struct {
	box    BoundingBox
	source *model.Note
	parent *VoiceEntry

	conv       convert.Converter
	transposer transpose.Calculator
	prefix     string

	clef        *model.Clef
	octaveShift model.OctaveShift
	// nil for unpitched notes
	pitch *resolve.Descriptor

	drawnAccidental    model.AccidentalEnum
	hasDrawnAccidental bool

	visual *binding
}

type binding struct {
	note  VisualNote
	index int
}

// New creates a graphical note with DefaultFactory.
func New(note *model.Note, parent *VoiceEntry, activeClef *model.Clef, octaveShift model.OctaveShift) *GraphicalNote {
	return DefaultFactory.New(note, parent, activeClef, octaveShift)
}

// New creates the graphical note for note under the clef and octave
// bracket active at its position. A pitched note gets a descriptor whose
// accidental is left undecided for the layout pass. activeClef must be set
// for pitched notes.
func (f Factory) New(note *model.Note, parent *VoiceEntry, activeClef *model.Clef, octaveShift model.OctaveShift) *GraphicalNote {
	g := &GraphicalNote{
		source:      note,
		parent:      parent,
		conv:        f.Converter,
		transposer:  f.Transposer,
		prefix:      f.Prefix,
		clef:        activeClef,
		octaveShift: octaveShift,
	}
	if parent != nil {
		g.box.Parent = parent.PositionAndShape()
		parent.Notes = append(parent.Notes, g)
	}
	if drawPitch, ok := octaveshift.DrawPitch(note, octaveShift); ok {
		d := resolve.MustResolve(g.conv, drawPitch, note.IsRest(), g.clef, note.Notehead).Undecided()
		g.pitch = &d
	}
	return g
}

// SetAccidental re-resolves the note with the accidental of pitch
// committed. Accidental placement ignores octave brackets, so pitch is
// drawn at its written octave.
func (g *GraphicalNote) SetAccidental(pitch model.Pitch) {
	d := resolve.MustResolve(g.conv, pitch, g.source.IsRest(), g.clef, g.source.Notehead)
	g.pitch = &d
	g.drawnAccidental = pitch.Accidental
	g.hasDrawnAccidental = true
}

// DrawPitch applies the note's octave bracket to pitch.
func (g *GraphicalNote) DrawPitch(pitch model.Pitch) model.Pitch {
	return octaveshift.Apply(pitch, g.octaveShift)
}

// Transpose moves the source pitch by halfTones in key and re-resolves it
// under activeClef, leaving the accidental undecided again. The drawn
// pitch is returned.
func (g *GraphicalNote) Transpose(key *model.KeyInstruction, activeClef *model.Clef, halfTones int, octaveShift model.OctaveShift) model.Pitch {
	if g.source.Pitch == nil {
		panic("Could not transpose an unpitched note")
	}
	transposed := g.transposer.TransposePitch(*g.source.Pitch, key, halfTones)
	if activeClef != nil && (g.clef == nil || *activeClef != *g.clef) {
		g.clef = activeClef
	}
	drawPitch := transposed
	if !g.source.IsRest() {
		drawPitch = g.DrawPitch(transposed)
	}
	d := resolve.MustResolve(g.conv, drawPitch, g.source.IsRest(), g.clef, g.source.Notehead).Undecided()
	g.pitch = &d
	return drawPitch
}

// Pitch is the last resolved descriptor. ok is false for unpitched notes.
func (g *GraphicalNote) Pitch() (d resolve.Descriptor, ok bool) {
	if g.pitch == nil {
		return resolve.Descriptor{}, false
	}
	return *g.pitch, true
}

// DrawnAccidental is the accidental last committed by SetAccidental.
func (g *GraphicalNote) DrawnAccidental() (model.AccidentalEnum, bool) {
	return g.drawnAccidental, g.hasDrawnAccidental
}

func (g *GraphicalNote) Clef() *model.Clef {
	return g.clef
}

func (g *GraphicalNote) OctaveShift() model.OctaveShift {
	return g.octaveShift
}

func (g *GraphicalNote) SourceNote() *model.Note {
	return g.source
}

func (g *GraphicalNote) Parent() *VoiceEntry {
	return g.parent
}

func (g *GraphicalNote) PositionAndShape() *BoundingBox {
	return &g.box
}
