package graphical

import (
	"fmt"
)

// Element is a handle to an element of the host document.
type Element interface {
	ID() string
}

// NoteheadPosition is a drawn notehead, Line counted in staff lines from
// the bottom line.
type NoteheadPosition struct {
	Line float64
}

// VisualNote is the renderer's object for a chord of graphical notes.
type VisualNote interface {
	// Attribute looks up "id" (string) or "el" (Element).
	Attribute(name string) (interface{}, bool)
	// Notehead returns the notehead at a chord index, false when out of
	// range.
	Notehead(index int) (NoteheadPosition, bool)
}

// Surface finds elements of the host document by id.
type Surface interface {
	ElementByID(id string) (Element, bool)
}

// SetIndex binds the visual object the renderer produced for this note
// together with the note's index in its chord. Binding again replaces the
// previous pair.
func (g *GraphicalNote) SetIndex(note VisualNote, index int) {
	g.visual = &binding{note: note, index: index}
}

// Visual returns the bound visual object and chord index.
func (g *GraphicalNote) Visual() (VisualNote, int, bool) {
	if g.visual == nil {
		return nil, 0, false
	}
	return g.visual.note, g.visual.index, true
}

// Index is the note's position in its chord once bound.
func (g *GraphicalNote) Index() (int, bool) {
	if g.visual == nil {
		return 0, false
	}
	return g.visual.index, true
}

// Notehead is the notehead drawn for this note, or a placeholder on line
// zero when nothing is bound or the renderer has no notehead at the index.
func (g *GraphicalNote) Notehead() NoteheadPosition {
	if g.visual == nil {
		return NoteheadPosition{}
	}
	return g.NoteheadOf(g.visual.note)
}

// NoteheadOf looks the note's notehead up in another visual object.
func (g *GraphicalNote) NoteheadOf(v VisualNote) NoteheadPosition {
	index := 0
	if g.visual != nil {
		index = g.visual.index
	}
	if head, ok := v.Notehead(index); ok {
		return head
	}
	return NoteheadPosition{}
}

// VisualID is the id of the renderer's object. Notes without their own
// visual object, e.g. in a multi-measure rest, have none.
func (g *GraphicalNote) VisualID() (string, bool) {
	if g.visual == nil {
		return "", false
	}
	attr, ok := g.visual.note.Attribute("id")
	if !ok {
		return "", false
	}
	id, ok := attr.(string)
	return id, ok && id != ""
}

// VisualElement is the document element holding the note.
func (g *GraphicalNote) VisualElement() (Element, bool) {
	if g.visual == nil {
		return nil, false
	}
	attr, ok := g.visual.note.Attribute("el")
	if !ok {
		return nil, false
	}
	el, ok := attr.(Element)
	return el, ok && el != nil
}

func (g *GraphicalNote) StemID() (string, bool) {
	id, ok := g.VisualID()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s-%s-stem", g.prefix, id), true
}

func (g *GraphicalNote) BeamID(n int) (string, bool) {
	id, ok := g.VisualID()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s-%s-beam%d", g.prefix, id, n), true
}

// StemElement is the element of the note's stem.
func (g *GraphicalNote) StemElement(s Surface) (Element, bool) {
	id, ok := g.StemID()
	if !ok || s == nil {
		return nil, false
	}
	return s.ElementByID(id)
}

// BeamElements are the beam segments starting at this note, in order. The
// lookup stops at the first missing index.
func (g *GraphicalNote) BeamElements(s Surface) []Element {
	beams := make([]Element, 0)
	if s == nil {
		return beams
	}
	for i := 0; ; i++ {
		id, ok := g.BeamID(i)
		if !ok {
			break
		}
		el, ok := s.ElementByID(id)
		if !ok {
			break
		}
		beams = append(beams, el)
	}
	return beams
}
