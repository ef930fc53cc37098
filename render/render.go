// Package render is an in-memory rendering surface. It produces the visual
// objects and document elements a browser renderer would, so graphical
// notes can be bound and inspected without one.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/engrave/chord"
	"github.com/jsphweid/engrave/graphical"
	"github.com/jsphweid/engrave/log"
)

// Element is a document element.
type Element struct {
	id    string
	Kind  string
	Attrs map[string]string
}

func (e *Element) ID() string {
	return e.id
}

// Document is the host document: elements by id.
type Document struct {
	prefix   string
	elements map[string]*Element
}

func NewDocument(prefix string) *Document {
	return &Document{prefix: prefix, elements: make(map[string]*Element)}
}

func (d *Document) ElementByID(id string) (graphical.Element, bool) {
	el, ok := d.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

func (d *Document) Len() int {
	return len(d.elements)
}

func (d *Document) add(id, kind string) *Element {
	el := &Element{id: id, Kind: kind, Attrs: make(map[string]string)}
	d.elements[id] = el
	return el
}

// StaveNote is the visual object of one chord.
type StaveNote struct {
	doc       *Document
	id        string
	el        *Element
	noteheads []graphical.NoteheadPosition
	beams     int
}

func (s *StaveNote) Attribute(name string) (interface{}, bool) {
	switch name {
	case "id":
		return s.id, true
	case "el":
		return graphical.Element(s.el), true
	}
	return nil, false
}

func (s *StaveNote) Notehead(index int) (graphical.NoteheadPosition, bool) {
	if index < 0 || index >= len(s.noteheads) {
		return graphical.NoteheadPosition{}, false
	}
	return s.noteheads[index], true
}

// AddStem draws the stem of the note.
func (s *StaveNote) AddStem() *Element {
	return s.doc.add(fmt.Sprintf("%s-%s-stem", s.doc.prefix, s.id), "stem")
}

// AddBeam draws the next beam segment starting at the note.
func (s *StaveNote) AddBeam() *Element {
	el := s.doc.add(fmt.Sprintf("%s-%s-beam%d", s.doc.prefix, s.id, s.beams), "beam")
	s.beams++
	return el
}

// Renderer draws voice entries into a document.
type Renderer struct {
	Doc *Document
}

func NewRenderer(prefix string) *Renderer {
	return &Renderer{Doc: NewDocument(prefix)}
}

// RenderVoiceEntry draws the pitched notes of entry as one stave note and
// binds each of them at its chord index. Entries without pitched notes are
// not drawn.
func (r *Renderer) RenderVoiceEntry(entry *graphical.VoiceEntry) (*StaveNote, bool) {
	notes := chord.Order(entry)
	if len(notes) == 0 {
		return nil, false
	}
	s := &StaveNote{doc: r.Doc, id: uuid.New().String()}
	s.el = r.Doc.add(r.Doc.prefix+"-"+s.id, "g")
	for _, n := range notes {
		d, _ := n.Pitch()
		line, err := KeyLine(d.Key, d.ClefTag)
		if err != nil {
			panic("Could not place notehead: " + err.Error())
		}
		s.noteheads = append(s.noteheads, graphical.NoteheadPosition{Line: line})
	}
	chord.Bind(entry, s)
	log.RND.Printf("stave note %s: %d notehead(s) %s\n", s.id, len(notes), chord.Key(entry))
	return s, true
}

var stepIndex = map[string]int{"c": 0, "d": 1, "e": 2, "f": 3, "g": 4, "a": 5, "b": 6}

// lines the clef moves a key up the staff by
var clefLineShift = map[string]float64{
	"treble":        0,
	"french":        -1,
	"bass":          6,
	"baritone-f":    5,
	"subbass":       7,
	"soprano":       1,
	"mezzo-soprano": 2,
	"alto":          3,
	"tenor":         4,
	"baritone-c":    5,
	"percussion":    0,
	"tab":           0,
}

// KeyLine is the staff line of a key such as "e/4", counted from the
// bottom line with spaces at halves.
func KeyLine(key, clefTag string) (float64, error) {
	parts := strings.Split(key, "/")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid key %q", key)
	}
	index, ok := stepIndex[parts[0]]
	if !ok {
		return 0, fmt.Errorf("invalid step in key %q", key)
	}
	octave, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid octave in key %q: %v", key, err)
	}
	shift, ok := clefLineShift[clefTag]
	if !ok {
		return 0, fmt.Errorf("unknown clef %q", clefTag)
	}
	return float64(octave*7-4*7+index)/2 + shift, nil
}
