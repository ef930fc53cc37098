// Package convert encodes pitches, clefs and noteheads the way the
// rendering engine expects them.
package convert

import (
	"fmt"
	"strings"

	"github.com/jsphweid/engrave/model"
	"github.com/pkg/errors"
)

var (
	ErrUnsupportedClef       = errors.New("unsupported clef")
	ErrUnsupportedAccidental = errors.New("unsupported accidental")
	ErrUnsupportedNotehead   = errors.New("unsupported notehead")
)

// Encoded is a renderer-native pitch.
type Encoded struct {
	// Key is the notated name and octave, e.g. "c/4" or "f/5/X2".
	Key string
	// Accidental is the accidental glyph code, empty when none.
	Accidental string
	// ClefTag names the clef, e.g. "treble".
	ClefTag string
	// ClefAnnotation marks octave clefs, e.g. "8vb".
	ClefAnnotation string
}

// Converter is the boundary to the rendering engine's pitch encoding.
type Converter interface {
	Pitch(pitch model.Pitch, isRest bool, clef model.Clef, notehead *model.Notehead) (Encoded, error)
}

// VexConverter produces VexFlow style keys.
type VexConverter struct{}

func (VexConverter) Pitch(pitch model.Pitch, isRest bool, clef model.Clef, notehead *model.Notehead) (Encoded, error) {
	var enc Encoded
	tag, annotation, err := ClefTag(clef)
	if err != nil {
		return enc, err
	}
	enc.ClefTag = tag
	enc.ClefAnnotation = annotation

	if pitch.Step.Index() < 0 {
		return enc, fmt.Errorf("invalid step %v", pitch.Step)
	}
	octave := pitch.Octave - clef.OctaveChange
	enc.Key = fmt.Sprintf("%s/%d", strings.ToLower(pitch.Step.String()), octave)
	if isRest {
		return enc, nil
	}

	head, err := NoteheadCode(notehead)
	if err != nil {
		return enc, err
	}
	enc.Key += head
	enc.Accidental, err = AccidentalCode(pitch.Accidental)
	return enc, err
}

type clefPos struct {
	sign model.ClefEnum
	line int
}

var clefTags = map[clefPos]string{
	{model.ClefG, 1}:          "french",
	{model.ClefG, 2}:          "treble",
	{model.ClefF, 3}:          "baritone-f",
	{model.ClefF, 4}:          "bass",
	{model.ClefF, 5}:          "subbass",
	{model.ClefC, 1}:          "soprano",
	{model.ClefC, 2}:          "mezzo-soprano",
	{model.ClefC, 3}:          "alto",
	{model.ClefC, 4}:          "tenor",
	{model.ClefC, 5}:          "baritone-c",
	{model.ClefPercussion, 2}: "percussion",
	{model.ClefPercussion, 3}: "percussion",
	{model.ClefTAB, 5}:        "tab",
}

var clefAnnotations = map[int]string{0: "", 1: "8va", -1: "8vb", 2: "15ma", -2: "15mb"}

// ClefTag returns the clef tag and its octave annotation.
func ClefTag(clef model.Clef) (string, string, error) {
	tag, ok := clefTags[clefPos{clef.Sign, clef.Line}]
	if !ok {
		return "", "", errors.Wrapf(ErrUnsupportedClef, "clef %v", clef)
	}
	annotation, ok := clefAnnotations[clef.OctaveChange]
	if !ok {
		return "", "", errors.Wrapf(ErrUnsupportedClef, "octave change %d", clef.OctaveChange)
	}
	return tag, annotation, nil
}

var accidentalCodes = map[model.AccidentalEnum]string{
	model.AccidentalNone:        "",
	model.Sharp:                 "#",
	model.Flat:                  "b",
	model.Natural:               "n",
	model.DoubleSharp:           "##",
	model.DoubleFlat:            "bb",
	model.TripleSharp:           "###",
	model.TripleFlat:            "bbb",
	model.QuarterToneSharp:      "+",
	model.QuarterToneFlat:       "d",
	model.ThreeQuarterToneSharp: "++",
	model.ThreeQuarterToneFlat:  "db",
}

func AccidentalCode(acc model.AccidentalEnum) (string, error) {
	code, ok := accidentalCodes[acc]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedAccidental, "accidental %v", acc)
	}
	return code, nil
}

var noteheadCodes = map[model.NoteheadShape]string{
	model.NoteheadNormal:    "",
	model.NoteheadSlash:     "",
	model.NoteheadX:         "X",
	model.NoteheadCircleX:   "CX",
	model.NoteheadDiamond:   "D",
	model.NoteheadTriangle:  "T",
	model.NoteheadSquare:    "S",
	model.NoteheadRectangle: "R",
}

// NoteheadCode is the key suffix selecting the notehead glyph. Filled
// heads use variant 2, hollow ones variant 1.
func NoteheadCode(notehead *model.Notehead) (string, error) {
	if notehead == nil {
		return "", nil
	}
	code, ok := noteheadCodes[notehead.Shape]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedNotehead, "notehead %v", notehead.Shape)
	}
	if code == "" {
		return "", nil
	}
	if notehead.Filled {
		return "/" + code + "2", nil
	}
	return "/" + code + "1", nil
}
