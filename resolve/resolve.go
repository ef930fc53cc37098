// Package resolve turns a pitch in its clef context into the descriptor the
// renderer draws from.
package resolve

import (
	"github.com/jsphweid/engrave/convert"
	"github.com/jsphweid/engrave/model"
	"github.com/pkg/errors"
)

var ErrMissingClef = errors.New("missing clef")

// Descriptor is a resolved drawable pitch. It is a value: a new resolution
// replaces the previous descriptor as a whole.
type Descriptor struct {
	Key        string
	Accidental string
	// AccidentalDecided is false until the layout pass commits an
	// accidental. Accidental is empty while undecided.
	AccidentalDecided bool
	ClefTag           string
	ClefAnnotation    string
	Clef              model.Clef
	Rest              bool
}

// Undecided returns a copy with the accidental slot cleared.
func (d Descriptor) Undecided() Descriptor {
	d.Accidental = ""
	d.AccidentalDecided = false
	return d
}

// Resolve encodes pitch with conv. The accidental of pitch is taken as is.
func Resolve(conv convert.Converter, pitch model.Pitch, isRest bool, clef *model.Clef, notehead *model.Notehead) (Descriptor, error) {
	if clef == nil {
		return Descriptor{}, errors.Wrapf(ErrMissingClef, "resolving %v", pitch)
	}
	enc, err := conv.Pitch(pitch, isRest, *clef, notehead)
	if err != nil {
		return Descriptor{}, errors.Wrapf(err, "resolving %v in %v", pitch, *clef)
	}
	return Descriptor{
		Key:               enc.Key,
		Accidental:        enc.Accidental,
		AccidentalDecided: true,
		ClefTag:           enc.ClefTag,
		ClefAnnotation:    enc.ClefAnnotation,
		Clef:              *clef,
		Rest:              isRest,
	}, nil
}

// MustResolve is Resolve for callers that hold well-formed input.
func MustResolve(conv convert.Converter, pitch model.Pitch, isRest bool, clef *model.Clef, notehead *model.Notehead) Descriptor {
	d, err := Resolve(conv, pitch, isRest, clef, notehead)
	if err != nil {
		panic("Could not resolve pitch: " + err.Error())
	}
	return d
}
