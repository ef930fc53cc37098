package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePitch(t *testing.T) {
	cases := map[string]Pitch{
		"C4":   {C, 4, AccidentalNone},
		"c#4":  {C, 4, Sharp},
		"Bb2":  {B, 2, Flat},
		"b4":   {B, 4, AccidentalNone},
		"Ebb5": {E, 5, DoubleFlat},
		"Fx3":  {F, 3, DoubleSharp},
		"Gn6":  {G, 6, Natural},
		"A-1":  {A, -1, AccidentalNone},
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			got, err := ParsePitch(in)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParsePitchErrors(t *testing.T) {
	for _, in := range []string{"", "C", "H4", "C?4", "Cb"} {
		_, err := ParsePitch(in)
		assert.Error(t, err, in)
	}
}

func TestHalfTone(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(60, NewPitch(C, 4, AccidentalNone).HalfTone())
	assert.Equal(61, NewPitch(C, 4, Sharp).HalfTone())
	assert.Equal(60, NewPitch(B, 3, Sharp).HalfTone())
	assert.Equal(59, NewPitch(C, 4, Flat).HalfTone())
	assert.Equal(69, NewPitch(A, 4, Natural).HalfTone())
	assert.Equal(uint8(0), NewPitch(C, -2, AccidentalNone).MIDIKey())
}

func TestPitchString(t *testing.T) {
	assert.Equal(t, "F#3", NewPitch(F, 3, Sharp).String())
	assert.Equal(t, "Bbb2", NewPitch(B, 2, DoubleFlat).String())
}

func TestKeyAlter(t *testing.T) {
	assert := assert.New(t)
	g := KeyInstruction{Fifths: 1}
	assert.Equal(1, g.Alter(F))
	assert.Equal(0, g.Alter(C))
	eb := KeyInstruction{Fifths: -3}
	assert.Equal(-1, eb.Alter(B))
	assert.Equal(-1, eb.Alter(E))
	assert.Equal(-1, eb.Alter(A))
	assert.Equal(0, eb.Alter(D))
	cs := KeyInstruction{Fifths: 7}
	for _, step := range Steps {
		assert.Equal(1, cs.Alter(step))
	}
}

func TestParseClefAndShift(t *testing.T) {
	c, err := ParseClef("Bass")
	assert.NoError(t, err)
	assert.Equal(t, BassClef, c)
	_, err = ParseClef("banjo")
	assert.Error(t, err)

	s, err := ParseOctaveShift("15mb")
	assert.NoError(t, err)
	assert.Equal(t, MB15, s)
	s, err = ParseOctaveShift("")
	assert.NoError(t, err)
	assert.Equal(t, OctaveShiftNone, s)
}
