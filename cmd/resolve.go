package cmd

import (
	"fmt"
	"math/big"

	"github.com/jsphweid/engrave/graphical"
	"github.com/jsphweid/engrave/log"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/render"
	"github.com/jsphweid/engrave/resolve"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
)

var resolveFlags model.ResolveRequestBody

func init() {
	resolveCmd.Flags().StringVar(&resolveFlags.Clef, "clef", "", "clef name (default from config)")
	resolveCmd.Flags().StringVar(&resolveFlags.OctaveShift, "shift", "", "octave shift: none, 8va, 8vb, 15ma, 15mb")
	resolveCmd.Flags().StringVar(&resolveFlags.Notehead, "notehead", "", "notehead shape")
	resolveCmd.Flags().BoolVar(&resolveFlags.Rest, "rest", false, "resolve as a positioned rest")
	resolveCmd.Flags().BoolVar(&resolveFlags.Commit, "commit", false, "commit the pitch's accidental")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <pitch>",
	Short: "Resolves one pitch",
	Long:  `Resolves one pitch, e.g. "C#4", to its renderer key and accidental.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := resolveFlags
		body.Pitch = args[0]
		res, err := ResolveNote(body)
		if err != nil {
			return err
		}
		printResponse(res)
		if !body.Rest {
			p, _ := model.ParsePitch(body.Pitch)
			fmt.Printf("sounds:     %v\n", midi.NoteOn(0, p.MIDIKey(), 100))
		}
		return nil
	},
}

func printResponse(res model.ResolveResponse) {
	fmt.Printf("key:        %s\n", res.Key)
	if res.AccidentalDecided {
		fmt.Printf("accidental: %q\n", res.Accidental)
	} else {
		fmt.Printf("accidental: undecided\n")
	}
	fmt.Printf("clef:       %s\n", res.Clef)
	if res.VisualID != "" {
		fmt.Printf("visual id:  %s\n", res.VisualID)
		fmt.Printf("stem id:    %s\n", res.StemID)
	}
}

// ResolveNote builds a graphical note for the request, renders it and
// reports what it resolved to.
func ResolveNote(body model.ResolveRequestBody) (model.ResolveResponse, error) {
	var res model.ResolveResponse
	pitch, err := model.ParsePitch(body.Pitch)
	if err != nil {
		return res, err
	}
	clefName := body.Clef
	if clefName == "" {
		clefName = cfg.Clef
	}
	clef, err := model.ParseClef(clefName)
	if err != nil {
		return res, err
	}
	shiftName := body.OctaveShift
	if shiftName == "" {
		shiftName = cfg.OctaveShift
	}
	shift, err := model.ParseOctaveShift(shiftName)
	if err != nil {
		return res, err
	}
	var notehead *model.Notehead
	if body.Notehead != "" {
		shape, err := model.ParseNoteheadShape(body.Notehead)
		if err != nil {
			return res, err
		}
		notehead = &model.Notehead{Shape: shape, Filled: true}
	}

	f := factory()
	// surface conversion failures as errors before the note asserts them
	if _, err := resolve.Resolve(f.Converter, pitch, body.Rest, &clef, notehead); err != nil {
		return res, err
	}

	note := &model.Note{Pitch: &pitch, Length: big.NewRat(1, 4), Rest: body.Rest, Notehead: notehead}
	entry := graphical.NewVoiceEntry(nil)
	g := f.New(note, entry, &clef, shift)
	if body.Commit {
		g.SetAccidental(pitch)
	}
	r := render.NewRenderer(cfg.Prefix)
	if s, ok := r.RenderVoiceEntry(entry); ok {
		s.AddStem()
	}

	d, _ := g.Pitch()
	res.Key = d.Key
	res.Accidental = d.Accidental
	res.AccidentalDecided = d.AccidentalDecided
	res.Clef = d.ClefTag
	if d.ClefAnnotation != "" {
		res.Clef += " " + d.ClefAnnotation
	}
	if acc, ok := g.DrawnAccidental(); ok {
		res.DrawnAccidental = acc.String()
	}
	res.VisualID, _ = g.VisualID()
	if stem, ok := g.StemElement(r.Doc); ok {
		res.StemID = stem.ID()
	}
	log.RES.Printf("%s -> %s\n", body.Pitch, res.Key)
	return res, nil
}
