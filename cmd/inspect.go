package cmd

import (
	"fmt"

	"github.com/jsphweid/engrave/chord"
	"github.com/jsphweid/engrave/graphical"
	"github.com/jsphweid/engrave/midi"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/render"
	"github.com/spf13/cobra"
)

var inspectFifths int

func init() {
	inspectCmd.Flags().IntVar(&inspectFifths, "key", 0, "key signature used to spell the notes")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Resolves every note of a MIDI file",
	Long:  `Resolves every note of a MIDI file and prints its chord, keys and visual ids.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadEntries(args[0])
		if err != nil {
			return err
		}
		r := render.NewRenderer(cfg.Prefix)
		for _, entry := range entries {
			r.RenderVoiceEntry(entry)
			fmt.Printf("chord %s\n", chord.Key(entry))
			for _, n := range chord.Order(entry) {
				d, _ := n.Pitch()
				id, _ := n.VisualID()
				index, _ := n.Index()
				fmt.Printf("  %-6v %-8s line %4.1f  %s[%d]\n", *n.SourceNote().Pitch, d.Key, n.Notehead().Line, id, index)
			}
		}
		return nil
	},
}

// loadEntries reads a MIDI file into one voice entry per onset, drawn under
// the configured clef and octave shift.
func loadEntries(path string) ([]*graphical.VoiceEntry, error) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	key := model.KeyInstruction{Fifths: inspectFifths}
	onsets, err := midi.ReadNotes(s, &key)
	if err != nil {
		return nil, err
	}
	clef := cfg.ActiveClef()
	shift := cfg.ActiveOctaveShift()
	f := factory()
	var entries []*graphical.VoiceEntry
	for _, onset := range onsets {
		entry := graphical.NewVoiceEntry(nil)
		for _, note := range onset.Notes {
			f.New(note, entry, &clef, shift)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
