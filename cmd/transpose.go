package cmd

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/jsphweid/engrave/model"
	"github.com/spf13/cobra"
)

var transposeFifths int
var transposeClef string

func init() {
	transposeCmd.Flags().IntVar(&transposeFifths, "key", 0, "key signature in fifths (negative for flats)")
	transposeCmd.Flags().StringVar(&transposeClef, "clef", "", "clef after transposing (default from config)")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <pitch> <halftones>",
	Short: "Transposes one pitch",
	Long:  `Transposes one pitch by a number of half tones and prints its new drawn pitch.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pitch, err := model.ParsePitch(args[0])
		if err != nil {
			return err
		}
		halfTones, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		clef := cfg.ActiveClef()
		target := clef
		if transposeClef != "" {
			target, err = model.ParseClef(transposeClef)
			if err != nil {
				return err
			}
		}
		key := model.KeyInstruction{Fifths: transposeFifths}
		shift := cfg.ActiveOctaveShift()

		g := factory().New(model.NewNote(pitch, big.NewRat(1, 4)), nil, &clef, shift)
		drawn := g.Transpose(&key, &target, halfTones, shift)
		d, _ := g.Pitch()
		fmt.Printf("drawn:      %v\n", drawn)
		fmt.Printf("key:        %s\n", d.Key)
		fmt.Printf("clef:       %s\n", d.ClefTag)
		return nil
	},
}
