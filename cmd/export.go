package cmd

import (
	"github.com/jsphweid/engrave/log"
	"github.com/jsphweid/engrave/preview"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <in.mid> <out.mid>",
	Short: "Writes a MIDI preview",
	Long:  `Reads a MIDI file into graphical notes and writes back what they sound like.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadEntries(args[0])
		if err != nil {
			return err
		}
		if err := preview.Create(entries).WriteFile(args[1]); err != nil {
			return err
		}
		log.MID.Printf("wrote %s\n", args[1])
		return nil
	},
}
