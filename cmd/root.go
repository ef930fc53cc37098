package cmd

import (
	"github.com/jsphweid/engrave/config"
	"github.com/jsphweid/engrave/graphical"
	"github.com/spf13/cobra"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "engrave",
	Short: "Resolves notes into drawable pitches",
	Long: `Resolves notes into drawable pitches under clefs, octave brackets
and transposition, and binds them to rendered stave notes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func factory() graphical.Factory {
	f := graphical.DefaultFactory
	f.Prefix = cfg.Prefix
	return f
}
