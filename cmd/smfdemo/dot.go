package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/smf"
	"github.com/comalice/smf/internal/demo"
	"github.com/comalice/smf/production"
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Print the crossing chart as Graphviz DOT",
	RunE: func(cmd *cobra.Command, args []string) error {
		ch := demo.NewChart()
		active, _ := cmd.Flags().GetString("active")

		var current *smf.State[*demo.Crossing]
		if active != "" {
			for _, s := range ch.States() {
				if s.Name == active {
					current = s
				}
			}
			if current == nil {
				return fmt.Errorf("state %q: %w", active, smf.ErrUnknownState)
			}
		}
		fmt.Fprint(cmd.OutOrStdout(), production.ExportDOT("crossing", ch.States(), current))
		return nil
	},
}

func init() {
	dotCmd.Flags().String("active", "", "Highlight this state and its ancestors")
	rootCmd.AddCommand(dotCmd)
}
