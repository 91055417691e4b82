package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/comalice/smf/internal/logging"
)

var cfg AppConfig

var rootCmd = &cobra.Command{
	Use:   "smfdemo",
	Short: "smfdemo runs a hierarchical state machine demo",
	Long:  `smfdemo drives a pedestrian crossing chart on the tick runtime, exposing metrics and call traces along the way.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd.Context(), logging.NewNop())
		if err != nil {
			return err
		}
		if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
			c.LogLevel = f.Value.String()
		}
		cfg = c
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error); overrides SMF_LOG_LEVEL")
}
