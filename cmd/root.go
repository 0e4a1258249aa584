package cmd

import (
	"fmt"
	"os"

	"altered-knowledge/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var playerFlag string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "altered-knowledge",
	Short: "Altered card knowledge service",
	Long: `Altered Knowledge reconciles a player's card collection with the card catalog
stored in an S3 bucket and validates decks against construction rules.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console at debug level for ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&playerFlag, "player", "", "Player whose collection is used (overrides DATA_PLAYER)")
}
