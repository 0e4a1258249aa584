package cmd

import (
	"altered-knowledge/feature/collection"

	"github.com/spf13/cobra"
)

// collectionCmd represents the collection command
var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Inspect the player's reconciled collection",
}

var collectionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List owned cards and uniques",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, svc, err := collectionService()
		if err != nil {
			return err
		}
		defer env.close()
		t, err := svc.Table(cmd.Context())
		if err != nil {
			return err
		}
		if ok, err := emit(cmd.OutOrStdout(), t); ok {
			return err
		}
		renderCollection(cmd.OutOrStdout(), t)
		return nil
	},
}

var collectionStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize owned cards by cost, rarity and faction",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, svc, err := collectionService()
		if err != nil {
			return err
		}
		defer env.close()
		summary, err := svc.Stats(cmd.Context())
		if err != nil {
			return err
		}
		if ok, err := emit(cmd.OutOrStdout(), summary); ok {
			return err
		}
		renderSummary(cmd.OutOrStdout(), "Collection", *summary)
		return nil
	},
}

func collectionService() (*environment, *collection.Service, error) {
	env, err := setup()
	if err != nil {
		return nil, nil, err
	}
	return env, collection.NewService(env.sessions(), env.cfg.Data.Player, env.logger), nil
}

func init() {
	RootCmd.AddCommand(collectionCmd)
	collectionCmd.AddCommand(collectionShowCmd, collectionStatsCmd)
}
