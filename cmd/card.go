package cmd

import (
	"fmt"

	"altered-knowledge/core/catalog"
	cardfeature "altered-knowledge/feature/catalog"

	"github.com/spf13/cobra"
)

var (
	cardNameFlag  string
	cardRefFlag   string
	cardStatsFlag bool
)

// cardCmd represents the card command
var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Look up cards in the catalog",
	Long:  `Finds cards by reference (--ref), by name (--name) or prints catalog totals (--stats).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cardNameFlag == "" && cardRefFlag == "" && !cardStatsFlag {
			return cmd.Help()
		}

		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()
		svc := cardfeature.NewService(env.sessions(), env.cfg.Data.Player, env.logger)
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		switch {
		case cardStatsFlag:
			counts, err := svc.Counts(ctx)
			if err != nil {
				return err
			}
			if ok, err := emit(out, counts); ok {
				return err
			}
			renderCounts(out, counts)
		case cardRefFlag != "":
			card, err := svc.Card(ctx, cardRefFlag)
			if err != nil {
				return err
			}
			if ok, err := emit(out, card); ok {
				return err
			}
			renderCards(out, []catalog.Card{card})
		default:
			cards, err := svc.Search(ctx, cardNameFlag)
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				return fmt.Errorf("no card matches %q", cardNameFlag)
			}
			if ok, err := emit(out, cards); ok {
				return err
			}
			renderCards(out, cards)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardCmd)
	cardCmd.Flags().StringVar(&cardNameFlag, "name", "", "Card name; accents and punctuation are ignored")
	cardCmd.Flags().StringVar(&cardRefFlag, "ref", "", "Card reference, e.g. ALT_CORE_B_AX_04_C")
	cardCmd.Flags().BoolVar(&cardStatsFlag, "stats", false, "Print catalog totals")
}
