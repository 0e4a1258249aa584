package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"altered-knowledge/feature/deck"
	"altered-knowledge/feature/deck/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	modeFlag   string
	storedFlag bool
)

// errDeckInvalid makes the process exit non-zero for invalid decks.
var errDeckInvalid = errors.New("deck is invalid")

// deckCmd represents the deck command
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Validate, summarize and compare decks",
	Long: `Decks are read from a local JSON file, or from the knowledge bucket with
--stored, in which case the argument is owner/name.`,
}

var deckValidateCmd = &cobra.Command{
	Use:   "validate <deck>",
	Short: "Check a deck against the construction rules and the collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, svc, err := deckService()
		if err != nil {
			return err
		}
		defer env.close()
		ctx := cmd.Context()

		d, err := readDeck(cmd, svc, args[0])
		if err != nil {
			return err
		}
		report, err := svc.Validate(ctx, d, models.ParseMode(modeFlag))
		if err != nil {
			return err
		}

		if ok, err := emit(cmd.OutOrStdout(), report); ok {
			if err != nil {
				return err
			}
		} else {
			renderReport(cmd.OutOrStdout(), report)
		}

		env.logger.Debug("Validation finished", zap.String("deck", report.Deck), zap.Int("issues", report.IssueCount()))
		if report.Verdict != models.Valid {
			return errDeckInvalid
		}
		return nil
	},
}

var deckStatsCmd = &cobra.Command{
	Use:   "stats <deck>",
	Short: "Show the cost curve and rarity and faction totals of a deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, svc, err := deckService()
		if err != nil {
			return err
		}
		defer env.close()

		d, err := readDeck(cmd, svc, args[0])
		if err != nil {
			return err
		}
		summary, err := svc.Stats(cmd.Context(), d)
		if err != nil {
			return err
		}

		if ok, err := emit(cmd.OutOrStdout(), summary); ok {
			return err
		}
		renderSummary(cmd.OutOrStdout(), d.Name, summary)
		return nil
	},
}

var deckCompareCmd = &cobra.Command{
	Use:   "compare <mine> <other>",
	Short: "Diff two decks and suggest owned cards for the gap",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, svc, err := deckService()
		if err != nil {
			return err
		}
		defer env.close()

		mine, err := readDeck(cmd, svc, args[0])
		if err != nil {
			return err
		}
		other, err := readDeck(cmd, svc, args[1])
		if err != nil {
			return err
		}
		cmp, err := svc.Compare(cmd.Context(), mine, other)
		if err != nil {
			return err
		}

		if ok, err := emit(cmd.OutOrStdout(), cmp); ok {
			return err
		}
		renderComparison(cmd.OutOrStdout(), cmp)
		return nil
	},
}

func deckService() (*environment, *deck.Service, error) {
	env, err := setup()
	if err != nil {
		return nil, nil, err
	}
	svc := deck.NewService(env.sessions(), env.client, env.cfg.Storage.Bucket, env.cfg.Data, env.logger, nil)
	return env, svc, nil
}

func readDeck(cmd *cobra.Command, svc *deck.Service, arg string) (*models.Deck, error) {
	if storedFlag {
		owner, name, ok := strings.Cut(arg, "/")
		if !ok {
			return nil, fmt.Errorf("stored deck must be owner/name, got %q", arg)
		}
		return svc.LoadDeck(cmd.Context(), owner, name)
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	return models.ParseDeck(data)
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckValidateCmd, deckStatsCmd, deckCompareCmd)

	deckCmd.PersistentFlags().BoolVar(&storedFlag, "stored", false, "Read decks from the bucket as owner/name")
	deckValidateCmd.Flags().StringVar(&modeFlag, "mode", string(models.ModeRules), "Validation mode: rules or owned")
}
