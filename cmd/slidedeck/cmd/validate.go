package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"slidedeck/internal/application"
	"slidedeck/internal/application/commands"
)

var validateCmd = &cobra.Command{
	Use:   "validate [deck.yaml]",
	Short: "Check a deck file without presenting it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		report, err := commands.NewValidateDeckCommand(deckSource(args)).Execute(ctx)
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid deck: %s: %s", verr.Field, verr.Message)
		}
		if err != nil {
			return err
		}

		fmt.Printf("ok: %d sections, %d cards\n", report.Sections, report.Cards)
		if len(report.Empty) > 0 {
			fmt.Printf("warning: sections without cards: %s\n", strings.Join(report.Empty, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
