package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"slidedeck/internal/application/commands"
)

var outlineCmd = &cobra.Command{
	Use:   "outline [deck.yaml]",
	Short: "Print the sections and cards of a deck",
	Long: `Print the navigable structure of a deck: the section index used by the
navigation dots and the cards of each section in keyboard order.

Examples:
  slidedeck outline
  slidedeck outline ~/decks/econ.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		outline, err := commands.NewOutlineCommand(deckSource(args)).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("%2d  %s\n", 0, outline.Hero.Title)
		for _, e := range outline.Sections {
			fmt.Printf("%2d  %s %s\n", e.Index, e.Section.Icon, e.Section.Title)
			for _, c := range e.Section.Cards {
				fmt.Printf("      %-32s %s\n", c.ID, c.Title)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}
