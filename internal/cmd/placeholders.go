package cmd

import (
	"fmt"

	"github.com/chriscorrea/madlib/internal/vocabulary"

	"github.com/spf13/cobra"
)

var roleDescriptions = map[vocabulary.Role]string{
	vocabulary.Noun1:     "first noun",
	vocabulary.Noun2:     "second noun",
	vocabulary.Verb:      "verb",
	vocabulary.Adjective: "adjective",
	vocabulary.Adverb:    "adverb",
}

// createPlaceholdersCommand creates the placeholders subcommand
func createPlaceholdersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "placeholders",
		Short: "List the recognized placeholders",
		Long: `List the five placeholders in the order their replacement words are read.

Names are case-sensitive. Any other name between < and > is an error (exit 104).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Placeholders (input order):")
			for i, role := range vocabulary.Roles {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d. %-12s %s\n", i+1, role.Marker(), roleDescriptions[role])
			}
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "Words: up to %d characters of letters, digits, space, ' and -\n", vocabulary.FieldMax)
			fmt.Fprintf(cmd.OutOrStdout(), "Lines: up to %d characters, before and after substitution\n", vocabulary.LineMax)
			return nil
		},
	}
}
