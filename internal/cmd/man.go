package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// createManCommand creates the hidden man page generator
func createManCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "man",
		Short:  "Generate man pages for madlib",
		Long:   `This command generates the man pages for the madlib CLI.`,
		Hidden: true, // hide this from the public help output
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cmd.Flags().GetString("dir")
			if err != nil {
				return fmt.Errorf("failed to get dir flag: %w", err)
			}

			// define the header for the man page.
			header := &doc.GenManHeader{
				Title:   "MADLIB",
				Section: "1", // Section 1 is for executable programs and shell commands
				Source:  "Madlib CLI",
			}

			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create man directory: %w", err)
			}

			// generate man pages for the whole tree starting at madlib
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return fmt.Errorf("failed to generate man pages: %w", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Man pages successfully generated in %s\n", dir)
			return nil
		},
	}

	cmd.Flags().String("dir", "./man", "Directory to write man pages to")

	return cmd
}
