package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/chriscorrea/madlib/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// createConfigCommand creates the config command and its subcommands
func createConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage madlib configuration",
		Long: `Manage madlib configuration settings. Without a subcommand, shows the
config file in use and every setting with its current value.

Examples:
  madlib config                     # Show configuration
  madlib config --defaults          # Print the built-in defaults
  madlib config set verbose=true    # Set a configuration value
  madlib config set log.file=/tmp/madlib.log
  `,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			showDefaults, err := cmd.Flags().GetBool("defaults")
			if err != nil {
				return fmt.Errorf("failed to get defaults flag: %w", err)
			}
			if showDefaults {
				fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfigTOML())
				return nil
			}

			if state.manager == nil {
				return fmt.Errorf("config manager not initialized")
			}

			if path := state.manager.Path(); path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n\n", path)
			}

			return displayConfig(cmd.OutOrStdout(), config.DefaultConfigSchema())
		},
	}

	configCmd.Flags().Bool("defaults", false, "Print the built-in default config file")
	configCmd.AddCommand(createSetCommand())
	return configCmd
}

// displayConfig prints every canonical key with its value and alias
func displayConfig(out io.Writer, schema *config.ConfigSchema) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	keySprint := color.New(color.FgCyan, color.Bold).SprintFunc()
	valueSprint := color.New(color.FgMagenta).SprintFunc()
	groupSprint := color.New(color.FgGreen, color.Bold).SprintFunc()

	// reverse alias lookup for display
	aliasFor := make(map[string]string, len(schema.Aliases))
	for _, alias := range schema.ListAliases() {
		aliasFor[schema.Aliases[alias]] = alias
	}

	group := ""
	for _, key := range schema.ListCanonicalKeys() {
		section := strings.SplitN(key, ".", 2)[0]
		if section != group {
			if group != "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s\n", groupSprint(fmt.Sprintf("▶ %s", section)))
			group = section
		}

		alias := aliasFor[key]
		if alias == "" {
			alias = "-"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", keySprint(key), valueSprint(getConfigValue(key)), alias)
	}

	return w.Flush()
}

// getConfigValue retrieves the current value for a configuration key using Viper
func getConfigValue(canonicalPath string) string {
	value := state.manager.Viper().Get(canonicalPath)

	// handle nil values
	if value == nil {
		return "<not set>"
	}

	// handle empty strings
	if str, ok := value.(string); ok && str == "" {
		return "<not set>"
	}

	result := fmt.Sprintf("%v", value)

	// truncate if too long for table display
	if len(result) > 40 {
		return result[:37] + "..."
	}

	return result
}
