package cmd

import (
	"fmt"

	"github.com/chriscorrea/madlib/internal/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// askFunc matches survey.AskOne so tests can script the answers
type askFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// askOne is the prompt function used by the init wizard
var askOne askFunc = survey.AskOne

// initAnswers collects the wizard responses before they are written to viper
type initAnswers struct {
	Verbose    bool
	Color      bool
	UseLogFile bool
	LogFile    string
	Debug      bool
}

// createInitCommand creates the interactive init command
func createInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the madlib config file through an interactive process",
		Long: `Initialize your madlib configuration:
• Choose whether to print a run summary
• Turn colored output on or off
• Optionally log to a rotating file

Your configuration will be saved to ` + defaultConfigPath + ` unless --config is given`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, askOne)
		},
	}
}

// runInit asks the wizard questions and saves the answers
func runInit(cmd *cobra.Command, ask askFunc) error {
	if state.manager == nil {
		return fmt.Errorf("config manager not initialized")
	}

	cyan := color.New(color.FgCyan).SprintFunc()
	magenta := color.New(color.FgMagenta).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "\n%s\n", cyan("📝 Welcome to madlib"))
	fmt.Fprintf(out, "\n%s\n", "A few questions and you're done.")

	answers, err := askInitQuestions(state.manager.Config(), ask)
	if err != nil {
		return err
	}

	v := state.manager.Viper()
	v.Set("output.verbose", answers.Verbose)
	v.Set("output.color", answers.Color)
	v.Set("log.debug", answers.Debug)
	if answers.UseLogFile {
		v.Set("log.file", answers.LogFile)
	} else {
		v.Set("log.file", "")
	}

	fmt.Fprintf(out, "\n%s Saving your configuration...\n", yellow("💾"))
	if err := state.manager.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Fprintf(out, "\n%s All set! Your configuration has been saved to %s\n",
		green("🎉"), magenta(state.manager.Path()))
	fmt.Fprintf(out, "\n%s Try: %s\n",
		cyan("💡"), magenta("madlib < story.txt"))
	fmt.Fprintf(out, "\n%s For more options, run: %s\n\n",
		cyan("📖"), magenta("madlib --help"))

	return nil
}

// askInitQuestions runs the prompts, offering the current values as defaults
func askInitQuestions(current *config.Config, ask askFunc) (initAnswers, error) {
	var answers initAnswers

	verbosePrompt := &survey.Confirm{
		Message: "Print the vocabulary and run statistics after each run?",
		Default: current.Output.Verbose,
	}
	if err := ask(verbosePrompt, &answers.Verbose); err != nil {
		return answers, fmt.Errorf("survey error: %w", err)
	}

	colorPrompt := &survey.Confirm{
		Message: "Use colored output?",
		Default: current.Output.Color,
	}
	if err := ask(colorPrompt, &answers.Color); err != nil {
		return answers, fmt.Errorf("survey error: %w", err)
	}

	logPrompt := &survey.Confirm{
		Message: "Write logs to a file?",
		Default: current.Log.File != "",
		Help:    "Log files are rotated by size; see 'madlib config' for the limits",
	}
	if err := ask(logPrompt, &answers.UseLogFile); err != nil {
		return answers, fmt.Errorf("survey error: %w", err)
	}

	if answers.UseLogFile {
		defaultFile := current.Log.File
		if defaultFile == "" {
			defaultFile = "~/.madlib/madlib.log"
		}
		filePrompt := &survey.Input{
			Message: "Log file path:",
			Default: defaultFile,
		}
		if err := ask(filePrompt, &answers.LogFile, survey.WithValidator(survey.Required)); err != nil {
			return answers, fmt.Errorf("survey error: %w", err)
		}

		path, err := expandHomePath(answers.LogFile)
		if err != nil {
			return answers, fmt.Errorf("failed to expand home path: %w", err)
		}
		answers.LogFile = path

		debugPrompt := &survey.Confirm{
			Message: "Include debug messages in the log?",
			Default: current.Log.Debug,
		}
		if err := ask(debugPrompt, &answers.Debug); err != nil {
			return answers, fmt.Errorf("survey error: %w", err)
		}
	}

	return answers, nil
}
