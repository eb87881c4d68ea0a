package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/chriscorrea/madlib/internal/app"
	"github.com/chriscorrea/madlib/internal/config"
	"github.com/chriscorrea/madlib/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// current version (hardcoded for now, could be replaced with build flags)
const version = "0.1.0"

// defaultConfigPath is used when --config is not given
const defaultConfigPath = "~/.madlib/config.toml"

// rootCmdState holds the config manager and logger for the command
type rootCmdState struct {
	manager *config.Manager
	logger  *slog.Logger
	closer  io.Closer
}

// state is the global state instance for the root command
var state = &rootCmdState{}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return home, nil
	}

	return filepath.Join(home, path[1:]), nil
}

// newRootCmd builds the command tree; tests build a fresh one per run
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "madlib",
		Version: version,
		Short:   "Fill madlib templates from standard input",
		Long: `Madlib reads five replacement words and then a story, one line at a time,
from standard input. Every <noun1>, <noun2>, <verb>, <adjective> and <adverb>
in the story is replaced with the matching word and the result is written to
standard output.

Input layout:
  line 1-5   noun1, noun2, verb, adjective, adverb
  line 6+    template lines

Exit codes:
  101  a replacement word is missing
  102  a replacement word is too long or has a disallowed character
  103  a line is longer than 100 characters, before or after substitution
  104  a placeholder name is not recognized`,
		Example: `  printf 'dog\ncat\njump\nblue\nquickly\nThe <noun1> and the <noun2> <verb> <adverb>.\n' | madlib`,
		SilenceUsage:      true, // don't show usage after errors
		SilenceErrors:     true, // run() prints errors and maps exit codes
		Args:              cobra.NoArgs,
		PersistentPreRunE: setupState,
		RunE:              runFilter,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default "+defaultConfigPath+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print vocabulary and run statistics to stderr")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable detailed debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to a rotating file")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(createVersionCommand())
	rootCmd.AddCommand(createPlaceholdersCommand())
	rootCmd.AddCommand(createConfigCommand())
	rootCmd.AddCommand(createInitCommand())
	rootCmd.AddCommand(createManCommand())

	return rootCmd
}

// setupState creates the logger and loads the configuration
func setupState(cmd *cobra.Command, args []string) error {
	// get the debug flag value and create a provisional logger
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("failed to get debug flag: %w", err)
	}
	state.logger, state.closer = logger.New(logger.Options{Debug: debug, Stderr: cmd.ErrOrStderr()})

	state.manager = config.NewManager().WithLogger(state.logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath == "" {
		configPath = defaultConfigPath
	}
	configPath, err = expandHomePath(configPath)
	if err != nil {
		return fmt.Errorf("failed to expand home path: %w", err)
	}

	// bind persistent flags to their corresponding Viper keys
	if err := bindFlags(cmd.Flags(), state.manager.Viper()); err != nil {
		return err
	}

	if err := state.manager.Load(configPath); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := state.manager.Config()

	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return fmt.Errorf("failed to get no-color flag: %w", err)
	}
	if noColor {
		cfg.Output.Color = false
	}
	if !cfg.Output.Color {
		color.NoColor = true
	}

	// rebuild the logger now that config may have enabled debug or a log file
	if cfg.Log.Debug || cfg.Log.File != "" {
		if cfg.Log.File, err = expandHomePath(cfg.Log.File); err != nil {
			return fmt.Errorf("failed to expand log file path: %w", err)
		}
		_ = state.closer.Close()
		state.logger, state.closer = logger.New(logger.Options{
			Debug:      cfg.Log.Debug,
			File:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
			Stderr:     cmd.ErrOrStderr(),
		})
		state.manager.WithLogger(state.logger)
	}

	return nil
}

// flagBindings maps flag names to the Viper keys they override
var flagBindings = map[string]string{
	"verbose":  "output.verbose",
	"debug":    "log.debug",
	"log-file": "log.file",
}

// bindFlags binds every known flag in the set to its Viper key
func bindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		key, ok := flagBindings[f.Name]
		if !ok || bindErr != nil {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

// runFilter runs the substitution over stdin and writes the filled lines to stdout
func runFilter(cmd *cobra.Command, args []string) error {
	if state.manager == nil {
		return fmt.Errorf("config manager not initialized")
	}
	cfg := state.manager.Config()

	appInstance := app.NewApp(cfg, state.logger, cfg.Output.Verbose).
		WithDiagnostics(cmd.ErrOrStderr())

	_, err := appInstance.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	return err
}

// Execute runs the root command and exits with the mapped exit code.
// This is called by main.main()
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes a fresh command tree and returns the process exit code
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)

	if state.closer != nil {
		_ = state.closer.Close()
	}

	if err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintln(stderr, red("madlib: "+err.Error()))
	}

	return app.ExitCode(err)
}
