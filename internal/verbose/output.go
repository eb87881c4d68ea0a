package verbose

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/chriscorrea/madlib/internal/vocabulary"

	"github.com/fatih/color"
)

// OutputConfig contains parameters for verbose output formatting
type OutputConfig struct {
	Writer       io.Writer
	KeyColor     *color.Color
	ValueColor   *color.Color
	HeaderColor  *color.Color
	EnableColors bool
}

// DefaultOutputConfig returns a default configuration for verbose output
func DefaultOutputConfig(writer io.Writer) *OutputConfig {
	return &OutputConfig{
		Writer:       writer,
		KeyColor:     color.New(color.FgCyan, color.Bold),
		ValueColor:   color.New(color.FgMagenta),
		HeaderColor:  color.New(color.FgYellow, color.Bold),
		EnableColors: true,
	}
}

// Stats are the counters reported after a run
type Stats struct {
	LinesRead     int
	LinesWritten  int
	Substitutions int
}

// PrintSummary displays the vocabulary and run statistics in a two-column table
func PrintSummary(vocab vocabulary.Vocabulary, stats Stats, outputCfg *OutputConfig) {
	if outputCfg == nil {
		outputCfg = DefaultOutputConfig(os.Stderr)
	}

	w := tabwriter.NewWriter(outputCfg.Writer, 0, 0, 3, ' ', 0)

	printHeader(w, outputCfg, "Vocabulary")
	for _, role := range vocabulary.Roles {
		printRow(w, outputCfg, role.Marker(), vocab.Word(role))
	}

	printHeader(w, outputCfg, "Run")
	printRow(w, outputCfg, "Lines read", fmt.Sprintf("%d", stats.LinesRead))
	printRow(w, outputCfg, "Lines written", fmt.Sprintf("%d", stats.LinesWritten))
	printRow(w, outputCfg, "Substitutions", fmt.Sprintf("%d", stats.Substitutions))

	fmt.Fprintf(w, "\n")
	w.Flush()
}

func printHeader(w io.Writer, outputCfg *OutputConfig, title string) {
	headerSprint := outputCfg.HeaderColor.SprintFunc()
	if !outputCfg.EnableColors {
		headerSprint = fmt.Sprint
	}
	fmt.Fprintf(w, "%s\n", headerSprint(title))
}

// printRow prints one key-value row; tabwriter does the alignment
func printRow(w io.Writer, outputCfg *OutputConfig, key, value string) {
	keySprint := outputCfg.KeyColor.SprintFunc()
	valueSprint := outputCfg.ValueColor.SprintFunc()

	if !outputCfg.EnableColors {
		keySprint = fmt.Sprint
		valueSprint = fmt.Sprint
	}

	fmt.Fprintf(w, "  %s\t%s\n", keySprint(key), valueSprint(value))
}
