package verbose

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chriscorrea/madlib/internal/vocabulary"
)

func TestPrintSummary(t *testing.T) {
	vocab := vocabulary.New("dog", "cat", "jump", "blue", "quickly")
	stats := Stats{LinesRead: 4, LinesWritten: 3, Substitutions: 7}

	t.Run("DefaultOutput", func(t *testing.T) {
		var buf bytes.Buffer
		PrintSummary(vocab, stats, DefaultOutputConfig(&buf))

		output := buf.String()
		expectedStrings := []string{
			"Vocabulary",
			"<noun1>", "dog",
			"<noun2>", "cat",
			"<verb>", "jump",
			"<adjective>", "blue",
			"<adverb>", "quickly",
			"Lines read", "4",
			"Lines written", "3",
			"Substitutions", "7",
		}

		for _, expected := range expectedStrings {
			if !strings.Contains(output, expected) {
				t.Errorf("Expected output to contain %q, got: %s", expected, output)
			}
		}
	})

	t.Run("WithoutColors", func(t *testing.T) {
		var buf bytes.Buffer
		outputCfg := DefaultOutputConfig(&buf)
		outputCfg.EnableColors = false

		PrintSummary(vocab, stats, outputCfg)

		output := buf.String()
		if strings.Contains(output, "\x1b[") {
			t.Errorf("Expected output without color codes, got: %s", output)
		}

		// roles appear in input order
		lastIdx := -1
		for _, role := range vocabulary.Roles {
			idx := strings.Index(output, role.Marker())
			if idx <= lastIdx {
				t.Errorf("Expected %s after previous role in output: %s", role.Marker(), output)
			}
			lastIdx = idx
		}
	})

	t.Run("AlignedColumns", func(t *testing.T) {
		var buf bytes.Buffer
		outputCfg := DefaultOutputConfig(&buf)
		outputCfg.EnableColors = false

		PrintSummary(vocab, stats, outputCfg)

		var columns []int
		for _, line := range strings.Split(buf.String(), "\n") {
			if !strings.HasPrefix(line, "  <") {
				continue
			}
			columns = append(columns, strings.LastIndex(line, " ")+1)
		}
		if len(columns) != 5 {
			t.Fatalf("Expected 5 vocabulary rows, got %d", len(columns))
		}
		for _, c := range columns[1:] {
			if c != columns[0] {
				t.Errorf("Expected aligned values, got columns %v", columns)
			}
		}
	})
}
