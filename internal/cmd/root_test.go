package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chriscorrea/madlib/internal/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVocabulary = "dog\ncat\njump\nblue\nquickly\n"

// runCLI runs the command tree against in-memory streams with an isolated config file
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.toml")
	args = append(args, "--config", configPath)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Filter(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "scenario A fills every placeholder",
			stdin:      testVocabulary + "The <noun1> and the <noun2> <verb> <adverb>.\n",
			wantCode:   app.ExitOK,
			wantStdout: "The dog and the cat jump quickly.\n",
		},
		{
			name:       "scenario B word of 25 characters",
			stdin:      strings.Repeat("a", 25) + "\ncat\njump\nblue\nquickly\n",
			wantCode:   app.ExitFieldInvalid,
			wantStderr: "reading noun1",
		},
		{
			name:       "scenario C unknown placeholder",
			stdin:      testVocabulary + "a <color> sky\n",
			wantCode:   app.ExitInvalidPlaceholder,
			wantStderr: "<color>",
		},
		{
			name:       "scenario D substitution reaches 101 characters",
			stdin:      strings.Repeat("w", 24) + "\ncat\njump\nblue\nquickly\n<noun1>" + strings.Repeat("x", 77) + "\n",
			wantCode:   app.ExitLineTooLong,
			wantStderr: "line 1",
		},
		{
			name:       "scenario E blank first word",
			stdin:      "\ncat\njump\nblue\nquickly\n",
			wantCode:   app.ExitFieldMissing,
			wantStderr: "reading noun1",
		},
		{
			name:     "scenario F vocabulary only",
			stdin:    testVocabulary,
			wantCode: app.ExitOK,
		},
		{
			name:       "lines before a failure are still written",
			stdin:      testVocabulary + "<adjective> sky\nbad <Noun1>\n",
			wantCode:   app.ExitInvalidPlaceholder,
			wantStdout: "blue sky\n",
		},
		{
			name:       "disallowed character in a word",
			stdin:      "dog\ncat!\njump\nblue\nquickly\n",
			wantCode:   app.ExitFieldInvalid,
			wantStderr: "reading noun2",
		},
		{
			name:       "template line over 100 characters",
			stdin:      testVocabulary + strings.Repeat("z", 101) + "\n",
			wantCode:   app.ExitLineTooLong,
			wantStderr: "line too long",
		},
		{
			name:       "empty input",
			stdin:      "",
			wantCode:   app.ExitFieldMissing,
			wantStderr: "madlib: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.stdin, "--no-color")

			assert.Equal(t, tt.wantCode, code, "stderr: %s", stderr)
			assert.Equal(t, tt.wantStdout, stdout)
			if tt.wantStderr != "" {
				assert.Contains(t, stderr, tt.wantStderr)
			}
			if tt.wantCode == app.ExitOK {
				assert.Empty(t, stderr)
			}
		})
	}
}

func TestRun_Verbose(t *testing.T) {
	code, stdout, stderr := runCLI(t, testVocabulary+"<noun1> <noun1>\n", "--verbose", "--no-color")

	require.Equal(t, app.ExitOK, code)
	assert.Equal(t, "dog dog\n", stdout)
	assert.Contains(t, stderr, "Vocabulary")
	assert.Contains(t, stderr, "quickly")
	assert.Contains(t, stderr, "Substitutions")
}

func TestRun_VerboseFromConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[output]\nverbose = true\ncolor = false\n"), 0644))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--config", configPath},
		strings.NewReader(testVocabulary+"<verb>\n"), &stdout, &stderr)

	require.Equal(t, app.ExitOK, code)
	assert.Equal(t, "jump\n", stdout.String())
	assert.Contains(t, stderr.String(), "Lines written")
}

func TestRun_BadConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[output\nverbose = "), 0644))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--config", configPath},
		strings.NewReader(testVocabulary), &stdout, &stderr)

	assert.Equal(t, app.ExitError, code)
	assert.Contains(t, stderr.String(), "failed to load configuration")
}

func TestRun_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "madlib.log")

	code, stdout, _ := runCLI(t, testVocabulary+"<noun2>\n", "--log-file", logPath)
	require.Equal(t, app.ExitOK, code)
	assert.Equal(t, "cat\n", stdout)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Run finished")
	assert.Contains(t, string(data), "substitutions=1")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	configPath := filepath.Join(t.TempDir(), "config.toml")
	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"--config", configPath},
		strings.NewReader(testVocabulary+"<noun1>\n"), &stdout, &stderr)

	assert.Equal(t, app.ExitError, code)
	assert.Contains(t, stderr.String(), "interrupted")
	assert.Empty(t, stdout.String())
}

func TestRun_UnexpectedArgument(t *testing.T) {
	code, _, stderr := runCLI(t, testVocabulary, "story.txt")

	assert.Equal(t, app.ExitError, code)
	assert.Contains(t, stderr, "story.txt")
}

func TestRun_Subcommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "version",
			args:     []string{"version"},
			contains: []string{"madlib version " + version},
		},
		{
			name:     "placeholders",
			args:     []string{"placeholders"},
			contains: []string{"<noun1>", "<noun2>", "<verb>", "<adjective>", "<adverb>", "24 characters", "100 characters"},
		},
		{
			name:     "config",
			args:     []string{"config", "--no-color"},
			contains: []string{"Config file:", "output.verbose", "log.max_size_mb", "10", "log-file"},
		},
		{
			name:     "config defaults",
			args:     []string{"config", "--defaults"},
			contains: []string{"[output]", "[log]", "max_size_mb = 10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "", tt.args...)

			require.Equal(t, app.ExitOK, code, "stderr: %s", stderr)
			for _, want := range tt.contains {
				assert.Contains(t, stdout, want)
			}
		})
	}
}

func TestRun_ConfigSetThenFilter(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"config", "set", "verbose=true", "--config", configPath},
		strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, app.ExitOK, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "verbose (output.verbose) = true")

	stdout.Reset()
	stderr.Reset()
	code = run(context.Background(), []string{"--config", configPath, "--no-color"},
		strings.NewReader(testVocabulary+"<adverb>\n"), &stdout, &stderr)
	require.Equal(t, app.ExitOK, code)
	assert.Equal(t, "quickly\n", stdout.String())
	assert.Contains(t, stderr.String(), "Lines read")
}

func TestRun_ManPages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "man")

	code, _, stderr := runCLI(t, "", "man", "--dir", dir)
	require.Equal(t, app.ExitOK, code, "stderr: %s", stderr)

	_, err := os.Stat(filepath.Join(dir, "madlib.1"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "madlib-placeholders.1"))
	assert.NoError(t, err)
}

func TestExpandHomePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/etc/madlib.toml", "/etc/madlib.toml"},
		{"~", home},
		{"~/.madlib/config.toml", filepath.Join(home, ".madlib/config.toml")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := expandHomePath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
