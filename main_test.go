package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ByteMirror/notesappend/config"
	"github.com/ByteMirror/notesappend/log"
	"github.com/ByteMirror/notesappend/notes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	variants []notes.Variant
	titles   []string
	texts    []string
	scripts  []string
	stdout   string
	stderr   string
}

func (r *recordingRunner) RunAppendScript(_ context.Context, variant notes.Variant, title, text string) (string, string, error) {
	r.variants = append(r.variants, variant)
	r.titles = append(r.titles, title)
	r.texts = append(r.texts, text)
	return r.stdout, r.stderr, nil
}

func run(t *testing.T, runner *recordingRunner, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(config.HomeEnv, t.TempDir())
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	factory := func(cfg *config.Config) notes.ScriptRunner {
		runner.scripts = append(runner.scripts, cfg.ScriptDir)
		return runner
	}
	code := execute(context.Background(), args, &stdout, &stderr, factory)
	return code, stdout.String(), stderr.String()
}

func TestUsageWithTooFewArgs(t *testing.T) {
	for _, args := range [][]string{{}, {"Jul 16, 2025"}, {"--timestamp", "Jul 16, 2025"}} {
		runner := &recordingRunner{}
		code, stdout, _ := run(t, runner, args...)

		assert.Equal(t, 1, code, "args %v", args)
		assert.Contains(t, stdout, "Usage:")
		assert.Contains(t, stdout, "--timestamp")
		assert.Empty(t, runner.variants, "no script should run for args %v", args)
	}
}

func TestAppendPlain(t *testing.T) {
	runner := &recordingRunner{stdout: "Appended successfully\n"}
	code, stdout, stderr := run(t, runner, "Jul 16, 2025", "New text to add")

	assert.Equal(t, 0, code)
	assert.Equal(t, "Appended successfully\n", stdout)
	assert.Empty(t, stderr)
	require.Len(t, runner.variants, 1)
	assert.Equal(t, notes.VariantPlain, runner.variants[0])
	assert.Equal(t, "Jul 16, 2025", runner.titles[0])
	assert.Equal(t, "New text to add", runner.texts[0])
}

func TestTimestampFlagAnywhere(t *testing.T) {
	positions := [][]string{
		{"--timestamp", "Jul 16, 2025", "text"},
		{"Jul 16, 2025", "--timestamp", "text"},
		{"Jul 16, 2025", "text", "--timestamp"},
	}
	for _, args := range positions {
		runner := &recordingRunner{stdout: "ok"}
		code, _, _ := run(t, runner, args...)

		assert.Equal(t, 0, code, "args %v", args)
		require.Len(t, runner.variants, 1)
		assert.Equal(t, notes.VariantTimestamp, runner.variants[0], "args %v", args)
		assert.Equal(t, "Jul 16, 2025", runner.titles[0])
		assert.Equal(t, "text", runner.texts[0])
	}
}

func TestAppendEscapesArguments(t *testing.T) {
	runner := &recordingRunner{stdout: "ok"}
	code, _, _ := run(t, runner, `My "Note"`, "one\ntwo \"three\"")

	assert.Equal(t, 0, code)
	require.Len(t, runner.titles, 1)
	assert.Equal(t, `My \"Note\"`, runner.titles[0])
	assert.Equal(t, `one<br>two \"three\"`, runner.texts[0])
}

func TestAppendFailureExitCode(t *testing.T) {
	runner := &recordingRunner{stderr: "Note not found"}
	code, stdout, stderr := run(t, runner, "Missing", "text")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "error: Note not found\n", stderr)
}

func TestScriptDirFlag(t *testing.T) {
	runner := &recordingRunner{stdout: "ok"}
	code, _, _ := run(t, runner, "--script-dir", "/opt/scripts", "t", "x")

	assert.Equal(t, 0, code)
	require.Len(t, runner.scripts, 1)
	assert.Equal(t, "/opt/scripts", runner.scripts[0])
}

func TestVersionAndDebugFlags(t *testing.T) {
	code, stdout, _ := run(t, &recordingRunner{}, "--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "notesappend version "+version+"\n", stdout)

	code, stdout, _ = run(t, &recordingRunner{}, "--debug")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, config.ConfigFileName)
	assert.Contains(t, stdout, `"interpreter": "osascript"`)
	assert.Contains(t, stdout, fmt.Sprintf("(debug: %t)", log.IsDebugEnabled()))
}

func TestTitlesNamedLikeCommandsAreAppended(t *testing.T) {
	for _, title := range []string{"version", "debug", "help", "completion", "--version", "--help", "-h"} {
		runner := &recordingRunner{stdout: "ok"}
		code, stdout, _ := run(t, runner, title, "text for the note")

		assert.Equal(t, 0, code, "title %q", title)
		assert.Equal(t, "ok\n", stdout, "title %q", title)
		require.Len(t, runner.titles, 1, "title %q", title)
		assert.Equal(t, title, runner.titles[0])
		assert.Equal(t, "text for the note", runner.texts[0])
	}
}

func TestTextStartingWithDash(t *testing.T) {
	for _, text := range []string{"- buy milk", "-5 degrees", "--", "-", "--verbose"} {
		runner := &recordingRunner{stdout: "ok"}
		code, _, stderr := run(t, runner, "Shopping", text, "--timestamp")

		assert.Equal(t, 0, code, "text %q", text)
		assert.Empty(t, stderr, "text %q", text)
		require.Len(t, runner.texts, 1, "text %q", text)
		assert.Equal(t, "Shopping", runner.titles[0])
		assert.Equal(t, text, runner.texts[0])
		assert.Equal(t, notes.VariantTimestamp, runner.variants[0])
	}
}

func TestUsageBannerEndsWithSingleNewline(t *testing.T) {
	_, stdout, _ := run(t, &recordingRunner{})
	assert.Equal(t, usageBanner, stdout)
	assert.False(t, strings.HasSuffix(stdout, "\n\n"))
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want invocation
		err  bool
	}{
		{"positional only", []string{"t", "x"}, invocation{positional: []string{"t", "x"}}, false},
		{"timestamp anywhere", []string{"--timestamp", "t", "x"}, invocation{positional: []string{"t", "x"}, timestamp: true}, false},
		{"script dir separate", []string{"t", "--script-dir", "/s", "x"}, invocation{positional: []string{"t", "x"}, scriptDir: "/s"}, false},
		{"script dir equals", []string{"--script-dir=/s", "t", "x"}, invocation{positional: []string{"t", "x"}, scriptDir: "/s"}, false},
		{"dash text kept", []string{"t", "-x"}, invocation{positional: []string{"t", "-x"}}, false},
		{"script dir missing value", []string{"t", "x", "--script-dir"}, invocation{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if tt.err {
				assert.ErrorIs(t, err, errUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScriptDirMissingValueShowsUsage(t *testing.T) {
	runner := &recordingRunner{}
	code, stdout, _ := run(t, runner, "t", "x", "--script-dir")

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Usage:")
	assert.Empty(t, runner.variants)
}
