package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByteMirror/notesappend/config"
	"github.com/ByteMirror/notesappend/log"
	"github.com/ByteMirror/notesappend/notes"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

const usageBanner = `
Notes Append Tool

Usage:
  notesappend <note-title> <text-to-append> [--timestamp]

Examples:
  notesappend "Jul 16, 2025" "New text to add"
  notesappend "Jul 16, 2025" "Text with timestamp" --timestamp

Options:
  --timestamp         Include date/time stamp before the appended text
  --script-dir <dir>  Directory holding the append scripts (overrides config)
  --version           Print the version number (only argument)
`

const (
	timestampFlag = "--timestamp"
	scriptDirFlag = "--script-dir"
	versionFlag   = "--version"
	debugFlag     = "--debug"
)

var (
	errUsage        = errors.New("usage")
	errAppendFailed = errors.New("append failed")
)

// invocation is the parsed command line. Flag parsing is done by hand so
// that note titles and text may be any string, including ones starting with "-".
type invocation struct {
	positional []string
	timestamp  bool
	scriptDir  string
}

// parseArgs pulls the recognized flags out of args wherever they appear and
// keeps everything else, in order, as positional arguments.
func parseArgs(args []string) (invocation, error) {
	var inv invocation
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == timestampFlag:
			inv.timestamp = true
		case arg == scriptDirFlag:
			if i+1 >= len(args) {
				return inv, fmt.Errorf("%s requires a directory: %w", scriptDirFlag, errUsage)
			}
			i++
			inv.scriptDir = args[i]
		case strings.HasPrefix(arg, scriptDirFlag+"="):
			inv.scriptDir = strings.TrimPrefix(arg, scriptDirFlag+"=")
		default:
			inv.positional = append(inv.positional, arg)
		}
	}
	return inv, nil
}

// runnerFactory builds the ScriptRunner for a loaded config. Tests replace it.
type runnerFactory func(cfg *config.Config) notes.ScriptRunner

func defaultRunnerFactory(cfg *config.Config) notes.ScriptRunner {
	return notes.NewOsascriptRunner(cfg)
}

func newRootCmd(newRunner runnerFactory) *cobra.Command {
	return &cobra.Command{
		Use:                "notesappend <note-title> <text-to-append>",
		Short:              "Append text to a note in the Notes app",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			// --version and --debug only count as the sole argument, so they
			// never shadow a note title or text.
			if len(args) == 1 {
				switch args[0] {
				case versionFlag:
					fmt.Fprintf(cmd.OutOrStdout(), "notesappend version %s\n", version)
					return nil
				case debugFlag:
					return printDebug(cmd.OutOrStdout())
				}
			}

			inv, err := parseArgs(args)
			if err != nil || len(inv.positional) < 2 {
				fmt.Fprint(cmd.OutOrStdout(), usageBanner)
				return errUsage
			}

			cfg := config.LoadConfig()
			if inv.scriptDir != "" {
				cfg.ScriptDir = inv.scriptDir
			}

			appender := notes.NewAppender(newRunner(cfg))
			res := appender.AppendToNote(cmd.Context(), inv.positional[0], inv.positional[1], inv.timestamp)
			if !res.Success {
				errStyle := lipgloss.NewRenderer(cmd.ErrOrStderr()).NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", errStyle.Render("error:"), strings.TrimRight(res.Error, "\n"))
				return errAppendFailed
			}
			if res.Message != "" {
				fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			}
			return nil
		},
	}
}

// printDebug prints debug information like config paths.
func printDebug(out io.Writer) error {
	cfg := config.LoadConfig()

	configDir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	configJson, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Fprintf(out, "Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
	fmt.Fprintf(out, "Scripts: %s\n", cfg.ResolvedScriptDir())
	fmt.Fprintf(out, "Logs: %s (debug: %t)\n", log.FileName(), log.IsDebugEnabled())
	return nil
}

// execute runs the CLI with args and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, newRunner runnerFactory) int {
	if args == nil {
		args = []string{}
	}
	rootCmd := newRootCmd(newRunner)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, errAppendFailed):
		return 1
	default:
		fmt.Fprintln(stderr, err)
		return 1
	}
}

func main() {
	log.Initialize()
	code := execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr, defaultRunnerFactory)
	log.Close()
	os.Exit(code)
}
