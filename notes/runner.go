package notes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ByteMirror/notesappend/cmd"
	"github.com/ByteMirror/notesappend/config"
	"github.com/ByteMirror/notesappend/log"
)

// Variant selects which append script runs.
type Variant int

const (
	VariantPlain Variant = iota
	VariantTimestamp
)

const (
	PlainScript     = "append_to_note.applescript"
	TimestampScript = "append_with_timestamp.applescript"
)

// ScriptName returns the file name of the script for v.
func (v Variant) ScriptName() (string, error) {
	switch v {
	case VariantPlain:
		return PlainScript, nil
	case VariantTimestamp:
		return TimestampScript, nil
	default:
		return "", fmt.Errorf("unknown append variant %d", int(v))
	}
}

func (v Variant) String() string {
	switch v {
	case VariantPlain:
		return "plain"
	case VariantTimestamp:
		return "timestamp"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ScriptRunner runs an append script with an already escaped title and text.
// A non-nil error means the script could not be run at all.
type ScriptRunner interface {
	RunAppendScript(ctx context.Context, variant Variant, title, text string) (stdout, stderr string, err error)
}

// OsascriptRunner runs the append scripts through an interpreter, osascript by default.
type OsascriptRunner struct {
	interpreter string
	scriptDir   string
	cmdExec     cmd.Executor
}

// NewOsascriptRunner creates a runner from cfg that launches real processes.
func NewOsascriptRunner(cfg *config.Config) *OsascriptRunner {
	return NewOsascriptRunnerWithDeps(cfg.Interpreter, cfg.ResolvedScriptDir(), cmd.MakeExecutor())
}

// NewOsascriptRunnerWithDeps creates a runner with provided dependencies for testing.
func NewOsascriptRunnerWithDeps(interpreter, scriptDir string, cmdExec cmd.Executor) *OsascriptRunner {
	if interpreter == "" {
		interpreter = config.DefaultInterpreter
	}
	return &OsascriptRunner{
		interpreter: interpreter,
		scriptDir:   scriptDir,
		cmdExec:     cmdExec,
	}
}

// ScriptPath returns the full path of the script for variant.
func (r *OsascriptRunner) ScriptPath(variant Variant) (string, error) {
	name, err := variant.ScriptName()
	if err != nil {
		return "", err
	}
	return filepath.Join(r.scriptDir, name), nil
}

// shellUnquoter reverses EscapeTitle/EscapeText's quote escaping the way a
// shell does for a double-quoted word. The <br> markers are left in place.
var shellUnquoter = strings.NewReplacer(`\"`, `"`)

// RunAppendScript runs the script for variant with title and text as its two
// arguments. title and text arrive escaped for a double-quoted shell word;
// since no shell sits in between, the escaping is undone here so the script
// receives the same strings a shell would have handed it.
//
// The exit status is not consulted: a script that exits non-zero without
// writing to stderr still counts as run.
func (r *OsascriptRunner) RunAppendScript(ctx context.Context, variant Variant, title, text string) (string, string, error) {
	scriptPath, err := r.ScriptPath(variant)
	if err != nil {
		return "", "", err
	}

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, r.interpreter, scriptPath, shellUnquoter.Replace(title), shellUnquoter.Replace(text))
	c.Stdout = &stdout
	c.Stderr = &stderr

	log.DebugLog.Printf("running %s", cmd.ToString(c))
	if err := r.cmdExec.Run(c); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return stdout.String(), stderr.String(), fmt.Errorf("failed to run %s: %w", r.interpreter, err)
		}
		log.WarningLog.Printf("%s exited with status %d", r.interpreter, exitErr.ExitCode())
	}
	return stdout.String(), stderr.String(), nil
}
