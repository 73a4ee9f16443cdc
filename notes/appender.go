package notes

import (
	"context"
	"strings"

	"github.com/ByteMirror/notesappend/log"
)

// Result is the outcome of one append. Message is set on success, Error on failure.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Appender appends text to notes through a ScriptRunner.
type Appender struct {
	runner ScriptRunner
}

func NewAppender(runner ScriptRunner) *Appender {
	return &Appender{runner: runner}
}

// AppendToNote appends text to the note titled noteTitle, with a timestamp
// prefix when includeTimestamp is set. Failures come back in the Result and
// are never returned as errors.
//
// Anything the script writes to stderr marks the append as failed, whatever
// its exit status.
func (a *Appender) AppendToNote(ctx context.Context, noteTitle, textToAppend string, includeTimestamp bool) Result {
	title := EscapeTitle(noteTitle)
	text := EscapeText(textToAppend)

	variant := VariantPlain
	if includeTimestamp {
		variant = VariantTimestamp
	}

	stdout, stderr, err := a.runner.RunAppendScript(ctx, variant, title, text)
	if err != nil {
		log.ErrorLog.Printf("error appending to note %q: %v", noteTitle, err)
		return Result{Success: false, Error: err.Error()}
	}
	if stderr != "" {
		log.ErrorLog.Printf("append script error for note %q: %s", noteTitle, stderr)
		return Result{Success: false, Error: stderr}
	}

	message := strings.TrimSpace(stdout)
	log.InfoLog.Printf("appended to note %q (%s): %s", noteTitle, variant, message)
	return Result{Success: true, Message: message}
}
