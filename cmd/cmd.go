package cmd

import (
	"os/exec"
	"strings"
)

// Executor runs external commands. It exists so callers can swap in a fake in tests.
type Executor interface {
	Run(cmd *exec.Cmd) error
}

type Exec struct{}

func (e Exec) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

func MakeExecutor() Executor {
	return Exec{}
}

// ToString renders the argv of cmd joined by spaces.
func ToString(cmd *exec.Cmd) string {
	if cmd == nil {
		return "<nil>"
	}
	return strings.Join(cmd.Args, " ")
}
