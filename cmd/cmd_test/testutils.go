package cmd_test

import (
	"os/exec"
)

// MockCmdExec is a cmd.Executor whose behavior is supplied by the test.
// A nil RunFunc falls back to a no-op success.
type MockCmdExec struct {
	RunFunc func(cmd *exec.Cmd) error
}

func (e MockCmdExec) Run(cmd *exec.Cmd) error {
	if e.RunFunc == nil {
		return nil
	}
	return e.RunFunc(cmd)
}
