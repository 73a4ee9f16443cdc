// Package cmd wraps os/exec behind the Executor interface so code that
// launches processes can be exercised in tests with cmd_test.MockCmdExec.
package cmd
