package docker

import (
	"context"
	"errors"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// CommandRunner executes external commands and returns their combined output.
type CommandRunner interface {
	RunCommand(ctx context.Context, args ...string) (string, error)
}

// DefaultCommandRunner runs commands on the host.
type DefaultCommandRunner struct{}

var _ CommandRunner = &DefaultCommandRunner{}

func (d *DefaultCommandRunner) RunCommand(ctx context.Context, args ...string) (string, error) {
	log.Debug("Running command: ", args)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	out, err := cmd.CombinedOutput()
	log.Debug("Command output: ", string(out))
	return string(out), err
}

// FakeCommandRunner records calls and returns canned output. It is used
// by tests in this package and in the handlers package.
type FakeCommandRunner struct {
	Output string
	ErrStr string

	// Calls records the argv of every invocation.
	Calls [][]string
}

var _ CommandRunner = &FakeCommandRunner{}

func (f *FakeCommandRunner) RunCommand(_ context.Context, args ...string) (string, error) {
	f.Calls = append(f.Calls, args)
	if f.ErrStr != "" {
		return f.Output, errors.New(f.ErrStr)
	}
	return f.Output, nil
}
