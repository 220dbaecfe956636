package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/outofforest/libexec"
	"github.com/pkg/errors"

	"github.com/outofforest/kedro-docker/config"
	"github.com/outofforest/kedro-docker/infra/types"
)

// ErrNoDaemon is returned if container engine daemon does not respond
var ErrNoDaemon = errors.New("Cannot connect to the Docker daemon. Is the Docker daemon running?")

// ChildError is returned if engine command exits with non-zero code
type ChildError struct {
	// Code is the exit code of the engine command
	Code int

	// Err is the error reported by the executor
	Err error
}

// Error returns the string representation of the error
func (e ChildError) Error() string {
	return fmt.Sprintf("engine command exited with code %d: %s", e.Code, e.Err)
}

// Executor executes commands
type Executor interface {
	// Exec executes command and waits until it exits
	Exec(ctx context.Context, cmd *exec.Cmd) error
}

// NewExecutor returns executor running commands as child processes
func NewExecutor() Executor {
	return libexecExecutor{}
}

type libexecExecutor struct{}

func (e libexecExecutor) Exec(ctx context.Context, cmd *exec.Cmd) error {
	return libexec.Exec(ctx, cmd)
}

// New creates new engine
func New(root config.Root, executor Executor) *Engine {
	return &Engine{
		binary:   root.Engine,
		executor: executor,
	}
}

// Engine runs container engine commands
type Engine struct {
	binary   string
	executor Executor
}

// CheckDaemon verifies that container engine is installed and its daemon responds
func (e *Engine) CheckDaemon(ctx context.Context) error {
	cmd := e.command("version")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := e.execute(ctx, cmd); err != nil {
		return errors.WithStack(ErrNoDaemon)
	}
	return nil
}

// ImageExists returns true if image exists locally
func (e *Engine) ImageExists(ctx context.Context, image types.ImageTag) (bool, error) {
	stdout := &bytes.Buffer{}
	cmd := e.command("images", "-q", image.String())
	cmd.Stdout = stdout
	cmd.Stderr = io.Discard
	if err := e.execute(ctx, cmd); err != nil {
		var childErr ChildError
		if !errors.As(err, &childErr) {
			return false, err
		}
		return false, nil
	}
	return strings.TrimSpace(stdout.String()) != "", nil
}

// EnsureImage returns error if image does not exist locally
func (e *Engine) EnsureImage(ctx context.Context, image types.ImageTag) error {
	exists, err := e.ImageExists(ctx, image)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Errorf("Unable to find image `%s` locally. Please build it first by running: kedro docker build", image)
	}
	return nil
}

// Run executes invocation streaming its output
func (e *Engine) Run(ctx context.Context, invocation types.Invocation) error {
	cmd := e.command(invocation.Argv()...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if invocation.Interactive {
		cmd.Stdin = os.Stdin
	}
	return e.execute(ctx, cmd)
}

func (e *Engine) command(args ...string) *exec.Cmd {
	return exec.Command(e.binary, args...)
}

// execute runs the command, failure of the child process is reported as ChildError.
// Errors caused by cancelled context are returned untouched.
func (e *Engine) execute(ctx context.Context, cmd *exec.Cmd) error {
	err := e.executor.Exec(ctx, cmd)
	if err == nil || ctx.Err() != nil {
		return err
	}
	if cmd.ProcessState == nil || cmd.ProcessState.Success() {
		return err
	}
	code := cmd.ProcessState.ExitCode()
	if code < 0 {
		// terminated by signal
		code = 1
	}
	return errors.WithStack(ChildError{Code: code, Err: err})
}

// ExitCode returns exit code of the failed engine command found in the error chain
func ExitCode(err error) (int, bool) {
	var childErr ChildError
	if errors.As(err, &childErr) {
		return childErr.Code, true
	}
	return 0, false
}
