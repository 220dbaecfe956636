package engine

import (
	"context"
	"io"
	"os/exec"
	"reflect"
	"strings"
	"testing"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/kedro-docker/config"
	"github.com/outofforest/kedro-docker/infra/types"
)

type fakeExecutor struct {
	calls  [][]string
	output string
	err    error
}

func (e *fakeExecutor) Exec(ctx context.Context, cmd *exec.Cmd) error {
	e.calls = append(e.calls, cmd.Args)
	if cmd.Stdout != nil && e.output != "" {
		if _, err := io.WriteString(cmd.Stdout, e.output); err != nil {
			return err
		}
	}
	return e.err
}

func newEngine(executor Executor) *Engine {
	return New(config.Root{Engine: "docker"}, executor)
}

func newContext() context.Context {
	return logger.WithLogger(context.Background(), zap.NewNop())
}

func TestCheckDaemon(t *testing.T) {
	executor := &fakeExecutor{}
	if err := newEngine(executor).CheckDaemon(newContext()); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(executor.calls, [][]string{{"docker", "version"}}) {
		t.Errorf("unexpected calls: %v", executor.calls)
	}

	executor.err = errors.New("exec: \"docker\": executable file not found in $PATH")
	err := newEngine(executor).CheckDaemon(newContext())
	if !errors.Is(err, ErrNoDaemon) {
		t.Fatalf("expected no-daemon error, got %v", err)
	}
}

func TestEnsureImage(t *testing.T) {
	executor := &fakeExecutor{output: "8f2a3b4c5d6e\n"}
	if err := newEngine(executor).EnsureImage(newContext(), "project-dummy"); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(executor.calls, [][]string{{"docker", "images", "-q", "project-dummy"}}) {
		t.Errorf("unexpected calls: %v", executor.calls)
	}

	executor = &fakeExecutor{output: "\n"}
	err := newEngine(executor).EnsureImage(newContext(), "project-dummy")
	if err == nil || !strings.Contains(err.Error(), "Unable to find image `project-dummy` locally") {
		t.Fatalf("expected missing image error, got %v", err)
	}
}

func TestImageExistsExecutorFailure(t *testing.T) {
	executor := &fakeExecutor{err: errors.New("exec failed")}
	if _, err := newEngine(executor).ImageExists(newContext(), "project-dummy"); err == nil {
		t.Fatal("expected error")
	}
}

func TestRun(t *testing.T) {
	executor := &fakeExecutor{}
	err := newEngine(executor).Run(newContext(), types.Invocation{
		Subcommand: types.SubcommandRun,
		Args:       []string{"--rm"},
		Target:     "project-dummy",
		Command:    []string{"kedro", "run"},
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := [][]string{{"docker", "run", "--rm", "project-dummy", "kedro", "run"}}
	if !reflect.DeepEqual(executor.calls, expected) {
		t.Errorf("unexpected calls: %v", executor.calls)
	}
}

func TestExitCode(t *testing.T) {
	code, ok := ExitCode(errors.WithStack(ChildError{Code: 3, Err: errors.New("exit status 3")}))
	if !ok || code != 3 {
		t.Fatalf("expected exit code 3, got %d, %t", code, ok)
	}
	if _, ok := ExitCode(errors.New("other")); ok {
		t.Fatal("exit code found in unrelated error")
	}
	if _, ok := ExitCode(nil); ok {
		t.Fatal("exit code found in nil error")
	}
}
