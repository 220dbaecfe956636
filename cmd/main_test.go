package main

import (
	"context"
	"testing"

	"github.com/outofforest/ioc/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	c := ioc.New()
	c.Singleton(func() context.Context {
		return context.Background()
	})
	iocBuilder(c)

	var rootCmd *cobra.Command
	c.Resolve(&rootCmd)
	return rootCmd
}

func commandNames(cmd *cobra.Command) []string {
	return lo.Map(cmd.Commands(), func(cmd *cobra.Command, _ int) string {
		return cmd.Name()
	})
}

func TestCommands(t *testing.T) {
	rootCmd := newRootCommand()

	for _, name := range []string{"build", "run", "ipython", "jupyter", "cmd", "dive"} {
		if !lo.Contains(commandNames(rootCmd), name) {
			t.Errorf("command %s is not registered: %v", name, commandNames(rootCmd))
		}
	}

	jupyterCmd, _, err := rootCmd.Find([]string{"jupyter"})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"notebook", "lab"} {
		if !lo.Contains(commandNames(jupyterCmd), name) {
			t.Errorf("jupyter command %s is not registered", name)
		}
	}
}

func TestLoggerFlags(t *testing.T) {
	flags := newRootCommand().PersistentFlags()

	if flags.Lookup("log-format") == nil {
		t.Error("log-format flag is not registered")
	}
	if verbose := flags.Lookup("verbose"); verbose == nil || verbose.Shorthand != "v" {
		t.Error("verbose flag is not registered")
	}
}

func TestAppReturnsPreflightError(t *testing.T) {
	rootCmd := newRootCommand()
	rootCmd.SetArgs([]string{"build", "--uid", "not-a-number"})

	if err := app(context.Background(), rootCmd); err == nil {
		t.Fatal("expected error")
	}
}
