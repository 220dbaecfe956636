package main

import (
	"context"
	"os"

	"github.com/outofforest/ioc/v2"
	"github.com/outofforest/logger"
	"github.com/outofforest/run"
	"github.com/spf13/cobra"

	"github.com/outofforest/kedro-docker/commands"
	"github.com/outofforest/kedro-docker/config"
	"github.com/outofforest/kedro-docker/infra/engine"
)

func iocBuilder(c *ioc.Container) {
	c.Singleton(commands.NewCmdFactory)
	c.Singleton(engine.NewExecutor)
	c.Singleton(engine.New)

	c.Singleton(config.NewRootFactory)
	c.Singleton(config.NewRoot)

	c.Singleton(commands.NewRootCommand)
	c.SingletonNamed("build", commands.NewBuildCommand)
	c.SingletonNamed("run", commands.NewRunCommand)
	c.SingletonNamed("ipython", commands.NewIPythonCommand)
	c.SingletonNamed("jupyter", commands.NewJupyterCommand)
	c.SingletonNamed("cmd", commands.NewCmdCommand)
	c.SingletonNamed("dive", commands.NewDiveCommand)
}

func main() {
	run.New().WithContainerBuilder(iocBuilder).Run(context.Background(), "kedro-docker", app)
}

func app(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)
	if code, ok := engine.ExitCode(err); ok {
		// output of the failed child has been already streamed, its exit code is relayed as is
		_ = logger.Get(ctx).Sync()
		os.Exit(code)
	}
	return err
}
