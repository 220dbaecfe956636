package commands

import (
	"github.com/outofforest/ioc/v2"
	"github.com/spf13/cobra"

	kedrodocker "github.com/outofforest/kedro-docker"
	"github.com/outofforest/kedro-docker/config"
)

const runEngineArgsUsage = "Optional arguments to be passed to `docker run` command"

// NewRunCommand creates new run command
func NewRunCommand(cmdF *CmdFactory) *cobra.Command {
	return newForwardCommand(cmdF, &cobra.Command{
		Short: "Runs the pipeline in the Docker container",
		Long: "Runs the pipeline in the Docker container.\n" +
			"Any extra arguments unspecified in this help are passed to `kedro run` inside the container as is.",
		Use: "run [flags] [args...]",
	}, kedrodocker.Run)
}

// NewIPythonCommand creates new ipython command
func NewIPythonCommand(cmdF *CmdFactory) *cobra.Command {
	return newForwardCommand(cmdF, &cobra.Command{
		Short: "Runs ipython in the Docker container",
		Long: "Runs ipython in the Docker container.\n" +
			"Any extra arguments unspecified in this help are passed to `kedro ipython` inside the container as is.",
		Use: "ipython [flags] [args...]",
	}, kedrodocker.IPython)
}

// NewCmdCommand creates new cmd command
func NewCmdCommand(cmdF *CmdFactory) *cobra.Command {
	return newForwardCommand(cmdF, &cobra.Command{
		Short: "Runs arbitrary command in the Docker container",
		Long: "Runs arbitrary command from args in the Docker container.\n" +
			"If args are not specified, `kedro run` is invoked inside the container.",
		Use: "cmd [flags] [command...]",
	}, kedrodocker.Cmd)
}

func newForwardCommand(cmdF *CmdFactory, cmd *cobra.Command, cmdFunc interface{}, setupFuncs ...func(c *ioc.Container)) *cobra.Command {
	var imageF *config.ImageFactory
	var engineArgsF *config.EngineArgsFactory
	var runF *config.RunFactory

	cmd.DisableFlagParsing = true
	cmd.RunE = cmdF.Forward(func(c *ioc.Container) {
		c.Singleton(imageF.Config)
		c.Singleton(engineArgsF.Config)
		c.Singleton(runF.Config)
		for _, setupFunc := range setupFuncs {
			setupFunc(c)
		}
	}, cmdFunc)

	imageF = cmdF.AddImageFlags(cmd)
	engineArgsF = cmdF.AddEngineArgsFlags(cmd, runEngineArgsUsage)
	runF = cmdF.AddRunFlags(cmd)
	return cmd
}
