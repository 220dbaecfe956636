package commands

import (
	"github.com/outofforest/ioc/v2"
	"github.com/spf13/cobra"

	kedrodocker "github.com/outofforest/kedro-docker"
	"github.com/outofforest/kedro-docker/config"
)

// NewJupyterCommand creates new jupyter command group
func NewJupyterCommand(cmdF *CmdFactory) *cobra.Command {
	cmd := &cobra.Command{
		Short: "Runs jupyter notebook / lab in the Docker container",
		Use:   "jupyter",
	}
	cmd.AddCommand(
		newJupyterCommand(cmdF, kedrodocker.JupyterNotebook, kedrodocker.Notebook),
		newJupyterCommand(cmdF, kedrodocker.JupyterLab, kedrodocker.Lab),
	)
	return cmd
}

func newJupyterCommand(cmdF *CmdFactory, mode kedrodocker.JupyterMode, cmdFunc interface{}) *cobra.Command {
	jupyterF := &config.JupyterFactory{}

	cmd := newForwardCommand(cmdF, &cobra.Command{
		Short: "Runs jupyter " + string(mode) + " in the Docker container",
		Long: "Runs jupyter " + string(mode) + " in the Docker container.\n" +
			"Any extra arguments unspecified in this help are passed to `kedro jupyter " + string(mode) +
			"` inside the container as is.",
		Use: string(mode) + " [flags] [args...]",
	}, cmdFunc, func(c *ioc.Container) {
		c.Singleton(jupyterF.Config)
	})
	cmd.Flags().IntVar(&jupyterF.Port, "port", config.DefaultJupyterPort, "Host port to publish to")
	return cmd
}
