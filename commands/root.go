package commands

import (
	"os"

	"github.com/outofforest/ioc/v2"
	"github.com/outofforest/logger"
	"github.com/ridge/must"
	"github.com/spf13/cobra"

	"github.com/outofforest/kedro-docker/config"
)

// NewRootCommand returns new root command
func NewRootCommand(c *ioc.Container, rootF *config.RootFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "docker",
		Short:         "Dockerize your Kedro project",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVar(&rootF.ProjectPath, "project-path", must.String(os.Getwd()), "Root directory of the project")
	rootCmd.PersistentFlags().StringVar(&rootF.Engine, "engine", config.DefaultEngine, "Container engine binary")
	// values are consumed by the logger configured from CLI before commands are executed
	logger.AddFlags(logger.DefaultConfig, rootCmd.PersistentFlags())

	c.ForEachNamed(func(cmd *cobra.Command) {
		rootCmd.AddCommand(cmd)
	})
	return rootCmd
}
