package commands

import (
	"github.com/outofforest/ioc/v2"
	"github.com/spf13/cobra"

	kedrodocker "github.com/outofforest/kedro-docker"
	"github.com/outofforest/kedro-docker/config"
)

// NewBuildCommand creates new build command
func NewBuildCommand(cmdF *CmdFactory) *cobra.Command {
	var imageF *config.ImageFactory
	var engineArgsF *config.EngineArgsFactory
	buildF := &config.BuildFactory{}

	cmd := &cobra.Command{
		Short: "Builds a Docker image for the project",
		Args:  cobra.NoArgs,
		Use:   "build [flags]",
		RunE: cmdF.Cmd(func(c *ioc.Container) {
			c.Singleton(imageF.Config)
			c.Singleton(engineArgsF.Config)
			c.Singleton(buildF.Config)
		}, kedrodocker.Build),
	}
	imageF = cmdF.AddImageFlags(cmd)
	engineArgsF = cmdF.AddEngineArgsFlags(cmd, "Optional arguments to be passed to `docker build` command")
	cmd.Flags().IntVar(&buildF.UID, "uid", -1, "User ID for kedro user inside the container. Default is the current user's UID")
	cmd.Flags().IntVar(&buildF.GID, "gid", -1, "Group ID for kedro user inside the container. Default is the current user's GID")
	cmd.Flags().StringVar(&buildF.BaseImage, "base-image", config.DefaultBaseImage, "Base image the project image is built on")
	return cmd
}
