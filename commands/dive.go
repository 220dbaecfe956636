package commands

import (
	"github.com/outofforest/ioc/v2"
	"github.com/spf13/cobra"

	kedrodocker "github.com/outofforest/kedro-docker"
	"github.com/outofforest/kedro-docker/config"
	"github.com/outofforest/kedro-docker/infra/template"
)

// NewDiveCommand creates new dive command
func NewDiveCommand(cmdF *CmdFactory) *cobra.Command {
	var imageF *config.ImageFactory
	var engineArgsF *config.EngineArgsFactory
	diveF := &config.DiveFactory{}

	cmd := &cobra.Command{
		Short: "Runs Dive analyzer of Docker image efficiency",
		Args:  cobra.NoArgs,
		Use:   "dive [flags]",
		RunE: cmdF.Cmd(func(c *ioc.Container) {
			c.Singleton(imageF.Config)
			c.Singleton(engineArgsF.Config)
			c.Singleton(diveF.Config)
		}, kedrodocker.Dive),
	}
	imageF = cmdF.AddImageFlags(cmd)
	engineArgsF = cmdF.AddEngineArgsFlags(cmd, runEngineArgsUsage)
	cmd.Flags().BoolVar(&diveF.CI, "ci", true, "Run Dive in non-interactive mode")
	cmd.Flags().BoolVar(&diveF.NoCI, "no-ci", false, "Run Dive in interactive mode")
	cmd.Flags().StringVarP(&diveF.CIConfigPath, "ci-config-path", "c", template.DiveCI, "Path to `.dive-ci` config file")
	cmd.Flags().StringVar(&diveF.Image, "dive-image", config.DefaultDiveImage, "Dive image")
	return cmd
}
