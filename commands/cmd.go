package commands

import (
	"github.com/outofforest/ioc/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/outofforest/kedro-docker/config"
)

// NewCmdFactory returns new CmdFactory.
func NewCmdFactory(c *ioc.Container) *CmdFactory {
	return &CmdFactory{
		c: c,
	}
}

// CmdFactory is a wrapper around cobra RunE.
type CmdFactory struct {
	c *ioc.Container
}

// Cmd returns function compatible with RunE.
func (f *CmdFactory) Cmd(setupFunc interface{}, cmdFunc interface{}) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		f.c.Singleton(func() config.Args {
			return args
		})
		if setupFunc != nil {
			f.c.Call(setupFunc)
		}
		var err error
		f.c.Call(cmdFunc, &err)
		return err
	}
}

// Forward returns function compatible with RunE for commands forwarding unrecognized arguments.
// Command must have flag parsing disabled, its own flags are extracted from arguments here.
func (f *CmdFactory) Forward(setupFunc interface{}, cmdFunc interface{}) func(cmd *cobra.Command, args []string) error {
	run := f.Cmd(setupFunc, cmdFunc)
	return func(cmd *cobra.Command, args []string) error {
		flags := knownFlags(cmd)
		own, forwarded := SplitArgs(flags, args)
		if err := flags.Parse(own); err != nil {
			return errors.WithStack(err)
		}
		if help, err := flags.GetBool("help"); err == nil && help {
			return cmd.Help()
		}
		return run(cmd, forwarded)
	}
}

// AddImageFlags adds image flags to command.
func (f *CmdFactory) AddImageFlags(cmd *cobra.Command) *config.ImageFactory {
	imageF := &config.ImageFactory{}

	cmd.Flags().StringVar(&imageF.Image, "image", "", "Docker image tag. Default is the project directory name")

	return imageF
}

// AddEngineArgsFlags adds flags passing options directly to the engine.
func (f *CmdFactory) AddEngineArgsFlags(cmd *cobra.Command, usage string) *config.EngineArgsFactory {
	engineArgsF := &config.EngineArgsFactory{}

	cmd.Flags().StringVar(&engineArgsF.Args, "docker-args", "", usage)

	return engineArgsF
}

// AddRunFlags adds flags common to commands running project container.
func (f *CmdFactory) AddRunFlags(cmd *cobra.Command) *config.RunFactory {
	runF := &config.RunFactory{}

	cmd.Flags().BoolVar(&runF.MountVolumes, "mount-volumes", false,
		"Mount project directories (conf/local, data, logs, notebooks, references, results) into the container")

	return runF
}
