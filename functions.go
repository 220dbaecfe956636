package kedrodocker

import (
	"context"

	"github.com/pkg/errors"

	"github.com/outofforest/kedro-docker/config"
	"github.com/outofforest/kedro-docker/infra/dive"
	"github.com/outofforest/kedro-docker/infra/engine"
	"github.com/outofforest/kedro-docker/infra/host"
	"github.com/outofforest/kedro-docker/infra/template"
	"github.com/outofforest/kedro-docker/infra/types"
)

// Build builds the project image, missing template files are created first
func Build(ctx context.Context, root config.Root, image config.Image, build config.Build, engineArgs config.EngineArgs,
	e *engine.Engine,
) error {
	invocation, err := BuildInvocation(root, image, build, engineArgs)
	if err != nil {
		return err
	}
	if err := e.CheckDaemon(ctx); err != nil {
		return err
	}
	if err := template.Install(ctx, root.ProjectPath, template.Data{ProjectName: root.ProjectName()}); err != nil {
		return err
	}
	return e.Run(ctx, invocation)
}

// Run runs the pipeline in the container
func Run(ctx context.Context, root config.Root, image config.Image, run config.Run, engineArgs config.EngineArgs,
	e *engine.Engine,
) error {
	invocation, err := RunInvocation(root, image, run, engineArgs)
	if err != nil {
		return err
	}
	return runInContainer(ctx, e, image.Tag, invocation)
}

// IPython runs ipython in the container
func IPython(ctx context.Context, root config.Root, image config.Image, run config.Run, engineArgs config.EngineArgs,
	e *engine.Engine,
) error {
	invocation, err := IPythonInvocation(root, image, run, engineArgs)
	if err != nil {
		return err
	}
	return runInContainer(ctx, e, image.Tag, invocation)
}

// Notebook runs jupyter notebook in the container
func Notebook(ctx context.Context, root config.Root, image config.Image, run config.Run, jupyter config.Jupyter,
	engineArgs config.EngineArgs, e *engine.Engine,
) error {
	return runJupyter(ctx, root, image, run, jupyter, JupyterNotebook, engineArgs, e)
}

// Lab runs jupyter lab in the container
func Lab(ctx context.Context, root config.Root, image config.Image, run config.Run, jupyter config.Jupyter,
	engineArgs config.EngineArgs, e *engine.Engine,
) error {
	return runJupyter(ctx, root, image, run, jupyter, JupyterLab, engineArgs, e)
}

// Cmd runs arbitrary command in the container
func Cmd(ctx context.Context, root config.Root, image config.Image, run config.Run, engineArgs config.EngineArgs,
	e *engine.Engine,
) error {
	invocation, err := CmdInvocation(root, image, run, engineArgs)
	if err != nil {
		return err
	}
	return runInContainer(ctx, e, image.Tag, invocation)
}

// Dive runs dive analyzer of the project image efficiency
func Dive(ctx context.Context, image config.Image, diveConfig config.Dive, engineArgs config.EngineArgs,
	e *engine.Engine,
) error {
	var ciConfigPath string
	if diveConfig.CI {
		path, cleanup, err := dive.Resolve(ctx, diveConfig.CIConfigPath)
		if err != nil {
			return err
		}
		defer cleanup()
		ciConfigPath = path
	}

	invocation, err := DiveInvocation(image, diveConfig, engineArgs, ciConfigPath)
	if err != nil {
		return err
	}
	return runInContainer(ctx, e, image.Tag, invocation)
}

func runJupyter(ctx context.Context, root config.Root, image config.Image, run config.Run, jupyter config.Jupyter,
	mode JupyterMode, engineArgs config.EngineArgs, e *engine.Engine,
) error {
	if err := host.ValidatePort(jupyter.Port); err != nil {
		return err
	}
	if host.PortInUse(jupyter.Port) {
		return errors.Errorf("Port %d is already in use on the host. Please specify an alternative port number.", jupyter.Port)
	}

	invocation, err := JupyterInvocation(root, image, run, jupyter, mode, engineArgs)
	if err != nil {
		return err
	}
	return runInContainer(ctx, e, image.Tag, invocation)
}

func runInContainer(ctx context.Context, e *engine.Engine, image types.ImageTag, invocation types.Invocation) error {
	if err := e.CheckDaemon(ctx); err != nil {
		return err
	}
	if err := e.EnsureImage(ctx, image); err != nil {
		return err
	}
	return e.Run(ctx, invocation)
}
