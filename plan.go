package kedrodocker

import (
	"fmt"

	"github.com/outofforest/kedro-docker/config"
	"github.com/outofforest/kedro-docker/infra/compose"
	"github.com/outofforest/kedro-docker/infra/dive"
	"github.com/outofforest/kedro-docker/infra/host"
	"github.com/outofforest/kedro-docker/infra/types"
)

const (
	// ContainerRoot is the home directory of the project inside the container
	ContainerRoot = "/home/kedro"

	// JupyterContainerPort is the port jupyter listens on inside the container
	JupyterContainerPort = 8888

	dockerSocket = "/var/run/docker.sock"
)

// DefaultVolumes are project directories mounted into the container on request
var DefaultVolumes = []string{
	"conf/local",
	"data",
	"logs",
	"notebooks",
	"references",
	"results",
}

// JupyterMode selects the jupyter application started in the container
type JupyterMode string

const (
	// JupyterNotebook starts jupyter notebook
	JupyterNotebook JupyterMode = "notebook"

	// JupyterLab starts jupyter lab
	JupyterLab JupyterMode = "lab"
)

// BuildInvocation returns invocation building the project image
func BuildInvocation(root config.Root, image config.Image, build config.Build, engineArgs config.EngineArgs) (types.Invocation, error) {
	userArgs, err := compose.SplitUserArgs(engineArgs.Args)
	if err != nil {
		return types.Invocation{}, err
	}

	uid, gid := host.UIDGID(build.UID, build.GID)
	args, err := compose.Args(compose.RunArgs{
		Required: []compose.Arg{
			{Name: "--build-arg", Value: fmt.Sprintf("KEDRO_UID=%d", uid)},
			{Name: "--build-arg", Value: fmt.Sprintf("KEDRO_GID=%d", gid)},
			{Name: "--build-arg", Value: "BASE_IMAGE=" + build.BaseImage},
		},
		// tag is added only if user didn't pass it
		Optional: []compose.Arg{{Name: "-t", Value: image.Tag.String()}},
		User:     userArgs,
	})
	if err != nil {
		return types.Invocation{}, err
	}
	return types.Invocation{
		Subcommand: types.SubcommandBuild,
		Args:       args,
		Target:     root.ProjectPath,
	}, nil
}

// RunInvocation returns invocation running the pipeline in the container
func RunInvocation(root config.Root, image config.Image, run config.Run, engineArgs config.EngineArgs) (types.Invocation, error) {
	return runInvocation(root, image, run, engineArgs, runMode{
		suffix:  "run",
		command: append([]string{"kedro", "run"}, run.Args...),
	})
}

// IPythonInvocation returns invocation running ipython in the container
func IPythonInvocation(root config.Root, image config.Image, run config.Run, engineArgs config.EngineArgs) (types.Invocation, error) {
	return runInvocation(root, image, run, engineArgs, runMode{
		suffix:      "ipython",
		interactive: true,
		command:     append([]string{"kedro", "ipython"}, run.Args...),
	})
}

// JupyterInvocation returns invocation running jupyter in the container
func JupyterInvocation(root config.Root, image config.Image, run config.Run, jupyter config.Jupyter, mode JupyterMode,
	engineArgs config.EngineArgs,
) (types.Invocation, error) {
	return runInvocation(root, image, run, engineArgs, runMode{
		suffix:      "jupyter-" + string(mode),
		interactive: true,
		required:    []compose.Arg{{Name: "-p", Value: fmt.Sprintf("%d:%d", jupyter.Port, JupyterContainerPort)}},
		command:     append([]string{"kedro", "jupyter", string(mode)}, compose.JupyterArgs(run.Args)...),
	})
}

// CmdInvocation returns invocation running arbitrary command in the container, pipeline is run if command is empty
func CmdInvocation(root config.Root, image config.Image, run config.Run, engineArgs config.EngineArgs) (types.Invocation, error) {
	command := run.Args
	if len(command) == 0 {
		command = []string{"kedro", "run"}
	}
	return runInvocation(root, image, run, engineArgs, runMode{
		suffix:  "cmd",
		command: command,
	})
}

// DiveInvocation returns invocation running dive analyzer against the project image.
// ciConfigPath is the host path of CI config, it is used only in CI mode.
func DiveInvocation(image config.Image, diveConfig config.Dive, engineArgs config.EngineArgs, ciConfigPath string) (types.Invocation, error) {
	userArgs, err := compose.SplitUserArgs(engineArgs.Args)
	if err != nil {
		return types.Invocation{}, err
	}

	required := []compose.Arg{{Name: "-v", Value: dockerSocket + ":" + dockerSocket}}
	optional := []compose.Arg{
		{Name: "--rm"},
		{Name: "--name", Value: types.ContainerName(image.Tag, "dive")},
	}
	if diveConfig.CI {
		required = append(required,
			compose.Arg{Name: "-v", Value: ciConfigPath + ":" + dive.ContainerConfigPath},
			compose.Arg{Name: "-e", Value: "CI=true"},
		)
	} else {
		optional = append(optional, compose.Arg{Name: "-it"})
	}

	args, err := compose.Args(compose.RunArgs{
		Required: required,
		Optional: optional,
		User:     userArgs,
	})
	if err != nil {
		return types.Invocation{}, err
	}
	return types.Invocation{
		Subcommand:  types.SubcommandRun,
		Args:        args,
		Target:      diveConfig.Image,
		Command:     []string{image.Tag.String()},
		Interactive: !diveConfig.CI,
	}, nil
}

type runMode struct {
	suffix      string
	interactive bool
	required    []compose.Arg
	command     []string
}

func runInvocation(root config.Root, image config.Image, run config.Run, engineArgs config.EngineArgs, mode runMode) (types.Invocation, error) {
	userArgs, err := compose.SplitUserArgs(engineArgs.Args)
	if err != nil {
		return types.Invocation{}, err
	}

	optional := []compose.Arg{{Name: "--rm"}}
	if mode.interactive {
		optional = append(optional, compose.Arg{Name: "-it"})
	}
	optional = append(optional, compose.Arg{Name: "--name", Value: types.ContainerName(image.Tag, mode.suffix)})

	runArgs := compose.RunArgs{
		Required: mode.required,
		Optional: optional,
		User:     userArgs,
	}
	if run.MountVolumes {
		runArgs.HostRoot = root.ProjectPath
		runArgs.ContainerRoot = ContainerRoot
		runArgs.MountVolumes = DefaultVolumes
	}

	args, err := compose.Args(runArgs)
	if err != nil {
		return types.Invocation{}, err
	}
	return types.Invocation{
		Subcommand:  types.SubcommandRun,
		Args:        args,
		Target:      image.Tag.String(),
		Command:     mode.command,
		Interactive: mode.interactive,
	}, nil
}
