package compose

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Arg is an engine option with optional value
type Arg struct {
	// Name of the option, e.g. --name
	Name string

	// Value of the option, option is emitted without value if empty
	Value string
}

// RunArgs defines sources of engine options
type RunArgs struct {
	// HostRoot is the host directory volumes are mounted from
	HostRoot string

	// ContainerRoot is the container directory volumes are mounted to
	ContainerRoot string

	// MountVolumes are paths relative to both roots which are mounted into the container
	MountVolumes []string

	// Required options are always emitted
	Required []Arg

	// Optional options are emitted only if user didn't provide option with the same name
	Optional []Arg

	// User options are appended as is
	User []string
}

// Args composes engine options
func Args(a RunArgs) ([]string, error) {
	userNames := lo.SliceToMap(a.User, func(arg string) (string, struct{}) {
		return strings.SplitN(arg, "=", 2)[0], struct{}{}
	})

	var combined []string
	add := func(arg Arg) {
		combined = append(combined, arg.Name)
		if arg.Value != "" {
			combined = append(combined, arg.Value)
		}
	}

	for _, arg := range a.Required {
		add(arg)
	}
	for _, arg := range a.Optional {
		if _, exists := userNames[arg.Name]; !exists {
			add(arg)
		}
	}

	if len(a.MountVolumes) > 0 {
		if a.HostRoot == "" || a.ContainerRoot == "" {
			return nil, errors.New("both host root and container root must be specified if volumes are mounted")
		}
		for _, volume := range a.MountVolumes {
			combined = append(combined, "-v", filepath.Join(a.HostRoot, volume)+":"+path.Join(a.ContainerRoot, volume))
		}
	}

	return append(combined, a.User...), nil
}

// SplitUserArgs splits string provided by user into options using shell quoting rules
func SplitUserArgs(args string) ([]string, error) {
	if strings.TrimSpace(args) == "" {
		return nil, nil
	}
	res, err := shlex.Split(args)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid engine arguments: %s", args)
	}
	return res, nil
}

// JupyterArgs adds options required to run jupyter inside the container unless user set them explicitly
func JupyterArgs(args []string) []string {
	res := append([]string{}, args...)
	if !lo.ContainsBy(res, func(arg string) bool { return strings.SplitN(arg, "=", 2)[0] == "--ip" }) {
		res = append(res, "--ip", "0.0.0.0")
	}
	if !lo.Contains(res, "--no-browser") {
		res = append(res, "--no-browser")
	}
	return res
}
