package types

import (
	"regexp"
	"strings"
)

// Subcommand is the engine subcommand executed by an invocation
type Subcommand string

const (
	// SubcommandBuild builds an image
	SubcommandBuild Subcommand = "build"

	// SubcommandRun runs a container
	SubcommandRun Subcommand = "run"
)

// ImageTag is the identifier of the project image
type ImageTag string

// String returns string representation of image tag
func (t ImageTag) String() string {
	return string(t)
}

// IsValid returns true if image tag is not empty
func (t ImageTag) IsValid() bool {
	return strings.TrimSpace(string(t)) != ""
}

// Invocation is the resolved call of the container engine
type Invocation struct {
	// Subcommand is the engine subcommand
	Subcommand Subcommand

	// Args are engine options placed before the target
	Args []string

	// Target is the image for run or the build context for build
	Target string

	// Command is the command executed inside the container
	Command []string

	// Interactive attaches standard input of the parent to the child
	Interactive bool
}

// Argv returns the argument vector passed to the engine binary
func (i Invocation) Argv() []string {
	argv := make([]string, 0, len(i.Args)+len(i.Command)+2)
	argv = append(argv, string(i.Subcommand))
	argv = append(argv, i.Args...)
	argv = append(argv, i.Target)
	return append(argv, i.Command...)
}

var containerNameRegExp = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

// ContainerName builds container name acceptable by the engine from image tag and suffix
func ContainerName(image ImageTag, suffix string) string {
	name := strings.Trim(string(image)+"-"+suffix, "-")
	return containerNameRegExp.ReplaceAllString(name, "-")
}
