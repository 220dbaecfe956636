package config

import (
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultEngine is the container engine binary used if none is specified
const DefaultEngine = "docker"

// NewRootFactory returns new root config factory
func NewRootFactory() *RootFactory {
	return &RootFactory{}
}

// RootFactory collects data for root config
type RootFactory struct {
	// ProjectPath is the root directory of the project
	ProjectPath string

	// Engine is the container engine binary
	Engine string
}

// NewRoot returns new root config
func NewRoot(f *RootFactory) Root {
	projectPath, err := filepath.Abs(f.ProjectPath)
	if err != nil {
		panic(errors.WithStack(err))
	}
	engine := f.Engine
	if engine == "" {
		engine = DefaultEngine
	}
	return Root{
		ProjectPath: projectPath,
		Engine:      engine,
	}
}

// Root stores configuration common to all commands
type Root struct {
	// ProjectPath is the absolute path to root directory of the project
	ProjectPath string

	// Engine is the container engine binary
	Engine string
}

// ProjectName returns the name of the project derived from its directory
func (r Root) ProjectName() string {
	return filepath.Base(r.ProjectPath)
}
