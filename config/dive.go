package config

import (
	"path/filepath"
)

// DefaultDiveImage is the image of dive analyzer
const DefaultDiveImage = "wagoodman/dive:latest"

// DiveFactory collects data for dive config
type DiveFactory struct {
	// CI runs dive in non-interactive mode
	CI bool

	// NoCI runs dive in interactive mode, it takes precedence over CI
	NoCI bool

	// CIConfigPath is the path to dive CI config file, relative to the project directory
	CIConfigPath string

	// Image is the dive image
	Image string
}

// Config returns new dive config, relative CI config path is resolved against the project directory
func (f *DiveFactory) Config(root Root) Dive {
	config := Dive{
		CI:           f.CI && !f.NoCI,
		CIConfigPath: f.CIConfigPath,
		Image:        f.Image,
	}
	if config.CIConfigPath != "" && !filepath.IsAbs(config.CIConfigPath) {
		config.CIConfigPath = filepath.Join(root.ProjectPath, config.CIConfigPath)
	}
	if config.Image == "" {
		config.Image = DefaultDiveImage
	}
	return config
}

// Dive stores configuration for dive command
type Dive struct {
	// CI runs dive in non-interactive mode
	CI bool

	// CIConfigPath is the absolute path to dive CI config file
	CIConfigPath string

	// Image is the dive image
	Image string
}
