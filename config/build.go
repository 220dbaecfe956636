package config

// DefaultBaseImage is the image the project image is built on top of
const DefaultBaseImage = "python:3.7-buster"

// BuildFactory collects data for build config
type BuildFactory struct {
	// UID is the user ID of kedro user inside the image, negative value means current user's UID
	UID int

	// GID is the group ID of kedro user inside the image, negative value means current user's GID
	GID int

	// BaseImage is the image the project image is built on top of
	BaseImage string
}

// Config returns new build config
func (f *BuildFactory) Config() Build {
	config := Build{
		BaseImage: f.BaseImage,
	}
	if f.UID >= 0 {
		uid := f.UID
		config.UID = &uid
	}
	if f.GID >= 0 {
		gid := f.GID
		config.GID = &gid
	}
	if config.BaseImage == "" {
		config.BaseImage = DefaultBaseImage
	}
	return config
}

// Build stores configuration for build command
type Build struct {
	// UID is the user ID of kedro user inside the image, nil means current user's UID
	UID *int

	// GID is the group ID of kedro user inside the image, nil means primary group of UID
	GID *int

	// BaseImage is the image the project image is built on top of
	BaseImage string
}
