package config

// RunFactory collects data for run config
type RunFactory struct {
	// MountVolumes mounts standard project directories into the container
	MountVolumes bool
}

// Config returns new run config
func (f *RunFactory) Config(args Args) Run {
	return Run{
		MountVolumes: f.MountVolumes,
		Args:         args,
	}
}

// Run stores configuration common to commands running project container
type Run struct {
	// MountVolumes mounts standard project directories into the container
	MountVolumes bool

	// Args are forwarded to the command executed inside the container
	Args []string
}
