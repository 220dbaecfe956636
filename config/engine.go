package config

// EngineArgsFactory collects data for engine args config
type EngineArgsFactory struct {
	// Args are options passed to the engine as a single shell-quoted string
	Args string
}

// Config returns new engine args config
func (f *EngineArgsFactory) Config() EngineArgs {
	return EngineArgs{
		Args: f.Args,
	}
}

// EngineArgs stores options passed by user directly to the engine
type EngineArgs struct {
	// Args are options passed to the engine as a single shell-quoted string
	Args string
}
