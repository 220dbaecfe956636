package config

// DefaultJupyterPort is the port jupyter listens on
const DefaultJupyterPort = 8888

// JupyterFactory collects data for jupyter config
type JupyterFactory struct {
	// Port is the host port jupyter is published on
	Port int
}

// Config returns new jupyter config
func (f *JupyterFactory) Config() Jupyter {
	return Jupyter{
		Port: f.Port,
	}
}

// Jupyter stores configuration for jupyter commands
type Jupyter struct {
	// Port is the host port jupyter is published on
	Port int
}
