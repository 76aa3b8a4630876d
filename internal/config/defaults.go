package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Tools    ToolsConfig    `json:"tools"`
	Registry RegistryConfig `json:"registry"`
}

type ToolsConfig struct {
	// Shell Execution
	Shell     string   `json:"shell"`      // Default: "bash"
	ShellArgs []string `json:"shell_args"` // Default: ["-c"]; the command line is appended

	// File Operations
	FilePerm uint32 `json:"file_perm"` // Default: 0644, mode for newly created files
	DirPerm  uint32 `json:"dir_perm"`  // Default: 0755, mode for created parent directories
}

type RegistryConfig struct {
	Endpoint       string `json:"endpoint"`        // Orama search URL for the JSR index, including api-key
	Version        string `json:"version"`         // Default: "1.3.20"
	IndexID        string `json:"index_id"`        // Default: "h4hh0t8pyfj7e36kusgmkya3"
	TimeoutSeconds int    `json:"timeout_seconds"` // Default: 30
}

// DefaultRegistryEndpoint is the public JSR search index.
const DefaultRegistryEndpoint = "https://cloud.orama.run/v1/indexes/jsr-j7uqzz/search?api-key=rdpUADH0pFZIEx9xLyLIkPGTP4ypc9Wq"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tools: ToolsConfig{
			Shell:     "bash",
			ShellArgs: []string{"-c"},
			FilePerm:  0o644,
			DirPerm:   0o755,
		},
		Registry: RegistryConfig{
			Endpoint:       DefaultRegistryEndpoint,
			Version:        "1.3.20",
			IndexID:        "h4hh0t8pyfj7e36kusgmkya3",
			TimeoutSeconds: 30,
		},
	}
}
