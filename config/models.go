package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// EngineConfig holds the connection settings for the extraction engine bridge.
type EngineConfig struct {
	URL string `mapstructure:"url"`
	// APIKey is loaded from ENV not config file.
	APIKey string `mapstructure:"api_key"`
	// Timeout is the per-request deadline for engine calls, in seconds.
	Timeout int `mapstructure:"timeout"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}
