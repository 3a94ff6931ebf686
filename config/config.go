// Package config loads configuration for spaces tooling using Viper.
//
// Sources, in precedence order: environment variables (SPACES_ prefix),
// a spaces.toml discovered by walking up from the working directory, and
// built-in defaults.
package config

// Config represents the spaces CLI configuration
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Sample SampleConfig `mapstructure:"sample"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig controls how results are rendered
type OutputConfig struct {
	Format string `mapstructure:"format"` // table, json, or yaml
}

// SampleConfig holds defaults for the sample command
type SampleConfig struct {
	Count int    `mapstructure:"count"` // draws per invocation (default: 10)
	Seed  uint64 `mapstructure:"seed"`  // 0 = derive from the clock
}

// LogConfig controls diagnostic output
type LogConfig struct {
	JSON bool `mapstructure:"json"` // structured JSON instead of console output
}
