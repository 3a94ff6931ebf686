package config

import "github.com/spf13/viper"

// Default values for every configurable knob.
const (
	DefaultOutputFormat = "table"
	DefaultSampleCount  = 10
)

// SetDefaults registers defaults on a Viper instance. Called before any
// config file or environment merge so unset keys always resolve.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.format", DefaultOutputFormat)
	v.SetDefault("sample.count", DefaultSampleCount)
	v.SetDefault("sample.seed", 0)
	v.SetDefault("log.json", false)
}
