// Package config defines the application configuration structure and loads
// it from the environment (and optionally a config.yaml) via viper.
package config
