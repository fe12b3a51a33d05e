// Package config provides application configuration loaded from environment
// variables with optional YAML file overrides. Configuration covers logging
// behavior and the directory layout used for input data and results files.
package config
