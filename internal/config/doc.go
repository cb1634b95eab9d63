// Package config handles YAML configuration loading with environment variable
// substitution.
//
// Configuration files support ${VAR} syntax for environment variable
// interpolation. Market metadata fields default to the BME Ibex35 values when
// omitted.
package config
