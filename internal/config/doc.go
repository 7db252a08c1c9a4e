// Package config loads the service configuration from defaults, an optional
// YAML file and GREETER_ environment variables, and validates the result
// before any component sees it.
package config
