// Package config holds runtime configuration for rentsum.
//
// Configuration is assembled from three layers with increasing precedence:
// built-in defaults, the optional .rentsum YAML file, and CLI flags.
// The resulting Config is passed through the application via dependency
// injection rather than global state.
package config
