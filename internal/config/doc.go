// Package config defines the format-agnostic result of loading option
// sources, along with the Loader interface implemented by concrete formats.
//
// The `config.Model` is the single source of truth for the `app` package.
// Concrete implementations of the interface, such as for HCL, are provided
// in separate packages.
package config
