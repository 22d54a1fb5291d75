// Package config defines the format-agnostic task model produced by the
// configuration loaders, along with the Loader interface they implement.
//
// The `config.Model` is what the app hands to the ordering packages.
// Concrete loaders for HCL and YAML live in separate packages.
package config
