// Package config defines the format-agnostic model of an upgrade plan,
// along with the Loader interface for producing it from files on disk.
//
// The config.Model is the single source of truth for the builder and
// executor packages. Concrete loaders, such as the HCL one, live in
// separate packages.
package config
