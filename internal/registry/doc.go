// Package registry provides the central glue between plan files and Go
// code.
//
// The Registry stores mappings between the engine types named in stage
// blocks (e.g. "shell") and the compiled Go implementations that run
// them. During application startup the registry is populated by the
// engine modules and then validated against the loaded plan, so a stage
// naming an unknown engine fails before anything executes.
package registry
