// Package cli assembles the command tree, validates user input, and
// handles process-level concerns like exit codes. It translates flags and
// arguments into the application's internal configuration.
package cli
