// Package app contains the core application logic for loading a plan,
// computing its execution order, and running it. It is decoupled from any
// specific entrypoint like a CLI or server.
package app
