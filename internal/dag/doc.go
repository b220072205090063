// Package dag is the planning core of the application. It holds the
// dependency graph declared by an upgrade plan and computes the total
// order in which stages may safely run, or reports the cyclic remainder
// when no such order exists.
//
// The package is deliberately pure: construction and sorting never
// perform I/O, never log, and never mutate caller-owned data. Errors
// carry structured payloads so callers can build their own diagnostics.
package dag
