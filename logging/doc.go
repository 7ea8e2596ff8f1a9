// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing users to plug any
// structured logger. Verification components receive a Logger at construction
// and never log through ambient globals.
package logging
