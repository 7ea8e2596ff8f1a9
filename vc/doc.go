// Package vc holds the generic verification-component framework shared by
// every bus agent: the standard configuration factory (identity, logger,
// checker, unexpected-message policy), identity-only capability views that
// let one handle serve generic synchronization and streaming operations
// without a type hierarchy, the synchronization message protocol, and the
// relay that republishes a monitor's reports under its owning agent's
// identity.
package vc
