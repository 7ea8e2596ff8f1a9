// Package testutil contains helpers used across tests to reduce boilerplate
// when asserting on logging and checker behavior. These helpers are
// intentionally minimal and avoid adding third-party dependencies. They are
// not intended for production usage.
package testutil
