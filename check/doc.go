// Package check provides the assertion checker used by verification
// components: a named-check reporter that counts pass/fail outcomes and
// routes failures through a structured logger. A checker is bound to exactly
// one logger; components sharing the default logger share one checker so
// their statistics aggregate.
package check
