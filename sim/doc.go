// Package sim is a deterministic cycle-level step executor for clocked
// testbenches. It is intentionally small: one implicit clock, bool signals
// and integer buses with commit-at-step-boundary semantics, and components
// evaluated in fixed registration order on every rising edge. It is not a
// general discrete-event kernel; components needing finer timing model it in
// cycles.
//
// Determinism: within a step every component observes the values committed
// at the previous step boundary, so evaluation order cannot leak through
// signals. Mailbox traffic is immediate, which is why per-agent loops are
// registered in a fixed order.
package sim
