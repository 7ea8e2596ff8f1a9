package check

import (
	"sync"

	"github.com/yogotie/vunit/logging"
)

// Stat is a snapshot of a checker's assertion outcomes.
type Stat struct {
	Passed int
	Failed int
}

// Total returns the number of checks performed.
func (s Stat) Total() int { return s.Passed + s.Failed }

// Checker counts assertion outcomes and reports failures through its logger.
// Failures are non-fatal by default: the check is recorded, logged at error
// level and execution continues. It is safe for concurrent use.
type Checker struct {
	mu     sync.Mutex
	logger logging.Logger
	stat   Stat
}

// NewChecker creates a checker bound to the given logger. A nil logger
// disables reporting but still counts outcomes.
func NewChecker(logger logging.Logger) *Checker {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Checker{logger: logger}
}

// Logger returns the logger the checker is bound to.
func (c *Checker) Logger() logging.Logger { return c.logger }

// Check records a named boolean assertion.
func (c *Checker) Check(name string, ok bool, args ...any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ok {
		c.stat.Passed++
		c.logger.Debug("check passed", append([]any{"check", name}, args...)...)
		return true
	}
	c.stat.Failed++
	c.logger.Error("check failed", append([]any{"check", name}, args...)...)
	return false
}

// Equal records a named equality assertion. A mismatch is reported with both
// values and counted as one failure.
func (c *Checker) Equal(name string, got, want any) bool {
	return c.Check(name, got == want, "got", got, "expected", want)
}

// Fail records a named failure unconditionally.
func (c *Checker) Fail(name string, args ...any) {
	c.Check(name, false, args...)
}

// Stat returns a snapshot of the pass/fail counters.
func (c *Checker) Stat() Stat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stat
}

// HasFailures reports whether any check has failed so far.
func (c *Checker) HasFailures() bool {
	return c.Stat().Failed > 0
}
