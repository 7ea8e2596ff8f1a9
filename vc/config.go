package vc

import (
	"github.com/pkg/errors"

	"github.com/yogotie/vunit/check"
	"github.com/yogotie/vunit/com"
	"github.com/yogotie/vunit/logging"
)

// ErrMissingDefaultLogger reports a Defaults registry built without a logger.
var ErrMissingDefaultLogger = errors.New("vc: default logger is not set")

// ErrMissingDefaultChecker reports a Defaults registry built without a
// checker.
var ErrMissingDefaultChecker = errors.New("vc: default checker is not set")

// Policy selects how a component's command loop treats messages of a kind it
// does not recognize. It is chosen at construction and immutable thereafter.
type Policy int

const (
	// FailUnexpected treats an unrecognized message kind as a fatal
	// assertion terminating the owning component's loop.
	FailUnexpected Policy = iota
	// IgnoreUnexpected drops unrecognized messages silently.
	IgnoreUnexpected
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case FailUnexpected:
		return "fail"
	case IgnoreUnexpected:
		return "ignore"
	default:
		return "unknown"
	}
}

// Defaults is the process-wide default logger and checker pair, built once
// at process start and injected explicitly into every NewConfig call. It is
// never mutated after construction.
type Defaults struct {
	Logger  logging.Logger
	Checker *check.Checker
}

// NewDefaults builds a Defaults registry around one logger. The default
// checker is bound to that logger so all components left on the defaults
// aggregate their assertion statistics in one place.
func NewDefaults(logger logging.Logger) *Defaults {
	if logger == nil {
		logger = logging.NewLogger(nil)
	}
	return &Defaults{Logger: logger, Checker: check.NewChecker(logger)}
}

// Options are the caller overrides accepted by NewConfig. Every field is
// optional.
type Options struct {
	// Name labels the freshly allocated identity when Identity is zero.
	Name string
	// Identity reuses an already allocated identity instead of allocating
	// one.
	Identity com.Identity
	// Logger overrides the default logger.
	Logger logging.Logger
	// Checker overrides checker resolution entirely.
	Checker *check.Checker
	// Policy selects unexpected-message handling; zero value is
	// FailUnexpected.
	Policy Policy
}

// Config is the standard per-component configuration. It is an immutable
// value after construction; copying it is cheap and safe because all mutable
// component state lives behind the identity indirection.
type Config struct {
	ID      com.Identity
	Logger  logging.Logger
	Checker *check.Checker
	Policy  Policy
}

// Identity returns the component's mailbox endpoint, satisfying Handle.
func (c Config) Identity() com.Identity { return c.ID }

// NewConfig derives a component configuration from the process defaults and
// the caller's overrides.
//
// Resolution rules:
//   - identity: the given one, or freshly allocated from net.
//   - logger: the given one, or the default logger.
//   - checker: the given one if supplied; otherwise the default checker when
//     the resolved logger is the default logger; otherwise a new checker
//     bound to the resolved logger.
//
// Components sharing the default logger therefore share one checker and
// aggregate statistics; components on a custom logger get an independent
// checker unless one is explicitly given.
func NewConfig(net *com.Net, def *Defaults, opts Options) (Config, error) {
	if def == nil || def.Logger == nil {
		return Config{}, errors.WithStack(ErrMissingDefaultLogger)
	}
	if def.Checker == nil {
		return Config{}, errors.WithStack(ErrMissingDefaultChecker)
	}

	id := opts.Identity
	if id.IsZero() {
		name := opts.Name
		if name == "" {
			name = "component"
		}
		id = net.NewIdentity(name)
	}

	logger := opts.Logger
	if logger == nil {
		logger = def.Logger
	}

	checker := opts.Checker
	if checker == nil {
		if logger == def.Logger {
			checker = def.Checker
		} else {
			checker = check.NewChecker(logger)
		}
	}

	return Config{ID: id, Logger: logger, Checker: checker, Policy: opts.Policy}, nil
}
