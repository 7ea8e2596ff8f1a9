// Package vunit provides a high-level façade over the verification-component
// framework: one call builds the messaging substrate, the step executor and
// the process-wide defaults a testbench needs. Most testbenches:
//  1. Create a Testbench via New() (optionally from a TOML config file)
//  2. Construct agents with NewConfig and the protocol packages (axis, ...)
//  3. Issue requests through the stream/vc operations and step the simulator
//     until the returned futures complete.
package vunit

import (
	"time"

	"github.com/yogotie/vunit/com"
	"github.com/yogotie/vunit/logging"
	"github.com/yogotie/vunit/sim"
	"github.com/yogotie/vunit/vc"
)

// Options configures a Testbench.
type Options struct {
	// ClockPeriod is the simulated clock period; defaults to 10ns.
	ClockPeriod time.Duration
	// Logger becomes the default logger. Defaults to a text slog logger at
	// info level.
	Logger logging.Logger
	// ConfigFile optionally points at a TOML testbench configuration; when
	// set it supplies the default logger and protocol tuning instead of
	// Logger.
	ConfigFile string
}

// Testbench bundles the collaborators shared by every component of one
// simulation run.
type Testbench struct {
	Net      *com.Net
	Sim      *sim.Simulator
	Defaults *vc.Defaults
	File     vc.FileConfig

	// ID is the testbench's own identity, used as the sender of requests.
	ID com.Identity
}

// New builds a ready-to-use testbench.
func New(opts Options) (*Testbench, error) {
	period := opts.ClockPeriod
	if period == 0 {
		period = 10 * time.Nanosecond
	}

	var (
		def *vc.Defaults
		fc  vc.FileConfig
	)
	if opts.ConfigFile != "" {
		var err error
		def, fc, err = vc.LoadDefaults(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
	} else {
		logger := opts.Logger
		if logger == nil {
			logger = logging.NewLogger(nil)
		}
		def = vc.NewDefaults(logger)
	}

	net := com.NewNet(def.Logger)
	return &Testbench{
		Net:      net,
		Sim:      sim.New(period, def.Logger),
		Defaults: def,
		File:     fc,
		ID:       net.NewIdentity("testbench"),
	}, nil
}

// NewConfig derives a component configuration from the testbench defaults.
func (tb *Testbench) NewConfig(opts vc.Options) (vc.Config, error) {
	return vc.NewConfig(tb.Net, tb.Defaults, opts)
}

// Await steps the simulator until every future has completed or limit cycles
// have elapsed, reporting whether all completed.
func (tb *Testbench) Await(limit int, futures ...*com.Future) bool {
	done := func() bool {
		for _, f := range futures {
			if !f.Done() {
				return false
			}
		}
		return true
	}
	return tb.Sim.RunUntil(done, limit)
}
