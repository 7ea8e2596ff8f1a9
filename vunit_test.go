package vunit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogotie/vunit/com"
	"github.com/yogotie/vunit/sim"
	"github.com/yogotie/vunit/vc"
)

func TestNewTestbenchDefaults(t *testing.T) {
	tb, err := New(Options{})
	require.NoError(t, err)

	assert.NotNil(t, tb.Net)
	assert.NotNil(t, tb.Sim)
	assert.NotNil(t, tb.Defaults)
	assert.Equal(t, 10*time.Nanosecond, tb.Sim.Period())
	assert.Equal(t, "testbench", tb.ID.Name())

	cfg, err := tb.NewConfig(vc.Options{Name: "agent"})
	require.NoError(t, err)
	assert.Same(t, tb.Defaults.Checker, cfg.Checker)
}

func TestNewTestbenchFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tb.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"error\"\n\n[stall]\nprobability = 0.5\n"), 0o644))

	tb, err := New(Options{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, 0.5, tb.File.Stall.Probability)
}

func TestNewTestbenchBadConfigFile(t *testing.T) {
	_, err := New(Options{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)
}

func TestAwait(t *testing.T) {
	tb, err := New(Options{})
	require.NoError(t, err)

	// An echo responder that only answers from the third cycle on.
	target := tb.Net.NewIdentity("echo")
	tb.Sim.Register(sim.ComponentFunc(func(s *sim.Simulator) {
		if s.Cycle() < 3 {
			return
		}
		if m, ok := tb.Net.TryReceive(target); ok {
			require.NoError(t, tb.Net.Reply(m, m.Payload))
		}
	}))

	fut, err := tb.Net.Request(tb.ID, target, com.Message{Kind: "echo", Payload: 99})
	require.NoError(t, err)

	require.True(t, tb.Await(10, fut))
	v, done := fut.Value()
	require.True(t, done)
	assert.Equal(t, 99, v)

	// A future that can never complete trips the cycle limit.
	stuck, err := tb.Net.Request(tb.ID, tb.Net.NewIdentity("void"), com.Message{Kind: "echo"})
	require.NoError(t, err)
	assert.False(t, tb.Await(5, stuck))
}
