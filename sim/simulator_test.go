package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalCommitSemantics(t *testing.T) {
	s := New(10*time.Nanosecond, nil)
	sig := s.Signal("req")

	var seenDuringStep bool
	s.Register(ComponentFunc(func(*Simulator) {
		seenDuringStep = sig.Read()
		sig.Drive(true)
	}))

	s.Step()
	// The drive staged during the step is invisible within that step.
	assert.False(t, seenDuringStep)
	assert.True(t, sig.Read())

	s.Step()
	assert.True(t, seenDuringStep)
	// A driven value holds until re-driven.
	assert.True(t, sig.Read())
}

func TestBusMasking(t *testing.T) {
	s := New(time.Nanosecond, nil)
	b := s.Bus("tdata", 8)

	b.Drive(0x1FF)
	s.Step()
	assert.Equal(t, uint64(0xFF), b.Read())
	assert.Equal(t, uint(8), b.Width())
}

func TestBusWidthClamp(t *testing.T) {
	s := New(time.Nanosecond, nil)
	b := s.Bus("wide", 0)
	assert.Equal(t, uint(64), b.Width())
	b.Drive(^uint64(0))
	s.Step()
	assert.Equal(t, ^uint64(0), b.Read())
}

func TestComponentOrder(t *testing.T) {
	s := New(time.Nanosecond, nil)
	var order []string
	s.Register(ComponentFunc(func(*Simulator) { order = append(order, "first") }))
	s.Register(ComponentFunc(func(*Simulator) { order = append(order, "second") }))
	s.Register(ComponentFunc(func(*Simulator) { order = append(order, "third") }))

	s.Step()
	require.Equal(t, []string{"first", "second", "third"}, order)

	s.Step()
	assert.Equal(t, 6, len(order))
}

func TestTimeAdvance(t *testing.T) {
	s := New(10*time.Nanosecond, nil)
	s.Run(5)
	assert.Equal(t, uint64(5), s.Cycle())
	assert.Equal(t, 50*time.Nanosecond, s.Now())

	s.RunFor(25 * time.Nanosecond)
	assert.Equal(t, 80*time.Nanosecond, s.Now())
}

func TestRunUntil(t *testing.T) {
	s := New(time.Nanosecond, nil)
	n := 0
	s.Register(ComponentFunc(func(*Simulator) { n++ }))

	ok := s.RunUntil(func() bool { return n >= 3 }, 10)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	ok = s.RunUntil(func() bool { return n >= 100 }, 5)
	assert.False(t, ok)
}
