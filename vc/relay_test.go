package vc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogotie/vunit/com"
	"github.com/yogotie/vunit/sim"
)

func TestRelayForwardsPublishes(t *testing.T) {
	net := newTestNet()
	s := sim.New(time.Nanosecond, nil)

	source := net.NewIdentity("monitor")
	owner := net.NewIdentity("agent")
	listener := net.NewIdentity("listener")
	require.NoError(t, net.Subscribe(listener, owner))

	_, err := NewRelay(net, s, nil, source, owner)
	require.NoError(t, err)

	require.NoError(t, net.Publish(source, com.Message{Kind: "report", Payload: 1}))
	require.NoError(t, net.Publish(source, com.Message{Kind: "report", Payload: 2}))

	s.Run(2)

	m, ok := net.TryReceive(listener)
	require.True(t, ok)
	assert.Equal(t, "report", m.Kind)
	assert.Equal(t, 1, m.Payload)
	assert.Equal(t, owner, m.Sender)

	m, ok = net.TryReceive(listener)
	require.True(t, ok)
	assert.Equal(t, 2, m.Payload)

	_, ok = net.TryReceive(listener)
	assert.False(t, ok)
}

func TestRelayIdentityNamedAfterTarget(t *testing.T) {
	net := newTestNet()
	s := sim.New(time.Nanosecond, nil)
	source := net.NewIdentity("monitor")
	owner := net.NewIdentity("agent")

	r, err := NewRelay(net, s, nil, source, owner)
	require.NoError(t, err)
	assert.Contains(t, r.Identity().Name(), "agent")
}
