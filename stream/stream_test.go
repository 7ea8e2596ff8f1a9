package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogotie/vunit/com"
	"github.com/yogotie/vunit/vc"
)

type handle struct{ id com.Identity }

func (h handle) Identity() com.Identity { return h.id }

func TestPushDeliversPayload(t *testing.T) {
	net := com.NewNet(nil)
	tb := net.NewIdentity("tb")
	agent := net.NewIdentity("master")

	require.NoError(t, Push(net, tb, vc.AsStreamMaster(handle{agent}), 0xAB, true))

	m, ok := net.TryReceive(agent)
	require.True(t, ok)
	assert.Equal(t, KindPush, m.Kind)
	assert.Equal(t, Payload{Data: 0xAB, Last: true}, m.Payload)
	assert.False(t, m.ExpectsReply())
}

func TestPopExpectsReply(t *testing.T) {
	net := com.NewNet(nil)
	tb := net.NewIdentity("tb")
	agent := net.NewIdentity("slave")

	fut, err := Pop(net, tb, vc.AsStreamSlave(handle{agent}))
	require.NoError(t, err)

	m, ok := net.TryReceive(agent)
	require.True(t, ok)
	assert.Equal(t, KindPop, m.Kind)
	assert.True(t, m.ExpectsReply())

	require.NoError(t, net.Reply(m, "record"))
	v, done := fut.Value()
	require.True(t, done)
	assert.Equal(t, "record", v)
}

func TestCheckCarriesExpectedBeat(t *testing.T) {
	net := com.NewNet(nil)
	tb := net.NewIdentity("tb")
	agent := net.NewIdentity("slave")

	require.NoError(t, Check(net, tb, vc.AsStreamSlave(handle{agent}), 0x55, false))

	m, ok := net.TryReceive(agent)
	require.True(t, ok)
	assert.Equal(t, KindCheck, m.Kind)
	assert.Equal(t, Payload{Data: 0x55, Last: false}, m.Payload)
	assert.False(t, m.ExpectsReply())
}
