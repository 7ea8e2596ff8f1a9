package vc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogotie/vunit/logging"
)

func TestCapabilityViewsShareIdentity(t *testing.T) {
	net := newTestNet()
	def := NewDefaults(logging.NoOpLogger{})
	cfg, err := NewConfig(net, def, Options{Name: "agent"})
	require.NoError(t, err)

	// Config itself is a Handle; all projections expose the same identity
	// and carry no extra state.
	sync := AsSync(cfg)
	slave := AsStreamSlave(cfg)
	master := AsStreamMaster(cfg)

	assert.Equal(t, cfg.ID, sync.Identity())
	assert.Equal(t, cfg.ID, slave.Identity())
	assert.Equal(t, cfg.ID, master.Identity())

	// A view of a view still projects the same identity.
	assert.Equal(t, cfg.ID, AsSync(slave).Identity())
}
