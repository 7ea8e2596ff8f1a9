package vc

import "github.com/yogotie/vunit/com"

// KindSetParameter carries a protocol specific runtime parameter to an
// agent's command loop (a baud rate, a stall configuration, ...). Fire and
// forget; the payload type is defined by the agent package.
const KindSetParameter = "set parameter"

// SetParameter sends a runtime parameter value to the component behind h.
func SetParameter(net *com.Net, from com.Identity, h Handle, value any) error {
	return net.Send(from, h.Identity(), com.Message{Kind: KindSetParameter, Payload: value})
}
