// Package cmditf connects a transport to the command layer.
//
// An Interface owns the outbound and inbound paths of one link:
//
//	itf, err := cmditf.New(cmditf.Config{Table: table, Sender: transport})
//	...
//	binding := itf.Observe(dispatch.On(onFlyingState, features.IDArdrone3PilotingStateFlyingStateChanged))
//	defer binding.Release()
//
//	// outbound: encode, capture, hand to the transport
//	err = itf.Send(features.Ardrone3PilotingTakeOff, nil)
//
//	// inbound: the transport hands every received frame to Receive
//	err = itf.Receive(data)
//
// The transport reports the progress of each sent command through the
// StatusFunc it was given. A command may see several statuses (SENT, then
// ACK_RECEIVED); the last one has done set.
//
// Receive and Send are not safe for concurrent use: like the dispatch
// registry they belong to the goroutine driving the link. Status callbacks
// may arrive on any goroutine.
package cmditf
