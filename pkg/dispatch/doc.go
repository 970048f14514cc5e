// Package dispatch routes decoded inbound commands to registered observers.
//
// Observers register callbacks under command identities and receive every
// matching command decoded against the descriptor table:
//
//	reg := dispatch.New(table, dispatch.Config{Logger: logger})
//	b := reg.Register(dispatch.Entries{
//	    dispatch.On(onFlyingState, features.IDArdrone3PilotingStateFlyingStateChanged),
//	    dispatch.On(onBattery, features.IDCommonCommonStateBatteryStateChanged),
//	})
//	defer b.Release()
//
//	err := reg.Notify(frame)
//
// # Threading
//
// A Registry is single-threaded: Register, Notify and Unobserve must run on
// the same goroutine, typically the transport's event loop. Callbacks run
// synchronously inside Notify and must return promptly.
//
// # Failures
//
// Commands nobody observes are ignored without decoding. When a command with
// observers fails to decode, Notify returns a *DeliveryError and no callback
// runs. A callback that returns an error or panics is logged and counted;
// delivery continues with the remaining callbacks.
package dispatch
