// Package features holds the descriptor tables and typed helpers generated
// from the bundled protocol schema (see schema/ at the repository root).
//
// Every command gets an identity constant, a descriptor, typed encode and
// send helpers and, when it carries arguments, an Args struct with a Decode
// function. On helpers bind typed callbacks to a dispatch registry:
//
//	table := features.MustTable()
//	itf, err := cmditf.New(cmditf.Config{Table: table, Sender: link})
//
//	b := itf.Observe(dispatch.Entries{
//	    features.OnArdrone3PilotingStateFlyingStateChanged(func(a features.Ardrone3PilotingStateFlyingStateChangedArgs) error {
//	        slog.Info("flying state", "state", a.State.Name)
//	        return nil
//	    }),
//	})
//	defer b.Release()
//
//	err = features.SendArdrone3PilotingTakeOff(itf, nil)
//
// Regenerate the *_gen.go files after editing the schema:
//
//	go generate ./pkg/features
package features

//go:generate go run ../../cmd/arsdk-gen -schema ../../schema -output . -package features
