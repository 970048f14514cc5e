// Package log captures command traffic for offline analysis.
//
// Capture is separate from operational logging (slog). Every command sent or
// received through a cmditf.Interface can be recorded as an Event, together
// with send status callbacks and codec errors:
//
//	// console, while developing
//	capture := log.NewSlogAdapter(slog.Default())
//
//	// binary capture file
//	capture, _ := log.NewFileLogger("/var/log/arsdk/drone.alog")
//
//	// both
//	capture := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fileLogger)
//
// Capture files are a stream of CBOR-encoded events with integer keys. Read
// them back with NewReader or NewFilteredReader.
package log
