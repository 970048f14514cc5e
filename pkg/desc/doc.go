// Package desc defines the static descriptor model of the command protocol.
//
// A protocol is a three-level namespace of features, classes and commands.
// Every command carries an ordered list of typed arguments and is identified
// on the wire by a 32-bit identity:
//
//	id := desc.MakeID(feature, class, command) // (f<<24)|(c<<16)|cmd
//
// # Tables
//
// Descriptors are built once into a Table, which validates the schema
// (identity injectivity, name paths, enum and multiset references) and
// provides lookup by name path and by identity:
//
//	table, err := desc.NewTable(cmds, multisets...)
//	cmd, ok := table.FindByName("ardrone3.Piloting.TakeOff")
//	cmd, ok = table.FindByIdentity(0x01000001)
//
// Features without classes are stored under a synthetic default class with
// id 0, so "feature.command" paths resolve through the same walk.
//
// All descriptor values are immutable once a Table has been built and may be
// shared between goroutines without synchronization.
package desc
