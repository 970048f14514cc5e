// Package wire implements the binary encoding of protocol commands.
//
// A frame is a 4-byte header followed by the command arguments:
//
//	feature:u8 | class:u8 | command:u16 | arg_1 | ... | arg_n
//
// All multi-byte values are little-endian. Argument encodings by type:
//
//   - i8..u64, float, double: fixed width
//   - string: u16 length + UTF-8 bytes (NUL-free); optionally NUL-terminated
//   - binary: u32 length + bytes
//   - enum: i32
//   - bitfield: the declared unsigned base width
//   - multiset: u16 region size + { u16 sub-frame size + sub-frame }*
//
// # Values
//
// Each argument type has one canonical Go type, returned by Decode and
// accepted by Encode:
//
//	i8 int8      u8 uint8     i16 int16    u16 uint16
//	i32 int32    u32 uint32   i64 int64    u64 uint64
//	float float32             double float64
//	string string             binary []byte
//	enum desc.EnumValue       multiset *wire.Multiset
//	bitfield uint8/uint16/uint32/uint64 matching the base width
//
// Encode additionally accepts int32 or the symbolic name for enums and uint64
// for bitfields. Decode(Encode(v)) == v holds for canonical values.
//
// # Multisets
//
// A multiset argument bundles optional sub-commands. DecodeMultiset fills one
// slot per declared member; ForEachSubmessage walks every sub-frame,
// including those that are not members.
package wire
