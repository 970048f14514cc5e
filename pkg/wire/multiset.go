package wire

import (
	"errors"
	"fmt"
	"math"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
)

// Slot holds the decoded arguments of one multiset member.
type Slot struct {
	IsSet bool
	Args  []any
}

// Multiset is the decoded value of a MULTISET argument: one slot per declared
// member, in member order.
type Multiset struct {
	Desc  *desc.Multiset
	Slots []Slot

	// Errors holds the failures of members that could not be decoded. Their
	// slots are left as they were before the failing sub-frame.
	Errors []error

	// Unmatched counts the sub-frames that were not declared members.
	Unmatched int
}

// NewMultiset returns a multiset of md with every slot cleared.
func NewMultiset(md *desc.Multiset) *Multiset {
	return &Multiset{Desc: md, Slots: make([]Slot, len(md.Members))}
}

// Set stores the arguments of member cmd and marks its slot set. The
// arguments are checked against the member descriptor; on error the slot is
// left unchanged.
func (m *Multiset) Set(cmd *desc.Command, args ...any) error {
	i, member, ok := m.Desc.Member(cmd.Identity())
	if !ok {
		return &UnmatchedMemberError{Multiset: m.Desc.Name, ID: cmd.Identity()}
	}
	if len(args) != len(member.Args) {
		return fmt.Errorf("%w: %s wants %d, got %d", ErrArgCount, member.Name, len(member.Args), len(args))
	}
	if _, err := defaultCodec.EncodeArgs(member, args...); err != nil {
		return err
	}
	m.Slots[i] = Slot{IsSet: true, Args: args}
	return nil
}

// Clear unsets the slot of member cmd.
func (m *Multiset) Clear(cmd *desc.Command) {
	if i, _, ok := m.Desc.Member(cmd.Identity()); ok {
		m.Slots[i] = Slot{}
	}
}

// Get returns the slot of member cmd. The boolean is false when cmd is not a
// member.
func (m *Multiset) Get(cmd *desc.Command) (Slot, bool) {
	i, _, ok := m.Desc.Member(cmd.Identity())
	if !ok {
		return Slot{}, false
	}
	return m.Slots[i], true
}

// IsSet reports whether the slot of member cmd is set.
func (m *Multiset) IsSet(cmd *desc.Command) bool {
	s, ok := m.Get(cmd)
	return ok && s.IsSet
}

// Count returns the number of set slots.
func (m *Multiset) Count() int {
	n := 0
	for _, s := range m.Slots {
		if s.IsSet {
			n++
		}
	}
	return n
}

// Messages returns the set slots as messages, in member order.
func (m *Multiset) Messages() []*Message {
	var out []*Message
	for i, s := range m.Slots {
		if s.IsSet {
			out = append(out, &Message{Desc: m.Desc.Members[i], Args: s.Args})
		}
	}
	return out
}

// EncodeMultiset encodes ms with the default codec.
func EncodeMultiset(md *desc.Multiset, ms *Multiset) ([]byte, error) {
	return defaultCodec.EncodeMultiset(md, ms)
}

// DecodeMultiset decodes a multiset region with the default codec.
func DecodeMultiset(md *desc.Multiset, region []byte) (*Multiset, error) {
	return defaultCodec.DecodeMultiset(md, region)
}

// ForEachSubmessage walks a multiset region with the default codec.
func ForEachSubmessage(md *desc.Multiset, region []byte, visit func(*SubFrame) error) error {
	return defaultCodec.ForEachSubmessage(md, region, visit)
}

// EncodeMultiset encodes the set slots of ms in declared member order and
// returns the region: a u16 size followed by the sub-frames. A multiset with
// no set slot encodes to a zero-size region.
func (c *Codec) EncodeMultiset(md *desc.Multiset, ms *Multiset) ([]byte, error) {
	if ms.Desc != md || len(ms.Slots) != len(md.Members) {
		return nil, fmt.Errorf("%w: value does not belong to multiset %s", ErrArgType, md.Name)
	}
	body := &writer{}
	for i, member := range md.Members {
		slot := ms.Slots[i]
		if !slot.IsSet {
			continue
		}
		payload, err := c.EncodeArgs(member, slot.Args...)
		if err != nil {
			return nil, err
		}
		size := HeaderSize + len(payload)
		if size > math.MaxUint16 {
			return nil, fmt.Errorf("%w: sub-frame %s of %d bytes", ErrTooLarge, member.Name, size)
		}
		body.u16(uint16(size))
		body.buf = appendHeader(body.buf, member.Identity())
		body.raw(payload)
	}
	if len(body.buf) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: multiset %s of %d bytes", ErrTooLarge, md.Name, len(body.buf))
	}
	out := &writer{buf: make([]byte, 0, 2+len(body.buf))}
	out.u16(uint16(len(body.buf)))
	out.raw(body.buf)
	return out.buf, nil
}

// DecodeMultiset decodes a region produced by EncodeMultiset. Sub-frames that
// are not members are skipped. When a member fails to decode, the remaining
// sub-frames are still processed; the returned multiset is valid and the
// error joins every member failure. Structural errors return a nil multiset.
func (c *Codec) DecodeMultiset(md *desc.Multiset, region []byte) (*Multiset, error) {
	body, err := multisetBody(md, region)
	if err != nil {
		return nil, err
	}
	ms, err := c.decodeMultisetBody(md, body)
	if err != nil {
		return nil, err
	}
	return ms, errors.Join(ms.Errors...)
}

func multisetBody(md *desc.Multiset, region []byte) ([]byte, error) {
	r := &reader{data: region}
	n, err := r.u16()
	if err != nil {
		return nil, malformed(md, err)
	}
	body, err := r.next(int(n))
	if err != nil {
		return nil, malformed(md, err)
	}
	if r.remaining() != 0 {
		return nil, malformed(md, fmt.Errorf("%w: %d bytes after region", ErrTrailingBytes, r.remaining()))
	}
	return body, nil
}

func malformed(md *desc.Multiset, err error) error {
	return &DecodeError{Command: md.Name, Index: -1, Err: fmt.Errorf("%w: %w", ErrMalformedMultiset, err)}
}

// walkSubframes calls fn for each size-prefixed sub-frame of body.
func walkSubframes(md *desc.Multiset, body []byte, fn func(index int, raw []byte) error) error {
	r := &reader{data: body}
	for i := 0; r.remaining() > 0; i++ {
		size, err := r.u16()
		if err != nil {
			return malformed(md, err)
		}
		raw, err := r.next(int(size))
		if err != nil {
			return malformed(md, err)
		}
		if err := fn(i, raw); err != nil {
			return err
		}
	}
	return nil
}

func (c *Codec) decodeMultisetBody(md *desc.Multiset, body []byte) (*Multiset, error) {
	ms := NewMultiset(md)
	err := walkSubframes(md, body, func(index int, raw []byte) error {
		id, err := DecodeHeader(raw)
		if err != nil {
			ms.Errors = append(ms.Errors, &DecodeError{Command: md.Name, Index: index, Err: err})
			return nil
		}
		slot, member, ok := md.Member(id)
		if !ok {
			ms.Unmatched++
			return nil
		}
		args, err := c.DecodeArgs(member, raw[HeaderSize:])
		if err != nil {
			ms.Errors = append(ms.Errors, err)
			return nil
		}
		// a later occurrence of the same member wins
		ms.Slots[slot] = Slot{IsSet: true, Args: args}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ms, nil
}

// Resolver finds command descriptors by identity. *desc.Table implements it.
type Resolver interface {
	FindByIdentity(id desc.ID) (*desc.Command, bool)
}

// SubFrame is one raw sub-frame of a multiset region.
type SubFrame struct {
	// Index is the position of the sub-frame in the region.
	Index int
	Frame Frame

	// Member is the matching declared member, nil when unmatched.
	Member *desc.Command
	// Slot is the member slot index, -1 when unmatched.
	Slot int

	multiset string
	err      error
	codec    *Codec
}

// Matched reports whether the sub-frame is a declared member.
func (s *SubFrame) Matched() bool {
	return s.Member != nil
}

// Err returns the header error of a truncated sub-frame, an
// *UnmatchedMemberError for a non-member, or nil.
func (s *SubFrame) Err() error {
	if s.err != nil {
		return s.err
	}
	if s.Member == nil {
		return &UnmatchedMemberError{Multiset: s.multiset, ID: s.Frame.ID}
	}
	return nil
}

// Decode decodes the sub-frame. Members decode against their descriptor;
// other sub-frames are looked up in r, which may be nil.
func (s *SubFrame) Decode(r Resolver) (*Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	cmd := s.Member
	if cmd == nil && r != nil {
		cmd, _ = r.FindByIdentity(s.Frame.ID)
	}
	if cmd == nil {
		return nil, &DecodeError{ID: s.Frame.ID, Index: -1, Err: ErrUnknownCommand}
	}
	return s.codec.Decode(cmd, s.Frame)
}

// ForEachSubmessage calls visit for every sub-frame of a multiset region in
// wire order, matched or not. A non-nil error from visit stops the walk and
// is returned.
func (c *Codec) ForEachSubmessage(md *desc.Multiset, region []byte, visit func(*SubFrame) error) error {
	body, err := multisetBody(md, region)
	if err != nil {
		return err
	}
	return walkSubframes(md, body, func(index int, raw []byte) error {
		sf := &SubFrame{Index: index, Slot: -1, multiset: md.Name, codec: c}
		frame, err := ParseFrame(raw)
		if err != nil {
			sf.err = &DecodeError{Command: md.Name, Index: index, Err: err}
		} else {
			sf.Frame = frame
			if slot, member, ok := md.Member(frame.ID); ok {
				sf.Member, sf.Slot = member, slot
			}
		}
		return visit(sf)
	})
}
