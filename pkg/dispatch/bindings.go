package dispatch

import (
	"sort"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
	"github.com/arsdk-protocol/arsdk-go/pkg/wire"
)

// Callback receives a decoded command. The message is shared between all
// callbacks of one notification and must not be modified.
type Callback func(msg *wire.Message) error

// Bindings is one of the accepted registration shapes: Entry, Entries or Map.
type Bindings interface {
	entries() []Entry
}

// Entry binds one callback to a set of identities.
type Entry struct {
	IDs      []desc.ID
	Callback Callback
}

func (e Entry) entries() []Entry { return []Entry{e} }

// On binds cb to the given identities.
func On(cb Callback, ids ...desc.ID) Entry {
	return Entry{IDs: ids, Callback: cb}
}

// OnCommand binds cb to the identities of the given commands.
func OnCommand(cb Callback, cmds ...*desc.Command) Entry {
	ids := make([]desc.ID, len(cmds))
	for i, c := range cmds {
		ids[i] = c.Identity()
	}
	return Entry{IDs: ids, Callback: cb}
}

// Entries is a list of entries registered as one binding.
type Entries []Entry

func (e Entries) entries() []Entry { return e }

// Map binds one callback per identity. Entries are registered in identity
// order.
type Map map[desc.ID]Callback

func (m Map) entries() []Entry {
	ids := make([]desc.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]Entry, len(ids))
	for i, id := range ids {
		out[i] = Entry{IDs: []desc.ID{id}, Callback: m[id]}
	}
	return out
}

// normalize flattens the accepted shapes into entries, dropping entries
// without callback or identities.
func normalize(b Bindings) []Entry {
	if b == nil {
		return nil
	}
	var out []Entry
	for _, e := range b.entries() {
		if e.Callback == nil || len(e.IDs) == 0 {
			continue
		}
		out = append(out, e)
	}
	return out
}
