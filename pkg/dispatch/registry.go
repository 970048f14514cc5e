package dispatch

import (
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
	"github.com/arsdk-protocol/arsdk-go/pkg/metrics"
	"github.com/arsdk-protocol/arsdk-go/pkg/wire"
)

// Config configures a Registry.
type Config struct {
	// Codec decodes inbound commands. If nil, wire.Default() is used.
	Codec *wire.Codec

	// Logger receives delivery and callback failures.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics is optional.
	Metrics *metrics.Metrics
}

type observer struct {
	state *bindingState
	cb    Callback
}

// bindingState is the registry-side record of a Binding. The registry never
// references the *Binding handle itself, so a dropped handle can be collected.
type bindingState struct {
	ids      []desc.ID
	released bool
}

// Binding is the handle returned by Register. Release it to stop receiving
// notifications. A Binding that becomes unreachable without being released is
// released by the registry at its next operation, so keep the handle for as
// long as the callbacks should run.
type Binding struct {
	state *bindingState
	reg   *Registry
}

// Release unregisters the binding. It is idempotent.
func (b *Binding) Release() {
	b.reg.Unobserve(b)
}

// Active reports whether the binding still receives notifications.
func (b *Binding) Active() bool {
	return !b.state.released
}

// IDs returns the identities the binding is registered under.
func (b *Binding) IDs() []desc.ID {
	return slices.Clone(b.state.ids)
}

// Registry maps command identities to observer callbacks.
type Registry struct {
	table   *desc.Table
	codec   *wire.Codec
	logger  *slog.Logger
	metrics *metrics.Metrics

	observers map[desc.ID][]observer

	// pending is filled by runtime cleanups, which run on their own
	// goroutine, and drained by registry operations.
	pendingMu sync.Mutex
	pending   []*bindingState
}

// New creates a Registry resolving identities against table.
func New(table *desc.Table, cfg Config) *Registry {
	r := &Registry{
		table:     table,
		codec:     cfg.Codec,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		observers: make(map[desc.ID][]observer),
	}
	if r.codec == nil {
		r.codec = wire.Default()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Register inserts every entry of bs under each of its identities and returns
// one Binding covering all of them. Callbacks of an identity run in
// registration order. Registering the same identity twice within one call
// keeps the position of the first entry and the callback of the last.
func (r *Registry) Register(bs Bindings) *Binding {
	r.drain()

	st := &bindingState{}
	seen := make(map[desc.ID]bool)
	for _, e := range normalize(bs) {
		for _, id := range e.IDs {
			r.insert(id, st, e.Callback)
			if !seen[id] {
				seen[id] = true
				st.ids = append(st.ids, id)
			}
		}
	}
	if len(st.ids) == 0 {
		st.released = true
	}

	b := &Binding{state: st, reg: r}
	if !st.released {
		runtime.AddCleanup(b, r.enqueue, st)
	}
	return b
}

func (r *Registry) insert(id desc.ID, st *bindingState, cb Callback) {
	obs := r.observers[id]
	for i := range obs {
		if obs[i].state == st {
			obs[i].cb = cb
			return
		}
	}
	r.observers[id] = append(obs, observer{state: st, cb: cb})
}

// Unobserve removes b from every identity it was registered under. Identities
// left without observers are removed. Unobserving twice is a no-op.
func (r *Registry) Unobserve(b *Binding) {
	r.drain()
	if b == nil {
		return
	}
	r.release(b.state)
}

func (r *Registry) release(st *bindingState) {
	if st.released {
		return
	}
	for _, id := range st.ids {
		obs := slices.DeleteFunc(r.observers[id], func(o observer) bool {
			return o.state == st
		})
		if len(obs) == 0 {
			delete(r.observers, id)
		} else {
			r.observers[id] = obs
		}
	}
	st.released = true
}

func (r *Registry) enqueue(st *bindingState) {
	r.pendingMu.Lock()
	r.pending = append(r.pending, st)
	r.pendingMu.Unlock()
}

// drain releases bindings whose handles were collected.
func (r *Registry) drain() {
	r.pendingMu.Lock()
	pending := r.pending
	r.pending = nil
	r.pendingMu.Unlock()

	for _, st := range pending {
		if !st.released {
			r.logger.Debug("releasing unreferenced binding", "ids", len(st.ids))
		}
		r.release(st)
	}
}

// Observed returns the number of callbacks registered for id.
func (r *Registry) Observed(id desc.ID) int {
	r.drain()
	return len(r.observers[id])
}

// Len returns the number of identities with at least one observer.
func (r *Registry) Len() int {
	r.drain()
	return len(r.observers)
}

// Notify decodes frame and delivers it to the observers of its identity.
// Frames without observers are ignored. A *DeliveryError is returned when
// the identity is unknown to the table or the payload does not decode; no
// callback runs in that case. Callback failures are logged, never returned.
func (r *Registry) Notify(frame wire.Frame) error {
	r.drain()

	obs := r.observers[frame.ID]
	if len(obs) == 0 {
		return nil
	}
	start := time.Now()

	cmd, ok := r.table.FindByIdentity(frame.ID)
	if !ok {
		err := &DeliveryError{ID: frame.ID, Err: wire.ErrUnknownCommand}
		r.logger.Warn("observed command not in descriptor table", "id", frame.ID.String())
		return err
	}

	msg, err := r.codec.Decode(cmd, frame)
	if err != nil {
		r.metrics.CodecError(metrics.DirectionDecode)
		r.logger.Warn("dropping undecodable command", "command", cmd.Name, "error", err)
		return &DeliveryError{ID: frame.ID, Command: cmd.Name, Err: err}
	}
	r.metrics.Decoded(cmd.Name)
	r.reportMultisets(msg)

	// callbacks may register or unobserve while we iterate
	for _, o := range slices.Clone(obs) {
		if o.state.released {
			continue
		}
		r.invoke(cmd, o.cb, msg)
	}

	r.metrics.ObserveNotify(cmd.Name, time.Since(start))
	return nil
}

// NotifyBytes parses an encoded frame and calls Notify.
func (r *Registry) NotifyBytes(data []byte) error {
	frame, err := wire.ParseFrame(data)
	if err != nil {
		return err
	}
	return r.Notify(frame)
}

func (r *Registry) invoke(cmd *desc.Command, cb Callback, msg *wire.Message) {
	var cbErr *CallbackError
	func() {
		defer func() {
			if p := recover(); p != nil {
				cbErr = &CallbackError{ID: msg.ID(), Command: cmd.Name, Panic: true, Err: fmt.Errorf("%v", p)}
			}
		}()
		if err := cb(msg); err != nil {
			cbErr = &CallbackError{ID: msg.ID(), Command: cmd.Name, Err: err}
		}
	}()

	r.metrics.Notified(cmd.Name)
	if cbErr != nil {
		r.metrics.CallbackFailed(cmd.Name)
		r.logger.Error("observer callback failed",
			"command", cmd.Name,
			"id", cbErr.ID.String(),
			"panic", cbErr.Panic,
			"error", cbErr.Err,
		)
	}
}

func (r *Registry) reportMultisets(msg *wire.Message) {
	for _, v := range msg.Args {
		ms, ok := v.(*wire.Multiset)
		if !ok {
			continue
		}
		r.metrics.Unmatched(ms.Desc.Name, ms.Unmatched)
		for _, err := range ms.Errors {
			r.logger.Warn("multiset member not decoded",
				"command", msg.Name(),
				"multiset", ms.Desc.Name,
				"error", err,
			)
		}
	}
}
