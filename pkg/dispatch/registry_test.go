package dispatch

import (
	"bytes"
	"errors"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
	"github.com/arsdk-protocol/arsdk-go/pkg/metrics"
	"github.com/arsdk-protocol/arsdk-go/pkg/wire"
)

var (
	flyingState = &desc.EnumTable{Name: "FlyingState", Values: []desc.EnumValue{
		{Name: "landed", Value: 0},
		{Name: "hovering", Value: 2},
	}}

	cmdTakeOff = &desc.Command{Name: "ardrone3.Piloting.TakeOff", Feature: 1, Class: 0, ID: 1}
	cmdFlying  = &desc.Command{Name: "ardrone3.PilotingState.FlyingStateChanged", Feature: 1, Class: 4, ID: 1, Args: []desc.Arg{
		{Name: "state", Type: desc.Enum, Enum: flyingState},
	}}
	cmdBattery = &desc.Command{Name: "common.CommonState.BatteryStateChanged", Feature: 0, Class: 5, ID: 1, Args: []desc.Arg{
		{Name: "percent", Type: desc.U8},
	}}
	cmdAltitude = &desc.Command{Name: "ardrone3.PilotingSettingsState.MaxAltitudeChanged", Feature: 1, Class: 6, ID: 0, Args: []desc.Arg{
		{Name: "current", Type: desc.Float},
	}}
	settings    = &desc.Multiset{Name: "drone_settings", Members: []*desc.Command{cmdAltitude}}
	cmdSettings = &desc.Command{Name: "generic.DroneSettingsChanged", Feature: 149, ID: 2, Args: []desc.Arg{
		{Name: "settings", Type: desc.MultisetArg, Multiset: settings},
	}}
)

type fixture struct {
	table   *desc.Table
	reg     *Registry
	logs    *bytes.Buffer
	metrics *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	table, err := desc.NewTable([]*desc.Command{cmdTakeOff, cmdFlying, cmdBattery, cmdAltitude, cmdSettings})
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	m := metrics.NewMetrics("test")
	reg := New(table, Config{
		Logger:  slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Metrics: m,
	})
	return &fixture{table: table, reg: reg, logs: logs, metrics: m}
}

func mustFrame(t *testing.T, cmd *desc.Command, args ...any) wire.Frame {
	t.Helper()
	frame, err := wire.Encode(cmd, args...)
	require.NoError(t, err)
	return frame
}

func TestNotifyRouting(t *testing.T) {
	f := newFixture(t)

	var got []*wire.Message
	f.reg.Register(On(func(msg *wire.Message) error {
		got = append(got, msg)
		return nil
	}, cmdFlying.Identity(), cmdBattery.Identity()))

	require.NoError(t, f.reg.Notify(mustFrame(t, cmdFlying, "hovering")))
	require.Len(t, got, 1)
	assert.Equal(t, cmdFlying, got[0].Desc)
	state, ok := got[0].Enum("state")
	require.True(t, ok)
	assert.Equal(t, "hovering", state.Name)

	// unregistered identity: no callback, no error
	require.NoError(t, f.reg.Notify(mustFrame(t, cmdTakeOff)))
	assert.Len(t, got, 1)

	require.NoError(t, f.reg.Notify(mustFrame(t, cmdBattery, uint8(87))))
	require.Len(t, got, 2)
	assert.Equal(t, []any{uint8(87)}, got[1].Args)
}

func TestUnobserve(t *testing.T) {
	f := newFixture(t)

	calls := 0
	b := f.reg.Register(On(func(*wire.Message) error {
		calls++
		return nil
	}, cmdFlying.Identity(), cmdBattery.Identity()))
	assert.True(t, b.Active())
	assert.Equal(t, 2, f.reg.Len())

	f.reg.Unobserve(b)
	assert.False(t, b.Active())
	assert.Zero(t, f.reg.Len(), "empty identity entries must be removed")

	require.NoError(t, f.reg.Notify(mustFrame(t, cmdFlying, "landed")))
	require.NoError(t, f.reg.Notify(mustFrame(t, cmdBattery, uint8(1))))
	assert.Zero(t, calls)

	// idempotent
	f.reg.Unobserve(b)
	b.Release()
	f.reg.Unobserve(nil)
}

func TestUnobserveKeepsOtherBindings(t *testing.T) {
	f := newFixture(t)
	noop := func(*wire.Message) error { return nil }

	b1 := f.reg.Register(On(noop, cmdFlying.Identity()))
	b2 := f.reg.Register(On(noop, cmdFlying.Identity(), cmdBattery.Identity()))

	b1.Release()
	assert.Equal(t, 1, f.reg.Observed(cmdFlying.Identity()))
	assert.Equal(t, 1, f.reg.Observed(cmdBattery.Identity()))

	b2.Release()
	assert.Zero(t, f.reg.Len())
}

func TestCallbackIsolation(t *testing.T) {
	f := newFixture(t)

	var order []string
	f.reg.Register(On(func(*wire.Message) error {
		order = append(order, "failing")
		return errors.New("boom")
	}, cmdBattery.Identity()))
	f.reg.Register(On(func(*wire.Message) error {
		order = append(order, "panicking")
		panic("kaboom")
	}, cmdBattery.Identity()))
	f.reg.Register(On(func(*wire.Message) error {
		order = append(order, "healthy")
		return nil
	}, cmdBattery.Identity()))

	err := f.reg.Notify(mustFrame(t, cmdBattery, uint8(50)))
	require.NoError(t, err)
	assert.Equal(t, []string{"failing", "panicking", "healthy"}, order)

	logs := f.logs.String()
	assert.Contains(t, logs, "observer callback failed")
	assert.Contains(t, logs, "boom")
	assert.Contains(t, logs, "kaboom")

	failed := testutil.ToFloat64(f.metrics.CallbackErrors.WithLabelValues(cmdBattery.Name))
	assert.Equal(t, 2.0, failed)
	assert.Equal(t, 3.0, testutil.ToFloat64(f.metrics.Notifications.WithLabelValues(cmdBattery.Name)))

	// registry still works
	require.NoError(t, f.reg.Notify(mustFrame(t, cmdBattery, uint8(49))))
	assert.Len(t, order, 6)
}

func TestNotifyDecodeFailure(t *testing.T) {
	f := newFixture(t)

	bad := wire.Frame{ID: cmdFlying.Identity(), Payload: []byte{9, 0, 0, 0}}

	// nobody observes: silent
	require.NoError(t, f.reg.Notify(bad))

	calls := 0
	f.reg.Register(On(func(*wire.Message) error {
		calls++
		return nil
	}, cmdFlying.Identity()))

	err := f.reg.Notify(bad)
	var de *DeliveryError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, cmdFlying.Name, de.Command)
	assert.ErrorIs(t, err, wire.ErrEnumValue)
	assert.Zero(t, calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CodecErrors.WithLabelValues(metrics.DirectionDecode)))
}

func TestNotifyUnknownIdentity(t *testing.T) {
	f := newFixture(t)
	unknown := desc.MakeID(42, 1, 1)

	calls := 0
	f.reg.Register(On(func(*wire.Message) error {
		calls++
		return nil
	}, unknown))

	err := f.reg.Notify(wire.Frame{ID: unknown})
	assert.ErrorIs(t, err, wire.ErrUnknownCommand)
	assert.Zero(t, calls)
}

func TestRegisterShapes(t *testing.T) {
	f := newFixture(t)

	var seen []string
	record := func(name string) Callback {
		return func(msg *wire.Message) error {
			seen = append(seen, name+":"+msg.Desc.ShortName())
			return nil
		}
	}

	b := f.reg.Register(Map{
		cmdBattery.Identity(): record("map"),
		cmdFlying.Identity():  record("map"),
	})
	assert.ElementsMatch(t, []desc.ID{cmdBattery.Identity(), cmdFlying.Identity()}, b.IDs())

	f.reg.Register(Entries{
		On(record("list"), cmdBattery.Identity()),
		OnCommand(record("list"), cmdTakeOff),
	})

	require.NoError(t, f.reg.Notify(mustFrame(t, cmdBattery, uint8(3))))
	require.NoError(t, f.reg.Notify(mustFrame(t, cmdTakeOff)))
	assert.Equal(t, []string{
		"map:BatteryStateChanged",
		"list:BatteryStateChanged",
		"list:TakeOff",
	}, seen)
}

func TestRegisterSameIdentityTwice(t *testing.T) {
	f := newFixture(t)

	var seen []string
	b := f.reg.Register(Entries{
		On(func(*wire.Message) error { seen = append(seen, "first"); return nil }, cmdTakeOff.Identity()),
		On(func(*wire.Message) error { seen = append(seen, "second"); return nil }, cmdTakeOff.Identity()),
	})

	assert.Equal(t, 1, f.reg.Observed(cmdTakeOff.Identity()))
	assert.Equal(t, []desc.ID{cmdTakeOff.Identity()}, b.IDs())
	require.NoError(t, f.reg.Notify(mustFrame(t, cmdTakeOff)))
	assert.Equal(t, []string{"second"}, seen)
}

func TestRegisterEmpty(t *testing.T) {
	f := newFixture(t)
	b := f.reg.Register(Entries{On(nil, cmdTakeOff.Identity()), On(func(*wire.Message) error { return nil })})
	assert.False(t, b.Active())
	assert.Zero(t, f.reg.Len())

	b = f.reg.Register(nil)
	assert.False(t, b.Active())
}

func TestUnobserveDuringNotify(t *testing.T) {
	f := newFixture(t)

	var second *Binding
	calls := 0
	f.reg.Register(On(func(*wire.Message) error {
		second.Release()
		return nil
	}, cmdTakeOff.Identity()))
	second = f.reg.Register(On(func(*wire.Message) error {
		calls++
		return nil
	}, cmdTakeOff.Identity()))

	require.NoError(t, f.reg.Notify(mustFrame(t, cmdTakeOff)))
	assert.Zero(t, calls)
	assert.Equal(t, 1, f.reg.Observed(cmdTakeOff.Identity()))
}

func TestDroppedBindingIsReleased(t *testing.T) {
	f := newFixture(t)
	id := cmdTakeOff.Identity()

	func() {
		f.reg.Register(On(func(*wire.Message) error { return nil }, id))
	}()
	require.Equal(t, 1, len(f.reg.observers[id]))

	require.Eventually(t, func() bool {
		runtime.GC()
		return f.reg.Observed(id) == 0
	}, 5*time.Second, 10*time.Millisecond)
	assert.Zero(t, f.reg.Len())
}

func TestNotifyMultisetReporting(t *testing.T) {
	f := newFixture(t)

	var got *wire.Multiset
	f.reg.Register(On(func(msg *wire.Message) error {
		got, _ = msg.Multiset("settings")
		return nil
	}, cmdSettings.Identity()))

	// one member sub-frame plus one sub-frame of a command outside the multiset
	member := mustFrame(t, cmdAltitude, float32(120)).Bytes()
	other := mustFrame(t, cmdBattery, uint8(5)).Bytes()
	var body []byte
	for _, sub := range [][]byte{member, other} {
		body = append(body, byte(len(sub)), 0)
		body = append(body, sub...)
	}
	payload := append([]byte{byte(len(body)), 0}, body...)

	require.NoError(t, f.reg.Notify(wire.Frame{ID: cmdSettings.Identity(), Payload: payload}))
	require.NotNil(t, got)
	assert.True(t, got.IsSet(cmdAltitude))
	assert.Equal(t, 1, got.Unmatched)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.UnmatchedSubframes.WithLabelValues("drone_settings")))
}

func TestNotifyBytes(t *testing.T) {
	f := newFixture(t)
	calls := 0
	f.reg.Register(OnCommand(func(*wire.Message) error {
		calls++
		return nil
	}, cmdBattery))

	require.NoError(t, f.reg.NotifyBytes(mustFrame(t, cmdBattery, uint8(10)).Bytes()))
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, f.reg.NotifyBytes([]byte{0, 5}), wire.ErrShortPayload)
}
