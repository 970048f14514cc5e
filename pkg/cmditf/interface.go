package cmditf

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
	"github.com/arsdk-protocol/arsdk-go/pkg/dispatch"
	"github.com/arsdk-protocol/arsdk-go/pkg/inspect"
	"github.com/arsdk-protocol/arsdk-go/pkg/log"
	"github.com/arsdk-protocol/arsdk-go/pkg/metrics"
	"github.com/arsdk-protocol/arsdk-go/pkg/wire"
)

// Config configures an Interface.
type Config struct {
	// Table resolves command identities. Required.
	Table *desc.Table

	// Sender delivers outbound frames. Required.
	Sender Sender

	// Codec encodes and decodes arguments. If nil, wire.Default() is used.
	Codec *wire.Codec

	// Dispatch receives decoded inbound commands. If nil, a registry is
	// created over Table.
	Dispatch *dispatch.Registry

	// Capture records command traffic. If nil, nothing is captured.
	Capture log.Logger

	// CapturePayload limits the payload bytes kept per captured command
	// (0 = log.DefaultMaxPayload, negative = unlimited).
	CapturePayload int

	// CaptureText adds the formatted command to captured events.
	CaptureText bool

	// SendStatus is called for commands sent without their own StatusFunc.
	SendStatus StatusFunc

	// Logger receives operational messages. If nil, slog.Default() is used.
	Logger *slog.Logger

	Metrics *metrics.Metrics
}

// Interface is the command layer of one link.
type Interface struct {
	table     *desc.Table
	sender    Sender
	codec     *wire.Codec
	registry  *dispatch.Registry
	capture   log.Logger
	formatter *inspect.Formatter
	logger    *slog.Logger
	metrics   *metrics.Metrics

	capturePayload int
	defaultStatus  StatusFunc
	sessionID      string
}

// New creates an Interface. Each Interface gets a fresh session ID that tags
// its captured events.
func New(cfg Config) (*Interface, error) {
	if cfg.Table == nil {
		return nil, ErrNoTable
	}
	if cfg.Sender == nil {
		return nil, ErrNoSender
	}

	i := &Interface{
		table:          cfg.Table,
		sender:         cfg.Sender,
		codec:          cfg.Codec,
		registry:       cfg.Dispatch,
		capture:        cfg.Capture,
		logger:         cfg.Logger,
		metrics:        cfg.Metrics,
		capturePayload: cfg.CapturePayload,
		defaultStatus:  cfg.SendStatus,
		sessionID:      uuid.NewString(),
	}
	if i.codec == nil {
		i.codec = wire.Default()
	}
	if i.logger == nil {
		i.logger = slog.Default()
	}
	if i.capture == nil {
		i.capture = log.NoopLogger{}
	}
	if i.registry == nil {
		i.registry = dispatch.New(cfg.Table, dispatch.Config{
			Codec:   i.codec,
			Logger:  i.logger,
			Metrics: i.metrics,
		})
	}
	if cfg.CaptureText {
		i.formatter = inspect.NewFormatter(cfg.Table)
		i.formatter.Codec = i.codec
	}
	return i, nil
}

// SessionID returns the capture session ID.
func (i *Interface) SessionID() string { return i.sessionID }

// Dispatch returns the registry inbound commands are delivered to.
func (i *Interface) Dispatch() *dispatch.Registry { return i.registry }

// Observe registers bindings on the inbound registry.
func (i *Interface) Observe(bs dispatch.Bindings) *dispatch.Binding {
	return i.registry.Register(bs)
}

// Send encodes cmd with args and hands it to the transport using the
// command's buffer class. status may be nil, in which case the configured
// default is used.
func (i *Interface) Send(cmd *desc.Command, status StatusFunc, args ...any) error {
	if known, ok := i.table.FindByIdentity(cmd.Identity()); !ok || known.Name != cmd.Name {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Name)
	}
	frame, err := i.codec.Encode(cmd, args...)
	if err != nil {
		i.metrics.CodecError(metrics.DirectionEncode)
		i.captureError(log.DirectionTX, log.LayerCodec, cmd.Name, "encode", err)
		return err
	}
	i.metrics.Encoded(cmd.Name)
	return i.send(cmd, frame, status)
}

// SendMessage sends an already built message.
func (i *Interface) SendMessage(msg *wire.Message, status StatusFunc) error {
	return i.Send(msg.Desc, status, msg.Args...)
}

// SendFrame hands an encoded frame to the transport. The identity must be
// known to the table.
func (i *Interface) SendFrame(frame wire.Frame, status StatusFunc) error {
	cmd, ok := i.table.FindByIdentity(frame.ID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, frame.ID)
	}
	return i.send(cmd, frame, status)
}

func (i *Interface) send(cmd *desc.Command, frame wire.Frame, status StatusFunc) error {
	if status == nil {
		status = i.defaultStatus
	}

	i.captureCommand(log.DirectionTX, cmd, frame)

	err := i.sender.Send(frame, cmd.BufferType, i.trackStatus(cmd, status))
	if err != nil {
		i.captureError(log.DirectionTX, log.LayerTransport, cmd.Name, "send", err)
		return fmt.Errorf("%w: %s: %w", ErrRejected, cmd.Name, err)
	}
	return nil
}

// trackStatus wraps status so every update is captured.
func (i *Interface) trackStatus(cmd *desc.Command, status StatusFunc) StatusFunc {
	id := cmd.Identity()
	return func(s SendStatus, done bool) {
		i.capture.Log(log.Event{
			Timestamp: time.Now(),
			SessionID: i.sessionID,
			Direction: log.DirectionTX,
			Layer:     log.LayerTransport,
			Category:  log.CategorySendStatus,
			SendStatus: &log.SendStatusEvent{
				ID:     id,
				Name:   cmd.Name,
				Status: s.String(),
				Done:   done,
			},
		})
		if s.Failed() {
			i.logger.Warn("command not delivered", "command", cmd.Name, "status", s.String())
		}
		if status != nil {
			status(s, done)
		}
	}
}

// Receive parses a frame received from the transport and delivers it to
// the observers of its identity. Frames too short for a header, unknown
// identities with observers and undecodable payloads are captured as errors
// and returned.
func (i *Interface) Receive(data []byte) error {
	frame, err := wire.ParseFrame(data)
	if err != nil {
		i.metrics.CodecError(metrics.DirectionDecode)
		i.captureError(log.DirectionRX, log.LayerTransport, "", "parse", err)
		return err
	}
	return i.ReceiveFrame(frame)
}

// ReceiveFrame delivers an already parsed frame.
func (i *Interface) ReceiveFrame(frame wire.Frame) error {
	cmd, _ := i.table.FindByIdentity(frame.ID)
	i.captureCommand(log.DirectionRX, cmd, frame)

	err := i.registry.Notify(frame)
	if err != nil {
		var de *dispatch.DeliveryError
		layer := log.LayerDispatch
		if errors.As(err, &de) && !errors.Is(err, wire.ErrUnknownCommand) {
			layer = log.LayerCodec
		}
		name := ""
		if cmd != nil {
			name = cmd.Name
		}
		i.captureError(log.DirectionRX, layer, name, "deliver", err)
	}
	return err
}

func (i *Interface) captureCommand(dir log.Direction, cmd *desc.Command, frame wire.Frame) {
	ev := log.NewCommandEvent(frame, cmd, i.capturePayload)
	if i.formatter != nil {
		ev.Text = i.formatter.FormatFrame(frame)
	}
	i.capture.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: i.sessionID,
		Direction: dir,
		Layer:     log.LayerTransport,
		Category:  log.CategoryCommand,
		Command:   ev,
	})
}

func (i *Interface) captureError(dir log.Direction, layer log.Layer, command, context string, err error) {
	i.capture.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: i.sessionID,
		Direction: dir,
		Layer:     layer,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Layer:   layer,
			Message: err.Error(),
			Command: command,
			Context: context,
		},
	})
}
