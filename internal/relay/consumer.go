package relay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/imespro/reid-backend/internal/config"
	"github.com/imespro/reid-backend/internal/domain"
	"github.com/imespro/reid-backend/internal/metrics"
)

// Relay reads alert messages from the broker into a Buffer. A disabled relay
// (kafka.enabled=false) still exposes an empty buffer, so the HTTP surface
// behaves the same with or without a broker.
type Relay struct {
	buf    *Buffer
	reader *kafka.Reader
	log    *slog.Logger
	done   chan struct{}
}

// New builds a Relay from config. When cfg.Enabled is false no reader is
// created and Run returns immediately.
func New(cfg config.KafkaConfig, logger *slog.Logger) *Relay {
	r := &Relay{
		buf:  NewBuffer(cfg.RelayBufferSize),
		log:  logger.With("component", "relay"),
		done: make(chan struct{}),
	}
	if cfg.Enabled {
		r.reader = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  cfg.Brokers,
			GroupID:  cfg.GroupID,
			Topic:    cfg.Topic,
			MinBytes: 1,
			MaxBytes: 1 << 20,
		})
	}
	return r
}

// Buffer returns the alert buffer endpoints read from.
func (r *Relay) Buffer() *Buffer { return r.buf }

// Buffered returns the number of alerts currently held.
func (r *Relay) Buffered() int { return r.buf.Len() }

// Running reports whether the consume loop is active.
func (r *Relay) Running() bool {
	if r.reader == nil {
		return false
	}
	select {
	case <-r.done:
		return false
	default:
		return true
	}
}

// Run consumes messages until ctx is cancelled or the reader is closed.
// Unparseable messages are dropped and counted, never fatal.
func (r *Relay) Run(ctx context.Context) error {
	if r.reader == nil {
		close(r.done)
		return nil
	}
	defer close(r.done)

	r.log.InfoContext(ctx, "relay started", slog.String("topic", r.reader.Config().Topic))

	for {
		msg, err := r.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var alert domain.Alert
		if err := json.Unmarshal(msg.Value, &alert); err != nil {
			metrics.RelayDropped.Inc()
			r.log.WarnContext(ctx, "dropping unparseable alert",
				slog.Int64("offset", msg.Offset),
				"error", err,
			)
			continue
		}

		seq := r.buf.Append(alert)
		metrics.RelayMessages.Inc()
		r.log.DebugContext(ctx, "alert buffered",
			slog.Uint64("seq", seq),
			slog.String("user_id", alert.UserID),
			slog.String("zone_id", alert.ZoneID),
		)
	}
}

// Close shuts the broker reader down. Safe to call on a disabled relay.
func (r *Relay) Close() error {
	if r.reader == nil {
		return nil
	}
	return r.reader.Close()
}
