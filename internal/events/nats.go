package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	nats "github.com/nats-io/nats.go"
)

// natsConn is the part of *nats.Conn the publisher needs.
type natsConn interface {
	Publish(subj string, data []byte) error
	Drain() error
}

type natsPublisher struct {
	conn   natsConn
	prefix string
}

// NewPublisher connects to NATS when cfg.NATSURL is set and returns [Nop]
// otherwise.
func NewPublisher(cfg config.Events, log *logger.Logger) (Publisher, error) {
	if cfg.NATSURL == "" {
		log.Info().Msg("NATS url is not set, domain events are disabled")
		return Nop(), nil
	}

	conn, err := nats.Connect(cfg.NATSURL,
		nats.Name("fraud-shield"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		log.Err(err).Str("func", "NewPublisher").Msg("error connecting to NATS")
		return nil, fmt.Errorf("error connecting to NATS: %w", err)
	}
	log.Info().Str("url", cfg.NATSURL).Msg("connected to NATS")

	return newNATSPublisher(conn, cfg.SubjectPrefix), nil
}

func newNATSPublisher(conn natsConn, prefix string) *natsPublisher {
	return &natsPublisher{conn: conn, prefix: prefix}
}

// Subject returns the full subject an event is published under.
func Subject(prefix, event string) string {
	if prefix == "" {
		return event
	}
	return prefix + "." + event
}

func (p *natsPublisher) Publish(ctx context.Context, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error encoding %s event: %w", event, err)
	}

	subject := Subject(p.prefix, event)
	if err = p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("error publishing %s: %w", subject, err)
	}

	logger.FromContext(ctx).Debug().Str("subject", subject).Msg("event published")
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *natsPublisher) Close() error {
	return p.conn.Drain()
}
