// Package events publishes domain events about players to a message broker.
//
// The broker is optional: when no NATS URL is configured the server runs with
// [Nop], and a publishing failure never fails the request that caused it.
package events

import (
	"context"
)

//go:generate mockgen -source=publisher.go -destination=../mock/events_mock.go -package=mock

// Publisher sends a JSON-encoded payload under the given event name.
type Publisher interface {
	Publish(ctx context.Context, event string, payload any) error
	Close() error
}

type nopPublisher struct{}

// Nop returns a Publisher that discards every event.
func Nop() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, string, any) error { return nil }

func (nopPublisher) Close() error { return nil }
