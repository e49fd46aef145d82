package tokenstore

import (
	"context"
	"time"
)

// NoopStore is used when Redis is disabled: logout only clears the cookie and tokens live until expiry.
type NoopStore struct{}

func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (NoopStore) Revoke(context.Context, string, time.Time) error { return nil }

func (NoopStore) IsRevoked(context.Context, string) (bool, error) { return false, nil }
