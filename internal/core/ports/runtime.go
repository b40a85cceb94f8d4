package ports

import (
	"context"
	"io"
	"time"
)

// Clock supplies the current time. Injected so token expiry and timestamps are
// testable against a fixed instant.
type Clock func() time.Time

// RevocationRegistry is the token denylist consulted on every protected
// request. Revoke is idempotent.
type RevocationRegistry interface {
	Revoke(ctx context.Context, jti string) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// FileStore accepts raw file bytes and returns the storable reference path the
// project pipeline works with. Name identifies the backend for metrics.
type FileStore interface {
	Save(ctx context.Context, filename string, r io.Reader, size int64) (string, error)
	Name() string
}
