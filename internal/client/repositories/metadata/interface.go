// Package metadata is the local key/value store of the CLI. It holds the
// session credential (common.AccessTokenKey) and the last logged-in user name
// (common.UserNameKey); nothing else is persisted client-side.
package metadata

import (
	"context"
	"time"
)

// Repository is a string-keyed byte store that remembers when each key was
// last written. Get returns (nil, nil) for a missing key; Delete of a missing
// key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	UpdatedAt(ctx context.Context, key string) (time.Time, error)
}
