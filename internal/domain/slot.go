package domain

import "context"

// Slot is a local key-value persistence slot holding string values under
// fixed keys. A missing key is reported with ok == false, not an error.
type Slot interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
