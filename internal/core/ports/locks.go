package ports

import "context"

// DayLocker serializes read-modify-write sequences on a single key.
// Lock blocks until the key is held or ctx ends; the returned func releases it.
type DayLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
