// Package store provides the opaque string-keyed stores the persistence
// gateway writes through. The contract mirrors the mobile app's
// AsyncStorage: get a string by key, set a string by key, nothing else.
package store

import "context"

// Store is an asynchronous string-keyed store. GetString reports
// (value, true) when the key exists and ("", false) when it does not;
// absence is not an error. Both operations may fail with an I/O fault.
type Store interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string) error
	Close() error
}
