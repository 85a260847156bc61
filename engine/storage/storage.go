// Package storage provides small durable key-value stores for engine state
// that must survive restarts (widget placement, user preferences).
package storage

import "errors"

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

// Store is a flat key-value store. Values are opaque bytes; Set overwrites.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
