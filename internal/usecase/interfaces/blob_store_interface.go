package interfaces

import (
	"context"
	"errors"
)

// ErrStorage marks blob read/write failures so callers can distinguish
// storage outages from domain errors.
var ErrStorage = errors.New("storage error")

// IBlobStore is opaque byte storage for attachment and document content.
// Implementations wrap failures with ErrStorage.

type IBlobStore interface {
	Write(ctx context.Context, path string, data []byte, contentType string) error
	Read(ctx context.Context, path string) ([]byte, error)
}
