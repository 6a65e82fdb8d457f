// Package storage persists the emulator configuration and the battery-backed
// RAM of cartridges.
//
// Save-RAM is keyed by the content hash of the cartridge (40 lowercase hex
// digits) and a kind, "prg" or "chr". The emulation never waits on storage:
// the console hands records to a Writer, which batches them and writes them
// from its own goroutine.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Adapter is a key-value store for the configuration and save-RAM.
//
// The configuration is stored as TOML, v is any value toml can encode and
// decode (the emulator passes its *emu.Config).
type Adapter interface {
	// ReadConfig decodes the stored configuration into v. found is false,
	// and v untouched, when no configuration has been saved yet.
	ReadConfig(ctx context.Context, v any) (found bool, err error)
	WriteConfig(ctx context.Context, v any) error
	DeleteConfig(ctx context.Context) error

	// ReadRAM returns a copy of the stored memory, nil when there is none.
	// If into is large enough, it's used as the destination buffer.
	ReadRAM(ctx context.Context, hash, kind string, into []byte) ([]byte, error)
	WriteRAM(ctx context.Context, hash, kind string, data []byte) error

	// DeleteRAM deletes the memories of the given hash and kind. An empty
	// hash or kind matches all.
	DeleteRAM(ctx context.Context, hash, kind string) error

	// ListRAM lists the stored memories, sorted by hash then kind.
	ListRAM(ctx context.Context) ([]RAMInfo, error)
}

// RAMInfo describes a stored memory.
type RAMInfo struct {
	Hash     string
	Kind     string
	Size     int
	Modified time.Time
}

// ErrInvalidKey is wrapped in the error returned when a hash or a kind
// doesn't have the expected form.
var ErrInvalidKey = errors.New("invalid key")

// A PersistenceError records a failed storage operation.
type PersistenceError struct {
	Op   string // "read-config", "write-ram", ...
	Hash string
	Kind string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Hash == "" && e.Kind == "" {
		return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage: %s %s.%s: %v", e.Op, e.Hash, e.Kind, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// checkKey validates hash and kind, which end up in file names. Empty values
// are accepted when wildcard is set.
func checkKey(hash, kind string, wildcard bool) error {
	if !(wildcard && hash == "") {
		if len(hash) != 40 {
			return fmt.Errorf("%w: hash %q", ErrInvalidKey, hash)
		}
		for _, c := range hash {
			if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
				return fmt.Errorf("%w: hash %q", ErrInvalidKey, hash)
			}
		}
	}
	if !(wildcard && kind == "") {
		if kind == "" || len(kind) > 16 {
			return fmt.Errorf("%w: kind %q", ErrInvalidKey, kind)
		}
		for _, c := range kind {
			if c < 'a' || c > 'z' {
				return fmt.Errorf("%w: kind %q", ErrInvalidKey, kind)
			}
		}
	}
	return nil
}

// copyInto returns a copy of data, in into when it's large enough.
func copyInto(into, data []byte) []byte {
	if cap(into) >= len(data) {
		into = into[:len(data)]
	} else {
		into = make([]byte, len(data))
	}
	copy(into, data)
	return into
}
