package storage

import (
	"context"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

type ramKey struct{ hash, kind string }

type memEntry struct {
	data     []byte
	modified time.Time
}

// Memory is an in-process Adapter. Data is copied in and out, callers never
// share buffers with it. The zero value is ready to use.
type Memory struct {
	mu     sync.Mutex
	config []byte // toml
	ram    map[ramKey]memEntry
}

func (m *Memory) ReadConfig(ctx context.Context, v any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, &PersistenceError{Op: "read-config", Err: err}
	}

	m.mu.Lock()
	buf := m.config
	m.mu.Unlock()

	if buf == nil {
		return false, nil
	}
	if _, err := toml.Decode(string(buf), v); err != nil {
		return false, &PersistenceError{Op: "read-config", Err: err}
	}
	return true, nil
}

func (m *Memory) WriteConfig(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return &PersistenceError{Op: "write-config", Err: err}
	}
	buf, err := toml.Marshal(v)
	if err != nil {
		return &PersistenceError{Op: "write-config", Err: err}
	}

	m.mu.Lock()
	m.config = buf
	m.mu.Unlock()
	return nil
}

func (m *Memory) DeleteConfig(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return &PersistenceError{Op: "delete-config", Err: err}
	}
	m.mu.Lock()
	m.config = nil
	m.mu.Unlock()
	return nil
}

func (m *Memory) ReadRAM(ctx context.Context, hash, kind string, into []byte) ([]byte, error) {
	if err := checkKey(hash, kind, false); err != nil {
		return nil, &PersistenceError{Op: "read-ram", Hash: hash, Kind: kind, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, &PersistenceError{Op: "read-ram", Hash: hash, Kind: kind, Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ent, ok := m.ram[ramKey{hash, kind}]
	if !ok {
		return nil, nil
	}
	return copyInto(into, ent.data), nil
}

func (m *Memory) WriteRAM(ctx context.Context, hash, kind string, data []byte) error {
	if err := checkKey(hash, kind, false); err != nil {
		return &PersistenceError{Op: "write-ram", Hash: hash, Kind: kind, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return &PersistenceError{Op: "write-ram", Hash: hash, Kind: kind, Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ram == nil {
		m.ram = make(map[ramKey]memEntry)
	}
	m.ram[ramKey{hash, kind}] = memEntry{
		data:     copyInto(nil, data),
		modified: time.Now().UTC(),
	}
	return nil
}

func (m *Memory) DeleteRAM(ctx context.Context, hash, kind string) error {
	if err := checkKey(hash, kind, true); err != nil {
		return &PersistenceError{Op: "delete-ram", Hash: hash, Kind: kind, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return &PersistenceError{Op: "delete-ram", Hash: hash, Kind: kind, Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for k := range m.ram {
		if (hash == "" || k.hash == hash) && (kind == "" || k.kind == kind) {
			delete(m.ram, k)
		}
	}
	return nil
}

func (m *Memory) ListRAM(ctx context.Context) ([]RAMInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, &PersistenceError{Op: "list-ram", Err: err}
	}

	m.mu.Lock()
	infos := make([]RAMInfo, 0, len(m.ram))
	for k, ent := range m.ram {
		infos = append(infos, RAMInfo{
			Hash:     k.hash,
			Kind:     k.kind,
			Size:     len(ent.data),
			Modified: ent.modified,
		})
	}
	m.mu.Unlock()

	sortInfos(infos)
	return infos, nil
}
