package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"nescore/emu/log"
)

const (
	configFile = "config.toml"
	ramDir     = "ram"
	indexFile  = "index.json"
	ramExt     = ".sav"
)

// Dir stores everything in files under a root directory:
//
//	config.toml
//	ram/<hash>.<kind>.sav
//	ram/index.json
//
// The index is a catalog of the save files used by ListRAM. It's rebuilt from
// the directory content when missing or unreadable.
type Dir struct {
	root string
	log  log.ModLog

	mu sync.Mutex // serializes index updates
}

// NewDir returns a Dir rooted at root, creating the directories if needed.
func NewDir(root string, lg log.ModLog) (*Dir, error) {
	if err := os.MkdirAll(filepath.Join(root, ramDir), 0o755); err != nil {
		return nil, &PersistenceError{Op: "open", Err: err}
	}
	return &Dir{root: root, log: lg}, nil
}

// DefaultDir returns the nescore directory inside the user configuration
// directory.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "nescore"), nil
}

// Root returns the root directory of d.
func (d *Dir) Root() string { return d.root }

func (d *Dir) ReadConfig(ctx context.Context, v any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, &PersistenceError{Op: "read-config", Err: err}
	}
	buf, err := os.ReadFile(filepath.Join(d.root, configFile))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, &PersistenceError{Op: "read-config", Err: err}
	}
	if _, err := toml.Decode(string(buf), v); err != nil {
		return false, &PersistenceError{Op: "read-config", Err: err}
	}
	return true, nil
}

func (d *Dir) WriteConfig(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return &PersistenceError{Op: "write-config", Err: err}
	}
	buf, err := toml.Marshal(v)
	if err != nil {
		return &PersistenceError{Op: "write-config", Err: err}
	}
	if err := writeFileAtomic(filepath.Join(d.root, configFile), buf); err != nil {
		return &PersistenceError{Op: "write-config", Err: err}
	}
	return nil
}

func (d *Dir) DeleteConfig(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return &PersistenceError{Op: "delete-config", Err: err}
	}
	err := os.Remove(filepath.Join(d.root, configFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &PersistenceError{Op: "delete-config", Err: err}
	}
	return nil
}

func (d *Dir) ramPath(hash, kind string) string {
	return filepath.Join(d.root, ramDir, hash+"."+kind+ramExt)
}

func (d *Dir) ReadRAM(ctx context.Context, hash, kind string, into []byte) ([]byte, error) {
	if err := checkKey(hash, kind, false); err != nil {
		return nil, &PersistenceError{Op: "read-ram", Hash: hash, Kind: kind, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, &PersistenceError{Op: "read-ram", Hash: hash, Kind: kind, Err: err}
	}

	buf, err := os.ReadFile(d.ramPath(hash, kind))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "read-ram", Hash: hash, Kind: kind, Err: err}
	}
	if cap(into) >= len(buf) {
		return copyInto(into, buf), nil
	}
	return buf, nil
}

func (d *Dir) WriteRAM(ctx context.Context, hash, kind string, data []byte) error {
	if err := checkKey(hash, kind, false); err != nil {
		return &PersistenceError{Op: "write-ram", Hash: hash, Kind: kind, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return &PersistenceError{Op: "write-ram", Hash: hash, Kind: kind, Err: err}
	}

	path := d.ramPath(hash, kind)
	if err := writeFileAtomic(path, data); err != nil {
		return &PersistenceError{Op: "write-ram", Hash: hash, Kind: kind, Err: err}
	}
	fi, err := os.Stat(path)
	if err != nil {
		return &PersistenceError{Op: "write-ram", Hash: hash, Kind: kind, Err: err}
	}

	d.log.DebugZ("save-RAM written").String("hash", hash).String("kind", kind).Int("size", len(data)).End()

	d.mu.Lock()
	defer d.mu.Unlock()

	infos := d.loadIndex()
	infos = slices.DeleteFunc(infos, func(info RAMInfo) bool {
		return info.Hash == hash && info.Kind == kind
	})
	infos = append(infos, RAMInfo{Hash: hash, Kind: kind, Size: len(data), Modified: fi.ModTime().UTC()})
	if err := d.saveIndex(infos); err != nil {
		return &PersistenceError{Op: "write-ram", Hash: hash, Kind: kind, Err: err}
	}
	return nil
}

func (d *Dir) DeleteRAM(ctx context.Context, hash, kind string) error {
	if err := checkKey(hash, kind, true); err != nil {
		return &PersistenceError{Op: "delete-ram", Hash: hash, Kind: kind, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return &PersistenceError{Op: "delete-ram", Hash: hash, Kind: kind, Err: err}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	infos, err := d.scan()
	if err != nil {
		return &PersistenceError{Op: "delete-ram", Hash: hash, Kind: kind, Err: err}
	}

	var errs []error
	infos = slices.DeleteFunc(infos, func(info RAMInfo) bool {
		if !matches(info, hash, kind) {
			return false
		}
		err := os.Remove(d.ramPath(info.Hash, info.Kind))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
			return false
		}
		d.log.InfoZ("save-RAM deleted").String("hash", info.Hash).String("kind", info.Kind).End()
		return true
	})
	if err := d.saveIndex(infos); err != nil {
		errs = append(errs, err)
	}
	if len(errs) != 0 {
		return &PersistenceError{Op: "delete-ram", Hash: hash, Kind: kind, Err: errors.Join(errs...)}
	}
	return nil
}

func (d *Dir) ListRAM(ctx context.Context) ([]RAMInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, &PersistenceError{Op: "list-ram", Err: err}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	infos := d.loadIndex()
	sortInfos(infos)
	return infos, nil
}

func matches(info RAMInfo, hash, kind string) bool {
	return (hash == "" || info.Hash == hash) && (kind == "" || info.Kind == kind)
}

// loadIndex reads the index, or rebuilds it from the directory content. It
// must be called with d.mu held.
func (d *Dir) loadIndex() []RAMInfo {
	path := filepath.Join(d.root, ramDir, indexFile)
	buf, err := os.ReadFile(path)
	if err == nil {
		infos, err := decodeIndex(buf)
		if err == nil {
			return infos
		}
		d.log.WarnZ("corrupted save-RAM index, rebuilding it").String("path", path).Error("err", err).End()
	} else if !errors.Is(err, fs.ErrNotExist) {
		d.log.WarnZ("can't read save-RAM index, rebuilding it").Error("err", err).End()
	}

	infos, err := d.scan()
	if err != nil {
		d.log.ErrorZ("can't list save-RAM directory").Error("err", err).End()
		return nil
	}
	if err := d.saveIndex(infos); err != nil {
		d.log.WarnZ("can't write save-RAM index").Error("err", err).End()
	}
	return infos
}

func (d *Dir) saveIndex(infos []RAMInfo) error {
	sortInfos(infos)
	return writeFileAtomic(filepath.Join(d.root, ramDir, indexFile), encodeIndex(infos))
}

// scan lists the save files present in the ram directory.
func (d *Dir) scan() ([]RAMInfo, error) {
	entries, err := os.ReadDir(filepath.Join(d.root, ramDir))
	if err != nil {
		return nil, err
	}

	var infos []RAMInfo
	for _, ent := range entries {
		name, ok := strings.CutSuffix(ent.Name(), ramExt)
		if !ok || !ent.Type().IsRegular() {
			continue
		}
		hash, kind, ok := strings.Cut(name, ".")
		if !ok || checkKey(hash, kind, false) != nil {
			continue
		}
		fi, err := ent.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		infos = append(infos, RAMInfo{
			Hash:     hash,
			Kind:     kind,
			Size:     int(fi.Size()),
			Modified: fi.ModTime().UTC(),
		})
	}
	return infos, nil
}

func sortInfos(infos []RAMInfo) {
	slices.SortFunc(infos, func(a, b RAMInfo) int {
		if c := strings.Compare(a.Hash, b.Hash); c != 0 {
			return c
		}
		return strings.Compare(a.Kind, b.Kind)
	})
}

// writeFileAtomic writes data to a temporary file then renames it to path,
// so that readers never see a partially written file.
func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
	}
	return err
}
