package storage

import (
	"fmt"
	"time"

	"github.com/go-faster/jx"
)

const indexVersion = 1

// encodeIndex encodes the save-RAM catalog:
//
//	{"version":1,"entries":[{"hash":"...","kind":"prg","size":8192,"modified":"..."}]}
func encodeIndex(infos []RAMInfo) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("version", func(e *jx.Encoder) { e.Int(indexVersion) })
		e.Field("entries", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, info := range infos {
					e.Obj(func(e *jx.Encoder) {
						e.Field("hash", func(e *jx.Encoder) { e.Str(info.Hash) })
						e.Field("kind", func(e *jx.Encoder) { e.Str(info.Kind) })
						e.Field("size", func(e *jx.Encoder) { e.Int(info.Size) })
						e.Field("modified", func(e *jx.Encoder) {
							e.Str(info.Modified.UTC().Format(time.RFC3339Nano))
						})
					})
				}
			})
		})
	})
	return e.Bytes()
}

func decodeIndex(buf []byte) ([]RAMInfo, error) {
	var (
		infos   []RAMInfo
		version int
	)

	d := jx.DecodeBytes(buf)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "version":
			v, err := d.Int()
			version = v
			return err
		case "entries":
			return d.Arr(func(d *jx.Decoder) error {
				info, err := decodeEntry(d)
				if err != nil {
					return err
				}
				infos = append(infos, info)
				return nil
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return nil, err
	}
	if version != indexVersion {
		return nil, fmt.Errorf("unsupported index version %d", version)
	}
	return infos, nil
}

func decodeEntry(d *jx.Decoder) (RAMInfo, error) {
	var info RAMInfo
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "hash":
			info.Hash, err = d.Str()
		case "kind":
			info.Kind, err = d.Str()
		case "size":
			info.Size, err = d.Int()
		case "modified":
			var s string
			if s, err = d.Str(); err == nil {
				info.Modified, err = time.Parse(time.RFC3339Nano, s)
			}
		default:
			err = d.Skip()
		}
		return err
	})
	if err != nil {
		return info, err
	}
	if err := checkKey(info.Hash, info.Kind, false); err != nil {
		return info, err
	}
	return info, nil
}
