package emu

import (
	"context"
	"fmt"
	"time"

	"nescore/emu/log"
	"nescore/emu/storage"
	"nescore/hw/apu"
	"nescore/hw/cpu"
	"nescore/hw/hwdefs"
)

type Config struct {
	General   GeneralConfig   `toml:"general"`
	Emulation EmulationConfig `toml:"emulation"`
	Audio     AudioConfig     `toml:"audio"`
	Log       LogConfig       `toml:"log"`
	Storage   StorageConfig   `toml:"storage"`
}

type GeneralConfig struct {
	// RegionOverride forces the console region, "ntsc" or "pal". When
	// empty, the region of the cartridge header is used.
	RegionOverride string `toml:"region_override"`
}

type EmulationConfig struct {
	UnofficialOpcodes cpu.UnofficialMode `toml:"unofficial_opcodes"`

	// SaveDebounce is the maximum delay between a change of the
	// battery-backed RAM and its write to storage.
	SaveDebounce Duration `toml:"save_debounce"`
}

type AudioConfig struct {
	SampleRate   int  `toml:"sample_rate"`
	DisableAudio bool `toml:"disable_audio"`
}

type LogConfig struct {
	Level   log.Level `toml:"level"`
	Modules string    `toml:"modules"` // debug modules, see log.ParseModules
}

type StorageConfig struct {
	Dir string `toml:"dir"` // empty means storage.DefaultDir
}

// Duration is a time.Duration written as a string ("2s") in toml.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// DefaultConfig returns the configuration used when none has been saved.
func DefaultConfig() Config {
	return Config{
		Emulation: EmulationConfig{
			UnofficialOpcodes: cpu.Emulate,
			SaveDebounce:      Duration(2 * time.Second),
		},
		Audio: AudioConfig{
			SampleRate: apu.DefaultSampleRate,
		},
		Log: LogConfig{
			Level: log.WarnLevel,
		},
	}
}

// A ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Check validates cfg.
func (cfg *Config) Check() error {
	if cfg.General.RegionOverride != "" {
		if _, err := hwdefs.ParseRegion(cfg.General.RegionOverride); err != nil {
			return &ConfigError{Field: "general.region_override", Value: cfg.General.RegionOverride, Err: err}
		}
	}
	if cfg.Emulation.SaveDebounce < 0 {
		return &ConfigError{
			Field: "emulation.save_debounce",
			Value: time.Duration(cfg.Emulation.SaveDebounce),
			Err:   fmt.Errorf("negative duration"),
		}
	}
	if sr := cfg.Audio.SampleRate; sr < apu.MinSampleRate || sr > apu.MaxSampleRate {
		return &ConfigError{
			Field: "audio.sample_rate",
			Value: sr,
			Err:   fmt.Errorf("out of range [%d, %d]", apu.MinSampleRate, apu.MaxSampleRate),
		}
	}
	if _, err := log.ParseModules(cfg.Log.Modules); err != nil {
		return &ConfigError{Field: "log.modules", Value: cfg.Log.Modules, Err: err}
	}
	return nil
}

// Region returns the console region to use for a cartridge made for
// cartRegion.
func (cfg *Config) Region(cartRegion hwdefs.Region) hwdefs.Region {
	if cfg.General.RegionOverride == "" {
		return cartRegion
	}
	r, err := hwdefs.ParseRegion(cfg.General.RegionOverride)
	if err != nil {
		return cartRegion
	}
	return r
}

// LoadConfigOrDefault loads the configuration from the storage, or returns
// the default one when none has been saved. Missing values keep their
// default.
func LoadConfigOrDefault(ctx context.Context, store storage.Adapter) (Config, error) {
	cfg := DefaultConfig()
	if _, err := store.ReadConfig(ctx, &cfg); err != nil {
		return DefaultConfig(), err
	}
	if err := cfg.Check(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// SaveConfig writes cfg to the storage.
func SaveConfig(ctx context.Context, store storage.Adapter, cfg Config) error {
	if err := cfg.Check(); err != nil {
		return err
	}
	return store.WriteConfig(ctx, cfg)
}
