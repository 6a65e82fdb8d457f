// Package emu assembles the hardware units into a console and runs it.
//
// A Console is a single-threaded session: all its methods must be called from
// the same goroutine. The only background activity is the writing of
// battery-backed RAM, handed over to a storage.Writer.
package emu

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"nescore/emu/log"
	"nescore/emu/storage"
	"nescore/hw/hwdefs"
	"nescore/hw/input"
	"nescore/hw/mappers"
	"nescore/hw/ppu"
	"nescore/ines"
)

// State is the power state of a Console.
type State uint8

const (
	PoweredOff State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case PoweredOff:
		return "powered off"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

var (
	// ErrInvalidState is returned by operations not allowed in the current
	// console state.
	ErrInvalidState = errors.New("invalid console state")

	ErrNoCartridge = errors.New("no cartridge inserted")
)

// VideoSink receives each completed frame. The frame is only valid during
// the call.
type VideoSink interface {
	WriteFrame(*ppu.Frame) error
}

// AudioSink receives the 16-bit mono samples produced during each frame. The
// slice is only valid during the call.
type AudioSink interface {
	WriteSamples([]int16) error
}

type Options struct {
	Config Config

	Logger  *log.Logger     // nil disables logging
	Storage storage.Adapter // nil disables save-RAM persistence
	Video   VideoSink       // optional
	Audio   AudioSink       // optional

	// OnSaveError is called when save-RAM can't be written, possibly from
	// another goroutine.
	OnSaveError func(error)
}

type Console struct {
	cfg    Config
	logger *log.Logger
	log    log.ModLog
	store  storage.Adapter
	writer *storage.Writer
	video  VideoSink
	audio  AudioSink

	state State
	cart  *ines.Cartridge
	hash  string
	nes   *NES

	buttons [input.NumPorts]input.Pad
	trace   io.Writer

	saveCycle int64             // CPU cycle of the last save-RAM check
	saved     map[string][]byte // last save-RAM content handed to the writer
}

// NewConsole creates a powered off console, without cartridge.
func NewConsole(opts Options) (*Console, error) {
	if err := opts.Config.Check(); err != nil {
		return nil, err
	}

	c := &Console{
		cfg:    opts.Config,
		logger: opts.Logger,
		log:    opts.Logger.Mod(log.ModEmu),
		store:  opts.Storage,
		video:  opts.Video,
		audio:  opts.Audio,
	}
	if c.store != nil {
		delay := time.Duration(c.cfg.Emulation.SaveDebounce)
		c.writer = storage.NewWriter(c.store, delay, opts.Logger.Mod(log.ModStorage), opts.OnSaveError)
	}
	if c.logger != nil {
		c.logger.AddContext(c)
	}
	return c, nil
}

// AddLogContext adds the emulation position to log entries.
func (c *Console) AddLogContext(z *log.EntryZ) {
	if c.nes == nil {
		return
	}
	z.Uint64("frame", c.nes.PPU.FrameCount())
	z.Int64("cycle", c.nes.CPU.Cycles)
}

func (c *Console) State() State { return c.state }

// Cartridge returns the inserted cartridge, or nil.
func (c *Console) Cartridge() *ines.Cartridge { return c.cart }

// Hardware returns the hardware of the inserted cartridge session, or nil.
func (c *Console) Hardware() *NES { return c.nes }

// Frame returns the last completed frame, or nil.
func (c *Console) Frame() *ppu.Frame {
	if c.nes == nil {
		return nil
	}
	return c.nes.PPU.Frame()
}

func (c *Console) invalidState(op string) error {
	return fmt.Errorf("%w: can't %s while %s", ErrInvalidState, op, c.state)
}

// InsertCartridge inserts cart and powers the console on. The battery-backed
// RAM saved for this cartridge, if any, is restored. On error, the console
// is left untouched.
func (c *Console) InsertCartridge(ctx context.Context, cart *ines.Cartridge) error {
	if c.cart != nil {
		return fmt.Errorf("%w: a cartridge is already inserted", ErrInvalidState)
	}

	m, err := mappers.New(cart, c.logger.Mod(log.ModMapper))
	if err != nil {
		return err
	}

	region := c.cfg.Region(cart.Region)
	c.cart = cart
	c.hash = cart.Hash()
	c.nes = newNES(m, hwdefs.Params(region), c.cfg, c.logger)

	c.log.InfoZ("cartridge inserted").
		String("mapper", m.Name()).
		String("hash", c.hash).
		Stringer("region", region).
		Bool("battery", cart.Battery).
		End()

	c.loadRAM(ctx)
	return c.PowerOn()
}

func (c *Console) loadRAM(ctx context.Context) {
	c.saved = make(map[string][]byte)
	if c.store == nil || !c.cart.Battery {
		return
	}

	for _, kind := range []string{mappers.KindPRG, mappers.KindCHR} {
		data, err := c.store.ReadRAM(ctx, c.hash, kind, nil)
		if err != nil {
			c.log.WarnZ("failed to load save-RAM").String("kind", kind).Error("err", err).End()
			continue
		}
		if data == nil {
			continue
		}
		c.nes.Mapper.LoadRAM(kind, data)
		c.log.InfoZ("save-RAM loaded").String("kind", kind).Int("size", len(data)).End()
	}
	for kind, data := range c.nes.Mapper.SaveRAM() {
		c.saved[kind] = data
	}
}

// RemoveCartridge powers the console off if needed, writes the
// battery-backed RAM and removes the cartridge.
func (c *Console) RemoveCartridge(ctx context.Context) error {
	if c.cart == nil {
		return ErrNoCartridge
	}
	if c.state != PoweredOff {
		if err := c.PowerOff(); err != nil {
			return err
		}
	}

	var err error
	if c.writer != nil {
		err = c.writer.Flush(ctx)
	}

	c.log.InfoZ("cartridge removed").String("hash", c.hash).End()
	c.cart = nil
	c.hash = ""
	c.nes = nil
	c.saved = nil
	return err
}

// PowerOn powers a console with a cartridge inserted.
func (c *Console) PowerOn() error {
	if c.state != PoweredOff {
		return c.invalidState("power on")
	}
	if c.cart == nil {
		return ErrNoCartridge
	}

	c.nes.Reset(hwdefs.HardReset)
	for port, pad := range c.buttons {
		c.nes.Ports.SetPad(port, pad)
	}
	if c.trace != nil {
		c.nes.CPU.SetTraceOutput(c.trace, c.nes.PPU)
	}
	c.saveCycle = c.nes.CPU.Cycles
	c.state = Running
	return nil
}

// PowerOff stops a running or paused console. The battery-backed RAM is
// handed to the storage writer.
func (c *Console) PowerOff() error {
	if c.state == PoweredOff {
		return c.invalidState("power off")
	}
	c.snapshotRAM()
	c.state = PoweredOff
	return nil
}

func (c *Console) Pause() error {
	if c.state != Running {
		return c.invalidState("pause")
	}
	c.state = Paused
	return nil
}

func (c *Console) Resume() error {
	if c.state != Paused {
		return c.invalidState("resume")
	}
	c.state = Running
	return nil
}

// HardReset reinitializes all units, as the power button would. Internal RAM
// and cartridge RAM are kept.
func (c *Console) HardReset() error {
	if c.state == PoweredOff {
		return c.invalidState("reset")
	}
	c.nes.Reset(hwdefs.HardReset)
	c.saveCycle = c.nes.CPU.Cycles
	return nil
}

// SoftReset presses the reset button.
func (c *Console) SoftReset() error {
	if c.state == PoweredOff {
		return c.invalidState("reset")
	}
	c.nes.Reset(hwdefs.SoftReset)
	c.saveCycle = c.nes.CPU.Cycles
	return nil
}

// SetButtons sets the state of the controller in port (0 or 1). Other ports
// are ignored.
func (c *Console) SetButtons(port int, pad input.Pad) {
	if port < 0 || port >= input.NumPorts {
		c.log.WarnZ("no such controller port").Int("port", port).End()
		return
	}
	c.buttons[port] = pad
	if c.nes != nil {
		c.nes.Ports.SetPad(port, pad)
	}
}

// SetTraceOutput enables the CPU execution trace, nil disables it.
func (c *Console) SetTraceOutput(w io.Writer) {
	c.trace = w
	if c.nes != nil {
		c.nes.CPU.SetTraceOutput(w, c.nes.PPU)
	}
}

// Step executes one CPU instruction.
func (c *Console) Step() error {
	if c.state != Running {
		return c.invalidState("step")
	}
	c.nes.CPU.Step()
	return nil
}

// RunFrame runs the console until the PPU completes a frame, then hands the
// frame and the audio samples to the sinks. Cancellation of ctx is checked
// between instructions, the frame is then left incomplete.
func (c *Console) RunFrame(ctx context.Context) error {
	if c.state != Running {
		return c.invalidState("run")
	}

	nes := c.nes
	frame := nes.PPU.FrameCount()
	for nes.PPU.FrameCount() == frame {
		if err := ctx.Err(); err != nil {
			return err
		}
		nes.CPU.Step()
	}

	if c.video != nil {
		if err := c.video.WriteFrame(nes.PPU.Frame()); err != nil {
			return fmt.Errorf("video sink: %w", err)
		}
	}

	nes.APU.EndFrame()
	samples := nes.APU.Samples()
	if c.audio != nil && !c.cfg.Audio.DisableAudio {
		if err := c.audio.WriteSamples(samples); err != nil {
			return fmt.Errorf("audio sink: %w", err)
		}
	}

	// Check battery-backed RAM once per emulated second.
	if nes.CPU.Cycles-c.saveCycle >= int64(nes.params.CPUFrequency) {
		c.saveCycle = nes.CPU.Cycles
		c.snapshotRAM()
	}
	return nil
}

// snapshotRAM hands the battery-backed RAM to the writer, if it changed since
// the last snapshot.
func (c *Console) snapshotRAM() {
	if c.writer == nil || !c.cart.Battery {
		return
	}
	for kind, data := range c.nes.Mapper.SaveRAM() {
		if bytes.Equal(data, c.saved[kind]) {
			continue
		}
		c.saved[kind] = data
		c.writer.Submit(storage.Record{Hash: c.hash, Kind: kind, Data: data})
		c.log.DebugZ("save-RAM changed").String("kind", kind).End()
	}
}

// Close removes the cartridge, if any, and waits for the pending save-RAM
// writes.
func (c *Console) Close() error {
	var errs []error
	if c.cart != nil {
		errs = append(errs, c.RemoveCartridge(context.Background()))
	}
	if c.writer != nil {
		errs = append(errs, c.writer.Close())
	}
	if c.logger != nil {
		c.logger.RemoveContext(c)
	}
	return errors.Join(errs...)
}
