package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"

	"nescore/emu"
	"nescore/emu/log"
	"nescore/emu/storage"
	"nescore/hw/cpu"
	"nescore/ines"
)

// runMain runs the rom given on the command line until the requested number
// of frames is reached or the process is interrupted. It returns the process
// exit code.
func runMain(args CLI, cfg emu.Config, store storage.Adapter, lg *log.Logger) int {
	run := args.Run

	if run.Unofficial != "" {
		var m cpu.UnofficialMode
		checkf(m.UnmarshalText([]byte(run.Unofficial)), "invalid --unofficial value")
		cfg.Emulation.UnofficialOpcodes = m
	}
	if run.Region != "" {
		cfg.General.RegionOverride = run.Region
	}

	rom, err := ines.ReadFile(run.RomPath)
	checkf(err, "failed to open rom")

	opts := emu.Options{
		Config:  cfg,
		Logger:  lg,
		Storage: store,
		OnSaveError: func(err error) {
			fmt.Fprintf(os.Stderr, "failed to save battery-backed RAM: %v\n", err)
		},
	}

	if run.Wav != "" {
		wav, err := newWavSink(run.Wav, cfg.Audio.SampleRate)
		checkf(err, "failed to create wav file")
		defer func() {
			if err := wav.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write wav file: %v\n", err)
			}
		}()
		opts.Audio = wav
	}

	console, err := emu.NewConsole(opts)
	checkf(err, "failed to create console")
	defer console.Close()

	if run.Trace != nil {
		defer run.Trace.Close()
		console.SetTraceOutput(run.Trace)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := console.InsertCartridge(ctx, rom); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start emulator: %v\n", err)
		return 1
	}

	if run.CPUProfile != "" {
		f, err := os.Create(run.CPUProfile)
		checkf(err, "failed to create cpu profile file")
		checkf(pprof.StartCPUProfile(f), "failed to start cpu profile")
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
			fmt.Println("CPU profile written to", run.CPUProfile)
		}()
	}

	params := console.Hardware().Params()

	var pace <-chan time.Time
	if run.Realtime {
		ticker := time.NewTicker(params.FrameDuration())
		defer ticker.Stop()
		pace = ticker.C
	}

	exitcode := 0
loop:
	for nframes := 0; run.Frames == 0 || nframes < run.Frames; nframes++ {
		if err := console.RunFrame(ctx); err != nil {
			if !errors.Is(err, context.Canceled) {
				fmt.Fprintf(os.Stderr, "emulation error: %v\n", err)
				exitcode = 1
			}
			break
		}
		if pace != nil {
			select {
			case <-pace:
			case <-ctx.Done():
				break loop
			}
		}
	}

	if run.Screenshot != "" {
		clip := params.ClipTopBottom
		switch run.Clip {
		case "on":
			clip = true
		case "off":
			clip = false
		}
		if err := screenshot(run.Screenshot, console, clip); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write screenshot: %v\n", err)
			exitcode = 1
		}
	}

	// Use a fresh context, ctx may be canceled already and the saved RAM
	// must still be written.
	if err := console.RemoveCartridge(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to save battery-backed RAM: %v\n", err)
		exitcode = 1
	}
	return exitcode
}

func screenshot(path string, console *emu.Console, clip bool) error {
	frame := console.Frame()
	if frame == nil {
		return errors.New("no frame has been rendered")
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame.RGBA(clip)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
