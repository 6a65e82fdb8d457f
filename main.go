package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"text/tabwriter"

	"nescore/emu"
	"nescore/emu/log"
	"nescore/emu/storage"
	"nescore/ines"
)

func main() {
	args := parseArgs(os.Args[1:])

	switch args.mode {
	case versionMode:
		printVersion()
		return
	case romInfosMode:
		rom, err := ines.ReadFile(args.RomInfos.RomPath)
		checkf(err, "failed to open rom")
		checkf(rom.PrintInfos(os.Stdout), "failed to print rom infos")
		return
	}

	ctx := context.Background()

	// Storage warnings, such as an index rebuild, may occur before the
	// configuration is loaded.
	lg := log.New(os.Stderr, log.WarnLevel, 0)
	dir := openDir(args.DataDir, lg)
	cfg, err := emu.LoadConfigOrDefault(ctx, dir)
	checkf(err, "failed to load configuration from %s", dir.Root())
	checkf(configureLogger(lg, cfg, args), "invalid logging options")

	// Save-RAM can live elsewhere than the configuration.
	ramdir := dir
	if cfg.Storage.Dir != "" {
		ramdir = openDir(cfg.Storage.Dir, lg)
	}

	switch args.mode {
	case ramListMode:
		ramList(ctx, ramdir)
	case ramDeleteMode:
		checkf(ramdir.DeleteRAM(ctx, args.RAM.Delete.Hash, args.RAM.Delete.Kind), "failed to delete saved RAM")
	case runMode:
		os.Exit(runMain(args, cfg, ramdir, lg))
	}
}

func ramList(ctx context.Context, store storage.Adapter) {
	infos, err := store.ListRAM(ctx)
	checkf(err, "failed to list saved RAM")

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "HASH\tKIND\tSIZE\tMODIFIED")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", info.Hash, info.Kind, info.Size, info.Modified.Format("2006-01-02 15:04:05"))
	}
	checkf(tw.Flush(), "failed to list saved RAM")
}

func printVersion() {
	version := "(devel)"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		version = bi.Main.Version
	}
	fmt.Println("nescore", version)
}

// configureLogger applies the logging configuration to lg, then the command
// line options. Modules given with --log are added to the configured ones.
func configureLogger(lg *log.Logger, cfg emu.Config, args CLI) error {
	mask, err := log.ParseModules(cfg.Log.Modules)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	lg.SetLevel(cfg.Log.Level)
	lg.EnableDebugModules(mask)

	if args.LogLevel != "" {
		level, err := log.ParseLevel(args.LogLevel)
		if err != nil {
			return err
		}
		lg.SetLevel(level)
	}

	if args.Log.set {
		if args.Log.mask == 0 {
			// --log=no
			lg.DisableDebugModules(log.ModuleMaskAll)
			lg.SetLevel(log.PanicLevel)
		} else {
			lg.EnableDebugModules(args.Log.mask)
		}
	}
	return nil
}
