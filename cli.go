package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"nescore/emu/log"
	"nescore/emu/storage"
)

type mode byte

const (
	runMode       mode = iota // Run a ROM headlessly
	romInfosMode              // Show ROM infos
	ramListMode               // List saved battery-backed RAM
	ramDeleteMode             // Delete saved battery-backed RAM
	versionMode               // Show nescore version
)

type (
	CLI struct {
		Run      Run      `cmd:"" help:"Run ROM in emulator, without display."`
		RomInfos RomInfos `cmd:"" help:"Show ROM infos." name:"rom-infos"`
		RAM      RAM      `cmd:"" help:"Manage saved battery-backed RAM." name:"ram"`
		Version  Version  `cmd:"" help:"Show nescore version."`

		DataDir  string     `name:"data-dir" help:"${datadir_help}" type:"path" placeholder:"DIR"`
		Log      logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
		LogLevel string     `name:"log-level" help:"${loglevel_help}" placeholder:"error|warn|info|debug"`

		mode mode
	}

	Run struct {
		RomPath string `arg:"" name:"/path/to/rom" help:"ROM to run." required:"true" type:"existingfile"`

		Frames     int      `name:"frames" help:"Number of frames to run, 0 runs until interrupted." default:"0"`
		Trace      *outfile `name:"trace" help:"Write CPU trace log." placeholder:"FILE|stdout|stderr"`
		Screenshot string   `name:"screenshot" help:"Write the last frame to a PNG file." type:"path" placeholder:"FILE"`
		Wav        string   `name:"wav" help:"Record audio to a WAV file." type:"path" placeholder:"FILE"`
		Unofficial string   `name:"unofficial" help:"${unofficial_help}" placeholder:"emulate|nop"`
		Region     string   `name:"region" help:"Force console region." placeholder:"ntsc|pal"`
		Clip       string   `name:"clip" help:"${clip_help}" enum:"auto,on,off" default:"auto"`
		Realtime   bool     `name:"realtime" help:"Pace emulation at the console frame rate."`
		CPUProfile string   `name:"cpuprofile" help:"Write CPU profile to file." type:"path"`
	}

	RomInfos struct {
		RomPath string `arg:"" name:"/path/to/rom" type:"existingfile"`
	}

	RAM struct {
		List   RAMList   `cmd:"" help:"List saved battery-backed RAM."`
		Delete RAMDelete `cmd:"" help:"Delete saved battery-backed RAM."`
	}

	RAMList struct{}

	RAMDelete struct {
		Hash string `name:"hash" help:"Cartridge hash (SHA-1 of PRG+CHR)." required:""`
		Kind string `name:"kind" help:"RAM kind (prg or chr), all kinds if empty."`
	}

	Version struct{}
)

var vars = kong.Vars{
	"datadir_help":    "Directory holding configuration and saved RAM (default: user config dir).",
	"log_help":        "Enable debug logging for specified modules.",
	"loglevel_help":   "Log level, overrides configuration.",
	"clip_help":       "Hide the top and bottom 8 lines of the screenshot (auto: as the region's TVs do).",
	"unofficial_help": "How to execute unofficial opcodes, overrides configuration.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("nescore"),
		kong.Description("Headless NES emulator."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch ctx.Command() {
	case "rom-infos </path/to/rom>":
		cfg.mode = romInfosMode
	case "ram list":
		cfg.mode = ramListMode
	case "ram delete":
		cfg.mode = ramDeleteMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = runMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "run") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

// logModMask is the set of modules for which debug logs are enabled. It is
// combined with the modules from the configuration.
type logModMask struct {
	mask log.ModuleMask
	set  bool
}

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm *logModMask) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	s, ok := tok.Value.(string)
	if !ok {
		return fmt.Errorf("expected a list of log modules, got %v", tok.Value)
	}
	mask, err := log.ParseModules(s)
	if err != nil {
		return err
	}
	lm.mask, lm.set = mask, true
	return nil
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

// openDir opens the data directory given on the command line, or the default
// one.
func openDir(path string, lg *log.Logger) *storage.Dir {
	if path == "" {
		var err error
		path, err = storage.DefaultDir()
		checkf(err, "failed to locate data directory")
	}
	dir, err := storage.NewDir(path, lg.Mod(log.ModStorage))
	checkf(err, "failed to open data directory")
	return dir
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
