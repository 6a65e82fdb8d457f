// Package log provides module-based logging on top of logrus.
//
// There is no package-level logger. A Logger is created for an emulation
// session and each hardware unit receives its own ModLog at construction. A
// zero ModLog is valid and discards everything, so that components can be
// built in tests without any logging setup.
package log

import (
	"io"

	"gopkg.in/Sirupsen/logrus.v0"
)

// A Context adds fields to every entry emitted by a Logger, for example the
// current frame number or the CPU program counter.
type Context interface {
	AddLogContext(*EntryZ)
}

type Logger struct {
	l         *logrus.Logger
	level     Level
	debugMask ModuleMask
	contexts  []Context
}

// New creates a logger writing text entries to w. Entries at or above level
// are always emitted; more verbose entries are only emitted for the modules
// present in debug.
func New(w io.Writer, level Level, debug ModuleMask) *Logger {
	l := logrus.New()
	l.Out = w
	l.Formatter = &logrus.TextFormatter{DisableTimestamp: true, DisableColors: true}
	l.Level = DebugLevel.logrus()

	return &Logger{
		l:         l,
		level:     level,
		debugMask: debug,
	}
}

// Mod returns the logging handle of the given module.
func (lg *Logger) Mod(mod Module) ModLog {
	return ModLog{lg: lg, mod: mod}
}

func (lg *Logger) EnableDebugModules(mask ModuleMask) {
	lg.debugMask |= mask
}

func (lg *Logger) DisableDebugModules(mask ModuleMask) {
	lg.debugMask &^= mask
}

func (lg *Logger) SetLevel(level Level) {
	lg.level = level
}

// AddContext registers c so that its fields are added to all entries.
func (lg *Logger) AddContext(c Context) {
	lg.contexts = append(lg.contexts, c)
}

// RemoveContext unregisters a context previously added with AddContext.
func (lg *Logger) RemoveContext(c Context) {
	for i := range lg.contexts {
		if lg.contexts[i] == c {
			lg.contexts = append(lg.contexts[:i], lg.contexts[i+1:]...)
			return
		}
	}
}

func (lg *Logger) enabled(mod Module, level Level) bool {
	return level <= lg.level || lg.debugMask&mod.Mask() != 0
}

// ModLog is the logging handle held by a component.
type ModLog struct {
	lg  *Logger
	mod Module
}

func (ml ModLog) Module() Module { return ml.mod }

func (ml ModLog) Enabled(level Level) bool {
	return ml.lg != nil && ml.lg.enabled(ml.mod, level)
}

func (ml ModLog) logz(lvl Level, msg string) *EntryZ {
	if ml.Enabled(lvl) {
		e := newEntryZ()
		e.lg = ml.lg
		e.lvl = lvl
		e.msg = msg
		e.mod = ml.mod
		return e
	}
	return nil
}

func (ml ModLog) DebugZ(msg string) *EntryZ { return ml.logz(DebugLevel, msg) }
func (ml ModLog) InfoZ(msg string) *EntryZ  { return ml.logz(InfoLevel, msg) }
func (ml ModLog) WarnZ(msg string) *EntryZ  { return ml.logz(WarnLevel, msg) }
func (ml ModLog) ErrorZ(msg string) *EntryZ { return ml.logz(ErrorLevel, msg) }
