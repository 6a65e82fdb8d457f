package log

import (
	"fmt"
	"strings"
)

type ModuleMask uint64
type Module uint

const (
	ModuleMaskAll ModuleMask = 0xFFFFFFFFFFFFFFFF
)

// The set of modules is closed: each hardware unit and emulator subsystem logs
// under its own module so that debug output can be enabled selectively.
const (
	ModEmu Module = iota + 1
	ModCPU
	ModHwIo
	ModPPU
	ModInput
	ModSound
	ModDMA
	ModMapper
	ModStorage

	endStandardMods
)

var modNames = [endStandardMods]string{
	"<error>", "emu", "cpu", "hwio", "ppu", "input", "sound", "dma", "mapper", "storage",
}

func (mod Module) String() string {
	if mod < endStandardMods {
		return modNames[mod]
	}
	return fmt.Sprintf("Module(%d)", uint(mod))
}

// ModuleNames returns the names of all valid log modules.
func ModuleNames() []string {
	return append([]string(nil), modNames[1:]...)
}

func ModuleByName(name string) (Module, bool) {
	for idx, s := range modNames[1:] {
		if s == name {
			return Module(idx + 1), true
		}
	}
	return Module(0xFFFFFFFF), false
}

func (mod Module) Mask() ModuleMask {
	return 1 << ModuleMask(mod)
}

// An InvalidModuleError is returned when a list of log modules contains an
// unknown module name, or an invalid combination.
type InvalidModuleError struct {
	Name   string
	Reason string
}

func (e *InvalidModuleError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("unknown log module %q", e.Name)
}

// ParseModules decodes a comma-separated list of module names into a module
// mask. 'all' enables every module and 'no' disables them all, neither can be
// combined with other module names.
func ParseModules(list string) (ModuleMask, error) {
	if strings.TrimSpace(list) == "" {
		return 0, nil
	}
	return ModulesMask(strings.Split(list, ","))
}

// ModulesMask is like ParseModules but takes a list of names.
func ModulesMask(names []string) (ModuleMask, error) {
	var (
		mask    ModuleMask
		nolog   bool
		allLogs bool
	)

	for _, v := range names {
		switch v = strings.TrimSpace(v); v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := ModuleByName(v)
			if !ok {
				return 0, &InvalidModuleError{Name: v}
			}
			mask |= mod.Mask()
		}
	}

	switch {
	case nolog && allLogs:
		return 0, &InvalidModuleError{Name: "no", Reason: "cannot use 'all' and 'no' together"}
	case nolog && mask != 0:
		return 0, &InvalidModuleError{Name: "no", Reason: "cannot combine 'no' with other log modules"}
	case nolog:
		return 0, nil
	case allLogs:
		return ModuleMaskAll, nil
	}
	return mask, nil
}
