package cpu

import "fmt"

// UnofficialMode controls the execution of the undocumented opcodes.
//
// Undefined opcodes are never an error. In Emulate mode they reproduce the
// behavior of the real chip, JAM opcodes included: they halt the CPU until
// the next reset. In AsNOP mode they all behave as NOPs, consuming the bytes
// and bus cycles of their addressing mode.
type UnofficialMode uint8

const (
	Emulate UnofficialMode = iota
	AsNOP
)

func (m UnofficialMode) String() string {
	switch m {
	case Emulate:
		return "emulate"
	case AsNOP:
		return "nop"
	}
	return fmt.Sprintf("UnofficialMode(%d)", uint8(m))
}

func ParseUnofficialMode(s string) (UnofficialMode, error) {
	switch s {
	case "emulate", "":
		return Emulate, nil
	case "nop":
		return AsNOP, nil
	}
	return 0, fmt.Errorf("invalid unofficial opcodes mode %q (want emulate|nop)", s)
}

func (m UnofficialMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *UnofficialMode) UnmarshalText(text []byte) error {
	mode, err := ParseUnofficialMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
