package cpu

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-faster/jx"

	"nescore/tests"
)

// Opcodes with unpredictable results on real hardware, and the JAM opcodes.
var skippedOps = map[uint8]string{
	0x8B: "unstable", 0xAB: "unstable", 0x93: "unstable",
	0x9B: "unstable", 0x9C: "unstable", 0x9E: "unstable", 0x9F: "unstable",
	0x02: "jam", 0x12: "jam", 0x22: "jam", 0x32: "jam",
	0x42: "jam", 0x52: "jam", 0x62: "jam", 0x72: "jam",
	0x92: "jam", 0xB2: "jam", 0xD2: "jam", 0xF2: "jam",
}

type harteState struct {
	PC         uint16
	S, A, X, Y uint8
	P          uint8
	RAM        [][2]int
}

type harteCycle struct {
	addr  uint16
	val   uint8
	write bool
}

type harteTest struct {
	Name    string
	Initial harteState
	Final   harteState
	Cycles  []harteCycle
}

func decodeInts(d *jx.Decoder) ([]int, error) {
	var ints []int
	err := d.Arr(func(d *jx.Decoder) error {
		v, err := d.Int()
		ints = append(ints, v)
		return err
	})
	return ints, err
}

func (s *harteState) decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		if key == "ram" {
			return d.Arr(func(d *jx.Decoder) error {
				row, err := decodeInts(d)
				if err != nil {
					return err
				}
				if len(row) != 2 {
					return fmt.Errorf("malformed ram row %v", row)
				}
				s.RAM = append(s.RAM, [2]int{row[0], row[1]})
				return nil
			})
		}

		v, err := d.Int()
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		switch key {
		case "pc":
			s.PC = uint16(v)
		case "s":
			s.S = uint8(v)
		case "a":
			s.A = uint8(v)
		case "x":
			s.X = uint8(v)
		case "y":
			s.Y = uint8(v)
		case "p":
			s.P = uint8(v)
		}
		return nil
	})
}

func decodeCycle(d *jx.Decoder) (harteCycle, error) {
	var (
		c harteCycle
		i int
	)
	err := d.Arr(func(d *jx.Decoder) error {
		defer func() { i++ }()
		switch i {
		case 0:
			v, err := d.Int()
			c.addr = uint16(v)
			return err
		case 1:
			v, err := d.Int()
			c.val = uint8(v)
			return err
		case 2:
			s, err := d.Str()
			c.write = s == "write"
			return err
		}
		return d.Skip()
	})
	return c, err
}

func decodeHarteTests(buf []byte) ([]harteTest, error) {
	var all []harteTest
	err := jx.DecodeBytes(buf).Arr(func(d *jx.Decoder) error {
		var tt harteTest
		err := d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "name":
				s, err := d.Str()
				tt.Name = s
				return err
			case "initial":
				return tt.Initial.decode(d)
			case "final":
				return tt.Final.decode(d)
			case "cycles":
				return d.Arr(func(d *jx.Decoder) error {
					c, err := decodeCycle(d)
					tt.Cycles = append(tt.Cycles, c)
					return err
				})
			}
			return d.Skip()
		})
		all = append(all, tt)
		return err
	})
	return all, err
}

func TestDecodeHarteTests(t *testing.T) {
	const js = `[{
		"name": "a9 42 00",
		"initial": {"pc": 1000, "s": 253, "a": 0, "x": 1, "y": 2, "p": 36, "ram": [[1000, 169], [1001, 66]]},
		"final": {"pc": 1002, "s": 253, "a": 66, "x": 1, "y": 2, "p": 36, "ram": [[1000, 169], [1001, 66]]},
		"cycles": [[1000, 169, "read"], [1001, 66, "read"]]
	}]`

	got, err := decodeHarteTests([]byte(js))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d tests, want 1", len(got))
	}
	tt := got[0]
	if tt.Name != "a9 42 00" || tt.Initial.PC != 1000 || tt.Final.A != 66 || tt.Initial.P != 36 {
		t.Errorf("wrong decoded test: %+v", tt)
	}
	if len(tt.Initial.RAM) != 2 || tt.Initial.RAM[1] != [2]int{1001, 66} {
		t.Errorf("wrong decoded ram: %v", tt.Initial.RAM)
	}
	if len(tt.Cycles) != 2 || tt.Cycles[1] != (harteCycle{addr: 1001, val: 66}) {
		t.Errorf("wrong decoded cycles: %v", tt.Cycles)
	}
}

// TestOpcodes runs the Tom Harte nes6502 processor tests, 10000 tests per
// opcode, from github.com/SingleStepTests/65x02.
func TestOpcodes(t *testing.T) {
	dir := tests.TomHarteProcTestsPath(t)

	for opcode := range 256 {
		opstr := fmt.Sprintf("%02x", opcode)
		if reason, ok := skippedOps[uint8(opcode)]; ok {
			t.Run(opstr, func(t *testing.T) { t.Skipf("skipping %s opcode", reason) })
			continue
		}
		t.Run(opstr, testOpcode(filepath.Join(dir, opstr+".json")))
	}
}

func testOpcode(path string) func(t *testing.T) {
	return func(t *testing.T) {
		t.Parallel()

		buf, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		all, err := decodeHarteTests(buf)
		if err != nil {
			t.Fatal(err)
		}

		bus := &testBus{}
		cpu := New(bus, logNone)

		for _, tt := range all {
			clear(bus.mem[:])
			bus.cycles = bus.cycles[:0]

			cpu.A = tt.Initial.A
			cpu.X = tt.Initial.X
			cpu.Y = tt.Initial.Y
			cpu.P = P(tt.Initial.P)
			cpu.SP = tt.Initial.S
			cpu.PC = tt.Initial.PC
			cpu.Cycles = 0
			for _, row := range tt.Initial.RAM {
				bus.mem[row[0]] = uint8(row[1])
			}

			cpu.Step()

			if !checkState(t, tt, cpu, bus) {
				// One failure per opcode is enough.
				return
			}
		}
	}
}

func checkState(t *testing.T, tt harteTest, cpu *CPU, bus *testBus) bool {
	t.Helper()

	var errs []string
	check := func(name string, got, want int) {
		if got != want {
			errs = append(errs, fmt.Sprintf("%s = $%02X, want $%02X", name, got, want))
		}
	}

	check("PC", int(cpu.PC), int(tt.Final.PC))
	check("SP", int(cpu.SP), int(tt.Final.S))
	check("A", int(cpu.A), int(tt.Final.A))
	check("X", int(cpu.X), int(tt.Final.X))
	check("Y", int(cpu.Y), int(tt.Final.Y))
	check("P", int(cpu.P), int(tt.Final.P))
	check("cycles", int(cpu.Cycles), len(tt.Cycles))
	for _, row := range tt.Final.RAM {
		check(fmt.Sprintf("ram[$%04X]", row[0]), int(bus.mem[row[0]]), row[1])
	}

	if len(errs) == 0 {
		return true
	}
	t.Errorf("test %q:\n%s", tt.Name, strings.Join(errs, "\n"))
	return false
}
