package cpu

import (
	"bytes"
	"strings"
	"testing"
)

func BenchmarkDisasmOpAppend(b *testing.B) {
	const want = `C000  4C F5 C5  JMP $C5F5                       `

	op := DisasmOp{
		Opcode: "JMP",
		Oper:   "$C5F5",
		Buf:    []byte{0x4c, 0xf5, 0xc5},
		PC:     0xC000,
	}

	var buf []byte
	for range b.N {
		buf = op.AppendTo(buf[:0])
	}

	if string(buf) != want {
		b.Fatalf("\ngot:  \"%s\"\nwant: \"%s\"\n", string(buf), want)
	}
}

type dummyDisasm map[uint16]DisasmOp

func (dd dummyDisasm) Disasm(pc uint16) DisasmOp {
	return dd[pc]
}

type fixedPosition struct{ scanline, dot int }

func (p fixedPosition) Position() (int, int) { return p.scanline, p.dot }

func TestTraceFormat(t *testing.T) {
	want := []string{
		`E052  A9 32     LDA #$32                         A:00 X:01 Y:00 P:07 S:F4 PPU:0  ,27  8`,
		`E054  20 EE E0  JSR $E0EE                        A:32 X:01 Y:00 P:05 S:F4 PPU:0  ,33  10`,
		`E057  0D 00 20  ORA PpuControl_2000              A:32 X:01 Y:00 P:05 S:F2 PPU:-1 ,340 11`,
	}

	var out bytes.Buffer

	tr := tracer{
		d: dummyDisasm{
			0xE052: DisasmOp{
				PC:     0xE052,
				Buf:    []byte{0xA9, 0x32},
				Opcode: "LDA",
				Oper:   "#$32",
			},
			0xE054: DisasmOp{
				PC:     0xE054,
				Buf:    []byte{0x20, 0xEE, 0xE0},
				Opcode: "JSR",
				Oper:   "$E0EE",
			},
			0xE057: DisasmOp{
				PC:     0xE057,
				Buf:    []byte{0x0D, 0x00, 0x20},
				Opcode: "ORA",
				Oper:   "PpuControl_2000",
			},
		},
		w: &out,
	}

	tr.write(cpuState{
		PC: 0xE052,
		A:  0x00, X: 0x01, Y: 0x00, P: P(0x07), SP: 0xF4,
		Scanline: 0,
		Dot:      27,
		Clock:    8,
	})
	tr.write(cpuState{
		PC: 0xE054,
		A:  0x32, X: 0x01, Y: 0x00, P: P(0x05), SP: 0xF4,
		Scanline: 0,
		Dot:      33,
		Clock:    10,
	})

	// The PPU position, when available, overrides the one in the state.
	tr.pos = fixedPosition{scanline: -1, dot: 340}
	tr.write(cpuState{
		PC: 0xE057,
		A:  0x32, X: 0x01, Y: 0x00, P: P(0x05), SP: 0xF2,
		Clock: 11,
	})

	wantstr := strings.Join(want, "\n") + "\n"
	if out.String() != wantstr {
		t.Fatalf("trace differs\ngot:\n%s\nwant:\n%s\n", out.String(), wantstr)
	}
}

func TestCPUTrace(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x0600, `0600: a2 40 e0 41`)
	cpu.P = 0x24

	var out bytes.Buffer
	cpu.SetTraceOutput(&out, fixedPosition{scanline: 241, dot: 3})
	cpu.Step()
	cpu.Step()
	cpu.SetTraceOutput(nil, nil)
	cpu.Step()

	want := `0600  A2 40     LDX #$40                         A:00 X:00 Y:00 P:24 S:FD PPU:241,3   1
0602  E0 41     CPX #$41                         A:00 X:40 Y:00 P:24 S:FD PPU:241,3   3
`
	if out.String() != want {
		t.Fatalf("trace differs\ngot:\n%s\nwant:\n%s\n", out.String(), want)
	}
}
