package cpu

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/hw/hwdefs"
)

func TestPString(t *testing.T) {
	p := P(0b00110100)
	if got := p.String(); got != "nvUBdIzc" {
		t.Errorf("got P = %s, want %s", got, "nvUBdIzc")
	}
	p = P(0b00000100)
	if p.String() != "nvubdIzc" {
		t.Errorf("got P = %s, want %s", p.String(), "nvubdIzc")
	}
}

func TestAllOpcodesAreImplemented(t *testing.T) {
	for opcode := range 256 {
		if ops[opcode] == nil {
			t.Errorf("opcode %02x not implemented", opcode)
		}
		if nopOps[opcode] == nil {
			t.Errorf("opcode %02x not implemented in nop mode", opcode)
		}
		if disasmOps[opcode] == nil {
			t.Errorf("opcode %02x has no disassembly", opcode)
		}
	}
}

func TestCPx(t *testing.T) {
	tests := []struct {
		name   string
		dump   string
		wantP  P
		wantX  uint8
		cycles int64
	}{
		{
			name: "40 - 41",
			// LDX #$40
			// CPX #$41
			dump:   `0600: a2 40 e0 41`,
			wantP:  0b10110000,
			wantX:  0x40,
			cycles: 4,
		},
		{
			name: "40 - 40",
			// LDX #$40
			// CPX #$40
			dump:   `0600: a2 40 e0 40`,
			wantP:  0b00110011,
			wantX:  0x40,
			cycles: 4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, _ := newTestCPU(t, 0x0600, tt.dump)
			cpu.P = 0b00110000
			cpu.Step()
			cpu.Step()

			if cpu.P != tt.wantP {
				t.Errorf("P = %s, want %s", cpu.P, tt.wantP)
			}
			if cpu.X != tt.wantX {
				t.Errorf("X = $%02X, want $%02X", cpu.X, tt.wantX)
			}
			if cpu.Cycles != tt.cycles {
				t.Errorf("cycles = %d, want %d", cpu.Cycles, tt.cycles)
			}
		})
	}
}

func TestLoop(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x0600, `
# LDX #5
0600: a2 05
# DEX
0602: ca
# BNE $0602
0603: d0 fd
0605: ea`)

	runUntil(t, cpu, 0x0605, 100)

	if cpu.X != 0 || !cpu.P.hasFlag(Zero) {
		t.Errorf("X = %d, P = %s, want X = 0 and Z set", cpu.X, cpu.P)
	}
	// LDX + 5 DEX + 4 taken BNE + 1 not taken BNE.
	if want := int64(2 + 5*2 + 4*3 + 2); cpu.Cycles != want {
		t.Errorf("cycles = %d, want %d", cpu.Cycles, want)
	}
}

func TestBusCycles(t *testing.T) {
	r := func(addr uint16, val uint8) busCycle { return busCycle{addr: addr, val: val} }
	w := func(addr uint16, val uint8) busCycle { return busCycle{addr: addr, val: val, write: true} }

	tests := []struct {
		name  string
		dump  string
		steps int
		want  []busCycle
	}{
		{
			name:  "JSR",
			dump:  `0600: 20 10 06`,
			steps: 1,
			want: []busCycle{
				r(0x0600, 0x20), r(0x0601, 0x10),
				r(0x01FD, 0x00), // dummy stack read
				w(0x01FD, 0x06), w(0x01FC, 0x02),
				r(0x0602, 0x06),
			},
		},
		{
			name:  "absolute,X page crossed",
			dump:  "0600: a2 01 bd ff 06\n0700: 99",
			steps: 2,
			want: []busCycle{
				r(0x0600, 0xa2), r(0x0601, 0x01),
				r(0x0602, 0xbd), r(0x0603, 0xff), r(0x0604, 0x06),
				r(0x0600, 0xa2), // dummy read before fixing the high byte
				r(0x0700, 0x99),
			},
		},
		{
			name:  "INC zeropage",
			dump:  "0600: e6 10\n0010: 7f",
			steps: 1,
			want: []busCycle{
				r(0x0600, 0xe6), r(0x0601, 0x10),
				r(0x0010, 0x7f), w(0x0010, 0x7f), w(0x0010, 0x80),
			},
		},
		{
			name:  "JMP indirect page wrap",
			dump:  "0600: 6c ff 02\n02ff: 34\n0200: 12",
			steps: 1,
			want: []busCycle{
				r(0x0600, 0x6c), r(0x0601, 0xff), r(0x0602, 0x02),
				r(0x02FF, 0x34), r(0x0200, 0x12),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, bus := newTestCPU(t, 0x0600, tt.dump)
			for range tt.steps {
				cpu.Step()
			}
			if diff := cmp.Diff(tt.want, bus.cycles, cmp.AllowUnexported(busCycle{})); diff != "" {
				t.Errorf("bus cycles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSRRTS(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x0600, `
0600: 20 10 06 ea
0610: a9 42 60`)

	cpu.Step()
	if cpu.PC != 0x0610 || cpu.SP != 0xFB {
		t.Fatalf("after JSR: PC=$%04X SP=$%02X, want PC=$0610 SP=$FB", cpu.PC, cpu.SP)
	}
	cpu.Step()
	cpu.Step()
	if cpu.PC != 0x0603 || cpu.SP != 0xFD || cpu.A != 0x42 {
		t.Fatalf("after RTS: PC=$%04X SP=$%02X A=$%02X, want PC=$0603 SP=$FD A=$42", cpu.PC, cpu.SP, cpu.A)
	}
	if cpu.Cycles != 6+2+6 {
		t.Errorf("cycles = %d, want 14", cpu.Cycles)
	}
}

const interruptsProgram = `
# JMP $0600
0600: 4c 00 06
# RTI
0700: 40
fffa: 00 07
fffe: 00 07`

func TestNMI(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x0600, interruptsProgram)

	cpu.Step()
	cpu.SetNMILine(true)
	cpu.Step()

	if cpu.PC != 0x0700 {
		t.Fatalf("PC = $%04X, NMI handler not reached", cpu.PC)
	}
	if cpu.SP != 0xFA {
		t.Errorf("SP = $%02X, want $FA", cpu.SP)
	}
	// Pushed P has U set, B clear.
	if got := P(bus.mem[0x01FB]); got != Reserved|Interrupt {
		t.Errorf("pushed P = %s, want %s", got, P(Reserved|Interrupt))
	}
	if !cpu.P.hasFlag(Interrupt) {
		t.Errorf("I flag not set in NMI handler")
	}

	// RTI.
	cpu.Step()
	if cpu.PC != 0x0600 {
		t.Fatalf("PC = $%04X after RTI, want $0600", cpu.PC)
	}

	// NMI is edge triggered, holding the line doesn't trigger another one.
	for range 10 {
		cpu.Step()
		if cpu.PC == 0x0700 {
			t.Fatalf("NMI triggered again while the line is held")
		}
	}

	cpu.SetNMILine(false)
	cpu.Step()
	cpu.SetNMILine(true)
	cpu.Step()
	if cpu.PC != 0x0700 {
		t.Fatalf("PC = $%04X, second NMI not triggered", cpu.PC)
	}
}

func TestIRQ(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x0600, `
# CLI
0600: 58
# JMP $0601
0601: 4c 01 06
0700: 40
fffe: 00 07`)

	// Interrupts are disabled after reset.
	cpu.SetIRQLine(hwdefs.External, true)

	// CLI
	cpu.Step()
	if cpu.PC != 0x0601 {
		t.Fatalf("PC = $%04X, IRQ should be delayed after CLI", cpu.PC)
	}

	// JMP, then IRQ
	cpu.Step()
	if cpu.PC != 0x0700 {
		t.Fatalf("PC = $%04X, IRQ handler not reached", cpu.PC)
	}
	if got := P(bus.mem[0x01FB]); got != Reserved {
		t.Errorf("pushed P = %s, want %s", got, P(Reserved))
	}
	if ret := uint16(bus.mem[0x01FD])<<8 | uint16(bus.mem[0x01FC]); ret != 0x0601 {
		t.Errorf("pushed return address = $%04X, want $0601", ret)
	}

	// IRQ is level triggered, but the handler runs with I set.
	cpu.SetIRQLine(hwdefs.External, false)
	if cpu.IRQLines() != 0 {
		t.Errorf("IRQ lines = %s, want none", cpu.IRQLines())
	}
}

func TestIRQIgnoredWhenDisabled(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x0600, interruptsProgram)
	cpu.SetIRQLine(hwdefs.FrameCounter|hwdefs.DMC, true)

	for range 20 {
		cpu.Step()
		if cpu.PC == 0x0700 {
			t.Fatal("IRQ serviced while I flag is set")
		}
	}
}

func TestBRK(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x0600, `
0600: 00 ea
0700: 40
fffe: 00 07`)

	cpu.Step()
	if cpu.PC != 0x0700 {
		t.Fatalf("PC = $%04X, want $0700", cpu.PC)
	}
	if got := P(bus.mem[0x01FB]); got != Break|Reserved|Interrupt {
		t.Errorf("pushed P = %s, want %s", got, P(Break|Reserved|Interrupt))
	}
	if ret := uint16(bus.mem[0x01FD])<<8 | uint16(bus.mem[0x01FC]); ret != 0x0602 {
		t.Errorf("pushed return address = $%04X, want $0602", ret)
	}
	if cpu.Cycles != 7 {
		t.Errorf("cycles = %d, want 7", cpu.Cycles)
	}
}

func TestSoftReset(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x0600, `0600: a9 11 a2 22`)
	cpu.Step()
	cpu.Step()

	cpu.Reset(hwdefs.SoftReset)
	if cpu.A != 0x11 || cpu.X != 0x22 {
		t.Errorf("soft reset modified registers: A=$%02X X=$%02X", cpu.A, cpu.X)
	}
	if cpu.SP != 0xFA {
		t.Errorf("SP = $%02X, want $FA", cpu.SP)
	}
	if cpu.PC != 0x0600 || !cpu.P.hasFlag(Interrupt) {
		t.Errorf("PC = $%04X P = %s after soft reset", cpu.PC, cpu.P)
	}

	cpu.Reset(hwdefs.HardReset)
	if cpu.A != 0 || cpu.X != 0 || cpu.SP != 0xFD {
		t.Errorf("hard reset: A=$%02X X=$%02X SP=$%02X", cpu.A, cpu.X, cpu.SP)
	}
}

func TestUnofficialOpcodes(t *testing.T) {
	const prog = `
# JAM
0600: 02
# LAX $10
0601: a7 10
0603: ea
0010: 55`

	t.Run("emulate", func(t *testing.T) {
		cpu, _ := newTestCPU(t, 0x0600, prog)
		cpu.Step()
		if !cpu.Halted() {
			t.Fatal("CPU should be halted after JAM")
		}
		pc, cycles := cpu.PC, cpu.Cycles
		cpu.Step()
		if cpu.PC != pc || cpu.Cycles != cycles+1 {
			t.Errorf("halted CPU: PC=$%04X cycles=%d, want PC=$%04X cycles=%d", cpu.PC, cpu.Cycles, pc, cycles+1)
		}

		cpu.Reset(hwdefs.SoftReset)
		if cpu.Halted() {
			t.Fatal("CPU still halted after reset")
		}

		cpu.PC = 0x0601
		cpu.Step()
		if cpu.A != 0x55 || cpu.X != 0x55 {
			t.Errorf("LAX: A=$%02X X=$%02X, want $55", cpu.A, cpu.X)
		}
	})

	t.Run("nop", func(t *testing.T) {
		cpu, bus := newTestCPU(t, 0x0600, prog)
		cpu.SetUnofficialMode(AsNOP)

		cpu.Step()
		if cpu.Halted() || cpu.PC != 0x0601 || cpu.Cycles != 2 {
			t.Fatalf("JAM as NOP: halted=%t PC=$%04X cycles=%d", cpu.Halted(), cpu.PC, cpu.Cycles)
		}

		bus.cycles = bus.cycles[:0]
		cpu.Step()
		if cpu.A != 0 || cpu.X != 0 {
			t.Errorf("LAX as NOP modified registers: A=$%02X X=$%02X", cpu.A, cpu.X)
		}
		if cpu.PC != 0x0603 {
			t.Errorf("PC = $%04X, want $0603", cpu.PC)
		}
		// The operand read still happens.
		want := []busCycle{{addr: 0x0601, val: 0xa7}, {addr: 0x0602, val: 0x10}, {addr: 0x0010, val: 0x55}}
		if diff := cmp.Diff(want, bus.cycles, cmp.AllowUnexported(busCycle{})); diff != "" {
			t.Errorf("bus cycles mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestParseUnofficialMode(t *testing.T) {
	for _, mode := range []UnofficialMode{Emulate, AsNOP} {
		got, err := ParseUnofficialMode(mode.String())
		if err != nil || got != mode {
			t.Errorf("ParseUnofficialMode(%q) = %v, %v", mode.String(), got, err)
		}
	}
	if _, err := ParseUnofficialMode("ignore"); err == nil {
		t.Errorf("ParseUnofficialMode should fail")
	}
}

func TestOAMDMA(t *testing.T) {
	// LDA #$02
	// STA $4014
	// NOP
	cpu, bus := newTestCPU(t, 0x0600, `0600: a9 02 8d 14 40 ea`)
	for i := range 256 {
		bus.mem[0x0200+i] = uint8(i ^ 0x5a)
	}

	cpu.Step()
	cpu.Step()
	cpu.DMA.StartOAM(bus.mem[0x4014])

	bus.cycles = bus.cycles[:0]
	before := cpu.Cycles
	cpu.Step()

	var got []uint8
	for _, c := range bus.cycles {
		if c.write && c.addr == 0x2004 {
			got = append(got, c.val)
		}
	}
	want := make([]uint8, 256)
	for i := range want {
		want[i] = uint8(i ^ 0x5a)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OAM DMA writes mismatch (-want +got):\n%s", diff)
	}

	// 513 or 514 cycles for the DMA, plus the NOP.
	if n := cpu.Cycles - before - 2; n != 513 && n != 514 {
		t.Errorf("OAM DMA took %d cycles", n)
	}
	if cpu.PC != 0x0606 {
		t.Errorf("PC = $%04X, want $0606", cpu.PC)
	}
}

func TestDMCDMA(t *testing.T) {
	cpu, bus := newTestCPU(t, 0x0600, "0600: ea ea\nc000: 77")
	bus.dmcAddr = 0xC000

	cpu.DMA.StartDMC()
	cpu.Step()

	if diff := cmp.Diff([]uint8{0x77}, bus.dmcFetched); diff != "" {
		t.Errorf("DMC fetch mismatch (-want +got):\n%s", diff)
	}
	if n := cpu.Cycles - 2; n < 3 || n > 4 {
		t.Errorf("DMC DMA took %d cycles, want 3 or 4", n)
	}
}

func TestDisasm(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x0600, `
0600: a9 32
0602: 8d 00 20
0605: d0 fd
0607: 6c fe 06
060a: b1 10
060c: 0a
060d: ea`)

	tests := []struct {
		pc   uint16
		want string
	}{
		{0x0600, "LDA #$32"},
		{0x0602, "STA PpuControl_2000"},
		{0x0605, "BNE $0604"},
		{0x0607, "JMP ($06FE)"},
		{0x060a, "LDA ($10),Y"},
		{0x060c, "ASL A"},
		{0x060d, "NOP"},
	}
	for _, tt := range tests {
		if got := cpu.Disasm(tt.pc).String(); got != tt.want {
			t.Errorf("Disasm($%04X) = %q, want %q", tt.pc, got, tt.want)
		}
	}
}
