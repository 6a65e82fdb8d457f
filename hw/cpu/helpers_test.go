package cpu

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"
	"testing"

	"nescore/emu/log"
)

var logNone log.ModLog

type busCycle struct {
	addr  uint16
	val   uint8
	write bool
}

// testBus is a flat 64KB memory recording all bus accesses.
type testBus struct {
	mem    [0x10000]uint8
	cycles []busCycle

	starts, ends int

	// called at the end of each cycle, to drive interrupt lines.
	onEndCycle func()

	dmcAddr    uint16
	dmcFetched []uint8
}

func (b *testBus) Read8(addr uint16) uint8 {
	val := b.mem[addr]
	b.cycles = append(b.cycles, busCycle{addr: addr, val: val})
	return val
}

func (b *testBus) Peek8(addr uint16) uint8 { return b.mem[addr] }

func (b *testBus) Write8(addr uint16, val uint8) {
	b.mem[addr] = val
	b.cycles = append(b.cycles, busCycle{addr: addr, val: val, write: true})
}

func (b *testBus) StartCycle(bool) { b.starts++ }

func (b *testBus) EndCycle(bool) {
	b.ends++
	if b.onEndCycle != nil {
		b.onEndCycle()
	}
}

func (b *testBus) DMCAddress() uint16 { return b.dmcAddr }

func (b *testBus) DMCFetched(val uint8) {
	b.dmcFetched = append(b.dmcFetched, val)
	b.dmcAddr++
}

func (b *testBus) load(tb testing.TB, dump string) {
	tb.Helper()
	for _, line := range loadDump(tb, dump) {
		copy(b.mem[line.off:], line.bytes)
	}
}

// newTestCPU returns a CPU reset on a test bus holding dump, with the reset
// vector pointing to pc.
func newTestCPU(tb testing.TB, pc uint16, dump string) (*CPU, *testBus) {
	tb.Helper()

	bus := &testBus{}
	bus.load(tb, dump)
	bus.mem[ResetVector] = uint8(pc)
	bus.mem[ResetVector+1] = uint8(pc >> 8)

	cpu := New(bus, logNone)
	cpu.Reset(false)
	bus.cycles = bus.cycles[:0]
	cpu.Cycles = 0
	return cpu, bus
}

// runUntil steps the CPU until PC reaches pc, or fails after maxSteps.
func runUntil(tb testing.TB, cpu *CPU, pc uint16, maxSteps int) {
	tb.Helper()
	for range maxSteps {
		if cpu.PC == pc {
			return
		}
		cpu.Step()
	}
	tb.Fatalf("PC didn't reach $%04X after %d steps (PC=$%04X)", pc, maxSteps, cpu.PC)
}

type dumpline struct {
	off   uint16
	bytes []byte
}

// loadDump parses memory dumps in the form:
//
//	0600: a2 40 e0 41
//	# comment
//	fffa: 00 07
func loadDump(tb testing.TB, dump string) []dumpline {
	tb.Helper()

	var lines []dumpline
	scan := bufio.NewScanner(strings.NewReader(dump))
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		off, octets, ok := strings.Cut(line, ":")
		if !ok {
			tb.Fatalf("malformed line: %s", line)
		}

		ioff, err := strconv.ParseUint(off, 16, 16)
		if err != nil {
			tb.Fatalf("malformed offset %s: %s", off, err)
		}
		buf, err := hex.DecodeString(strings.ReplaceAll(octets, " ", ""))
		if err != nil {
			tb.Fatalf("hex decode: %s", err)
		}
		lines = append(lines, dumpline{off: uint16(ioff), bytes: buf})
	}
	if scan.Err() != nil {
		tb.Fatalf("scan error: %s", scan.Err())
	}

	return lines
}

type tbwriter struct {
	testing.TB
}

func (t tbwriter) Write(p []byte) (int, error) {
	t.TB.Helper()
	t.TB.Log(string(bytes.TrimSpace(p)))
	return len(p), nil
}
