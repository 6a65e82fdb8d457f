package cpu

import (
	"fmt"
	"io"
)

// cpuState is the CPU state written in an execution trace line.
type cpuState struct {
	A, X, Y uint8
	P       P
	SP      uint8
	PC      uint16

	Clock    int64
	Scanline int
	Dot      int
}

type disasmer interface {
	Disasm(pc uint16) DisasmOp
}

type tracer struct {
	d   disasmer
	w   io.Writer
	pos PPUPosition

	buf []byte
}

func hexEncode(dst []byte, v byte) {
	const hextable = "0123456789ABCDEF"
	dst[0] = hextable[v>>4]
	dst[1] = hextable[v&0x0f]
}

func appendHex8(buf []byte, name byte, v uint8) []byte {
	var h [2]byte
	hexEncode(h[:], v)
	return append(buf, name, ':', h[0], h[1], ' ')
}

// write writes the trace line of the instruction about to be executed. The
// format is close to the one of Mesen traces:
//
//	E052  A9 32     LDA #$32                         A:00 X:01 Y:00 P:07 S:F4 PPU:0  ,27  8
func (t *tracer) write(state cpuState) {
	if t.pos != nil {
		state.Scanline, state.Dot = t.pos.Position()
	}

	const disasmWidth = 49

	buf := t.d.Disasm(state.PC).AppendTo(t.buf[:0])
	for len(buf) < disasmWidth {
		buf = append(buf, ' ')
	}

	buf = appendHex8(buf, 'A', state.A)
	buf = appendHex8(buf, 'X', state.X)
	buf = appendHex8(buf, 'Y', state.Y)
	buf = appendHex8(buf, 'P', uint8(state.P))
	buf = appendHex8(buf, 'S', state.SP)
	buf = fmt.Appendf(buf, "PPU:%-3d,%-3d %d\n", state.Scanline, state.Dot, state.Clock)

	t.w.Write(buf)
	t.buf = buf
}

// DisasmOp is a disassembled instruction.
type DisasmOp struct {
	Opcode string // mnemonic
	Oper   string // formatted operand
	Buf    []byte // instruction bytes
	PC     uint16
}

// AppendTo appends to buf the instruction address, bytes and text, padded to
// a fixed width.
func (d DisasmOp) AppendTo(buf []byte) []byte {
	const (
		bytesWidth = 16
		totalWidth = 48
	)

	start := len(buf)
	var h [2]byte
	hexEncode(h[:], byte(d.PC>>8))
	buf = append(buf, h[0], h[1])
	hexEncode(h[:], byte(d.PC))
	buf = append(buf, h[0], h[1], ' ', ' ')

	for _, b := range d.Buf {
		hexEncode(h[:], b)
		buf = append(buf, h[0], h[1], ' ')
	}
	for len(buf)-start < bytesWidth {
		buf = append(buf, ' ')
	}

	buf = append(buf, d.Opcode...)
	if d.Oper != "" {
		buf = append(buf, ' ')
		buf = append(buf, d.Oper...)
	}

	if len(buf)-start >= totalWidth {
		return append(buf, ' ')
	}
	for len(buf)-start < totalWidth {
		buf = append(buf, ' ')
	}
	return buf
}

func (d DisasmOp) String() string {
	if d.Oper == "" {
		return d.Opcode
	}
	return d.Opcode + " " + d.Oper
}
