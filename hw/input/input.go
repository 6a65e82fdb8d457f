// Package input implements the controller ports of the console, with
// standard NES controllers plugged in.
package input

import "strings"

// A PaddleButton identifies a button of a standard NES controller/paddle.
type PaddleButton byte

const (
	PadA PaddleButton = iota
	PadB
	PadSelect
	PadStart
	PadUp
	PadDown
	PadLeft
	PadRight

	PadButtonCount
)

var buttonNames = [PadButtonCount]string{
	"A", "B",
	"Select", "Start",
	"Up", "Down", "Left", "Right",
}

func (pd PaddleButton) String() string {
	if pd >= PadButtonCount {
		return "?"
	}
	return buttonNames[pd]
}

// Pad is the state of the 8 buttons of a controller, bit n is set when
// PaddleButton n is pressed. This is also the order in which the controller
// shift register reports them.
type Pad uint8

// Press returns p with btn pressed.
func (p Pad) Press(btn PaddleButton) Pad {
	return p | 1<<btn
}

// Release returns p with btn released.
func (p Pad) Release(btn PaddleButton) Pad {
	return p &^ (1 << btn)
}

func (p Pad) Pressed(btn PaddleButton) bool {
	return p&(1<<btn) != 0
}

func (p Pad) String() string {
	var names []string
	for btn := range PadButtonCount {
		if p.Pressed(btn) {
			names = append(names, btn.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

// NumPorts is the number of controller ports.
const NumPorts = 2

// Ports handles the serial I/O of the 2 controller ports. Writing $4016
// controls the strobe line of both controllers. While strobe is high, the
// controllers continuously reload their shift registers with the button
// states. Reading $4016 or $4017 returns the next bit of port 1 or 2.
type Ports struct {
	pads    [NumPorts]Pad
	plugged [NumPorts]bool

	prevStrobe, strobe bool     // to observe strobe falling edge.
	state              [2]uint8 // state shift registers.
}

// NewPorts returns controller ports with standard controllers plugged in
// both.
func NewPorts() *Ports {
	return &Ports{plugged: [NumPorts]bool{true, true}}
}

// Reset clears the shift registers and the strobe line. Button states are
// kept.
func (ip *Ports) Reset() {
	ip.strobe, ip.prevStrobe = false, false
	ip.state = [2]uint8{}
}

// SetPad sets the buttons of the controller plugged in port (0 or 1).
func (ip *Ports) SetPad(port int, pad Pad) {
	ip.pads[port] = pad
}

// Pad returns the buttons of the controller plugged in port.
func (ip *Ports) Pad(port int) Pad {
	return ip.pads[port]
}

// Plug connects or disconnects the controller of port.
func (ip *Ports) Plug(port int, plugged bool) {
	ip.plugged[port] = plugged
}

// capture state of all connected input devices.
func (ip *Ports) loadstate() {
	for i := range NumPorts {
		if ip.plugged[i] {
			ip.state[i] = uint8(ip.pads[i])
		} else {
			ip.state[i] = 0
		}
	}
}

// Write writes $4016. Only the strobe bit is used.
func (ip *Ports) Write(val uint8) {
	ip.prevStrobe = ip.strobe
	ip.strobe = val&1 == 1
	if ip.prevStrobe && !ip.strobe {
		ip.loadstate()
	}
}

// Read reads $4016 (port 0) or $4017 (port 1). Only bit 0 is driven, the
// upper bits are left to the caller (open bus).
func (ip *Ports) Read(port int) uint8 {
	if ip.strobe {
		ip.loadstate()
	}

	ret := ip.state[port] & 1
	ip.state[port] >>= 1

	// After 8 bits are read, all subsequent bits report 1 on a standard
	// controller.
	if ip.plugged[port] {
		ip.state[port] |= 0x80
	}
	return ret
}

// Peek returns what Read would return, without shifting.
func (ip *Ports) Peek(port int) uint8 {
	if ip.strobe && ip.plugged[port] {
		return uint8(ip.pads[port]) & 1
	}
	return ip.state[port] & 1
}
