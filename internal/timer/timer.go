// Package timer provides an implementation of the Game Boy timer. A
// 16-bit counter runs at the CPU clock; the DIV register exposes its
// upper byte, and TIMA increments on a falling edge of the counter bit
// selected by TAC.
package timer

import (
	"github.com/RainbowCookie32/rusty-boi/internal/types"
)

// bits holds the system counter bit watched for each TAC clock select,
// giving TIMA rates of 4096, 262144, 65536 and 16384 Hz.
var bits = [4]uint16{512, 8, 32, 128}

// Controller is the timer state: the free running system counter and
// the TIMA, TMA and TAC registers. It performs no interrupt delivery
// of its own; Tick reports overflow and the caller raises the flag.
type Controller struct {
	internalDiv uint16
	currentBit  uint16
	lastBit     bool
	enabled     bool

	tima uint8
	tma  uint8
	tac  uint8
}

// NewController returns a timer with the counter at zero and TIMA
// disabled, the state the hardware powers up in.
func NewController() *Controller {
	return &Controller{
		currentBit: bits[0],
	}
}

// Tick advances the timer by the given number of T-cycles and reports
// whether TIMA overflowed. On overflow TIMA reloads from TMA
// immediately.
func (c *Controller) Tick(cycles uint32) bool {
	var overflowed bool
	for i := uint32(0); i < cycles; i++ {
		c.internalDiv++

		newBit := c.enabled && c.internalDiv&c.currentBit != 0
		if c.lastBit && !newBit {
			c.tima++
			if c.tima == 0 {
				c.tima = c.tma
				overflowed = true
			}
		}
		c.lastBit = newBit
	}

	return overflowed
}

// Read returns the value of the given timer register. DIV is the upper
// byte of the system counter; the unused bits of TAC read high.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.DIV:
		return uint8(c.internalDiv >> 8)
	case types.TIMA:
		return c.tima
	case types.TMA:
		return c.tma
	case types.TAC:
		return c.tac | 0xF8
	}
	return 0xFF
}

// Write writes to the given timer register. Writing any value to DIV
// resets the system counter to zero.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		c.internalDiv = 0
	case types.TIMA:
		c.tima = value
	case types.TMA:
		c.tma = value
	case types.TAC:
		c.tac = value & 0b111
		c.currentBit = bits[value&0b11]
		c.enabled = value&types.Bit2 == types.Bit2
	}
}
