// Package joypad provides an implementation of the Game Boy
// joypad. The joypad is used to read the state of the buttons
// and the direction keys.
package joypad

import (
	"sync"

	"github.com/RainbowCookie32/rusty-boi/internal/types"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

// State represents the state of the joypad. Select either action or
// direction buttons by writing to the P1 register, and then read out
// bits 0-3 to get the state of the selected group.
//
//	Bit 7 - Not used
//	Bit 6 - Not used
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - P13 Input Down  or Start    (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select   (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A (0=Pressed) (Read Only)
//
// Internally a set bit means pressed; the hardware's active-low
// convention only appears in the value Read returns. The zero value is
// ready to use and reports every button released. Press and Release
// may be called from input goroutines while the emulated core reads;
// every access takes a consistent snapshot under the lock.
type State struct {
	mu sync.RWMutex

	// buttons holds the pressed set, one bit per Button in constant
	// order, so the lower 4 bits are the action buttons and the upper
	// 4 bits are the direction buttons.
	buttons uint8
}

// New returns a new joypad state with no buttons pressed.
func New() *State {
	return &State{}
}

// Press marks a button as pressed. Pressing a pressed button is a
// no-op.
func (s *State) Press(button Button) {
	s.mu.Lock()
	s.buttons |= types.Bit0 << button
	s.mu.Unlock()
}

// Release marks a button as released. Releasing a released button is a
// no-op.
func (s *State) Release(button Button) {
	s.mu.Lock()
	s.buttons &^= types.Bit0 << button
	s.mu.Unlock()
}

// Pressed reports whether the given button is currently pressed.
func (s *State) Pressed(button Button) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buttons&(types.Bit0<<button) != 0
}

// Buttons returns a snapshot of the pressed set, one bit per Button in
// constant order. A set bit means pressed.
func (s *State) Buttons() uint8 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buttons
}

// Read returns the value of the P1 register for the given select
// value, translating the pressed set into the hardware's active-low
// encoding. Bits 6 and 7 are unused and read high, the written select
// bits read back, and a cleared select bit merges its group into bits
// 0-3. With both groups deselected bits 0-3 read high.
func (s *State) Read(sel uint8) uint8 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var d uint8
	if sel&types.Bit4 == 0 {
		d |= s.buttons >> 4 & 0xF
	}
	if sel&types.Bit5 == 0 {
		d |= s.buttons & 0xF
	}

	return 0xC0 | sel&0x30 | d^0xF
}
