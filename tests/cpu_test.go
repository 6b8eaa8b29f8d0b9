package tests

import (
	"testing"

	"github.com/RainbowCookie32/rusty-boi/internal/gameboy"
)

// loopRegisters lists the registers addressable by the 8-bit
// arithmetic encodings, with the index each opcode family derives
// from. Index 6 is (HL) and has no register behind it.
var loopRegisters = []struct {
	name  string
	index uint8
	value func(gb *gameboy.GameBoy) uint8
}{
	{"B", 0, func(gb *gameboy.GameBoy) uint8 { return gb.CPU.B }},
	{"C", 1, func(gb *gameboy.GameBoy) uint8 { return gb.CPU.C }},
	{"D", 2, func(gb *gameboy.GameBoy) uint8 { return gb.CPU.D }},
	{"E", 3, func(gb *gameboy.GameBoy) uint8 { return gb.CPU.E }},
	{"H", 4, func(gb *gameboy.GameBoy) uint8 { return gb.CPU.H }},
	{"L", 5, func(gb *gameboy.GameBoy) uint8 { return gb.CPU.L }},
	{"A", 7, func(gb *gameboy.GameBoy) uint8 { return gb.CPU.A }},
}

// TestCountdownLoop counts each register down from 255 with DEC and a
// conditional relative jump, checking the loop runs exactly 255 times
// by the machine cycles it costs.
func TestCountdownLoop(t *testing.T) {
	for _, reg := range loopRegisters {
		t.Run(reg.name, func(t *testing.T) {
			gb, cycles := runROM(t,
				0x06+reg.index*8, 0xFF, // LD r, 0xFF
				0x05+reg.index*8, //       DEC r
				0x20, 0xFD, //             JR NZ, -3
				0x76, //                   HALT
			)

			if v := reg.value(gb); v != 0 {
				t.Errorf("Expected %s to be 0x00, got 0x%02X", reg.name, v)
			}
			// 255 decrements, 254 taken branches and one fall-through
			if want := 2 + 255*1 + 254*3 + 2 + 1; cycles != want {
				t.Errorf("Expected %d machine cycles, got %d", want, cycles)
			}
			// Z and N from the final DEC, carry untouched since boot
			if gb.CPU.F != 0xD0 {
				t.Errorf("Expected flags to be 0xD0, got 0x%02X", gb.CPU.F)
			}
		})
	}
}

// TestCountupLoop counts each register up from zero with INC until it
// wraps back to zero, 256 increments later.
func TestCountupLoop(t *testing.T) {
	for _, reg := range loopRegisters {
		t.Run(reg.name, func(t *testing.T) {
			gb, cycles := runROM(t,
				0x06+reg.index*8, 0x00, // LD r, 0x00
				0x04+reg.index*8, //       INC r
				0x20, 0xFD, //             JR NZ, -3
				0x76, //                   HALT
			)

			if v := reg.value(gb); v != 0 {
				t.Errorf("Expected %s to wrap back to 0x00, got 0x%02X", reg.name, v)
			}
			if want := 2 + 256*1 + 255*3 + 2 + 1; cycles != want {
				t.Errorf("Expected %d machine cycles, got %d", want, cycles)
			}
			// the wrap to zero sets Z and H, carry untouched since boot
			if gb.CPU.F != 0xB0 {
				t.Errorf("Expected flags to be 0xB0, got 0x%02X", gb.CPU.F)
			}
		})
	}
}

// chainOrder runs the chained loop suites through the registers in
// A, B, C, D, E, H, L order.
var chainOrder = []uint8{7, 0, 1, 2, 3, 4, 5}

// TestCountdownChain strings the countdown loops for all seven
// registers into one program. Each loop must leave its register at
// zero without disturbing the ones already counted down, and the total
// cycle cost pins every loop to exactly 255 iterations.
func TestCountdownChain(t *testing.T) {
	var program []byte
	for _, index := range chainOrder {
		program = append(program,
			0x06+index*8, 0xFF, // LD r, 0xFF
			0x05+index*8, //       DEC r
			0x20, 0xFD, //         JR NZ, -3
		)
	}
	program = append(program, 0x76) // HALT

	gb, cycles := runROM(t, program...)

	for _, reg := range loopRegisters {
		if v := reg.value(gb); v != 0 {
			t.Errorf("Expected %s to be 0x00, got 0x%02X", reg.name, v)
		}
	}
	if want := 7*(2+255*1+254*3+2) + 1; cycles != want {
		t.Errorf("Expected %d machine cycles, got %d", want, cycles)
	}
}

// TestCountupChain is the increment direction of the chained suite:
// seven loops of exactly 256 iterations each.
func TestCountupChain(t *testing.T) {
	var program []byte
	for _, index := range chainOrder {
		program = append(program,
			0x06+index*8, 0x00, // LD r, 0x00
			0x04+index*8, //       INC r
			0x20, 0xFD, //         JR NZ, -3
		)
	}
	program = append(program, 0x76) // HALT

	gb, cycles := runROM(t, program...)

	for _, reg := range loopRegisters {
		if v := reg.value(gb); v != 0 {
			t.Errorf("Expected %s to wrap back to 0x00, got 0x%02X", reg.name, v)
		}
	}
	if want := 7*(2+256*1+255*3+2) + 1; cycles != want {
		t.Errorf("Expected %d machine cycles, got %d", want, cycles)
	}
}
