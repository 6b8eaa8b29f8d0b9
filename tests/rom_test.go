// Package tests runs hand-assembled programs through a complete core,
// exercising the CPU, bus and PPU together the way a cartridge does.
// Each program is written out as a listing and asserts its results
// through bus state, so a failure points at the component that broke
// the contract rather than at the harness.
package tests

import (
	"testing"

	"github.com/RainbowCookie32/rusty-boi/internal/gameboy"
	"github.com/RainbowCookie32/rusty-boi/pkg/emulator"
	"github.com/RainbowCookie32/rusty-boi/pkg/log"
)

// stepBudget bounds how many instructions a program may execute before
// the harness declares it stuck. The longest loop in the suite runs
// just over 500 instructions.
const stepBudget = 10000

// buildROM assembles a bootable 32 KiB cartridge image: the program at
// the entry point, a title and a valid header checksum. The rest of
// the image is zero, which executes as NOPs.
func buildROM(program ...byte) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], program)
	copy(rom[0x134:], "CONFORMANCE")

	var x uint8
	for _, b := range rom[0x134:0x14D] {
		x = x - b - 1
	}
	rom[0x14D] = x

	return rom
}

// newTestCore builds a core around the given ROM image and fails the
// test if the cartridge is rejected.
func newTestCore(t *testing.T, rom []byte) *gameboy.GameBoy {
	t.Helper()

	gb := gameboy.NewGameBoy(rom, gameboy.WithLogger(log.NewNullLogger()))
	if gb.State() != emulator.Running {
		t.Fatalf("Expected a running core, got %s", gb.State())
	}
	return gb
}

// runProgram steps the CPU until the program halts, returning the
// machine cycles it consumed. Programs that fault or outlive the step
// budget fail the test.
func runProgram(t *testing.T, gb *gameboy.GameBoy) int {
	t.Helper()

	cycles := 0
	for steps := 0; !gb.CPU.Halted(); steps++ {
		if steps >= stepBudget {
			t.Fatalf("Expected the program to halt within %d steps, PC at 0x%04X", stepBudget, gb.CPU.PC)
		}

		c, err := gb.CPU.Step()
		if err != nil {
			t.Fatalf("Expected the program to execute cleanly, got %v", err)
		}
		cycles += int(c)
	}
	return cycles
}

// runROM builds a ROM from the given listing and runs it to the first
// HALT or STOP.
func runROM(t *testing.T, program ...byte) (*gameboy.GameBoy, int) {
	t.Helper()

	gb := newTestCore(t, buildROM(program...))
	return gb, runProgram(t, gb)
}
