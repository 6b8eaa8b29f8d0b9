// Package cpu implements the SM83 interpreter at the centre of the
// emulator: an 8-bit register file with 16-bit pairs, the flag
// register, and a fetch-decode-execute loop over a fixed instruction
// table. Execution is driven one instruction at a time through Step;
// the CPU owns no memory of its own and performs every access through
// the bus it was constructed with.
package cpu

import (
	"github.com/RainbowCookie32/rusty-boi/internal/mmu"
	"github.com/RainbowCookie32/rusty-boi/internal/types"
)

// ClockSpeed is the clock of the SM83 core in T-cycles per second. One
// machine cycle is four T-cycles.
const ClockSpeed = 4194304

// Aliased register types, so instruction code can speak of registers
// without qualifying the types package.
type (
	Register     = types.Register
	RegisterPair = types.RegisterPair
	Registers    = types.Registers
)

// Mode describes what the CPU will do on its next Step.
type Mode = uint8

const (
	// ModeNormal fetches, decodes and executes one instruction per
	// Step.
	ModeNormal Mode = iota
	// ModeHalted is the terminal mode entered by STOP and HALT; Step
	// becomes a no-op and execution never resumes.
	ModeHalted
)

// CPU is the SM83 interpreter state: the register file, program
// counter, stack pointer and execution mode. All memory traffic goes
// through the attached bus.
type CPU struct {
	// PC points at the next instruction byte to fetch.
	PC uint16
	// SP points at the current top of the stack.
	SP uint16
	Registers

	bus mmu.IOBus

	mode Mode
	// ime is the interrupt master enable flag, maintained by DI and
	// EI. Interrupt delivery itself is not modelled, but programs
	// still toggle the flag.
	ime bool

	// extraCycles accumulates the taken-branch cost of conditional
	// jumps within the current Step.
	extraCycles uint8
}

// NewCPU returns a CPU attached to the given bus, with the register
// file zeroed and PC at 0x0000 for boot ROM execution. Call SkipBoot
// when no boot ROM is mapped.
func NewCPU(bus mmu.IOBus) *CPU {
	c := &CPU{
		bus: bus,
	}
	c.AF = &RegisterPair{High: &c.A, Low: &c.F}
	c.BC = &RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L}

	return c
}

// SkipBoot loads the register values the DMG boot ROM leaves behind
// and points PC at the cartridge entry point.
func (c *CPU) SkipBoot() {
	c.A, c.F = 0x01, 0xB0
	c.B, c.C = 0x00, 0x13
	c.D, c.E = 0x00, 0xD8
	c.H, c.L = 0x01, 0x4D
	c.SP = 0xFFFE
	c.PC = 0x0100
}

// Mode returns the current execution mode.
func (c *CPU) Mode() Mode {
	return c.mode
}

// Halted returns true once the CPU has executed STOP or HALT. The
// halted mode is terminal: the host observes it by polling, there is
// no callback.
func (c *CPU) Halted() bool {
	return c.mode == ModeHalted
}

// IME returns the state of the interrupt master enable flag.
func (c *CPU) IME() bool {
	return c.ime
}

// Step executes one instruction and returns its cost in machine
// cycles. A halted CPU returns 0 cycles and does nothing. An opcode
// with no InstructionSet entry returns a DecodeError with PC still on
// the faulting byte; the CPU itself stays consistent, so a host may
// inspect state after the fault.
func (c *CPU) Step() (uint8, error) {
	if c.mode == ModeHalted {
		return 0, nil
	}

	opcode := c.bus.Read(c.PC)
	instr := InstructionSet[opcode]
	if instr.fn == nil {
		return 0, DecodeError{Opcode: opcode, PC: c.PC}
	}

	// operands are the bytes following the opcode; the PC moves past
	// the whole instruction before it executes, so relative jumps are
	// based on the address of the next instruction.
	var operands [2]byte
	for i := uint8(1); i < instr.length; i++ {
		operands[i-1] = c.bus.Read(c.PC + uint16(i))
	}
	c.PC += uint16(instr.length)

	c.extraCycles = 0
	instr.fn(c, operands[:instr.length-1])

	return instr.cycles + c.extraCycles, nil
}

// readRegister reads the 8-bit register selected by an opcode index in
// encoding order B, C, D, E, H, L, (HL), A. Index 6 reads memory at
// the address in HL.
func (c *CPU) readRegister(index uint8) uint8 {
	switch index {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.bus.Read(c.HL.Uint16())
	default:
		return c.A
	}
}

// writeRegister writes the 8-bit register selected by an opcode index,
// with the same encoding order as readRegister.
func (c *CPU) writeRegister(index uint8, value uint8) {
	switch index {
	case 0:
		c.B = value
	case 1:
		c.C = value
	case 2:
		c.D = value
	case 3:
		c.E = value
	case 4:
		c.H = value
	case 5:
		c.L = value
	case 6:
		c.bus.Write(c.HL.Uint16(), value)
	default:
		c.A = value
	}
}
