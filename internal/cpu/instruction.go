package cpu

import (
	"fmt"
)

// Instruction is a single entry of the instruction set: a mnemonic, an
// execution function, the total length in bytes (opcode included) and
// the base cost in machine cycles. Conditional jumps add their taken
// cost during execution.
type Instruction struct {
	name   string
	fn     func(c *CPU, operands []byte)
	length uint8
	cycles uint8
}

// Name returns the mnemonic of the instruction, e.g. "LD B, n".
func (i Instruction) Name() string {
	return i.name
}

// Length returns the length of the instruction in bytes, including the
// opcode byte itself.
func (i Instruction) Length() uint8 {
	return i.length
}

// Cycles returns the base cost of the instruction in machine cycles.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// Execute runs the instruction against the given CPU. The operands
// slice must hold Length()-1 bytes.
func (i Instruction) Execute(c *CPU, operands []byte) {
	i.fn(c, operands)
}

// InstructionOpt configures an Instruction beyond the 1-byte, 1-cycle
// default.
type InstructionOpt func(*Instruction)

// Length sets the length of the instruction in bytes, including the
// opcode byte.
func Length(length uint8) InstructionOpt {
	return func(i *Instruction) {
		i.length = length
	}
}

// Cycles sets the base cost of the instruction in machine cycles.
func Cycles(cycles uint8) InstructionOpt {
	return func(i *Instruction) {
		i.cycles = cycles
	}
}

// InstructionSet is the opcode dispatch table. Entries are populated by
// DefineInstruction from package init functions; opcodes left empty
// decode to a DecodeError at execution time.
var InstructionSet [256]Instruction

// DefineInstruction registers an instruction in the InstructionSet
// under the given opcode.
func DefineInstruction(opcode uint8, name string, fn func(c *CPU, operands []byte), opts ...InstructionOpt) {
	instruction := Instruction{
		name:   name,
		fn:     fn,
		length: 1,
		cycles: 1,
	}
	for _, opt := range opts {
		opt(&instruction)
	}

	InstructionSet[opcode] = instruction
}

// DecodeError is returned by Step when the fetched opcode has no entry
// in the InstructionSet. PC is left pointing at the faulting opcode so
// the caller can report or dump around it; the interpreter never
// panics on program bytes.
type DecodeError struct {
	Opcode uint8
	PC     uint16
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU, _ []byte) {})
	DefineInstruction(0x10, "STOP", func(c *CPU, _ []byte) { c.mode = ModeHalted }, Length(2))
	// With no interrupt delivery a halted CPU can never be woken, so
	// HALT terminates execution the same way STOP does.
	DefineInstruction(0x76, "HALT", func(c *CPU, _ []byte) { c.mode = ModeHalted })
	DefineInstruction(0xF3, "DI", func(c *CPU, _ []byte) { c.ime = false })
	DefineInstruction(0xFB, "EI", func(c *CPU, _ []byte) { c.ime = true })
}
