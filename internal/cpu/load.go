package cpu

import (
	"fmt"
)

// registerNames maps an opcode register index to its mnemonic, in the
// encoding order used by the 0x40-0x7F load block.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// loadRegister8 loads an immediate value into the given Register.
//
//	LD n, d8
//	n = A, B, C, D, E, H, L
//	d8 = 8-bit immediate value
func (c *CPU) loadRegister8(reg *Register, value uint8) {
	*reg = value
}

// loadMemoryToRegister loads the value at the given memory address into
// the given Register.
//
//	LD n, (HL)
//	n = A, B, C, D, E, H, L
func (c *CPU) loadMemoryToRegister(reg *Register, address uint16) {
	*reg = c.bus.Read(address)
}

// loadRegisterToMemory loads the value of the given Register into the
// given memory address.
//
//	LD (HL), n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToMemory(reg Register, address uint16) {
	c.bus.Write(address, reg)
}

// loadRegisterToHardware loads the value of the given Register into the
// I/O page at 0xFF00 + address.
//
//	LDH (a8), A
//	LD (C), A
func (c *CPU) loadRegisterToHardware(reg Register, address uint8) {
	c.bus.Write(0xFF00+uint16(address), reg)
}

// loadHardwareToRegister loads the value of the I/O page at
// 0xFF00 + address into the given Register.
//
//	LDH A, (a8)
//	LD A, (C)
func (c *CPU) loadHardwareToRegister(reg *Register, address uint8) {
	*reg = c.bus.Read(0xFF00 + uint16(address))
}

// loadRegister16 loads an immediate value into the given Register pair.
//
//	LD nn, d16
//	nn = BC, DE, HL
//	d16 = 16-bit immediate value
func (c *CPU) loadRegister16(reg *RegisterPair, operands []byte) {
	*reg.Low = operands[0]
	*reg.High = operands[1]
}

func init() {
	DefineInstruction(0x01, "LD BC, d16", func(c *CPU, operands []byte) {
		c.loadRegister16(c.BC, operands)
	}, Length(3), Cycles(3))
	DefineInstruction(0x02, "LD (BC), A", func(c *CPU, _ []byte) {
		c.loadRegisterToMemory(c.A, c.BC.Uint16())
	}, Cycles(2))
	DefineInstruction(0x06, "LD B, d8", func(c *CPU, operands []byte) {
		c.loadRegister8(&c.B, operands[0])
	}, Length(2), Cycles(2))
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU, operands []byte) {
		address := uint16(operands[1])<<8 | uint16(operands[0])
		c.bus.Write(address, uint8(c.SP&0xFF))
		c.bus.Write(address+1, uint8(c.SP>>8))
	}, Length(3), Cycles(5))
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU, _ []byte) {
		c.loadMemoryToRegister(&c.A, c.BC.Uint16())
	}, Cycles(2))
	DefineInstruction(0x0E, "LD C, d8", func(c *CPU, operands []byte) {
		c.loadRegister8(&c.C, operands[0])
	}, Length(2), Cycles(2))
	DefineInstruction(0x11, "LD DE, d16", func(c *CPU, operands []byte) {
		c.loadRegister16(c.DE, operands)
	}, Length(3), Cycles(3))
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU, _ []byte) {
		c.loadRegisterToMemory(c.A, c.DE.Uint16())
	}, Cycles(2))
	DefineInstruction(0x16, "LD D, d8", func(c *CPU, operands []byte) {
		c.loadRegister8(&c.D, operands[0])
	}, Length(2), Cycles(2))
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU, _ []byte) {
		c.loadMemoryToRegister(&c.A, c.DE.Uint16())
	}, Cycles(2))
	DefineInstruction(0x1E, "LD E, d8", func(c *CPU, operands []byte) {
		c.loadRegister8(&c.E, operands[0])
	}, Length(2), Cycles(2))
	DefineInstruction(0x21, "LD HL, d16", func(c *CPU, operands []byte) {
		c.loadRegister16(c.HL, operands)
	}, Length(3), Cycles(3))
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU, _ []byte) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}, Cycles(2))
	DefineInstruction(0x26, "LD H, d8", func(c *CPU, operands []byte) {
		c.loadRegister8(&c.H, operands[0])
	}, Length(2), Cycles(2))
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU, _ []byte) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}, Cycles(2))
	DefineInstruction(0x2E, "LD L, d8", func(c *CPU, operands []byte) {
		c.loadRegister8(&c.L, operands[0])
	}, Length(2), Cycles(2))
	DefineInstruction(0x31, "LD SP, d16", func(c *CPU, operands []byte) {
		c.SP = uint16(operands[1])<<8 | uint16(operands[0])
	}, Length(3), Cycles(3))
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU, _ []byte) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}, Cycles(2))
	DefineInstruction(0x36, "LD (HL), d8", func(c *CPU, operands []byte) {
		c.bus.Write(c.HL.Uint16(), operands[0])
	}, Length(2), Cycles(3))
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU, _ []byte) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}, Cycles(2))
	DefineInstruction(0x3E, "LD A, d8", func(c *CPU, operands []byte) {
		c.loadRegister8(&c.A, operands[0])
	}, Length(2), Cycles(2))
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU, operands []byte) {
		c.loadRegisterToHardware(c.A, operands[0])
	}, Length(2), Cycles(3))
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU, _ []byte) {
		c.loadRegisterToHardware(c.A, c.C)
	}, Cycles(2))
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU, operands []byte) {
		c.loadRegisterToMemory(c.A, uint16(operands[1])<<8|uint16(operands[0]))
	}, Length(3), Cycles(4))
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU, operands []byte) {
		c.loadHardwareToRegister(&c.A, operands[0])
	}, Length(2), Cycles(3))
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU, _ []byte) {
		c.loadHardwareToRegister(&c.A, c.C)
	}, Cycles(2))
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU, _ []byte) {
		c.SP = c.HL.Uint16()
	}, Cycles(2))
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU, operands []byte) {
		c.loadMemoryToRegister(&c.A, uint16(operands[1])<<8|uint16(operands[0]))
	}, Length(3), Cycles(4))

	generateLoadRegisterToRegisterInstructions()
}

// generateLoadRegisterToRegisterInstructions fills in the 0x40-0x7F
// block of register to register loads.
//
// The instructions are laid out in the following format:
//
//	0x40 LD B, B
//	0x41 LD B, C
//	....
//	0x7F LD A, A
//
// 0x76 is skipped; that opcode is HALT.
func generateLoadRegisterToRegisterInstructions() {
	for i := uint8(0); i < 8; i++ {
		for j := uint8(0); j < 8; j++ {
			if i == 6 && j == 6 {
				continue
			}
			to, from := i, j

			opts := []InstructionOpt{}
			if to == 6 || from == 6 {
				opts = append(opts, Cycles(2))
			}
			DefineInstruction(
				0x40+(i*8)+j,
				fmt.Sprintf("LD %s, %s", registerNames[to], registerNames[from]),
				func(c *CPU, _ []byte) {
					c.writeRegister(to, c.readRegister(from))
				}, opts...)
		}
	}
}
