package cpu

// jumpRelative jumps to the address relative to the current PC. The PC
// has already moved past the instruction when the handler runs, so the
// offset is taken from the following instruction.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

// jumpRelativeConditional jumps to the address relative to the current
// PC if the given condition is true. A taken branch costs one extra
// machine cycle.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelativeConditional(condition bool, offset uint8) {
	if condition {
		c.extraCycles++
		c.jumpRelative(offset)
	}
}

// jumpAbsolute jumps to the given address.
//
//	JP nn
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute(address uint16) {
	c.PC = address
}

// jumpAbsoluteConditional jumps to the given address if the given
// condition is true. A taken branch costs one extra machine cycle.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsoluteConditional(condition bool, address uint16) {
	if condition {
		c.extraCycles++
		c.jumpAbsolute(address)
	}
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU, operands []byte) {
		c.jumpRelative(operands[0])
	}, Length(2), Cycles(3))
	DefineInstruction(0x20, "JR NZ, r8", func(c *CPU, operands []byte) {
		c.jumpRelativeConditional(!c.isFlagSet(FlagZero), operands[0])
	}, Length(2), Cycles(2))
	DefineInstruction(0x28, "JR Z, r8", func(c *CPU, operands []byte) {
		c.jumpRelativeConditional(c.isFlagSet(FlagZero), operands[0])
	}, Length(2), Cycles(2))
	DefineInstruction(0x30, "JR NC, r8", func(c *CPU, operands []byte) {
		c.jumpRelativeConditional(!c.isFlagSet(FlagCarry), operands[0])
	}, Length(2), Cycles(2))
	DefineInstruction(0x38, "JR C, r8", func(c *CPU, operands []byte) {
		c.jumpRelativeConditional(c.isFlagSet(FlagCarry), operands[0])
	}, Length(2), Cycles(2))
	DefineInstruction(0xC2, "JP NZ, a16", func(c *CPU, operands []byte) {
		c.jumpAbsoluteConditional(!c.isFlagSet(FlagZero), uint16(operands[1])<<8|uint16(operands[0]))
	}, Length(3), Cycles(3))
	DefineInstruction(0xC3, "JP a16", func(c *CPU, operands []byte) {
		c.jumpAbsolute(uint16(operands[1])<<8 | uint16(operands[0]))
	}, Length(3), Cycles(4))
	DefineInstruction(0xCA, "JP Z, a16", func(c *CPU, operands []byte) {
		c.jumpAbsoluteConditional(c.isFlagSet(FlagZero), uint16(operands[1])<<8|uint16(operands[0]))
	}, Length(3), Cycles(3))
	DefineInstruction(0xD2, "JP NC, a16", func(c *CPU, operands []byte) {
		c.jumpAbsoluteConditional(!c.isFlagSet(FlagCarry), uint16(operands[1])<<8|uint16(operands[0]))
	}, Length(3), Cycles(3))
	DefineInstruction(0xDA, "JP C, a16", func(c *CPU, operands []byte) {
		c.jumpAbsoluteConditional(c.isFlagSet(FlagCarry), uint16(operands[1])<<8|uint16(operands[0]))
	}, Length(3), Cycles(3))
	DefineInstruction(0xE9, "JP HL", func(c *CPU, _ []byte) {
		c.jumpAbsolute(c.HL.Uint16())
	})
}
