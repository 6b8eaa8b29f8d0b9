package cpu

// increment the given value and set the flags accordingly.
//
//	INC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 0x01
	c.setFlags(incremented == 0, false, value&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement the given value and set the flags accordingly.
//
//	DEC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 0x01
	c.setFlags(decremented == 0, true, value&0xF == 0x0, c.isFlagSet(FlagCarry))
	return decremented
}

// incrementNN increments the given RegisterPair by 1.
//
//	INC nn
//	nn = 16-bit register
//
// Flags affected:
//
//	Z - Not affected.
//	N - Not affected.
//	H - Not affected.
//	C - Not affected.
func (c *CPU) incrementNN(register *RegisterPair) {
	register.SetUint16(register.Uint16() + 1)
}

// decrementNN decrements the given RegisterPair by 1.
//
//	DEC nn
//	nn = 16-bit register
//
// Flags affected:
//
//	Z - Not affected.
//	N - Not affected.
//	H - Not affected.
//	C - Not affected.
func (c *CPU) decrementNN(register *RegisterPair) {
	register.SetUint16(register.Uint16() - 1)
}

func init() {
	DefineInstruction(0x03, "INC BC", func(c *CPU, _ []byte) { c.incrementNN(c.BC) }, Cycles(2))
	DefineInstruction(0x04, "INC B", func(c *CPU, _ []byte) { c.B = c.increment(c.B) })
	DefineInstruction(0x05, "DEC B", func(c *CPU, _ []byte) { c.B = c.decrement(c.B) })
	DefineInstruction(0x0B, "DEC BC", func(c *CPU, _ []byte) { c.decrementNN(c.BC) }, Cycles(2))
	DefineInstruction(0x0C, "INC C", func(c *CPU, _ []byte) { c.C = c.increment(c.C) })
	DefineInstruction(0x0D, "DEC C", func(c *CPU, _ []byte) { c.C = c.decrement(c.C) })
	DefineInstruction(0x13, "INC DE", func(c *CPU, _ []byte) { c.incrementNN(c.DE) }, Cycles(2))
	DefineInstruction(0x14, "INC D", func(c *CPU, _ []byte) { c.D = c.increment(c.D) })
	DefineInstruction(0x15, "DEC D", func(c *CPU, _ []byte) { c.D = c.decrement(c.D) })
	DefineInstruction(0x1B, "DEC DE", func(c *CPU, _ []byte) { c.decrementNN(c.DE) }, Cycles(2))
	DefineInstruction(0x1C, "INC E", func(c *CPU, _ []byte) { c.E = c.increment(c.E) })
	DefineInstruction(0x1D, "DEC E", func(c *CPU, _ []byte) { c.E = c.decrement(c.E) })
	DefineInstruction(0x23, "INC HL", func(c *CPU, _ []byte) { c.incrementNN(c.HL) }, Cycles(2))
	DefineInstruction(0x24, "INC H", func(c *CPU, _ []byte) { c.H = c.increment(c.H) })
	DefineInstruction(0x25, "DEC H", func(c *CPU, _ []byte) { c.H = c.decrement(c.H) })
	DefineInstruction(0x2B, "DEC HL", func(c *CPU, _ []byte) { c.decrementNN(c.HL) }, Cycles(2))
	DefineInstruction(0x2C, "INC L", func(c *CPU, _ []byte) { c.L = c.increment(c.L) })
	DefineInstruction(0x2D, "DEC L", func(c *CPU, _ []byte) { c.L = c.decrement(c.L) })
	DefineInstruction(0x33, "INC SP", func(c *CPU, _ []byte) { c.SP++ }, Cycles(2))
	DefineInstruction(0x34, "INC (HL)", func(c *CPU, _ []byte) {
		c.bus.Write(c.HL.Uint16(), c.increment(c.bus.Read(c.HL.Uint16())))
	}, Cycles(3))
	DefineInstruction(0x35, "DEC (HL)", func(c *CPU, _ []byte) {
		c.bus.Write(c.HL.Uint16(), c.decrement(c.bus.Read(c.HL.Uint16())))
	}, Cycles(3))
	DefineInstruction(0x3B, "DEC SP", func(c *CPU, _ []byte) { c.SP-- }, Cycles(2))
	DefineInstruction(0x3C, "INC A", func(c *CPU, _ []byte) { c.A = c.increment(c.A) })
	DefineInstruction(0x3D, "DEC A", func(c *CPU, _ []byte) { c.A = c.decrement(c.A) })
}
