package cpu

// Flag is a bit position in the F register. The low nibble of F is
// unused and always reads 0.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F |= 1 << flag
}

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= 1 << flag
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// isFlagsSet returns true if every given flag is set.
func (c *CPU) isFlagsSet(flags ...Flag) bool {
	for _, flag := range flags {
		if !c.isFlagSet(flag) {
			return false
		}
	}
	return true
}

// isFlagsNotSet returns true if none of the given flags is set.
func (c *CPU) isFlagsNotSet(flags ...Flag) bool {
	for _, flag := range flags {
		if c.isFlagSet(flag) {
			return false
		}
	}
	return true
}

// setFlags writes all four flags at once, keeping the low nibble of F
// clear.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	v := uint8(0)
	if zero {
		v |= 1 << FlagZero
	}
	if subtract {
		v |= 1 << FlagSubtract
	}
	if halfCarry {
		v |= 1 << FlagHalfCarry
	}
	if carry {
		v |= 1 << FlagCarry
	}
	c.F = v
}
