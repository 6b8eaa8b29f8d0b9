package types

// Register holds one 8-bit CPU register. The SM83 core has eight of
// them: A, B, C, D, E, H, L and the flags register F.
type Register = uint8

// RegisterPair combines two 8-bit registers into one 16-bit value,
// high byte first. The pairs AF, BC, DE and HL are used as 16-bit
// operands and as memory pointers.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the combined 16-bit value of the pair.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 splits value into the pair's high and low registers.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers is the CPU register file. The pair pointers alias the
// 8-bit fields, so writing B through the BC pair and reading it as an
// 8-bit register observe the same storage.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}
