package cpu

import (
	"testing"
)

func incrementRegisterTest(register string) func(*testing.T, Instruction) {
	return func(t *testing.T, instr Instruction) {
		reg := registerOf(cpu, register)

		*reg = 0x41
		cpu.F = 0
		instr.Execute(cpu, nil)
		if *reg != 0x42 {
			t.Errorf("Expected %s to be 0x42, got 0x%02x", register, *reg)
		}
		if !cpu.isFlagsNotSet(FlagZero, FlagSubtract, FlagHalfCarry) {
			t.Errorf("Expected Z, N and H to be clear, got 0x%02x", cpu.F)
		}

		t.Run("Zero Flag", func(t *testing.T) {
			*reg = 0xFF
			instr.Execute(cpu, nil)
			if *reg != 0x00 {
				t.Errorf("Expected %s to be 0x00, got 0x%02x", register, *reg)
			}
			if !cpu.isFlagsSet(FlagZero, FlagHalfCarry) {
				t.Errorf("Expected Z and H to be set, got 0x%02x", cpu.F)
			}
		})
		t.Run("Half Carry Flag", func(t *testing.T) {
			*reg = 0x0F
			instr.Execute(cpu, nil)
			if *reg != 0x10 {
				t.Errorf("Expected %s to be 0x10, got 0x%02x", register, *reg)
			}
			if !cpu.isFlagSet(FlagHalfCarry) {
				t.Errorf("Expected H to be set, got 0x%02x", cpu.F)
			}
			if cpu.isFlagSet(FlagZero) {
				t.Errorf("Expected Z to be clear, got 0x%02x", cpu.F)
			}
		})
		t.Run("Carry Preserved", func(t *testing.T) {
			*reg = 0x00
			cpu.setFlag(FlagCarry)
			instr.Execute(cpu, nil)
			if !cpu.isFlagSet(FlagCarry) {
				t.Errorf("Expected C to survive, got 0x%02x", cpu.F)
			}

			cpu.clearFlag(FlagCarry)
			instr.Execute(cpu, nil)
			if cpu.isFlagSet(FlagCarry) {
				t.Errorf("Expected C to stay clear, got 0x%02x", cpu.F)
			}
		})
	}
}

func decrementRegisterTest(register string) func(*testing.T, Instruction) {
	return func(t *testing.T, instr Instruction) {
		reg := registerOf(cpu, register)

		*reg = 0x42
		cpu.F = 0
		instr.Execute(cpu, nil)
		if *reg != 0x41 {
			t.Errorf("Expected %s to be 0x41, got 0x%02x", register, *reg)
		}
		if !cpu.isFlagSet(FlagSubtract) {
			t.Errorf("Expected N to be set, got 0x%02x", cpu.F)
		}
		if !cpu.isFlagsNotSet(FlagZero, FlagHalfCarry) {
			t.Errorf("Expected Z and H to be clear, got 0x%02x", cpu.F)
		}

		t.Run("Zero Flag", func(t *testing.T) {
			*reg = 0x01
			instr.Execute(cpu, nil)
			if *reg != 0x00 {
				t.Errorf("Expected %s to be 0x00, got 0x%02x", register, *reg)
			}
			if !cpu.isFlagsSet(FlagZero, FlagSubtract) {
				t.Errorf("Expected Z and N to be set, got 0x%02x", cpu.F)
			}
		})
		t.Run("Half Carry Flag", func(t *testing.T) {
			*reg = 0x10
			instr.Execute(cpu, nil)
			if *reg != 0x0F {
				t.Errorf("Expected %s to be 0x0f, got 0x%02x", register, *reg)
			}
			if !cpu.isFlagSet(FlagHalfCarry) {
				t.Errorf("Expected H to be set, got 0x%02x", cpu.F)
			}
		})
		t.Run("Wraparound", func(t *testing.T) {
			*reg = 0x00
			instr.Execute(cpu, nil)
			if *reg != 0xFF {
				t.Errorf("Expected %s to be 0xff, got 0x%02x", register, *reg)
			}
			if !cpu.isFlagSet(FlagHalfCarry) {
				t.Errorf("Expected H to be set, got 0x%02x", cpu.F)
			}
			if cpu.isFlagSet(FlagZero) {
				t.Errorf("Expected Z to be clear, got 0x%02x", cpu.F)
			}
		})
		t.Run("Carry Preserved", func(t *testing.T) {
			*reg = 0x42
			cpu.setFlag(FlagCarry)
			instr.Execute(cpu, nil)
			if !cpu.isFlagSet(FlagCarry) {
				t.Errorf("Expected C to survive, got 0x%02x", cpu.F)
			}

			cpu.clearFlag(FlagCarry)
			instr.Execute(cpu, nil)
			if cpu.isFlagSet(FlagCarry) {
				t.Errorf("Expected C to stay clear, got 0x%02x", cpu.F)
			}
		})
	}
}

func incrementRegisterPairTest(pair string) func(*testing.T, Instruction) {
	return func(t *testing.T, instr Instruction) {
		p := pairOf(cpu, pair)

		p.SetUint16(0x1234)
		flags := randomizeFlags(cpu)
		instr.Execute(cpu, nil)
		if p.Uint16() != 0x1235 {
			t.Errorf("Expected %s to be 0x1235, got 0x%04x", pair, p.Uint16())
		}
		if cpu.F != flags {
			t.Errorf("Expected flags to be untouched (0x%02x), got 0x%02x", flags, cpu.F)
		}

		t.Run("Wraparound", func(t *testing.T) {
			p.SetUint16(0xFFFF)
			instr.Execute(cpu, nil)
			if p.Uint16() != 0x0000 {
				t.Errorf("Expected %s to be 0x0000, got 0x%04x", pair, p.Uint16())
			}
		})
	}
}

func decrementRegisterPairTest(pair string) func(*testing.T, Instruction) {
	return func(t *testing.T, instr Instruction) {
		p := pairOf(cpu, pair)

		p.SetUint16(0x1235)
		flags := randomizeFlags(cpu)
		instr.Execute(cpu, nil)
		if p.Uint16() != 0x1234 {
			t.Errorf("Expected %s to be 0x1234, got 0x%04x", pair, p.Uint16())
		}
		if cpu.F != flags {
			t.Errorf("Expected flags to be untouched (0x%02x), got 0x%02x", flags, cpu.F)
		}

		t.Run("Wraparound", func(t *testing.T) {
			p.SetUint16(0x0000)
			instr.Execute(cpu, nil)
			if p.Uint16() != 0xFFFF {
				t.Errorf("Expected %s to be 0xffff, got 0x%04x", pair, p.Uint16())
			}
		})
	}
}

func TestIncrementRegister(t *testing.T) {
	// 0x04 - INC B
	testInstruction(t, "INC B", 0x04, incrementRegisterTest("B"))
	// 0x0C - INC C
	testInstruction(t, "INC C", 0x0C, incrementRegisterTest("C"))
	// 0x14 - INC D
	testInstruction(t, "INC D", 0x14, incrementRegisterTest("D"))
	// 0x1C - INC E
	testInstruction(t, "INC E", 0x1C, incrementRegisterTest("E"))
	// 0x24 - INC H
	testInstruction(t, "INC H", 0x24, incrementRegisterTest("H"))
	// 0x2C - INC L
	testInstruction(t, "INC L", 0x2C, incrementRegisterTest("L"))
	// 0x3C - INC A
	testInstruction(t, "INC A", 0x3C, incrementRegisterTest("A"))
}

func TestDecrementRegister(t *testing.T) {
	// 0x05 - DEC B
	testInstruction(t, "DEC B", 0x05, decrementRegisterTest("B"))
	// 0x0D - DEC C
	testInstruction(t, "DEC C", 0x0D, decrementRegisterTest("C"))
	// 0x15 - DEC D
	testInstruction(t, "DEC D", 0x15, decrementRegisterTest("D"))
	// 0x1D - DEC E
	testInstruction(t, "DEC E", 0x1D, decrementRegisterTest("E"))
	// 0x25 - DEC H
	testInstruction(t, "DEC H", 0x25, decrementRegisterTest("H"))
	// 0x2D - DEC L
	testInstruction(t, "DEC L", 0x2D, decrementRegisterTest("L"))
	// 0x3D - DEC A
	testInstruction(t, "DEC A", 0x3D, decrementRegisterTest("A"))
}

func TestIncrementRegisterPair(t *testing.T) {
	// 0x03 - INC BC
	testInstruction(t, "INC BC", 0x03, incrementRegisterPairTest("BC"))
	// 0x13 - INC DE
	testInstruction(t, "INC DE", 0x13, incrementRegisterPairTest("DE"))
	// 0x23 - INC HL
	testInstruction(t, "INC HL", 0x23, incrementRegisterPairTest("HL"))
	// 0x33 - INC SP
	testInstruction(t, "INC SP", 0x33, func(t *testing.T, instr Instruction) {
		cpu.SP = 0x1234
		flags := randomizeFlags(cpu)
		instr.Execute(cpu, nil)
		if cpu.SP != 0x1235 {
			t.Errorf("Expected SP to be 0x1235, got 0x%04x", cpu.SP)
		}
		if cpu.F != flags {
			t.Errorf("Expected flags to be untouched (0x%02x), got 0x%02x", flags, cpu.F)
		}

		cpu.SP = 0xFFFF
		instr.Execute(cpu, nil)
		if cpu.SP != 0x0000 {
			t.Errorf("Expected SP to be 0x0000, got 0x%04x", cpu.SP)
		}
	})
}

func TestDecrementRegisterPair(t *testing.T) {
	// 0x0B - DEC BC
	testInstruction(t, "DEC BC", 0x0B, decrementRegisterPairTest("BC"))
	// 0x1B - DEC DE
	testInstruction(t, "DEC DE", 0x1B, decrementRegisterPairTest("DE"))
	// 0x2B - DEC HL
	testInstruction(t, "DEC HL", 0x2B, decrementRegisterPairTest("HL"))
	// 0x3B - DEC SP
	testInstruction(t, "DEC SP", 0x3B, func(t *testing.T, instr Instruction) {
		cpu.SP = 0x1235
		flags := randomizeFlags(cpu)
		instr.Execute(cpu, nil)
		if cpu.SP != 0x1234 {
			t.Errorf("Expected SP to be 0x1234, got 0x%04x", cpu.SP)
		}
		if cpu.F != flags {
			t.Errorf("Expected flags to be untouched (0x%02x), got 0x%02x", flags, cpu.F)
		}

		cpu.SP = 0x0000
		instr.Execute(cpu, nil)
		if cpu.SP != 0xFFFF {
			t.Errorf("Expected SP to be 0xffff, got 0x%04x", cpu.SP)
		}
	})
}

func TestIncrementMemory(t *testing.T) {
	// 0x34 - INC (HL)
	testInstruction(t, "INC (HL)", 0x34, func(t *testing.T, instr Instruction) {
		cpu.HL.SetUint16(0xC000)
		cpu.bus.Write(0xC000, 0x41)
		cpu.F = 0
		instr.Execute(cpu, nil)
		if got := cpu.bus.Read(0xC000); got != 0x42 {
			t.Errorf("Expected memory at 0xc000 to be 0x42, got 0x%02x", got)
		}

		t.Run("Zero Flag", func(t *testing.T) {
			cpu.bus.Write(0xC000, 0xFF)
			instr.Execute(cpu, nil)
			if got := cpu.bus.Read(0xC000); got != 0x00 {
				t.Errorf("Expected memory at 0xc000 to be 0x00, got 0x%02x", got)
			}
			if !cpu.isFlagsSet(FlagZero, FlagHalfCarry) {
				t.Errorf("Expected Z and H to be set, got 0x%02x", cpu.F)
			}
		})
	})
}

func TestDecrementMemory(t *testing.T) {
	// 0x35 - DEC (HL)
	testInstruction(t, "DEC (HL)", 0x35, func(t *testing.T, instr Instruction) {
		cpu.HL.SetUint16(0xC000)
		cpu.bus.Write(0xC000, 0x42)
		cpu.F = 0
		instr.Execute(cpu, nil)
		if got := cpu.bus.Read(0xC000); got != 0x41 {
			t.Errorf("Expected memory at 0xc000 to be 0x41, got 0x%02x", got)
		}
		if !cpu.isFlagSet(FlagSubtract) {
			t.Errorf("Expected N to be set, got 0x%02x", cpu.F)
		}

		t.Run("Zero Flag", func(t *testing.T) {
			cpu.bus.Write(0xC000, 0x01)
			instr.Execute(cpu, nil)
			if got := cpu.bus.Read(0xC000); got != 0x00 {
				t.Errorf("Expected memory at 0xc000 to be 0x00, got 0x%02x", got)
			}
			if !cpu.isFlagsSet(FlagZero, FlagSubtract) {
				t.Errorf("Expected Z and N to be set, got 0x%02x", cpu.F)
			}
		})
	})
}

// TestDecrementLoop counts the iterations of the canonical delay loop:
// decrementing a register from 0xFF reaches zero after exactly 255
// steps, with the zero flag raised on the final step only.
func TestDecrementLoop(t *testing.T) {
	testInstruction(t, "DEC B loop", 0x05, func(t *testing.T, instr Instruction) {
		cpu.B = 0xFF
		steps := 0
		for {
			instr.Execute(cpu, nil)
			steps++
			if cpu.isFlagSet(FlagZero) {
				break
			}
			if steps > 0x200 {
				t.Fatal("Zero flag never raised")
			}
		}
		if steps != 255 {
			t.Errorf("Expected the loop to run 255 times, got %d", steps)
		}
		if cpu.B != 0 {
			t.Errorf("Expected B to be 0x00, got 0x%02x", cpu.B)
		}
	})
}

// TestIncrementLoop is the wrapping variant: incrementing from 0x00
// raises the zero flag after the full 256 step cycle.
func TestIncrementLoop(t *testing.T) {
	testInstruction(t, "INC B loop", 0x04, func(t *testing.T, instr Instruction) {
		cpu.B = 0x00
		steps := 0
		for {
			instr.Execute(cpu, nil)
			steps++
			if cpu.isFlagSet(FlagZero) {
				break
			}
			if steps > 0x200 {
				t.Fatal("Zero flag never raised")
			}
		}
		if steps != 256 {
			t.Errorf("Expected the loop to run 256 times, got %d", steps)
		}
		if cpu.B != 0 {
			t.Errorf("Expected B to be 0x00, got 0x%02x", cpu.B)
		}
	})
}
