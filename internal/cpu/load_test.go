package cpu

import (
	"testing"
)

func loadImmediateTest(register string) func(*testing.T, Instruction) {
	return func(t *testing.T, instr Instruction) {
		reg := registerOf(cpu, register)

		*reg = 0x00
		instr.Execute(cpu, []byte{0x42})
		if *reg != 0x42 {
			t.Errorf("Expected %s to be 0x42, got 0x%02x", register, *reg)
		}
	}
}

func loadImmediate16Test(pair string) func(*testing.T, Instruction) {
	return func(t *testing.T, instr Instruction) {
		p := pairOf(cpu, pair)

		// operands are little endian
		instr.Execute(cpu, []byte{0x34, 0x12})
		if p.Uint16() != 0x1234 {
			t.Errorf("Expected %s to be 0x1234, got 0x%04x", pair, p.Uint16())
		}
		if *p.High != 0x12 || *p.Low != 0x34 {
			t.Errorf("Expected the halves to be 0x12 and 0x34, got 0x%02x and 0x%02x", *p.High, *p.Low)
		}
	}
}

func TestLoadRegisterToRegister(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		for j := uint8(0); j < 8; j++ {
			if i == 6 && j == 6 {
				continue
			}
			to, from := i, j
			opcode := 0x40 + i*8 + j

			testInstruction(t, InstructionSet[opcode].Name(), opcode, func(t *testing.T, instr Instruction) {
				switch {
				case from == 6:
					cpu.HL.SetUint16(0xC000)
					cpu.bus.Write(0xC000, 0x42)
					instr.Execute(cpu, nil)
					if got := cpu.readRegister(to); got != 0x42 {
						t.Errorf("Expected %s to be 0x42, got 0x%02x", registerNames[to], got)
					}
				case to == 6:
					// H and L are left alone; pointing HL at WRAM
					// already decides their value
					if from != 4 && from != 5 {
						cpu.writeRegister(from, 0x42)
					}
					cpu.HL.SetUint16(0xC000)
					expected := cpu.readRegister(from)
					instr.Execute(cpu, nil)
					if got := cpu.bus.Read(0xC000); got != expected {
						t.Errorf("Expected memory at 0xc000 to be 0x%02x, got 0x%02x", expected, got)
					}
				default:
					cpu.writeRegister(from, 0x42)
					instr.Execute(cpu, nil)
					if got := cpu.readRegister(to); got != 0x42 {
						t.Errorf("Expected %s to be 0x42, got 0x%02x", registerNames[to], got)
					}
				}
			})
		}
	}
}

func TestLoadImmediate(t *testing.T) {
	// 0x06 - LD B, d8
	testInstruction(t, "LD B, d8", 0x06, loadImmediateTest("B"))
	// 0x0E - LD C, d8
	testInstruction(t, "LD C, d8", 0x0E, loadImmediateTest("C"))
	// 0x16 - LD D, d8
	testInstruction(t, "LD D, d8", 0x16, loadImmediateTest("D"))
	// 0x1E - LD E, d8
	testInstruction(t, "LD E, d8", 0x1E, loadImmediateTest("E"))
	// 0x26 - LD H, d8
	testInstruction(t, "LD H, d8", 0x26, loadImmediateTest("H"))
	// 0x2E - LD L, d8
	testInstruction(t, "LD L, d8", 0x2E, loadImmediateTest("L"))
	// 0x3E - LD A, d8
	testInstruction(t, "LD A, d8", 0x3E, loadImmediateTest("A"))
	// 0x36 - LD (HL), d8
	testInstruction(t, "LD (HL), d8", 0x36, func(t *testing.T, instr Instruction) {
		cpu.HL.SetUint16(0xC000)
		instr.Execute(cpu, []byte{0x42})
		if got := cpu.bus.Read(0xC000); got != 0x42 {
			t.Errorf("Expected memory at 0xc000 to be 0x42, got 0x%02x", got)
		}
	})
}

func TestLoadImmediate16(t *testing.T) {
	// 0x01 - LD BC, d16
	testInstruction(t, "LD BC, d16", 0x01, loadImmediate16Test("BC"))
	// 0x11 - LD DE, d16
	testInstruction(t, "LD DE, d16", 0x11, loadImmediate16Test("DE"))
	// 0x21 - LD HL, d16
	testInstruction(t, "LD HL, d16", 0x21, loadImmediate16Test("HL"))
	// 0x31 - LD SP, d16
	testInstruction(t, "LD SP, d16", 0x31, func(t *testing.T, instr Instruction) {
		instr.Execute(cpu, []byte{0x34, 0x12})
		if cpu.SP != 0x1234 {
			t.Errorf("Expected SP to be 0x1234, got 0x%04x", cpu.SP)
		}
	})
}

func TestLoadIndirect(t *testing.T) {
	// 0x02 - LD (BC), A
	testInstruction(t, "LD (BC), A", 0x02, func(t *testing.T, instr Instruction) {
		cpu.A = 0x42
		cpu.BC.SetUint16(0xC000)
		instr.Execute(cpu, nil)
		if got := cpu.bus.Read(0xC000); got != 0x42 {
			t.Errorf("Expected memory at 0xc000 to be 0x42, got 0x%02x", got)
		}
	})
	// 0x0A - LD A, (BC)
	testInstruction(t, "LD A, (BC)", 0x0A, func(t *testing.T, instr Instruction) {
		cpu.BC.SetUint16(0xC000)
		cpu.bus.Write(0xC000, 0x42)
		instr.Execute(cpu, nil)
		if cpu.A != 0x42 {
			t.Errorf("Expected A to be 0x42, got 0x%02x", cpu.A)
		}
	})
	// 0x12 - LD (DE), A
	testInstruction(t, "LD (DE), A", 0x12, func(t *testing.T, instr Instruction) {
		cpu.A = 0x42
		cpu.DE.SetUint16(0xC000)
		instr.Execute(cpu, nil)
		if got := cpu.bus.Read(0xC000); got != 0x42 {
			t.Errorf("Expected memory at 0xc000 to be 0x42, got 0x%02x", got)
		}
	})
	// 0x1A - LD A, (DE)
	testInstruction(t, "LD A, (DE)", 0x1A, func(t *testing.T, instr Instruction) {
		cpu.DE.SetUint16(0xC000)
		cpu.bus.Write(0xC000, 0x42)
		instr.Execute(cpu, nil)
		if cpu.A != 0x42 {
			t.Errorf("Expected A to be 0x42, got 0x%02x", cpu.A)
		}
	})
}

func TestLoadIndexed(t *testing.T) {
	// 0x22 - LD (HL+), A
	testInstruction(t, "LD (HL+), A", 0x22, func(t *testing.T, instr Instruction) {
		cpu.A = 0x42
		cpu.HL.SetUint16(0xC000)
		instr.Execute(cpu, nil)
		if got := cpu.bus.Read(0xC000); got != 0x42 {
			t.Errorf("Expected memory at 0xc000 to be 0x42, got 0x%02x", got)
		}
		if cpu.HL.Uint16() != 0xC001 {
			t.Errorf("Expected HL to be 0xc001, got 0x%04x", cpu.HL.Uint16())
		}
	})
	// 0x32 - LD (HL-), A
	testInstruction(t, "LD (HL-), A", 0x32, func(t *testing.T, instr Instruction) {
		cpu.A = 0x42
		cpu.HL.SetUint16(0xC001)
		instr.Execute(cpu, nil)
		if got := cpu.bus.Read(0xC001); got != 0x42 {
			t.Errorf("Expected memory at 0xc001 to be 0x42, got 0x%02x", got)
		}
		if cpu.HL.Uint16() != 0xC000 {
			t.Errorf("Expected HL to be 0xc000, got 0x%04x", cpu.HL.Uint16())
		}
	})
	// 0x2A - LD A, (HL+) reads the byte under the pointer, not the one
	// after the move
	testInstruction(t, "LD A, (HL+)", 0x2A, func(t *testing.T, instr Instruction) {
		cpu.HL.SetUint16(0xC000)
		cpu.bus.Write(0xC000, 0x42)
		cpu.bus.Write(0xC001, 0x99)
		instr.Execute(cpu, nil)
		if cpu.A != 0x42 {
			t.Errorf("Expected A to be 0x42, got 0x%02x", cpu.A)
		}
		if cpu.HL.Uint16() != 0xC001 {
			t.Errorf("Expected HL to be 0xc001, got 0x%04x", cpu.HL.Uint16())
		}
	})
	// 0x3A - LD A, (HL-)
	testInstruction(t, "LD A, (HL-)", 0x3A, func(t *testing.T, instr Instruction) {
		cpu.HL.SetUint16(0xC001)
		cpu.bus.Write(0xC000, 0x99)
		cpu.bus.Write(0xC001, 0x42)
		instr.Execute(cpu, nil)
		if cpu.A != 0x42 {
			t.Errorf("Expected A to be 0x42, got 0x%02x", cpu.A)
		}
		if cpu.HL.Uint16() != 0xC000 {
			t.Errorf("Expected HL to be 0xc000, got 0x%04x", cpu.HL.Uint16())
		}
	})
}

func TestLoadAbsolute(t *testing.T) {
	// 0xEA - LD (a16), A
	testInstruction(t, "LD (a16), A", 0xEA, func(t *testing.T, instr Instruction) {
		cpu.A = 0x42
		instr.Execute(cpu, []byte{0x00, 0xC0})
		if got := cpu.bus.Read(0xC000); got != 0x42 {
			t.Errorf("Expected memory at 0xc000 to be 0x42, got 0x%02x", got)
		}
	})
	// 0xFA - LD A, (a16)
	testInstruction(t, "LD A, (a16)", 0xFA, func(t *testing.T, instr Instruction) {
		cpu.bus.Write(0xC000, 0x42)
		instr.Execute(cpu, []byte{0x00, 0xC0})
		if cpu.A != 0x42 {
			t.Errorf("Expected A to be 0x42, got 0x%02x", cpu.A)
		}
	})
	// 0x08 - LD (a16), SP stores the low byte first
	testInstruction(t, "LD (a16), SP", 0x08, func(t *testing.T, instr Instruction) {
		cpu.SP = 0x1234
		instr.Execute(cpu, []byte{0x00, 0xC0})
		if got := cpu.bus.Read(0xC000); got != 0x34 {
			t.Errorf("Expected memory at 0xc000 to be 0x34, got 0x%02x", got)
		}
		if got := cpu.bus.Read(0xC001); got != 0x12 {
			t.Errorf("Expected memory at 0xc001 to be 0x12, got 0x%02x", got)
		}
	})
}

func TestLoadHardware(t *testing.T) {
	// offsets of 0x80 and up land in HRAM, which reads back as written
	//
	// 0xE0 - LDH (a8), A
	testInstruction(t, "LDH (a8), A", 0xE0, func(t *testing.T, instr Instruction) {
		cpu.A = 0x42
		instr.Execute(cpu, []byte{0x80})
		if got := cpu.bus.Read(0xFF80); got != 0x42 {
			t.Errorf("Expected memory at 0xff80 to be 0x42, got 0x%02x", got)
		}
	})
	// 0xF0 - LDH A, (a8)
	testInstruction(t, "LDH A, (a8)", 0xF0, func(t *testing.T, instr Instruction) {
		cpu.bus.Write(0xFF80, 0x42)
		instr.Execute(cpu, []byte{0x80})
		if cpu.A != 0x42 {
			t.Errorf("Expected A to be 0x42, got 0x%02x", cpu.A)
		}
	})
	// 0xE2 - LD (C), A
	testInstruction(t, "LD (C), A", 0xE2, func(t *testing.T, instr Instruction) {
		cpu.A = 0x42
		cpu.C = 0x81
		instr.Execute(cpu, nil)
		if got := cpu.bus.Read(0xFF81); got != 0x42 {
			t.Errorf("Expected memory at 0xff81 to be 0x42, got 0x%02x", got)
		}
	})
	// 0xF2 - LD A, (C)
	testInstruction(t, "LD A, (C)", 0xF2, func(t *testing.T, instr Instruction) {
		cpu.C = 0x81
		cpu.bus.Write(0xFF81, 0x42)
		instr.Execute(cpu, nil)
		if cpu.A != 0x42 {
			t.Errorf("Expected A to be 0x42, got 0x%02x", cpu.A)
		}
	})
}

func TestLoadStackPointer(t *testing.T) {
	// 0xF9 - LD SP, HL
	testInstruction(t, "LD SP, HL", 0xF9, func(t *testing.T, instr Instruction) {
		cpu.HL.SetUint16(0xFFFE)
		instr.Execute(cpu, nil)
		if cpu.SP != 0xFFFE {
			t.Errorf("Expected SP to be 0xfffe, got 0x%04x", cpu.SP)
		}
	})
}
