// Package mmu provides the memory management unit for the Game Boy: a
// 64kB address space dispatched to the attached components. The MMU
// knows nothing about the components beyond the IOBus interface; every
// address resolves through a precomputed table, so a read or write
// costs one indirection regardless of region.
package mmu

import (
	"fmt"

	"github.com/RainbowCookie32/rusty-boi/internal/boot"
	"github.com/RainbowCookie32/rusty-boi/internal/cartridge"
	"github.com/RainbowCookie32/rusty-boi/internal/joypad"
	"github.com/RainbowCookie32/rusty-boi/internal/timer"
	"github.com/RainbowCookie32/rusty-boi/internal/types"
	"github.com/RainbowCookie32/rusty-boi/pkg/log"
)

// IOBus is the interface the MMU uses to communicate with the other
// components, and the interface the MMU itself presents to the CPU.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// address is one entry of the dispatch table.
type address struct {
	read  func(address uint16) uint8
	write func(address uint16, value uint8)
}

// OutOfBoundsError is returned by the block operations when the
// requested range runs past the end of the address space.
type OutOfBoundsError struct {
	// Start is the first address of the requested range.
	Start uint16
	// Length is the requested length in bytes.
	Length int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("mmu: block of %d bytes at 0x%04X exceeds the address space", e.Length, e.Start)
}

// MMU is the memory management unit. It owns the work and high RAM and
// the handful of registers no other component claims, and delegates
// the rest of the address space:
//
//	0x0000 - 0x7FFF   cartridge ROM (boot ROM shadows 0x0000 - 0x00FF)
//	0x8000 - 0x9FFF   video RAM
//	0xA000 - 0xBFFF   external cartridge RAM
//	0xC000 - 0xDFFF   work RAM
//	0xE000 - 0xFDFF   echo of work RAM
//	0xFE00 - 0xFE9F   sprite attribute table (OAM)
//	0xFEA0 - 0xFEFF   unusable, reads 0xFF
//	0xFF00 - 0xFF7F   I/O registers
//	0xFF80 - 0xFFFE   high RAM
//	0xFFFF            interrupt enable register
type MMU struct {
	raw [0x10000]*address

	Cart *cartridge.Cartridge

	bootROM     *boot.ROM
	bootROMDone bool

	// Video answers for VRAM, OAM and the LCD registers.
	Video IOBus

	Pad   *joypad.State
	Timer *timer.Controller

	wRAM [0x2000]uint8
	hRAM [0x7F]uint8

	// p1 holds the joypad group select bits last written to P1; the
	// button lines themselves come from Pad on every read.
	p1 uint8
	sb uint8
	sc uint8
	// ifr is the interrupt flag register. Flags are raised here by
	// the components, but nothing dispatches them; programs poll.
	ifr uint8
	ie  uint8
	dma uint8

	Log log.Logger
}

// NewMMU returns an MMU wiring the given components together. Pass the
// result to the CPU as its bus.
func NewMMU(cart *cartridge.Cartridge, video IOBus, pad *joypad.State, timers *timer.Controller) *MMU {
	m := &MMU{
		Cart:  cart,
		Video: video,
		Pad:   pad,
		Timer: timers,
		Log:   log.New(),
	}
	m.init()

	return m
}

func (m *MMU) init() {
	addresses := []address{
		{read: m.readCart, write: m.Cart.Write},
		{read: m.Video.Read, write: m.Video.Write},
		{read: m.Cart.Read, write: m.Cart.Write},
		{read: m.readWRAM, write: m.writeWRAM},
		{read: func(uint16) uint8 { return 0xFF }, write: func(uint16, uint8) {}},
		{read: m.readIO, write: m.writeIO},
		{read: m.readHRAM, write: m.writeHRAM},
	}

	// 0x0000 - 0x7FFF - cartridge ROM
	for i := 0x0000; i < 0x8000; i++ {
		m.raw[i] = &addresses[0]
	}
	// 0x8000 - 0x9FFF - VRAM
	for i := 0x8000; i < 0xA000; i++ {
		m.raw[i] = &addresses[1]
	}
	// 0xA000 - 0xBFFF - external RAM
	for i := 0xA000; i < 0xC000; i++ {
		m.raw[i] = &addresses[2]
	}
	// 0xC000 - 0xFDFF - work RAM and its echo
	for i := 0xC000; i < 0xFE00; i++ {
		m.raw[i] = &addresses[3]
	}
	// 0xFE00 - 0xFE9F - sprite attribute table (OAM)
	for i := 0xFE00; i < 0xFEA0; i++ {
		m.raw[i] = &addresses[1]
	}
	// 0xFEA0 - 0xFEFF - unusable
	for i := 0xFEA0; i < 0xFF00; i++ {
		m.raw[i] = &addresses[4]
	}
	// 0xFF00 - 0xFF7F - I/O registers
	for i := 0xFF00; i < 0xFF80; i++ {
		m.raw[i] = &addresses[5]
	}
	// 0xFF80 - 0xFFFE - high RAM
	for i := 0xFF80; i < 0xFFFF; i++ {
		m.raw[i] = &addresses[6]
	}
	// 0xFFFF - interrupt enable register
	m.raw[0xFFFF] = &addresses[5]
}

// SetBootROM maps a boot ROM over 0x0000-0x00FF until the program
// disables it by writing to the BDIS register.
func (m *MMU) SetBootROM(rom []byte) error {
	b, err := boot.LoadBootROM(rom)
	if err != nil {
		return err
	}
	m.bootROM = b
	m.bootROMDone = false
	m.Log.Infof("boot ROM loaded: %s", b.Model())

	return nil
}

// BootROMEnabled reports whether a boot ROM is currently mapped.
func (m *MMU) BootROMEnabled() bool {
	return m.bootROM != nil && !m.bootROMDone
}

// RequestInterrupt raises the given flag bit in the IF register.
// Nothing is dispatched; the flag sits there until the program clears
// it.
func (m *MMU) RequestInterrupt(flag uint8) {
	m.ifr |= flag
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].read(address)
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address].write(address, value)
}

// ReadBlock reads length bytes starting at the given address. A range
// that runs past 0xFFFF returns an OutOfBoundsError and no data.
func (m *MMU) ReadBlock(start uint16, length int) ([]uint8, error) {
	if length < 0 || int(start)+length > 0x10000 {
		return nil, OutOfBoundsError{Start: start, Length: length}
	}

	data := make([]uint8, length)
	for i := range data {
		data[i] = m.Read(start + uint16(i))
	}
	return data, nil
}

// WriteBlock writes the given bytes starting at the given address. A
// range that runs past 0xFFFF returns an OutOfBoundsError and writes
// nothing.
func (m *MMU) WriteBlock(start uint16, data []uint8) error {
	if int(start)+len(data) > 0x10000 {
		return OutOfBoundsError{Start: start, Length: len(data)}
	}

	for i, v := range data {
		m.Write(start+uint16(i), v)
	}
	return nil
}

// readCart reads from the cartridge ROM region, with the boot ROM
// shadowing the first 256 bytes while it is mapped.
func (m *MMU) readCart(address uint16) uint8 {
	if address < 0x100 && m.BootROMEnabled() {
		return m.bootROM.Read(address)
	}
	return m.Cart.Read(address)
}

func (m *MMU) readWRAM(address uint16) uint8 {
	// the echo region aliases work RAM
	return m.wRAM[(address-0xC000)&0x1FFF]
}

func (m *MMU) writeWRAM(address uint16, value uint8) {
	m.wRAM[(address-0xC000)&0x1FFF] = value
}

func (m *MMU) readHRAM(address uint16) uint8 {
	return m.hRAM[address-0xFF80]
}

func (m *MMU) writeHRAM(address uint16, value uint8) {
	m.hRAM[address-0xFF80] = value
}

func (m *MMU) readIO(address uint16) uint8 {
	switch address {
	case types.P1:
		return m.Pad.Read(m.p1)
	case types.SB:
		return m.sb
	case types.SC:
		return m.sc | 0x7E
	case types.DIV, types.TIMA, types.TMA, types.TAC:
		return m.Timer.Read(address)
	case types.IF:
		return m.ifr | 0xE0
	case types.DMA:
		return m.dma
	case types.IE:
		return m.ie
	}

	if address >= types.LCDC && address <= types.WX {
		return m.Video.Read(address)
	}
	return 0xFF
}

func (m *MMU) writeIO(address uint16, value uint8) {
	switch address {
	case types.P1:
		// only the group select bits are writable
		m.p1 = value & 0x30
		return
	case types.SB:
		m.sb = value
		return
	case types.SC:
		m.sc = value
		return
	case types.DIV, types.TIMA, types.TMA, types.TAC:
		m.Timer.Write(address, value)
		return
	case types.IF:
		m.ifr = value & 0x1F
		return
	case types.DMA:
		m.dma = value
		m.doDMA(value)
		return
	case types.BDIS:
		// any write unmaps the boot ROM, and nothing maps it back
		m.bootROMDone = true
		return
	case types.IE:
		m.ie = value
		return
	}

	if address >= types.LCDC && address <= types.WX {
		m.Video.Write(address, value)
	}
}

// doDMA copies 160 bytes from source<<8 into OAM. The copy is
// performed instantly rather than cycle by cycle.
func (m *MMU) doDMA(source uint8) {
	src := uint16(source) << 8
	for i := uint16(0); i < 0xA0; i++ {
		m.Video.Write(0xFE00+i, m.Read(src+i))
	}
}
