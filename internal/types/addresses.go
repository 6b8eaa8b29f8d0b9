package types

// HardwareAddress is the address of a memory-mapped hardware register.
// The hardware registers occupy 0xFF00 - 0xFF7F, plus IE at 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the joypad register. Writing selects which button group is
	// visible on the low nibble, reading returns the selected buttons.
	//
	//	Bit 7 - Not used (reads 1)
	//	Bit 6 - Not used (reads 1)
	//	Bit 5 - Select action buttons    (0=Select)
	//	Bit 4 - Select direction buttons (0=Select)
	//	Bit 3 - Down  or Start  (0=Pressed)
	//	Bit 2 - Up    or Select (0=Pressed)
	//	Bit 1 - Left  or B      (0=Pressed)
	//	Bit 0 - Right or A      (0=Pressed)
	P1 HardwareAddress = 0xFF00
	// SB is the serial transfer data register. With no link cable
	// attached it acts as plain storage.
	SB HardwareAddress = 0xFF01
	// SC is the serial transfer control register.
	SC HardwareAddress = 0xFF02
	// DIV is the divider register, incremented at 16384Hz. Any CPU
	// write resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the timer counter, incremented at the rate selected by
	// TAC. On overflow it reloads from TMA and requests a timer
	// interrupt.
	TIMA HardwareAddress = 0xFF05
	// TMA is the timer modulo, the value TIMA reloads from.
	TMA HardwareAddress = 0xFF06
	// TAC is the timer control register.
	//
	//	Bit 2   - Timer enable
	//	Bit 1-0 - Input clock select (4096, 262144, 65536, 16384 Hz)
	TAC HardwareAddress = 0xFF07
	// IF is the interrupt flag register. The upper 3 bits are unused
	// and read as 1.
	//
	//	Bit 4 - Joypad
	//	Bit 3 - Serial
	//	Bit 2 - Timer
	//	Bit 1 - LCD STAT
	//	Bit 0 - VBlank
	IF HardwareAddress = 0xFF0F
	// LCDC is the LCD control register.
	//
	//	Bit 7 - LCD enable
	//	Bit 6 - Window tile map area   (0=9800-9BFF, 1=9C00-9FFF)
	//	Bit 5 - Window enable
	//	Bit 4 - BG tile data area      (0=8800-97FF, 1=8000-8FFF)
	//	Bit 3 - BG tile map area       (0=9800-9BFF, 1=9C00-9FFF)
	//	Bit 2 - OBJ size               (0=8x8, 1=8x16)
	//	Bit 1 - OBJ enable
	//	Bit 0 - BG enable
	LCDC HardwareAddress = 0xFF40
	// STAT is the LCD status register. Bit 7 is unused and reads as 1.
	//
	//	Bit 6   - LYC interrupt select
	//	Bit 5   - Mode 2 interrupt select
	//	Bit 4   - Mode 1 interrupt select
	//	Bit 3   - Mode 0 interrupt select
	//	Bit 2   - LYC == LY coincidence
	//	Bit 1-0 - Current mode
	STAT HardwareAddress = 0xFF41
	// SCY is the background viewport Y scroll.
	SCY HardwareAddress = 0xFF42
	// SCX is the background viewport X scroll.
	SCX HardwareAddress = 0xFF43
	// LY is the current scanline, 0-153. Values 144-153 indicate
	// VBlank. Read only; a CPU write resets it to 0.
	LY HardwareAddress = 0xFF44
	// LYC is the scanline compare register; equality with LY sets the
	// coincidence bit in STAT.
	LYC HardwareAddress = 0xFF45
	// DMA starts an OAM DMA transfer. Writing value v copies the 160
	// bytes at v<<8 into OAM.
	DMA HardwareAddress = 0xFF46
	// BGP assigns shades to the four background colour indices, two
	// bits per index, index 0 in the low bits.
	BGP HardwareAddress = 0xFF47
	// OBP0 is the first object palette. Index 0 is transparent.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is the second object palette. Index 0 is transparent.
	OBP1 HardwareAddress = 0xFF49
	// WY is the window Y position.
	WY HardwareAddress = 0xFF4A
	// WX is the window X position, offset by 7.
	WX HardwareAddress = 0xFF4B
	// BDIS disables the boot ROM when written to. Once disabled the
	// cartridge is visible at 0x0000 - 0x00FF and the boot ROM cannot
	// be re-enabled.
	BDIS HardwareAddress = 0xFF50
	// IE is the interrupt enable register, with the same bit layout as
	// IF.
	IE HardwareAddress = 0xFFFF
)
