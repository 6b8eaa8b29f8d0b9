package gameboy

import (
	"github.com/RainbowCookie32/rusty-boi/internal/types"
	"github.com/RainbowCookie32/rusty-boi/pkg/log"
)

// GameBoyOpt configures a GameBoy during construction.
type GameBoyOpt func(gb *GameBoy)

// WithLogger replaces the default logger.
func WithLogger(l log.Logger) GameBoyOpt {
	return func(gb *GameBoy) {
		gb.Logger = l
	}
}

// WithBootROM runs the given boot ROM image before the cartridge:
// the registers and LCD are cleared so execution starts from address
// 0 the way the hardware powers up, instead of from the cartridge
// entry point.
func WithBootROM(rom []byte) GameBoyOpt {
	return func(gb *GameBoy) {
		if err := gb.MMU.SetBootROM(rom); err != nil {
			gb.Logger.Errorf("boot ROM rejected: %v", err)
			return
		}

		c := gb.CPU
		c.A, c.F, c.B, c.C = 0, 0, 0, 0
		c.D, c.E, c.H, c.L = 0, 0, 0, 0
		c.PC, c.SP = 0, 0

		// the boot ROM brings these up itself
		gb.MMU.Write(types.LCDC, 0x00)
		gb.MMU.Write(types.BGP, 0x00)
	}
}

// Speed sets the speed multiplier of the frame loop. 1 is hardware
// speed. Values <= 0 are ignored.
func Speed(speed float64) GameBoyOpt {
	return func(gb *GameBoy) {
		if speed > 0 {
			gb.speed = speed
		}
	}
}

// Debug enables debug diagnostics, such as a bus dump around PC when
// the CPU faults. Pair it with WithLogger(log.NewDebug()) to see the
// output.
func Debug() GameBoyOpt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

// WithFrameTimes records the duration of each emulated frame, for
// WriteFrameTimePlot.
func WithFrameTimes() GameBoyOpt {
	return func(gb *GameBoy) {
		gb.recordFrameTimes = true
	}
}
