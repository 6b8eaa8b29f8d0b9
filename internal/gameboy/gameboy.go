// Package gameboy wires the emulated components into a running
// console: the cartridge and devices hang off the memory bus, the CPU
// steps against it, and a frame loop paces the whole thing at the
// hardware frame rate while serving the host's display driver.
package gameboy

import (
	"fmt"
	"sync"
	"time"

	"github.com/RainbowCookie32/rusty-boi/internal/cartridge"
	"github.com/RainbowCookie32/rusty-boi/internal/cpu"
	"github.com/RainbowCookie32/rusty-boi/internal/joypad"
	"github.com/RainbowCookie32/rusty-boi/internal/mmu"
	"github.com/RainbowCookie32/rusty-boi/internal/ppu"
	"github.com/RainbowCookie32/rusty-boi/internal/timer"
	"github.com/RainbowCookie32/rusty-boi/internal/types"
	"github.com/RainbowCookie32/rusty-boi/pkg/display/event"
	"github.com/RainbowCookie32/rusty-boi/pkg/emulator"
	"github.com/RainbowCookie32/rusty-boi/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = 4194304 // 4.194304 MHz
	// FrameRate is the number of frames the hardware completes per
	// second: the clock speed divided by the dots in a frame.
	FrameRate = float64(ClockSpeed) / float64(ppu.FrameDots) // ~59.73
)

// GameBoy holds the wired components of an emulated console. It is
// the main entry point for the emulator.
//
// The embedded mutex serializes host access (commands, state queries)
// against the frame loop; Start holds it for the duration of each
// frame.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU
	PPU *ppu.PPU

	Joypad *joypad.State
	Timer  *timer.Controller

	// Options holds the options the GameBoy was constructed with, so
	// a reset can rebuild the core the same way.
	Options []GameBoyOpt

	log.Logger
	sync.Mutex

	rom     []byte
	speed   float64
	debug   bool
	status  emulator.Status
	closing bool

	frameTimes       []time.Duration
	recordFrameTimes bool
}

// NewGameBoy returns a GameBoy running the given ROM image. An empty
// image yields a core with an empty cartridge, useful for hosts that
// load a ROM later through a reset. A rejected image is logged and
// leaves the core in the Errored state rather than failing
// construction.
func NewGameBoy(rom []byte, opts ...GameBoyOpt) *GameBoy {
	cart := cartridge.NewEmptyCartridge()
	var cartErr error
	if len(rom) > 0 {
		if c, err := cartridge.NewCartridge(rom); err == nil {
			cart = c
		} else {
			cartErr = err
		}
	}

	pad := joypad.New()
	timerCtl := timer.NewController()
	video := ppu.New()
	memBus := mmu.NewMMU(cart, video, pad, timerCtl)

	g := &GameBoy{
		CPU:    cpu.NewCPU(memBus),
		MMU:    memBus,
		PPU:    video,
		Joypad: pad,
		Timer:  timerCtl,

		Options: opts,
		Logger:  log.New(),

		rom:    rom,
		speed:  1,
		status: emulator.Running,
	}

	// without a boot ROM execution begins at the cartridge entry
	// point, with the registers and LCD as the boot ROM leaves them
	g.CPU.SkipBoot()
	memBus.Write(types.LCDC, 0x91)
	memBus.Write(types.BGP, 0xFC)

	for _, opt := range opts {
		opt(g)
	}
	memBus.Log = g.Logger

	if cartErr != nil {
		g.Logger.Errorf("cartridge rejected: %v", cartErr)
		g.status = emulator.Errored
	} else if len(rom) > 0 {
		g.Logger.Infof("loaded cartridge: %s", cart.Header().String())
		if !cart.ValidateChecksum() {
			g.Logger.Errorf("cartridge header checksum mismatch")
		}
	}

	return g
}

// Start runs the frame loop until the host sends a close command. One
// frame is produced per tick of the hardware frame rate (scaled by the
// configured speed): buttons received on pressed and released are
// applied, the core steps one frame, and the flattened RGB frame is
// sent to fb. Frames the consumer is too slow to take are dropped.
// Title and frame-time events are emitted once a second. Start blocks;
// run it in its own goroutine.
func (g *GameBoy) Start(fb chan<- []byte, events chan<- event.Event, pressed, released <-chan joypad.Button) {
	g.Lock()
	interval := time.Duration(float64(time.Second) / (FrameRate * g.speed))
	g.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	frames := 0
	frameTimeSum := time.Duration(0)
	lastReport := time.Now()

	for range ticker.C {
		g.Lock()
		if g.closing {
			g.Unlock()
			break
		}

		g.pumpInput(pressed, released)

		if g.status == emulator.Running {
			begin := time.Now()
			frame := g.Frame()
			took := time.Since(begin)

			g.recordFrameTime(took)
			frameTimeSum += took
			frames++

			select {
			case fb <- flattenFrame(frame):
			default: // drop the frame rather than stall the core
			}
		}

		if time.Since(lastReport) > time.Second {
			title := fmt.Sprintf("%s | FPS: %d | %s", g.MMU.Cart.Header().String(), frames, g.status)
			sendEvent(events, event.Event{Type: event.Title, Data: title})
			if frames > 0 {
				sendEvent(events, event.Event{Type: event.FrameTime, Data: frameTimeSum / time.Duration(frames)})
			}

			frames = 0
			frameTimeSum = 0
			lastReport = time.Now()
		}
		g.Unlock()
	}

	sendEvent(events, event.Event{Type: event.Quit})
}

// Frame steps the core until the PPU completes a frame or the dot
// budget of one frame is spent, whichever comes first. A CPU that
// halts or faults stops the core: the state becomes Halted or Errored
// and stepping ends. The most recently completed frame is returned
// either way.
func (g *GameBoy) Frame() [ppu.ScreenHeight][ppu.ScreenWidth][3]uint8 {
	for dots := uint32(0); dots < ppu.FrameDots; {
		cycles, err := g.CPU.Step()
		if err != nil {
			g.status = emulator.Errored
			g.Logger.Errorf("cpu fault: %v", err)
			if g.debug {
				if window, err := g.MMU.ReadBlock(g.CPU.PC, 8); err == nil {
					g.Logger.Debugf("bus at 0x%04X: % 02X", g.CPU.PC, window)
				}
			}
			break
		}

		if t := uint32(cycles) * 4; t > 0 {
			if g.Timer.Tick(t) {
				g.MMU.RequestInterrupt(types.Bit2)
			}
			dots += t
			if g.PPU.Tick(t) {
				g.MMU.RequestInterrupt(types.Bit0)
				return g.PPU.PreparedFrame
			}
		}

		if g.CPU.Halted() {
			if g.status == emulator.Running {
				g.status = emulator.Halted
				g.Logger.Infof("cpu halted at 0x%04X", g.CPU.PC)
			}
			break
		}
	}

	return g.PPU.PreparedFrame
}

// SendCommand applies a host command to the core and reports the
// outcome. Safe to call from any goroutine.
func (g *GameBoy) SendCommand(packet emulator.CommandPacket) emulator.ResponsePacket {
	g.Lock()
	defer g.Unlock()

	switch packet.Command {
	case emulator.CommandPause:
		if g.status == emulator.Running {
			g.status = emulator.Paused
		}
	case emulator.CommandResume:
		if g.status == emulator.Paused {
			g.status = emulator.Running
		}
	case emulator.CommandReset:
		g.reset()
	case emulator.CommandClose:
		g.closing = true
	default:
		return emulator.ResponsePacket{Command: packet.Command, Error: fmt.Errorf("unknown command: %d", packet.Command)}
	}

	return emulator.ResponsePacket{Command: packet.Command}
}

// State returns the state of the core. Safe to call from any
// goroutine.
func (g *GameBoy) State() emulator.Status {
	g.Lock()
	defer g.Unlock()
	return g.status
}

// Speed returns the configured speed multiplier.
func (g *GameBoy) Speed() float64 {
	g.Lock()
	defer g.Unlock()
	return g.speed
}

// reset rebuilds the core from the ROM image and options the GameBoy
// was constructed with. Must be called with the mutex held.
func (g *GameBoy) reset() {
	fresh := NewGameBoy(g.rom, g.Options...)
	g.CPU, g.MMU, g.PPU = fresh.CPU, fresh.MMU, fresh.PPU
	g.Joypad, g.Timer = fresh.Joypad, fresh.Timer
	g.MMU.Log = g.Logger
	g.status = fresh.status
	g.frameTimes = g.frameTimes[:0]
	g.Logger.Infof("core reset")
}

// pumpInput drains the pending button traffic into the joypad. A
// press raises the joypad interrupt flag so polling programs can spin
// on IF instead of P1.
func (g *GameBoy) pumpInput(pressed, released <-chan joypad.Button) {
	for {
		select {
		case b := <-pressed:
			g.Joypad.Press(b)
			g.MMU.RequestInterrupt(types.Bit4)
		case b := <-released:
			g.Joypad.Release(b)
		default:
			return
		}
	}
}

// flattenFrame turns the PPU's frame into the packed RGB byte stream
// the display drivers consume.
func flattenFrame(frame [ppu.ScreenHeight][ppu.ScreenWidth][3]uint8) []byte {
	buf := make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*3)
	i := 0
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			copy(buf[i:], frame[y][x][:])
			i += 3
		}
	}
	return buf
}

func sendEvent(events chan<- event.Event, e event.Event) {
	select {
	case events <- e:
	default:
	}
}
