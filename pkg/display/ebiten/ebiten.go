// Package ebiten renders the emulator with Ebitengine. The game loop
// takes at most one core frame per tick; Ebitengine's own pacing runs
// close enough to the hardware frame rate that the frame channel
// absorbs the drift.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/RainbowCookie32/rusty-boi/internal/joypad"
	"github.com/RainbowCookie32/rusty-boi/internal/ppu"
	"github.com/RainbowCookie32/rusty-boi/pkg/display"
	"github.com/RainbowCookie32/rusty-boi/pkg/display/event"
	"github.com/RainbowCookie32/rusty-boi/pkg/emulator"
)

var keyMap = map[ebiten.Key]joypad.Button{
	ebiten.KeyA:          joypad.ButtonA,
	ebiten.KeyB:          joypad.ButtonB,
	ebiten.KeyArrowUp:    joypad.ButtonUp,
	ebiten.KeyArrowDown:  joypad.ButtonDown,
	ebiten.KeyArrowLeft:  joypad.ButtonLeft,
	ebiten.KeyArrowRight: joypad.ButtonRight,
	ebiten.KeyEnter:      joypad.ButtonStart,
	ebiten.KeyBackspace:  joypad.ButtonSelect,
}

func init() {
	d := &Driver{}
	display.Install("ebiten", d, []display.DriverOption{
		{Name: "scale", Default: 4.0, Value: &d.scale, Description: "window scale factor", Type: "float"},
	})
}

type Driver struct {
	emu   display.Emulator
	scale float64
}

func (d *Driver) Initialize(emu display.Emulator) {
	d.emu = emu
}

// Start opens the window and blocks in the Ebitengine game loop until
// the core quits or the window is closed.
func (d *Driver) Start(fb <-chan []byte, events <-chan event.Event, pressed, released chan<- joypad.Button) error {
	if d.scale <= 0 {
		d.scale = 4
	}

	ebiten.SetWindowTitle("rusty-boi")
	ebiten.SetWindowSize(int(ppu.ScreenWidth*d.scale), int(ppu.ScreenHeight*d.scale))

	g := &game{
		d:        d,
		fb:       fb,
		events:   events,
		pressed:  pressed,
		released: released,
		frame:    ebiten.NewImage(ppu.ScreenWidth, ppu.ScreenHeight),
		pix:      make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*4),
	}
	for i := 3; i < len(g.pix); i += 4 {
		g.pix[i] = 255
	}

	if err := ebiten.RunGame(g); err != nil {
		return err
	}

	// window closed; make sure the core winds down too
	d.emu.SendCommand(display.Close)
	return nil
}

func (d *Driver) Stop() error {
	d.emu.SendCommand(display.Close)
	return nil
}

type game struct {
	d *Driver

	fb       <-chan []byte
	events   <-chan event.Event
	pressed  chan<- joypad.Button
	released chan<- joypad.Button

	frame *ebiten.Image
	pix   []byte
}

func (g *game) Update() error {
	select {
	case f := <-g.fb:
		for i := 0; i < ppu.ScreenWidth*ppu.ScreenHeight; i++ {
			g.pix[i*4] = f[i*3]
			g.pix[i*4+1] = f[i*3+1]
			g.pix[i*4+2] = f[i*3+2]
		}
		g.frame.WritePixels(g.pix)
	default:
	}

	select {
	case e := <-g.events:
		switch e.Type {
		case event.Title:
			ebiten.SetWindowTitle(e.Data.(string))
		case event.Quit:
			return ebiten.Termination
		}
	default:
	}

	for k, b := range keyMap {
		if inpututil.IsKeyJustPressed(k) {
			g.pressed <- b
		}
		if inpututil.IsKeyJustReleased(k) {
			g.released <- b
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.d.emu.State() == emulator.Paused {
			g.d.emu.SendCommand(display.Resume)
		} else {
			g.d.emu.SendCommand(display.Pause)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.d.emu.SendCommand(display.Reset)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.d.emu.SendCommand(display.Close)
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frame, nil)
}

// Layout reports the native resolution; Ebitengine scales it to the
// window.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.ScreenWidth, ppu.ScreenHeight
}
