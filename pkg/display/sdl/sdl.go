// Package sdl renders the emulator through SDL2, drawing each frame
// into a streaming texture that the renderer stretches to the window.
package sdl

import (
	"fmt"
	"image"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/RainbowCookie32/rusty-boi/internal/joypad"
	"github.com/RainbowCookie32/rusty-boi/internal/ppu"
	"github.com/RainbowCookie32/rusty-boi/pkg/display"
	"github.com/RainbowCookie32/rusty-boi/pkg/display/event"
	"github.com/RainbowCookie32/rusty-boi/pkg/emulator"
	"github.com/RainbowCookie32/rusty-boi/pkg/utils"
)

var keyMap = map[sdl.Keycode]joypad.Button{
	sdl.K_a:         joypad.ButtonA,
	sdl.K_b:         joypad.ButtonB,
	sdl.K_UP:        joypad.ButtonUp,
	sdl.K_DOWN:      joypad.ButtonDown,
	sdl.K_LEFT:      joypad.ButtonLeft,
	sdl.K_RIGHT:     joypad.ButtonRight,
	sdl.K_RETURN:    joypad.ButtonStart,
	sdl.K_BACKSPACE: joypad.ButtonSelect,
}

func init() {
	d := &Driver{}
	display.Install("sdl", d, []display.DriverOption{
		{Name: "scale", Default: 4.0, Value: &d.scale, Description: "window scale factor", Type: "float"},
	})
}

type Driver struct {
	emu display.Emulator

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	lastFrame []byte
	scale     float64
}

func (d *Driver) Initialize(emu display.Emulator) {
	d.emu = emu
}

// Start opens the window and runs the render and input loop on the
// calling goroutine until the core quits or the window is closed.
func (d *Driver) Start(fb <-chan []byte, events <-chan event.Event, pressed, released chan<- joypad.Button) error {
	// SDL wants its window, events and renderer on one OS thread
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl: init: %w", err)
	}
	defer sdl.Quit()

	scale := int32(d.scale)
	if scale < 1 {
		scale = 4
	}

	var err error
	d.window, err = sdl.CreateWindow("rusty-boi",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(ppu.ScreenWidth)*scale, int32(ppu.ScreenHeight)*scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("sdl: window: %w", err)
	}
	defer d.window.Destroy()

	d.renderer, err = sdl.CreateRenderer(d.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("sdl: renderer: %w", err)
	}
	defer d.renderer.Destroy()

	// RGB24 matches the packed frame layout, so frames upload as is
	d.texture, err = d.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB24),
		sdl.TEXTUREACCESS_STREAMING, ppu.ScreenWidth, ppu.ScreenHeight)
	if err != nil {
		return fmt.Errorf("sdl: texture: %w", err)
	}
	defer d.texture.Destroy()

	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				// let the core wind down; its quit event ends the loop
				d.emu.SendCommand(display.Close)
			case *sdl.KeyboardEvent:
				if ev.Repeat != 0 {
					continue
				}
				switch ev.Type {
				case sdl.KEYDOWN:
					if b, ok := keyMap[ev.Keysym.Sym]; ok {
						pressed <- b
						continue
					}
					d.handleKey(ev.Keysym.Sym)
				case sdl.KEYUP:
					if b, ok := keyMap[ev.Keysym.Sym]; ok {
						released <- b
					}
				}
			}
		}

		select {
		case f := <-fb:
			d.lastFrame = f
			if err := d.texture.Update(nil, f, ppu.ScreenWidth*3); err != nil {
				return fmt.Errorf("sdl: texture update: %w", err)
			}
			if err := d.renderer.Copy(d.texture, nil, nil); err != nil {
				return fmt.Errorf("sdl: copy: %w", err)
			}
			d.renderer.Present()
		case e := <-events:
			switch e.Type {
			case event.Title:
				d.window.SetTitle(e.Data.(string))
			case event.Quit:
				return nil
			}
		default:
			sdl.Delay(2)
		}
	}
}

func (d *Driver) handleKey(key sdl.Keycode) {
	switch key {
	case sdl.K_p:
		if d.emu.State() == emulator.Paused {
			d.emu.SendCommand(display.Resume)
		} else {
			d.emu.SendCommand(display.Pause)
		}
	case sdl.K_r:
		d.emu.SendCommand(display.Reset)
	case sdl.K_ESCAPE:
		d.emu.SendCommand(display.Close)
	case sdl.K_y:
		img := d.snapshot()
		if img == nil {
			return
		}
		scaled := utils.ScaleImage(img, int(d.scale))
		go func() {
			if err := utils.SaveImage(scaled); err != nil {
				fmt.Println("screenshot:", err)
			}
		}()
	case sdl.K_c:
		if img := d.snapshot(); img != nil {
			if err := utils.CopyImage(img); err != nil {
				fmt.Println("clipboard:", err)
			}
		}
	}
}

// snapshot converts the most recent frame into an image.
func (d *Driver) snapshot() *image.RGBA {
	if d.lastFrame == nil {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for i := 0; i < ppu.ScreenWidth*ppu.ScreenHeight; i++ {
		img.Pix[i*4] = d.lastFrame[i*3]
		img.Pix[i*4+1] = d.lastFrame[i*3+1]
		img.Pix[i*4+2] = d.lastFrame[i*3+2]
		img.Pix[i*4+3] = 255
	}
	return img
}

func (d *Driver) Stop() error {
	d.emu.SendCommand(display.Close)
	return nil
}
