//go:build !test

// Package fyne renders the emulator in a Fyne window.
package fyne

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/RainbowCookie32/rusty-boi/internal/joypad"
	"github.com/RainbowCookie32/rusty-boi/internal/ppu"
	"github.com/RainbowCookie32/rusty-boi/pkg/display"
	"github.com/RainbowCookie32/rusty-boi/pkg/display/event"
	"github.com/RainbowCookie32/rusty-boi/pkg/emulator"
	"github.com/RainbowCookie32/rusty-boi/pkg/utils"
)

var keyMap = map[fyne.KeyName]joypad.Button{
	fyne.KeyA:         joypad.ButtonA,
	fyne.KeyB:         joypad.ButtonB,
	fyne.KeyUp:        joypad.ButtonUp,
	fyne.KeyDown:      joypad.ButtonDown,
	fyne.KeyLeft:      joypad.ButtonLeft,
	fyne.KeyRight:     joypad.ButtonRight,
	fyne.KeyReturn:    joypad.ButtonStart,
	fyne.KeyBackspace: joypad.ButtonSelect,
}

func init() {
	d := &Driver{}
	display.Install("fyne", d, []display.DriverOption{
		{Name: "scale", Default: 4.0, Value: &d.scale, Description: "window scale factor", Type: "float"},
	})
}

// Driver displays the emulator in a Fyne window, drawing each frame
// into a pixel-scaled raster.
type Driver struct {
	emu display.Emulator

	app    fyne.App
	window fyne.Window
	img    *image.RGBA
	raster *canvas.Raster

	scale float64
}

func (d *Driver) Initialize(emu display.Emulator) {
	d.emu = emu
}

// Start opens the window and blocks until it is closed, either by the
// user or by a quit event from the core.
func (d *Driver) Start(fb <-chan []byte, events <-chan event.Event, pressed, released chan<- joypad.Button) error {
	if d.scale <= 0 {
		d.scale = 4
	}

	d.app = app.New()
	d.window = d.app.NewWindow("rusty-boi")
	d.window.SetMaster()
	d.window.SetPadded(false)
	d.window.Resize(fyne.NewSize(float32(ppu.ScreenWidth*d.scale), float32(ppu.ScreenHeight*d.scale)))

	d.img = image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	d.raster = canvas.NewRasterFromImage(d.img)
	d.raster.ScaleMode = canvas.ImageScalePixels
	d.raster.SetMinSize(fyne.NewSize(ppu.ScreenWidth, ppu.ScreenHeight))
	d.window.SetContent(d.raster)

	go func() {
		for f := range fb {
			for i := 0; i < ppu.ScreenWidth*ppu.ScreenHeight; i++ {
				d.img.Pix[i*4] = f[i*3]
				d.img.Pix[i*4+1] = f[i*3+1]
				d.img.Pix[i*4+2] = f[i*3+2]
				d.img.Pix[i*4+3] = 255
			}
			d.raster.Refresh()
		}
	}()

	go func() {
		for e := range events {
			switch e.Type {
			case event.Title:
				d.window.SetTitle(e.Data.(string))
			case event.Quit:
				d.app.Quit()
			}
		}
	}()

	if desk, ok := d.window.Canvas().(desktop.Canvas); ok {
		desk.SetOnKeyDown(func(e *fyne.KeyEvent) {
			if b, ok := keyMap[e.Name]; ok {
				pressed <- b
				return
			}
			d.handleKey(e.Name)
		})
		desk.SetOnKeyUp(func(e *fyne.KeyEvent) {
			if b, ok := keyMap[e.Name]; ok {
				released <- b
			}
		})
	}

	d.window.Show()
	d.app.Run()

	// window closed; make sure the core winds down too
	d.emu.SendCommand(display.Close)
	return nil
}

func (d *Driver) handleKey(name fyne.KeyName) {
	switch name {
	case fyne.KeyP:
		if d.emu.State() == emulator.Paused {
			d.emu.SendCommand(display.Resume)
		} else {
			d.emu.SendCommand(display.Pause)
		}
	case fyne.KeyR:
		d.emu.SendCommand(display.Reset)
	case fyne.KeyEscape:
		d.emu.SendCommand(display.Close)
	case fyne.KeyY:
		shot := d.snapshot()
		go func() {
			if err := utils.SaveImage(shot); err != nil {
				fmt.Println("screenshot:", err)
			}
		}()
	case fyne.KeyC:
		if err := utils.CopyImage(d.snapshot()); err != nil {
			fmt.Println("clipboard:", err)
		}
	}
}

// snapshot copies the current frame, so a save dialog left open
// doesn't capture a later one.
func (d *Driver) snapshot() *image.RGBA {
	img := image.NewRGBA(d.img.Rect)
	copy(img.Pix, d.img.Pix)
	return img
}

func (d *Driver) Stop() error {
	d.app.Quit()
	return nil
}
