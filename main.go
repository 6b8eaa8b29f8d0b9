package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"

	"github.com/RainbowCookie32/rusty-boi/internal/gameboy"
	"github.com/RainbowCookie32/rusty-boi/internal/joypad"
	"github.com/RainbowCookie32/rusty-boi/pkg/display"
	_ "github.com/RainbowCookie32/rusty-boi/pkg/display/ebiten"
	"github.com/RainbowCookie32/rusty-boi/pkg/display/event"
	_ "github.com/RainbowCookie32/rusty-boi/pkg/display/fyne"
	_ "github.com/RainbowCookie32/rusty-boi/pkg/display/sdl"
	_ "github.com/RainbowCookie32/rusty-boi/pkg/display/web"
	"github.com/RainbowCookie32/rusty-boi/pkg/log"
	"github.com/RainbowCookie32/rusty-boi/pkg/utils"
)

var (
	_ display.Emulator = &gameboy.GameBoy{}
)

func main() {
	// pprof, for poking at the emulator while it runs
	go func() {
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			return
		}
	}()

	logger := log.New()

	if len(display.InstalledDrivers) == 0 {
		logger.Fatal("No display drivers installed. Please compile with at least one display driver")
	}

	romFile := flag.String("rom", "", "The ROM file to load")
	bootROM := flag.String("boot", "", "The boot ROM file to load")
	displayDriver := flag.String("driver", "auto", "The display driver to use. Can be auto, fyne, sdl, ebiten or web")
	speed := flag.Float64("speed", 1, "The speed to run the emulator at")
	debug := flag.Bool("debug", false, "Enable debug logging and fault diagnostics")
	plot := flag.String("plot", "", "Write a frame time plot to the given file on exit")

	display.RegisterFlags()
	flag.Parse()

	if *debug {
		logger = log.NewDebug()
	}

	// ask for a ROM when none was given
	if *romFile == "" {
		if name, err := utils.AskForFile("Open ROM", "."); err == nil {
			*romFile = name
		}
	}

	var rom []byte
	var err error
	if *romFile != "" {
		rom, err = utils.LoadFile(*romFile)
		if err != nil {
			logger.Fatalf("unable to load ROM: %v", err)
		}
	}

	opts := []gameboy.GameBoyOpt{
		gameboy.WithLogger(logger),
		gameboy.Speed(*speed),
	}
	if *bootROM != "" {
		boot, err := utils.LoadFile(*bootROM)
		if err != nil {
			logger.Fatalf("unable to load boot ROM: %v", err)
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}
	if *debug {
		opts = append(opts, gameboy.Debug())
	}
	if *plot != "" {
		opts = append(opts, gameboy.WithFrameTimes())
	}

	gb := gameboy.NewGameBoy(rom, opts...)

	driver := display.GetDriver(*displayDriver)
	if driver == nil {
		logger.Fatal("invalid display driver")
	}

	// attach gameboy to driver
	driver.Initialize(gb)

	// create framebuffer and control channels
	fb := make(chan []byte, 60)
	events := make(chan event.Event, 60)
	pressed := make(chan joypad.Button, 10)
	released := make(chan joypad.Button, 10)

	// start gameboy in a goroutine
	go gb.Start(fb, events, pressed, released)

	if err := driver.Start(fb, events, pressed, released); err != nil {
		logger.Fatal(err.Error())
	}

	if *plot != "" {
		if err := gb.WriteFrameTimePlot(*plot); err != nil {
			logger.Errorf("unable to write frame time plot: %v", err)
		}
	}
}
