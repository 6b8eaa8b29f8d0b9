// Package web streams the emulator to the browser over a websocket.
// Frames are diffed against the previous one so unchanged frames are
// skipped and small changes go out as patches, the payload is brotli
// compressed, and a hash ring deduplicates payloads the client has
// already seen so repeats cost two bytes of index.
package web

import (
	"encoding/binary"
	"net/http"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"

	"github.com/RainbowCookie32/rusty-boi/internal/joypad"
	"github.com/RainbowCookie32/rusty-boi/internal/ppu"
	"github.com/RainbowCookie32/rusty-boi/pkg/display"
	"github.com/RainbowCookie32/rusty-boi/pkg/display/event"
)

const (
	cacheSize = 64
	// patch rather than resend when less than a fifth of the screen
	// changed
	patchThreshold = ppu.ScreenWidth * ppu.ScreenHeight / 5
)

func init() {
	d := &Driver{}
	display.Install("web", d, []display.DriverOption{
		{Name: "addr", Default: ":8090", Value: &d.addr, Description: "address to serve the player on", Type: "string"},
		{Name: "compression", Default: true, Value: &d.compression, Description: "compress frames with brotli", Type: "bool"},
		{Name: "patching", Default: true, Value: &d.patching, Description: "send changed pixels instead of full frames", Type: "bool"},
		{Name: "skipping", Default: true, Value: &d.skipping, Description: "skip unchanged frames", Type: "bool"},
	})
}

type Driver struct {
	emu display.Emulator
	hub *Hub

	addr        string
	compression bool
	patching    bool
	skipping    bool

	frameCache, patchCache *cache

	// currentFrame holds the last frame in RGBA layout, guarded by mu
	// so a connecting client can be synced while frames keep arriving.
	currentFrame []byte
	mu           sync.Mutex
}

func (d *Driver) Initialize(emu display.Emulator) {
	d.emu = emu
}

// Start serves the websocket endpoint and pumps frames to the
// connected clients until the core quits.
func (d *Driver) Start(fb <-chan []byte, events <-chan event.Event, pressed, released chan<- joypad.Button) error {
	d.hub = newHub()
	d.frameCache = newCache(cacheSize)
	d.patchCache = newCache(cacheSize)
	d.currentFrame = make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*4)

	go d.hub.run()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		c := d.hub.newClient(conn, r)
		go c.readPump(d, pressed, released)
		go c.writePump()

		d.syncClient(c)
	})

	srv := &http.Server{Addr: d.addr, Handler: mux}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	dirty := make([]byte, len(d.currentFrame))
	clean := make([]byte, len(d.currentFrame))
	skipped := 0

	for {
		select {
		case err := <-serveErr:
			return err
		case e := <-events:
			switch e.Type {
			case event.Title:
				d.hub.sendAll(message(Title, []byte(e.Data.(string))))
			case event.Quit:
				srv.Close()
				return nil
			}
		case f := <-fb:
			d.mu.Lock()
			dirtied := 0
			for i := 0; i < ppu.ScreenWidth*ppu.ScreenHeight; i++ {
				r, g, b := f[i*3], f[i*3+1], f[i*3+2]
				if d.currentFrame[i*4] != r || d.currentFrame[i*4+1] != g || d.currentFrame[i*4+2] != b {
					dirty[i*4], dirty[i*4+1], dirty[i*4+2], dirty[i*4+3] = r, g, b, 255
					dirtied++
				}
				d.currentFrame[i*4], d.currentFrame[i*4+1] = r, g
				d.currentFrame[i*4+2], d.currentFrame[i*4+3] = b, 255
			}

			if dirtied == 0 && d.skipping {
				skipped++
				d.mu.Unlock()
				continue
			}

			if skipped > 0 {
				buf := make([]byte, 4)
				binary.LittleEndian.PutUint32(buf, uint32(skipped))
				d.hub.sendAll(message(FrameSkip, buf))
				skipped = 0
			}

			if d.patching && dirtied < patchThreshold {
				d.send(FramePatch, PatchCache, d.patchCache, dirty)
			} else {
				d.send(Frame, FrameCache, d.frameCache, d.currentFrame)
			}

			copy(dirty, clean)
			d.mu.Unlock()
		}
	}
}

// send compresses the payload, consults the ring for a previous send
// of the same bytes, and broadcasts either just the ring index or the
// payload tagged with the index it was stored at.
func (d *Driver) send(full, cached Type, ring *cache, payload []byte) {
	out := payload
	if d.compression {
		var err error
		out, err = cbrotli.Encode(payload, cbrotli.WriterOptions{Quality: 7})
		if err != nil {
			return
		}
	} else {
		// the ring keeps a reference, so it needs its own copy
		out = append([]byte(nil), payload...)
	}

	hash := xxhash.Sum64(out)
	idxBuf := make([]byte, 2)

	ring.Lock()
	defer ring.Unlock()
	if idx := ring.index(hash); idx != -1 {
		binary.LittleEndian.PutUint16(idxBuf, uint16(idx))
		d.hub.sendAll(message(cached, idxBuf))
		return
	}

	binary.LittleEndian.PutUint16(idxBuf, uint16(ring.add(hash, out)))
	d.hub.sendAll(message(full, append(idxBuf, out...)))
}

// syncClient brings a newly connected client up to date: the current
// frame, then the contents of both rings so index-only messages keep
// meaning something.
func (d *Driver) syncClient(c *Client) {
	d.mu.Lock()
	frame, err := cbrotli.Encode(d.currentFrame, cbrotli.WriterOptions{Quality: 9})
	d.mu.Unlock()
	if err != nil {
		return
	}

	c.Send <- message(FrameSync, frame)
	c.Send <- message(PatchCacheSync, d.patchCache.dump())
	c.Send <- message(FrameCacheSync, d.frameCache.dump())
}

func (d *Driver) Stop() error {
	d.emu.SendCommand(display.Close)
	return nil
}

func message(t Type, data []byte) []byte {
	return append([]byte{t}, data...)
}
