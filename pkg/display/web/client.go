package web

import (
	"net"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/RainbowCookie32/rusty-boi/internal/joypad"
	"github.com/RainbowCookie32/rusty-boi/pkg/display"
)

// Client is one connected browser. Messages to it go through Send;
// the write pump owns the connection's write side.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	Send chan []byte

	ID         uint8
	RemoteAddr string

	mu         sync.Mutex
	avgLatency uint16
}

// readPump turns inbound messages into core commands and button
// traffic until the connection drops.
func (c *Client) readPump(d *Driver, pressed, released chan<- joypad.Button) {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		if len(msg) == 0 {
			continue
		}

		switch {
		case msg[0] == Closing:
			return
		case len(msg) == 1:
			// single byte toggles pause
			if msg[0] == 0 {
				d.emu.SendCommand(display.Pause)
				c.hub.sendAllBut(c, message(Paused, []byte{1}))
			} else {
				d.emu.SendCommand(display.Resume)
				c.hub.sendAllBut(c, message(Paused, []byte{0}))
			}
		default:
			// button, state pair
			if b := joypad.Button(msg[0]); b <= joypad.ButtonDown {
				if msg[1] == 0 {
					released <- b
				} else {
					pressed <- b
				}
			}
		}
	}
}

// writePump drains Send into the connection, folding each write's
// measured round trip into a running latency average.
func (c *Client) writePump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for msg := range c.Send {
		if err := c.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			return
		}

		if tcp, ok := c.conn.UnderlyingConn().(*net.TCPConn); ok {
			if info, err := tcpInfo(tcp); err == nil {
				c.mu.Lock()
				c.avgLatency = (c.avgLatency*9 + uint16(info.Rtt/1000)) / 10
				c.mu.Unlock()
			}
		}
	}

	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *Client) latency() uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.avgLatency
}
