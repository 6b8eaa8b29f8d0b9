package web

import (
	"encoding/binary"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sys/unix"
)

// Hub tracks the connected clients. All access to the client set
// happens on the run goroutine; other goroutines reach it through the
// register, unregister and broadcast channels.
type Hub struct {
	clients map[*Client]bool

	broadcast            chan broadcastMsg
	register, unregister chan *Client

	currentID uint8
	mu        sync.Mutex
}

type broadcastMsg struct {
	data   []byte
	except *Client
}

func newHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan broadcastMsg, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) run() {
	latency := time.NewTicker(time.Second)
	defer latency.Stop()

	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.Send)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				if c == msg.except {
					continue
				}
				select {
				case c.Send <- msg.data:
				default:
					// too far behind to keep
					delete(h.clients, c)
					close(c.Send)
				}
			}
		case <-latency.C:
			if len(h.clients) == 0 {
				continue
			}

			var data []byte
			buf := make([]byte, 2)
			for c := range h.clients {
				binary.LittleEndian.PutUint16(buf, c.latency())
				data = append(data, c.ID)
				data = append(data, buf...)
			}
			for c := range h.clients {
				select {
				case c.Send <- message(Latency, data):
				default:
				}
			}
		}
	}
}

func (h *Hub) sendAll(data []byte) {
	h.broadcast <- broadcastMsg{data: data}
}

func (h *Hub) sendAllBut(c *Client, data []byte) {
	h.broadcast <- broadcastMsg{data: data, except: c}
}

// newClient wraps the connection and registers it with the hub.
func (h *Hub) newClient(conn *websocket.Conn, r *http.Request) *Client {
	h.mu.Lock()
	h.currentID++
	id := h.currentID
	h.mu.Unlock()

	c := &Client{
		hub:        h,
		conn:       conn,
		Send:       make(chan []byte, 256),
		ID:         id,
		RemoteAddr: r.RemoteAddr,
	}
	h.register <- c

	return c
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func tcpInfo(conn *net.TCPConn) (*unix.TCPInfo, error) {
	raw, err := conn.SyscallConn()
	if err != nil {
		return nil, err
	}

	var info *unix.TCPInfo
	ctrlErr := raw.Control(func(fd uintptr) {
		info, err = unix.GetsockoptTCPInfo(int(fd), unix.IPPROTO_TCP, unix.TCP_INFO)
	})
	switch {
	case ctrlErr != nil:
		return nil, ctrlErr
	case err != nil:
		return nil, err
	}

	return info, nil
}
