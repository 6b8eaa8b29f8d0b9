package web

import (
	"encoding/binary"
	"sync"
)

type cacheEntry struct {
	hash uint64
	data []byte
}

// cache is a small ring of recently sent payloads keyed by hash. When
// a frame or patch hashes to an entry already in the ring, only the
// ring index goes over the wire.
type cache struct {
	entries []cacheEntry
	idx     int
	sync.Mutex
}

func newCache(size int) *cache {
	return &cache{entries: make([]cacheEntry, size)}
}

// index returns the ring position holding hash, or -1.
func (c *cache) index(hash uint64) int {
	for i := range c.entries {
		if c.entries[i].hash == hash && len(c.entries[i].data) > 0 {
			return i
		}
	}
	return -1
}

// add stores data at the current ring position, advances it, and
// returns the position written.
func (c *cache) add(hash uint64, data []byte) int {
	i := c.idx
	c.entries[i] = cacheEntry{hash: hash, data: data}
	c.idx = (c.idx + 1) % len(c.entries)
	return i
}

// dump serializes the occupied ring slots as length, index, payload
// tuples, for bringing a new client's cache up to date. The length is
// 4 bytes: an uncompressed frame payload is larger than a uint16 can
// say.
func (c *cache) dump() []byte {
	c.Lock()
	defer c.Unlock()

	var data []byte
	lenBuf := make([]byte, 4)
	idxBuf := make([]byte, 2)
	for i := range c.entries {
		e := c.entries[i]
		if len(e.data) == 0 {
			continue
		}

		binary.LittleEndian.PutUint32(lenBuf, uint32(len(e.data)))
		data = append(data, lenBuf...)
		binary.LittleEndian.PutUint16(idxBuf, uint16(i))
		data = append(data, idxBuf...)
		data = append(data, e.data...)
	}

	return data
}
