package web

// Type identifies a message sent to the browser. Every message starts
// with its Type byte.
type Type = uint8

const (
	// Frame carries a full frame: 2 bytes of ring index, then the
	// frame payload.
	Frame Type = iota
	// FramePatch carries only the pixels that changed, in the same
	// index-then-payload layout.
	FramePatch
	// FrameSkip tells the client how many identical frames were not
	// sent.
	FrameSkip
	// FrameCache and PatchCache carry just a ring index; the client
	// replays the payload it already has.
	FrameCache
	PatchCache
	// FrameSync and the cache syncs bring a newly connected client up
	// to date.
	FrameSync
	FrameCacheSync
	PatchCacheSync
	Title
	Paused
	Latency
)

// Closing is sent by the browser when it is about to disconnect.
const Closing Type = 255
