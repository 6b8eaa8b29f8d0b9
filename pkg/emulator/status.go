package emulator

// Status represents the state of the emulated core. It can be one of
// the following:
//
//   - Running
//   - Paused
//   - Halted
//   - Errored
type Status int

const (
	// Running represents a core that is stepping frames.
	Running Status = iota
	// Paused represents a core that is suspended by the host and can
	// be resumed.
	Paused
	// Halted represents a core whose CPU has executed a halt or stop
	// instruction. The core keeps serving the host but no longer
	// steps.
	Halted
	// Errored represents a core whose CPU has faulted on an opcode it
	// does not implement.
	Errored
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Halted:
		return "Halted"
	case Errored:
		return "Errored"
	default:
		return "Unknown"
	}
}

func (s Status) IsRunning() bool {
	return s == Running
}

func (s Status) IsPaused() bool {
	return s == Paused
}

func (s Status) IsHalted() bool {
	return s == Halted
}

func (s Status) IsErrored() bool {
	return s == Errored
}
