package log

// nullLogger discards everything.
type nullLogger struct{}

func (nullLogger) Infof(string, ...interface{})  {}
func (nullLogger) Errorf(string, ...interface{}) {}
func (nullLogger) Debugf(string, ...interface{}) {}

// NewNullLogger returns a Logger that discards all output.
func NewNullLogger() Logger {
	return nullLogger{}
}
