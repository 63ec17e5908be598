package logger

// Logger is the structured logging surface shared by processors, services
// and command handlers.
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
}
