package i

// Logger is the logging surface used by services and entrypoints.
type Logger interface {
	Info(msg string)
	Error(msg string)
	Debug(msg string)
}
