package logger

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the logger settings.
type Config struct {
	// Level is one of Debug, Info, Warning or Error.
	// Unknown values fall back to Info.
	Level string

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string

	// Development switches to a human-readable console encoder.
	Development bool
}
