package core

// Logger defines structured logging operations. Fields travel as maps so the
// domain stays free of any concrete logging library.
type Logger interface {
	// Debug logs detailed diagnostic messages
	Debug(message string, fields map[string]any)
	// Info logs general operational messages
	Info(message string, fields map[string]any)
	// Warn logs warnings
	Warn(message string, fields map[string]any)
	// Error logs errors
	Error(message string, fields map[string]any)
	// Flush ensures all buffered logs are written to their destination
	Flush() error
}
