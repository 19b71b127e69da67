package domain

// VertexStatus represents the outcome of one package build inside a session.
type VertexStatus string

const (
	// VertexStatusCompleted indicates the package archive was produced.
	VertexStatusCompleted VertexStatus = "completed"
	// VertexStatusFailed indicates the package build aborted.
	VertexStatusFailed VertexStatus = "failed"
	// VertexStatusCached indicates an archive from earlier in the session was reused.
	VertexStatusCached VertexStatus = "cached"
	// VertexStatusSkipped indicates the dependency was already shipped inside the package.
	VertexStatusSkipped VertexStatus = "skipped"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
