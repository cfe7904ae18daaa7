package extractor

// Logger receives structured diagnostics from extraction. Attributes are
// alternating key/value pairs:
//
//	logger.Debug("registered type", extractor.KeyType, "Pet")
//
// The oastsgen command backs it with zerolog; tests use [NopLogger].
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)

	// With returns a Logger that prepends attrs to every entry.
	With(attrs ...any) Logger
}

// Attribute keys used in extractor log entries.
const (
	KeyType   = "type"
	KeyScheme = "scheme"
	KeyHeader = "header"
	KeyMethod = "method"
	KeyPath   = "path"
)

// NopLogger discards everything. It is the default.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}

func (n NopLogger) With(...any) Logger { return n }

var _ Logger = NopLogger{}
