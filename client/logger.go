package client

// RequestLogger is the interface used by [Client] for logging requests,
// responses and classified failures. It matches the logger interface of
// resty, so the same value is handed to the HTTP transport, and
// *zap.SugaredLogger satisfies it as-is.
//
// Implementations must not log request bodies verbatim if they may contain
// personal data; the client itself never logs the API key.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that discards everything.
// It is the default logger used by [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}
