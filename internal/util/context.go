package util

type contextKey int

const (
	// CTXKeyLogger is the context key holding the request-scoped logger.
	CTXKeyLogger contextKey = iota
	// CTXKeyRequestID is the context key holding the request ID.
	CTXKeyRequestID
	// CTXKeyDisableLogger disables context-scoped logging when set to true.
	CTXKeyDisableLogger
)
