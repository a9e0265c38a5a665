package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Handler records the handler name under the key "handler".
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Field records a form field id under the key "field".
func Field(id string) slog.Attr {
	return slog.String("field", id)
}

// FailedFields records the ids of failed fields mapped to their error codes,
// grouped under "failed". Values never appear in logs, only codes.
func FailedFields(codes map[string]string) slog.Attr {
	if len(codes) == 0 {
		return slog.Attr{}
	}
	attrs := make([]slog.Attr, 0, len(codes))
	for id, code := range codes {
		attrs = append(attrs, slog.String(id, code))
	}
	return slog.Attr{Key: "failed", Value: slog.GroupValue(attrs...)}
}
