package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for an error under the key "error". Returns an
// empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ErrorType records only the error's dynamic type under the key
// "error_type", for call sites whose errors may echo secret material.
func ErrorType(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error_type", fmt.Sprintf("%T", err))
}

// AccountID records an operator account identifier.
func AccountID(id int64) slog.Attr {
	return slog.Int64("account_id", id)
}

// FSID records a source filesystem identifier.
func FSID(fsid string) slog.Attr {
	return slog.String("fsid", fsid)
}

// Step records a deletion pipeline step name.
func Step(name string) slog.Attr {
	return slog.String("step", name)
}
