package exceptions

import (
	"errors"
	"fmt"
	"medcalc-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode     int         `json:"status_code"`
	Success        bool        `json:"success"`
	ClientMessage  string      `json:"message"`
	DevMessage     string      `json:"dev_message,omitempty"`
	Locations      []Location  `json:"locations,omitempty"`
	Data           interface{} `json:"data,omitempty"`
	Kind           error       `json:"-"`
	UpstreamStatus int         `json:"-"`
	upstreamText   string
	cause          error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// Is reports whether the error belongs to target kind. Fetch variants
// (not found, forbidden, unauthorized) also match ErrKindFetch.
func (e *CustomError) Is(target error) bool {
	if e.Kind == nil {
		return false
	}
	if e.Kind == target {
		return true
	}
	return target == ErrKindFetch && isFetchVariant(e.Kind)
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(3)},
		cause:         err,
	}

	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
		var inner *CustomError
		if errors.As(err, &inner) {
			customErr.Locations = append(customErr.Locations, inner.Locations...)
			customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, inner.DevMessage)
		}
	}

	return customErr
}

func (e *CustomError) withKind(kind error) *CustomError {
	e.Kind = kind
	return e
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}

// UpstreamStatus returns the first scoring API status code recorded in the
// error chain, or 0 when the failure never reached the API.
func UpstreamStatus(err error) int {
	for err != nil {
		if customErr, ok := err.(*CustomError); ok && customErr.UpstreamStatus != 0 {
			return customErr.UpstreamStatus
		}
		err = errors.Unwrap(err)
	}
	return 0
}

// UpstreamMessage returns the error text the scoring API sent with the first
// upstream status error in the chain.
func UpstreamMessage(err error) string {
	for err != nil {
		if customErr, ok := err.(*CustomError); ok && customErr.UpstreamStatus != 0 {
			return customErr.upstreamText
		}
		err = errors.Unwrap(err)
	}
	return ""
}
