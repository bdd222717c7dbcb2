package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// FallbackMessage is shown when a failed response carries no usable
// message of its own.
const FallbackMessage = "Something went wrong. Please try again."

// Error is a failed backend response. Message is extracted from the
// body's "error" field, then "message", then the HTTP status text, so
// views can render the server's wording verbatim. Fields holds
// per-field validation messages when the backend sent them.
type Error struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend: %d", e.StatusCode)
}

// errorBody covers the message shapes the backend produces: a flat
// error/message pair plus optional field errors either as a map or as
// a details list.
type errorBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
}

func decodeError(resp *http.Response) *Error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}

	// Extraction order: "error", then "message". A body with neither
	// leaves Message empty and the view shows the fallback string.
	switch {
	case body.Error != "":
		apiErr.Message = body.Error
	case body.Message != "":
		apiErr.Message = body.Message
	}

	if len(body.Errors) > 0 {
		apiErr.Fields = body.Errors
	} else if len(body.Details) > 0 {
		apiErr.Fields = make(map[string]string, len(body.Details))
		for _, d := range body.Details {
			apiErr.Fields[d.Field] = d.Message
		}
	}
	return apiErr
}

// Message returns what a view should display for err: the backend's
// own message when there is one, the transport error's message
// otherwise, and the fallback string when there is nothing at all.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return FallbackMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackMessage
}

// FieldErrors returns the per-field validation messages carried by err,
// or nil when it holds none.
func FieldErrors(err error) map[string]string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Fields
	}
	return nil
}

// IsUnauthorized reports whether err is an authentication failure,
// meaning the stored credential is stale and the user must log in again.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) &&
		(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden)
}

// IsNotFound reports whether err is a missing-resource failure.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
