package api

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func errResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestDecodeError_ExtractionOrder(t *testing.T) {
	t.Run("error field wins", func(t *testing.T) {
		e := decodeError(errResponse(400, `{"error":"Book not available","message":"ignored"}`))
		assert.Equal(t, "Book not available", e.Message)
		assert.Equal(t, 400, e.StatusCode)
	})

	t.Run("message field when no error field", func(t *testing.T) {
		e := decodeError(errResponse(400, `{"message":"Quota exceeded"}`))
		assert.Equal(t, "Quota exceeded", e.Message)
	})

	t.Run("neither field leaves message empty", func(t *testing.T) {
		e := decodeError(errResponse(500, `{"status":"bad"}`))
		assert.Empty(t, e.Message)
	})

	t.Run("empty body", func(t *testing.T) {
		e := decodeError(errResponse(502, ``))
		assert.Empty(t, e.Message)
		assert.Equal(t, 502, e.StatusCode)
	})

	t.Run("non-json body", func(t *testing.T) {
		e := decodeError(errResponse(502, `<html>gateway error</html>`))
		assert.Empty(t, e.Message)
	})
}

func TestDecodeError_FieldErrors(t *testing.T) {
	t.Run("errors map", func(t *testing.T) {
		e := decodeError(errResponse(422, `{"error":"validation failed","errors":{"isbn":"invalid ISBN"}}`))
		assert.Equal(t, "invalid ISBN", e.Fields["isbn"])
	})

	t.Run("details list", func(t *testing.T) {
		e := decodeError(errResponse(422, `{"error":"validation failed","details":[{"field":"email","message":"already registered"}]}`))
		assert.Equal(t, "already registered", e.Fields["email"])
	})
}

func TestMessage(t *testing.T) {
	t.Run("backend message passes through verbatim", func(t *testing.T) {
		err := &Error{StatusCode: 400, Message: "Book not available"}
		assert.Equal(t, "Book not available", Message(err))
	})

	t.Run("empty backend message falls back", func(t *testing.T) {
		err := &Error{StatusCode: 500}
		assert.Equal(t, FallbackMessage, Message(err))
	})

	t.Run("transport error uses its own text", func(t *testing.T) {
		err := errors.New("dial tcp: connection refused")
		assert.Equal(t, "dial tcp: connection refused", Message(err))
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "", Message(nil))
	})

	t.Run("wrapped backend error", func(t *testing.T) {
		inner := &Error{StatusCode: 404, Message: "not found"}
		wrapped := errors.Join(errors.New("fetch book"), inner)
		assert.Equal(t, "not found", Message(wrapped))
	})
}

func TestFieldErrors(t *testing.T) {
	err := &Error{StatusCode: 422, Fields: map[string]string{"title": "required"}}
	assert.Equal(t, "required", FieldErrors(err)["title"])
	assert.Nil(t, FieldErrors(errors.New("plain")))
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&Error{StatusCode: 401}))
	assert.True(t, IsUnauthorized(&Error{StatusCode: 403}))
	assert.False(t, IsUnauthorized(&Error{StatusCode: 404}))
	assert.False(t, IsUnauthorized(errors.New("plain")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&Error{StatusCode: 404}))
	assert.False(t, IsNotFound(&Error{StatusCode: 500}))
}
