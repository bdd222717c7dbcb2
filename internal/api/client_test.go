package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmsportal/internal/session"
)

func TestClient_CredentialAttachment(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "email": "a@b.c"})
	}))
	defer backend.Close()

	client := NewClient(backend.URL, 100)

	t.Run("bearer", func(t *testing.T) {
		_, err := client.Me(context.Background(), session.BearerCredential("tok-123"))
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-123", gotAuth)
	})

	t.Run("basic", func(t *testing.T) {
		_, err := client.Me(context.Background(), session.BasicCredential("admin@example.com", "secret"))
		require.NoError(t, err)
		// base64("admin@example.com:secret")
		assert.Equal(t, "Basic YWRtaW5AZXhhbXBsZS5jb206c2VjcmV0", gotAuth)
	})

	t.Run("no credential attaches nothing", func(t *testing.T) {
		_, err := client.Me(context.Background(), session.Credential{})
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestClient_Login(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		// The login call itself must carry no credential.
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "asha@example.com", req.Email)

		_ = json.NewEncoder(w).Encode(LoginResponse{Token: "jwt-token"})
	}))
	defer backend.Close()

	client := NewClient(backend.URL, 100)
	resp, err := client.Login(context.Background(), LoginRequest{Email: "asha@example.com", Password: "Passw0rd!"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.Token)
}

func TestClient_BackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Book not available"}`))
	}))
	defer backend.Close()

	client := NewClient(backend.URL, 100)
	_, err := client.SearchBooks(context.Background(), session.BearerCredential("t"), BookFilter{})
	require.Error(t, err)

	assert.Equal(t, "Book not available", Message(err))
	assert.False(t, IsUnauthorized(err))
}

func TestClient_SearchBooksQuery(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/books/search", r.URL.Path)
		assert.Equal(t, "gaiman", r.URL.Query().Get("author"))
		assert.Equal(t, "true", r.URL.Query().Get("available"))
		assert.Empty(t, r.URL.Query().Get("title"))
		_, _ = w.Write([]byte(`[{"id":7,"title":"Coraline"}]`))
	}))
	defer backend.Close()

	client := NewClient(backend.URL, 100)
	books, err := client.SearchBooks(context.Background(), session.BearerCredential("t"),
		BookFilter{Author: "gaiman", Available: true})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Coraline", books[0].Title)
}

func TestClient_DownloadReport(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reports/download", r.URL.Path)
		assert.Equal(t, "books", r.URL.Query().Get("type"))
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="books.csv"`)
		_, _ = w.Write([]byte("id,title\n1,Coraline\n"))
	}))
	defer backend.Close()

	client := NewClient(backend.URL, 100)
	blob, err := client.DownloadReport(context.Background(), session.BasicCredential("a", "b"), "books", "")
	require.NoError(t, err)

	assert.Equal(t, "text/csv", blob.ContentType)
	assert.Equal(t, `attachment; filename="books.csv"`, blob.Disposition)
	assert.Equal(t, "id,title\n1,Coraline\n", string(blob.Data))
}

func TestClient_ContextCancelled(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	client := NewClient(backend.URL, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Me(ctx, session.Credential{})
	assert.Error(t, err)
}
