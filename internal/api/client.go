package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"lmsportal/internal/session"
)

// Client is the single configured gateway to the LMS backend. The
// credential is not client state: every call takes the caller's
// session credential explicitly, so an unauthenticated call simply
// carries no Authorization header and the backend rejects it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

func NewClient(baseURL string, rps int) *Client {
	if rps <= 0 {
		rps = 20
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "lmsportal/1.0",
		limiter:   rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), rps),
	}
}

// BaseURL reports the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, cred session.Credential, path string, query url.Values, out any) error {
	return c.do(ctx, cred, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, cred session.Credential, path string, body, out any) error {
	return c.do(ctx, cred, http.MethodPost, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, cred session.Credential, path string, body, out any) error {
	return c.do(ctx, cred, http.MethodPatch, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, cred session.Credential, path string, body, out any) error {
	return c.do(ctx, cred, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, cred session.Credential, path string, out any) error {
	return c.do(ctx, cred, http.MethodDelete, path, nil, nil, out)
}

// do performs one request. No retries, no caching, no queueing: a
// failure surfaces to the view that triggered it and the user resubmits.
func (c *Client) do(ctx context.Context, cred session.Credential, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	c.setHeaders(req, cred)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// postMultipart submits a multipart form, used by registration when an
// ID-proof file is attached.
func (c *Client) postMultipart(ctx context.Context, cred session.Credential, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("write form field %s: %w", k, err)
		}
	}
	if file != nil {
		part, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("copy form file: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	c.setHeaders(req, cred)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// getBlob fetches a binary response (report downloads) and returns the
// bytes together with the backend's content type and suggested
// filename, forwarded unchanged.
func (c *Client) getBlob(ctx context.Context, cred session.Credential, path string, query url.Values) (*Blob, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, cred)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Blob{
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
		Disposition: resp.Header.Get("Content-Disposition"),
	}, nil
}

func (c *Client) setHeaders(req *http.Request, cred session.Credential) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.New().String())
	if h := cred.AuthorizationHeader(); h != "" {
		req.Header.Set("Authorization", h)
	}
}

// Blob is a downloaded binary payload with its transport metadata.
type Blob struct {
	Data        []byte
	ContentType string
	Disposition string
}
