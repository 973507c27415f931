// Package api implements the typed client for the external travel API.
// The API owns all business rules and persistence; this client only
// shapes requests, attaches the active session token, and decodes
// responses into the record types of internal/models.
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

	"go.uber.org/zap"

	"github.com/voyage-travel/storefront/internal/session"
)

// tokenHeader is the custom header the travel API reads credentials from.
const tokenHeader = "x-auth-token"

// StatusError reports a non-2xx response from the travel API. Message is
// taken from the body's "msg" field when the API supplies one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("travel api: %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("travel api: %d", e.Code)
}

// Client calls the external travel API rooted at baseURL + "/api".
type Client struct {
	base string
	http *http.Client
	log  *zap.Logger
}

// New constructs a Client for the API at base (scheme://host[:port],
// without the /api suffix).
func New(base string, log *zap.Logger) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
		log:  log,
	}
}

// BaseURL returns the API host base, used to resolve relative image
// references stored by the API.
func (c *Client) BaseURL() string { return c.base }

// do performs one API call. The active session token, when present in
// ctx, is attached as the auth header. A non-2xx status decodes into a
// StatusError; a 2xx body decodes into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+"/api"+path, body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := session.TokenFromContext(ctx); token != "" {
		req.Header.Set(tokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &StatusError{Code: resp.StatusCode}
		var payload struct {
			Msg string `json:"msg"`
		}
		if json.NewDecoder(resp.Body).Decode(&payload) == nil {
			apiErr.Message = payload.Msg
		}
		c.log.Warn("travel api call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("msg", apiErr.Message),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// get performs a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

// postJSON performs a POST with a JSON body, decoding the response into
// out when out is non-nil.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s body: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(b), out)
}

// del performs a DELETE.
func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

// Upload is a binary form field streamed into a multipart request.
type Upload struct {
	// Field is the multipart field name.
	Field string
	// Name is the client-side filename.
	Name string
	// Content is the file content.
	Content io.Reader
}

// postMultipart performs a POST with a multipart/form-data body built
// from fields plus an optional file part. Repeated values (for example
// package highlights) become repeated fields. The multipart content type
// is set explicitly, boundary included.
func (c *Client) postMultipart(ctx context.Context, path string, fields url.Values, file *Upload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, values := range fields {
		for _, v := range values {
			if err := w.WriteField(name, v); err != nil {
				return fmt.Errorf("write field %s: %w", name, err)
			}
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(file.Field, file.Name)
		if err != nil {
			return fmt.Errorf("create file part %s: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("copy file part %s: %w", file.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, w.FormDataContentType(), &buf, out)
}
