// Package client is the single preconfigured HTTP client used by every
// storefront service. It pins the backend base address, forwards the
// session credential automatically through an in-memory cookie jar, and
// observes every outcome uniformly: API rejections and transport failures
// are logged and counted, then re-signalled to the caller unchanged.
//
// The client deliberately has no retry, backoff, timeout or deduplication
// policy. Each call is fire-once and caller-owned.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/textproto"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config captures the settings for constructing a Client.
type Config struct {
	// BaseURL is the backend origin plus path prefix, without a trailing
	// slash, e.g. "http://localhost:8080/api".
	BaseURL string
	// Logger receives the interceptor's diagnostics.
	Logger zerolog.Logger
	// OnUnauthorized, when set, is invoked after any request fails with
	// 401. Used to drop a stale local session when the backend no longer
	// recognises the credential. The error still propagates to the caller.
	OnUnauthorized func()
	// HTTPClient overrides the underlying transport. When nil a client
	// with a fresh cookie jar is used. The jar is what carries the
	// backend-issued credential cookie across requests.
	HTTPClient *http.Client
}

// Client issues all backend requests for the storefront.
type Client struct {
	base           string
	http           *http.Client
	log            zerolog.Logger
	onUnauthorized func()
}

// messageEnvelope is the backend's canonical error body.
type messageEnvelope struct {
	Message string `json:"message"`
}

// New constructs a Client. Panics only on a programming error (cookiejar
// construction cannot fail with nil options).
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			panic(fmt.Sprintf("client: cookie jar: %v", err))
		}
		hc = &http.Client{Jar: jar}
	}
	return &Client{
		base:           strings.TrimRight(cfg.BaseURL, "/"),
		http:           hc,
		log:            cfg.Logger,
		onUnauthorized: cfg.OnUnauthorized,
	}
}

// Get issues a GET request and decodes a 2xx response body into out
// (skipped when out is nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	r, ct, err := jsonBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, r, ct, out)
}

// Put issues a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	r, ct, err := jsonBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, r, ct, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", out)
}

// FilePart is an optional binary attachment for multipart requests.
type FilePart struct {
	Filename    string
	ContentType string
	Content     []byte
}

// PostMultipart issues a POST with the backend's multipart convention: a
// JSON-serialised part named "data" plus an optional binary part named
// "file".
func (c *Client) PostMultipart(ctx context.Context, path string, data any, file *FilePart, out any) error {
	body, ct, err := multipartBody(data, file)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, ct, out)
}

// PutMultipart is PostMultipart with the PUT verb, used for updates.
func (c *Client) PutMultipart(ctx context.Context, path string, data any, file *FilePart, out any) error {
	body, ct, err := multipartBody(data, file)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, ct, out)
}

func jsonBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("client: encode body: %w", err)
	}
	return bytes.NewReader(buf), "application/json", nil
}

func multipartBody(data any, file *FilePart) (io.Reader, string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, "", fmt.Errorf("client: encode multipart data: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="data"`)
	hdr.Set("Content-Type", "application/json")
	part, err := w.CreatePart(hdr)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(payload); err != nil {
		return nil, "", err
	}

	if file != nil {
		fh := textproto.MIMEHeader{}
		fh.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Filename))
		fh.Set("Content-Type", file.ContentType)
		fp, err := w.CreatePart(fh)
		if err != nil {
			return nil, "", err
		}
		if _, err := fp.Write(file.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// do executes a single request and runs the response interceptor. Errors
// are logged and re-signalled unchanged; the interceptor never suppresses
// or recovers from a failure.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		requestErrorsTotal.WithLabelValues("network").Inc()
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("network error")
		return &TransportError{Err: err}
	}
	defer res.Body.Close()

	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(method, statusClass(res.StatusCode)).Inc()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		requestErrorsTotal.WithLabelValues("network").Inc()
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("network error")
		return &TransportError{Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var env messageEnvelope
		_ = json.Unmarshal(raw, &env)

		requestErrorsTotal.WithLabelValues("api").Inc()
		c.log.Error().
			Int("status", res.StatusCode).
			Str("method", method).
			Str("path", path).
			Str("message", env.Message).
			Msg("api error")

		if res.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &APIError{StatusCode: res.StatusCode, Message: env.Message}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("client: decode response: %w", err)
		}
	}
	return nil
}
