package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/MTrazona/aurum-platform-admin-sub000/pkg/apperr"
)

// Client is the shared HTTP client for the platform core API. Every
// per-resource gateway embeds it. Failures are classified into the
// apperr taxonomy before they leave this package.
type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
	log     zerolog.Logger
}

// NewClient builds a platform client. token supplies the service
// credential per call so rotation does not require a restart.
func NewClient(baseURL string, timeout time.Duration, token func() string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		token:   token,
		log:     log.With().Str("component", "platform").Logger(),
	}
}

// backendError is the error envelope the core API uses for non-2xx
// responses. Both field names are in the wild.
type backendError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("platform call failed before response")
		return apperr.FromTransport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.FromTransport(err)
	}

	if resp.StatusCode >= 400 {
		var be backendError
		_ = json.Unmarshal(raw, &be)
		msg := be.Message
		if msg == "" {
			msg = be.Error
		}
		c.log.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Str("backend_message", msg).Msg("platform call rejected")
		return apperr.FromStatus(resp.StatusCode, msg)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode platform response: %w", err)
		}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, method, path, nil, body, "application/json", out)
}

// uploadResponse is the attachment upload envelope.
type uploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// Upload posts a file as multipart form data and returns the stored
// attachment URL.
func (c *Client) Upload(ctx context.Context, path, field, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(fw, file); err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	var resp uploadResponse
	if err := c.do(ctx, http.MethodPost, path, nil, &buf, mw.FormDataContentType(), &resp); err != nil {
		return "", err
	}
	return resp.ImageURL, nil
}
