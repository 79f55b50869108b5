package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	apperrors "hubver/pkg/errors"
)

// defaultTimeout bounds every request issued by the client. There is
// no per-call override; a slow hub fails the whole run.
const defaultTimeout = 30 * time.Second

// Method is an HTTP request method recognized by the client.
type Method string

// Supported request methods.
const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

func (m Method) valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	}
	return false
}

// Config holds the connection settings for a hub client.
type Config struct {
	BaseURL  string        // e.g. "https://console.redhat.com"
	Username string        // basic auth username
	Password string        // basic auth password
	Timeout  time.Duration // zero means defaultTimeout
}

// Client issues authenticated requests against a hub API. It is
// constructed once and passed around explicitly; it holds no global
// state. All methods are safe for concurrent use.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
	logger   *log.Logger
}

// NewClient creates a hub client from cfg. The logger receives a
// debug-level trace of every request before it is sent.
func NewClient(cfg Config, logger *log.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		username: cfg.Username,
		password: cfg.Password,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Request sends an HTTP request to the hub and returns the decoded
// JSON body as a generic value tree. A non-2xx status is always an
// error carrying the status code, even when the body parses as JSON.
func (c *Client) Request(ctx context.Context, method Method, path string, body []byte) (any, error) {
	var v any
	if err := c.do(ctx, method, path, body, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Get performs a GET request and decodes the JSON response into v.
func (c *Client) Get(ctx context.Context, path string, v any) error {
	return c.do(ctx, MethodGet, path, nil, v)
}

func (c *Client) do(ctx context.Context, method Method, path string, body []byte, v any) error {
	if !method.valid() {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "unsupported HTTP method %q", string(method))
	}
	if path == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "empty request path")
	}

	if body != nil {
		c.logger.Debug("hub request", "method", method, "path", path, "payload", string(body))
	} else {
		c.logger.Debug("hub request", "method", method, "path", path)
	}

	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, string(method), c.baseURL+path, rdr)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "build %s request for %s", method, path)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransport(err, method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.New(apperrors.ErrCodeHTTP, "%s %s returned status %d", method, path, resp.StatusCode)
	}

	if v == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeRequest, err, "decode %s %s response", method, path)
	}
	return nil
}

// classifyTransport sorts a failed round trip into the timeout,
// connection-failure or generic-request-failure class.
func classifyTransport(err error, method Method, path string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(apperrors.ErrCodeTimeout, err, "%s %s timed out", method, path)
	}

	var uerr *url.Error
	if errors.As(err, &uerr) {
		if uerr.Timeout() {
			return apperrors.Wrap(apperrors.ErrCodeTimeout, err, "%s %s timed out", method, path)
		}
		var dnsErr *net.DNSError
		var opErr *net.OpError
		if errors.As(err, &dnsErr) || errors.As(err, &opErr) {
			return apperrors.Wrap(apperrors.ErrCodeConnection, err, "unable to connect for %s %s", method, path)
		}
	}
	return apperrors.Wrap(apperrors.ErrCodeRequest, err, "%s %s failed", method, path)
}
