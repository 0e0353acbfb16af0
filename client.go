package webhook

import (
	"errors"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrNilClient is returned when a method is called on a nil client.
	ErrNilClient = errors.New("webhook client is nil")

	// ErrClosed is returned when a method is called after Close.
	ErrClosed = errors.New("webhook client is closed")

	// ErrNoBaseURL is returned when the client was created with an empty URL.
	ErrNoBaseURL = errors.New("base URL must be set")
)

// Client delivers messages to a single Discord webhook URL. Configuration is
// fixed at construction; the underlying HTTP session is created on first use
// and reused until Close is called.
//
// A Client is safe for concurrent use.
type Client struct {
	baseURL string
	options *Options

	mu      sync.Mutex
	session *resty.Client
	closed  bool
}

// New creates a client for the given webhook URL. The URL carries the
// webhook token; no other credentials are needed. Options override the
// defaults documented on each [Option] constructor.
func New(baseURL string, opts ...Option) *Client {
	options := newClientOptions()

	for _, opt := range opts {
		opt(options)
	}

	return &Client{
		baseURL: baseURL,
		options: options,
	}
}

// Close releases the client's HTTP session. It is idempotent; closing a
// client that never created a session is a no-op. Any call after Close fails
// with [ErrClosed].
func (c *Client) Close() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true

	if c.session != nil {
		c.session.GetClient().CloseIdleConnections()
		c.session = nil
	}

	return nil
}

// acquireSession returns the shared session, creating it on first use.
func (c *Client) acquireSession() (*resty.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}

	if c.session == nil {
		c.session = c.newSession()
	}

	return c.session, nil
}

// newSession builds a fully configured resty client. File uploads call this
// directly to get a session isolated from the shared JSON path.
func (c *Client) newSession() *resty.Client {
	session := resty.New().
		SetRetryCount(c.options.retryCount).
		SetRetryWaitTime(0).
		SetRetryMaxWaitTime(c.options.maxBackoff).
		SetRetryAfter(c.retryDelay).
		AddRetryCondition(c.options.retryPolicy).
		AddRetryHook(c.logRetriedAttempt).
		SetRetryResetReaders(true).
		SetHeaders(c.options.requestHeaders)

	if c.options.timeout > 0 {
		session.SetTimeout(c.options.timeout)
	}

	return session
}

// retryDelay computes the wait before the next retry: backoff * 2^attempt,
// where attempt is the 1-based count of the attempt that just failed. The
// first retry therefore already waits twice the base. The delay is capped by
// the max backoff option.
func (c *Client) retryDelay(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	attempt := 1
	if resp != nil && resp.Request != nil {
		attempt = resp.Request.Attempt
	}

	delay := c.options.backoff
	for i := 0; i < attempt; i++ {
		delay *= 2
		if delay <= 0 || delay >= c.options.maxBackoff {
			delay = c.options.maxBackoff
			break
		}
	}

	c.options.requestLogger.Infof("retrying in %s", delay)

	return delay, nil
}

func (c *Client) checkOpen() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	return nil
}
