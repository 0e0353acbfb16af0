package webhook

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Option func(*Options)

type Options struct {
	retryCount     int
	backoff        time.Duration
	maxBackoff     time.Duration
	timeout        time.Duration
	requestLogger  RequestLogger
	retryPolicy    func(*resty.Response, error) bool
	requestHeaders map[string]string
}

func newClientOptions() *Options {
	return &Options{
		retryCount:    3,
		backoff:       time.Second,
		maxBackoff:    2 * time.Minute,
		requestLogger: &NoopLogger{},
		retryPolicy:   DefaultRetryPolicy,
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// WithRetryCount sets how many times a failed call is retried beyond the
// first attempt, so a count of 3 permits up to 4 attempts in total. Zero
// disables retries. Default 3.
func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

// WithBackoff sets the base delay for exponential backoff; the wait before
// retry k is backoff * 2^k. Default 1s.
func WithBackoff(backoff time.Duration) Option {
	return func(o *Options) {
		if backoff > 0 {
			o.backoff = backoff
		}
	}
}

// WithMaxBackoff caps the delay between retries. Default 2m.
func WithMaxBackoff(maxBackoff time.Duration) Option {
	return func(o *Options) {
		if maxBackoff > 0 {
			o.maxBackoff = maxBackoff
		}
	}
}

// WithTimeout sets a per-attempt timeout on the underlying HTTP client.
// Zero (the default) means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRequestLogger supplies the logger used for failed attempts and retry
// waits. Default is [NoopLogger].
func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRetryPolicy replaces [DefaultRetryPolicy] as the condition deciding
// whether a failed attempt is retried.
func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

// WithRequestHeader adds a header to every outgoing request. Content-Type
// and Accept are managed by the client and cannot be overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}
