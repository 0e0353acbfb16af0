package webhook

import (
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

func TestNewClientOptions(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()

	if opts.retryCount != 3 {
		t.Errorf("expected retryCount=3, got %d", opts.retryCount)
	}

	if opts.backoff != time.Second {
		t.Errorf("expected backoff=1s, got %v", opts.backoff)
	}

	if opts.maxBackoff != 2*time.Minute {
		t.Errorf("expected maxBackoff=2m, got %v", opts.maxBackoff)
	}

	if opts.timeout != 0 {
		t.Errorf("expected timeout=0, got %v", opts.timeout)
	}

	if opts.requestLogger == nil {
		t.Error("expected requestLogger to be set")
	}

	if opts.retryPolicy == nil {
		t.Error("expected retryPolicy to be set")
	}

	if opts.requestHeaders["Content-Type"] != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %s", opts.requestHeaders["Content-Type"])
	}

	if opts.requestHeaders["Accept"] != "application/json" {
		t.Errorf("expected Accept=application/json, got %s", opts.requestHeaders["Accept"])
	}
}

func TestWithRetryCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"valid positive", 5, 5},
		{"zero", 0, 0},
		{"negative ignored", -1, 3}, // default is 3
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithRetryCount(tt.input)(opts)

			if opts.retryCount != tt.expected {
				t.Errorf("expected retryCount=%d, got %d", tt.expected, opts.retryCount)
			}
		})
	}
}

func TestWithBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Duration
		expected time.Duration
	}{
		{"valid", 250 * time.Millisecond, 250 * time.Millisecond},
		{"zero ignored", 0, time.Second},
		{"negative ignored", -time.Second, time.Second},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithBackoff(tt.input)(opts)

			if opts.backoff != tt.expected {
				t.Errorf("expected backoff=%v, got %v", tt.expected, opts.backoff)
			}
		})
	}
}

func TestWithMaxBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Duration
		expected time.Duration
	}{
		{"valid", 10 * time.Second, 10 * time.Second},
		{"zero ignored", 0, 2 * time.Minute},
		{"negative ignored", -time.Second, 2 * time.Minute},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithMaxBackoff(tt.input)(opts)

			if opts.maxBackoff != tt.expected {
				t.Errorf("expected maxBackoff=%v, got %v", tt.expected, opts.maxBackoff)
			}
		})
	}
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Duration
		expected time.Duration
	}{
		{"valid", 30 * time.Second, 30 * time.Second},
		{"zero ignored", 0, 0},
		{"negative ignored", -time.Second, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithTimeout(tt.input)(opts)

			if opts.timeout != tt.expected {
				t.Errorf("expected timeout=%v, got %v", tt.expected, opts.timeout)
			}
		})
	}
}

func TestWithRequestLogger(t *testing.T) {
	t.Parallel()

	t.Run("valid logger", func(t *testing.T) {
		t.Parallel()

		logger := &recordingLogger{}
		opts := newClientOptions()
		WithRequestLogger(logger)(opts)

		if opts.requestLogger != logger {
			t.Error("expected custom logger to be set")
		}
	})

	t.Run("nil ignored", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		WithRequestLogger(nil)(opts)

		if opts.requestLogger == nil {
			t.Error("expected default logger to be retained")
		}
	})
}

func TestWithRetryPolicy(t *testing.T) {
	t.Parallel()

	t.Run("valid policy", func(t *testing.T) {
		t.Parallel()

		called := false
		policy := func(_ *resty.Response, _ error) bool {
			called = true
			return false
		}

		opts := newClientOptions()
		WithRetryPolicy(policy)(opts)

		opts.retryPolicy(nil, nil)
		if !called {
			t.Error("expected custom policy to be set")
		}
	})

	t.Run("nil ignored", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		WithRetryPolicy(nil)(opts)

		if opts.retryPolicy == nil {
			t.Error("expected default policy to be retained")
		}
	})
}

func TestWithRequestHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		value  string
		stored bool
	}{
		{"custom header", "X-Trace-ID", "abc", true},
		{"empty name ignored", "", "abc", false},
		{"whitespace name ignored", "   ", "abc", false},
		{"content-type protected", "Content-Type", "text/plain", false},
		{"accept protected", "accept", "text/plain", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithRequestHeader(tt.header, tt.value)(opts)

			if tt.stored {
				if opts.requestHeaders[tt.header] != tt.value {
					t.Errorf("expected header %q to be stored", tt.header)
				}
				return
			}

			if opts.requestHeaders["Content-Type"] != "application/json" {
				t.Error("expected Content-Type default to be retained")
			}

			if opts.requestHeaders["Accept"] != "application/json" {
				t.Error("expected Accept default to be retained")
			}
		})
	}
}
