package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Category classifies why a dispatched call ultimately failed.
type Category int

const (
	// CategoryHTTP means the endpoint kept answering with a non-2xx status.
	CategoryHTTP Category = iota

	// CategoryTransport means the call could not complete at the network
	// level (connection refused, timeout, DNS).
	CategoryTransport

	// CategoryUnexpected covers every other failure, such as a success
	// response with an undecodable body.
	CategoryUnexpected
)

// String returns a short name for the category.
func (cat Category) String() string {
	switch cat {
	case CategoryHTTP:
		return "http"
	case CategoryTransport:
		return "transport"
	default:
		return "unexpected"
	}
}

// Failure describes a call that failed on every permitted attempt. It
// implements the error interface.
type Failure struct {
	Category Category
	Message  string
}

func (f *Failure) Error() string {
	return f.Message
}

// Result is the uniform outcome of every delivery method. On success,
// Failure is nil and Body holds the decoded JSON response (nil when the
// endpoint answered with an empty body, as it does for deletes). On failure,
// Failure carries the category and detail.
type Result struct {
	Body    map[string]any
	Failure *Failure
}

// OK reports whether the call succeeded.
func (r Result) OK() bool {
	return r.Failure == nil
}

// attachment is a file part for a multipart upload.
type attachment struct {
	name string
	data []byte
}

// dispatch is the choke point every delivery method funnels through. It
// issues one HTTP call through the session's retry engine, then classifies
// the final outcome into a Result. Remote failures never surface as Go
// errors; the error return carries only local conditions and context
// cancellation.
func (c *Client) dispatch(ctx context.Context, method, target string, payload any, att *attachment, session *resty.Client) (Result, error) {
	if c.baseURL == "" {
		return Result{}, ErrNoBaseURL
	}

	if session == nil {
		var err error
		if session, err = c.acquireSession(); err != nil {
			return Result{}, err
		}
	}

	var body map[string]any

	req := session.R().
		SetContext(ctx).
		SetResult(&body)

	if att != nil {
		req.SetFileReader("file", att.name, bytes.NewReader(att.data))
		if fields, ok := payload.(map[string]string); ok && len(fields) > 0 {
			req.SetFormData(fields)
		}
	} else if payload != nil {
		req.SetBody(payload)
	}

	resp, err := req.Execute(method, target)

	switch {
	case err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		return Result{}, err

	case err != nil:
		cat, msg := classify(err)
		c.logFailure(resp, err)
		return Result{Failure: &Failure{Category: cat, Message: msg}}, nil

	case resp.IsError():
		c.logFailure(resp, nil)
		return Result{Failure: &Failure{
			Category: CategoryHTTP,
			Message:  "Max retries reached: " + errorDetail(resp),
		}}, nil

	default:
		return Result{Body: body}, nil
	}
}

// logRetriedAttempt runs after each failed attempt that still has retries
// left. The final failure is logged once by dispatch.
func (c *Client) logRetriedAttempt(resp *resty.Response, err error) {
	if resp != nil && resp.Request != nil && resp.Request.Attempt > c.options.retryCount {
		return
	}

	c.logFailure(resp, err)
}

func (c *Client) logFailure(resp *resty.Response, err error) {
	switch {
	case err != nil:
		if cat, _ := classify(err); cat == CategoryTransport {
			c.options.requestLogger.Errorf("request failed: %v", err)
		} else {
			c.options.requestLogger.Errorf("unexpected error: %v", err)
		}
	case resp != nil && resp.IsError():
		c.options.requestLogger.Errorf("HTTP error: %d - %s", resp.StatusCode(), errorDetail(resp))
	}
}

// classify maps a non-HTTP failure to its category and result message.
func classify(err error) (Category, string) {
	var urlErr *url.Error
	var netErr net.Error

	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return CategoryTransport, fmt.Sprintf("Request failed: %v", err)
	}

	return CategoryUnexpected, fmt.Sprintf("Unexpected error: %v", err)
}

// errorDetail extracts a human-readable message from an error response.
// Discord error bodies carry the explanation under a "message" key; anything
// else falls back to the raw body.
func errorDetail(resp *resty.Response) string {
	raw := strings.TrimSpace(string(resp.Body()))
	if raw == "" {
		return "(empty error body)"
	}

	var decoded struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &decoded); err == nil && decoded.Message != "" {
		return decoded.Message
	}

	return raw
}
