package webhook

import (
	"context"
	"errors"

	"github.com/go-resty/resty/v2"
)

// DefaultRetryPolicy is the default retry condition used by [Client]. It
// retries every non-2xx response and every transport error, up to the
// configured retry budget. It does not retry on context cancellation or
// deadline exceeded, so a cancelled caller abandons the retry loop.
//
// Supply a custom function via [WithRetryPolicy] to override this behaviour.
func DefaultRetryPolicy(r *resty.Response, err error) bool {
	if err != nil {
		// Don't retry on context cancellation or deadline exceeded
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}

		return true
	}

	return r.IsError()
}
