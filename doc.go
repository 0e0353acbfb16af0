// Package webhook provides an HTTP client for Discord webhook endpoints.
//
// The client wraps [github.com/go-resty/resty/v2] with automatic retries,
// exponential backoff, and pluggable logging. It supports plain messages,
// rich embeds, file attachments, and editing or deleting previously sent
// messages by ID.
//
// # Basic Usage
//
//	c := webhook.New("https://discord.com/api/webhooks/<id>/<token>",
//	    webhook.WithRetryCount(5),
//	)
//	defer c.Close()
//
//	res, err := c.SendMessage(ctx, webhook.Message{Content: "deploy finished"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.OK() {
//	    log.Printf("delivery failed: %v", res.Failure)
//	}
//
// # Results
//
// Every delivery method returns a [Result]. A nil [Result.Failure] means the
// endpoint accepted the call and [Result.Body] holds the decoded JSON
// response. A non-nil Failure describes an exhausted retry budget and
// carries the failure [Category]. The Go error return is reserved for local
// problems: a nil or closed client, a missing base URL, an unreadable
// attachment, or a cancelled context.
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained.
//
// # Retry Behaviour
//
// Failed calls are retried up to the configured budget with exponential
// backoff: the wait before retry k is the backoff base times 2^k, capped by
// [WithMaxBackoff]. [DefaultRetryPolicy] retries every non-2xx response and
// every transport error; context cancellation and deadline exceeded are
// never retried. Supply a custom function via [WithRetryPolicy] to override
// this behaviour, for example to retry only on 429 and 5xx.
//
// # Authentication
//
// Discord webhooks are pre-authorized URLs; the token is part of the URL
// passed to [New] and no further credentials are required.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewSlogLogger] for a
// ready-made [log/slog] adapter. The default [NoopLogger] discards all log
// output. Failed attempts are logged at error severity and retry waits at
// info severity.
package webhook
