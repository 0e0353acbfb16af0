package webhook

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// messagePayload is the JSON wire shape of a webhook message. Unset fields
// are omitted rather than sent as null.
type messagePayload struct {
	Content   string  `json:"content,omitempty"`
	Username  string  `json:"username,omitempty"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Embeds    []Embed `json:"embeds,omitempty"`
}

func buildPayload(msg Message) *messagePayload {
	payload := &messagePayload{
		Content:   msg.Content,
		Username:  msg.Username,
		AvatarURL: msg.AvatarURL,
	}

	if msg.Embed != nil {
		payload.Embeds = []Embed{*msg.Embed}
	}

	return payload
}

// SendMessage delivers a message to the webhook.
func (c *Client) SendMessage(ctx context.Context, msg Message) (Result, error) {
	if c == nil {
		return Result{}, ErrNilClient
	}

	return c.dispatch(ctx, http.MethodPost, c.baseURL, buildPayload(msg), nil, nil)
}

// SendEmbed delivers a message consisting of a single rich embed. Build the
// embed with [NewEmbed] and its setters.
func (c *Client) SendEmbed(ctx context.Context, embed *Embed) (Result, error) {
	if c == nil {
		return Result{}, ErrNilClient
	}

	return c.SendMessage(ctx, Message{Embed: embed})
}

// SendFile uploads the file at path as a multipart attachment, along with
// the message's text fields as form data. The message embed is ignored on
// this path. A file that cannot be read fails immediately with a plain
// error and is never retried; the upload itself goes through the usual
// retry cycle on a dedicated session.
func (c *Client) SendFile(ctx context.Context, path string, msg Message) (Result, error) {
	if c == nil {
		return Result{}, ErrNilClient
	}

	if err := c.checkOpen(); err != nil {
		return Result{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read attachment: %w", err)
	}

	// Multipart uploads never share connection state with the JSON path.
	session := c.newSession()
	defer session.GetClient().CloseIdleConnections()

	fields := map[string]string{}
	if msg.Content != "" {
		fields["content"] = msg.Content
	}
	if msg.Username != "" {
		fields["username"] = msg.Username
	}
	if msg.AvatarURL != "" {
		fields["avatar_url"] = msg.AvatarURL
	}

	att := &attachment{name: filepath.Base(path), data: data}

	return c.dispatch(ctx, http.MethodPost, c.baseURL, fields, att, session)
}

// EditMessage rewrites a previously sent message in place.
func (c *Client) EditMessage(ctx context.Context, messageID string, msg Message) (Result, error) {
	if c == nil {
		return Result{}, ErrNilClient
	}

	return c.dispatch(ctx, http.MethodPatch, c.messageURL(messageID), buildPayload(msg), nil, nil)
}

// DeleteMessage removes a previously sent message.
func (c *Client) DeleteMessage(ctx context.Context, messageID string) (Result, error) {
	if c == nil {
		return Result{}, ErrNilClient
	}

	return c.dispatch(ctx, http.MethodDelete, c.messageURL(messageID), nil, nil, nil)
}

// Info fetches the webhook's own metadata (name, avatar, channel).
func (c *Client) Info(ctx context.Context) (Result, error) {
	if c == nil {
		return Result{}, ErrNilClient
	}

	return c.dispatch(ctx, http.MethodGet, c.baseURL, nil, nil, nil)
}

func (c *Client) messageURL(messageID string) string {
	return c.baseURL + "/messages/" + messageID
}
