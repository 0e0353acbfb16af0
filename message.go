package webhook

// Message is an outgoing webhook message. All fields are optional; unset
// fields are omitted from the wire payload. At most one embed can be
// attached per message.
type Message struct {
	// Content is the plain-text body of the message.
	Content string

	// Username overrides the webhook's default display name.
	Username string

	// AvatarURL overrides the webhook's default avatar image.
	AvatarURL string

	// Embed is an optional rich embed sent with the message.
	Embed *Embed
}

// Embed is a rich, structured message attachment.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Image       *EmbedMedia  `json:"image,omitempty"`
	Thumbnail   *EmbedMedia  `json:"thumbnail,omitempty"`
}

// EmbedField is a single name/value entry in an embed. Fields render in the
// order they were added.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// EmbedFooter is the footer text of an embed.
type EmbedFooter struct {
	Text string `json:"text"`
}

// EmbedMedia wraps the URL of an embed image or thumbnail.
type EmbedMedia struct {
	URL string `json:"url"`
}

// NewEmbed returns an embed with the given title and description, a color of
// 0 (black), and an empty field list. Optional parts are added with the
// chainable setters.
func NewEmbed(title, description string) *Embed {
	return &Embed{
		Title:       title,
		Description: description,
		Fields:      []EmbedField{},
	}
}

// SetColor sets the accent color as a 24-bit RGB integer.
func (e *Embed) SetColor(color int) *Embed {
	e.Color = color
	return e
}

// AddField appends a name/value field to the embed.
func (e *Embed) AddField(name, value string, inline bool) *Embed {
	e.Fields = append(e.Fields, EmbedField{Name: name, Value: value, Inline: inline})
	return e
}

// SetFooter sets the footer text.
func (e *Embed) SetFooter(text string) *Embed {
	e.Footer = &EmbedFooter{Text: text}
	return e
}

// SetImage sets the large image URL.
func (e *Embed) SetImage(url string) *Embed {
	e.Image = &EmbedMedia{URL: url}
	return e
}

// SetThumbnail sets the thumbnail image URL.
func (e *Embed) SetThumbnail(url string) *Embed {
	e.Thumbnail = &EmbedMedia{URL: url}
	return e
}
