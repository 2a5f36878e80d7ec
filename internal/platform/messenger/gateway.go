package messenger

import "context"

// Sender delivers text messages. Implementations are best-effort: callers log
// and drop the returned error.
type Sender interface {
	Send(ctx context.Context, id, text string) error
}

// Gateway is a Sender that can also resolve display names.
type Gateway interface {
	Sender
	UserName(ctx context.Context, id string) string
}

var _ Gateway = (*Client)(nil)
