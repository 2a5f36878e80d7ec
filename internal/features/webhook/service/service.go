package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"gag-stock-bot/internal/common/logger"
	"gag-stock-bot/internal/features/webhook/models"
	"gag-stock-bot/internal/platform/messenger"
)

const unknownMedia = "Unknown Media"

type processor struct {
	users      Users
	dispatcher Dispatcher
	mirror     *Mirror
	log        zerolog.Logger
}

func NewProcessor(users Users, dispatcher Dispatcher, console ConsoleFlag, sender messenger.Sender) Processor {
	return &processor{
		users:      users,
		dispatcher: dispatcher,
		mirror:     NewMirror(users, console, sender),
		log:        logger.With("webhook"),
	}
}

// Process handles every event of env in order, one at a time.
func (p *processor) Process(ctx context.Context, env *models.Envelope) {
	for _, entry := range env.Entry {
		for _, ev := range entry.Messaging {
			p.handleEvent(ctx, ev)
		}
	}
}

func (p *processor) handleEvent(ctx context.Context, ev models.Event) {
	id := ev.Sender.ID
	if id == "" {
		return
	}

	user, _, err := p.users.EnsureRegistered(ctx, id)
	if err != nil {
		p.log.Error().Err(err).Str("user_id", id).Msg("User registration failed")
	}
	if ev.Message == nil {
		return
	}

	if text := ev.Message.Text; text != "" {
		name, icon := messenger.FallbackName, "😎"
		if user != nil {
			name, icon = user.Name, user.Icon()
		}
		p.log.Info().Msgf("[%s] %s [%s]: %s", id, name, icon, text)

		p.dispatcher.Dispatch(ctx, id, text)
		p.mirror.Forward(ctx, id, text)
	}

	for _, a := range ev.Message.Attachments {
		p.mirror.Forward(ctx, id, describeAttachment(a))
	}
}

// describeAttachment renders "TYPE: url".
func describeAttachment(a models.Attachment) string {
	url := a.Payload.URL
	if url == "" {
		url = unknownMedia
	}
	return fmt.Sprintf("%s: %s", strings.ToUpper(a.Type), url)
}
