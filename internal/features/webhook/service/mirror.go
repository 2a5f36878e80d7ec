package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"gag-stock-bot/internal/common/logger"
	"gag-stock-bot/internal/platform/messenger"
)

// Mirror copies user activity to every admin while console logging is on.
type Mirror struct {
	users   Users
	console ConsoleFlag
	sender  messenger.Sender
	log     zerolog.Logger
}

func NewMirror(users Users, console ConsoleFlag, sender messenger.Sender) *Mirror {
	return &Mirror{users: users, console: console, sender: sender, log: logger.With("console")}
}

// Forward sends "[id] [name] [icon]: msg" to the admins. Unknown users are skipped.
func (m *Mirror) Forward(ctx context.Context, id, msg string) {
	enabled, err := m.console.ConsoleEnabled(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("Console flag unavailable")
		return
	}
	if !enabled {
		return
	}

	user, err := m.users.GetUser(ctx, id)
	if err != nil {
		return
	}
	admins, err := m.users.Admins(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("Admin lookup failed")
		return
	}

	line := fmt.Sprintf("[%s] [%s] [%s]: %s", id, user.Name, user.Icon(), msg)
	for _, admin := range admins {
		if err := m.sender.Send(ctx, admin.ID, line); err != nil {
			m.log.Warn().Err(err).Str("user_id", admin.ID).Msg("Console line not delivered")
		}
	}
}
