package feed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"gag-stock-bot/internal/common/clock"
	"gag-stock-bot/internal/common/logger"
	stockservice "gag-stock-bot/internal/features/stock/service"
	"gag-stock-bot/internal/platform/messenger"
)

const greetingLayout = "3:04:05 PM, 1/2/2006"

// Greeter tells admins the feed is live when console logging is on.
type Greeter struct {
	users   stockservice.UserDirectory
	console stockservice.ConsoleFlag
	sender  messenger.Sender
	clock   *clock.Clock
	log     zerolog.Logger
}

func NewGreeter(users stockservice.UserDirectory, console stockservice.ConsoleFlag, sender messenger.Sender, clk *clock.Clock) *Greeter {
	return &Greeter{
		users:   users,
		console: console,
		sender:  sender,
		clock:   clk,
		log:     logger.With("feed"),
	}
}

// Message is the greeting text for the current time.
func (g *Greeter) Message() string {
	now := g.clock.Now()
	return fmt.Sprintf("🤖 Bot online at %s (%s)", now.Format(greetingLayout), clock.PartOfDay(now))
}

// Greet sends Message to every admin. It is a no-op while console is off.
func (g *Greeter) Greet(ctx context.Context) {
	enabled, err := g.console.ConsoleEnabled(ctx)
	if err != nil {
		g.log.Warn().Err(err).Msg("Console flag unavailable")
		return
	}
	if !enabled {
		return
	}
	admins, err := g.users.Admins(ctx)
	if err != nil {
		g.log.Warn().Err(err).Msg("Admin lookup failed")
		return
	}

	text := g.Message()
	for _, admin := range admins {
		if err := g.sender.Send(ctx, admin.ID, text); err != nil {
			g.log.Warn().Err(err).Str("user_id", admin.ID).Msg("Greeting not delivered")
		}
	}
}
