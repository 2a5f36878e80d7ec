package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gag-stock-bot/internal/app"
	stockmodels "gag-stock-bot/internal/features/stock/models"
	usermodels "gag-stock-bot/internal/features/user/models"
	vipservice "gag-stock-bot/internal/features/vip/service"
)

const (
	helpMember = "🆘 Commands:\n" +
		"/vip -list\n" +
		"/vip #1,#2\n" +
		"/vip -show\n" +
		"/vip -delete #1,#2\n" +
		"/vip -reset\n" +
		"/stock -on\n" +
		"/stock -off\n" +
		"/stock"
	helpAdmin = "\n\n👑 Admin:\n" +
		"/uptime\n" +
		"/console -on\n" +
		"/console -off\n" +
		"/broadcast <msg>\n" +
		"/dt -show"
)

func (d *Dispatcher) help(_ context.Context, req Request) string {
	if req.Role == usermodels.RoleAdmin {
		return helpMember + helpAdmin
	}
	return helpMember
}

func (d *Dispatcher) uptime(context.Context, Request) string {
	return "⏱️ Bot uptime: " + app.FormatUptime(d.app.Uptime())
}

func (d *Dispatcher) broadcast(ctx context.Context, req Request) string {
	if req.Message == "" {
		return "⚠️ Provide a message to broadcast."
	}
	users, err := d.users.List(ctx)
	if err != nil {
		return d.failed(req, err)
	}

	text := "📢 Admin Broadcast:\n\n" + req.Message
	delivered := 0
	for _, u := range users {
		if err := d.sender.Send(ctx, u.ID, text); err != nil {
			d.log.Warn().Err(err).Str("user_id", u.ID).Msg("Broadcast not delivered")
			continue
		}
		delivered++
	}
	d.log.Info().Int("delivered", delivered).Int("users", len(users)).Msg("Broadcast sent")
	return fmt.Sprintf("✅ Broadcast delivered to %d users ✅", delivered)
}

func (d *Dispatcher) consoleOn(ctx context.Context, req Request) string {
	if err := d.settings.SetConsole(ctx, true); err != nil {
		return d.failed(req, err)
	}
	return "📢 Console logging is ON."
}

func (d *Dispatcher) consoleOff(ctx context.Context, req Request) string {
	if err := d.settings.SetConsole(ctx, false); err != nil {
		return d.failed(req, err)
	}
	return "🔇 Console logging is OFF."
}

func (d *Dispatcher) vipList(context.Context, Request) string {
	items := d.vip.Catalog().Items()
	lines := make([]string, 0, len(items))
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("#%d %s", i+1, it.Name))
	}
	return "📋 VIP List:\n" + strings.Join(lines, "\n")
}

func (d *Dispatcher) vipSelect(ctx context.Context, req Request) string {
	selected, err := d.vip.Select(ctx, req.CallerID, req.Positions)
	if errors.Is(err, vipservice.ErrEmptySelection) {
		return "⚠️ Invalid."
	}
	if err != nil {
		return d.failed(req, err)
	}

	lines := make([]string, 0, len(selected))
	for _, name := range selected {
		lines = append(lines, "- "+d.label(name))
	}
	return "✅ VIP Set:\n" + strings.Join(lines, "\n")
}

func (d *Dispatcher) vipShow(ctx context.Context, req Request) string {
	selection, err := d.vip.Selection(ctx, req.CallerID)
	if err != nil {
		return d.failed(req, err)
	}
	if len(selection) == 0 {
		return "📭 No VIP items selected."
	}
	return "📬 Your VIP Items:\n" + d.numbered(selection)
}

func (d *Dispatcher) vipDelete(ctx context.Context, req Request) string {
	remaining, err := d.vip.Remove(ctx, req.CallerID, req.Positions)
	if errors.Is(err, vipservice.ErrNoSelection) {
		return "📭 No VIP items to delete."
	}
	if err != nil {
		return d.failed(req, err)
	}
	if len(remaining) == 0 {
		return "🗑️ Updated VIP Items:\n📭 Empty"
	}
	return "🗑️ Updated VIP Items:\n" + d.numbered(remaining)
}

func (d *Dispatcher) vipReset(ctx context.Context, req Request) string {
	if err := d.vip.Reset(ctx, req.CallerID); err != nil {
		return d.failed(req, err)
	}
	return "🗑️ VIP cleared."
}

func (d *Dispatcher) stockOn(ctx context.Context, req Request) string {
	if err := d.subs.Add(ctx, req.CallerID); err != nil {
		return d.failed(req, err)
	}
	reply := "✅ Stock updates enabled."
	if snap, ok := d.app.Stock.Snapshot(); ok {
		reply += "\n\n" + stockmodels.CurrentStock(snap, d.app.Clock.Stamp())
	}
	return reply
}

func (d *Dispatcher) stockOff(ctx context.Context, req Request) string {
	if err := d.subs.Remove(ctx, req.CallerID); err != nil {
		return d.failed(req, err)
	}
	return "❌ Stock updates disabled."
}

func (d *Dispatcher) stockShow(context.Context, Request) string {
	snap, ok := d.app.Stock.Snapshot()
	if !ok {
		return "⏳ Waiting for stock data..."
	}
	return stockmodels.CurrentStock(snap, d.app.Clock.Stamp())
}

func (d *Dispatcher) usersShow(ctx context.Context, req Request) string {
	users, err := d.users.List(ctx)
	if err != nil {
		return d.failed(req, err)
	}
	if len(users) == 0 {
		return "📭 No users found in the database."
	}
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, fmt.Sprintf("👤 %s (%s)", u.Name, u.ID))
	}
	return "📋 All Registered Users:\n\n" + strings.Join(lines, "\n")
}

// label prefixes name with its catalog emoji when it has one.
func (d *Dispatcher) label(name string) string {
	if emoji := d.vip.Catalog().Emoji(name); emoji != "" {
		return emoji + " " + name
	}
	return name
}

func (d *Dispatcher) numbered(names []string) string {
	lines := make([]string, 0, len(names))
	for i, name := range names {
		lines = append(lines, fmt.Sprintf("#%d %s", i+1, d.label(name)))
	}
	return strings.Join(lines, "\n")
}
