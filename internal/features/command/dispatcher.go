package command

import (
	"context"

	"github.com/rs/zerolog"

	"gag-stock-bot/internal/app"
	"gag-stock-bot/internal/common/logger"
	"gag-stock-bot/internal/common/metrics"
	usermodels "gag-stock-bot/internal/features/user/models"
	vipservice "gag-stock-bot/internal/features/vip/service"
	"gag-stock-bot/internal/platform/messenger"
)

const (
	replyAdminsOnly = "⛔ Admins only."
	replyFailed     = "⚠️ Something went wrong. Please try again."
)

// Request is a parsed command together with the caller resolved for it.
type Request struct {
	Command
	CallerID string
	Role     usermodels.Role
}

type handlerFunc func(d *Dispatcher, ctx context.Context, req Request) string

// route binds a command kind to the role it needs and the handler producing
// the reply. An empty role means any registered user.
type route struct {
	role   usermodels.Role
	handle handlerFunc
}

var routes = map[Kind]route{
	KindHelp:           {handle: (*Dispatcher).help},
	KindUptime:         {role: usermodels.RoleAdmin, handle: (*Dispatcher).uptime},
	KindBroadcast:      {role: usermodels.RoleAdmin, handle: (*Dispatcher).broadcast},
	KindConsoleOn:      {role: usermodels.RoleAdmin, handle: (*Dispatcher).consoleOn},
	KindConsoleOff:     {role: usermodels.RoleAdmin, handle: (*Dispatcher).consoleOff},
	KindConsoleUnknown: {role: usermodels.RoleAdmin, handle: fixed("❓ Unknown console command.")},
	KindVIPList:        {handle: (*Dispatcher).vipList},
	KindVIPSelect:      {handle: (*Dispatcher).vipSelect},
	KindVIPShow:        {handle: (*Dispatcher).vipShow},
	KindVIPDelete:      {handle: (*Dispatcher).vipDelete},
	KindVIPReset:       {handle: (*Dispatcher).vipReset},
	KindVIPUnknown:     {handle: fixed("❓ Unknown VIP command.")},
	KindStockOn:        {handle: (*Dispatcher).stockOn},
	KindStockOff:       {handle: (*Dispatcher).stockOff},
	KindStockShow:      {handle: (*Dispatcher).stockShow},
	KindStockUnknown:   {handle: fixed("❓ Unknown stock command.")},
	KindUsersShow:      {role: usermodels.RoleAdmin, handle: (*Dispatcher).usersShow},
}

func fixed(reply string) handlerFunc {
	return func(*Dispatcher, context.Context, Request) string { return reply }
}

// Dispatcher routes inbound texts to command handlers and sends at most one
// reply to the caller.
type Dispatcher struct {
	app      *app.Context
	users    Users
	vip      vipservice.VIPService
	subs     Subscriptions
	settings ConsoleSetter
	sender   messenger.Sender
	log      zerolog.Logger
}

func NewDispatcher(
	appCtx *app.Context,
	users Users,
	vip vipservice.VIPService,
	subs Subscriptions,
	settings ConsoleSetter,
	sender messenger.Sender,
) *Dispatcher {
	return &Dispatcher{
		app:      appCtx,
		users:    users,
		vip:      vip,
		subs:     subs,
		settings: settings,
		sender:   sender,
		log:      logger.With("command"),
	}
}

// Dispatch parses text and runs the matching handler for callerID. Texts
// that are not commands are ignored. It returns the parsed kind.
func (d *Dispatcher) Dispatch(ctx context.Context, callerID, text string) Kind {
	cmd := Parse(text)
	r, ok := routes[cmd.Kind]
	if !ok {
		return cmd.Kind
	}
	metrics.CommandsTotal.WithLabelValues(cmd.Kind.String()).Inc()

	req := Request{Command: cmd, CallerID: callerID, Role: d.users.Role(ctx, callerID)}
	if r.role == usermodels.RoleAdmin && req.Role != usermodels.RoleAdmin {
		metrics.CommandsDenied.Inc()
		d.log.Info().Str("user_id", callerID).Str("command", cmd.Kind.String()).Msg("Admin command refused")
		d.reply(ctx, callerID, replyAdminsOnly)
		return cmd.Kind
	}

	if reply := r.handle(d, ctx, req); reply != "" {
		d.reply(ctx, callerID, reply)
	}
	return cmd.Kind
}

func (d *Dispatcher) reply(ctx context.Context, id, text string) {
	if err := d.sender.Send(ctx, id, text); err != nil {
		d.log.Warn().Err(err).Str("user_id", id).Msg("Reply not delivered")
	}
}

// failed logs err and returns the generic failure reply.
func (d *Dispatcher) failed(req Request, err error) string {
	d.log.Error().Err(err).Str("user_id", req.CallerID).Str("command", req.Kind.String()).Msg("Command failed")
	return replyFailed
}
