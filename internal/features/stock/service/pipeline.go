package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"gag-stock-bot/internal/common/clock"
	"gag-stock-bot/internal/common/logger"
	"gag-stock-bot/internal/common/metrics"
	"gag-stock-bot/internal/features/stock/models"
	"gag-stock-bot/internal/platform/messenger"
)

// Pipeline turns feed snapshots into VIP alerts, subscriber digests and an
// admin log. Handle calls are serialized; one dispatch pass runs at a time.
type Pipeline struct {
	mu          sync.Mutex
	state       *models.State
	users       UserDirectory
	vip         VIPSource
	subscribers SubscriberSource
	console     ConsoleFlag
	sender      messenger.Sender
	clock       *clock.Clock
	log         zerolog.Logger
}

func NewPipeline(
	state *models.State,
	users UserDirectory,
	vip VIPSource,
	subscribers SubscriberSource,
	console ConsoleFlag,
	sender messenger.Sender,
	clk *clock.Clock,
) *Pipeline {
	return &Pipeline{
		state:       state,
		users:       users,
		vip:         vip,
		subscribers: subscribers,
		console:     console,
		sender:      sender,
		clock:       clk,
		log:         logger.With("stock"),
	}
}

// Handle accepts snap unless its in-stock gear and seeds match the previous
// snapshot, then dispatches. It reports whether a dispatch pass ran; the
// error joins the failures of individual stages.
func (p *Pipeline) Handle(ctx context.Context, snap *models.Snapshot) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	gear := snap.Gear.InStock()
	seeds := snap.Seed.InStock()

	if !p.state.Accept(snap, models.Fingerprint(gear, seeds)) {
		metrics.StockUpdatesDuplicate.Inc()
		p.log.Debug().Msg("Duplicate stock snapshot dropped")
		return false, nil
	}
	metrics.StockUpdatesAccepted.Inc()

	stamp := p.clock.Stamp()
	p.log.Info().Int("gear", len(gear)).Int("seeds", len(seeds)).Msg("Stock update accepted")

	var report strings.Builder
	fmt.Fprintf(&report, "📦 Stock Update @ %s\n", stamp)

	// stages are independent; a failed one is logged and the rest still run
	var errs []error
	if err := p.sendVIPAlerts(ctx, append(append([]models.Item{}, gear...), seeds...), &report); err != nil {
		p.log.Error().Err(err).Msg("VIP alerts skipped")
		errs = append(errs, err)
	}
	if err := p.sendDigests(ctx, models.Digest(gear, seeds, stamp)); err != nil {
		p.log.Error().Err(err).Msg("Stock digests skipped")
		errs = append(errs, err)
	}
	if err := p.sendReport(ctx, report.String()); err != nil {
		p.log.Error().Err(err).Msg("Admin stock report skipped")
		errs = append(errs, err)
	}
	return true, errors.Join(errs...)
}

func (p *Pipeline) sendVIPAlerts(ctx context.Context, stocked []models.Item, report *strings.Builder) error {
	selections, err := p.vip.All(ctx)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(selections))
	for id := range selections {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		matches := matchVIP(stocked, selections[id])
		if len(matches) == 0 {
			continue
		}
		p.send(ctx, id, models.VIPAlert(matches))
		fmt.Fprintf(report, "👤 %s: %d VIP(s)\n", p.displayName(ctx, id), len(matches))
	}
	return nil
}

func (p *Pipeline) sendDigests(ctx context.Context, digest string) error {
	ids, err := p.subscribers.List(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		p.send(ctx, id, digest)
	}
	return nil
}

func (p *Pipeline) sendReport(ctx context.Context, report string) error {
	enabled, err := p.console.ConsoleEnabled(ctx)
	if err != nil || !enabled {
		return err
	}
	admins, err := p.users.Admins(ctx)
	if err != nil {
		return err
	}
	for _, admin := range admins {
		p.send(ctx, admin.ID, report)
	}
	return nil
}

func (p *Pipeline) send(ctx context.Context, id, text string) {
	if err := p.sender.Send(ctx, id, text); err != nil {
		p.log.Warn().Err(err).Str("recipient", id).Msg("Stock message not delivered")
	}
}

// displayName falls back to the raw id for users missing from the store.
func (p *Pipeline) displayName(ctx context.Context, id string) string {
	if u, err := p.users.GetUser(ctx, id); err == nil && u.Name != "" {
		return u.Name
	}
	return id
}

// matchVIP keeps the stocked items whose name is in selection, in feed order.
func matchVIP(stocked []models.Item, selection []string) []models.Item {
	if len(selection) == 0 {
		return nil
	}
	wanted := make(map[string]bool, len(selection))
	for _, name := range selection {
		wanted[name] = true
	}
	var matches []models.Item
	for _, it := range stocked {
		if wanted[it.Name] {
			matches = append(matches, it)
		}
	}
	return matches
}
