// Package feed keeps a websocket subscription to the stock feed open and
// hands every successful snapshot to the stock pipeline.
package feed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	apperrors "gag-stock-bot/internal/common/errors"
	"gag-stock-bot/internal/common/logger"
	"gag-stock-bot/internal/common/metrics"
	"gag-stock-bot/internal/features/stock/models"
)

// SnapshotHandler consumes decoded snapshots.
type SnapshotHandler interface {
	Handle(ctx context.Context, snap *models.Snapshot) (bool, error)
}

// Listener owns the feed connection. After any close or error it waits a
// fixed delay and dials again until its context ends.
type Listener struct {
	url       string
	delay     time.Duration
	dialer    websocket.Dialer
	handler   SnapshotHandler
	onConnect func(ctx context.Context)
	log       zerolog.Logger
}

func NewListener(url string, delay time.Duration, handler SnapshotHandler) *Listener {
	return &Listener{
		url:     url,
		delay:   delay,
		dialer:  websocket.Dialer{HandshakeTimeout: 15 * time.Second},
		handler: handler,
		log:     logger.With("feed"),
	}
}

// OnConnect registers fn to run after every successful dial.
func (l *Listener) OnConnect(fn func(ctx context.Context)) {
	l.onConnect = fn
}

// Run blocks until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	for {
		err := l.session(ctx)
		if ctx.Err() != nil {
			l.log.Info().Msg("Feed listener stopped")
			return nil
		}
		l.log.Warn().Err(err).Dur("retry_in", l.delay).Msg("Feed disconnected")

		select {
		case <-ctx.Done():
			l.log.Info().Msg("Feed listener stopped")
			return nil
		case <-time.After(l.delay):
		}
	}
}

// session dials once and reads frames until the connection ends.
func (l *Listener) session(ctx context.Context) error {
	conn, _, err := l.dialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return apperrors.NewFeedError("dial", err)
	}
	defer conn.Close()

	metrics.FeedConnects.Inc()
	l.log.Info().Str("url", l.url).Msg("Feed connected")
	if l.onConnect != nil {
		l.onConnect(ctx)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			return apperrors.NewFeedError("read", err)
		}
		l.handleFrame(ctx, frame)
	}
}

func (l *Listener) handleFrame(ctx context.Context, frame []byte) {
	var msg models.FeedMessage
	if err := json.Unmarshal(frame, &msg); err != nil {
		metrics.FeedDecodeErrors.Inc()
		l.log.Warn().Err(err).Msg("Undecodable feed frame ignored")
		return
	}
	if msg.Status != models.StatusSuccess || msg.Data == nil {
		return
	}
	if _, err := l.handler.Handle(ctx, msg.Data); err != nil {
		l.log.Error().Err(err).Msg("Stock dispatch failed")
	}
}
