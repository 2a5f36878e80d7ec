package feed

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gag-stock-bot/internal/common/logger"
	"gag-stock-bot/internal/features/stock/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type recordingHandler struct {
	mu    sync.Mutex
	snaps []*models.Snapshot
	got   chan struct{}
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{got: make(chan struct{}, 16)}
}

func (h *recordingHandler) Handle(_ context.Context, snap *models.Snapshot) (bool, error) {
	h.mu.Lock()
	h.snaps = append(h.snaps, snap)
	h.mu.Unlock()
	h.got <- struct{}{}
	return true, nil
}

func (h *recordingHandler) snapshots() []*models.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*models.Snapshot(nil), h.snaps...)
}

func wsURL(srv *httptest.Server) string {
	return strings.Replace(srv.URL, "http", "ws", 1)
}

func TestListenerForwardsSuccessFrames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		frames := []string{
			`not json`,
			`{"status":"error","data":{"gear":{"items":[{"name":"Trowel","quantity":1}]}}}`,
			`{"status":"success"}`,
			`{"status":"success","data":{"gear":{"items":[{"name":"Watering Can","quantity":3}]},"seed":{"items":[]}}}`,
		}
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		// hold the connection until the client goes away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	handler := newRecordingHandler()
	l := NewListener(wsURL(srv), 10*time.Millisecond, handler)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()

	select {
	case <-handler.got:
	case <-time.After(5 * time.Second):
		t.Fatal("no snapshot forwarded")
	}
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop")
	}

	snaps := handler.snapshots()
	require.Len(t, snaps, 1)
	assert.Equal(t, []models.Item{{Name: "Watering Can", Quantity: 3}}, snaps[0].Gear.Items)
}

func TestListenerReconnects(t *testing.T) {
	var connects atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connects.Add(1)
		conn.Close()
	}))
	defer srv.Close()

	var greeted atomic.Int32
	l := NewListener(wsURL(srv), 10*time.Millisecond, newRecordingHandler())
	l.OnConnect(func(context.Context) { greeted.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = l.Run(ctx) }()

	assert.Eventually(t, func() bool { return connects.Load() >= 3 }, 5*time.Second, 10*time.Millisecond)
	assert.GreaterOrEqual(t, greeted.Load(), int32(2))
}

func TestListenerRetriesFailedDial(t *testing.T) {
	var dials atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dials.Add(1)
		http.Error(w, "no upgrade", http.StatusForbidden)
	}))
	defer srv.Close()

	var connected atomic.Int32
	l := NewListener(wsURL(srv), 5*time.Millisecond, newRecordingHandler())
	l.OnConnect(func(context.Context) { connected.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()

	assert.Eventually(t, func() bool { return dials.Load() >= 2 }, 5*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop")
	}
	assert.Zero(t, connected.Load())
}

func TestUndecodableFrameLoggedAtInfoLevel(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "test", false)

	handler := newRecordingHandler()
	l := NewListener("ws://unused", time.Second, handler)
	l.handleFrame(context.Background(), []byte("{broken"))

	assert.Contains(t, buf.String(), "Undecodable feed frame ignored")
	assert.Empty(t, handler.snapshots())
}
