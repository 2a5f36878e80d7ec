// Package messengertest provides an in-memory messenger.Gateway for tests.
package messengertest

import (
	"context"
	"errors"
	"sync"

	"gag-stock-bot/internal/platform/messenger"
)

// ErrSendFailed is returned for recipients listed in Recorder.Fail.
var ErrSendFailed = errors.New("send failed")

type Message struct {
	To   string
	Text string
}

// Recorder captures outbound messages instead of sending them.
type Recorder struct {
	mu    sync.Mutex
	sent  []Message
	Names map[string]string
	Fail  map[string]bool
}

func New() *Recorder {
	return &Recorder{Names: map[string]string{}, Fail: map[string]bool{}}
}

func (r *Recorder) Send(_ context.Context, id, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail[id] {
		return ErrSendFailed
	}
	r.sent = append(r.sent, Message{To: id, Text: text})
	return nil
}

func (r *Recorder) UserName(_ context.Context, id string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if name, ok := r.Names[id]; ok {
		return name
	}
	return messenger.FallbackName
}

// Sent returns a copy of every delivered message in order.
func (r *Recorder) Sent() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.sent...)
}

// To returns the texts delivered to id.
func (r *Recorder) To(id string) []string {
	var out []string
	for _, m := range r.Sent() {
		if m.To == id {
			out = append(out, m.Text)
		}
	}
	return out
}

// Reset forgets every recorded message.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
}

var _ messenger.Gateway = (*Recorder)(nil)
