package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gag-stock-bot/internal/common/clock"
	"gag-stock-bot/internal/features/command"
	settingsrepo "gag-stock-bot/internal/features/settings/repository"
	settingsstore "gag-stock-bot/internal/features/settings/repository/store"
	usermodels "gag-stock-bot/internal/features/user/models"
	userstore "gag-stock-bot/internal/features/user/repository/store"
	userservice "gag-stock-bot/internal/features/user/service"
	"gag-stock-bot/internal/features/webhook/models"
	"gag-stock-bot/internal/platform/messenger/messengertest"
	"gag-stock-bot/internal/platform/storage"
)

const adminID = "1"

type dispatchCall struct {
	id   string
	text string
}

type fakeDispatcher struct {
	mu    sync.Mutex
	calls []dispatchCall
}

func (f *fakeDispatcher) Dispatch(_ context.Context, id, text string) command.Kind {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, dispatchCall{id: id, text: text})
	return command.Parse(text).Kind
}

type fixture struct {
	ctx        context.Context
	processor  Processor
	dispatcher *fakeDispatcher
	rec        *messengertest.Recorder
	settings   settingsrepo.SettingsRepository
	users      userservice.UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemoryStore()
	rec := messengertest.New()
	rec.Names["2"] = "Juan"
	clk := clock.Fixed(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), time.UTC)

	repo := userstore.NewUserRepository(store)
	_, err := repo.CreateIfAbsent(ctx, &usermodels.User{ID: adminID, Name: "Boss", Role: usermodels.RoleAdmin})
	require.NoError(t, err)

	users := userservice.NewUserService(repo, rec, clk, adminID)
	settings := settingsstore.NewSettingsRepository(store)
	dispatcher := &fakeDispatcher{}
	return &fixture{
		ctx:        ctx,
		processor:  NewProcessor(users, dispatcher, settings, rec),
		dispatcher: dispatcher,
		rec:        rec,
		settings:   settings,
		users:      users,
	}
}

func textEvent(id, text string) models.Event {
	return models.Event{Sender: models.Party{ID: id}, Message: &models.Message{Text: text}}
}

func envelope(events ...models.Event) *models.Envelope {
	return &models.Envelope{Object: models.ObjectPage, Entry: []models.Entry{{Messaging: events}}}
}

func TestFirstContactRegistersAndDispatches(t *testing.T) {
	f := newFixture(t)

	f.processor.Process(f.ctx, envelope(textEvent("2", "/help")))

	user, err := f.users.GetUser(f.ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Juan", user.Name)
	assert.Equal(t, usermodels.RoleMember, user.Role)

	welcome := f.rec.To("2")
	require.Len(t, welcome, 1)
	assert.Contains(t, welcome[0], "👋 Hello Juan!")
	assert.Equal(t, []string{"📥 New user detected: Juan (2)"}, f.rec.To(adminID))
	assert.Equal(t, []dispatchCall{{id: "2", text: "/help"}}, f.dispatcher.calls)
}

func TestMirrorWhenConsoleOn(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.settings.SetConsole(f.ctx, true))

	f.processor.Process(f.ctx, envelope(textEvent("2", "hi")))
	f.rec.Reset()

	ev := textEvent("2", "hello")
	ev.Message.Attachments = []models.Attachment{
		{Type: "image", Payload: models.AttachmentPayload{URL: "https://cdn/x.png"}},
		{Type: "sticker"},
	}
	f.processor.Process(f.ctx, envelope(ev))

	assert.Equal(t, []string{
		"[2] [Juan] [😎]: hello",
		"[2] [Juan] [😎]: IMAGE: https://cdn/x.png",
		"[2] [Juan] [😎]: STICKER: Unknown Media",
	}, f.rec.To(adminID))
}

func TestNoMirrorWhenConsoleOff(t *testing.T) {
	f := newFixture(t)

	f.processor.Process(f.ctx, envelope(textEvent(adminID, "hello")))
	assert.Empty(t, f.rec.Sent())
	assert.Len(t, f.dispatcher.calls, 1)
}

func TestEventsWithoutSenderOrMessage(t *testing.T) {
	f := newFixture(t)

	f.processor.Process(f.ctx, envelope(
		models.Event{Message: &models.Message{Text: "/help"}},
		models.Event{Sender: models.Party{ID: "3"}},
	))

	assert.Empty(t, f.dispatcher.calls)
	// a bare event still registers its sender
	_, err := f.users.GetUser(f.ctx, "3")
	assert.NoError(t, err)
}
