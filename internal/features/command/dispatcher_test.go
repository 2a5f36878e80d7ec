package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gag-stock-bot/internal/app"
	"gag-stock-bot/internal/common/clock"
	settingsrepo "gag-stock-bot/internal/features/settings/repository"
	settingsstore "gag-stock-bot/internal/features/settings/repository/store"
	stockmodels "gag-stock-bot/internal/features/stock/models"
	subrepo "gag-stock-bot/internal/features/subscription/repository"
	substore "gag-stock-bot/internal/features/subscription/repository/store"
	usermodels "gag-stock-bot/internal/features/user/models"
	userstore "gag-stock-bot/internal/features/user/repository/store"
	userservice "gag-stock-bot/internal/features/user/service"
	vipstore "gag-stock-bot/internal/features/vip/repository/store"
	vipservice "gag-stock-bot/internal/features/vip/service"
	"gag-stock-bot/internal/platform/messenger/messengertest"
	"gag-stock-bot/internal/platform/storage"
)

const (
	adminID  = "100"
	memberID = "200"
)

type fixture struct {
	ctx        context.Context
	dispatcher *Dispatcher
	rec        *messengertest.Recorder
	app        *app.Context
	vip        vipservice.VIPService
	subs       subrepo.SubscriberRepository
	settings   settingsrepo.SettingsRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemoryStore()
	rec := messengertest.New()
	clk := clock.Fixed(time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC), time.UTC)

	userRepo := userstore.NewUserRepository(store)
	for _, u := range []*usermodels.User{
		{ID: adminID, Name: "Boss", Role: usermodels.RoleAdmin},
		{ID: memberID, Name: "Juan", Role: usermodels.RoleMember},
	} {
		_, err := userRepo.CreateIfAbsent(ctx, u)
		require.NoError(t, err)
	}

	appCtx := app.NewContext(clk)
	vip := vipservice.NewVIPService(vipstore.NewVIPRepository(store), nil)
	subs := substore.NewSubscriberRepository(store)
	settings := settingsstore.NewSettingsRepository(store)
	users := userservice.NewUserService(userRepo, rec, clk, adminID)

	return &fixture{
		ctx:        ctx,
		dispatcher: NewDispatcher(appCtx, users, vip, subs, settings, rec),
		rec:        rec,
		app:        appCtx,
		vip:        vip,
		subs:       subs,
		settings:   settings,
	}
}

// send dispatches text from id and returns the replies it produced.
func (f *fixture) send(id, text string) []string {
	f.rec.Reset()
	f.dispatcher.Dispatch(f.ctx, id, text)
	return f.rec.To(id)
}

func TestHelpByRole(t *testing.T) {
	f := newFixture(t)

	member := f.send(memberID, "/help")
	require.Len(t, member, 1)
	assert.Contains(t, member[0], "/vip -list")
	assert.NotContains(t, member[0], "👑 Admin:")

	admin := f.send(adminID, "/help")
	require.Len(t, admin, 1)
	assert.Contains(t, admin[0], "👑 Admin:\n/uptime")
	assert.Contains(t, admin[0], "/broadcast <msg>")
}

func TestVIPSelectShowDelete(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []string{"✅ VIP Set:\n- 🛠️ Trowel\n- 🌊 Master Sprinkler"}, f.send(memberID, "/vip #2,#5"))
	assert.Equal(t, []string{"🗑️ Updated VIP Items:\n#1 🌊 Master Sprinkler"}, f.send(memberID, "/vip -delete #1"))
	assert.Equal(t, []string{"📬 Your VIP Items:\n#1 🌊 Master Sprinkler"}, f.send(memberID, "/vip -show"))
	assert.Equal(t, []string{"🗑️ Updated VIP Items:\n📭 Empty"}, f.send(memberID, "/vip -delete #1"))
}

func TestVIPResetThenShow(t *testing.T) {
	f := newFixture(t)

	f.send(memberID, "/vip #1")
	assert.Equal(t, []string{"🗑️ VIP cleared."}, f.send(memberID, "/vip -reset"))
	assert.Equal(t, []string{"📭 No VIP items selected."}, f.send(memberID, "/vip -show"))
	assert.Equal(t, []string{"📭 No VIP items to delete."}, f.send(memberID, "/vip -delete #1"))
}

func TestVIPInvalidSelectionKeepsPrevious(t *testing.T) {
	f := newFixture(t)

	f.send(memberID, "/vip #3")
	assert.Equal(t, []string{"⚠️ Invalid."}, f.send(memberID, "/vip #20,#0"))

	selection, err := f.vip.Selection(f.ctx, memberID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Basic Sprinkler"}, selection)
}

func TestVIPList(t *testing.T) {
	f := newFixture(t)

	replies := f.send(memberID, "/vip -list")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0], "📋 VIP List:\n#1 Watering Can\n#2 Trowel")
	assert.Contains(t, replies[0], "#19 Bell Pepper")
}

func TestAdminCommandsRefusedForMembers(t *testing.T) {
	f := newFixture(t)

	for _, text := range []string{"/uptime", "/console -on", "/console -x", "/broadcast hi", "/broadcast", "/dt -show"} {
		assert.Equal(t, []string{replyAdminsOnly}, f.send(memberID, text), text)
	}

	enabled, err := f.settings.ConsoleEnabled(f.ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.Empty(t, f.rec.To(adminID))
}

func TestConsoleToggle(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []string{"📢 Console logging is ON."}, f.send(adminID, "/console -on"))
	enabled, err := f.settings.ConsoleEnabled(f.ctx)
	require.NoError(t, err)
	assert.True(t, enabled)

	assert.Equal(t, []string{"🔇 Console logging is OFF."}, f.send(adminID, "/console -off"))
	assert.Equal(t, []string{"❓ Unknown console command."}, f.send(adminID, "/console"))
}

func TestBroadcast(t *testing.T) {
	f := newFixture(t)
	f.rec.Reset()

	f.dispatcher.Dispatch(f.ctx, adminID, "/broadcast Restock soon")

	assert.Equal(t, []string{"📢 Admin Broadcast:\n\nRestock soon"}, f.rec.To(memberID))
	admin := f.rec.To(adminID)
	require.Len(t, admin, 2)
	assert.Equal(t, "📢 Admin Broadcast:\n\nRestock soon", admin[0])
	assert.Equal(t, "✅ Broadcast delivered to 2 users ✅", admin[1])
}

func TestBroadcastCountsOnlyDelivered(t *testing.T) {
	f := newFixture(t)
	f.rec.Fail[memberID] = true

	replies := f.send(adminID, "/broadcast hi")
	require.Len(t, replies, 2)
	assert.Equal(t, "✅ Broadcast delivered to 1 users ✅", replies[1])
}

func TestBroadcastEmpty(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []string{"⚠️ Provide a message to broadcast."}, f.send(adminID, "/broadcast    "))
	assert.Equal(t, []string{"⚠️ Provide a message to broadcast."}, f.send(adminID, "/broadcast"))
	assert.Empty(t, f.rec.To(memberID))
}

func TestUptime(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []string{"⏱️ Bot uptime: 0h 0m 0s"}, f.send(adminID, "/uptime"))
}

func TestUsersShow(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []string{"📋 All Registered Users:\n\n👤 Boss (100)\n👤 Juan (200)"}, f.send(adminID, "/dt -show"))
}

func TestStockCommands(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []string{"⏳ Waiting for stock data..."}, f.send(memberID, "/stock"))
	assert.Equal(t, []string{"✅ Stock updates enabled."}, f.send(memberID, "/stock -on"))

	has, err := f.subs.Has(f.ctx, memberID)
	require.NoError(t, err)
	assert.True(t, has)

	snap := &stockmodels.Snapshot{
		Gear: stockmodels.Category{Items: []stockmodels.Item{{Name: "Trowel", Quantity: 2}}},
		Seed: stockmodels.Category{Items: []stockmodels.Item{{Name: "Carrot", Quantity: 0}}},
	}
	f.app.Stock.Accept(snap, "fp")

	on := f.send(memberID, "/stock -on")
	require.Len(t, on, 1)
	assert.Contains(t, on[0], "✅ Stock updates enabled.\n\n📦 Current Stock")
	assert.Contains(t, on[0], "- Trowel: x2")
	assert.NotContains(t, on[0], "Carrot")

	show := f.send(memberID, "/stock")
	require.Len(t, show, 1)
	assert.Contains(t, show[0], "📅 As of: 10/19/2026, 3:04:05 PM")

	assert.Equal(t, []string{"❌ Stock updates disabled."}, f.send(memberID, "/stock -off"))
	has, err = f.subs.Has(f.ctx, memberID)
	require.NoError(t, err)
	assert.False(t, has)

	assert.Equal(t, []string{"❓ Unknown stock command."}, f.send(memberID, "/stock -x"))
}

func TestNonCommandIgnored(t *testing.T) {
	f := newFixture(t)

	assert.Empty(t, f.send(memberID, "hello there"))
	assert.Equal(t, []string{"❓ Unknown VIP command."}, f.send(memberID, "/vip what"))
}
