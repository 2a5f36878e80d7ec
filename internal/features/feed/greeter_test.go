package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gag-stock-bot/internal/common/clock"
	settingsstore "gag-stock-bot/internal/features/settings/repository/store"
	usermodels "gag-stock-bot/internal/features/user/models"
	userstore "gag-stock-bot/internal/features/user/repository/store"
	userservice "gag-stock-bot/internal/features/user/service"
	"gag-stock-bot/internal/platform/messenger/messengertest"
	"gag-stock-bot/internal/platform/storage"
)

func TestGreeterRespectsConsoleFlag(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	rec := messengertest.New()
	clk := clock.Fixed(time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC), time.UTC)

	repo := userstore.NewUserRepository(store)
	_, err := repo.CreateIfAbsent(ctx, &usermodels.User{ID: "1", Name: "Boss", Role: usermodels.RoleAdmin})
	require.NoError(t, err)
	_, err = repo.CreateIfAbsent(ctx, &usermodels.User{ID: "2", Name: "Juan", Role: usermodels.RoleMember})
	require.NoError(t, err)

	settings := settingsstore.NewSettingsRepository(store)
	g := NewGreeter(userservice.NewUserService(repo, rec, clk, "1"), settings, rec, clk)

	g.Greet(ctx)
	assert.Empty(t, rec.Sent())

	require.NoError(t, settings.SetConsole(ctx, true))
	g.Greet(ctx)
	assert.Equal(t, []string{"🤖 Bot online at 3:04:05 PM, 10/19/2026 (Afternoon)"}, rec.To("1"))
	assert.Empty(t, rec.To("2"))
}
