package main

import (
	"gag-stock-bot/internal/app"
	"gag-stock-bot/internal/common/clock"
	"gag-stock-bot/internal/common/config"
	"gag-stock-bot/internal/features/command"
	"gag-stock-bot/internal/features/feed"
	settingsstore "gag-stock-bot/internal/features/settings/repository/store"
	stockservice "gag-stock-bot/internal/features/stock/service"
	substore "gag-stock-bot/internal/features/subscription/repository/store"
	userstore "gag-stock-bot/internal/features/user/repository/store"
	userservice "gag-stock-bot/internal/features/user/service"
	vipmodels "gag-stock-bot/internal/features/vip/models"
	vipstore "gag-stock-bot/internal/features/vip/repository/store"
	vipservice "gag-stock-bot/internal/features/vip/service"
	webhookhttp "gag-stock-bot/internal/features/webhook/delivery/http"
	webhookservice "gag-stock-bot/internal/features/webhook/service"
	"gag-stock-bot/internal/platform/messenger"
	"gag-stock-bot/internal/platform/storage"
)

// bot is the fully wired application.
type bot struct {
	cfg      *config.Config
	store    storage.Store
	app      *app.Context
	listener *feed.Listener
	webhook  *webhookhttp.WebhookHandler
}

func newBot(cfg *config.Config, store storage.Store, gw messenger.Gateway, clk *clock.Clock) *bot {
	appCtx := app.NewContext(clk)

	userRepo := userstore.NewUserRepository(store)
	vipRepo := vipstore.NewVIPRepository(store)
	subRepo := substore.NewSubscriberRepository(store)
	settingsRepo := settingsstore.NewSettingsRepository(store)

	users := userservice.NewUserService(userRepo, gw, clk, cfg.Messenger.AdminID)
	vip := vipservice.NewVIPService(vipRepo, vipmodels.DefaultCatalog())

	dispatcher := command.NewDispatcher(appCtx, users, vip, subRepo, settingsRepo, gw)
	processor := webhookservice.NewProcessor(users, dispatcher, settingsRepo, gw)

	pipeline := stockservice.NewPipeline(appCtx.Stock, users, vip, subRepo, settingsRepo, gw, clk)
	listener := feed.NewListener(cfg.Feed.URL, cfg.Feed.ReconnectDelay, pipeline)
	listener.OnConnect(feed.NewGreeter(users, settingsRepo, gw, clk).Greet)

	return &bot{
		cfg:      cfg,
		store:    store,
		app:      appCtx,
		listener: listener,
		webhook:  webhookhttp.NewWebhookHandler(processor, cfg.Messenger.VerifyToken),
	}
}
