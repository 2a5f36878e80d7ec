package service

import (
	"context"

	"gag-stock-bot/internal/features/command"
	usermodels "gag-stock-bot/internal/features/user/models"
	"gag-stock-bot/internal/features/webhook/models"
)

// Processor handles verified webhook envelopes.
type Processor interface {
	Process(ctx context.Context, env *models.Envelope)
}

// Users registers senders and finds admins.
type Users interface {
	EnsureRegistered(ctx context.Context, id string) (*usermodels.User, bool, error)
	GetUser(ctx context.Context, id string) (*usermodels.User, error)
	Admins(ctx context.Context) ([]*usermodels.User, error)
}

// Dispatcher runs commands found in message text.
type Dispatcher interface {
	Dispatch(ctx context.Context, callerID, text string) command.Kind
}

// ConsoleFlag reports whether admin mirroring is on.
type ConsoleFlag interface {
	ConsoleEnabled(ctx context.Context) (bool, error)
}
