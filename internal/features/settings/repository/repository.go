package repository

import "context"

// SettingsRepository holds process-wide switches toggled by admins.
type SettingsRepository interface {
	// ConsoleEnabled reports whether user traffic is mirrored to admins.
	ConsoleEnabled(ctx context.Context) (bool, error)
	SetConsole(ctx context.Context, enabled bool) error
}
