// Package app holds process-wide state created once at startup.
package app

import (
	"fmt"
	"time"

	"gag-stock-bot/internal/common/clock"
	stockmodels "gag-stock-bot/internal/features/stock/models"
)

// Context is passed to every handler that needs process-level state.
type Context struct {
	StartedAt time.Time
	Clock     *clock.Clock
	Stock     *stockmodels.State
}

func NewContext(clk *clock.Clock) *Context {
	return &Context{
		StartedAt: clk.Now(),
		Clock:     clk,
		Stock:     stockmodels.NewState(),
	}
}

// Uptime is the elapsed process time.
func (c *Context) Uptime() time.Duration {
	return c.Clock.Now().Sub(c.StartedAt)
}

// FormatUptime renders d as "1h 2m 3s".
func FormatUptime(d time.Duration) string {
	s := int64(d / time.Second)
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%dh %dm %ds", s/3600, (s%3600)/60, s%60)
}
