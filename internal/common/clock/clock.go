// Package clock renders user-facing times in the bot's configured timezone.
package clock

import "time"

// StampLayout matches the en-US locale string, e.g. "10/19/2026, 3:04:05 PM".
const StampLayout = "1/2/2006, 3:04:05 PM"

type Clock struct {
	loc *time.Location
	now func() time.Time
}

func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{loc: loc, now: time.Now}
}

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time, loc *time.Location) *Clock {
	c := New(loc)
	c.now = func() time.Time { return t }
	return c
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Stamp is the localized date and time of Now.
func (c *Clock) Stamp() string {
	return c.Now().Format(StampLayout)
}

// PartOfDay buckets the local hour: Morning before 12:00, Afternoon before 18:00, else Evening.
func PartOfDay(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Morning"
	case h < 18:
		return "Afternoon"
	default:
		return "Evening"
	}
}
