package models

import "encoding/json"

// Item is one stocked entry as reported by the feed.
type Item struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// Category is a named shop section.
type Category struct {
	Items []Item `json:"items"`
}

// InStock returns the items with a positive quantity. The result is never nil.
func (c Category) InStock() []Item {
	out := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		if it.Quantity > 0 {
			out = append(out, it)
		}
	}
	return out
}

// Snapshot is one full feed payload.
type Snapshot struct {
	Gear      Category `json:"gear"`
	Seed      Category `json:"seed"`
	Egg       Category `json:"egg"`
	Honey     Category `json:"honey"`
	Cosmetics Category `json:"cosmetics"`
}

// Section is a titled category used when rendering a snapshot.
type Section struct {
	Title string
	Items []Item
}

// Sections lists every category in display order.
func (s *Snapshot) Sections() []Section {
	return []Section{
		{Title: "Gear", Items: s.Gear.Items},
		{Title: "Seeds", Items: s.Seed.Items},
		{Title: "Eggs", Items: s.Egg.Items},
		{Title: "Honey", Items: s.Honey.Items},
		{Title: "Cosmetics", Items: s.Cosmetics.Items},
	}
}

// FeedMessage is the {status, data} envelope of a feed frame.
type FeedMessage struct {
	Status string    `json:"status"`
	Data   *Snapshot `json:"data"`
}

const StatusSuccess = "success"

// Fingerprint serializes the in-stock gear and seeds. Two snapshots with the
// same fingerprint are the same update; other categories never contribute.
func Fingerprint(gear, seeds []Item) string {
	key := struct {
		Gear  []Item `json:"gear"`
		Seeds []Item `json:"seeds"`
	}{Gear: gear, Seeds: seeds}
	if key.Gear == nil {
		key.Gear = []Item{}
	}
	if key.Seeds == nil {
		key.Seeds = []Item{}
	}
	raw, _ := json.Marshal(key)
	return string(raw)
}
