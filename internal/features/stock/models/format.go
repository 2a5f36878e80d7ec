package models

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatQty abbreviates large quantities: 1.5K, 2.3M.
func FormatQty(v int64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(v)/1e6)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK", float64(v)/1e3)
	default:
		return strconv.FormatInt(v, 10)
	}
}

// ItemLines renders "- name: xQTY" lines.
func ItemLines(items []Item) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("- %s: x%s", it.Name, FormatQty(it.Quantity)))
	}
	return strings.Join(lines, "\n")
}

// Digest is the message every stock subscriber receives.
func Digest(gear, seeds []Item, stamp string) string {
	return strings.Join([]string{
		"🛠️ Gear:",
		ItemLines(gear),
		"",
		"🌱 Seeds:",
		ItemLines(seeds),
		"",
		"📅 " + stamp,
	}, "\n")
}

// VIPAlert lists the watched items that are in stock.
func VIPAlert(matches []Item) string {
	return "🚨 VIP In Stock:\n" + ItemLines(matches)
}

// CurrentStock renders every category of s, skipping sold-out items.
func CurrentStock(s *Snapshot, stamp string) string {
	sections := s.Sections()
	blocks := make([]string, 0, len(sections))
	for _, sec := range sections {
		blocks = append(blocks, sec.Title+"\n"+ItemLines(Category{Items: sec.Items}.InStock()))
	}
	return "📦 Current Stock\n\n" + strings.Join(blocks, "\n\n") + "\n\n📅 As of: " + stamp
}
