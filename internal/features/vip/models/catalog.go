package models

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var catalogTOML string

// CatalogItem is one watchable item.
type CatalogItem struct {
	Name  string `toml:"name"`
	Emoji string `toml:"emoji"`
}

// Catalog is the fixed, ordered list of items a VIP selection may contain.
type Catalog struct {
	items  []CatalogItem
	emojis map[string]string
}

// ParseCatalog decodes a TOML document with [[item]] tables.
func ParseCatalog(doc string) (*Catalog, error) {
	var raw struct {
		Item []CatalogItem `toml:"item"`
	}
	if _, err := toml.Decode(doc, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(raw.Item) == 0 {
		return nil, fmt.Errorf("catalog has no items")
	}

	c := &Catalog{items: raw.Item, emojis: make(map[string]string, len(raw.Item))}
	for _, it := range raw.Item {
		if _, dup := c.emojis[it.Name]; dup {
			return nil, fmt.Errorf("catalog item %q listed twice", it.Name)
		}
		c.emojis[it.Name] = it.Emoji
	}
	return c, nil
}

var defaultCatalog = func() *Catalog {
	c, err := ParseCatalog(catalogTOML)
	if err != nil {
		panic(err)
	}
	return c
}()

// DefaultCatalog is the embedded 19-item catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the item at a 1-based position.
func (c *Catalog) At(position int) (CatalogItem, bool) {
	if position < 1 || position > len(c.items) {
		return CatalogItem{}, false
	}
	return c.items[position-1], true
}

func (c *Catalog) Items() []CatalogItem {
	return append([]CatalogItem(nil), c.items...)
}

// Emoji returns the item's emoji or "" for names outside the catalog.
func (c *Catalog) Emoji(name string) string {
	return c.emojis[name]
}
