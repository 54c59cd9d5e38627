package domain

import "time"

// ShoppingItem is an entry on the user's list. Category holds the primary
// canonical category; Categories holds every category the item maps to
// (e.g. propane is sold at both hardware stores and service stations).
type ShoppingItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Categories []string  `json:"categories,omitempty"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"created_at"`
}

// CategoryIDs returns every canonical category the item belongs to.
func (i ShoppingItem) CategoryIDs() []string {
	if len(i.Categories) > 0 {
		return i.Categories
	}
	if i.Category != "" {
		return []string{i.Category}
	}
	return nil
}
