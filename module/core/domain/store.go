package domain

// Store is a read-only snapshot of a nearby business from the store
// directory. CategoryTags are free-text tags as the directory reports them
// (e.g. "supermarkets", "drugstores"); they are not canonical categories.
type Store struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Coordinates  Coordinate `json:"coordinates"`
	CategoryTags []string   `json:"category_tags"`
	Address      string     `json:"address,omitempty"`
}
