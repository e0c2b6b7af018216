package model

import "fmt"

// Catalog is the ordered list of work items for a run
type Catalog struct {
	Items []WorkItem
}

// NewCatalog creates a catalog holding a copy of items
func NewCatalog(items []WorkItem) *Catalog {
	c := &Catalog{Items: make([]WorkItem, len(items))}
	copy(c.Items, items)
	return c
}

// Validate checks every item. Filenames must be unique within a catalog.
func (c *Catalog) Validate() error {
	if len(c.Items) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	seen := make(map[string]string, len(c.Items))
	for i, item := range c.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
		if prev, ok := seen[item.Filename]; ok {
			return fmt.Errorf("item %d: duplicate filename %s (also used by %s)", i+1, item.Filename, prev)
		}
		seen[item.Filename] = item.URL
	}
	return nil
}
