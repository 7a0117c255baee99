// Package directory holds the brand directory: categories of Vietnamese
// brands, either flat lists or one level of named groups, and the pure
// selection filter used to decide which categories a page shows.
package directory

import (
	"errors"
	"fmt"
	"strings"
)

// Directory is an immutable, ordered set of categories.
type Directory struct {
	categories []Category
	index      map[string]int
}

// New validates and builds a directory. Category ids must be non-empty and
// unique; group ids must be non-empty and unique within their category.
func New(categories ...Category) (*Directory, error) {
	d := &Directory{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for _, category := range categories {
		id := strings.TrimSpace(category.ID)
		if id == "" {
			return nil, errors.New("category id is required")
		}
		if id != category.ID {
			return nil, fmt.Errorf("category id %q has surrounding whitespace", category.ID)
		}
		if _, exists := d.index[id]; exists {
			return nil, fmt.Errorf("duplicate category id %q", id)
		}
		switch category.Kind() {
		case KindFlat:
		case KindGrouped:
			if err := validateGroups(category); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("category %q has no body", id)
		}
		d.index[id] = len(d.categories)
		d.categories = append(d.categories, category)
	}
	return d, nil
}

func validateGroups(category Category) error {
	seen := make(map[string]struct{}, len(category.groups))
	for _, group := range category.groups {
		id := strings.TrimSpace(group.ID)
		if id == "" {
			return fmt.Errorf("category %q: group id is required", category.ID)
		}
		if _, exists := seen[id]; exists {
			return fmt.Errorf("category %q: duplicate group id %q", category.ID, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Categories returns the categories in declaration order.
func (d *Directory) Categories() []Category {
	if d == nil {
		return nil
	}
	out := make([]Category, len(d.categories))
	copy(out, d.categories)
	return out
}

// Lookup finds a category by id.
func (d *Directory) Lookup(id string) (Category, bool) {
	if d == nil {
		return Category{}, false
	}
	i, ok := d.index[strings.TrimSpace(id)]
	if !ok {
		return Category{}, false
	}
	return d.categories[i], true
}

// Has reports whether id names a top-level category.
func (d *Directory) Has(id string) bool {
	_, ok := d.Lookup(id)
	return ok
}

// IDs returns category ids in declaration order.
func (d *Directory) IDs() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.categories))
	for i, category := range d.categories {
		out[i] = category.ID
	}
	return out
}

// Len returns the number of categories.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.categories)
}
