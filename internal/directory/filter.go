package directory

// Filter returns the categories to display for a selection. An empty
// selection, or one naming no category, yields every category in order;
// otherwise only the selected category is returned with its full body.
func Filter(all []Category, selected string) []Category {
	if selected != "" {
		for _, category := range all {
			if category.ID == selected {
				return []Category{category}
			}
		}
	}
	out := make([]Category, len(all))
	copy(out, all)
	return out
}
