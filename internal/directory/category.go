package directory

// Kind tags which shape a category body has.
type Kind int

const (
	// KindFlat categories hold one ordered brand list.
	KindFlat Kind = iota + 1
	// KindGrouped categories hold ordered sub-groups of brands.
	KindGrouped
)

func (k Kind) String() string {
	switch k {
	case KindFlat:
		return "flat"
	case KindGrouped:
		return "grouped"
	default:
		return "unknown"
	}
}

// LabelPrefix is prepended to category and group ids to form translation keys.
const LabelPrefix = "category."

// LabelKey returns the translation key for a category or group id.
func LabelKey(id string) string {
	return LabelPrefix + id
}

// Group is one named sub-list inside a grouped category.
type Group struct {
	ID     string
	brands []string
}

// NewGroup builds a group; brands are copied.
func NewGroup(id string, brands ...string) Group {
	return Group{ID: id, brands: cloneStrings(brands)}
}

// Brands returns a copy of the group's brands in order.
func (g Group) Brands() []string {
	return cloneStrings(g.brands)
}

// Category is a top-level directory entry. Its body is either flat or
// grouped; use Visit to dispatch on the shape.
type Category struct {
	ID string
	// Style is a presentation tag, rendered as a CSS class.
	Style string

	kind   Kind
	brands []string
	groups []Group
}

// Flat builds a category with a single ordered brand list.
func Flat(id, style string, brands ...string) Category {
	return Category{ID: id, Style: style, kind: KindFlat, brands: cloneStrings(brands)}
}

// Grouped builds a category subdivided into groups.
func Grouped(id, style string, groups ...Group) Category {
	copied := make([]Group, len(groups))
	for i, group := range groups {
		copied[i] = NewGroup(group.ID, group.brands...)
	}
	return Category{ID: id, Style: style, kind: KindGrouped, groups: copied}
}

// Kind reports the body shape.
func (c Category) Kind() Kind {
	return c.kind
}

// Brands returns the brands of a flat category, or nil for grouped ones.
func (c Category) Brands() []string {
	if c.kind != KindFlat {
		return nil
	}
	return cloneStrings(c.brands)
}

// Groups returns the groups of a grouped category, or nil for flat ones.
func (c Category) Groups() []Group {
	if c.kind != KindGrouped {
		return nil
	}
	out := make([]Group, len(c.groups))
	for i, group := range c.groups {
		out[i] = NewGroup(group.ID, group.brands...)
	}
	return out
}

// BrandCount counts brands across the whole category.
func (c Category) BrandCount() int {
	count := 0
	c.Visit(Visitor{
		Flat: func(brands []string) { count = len(brands) },
		Grouped: func(groups []Group) {
			for _, group := range groups {
				count += len(group.brands)
			}
		},
	})
	return count
}

// LabelKey returns the category translation key.
func (c Category) LabelKey() string {
	return LabelKey(c.ID)
}

// Visitor handles each category shape. Nil handlers are skipped.
type Visitor struct {
	Flat    func(brands []string)
	Grouped func(groups []Group)
}

// Visit calls the handler matching the category shape.
func (c Category) Visit(v Visitor) {
	switch c.kind {
	case KindFlat:
		if v.Flat != nil {
			v.Flat(c.Brands())
		}
	case KindGrouped:
		if v.Grouped != nil {
			v.Grouped(c.Groups())
		}
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
