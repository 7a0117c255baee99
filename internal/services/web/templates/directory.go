package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/topbrands/internal/directory"
	"github.com/louisbranch/topbrands/internal/services/web/platform/markup"
	"github.com/louisbranch/topbrands/internal/services/web/view"
)

// BrandGroupView is one labelled sub-category inside a grouped section.
type BrandGroupView struct {
	ID     string
	Label  string
	Brands []string
}

// SectionView is one rendered category card.
type SectionView struct {
	ID         string
	Label      string
	Style      string
	Kind       directory.Kind
	Selected   bool
	ToggleURL  string
	CountLabel string
	Brands     []string
	Groups     []BrandGroupView
}

// DirectoryView is the directory body for one state.
type DirectoryView struct {
	Sections     []SectionView
	HasSelection bool
	ShowAllURL   string
}

// BuildDirectoryView derives the rendered sections for state from d.
func BuildDirectoryView(d *directory.Directory, state view.State, path string, loc Localizer) DirectoryView {
	if path == "" {
		path = "/"
	}
	out := DirectoryView{
		HasSelection: state.HasSelection(),
		ShowAllURL:   state.ClearSelection().URL(path),
	}
	for _, category := range state.Displayed(d) {
		section := SectionView{
			ID:         category.ID,
			Label:      T(loc, category.LabelKey()),
			Style:      category.Style,
			Kind:       category.Kind(),
			Selected:   state.IsSelected(category.ID),
			ToggleURL:  state.Select(category.ID).URL(path),
			CountLabel: T(loc, "directory.brand_count", category.BrandCount()),
		}
		category.Visit(directory.Visitor{
			Flat: func(brands []string) {
				section.Brands = brands
			},
			Grouped: func(groups []directory.Group) {
				for _, group := range groups {
					section.Groups = append(section.Groups, BrandGroupView{
						ID:     group.ID,
						Label:  T(loc, directory.LabelKey(group.ID)),
						Brands: group.Brands(),
					})
				}
			},
		})
		out.Sections = append(out.Sections, section)
	}
	return out
}

// Directory renders the category cards of v.
func Directory(v DirectoryView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := markup.New(w)
		if v.HasSelection {
			hw.Raw(`<p class="show-all"><a`)
			hw.URLAttr("href", v.ShowAllURL)
			hw.Raw(">")
			hw.Text(T(loc, "directory.show_all"))
			hw.Raw("</a></p>\n")
		}
		hw.Raw(`<div class="directory">` + "\n")
		for _, section := range v.Sections {
			writeSection(hw, section)
		}
		hw.Raw("</div>\n")
		return hw.Err()
	})
}

func writeSection(hw *markup.Writer, section SectionView) {
	selected := ""
	if section.Selected {
		selected = "selected"
	}
	hw.Raw("<section")
	hw.Attr("id", "category-"+section.ID)
	hw.Attr("data-category", section.ID)
	hw.Classes("card", section.Style, selected)
	hw.Raw(`><h2><a class="card-toggle"`)
	hw.URLAttr("href", section.ToggleURL)
	if section.Selected {
		hw.Attr("aria-expanded", "true")
	} else {
		hw.Attr("aria-expanded", "false")
	}
	hw.Raw(">")
	hw.Text(section.Label)
	hw.Raw(`</a> <span class="count">`)
	hw.Text(section.CountLabel)
	hw.Raw("</span></h2>\n")
	switch section.Kind {
	case directory.KindGrouped:
		for _, group := range section.Groups {
			hw.Raw(`<div class="group"`)
			hw.Attr("data-group", group.ID)
			hw.Raw("><h3>")
			hw.Text(group.Label)
			hw.Raw("</h3>\n")
			writeBrands(hw, group.Brands)
			hw.Raw("</div>\n")
		}
	default:
		writeBrands(hw, section.Brands)
	}
	hw.Raw("</section>\n")
}

func writeBrands(hw *markup.Writer, brands []string) {
	hw.Raw(`<ul class="brands">` + "\n")
	for _, brand := range brands {
		hw.Raw(`<li class="brand"><span class="brand-name">`)
		hw.Text(brand)
		hw.Raw(`</span><span class="chevron" aria-hidden="true">&rsaquo;</span></li>` + "\n")
	}
	hw.Raw("</ul>\n")
}
