package directory

import (
	"reflect"
	"testing"
)

func TestFilterWithoutSelectionReturnsAllInOrder(t *testing.T) {
	t.Parallel()

	all := Default().Categories()
	got := Filter(all, "")
	if !reflect.DeepEqual(ids(got), ids(all)) {
		t.Fatalf("Filter(all, \"\") ids = %v, want %v", ids(got), ids(all))
	}
}

func TestFilterSelectsExactlyOneCategory(t *testing.T) {
	t.Parallel()

	all := Default().Categories()
	for _, category := range all {
		got := Filter(all, category.ID)
		if len(got) != 1 {
			t.Fatalf("Filter(all, %q) len = %d, want 1", category.ID, len(got))
		}
		if got[0].ID != category.ID {
			t.Fatalf("Filter(all, %q)[0] = %q", category.ID, got[0].ID)
		}
		if !reflect.DeepEqual(got[0].Groups(), category.Groups()) {
			t.Fatalf("Filter(all, %q) dropped groups", category.ID)
		}
		if got[0].BrandCount() != category.BrandCount() {
			t.Fatalf("Filter(all, %q) brand count = %d, want %d", category.ID, got[0].BrandCount(), category.BrandCount())
		}
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	t.Parallel()

	all := Default().Categories()
	once := Filter(all, "dining")
	twice := Filter(once, "dining")
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("Filter not idempotent: %v then %v", ids(once), ids(twice))
	}
}

func TestFilterUnknownSelectionShowsAll(t *testing.T) {
	t.Parallel()

	all := Default().Categories()
	got := Filter(all, "unknown")
	if len(got) != len(all) {
		t.Fatalf("Filter(all, unknown) len = %d, want %d", len(got), len(all))
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	all := []Category{Flat("a", "", "A"), Flat("b", "", "B")}
	got := Filter(all, "")
	got[0] = Flat("z", "", "Z")
	if all[0].ID != "a" {
		t.Fatal("Filter returned slice aliasing input")
	}
}

func TestFilterScenarioFinanceAndShopping(t *testing.T) {
	t.Parallel()

	all := []Category{
		Flat("finance", "", "A", "B"),
		Grouped("shopping", "", NewGroup("mall", "X")),
	}

	if got := ids(Filter(all, "")); !reflect.DeepEqual(got, []string{"finance", "shopping"}) {
		t.Fatalf("no selection = %v", got)
	}

	selected := Filter(all, "shopping")
	if got := ids(selected); !reflect.DeepEqual(got, []string{"shopping"}) {
		t.Fatalf("select shopping = %v", got)
	}
	groups := selected[0].Groups()
	if len(groups) != 1 || groups[0].ID != "mall" || !reflect.DeepEqual(groups[0].Brands(), []string{"X"}) {
		t.Fatalf("shopping groups = %+v", groups)
	}
}

func ids(categories []Category) []string {
	out := make([]string, len(categories))
	for i, category := range categories {
		out[i] = category.ID
	}
	return out
}
