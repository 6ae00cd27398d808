// internal/domain/catalog/menu_test.go
package catalog_test

import (
	"reflect"
	"testing"

	"radacycling/internal/domain/catalog"
	"radacycling/internal/domain/i18n"
)

func menuCategories() []catalog.Category {
	return []catalog.Category{
		{ID: "1", Href: "jerseys", Name: i18n.Text{EN: "Jerseys", ES: "Jerseys"}},
		{ID: "2", Href: "shorts", Name: i18n.Text{EN: "Shorts", ES: "Cortos"}},
		{ID: "7", Href: "men", Name: i18n.Text{EN: "Men", ES: "Hombres"}},
	}
}

func TestDenormalizeCategoriesDropsMissingIDs(t *testing.T) {
	got := catalog.DenormalizeCategories([]string{"1", "999", "2"}, menuCategories())
	if len(got) != 2 {
		t.Fatalf("got %d categories, want 2 (missing ID dropped)", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("got %v, want [1 2] in input order", got)
	}
}

func TestFindMenuByID(t *testing.T) {
	m, ok := catalog.FindMenuByID("menmenu")
	if !ok || m.Href != "men" {
		t.Fatalf("FindMenuByID(menmenu) = (%v, %v)", m, ok)
	}
	if _, ok := catalog.FindMenuByID("nope"); ok {
		t.Fatal("unknown menu reported found")
	}
}

func TestDenormalizeCatalogCategoryDoesNotMutateInput(t *testing.T) {
	menu, _ := catalog.FindMenuByID("womenmenu")
	out := catalog.DenormalizeCatalogCategory(menu, menuCategories())

	if len(menu.Sections[0].Categories) != 0 {
		t.Fatalf("input menu sections mutated: %v", menu.Sections[0].Categories)
	}
	if len(out.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(out.Sections))
	}
	// IDs 1 and 2 resolve against the fixture list; 6 does not.
	if got := len(out.Sections[0].Categories); got != 2 {
		t.Fatalf("expanded %d categories, want 2", got)
	}
}

func TestIDsFromHrefsDropsUnknown(t *testing.T) {
	got := catalog.IDsFromHrefs(menuCategories(), []string{"shorts", "ghost", "men"})
	if !reflect.DeepEqual(got, []string{"2", "7"}) {
		t.Fatalf("got %v, want [2 7]", got)
	}
}

func TestNamesFromIDsPicksLanguage(t *testing.T) {
	got := catalog.NamesFromIDs(menuCategories(), []string{"2", "7"}, i18n.LangES)
	if !reflect.DeepEqual(got, []string{"Cortos", "Hombres"}) {
		t.Fatalf("got %v", got)
	}
}

func TestSizeCategoryIDsMatchOptions(t *testing.T) {
	ids := catalog.SizeCategoryIDs()
	if len(ids) != len(catalog.SizeOptions) {
		t.Fatalf("got %d IDs for %d options", len(ids), len(catalog.SizeOptions))
	}
	for i, o := range catalog.SizeOptions {
		if ids[i] != o.ID {
			t.Fatalf("ids[%d] = %q, want %q", i, ids[i], o.ID)
		}
	}
}
