// internal/domain/product/product_test.go
package product_test

import (
	"math/rand"
	"testing"

	"radacycling/internal/domain/catalog"
	"radacycling/internal/domain/i18n"
	"radacycling/internal/domain/product"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$1,234.56", 1234.56},
		{"$120.50", 120.5},
		{"-$5.00", -5},
		{"8", 8},
		{"", 0},
		{"free", 0},
	}
	for _, c := range cases {
		if got := product.ParsePrice(c.in); got != c.want {
			t.Fatalf("ParsePrice(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestStockUnitsFor(t *testing.T) {
	flat := product.Stock{Units: 7}
	if got := flat.UnitsFor("18"); got != 7 {
		t.Fatalf("flat stock ignores size: got %d, want 7", got)
	}

	sized := product.Stock{BySize: []product.SizeStock{
		{ID: "18", Name: "M", Units: 2},
		{ID: "19", Name: "L", Units: 0},
	}}
	if got := sized.UnitsFor("18"); got != 2 {
		t.Fatalf("UnitsFor(18) = %d, want 2", got)
	}
	if got := sized.UnitsFor("19"); got != 0 {
		t.Fatalf("UnitsFor(19) = %d, want 0", got)
	}
	if got := sized.UnitsFor("unknown"); got != 0 {
		t.Fatalf("unknown size = %d, want 0", got)
	}
}

func TestValidate(t *testing.T) {
	ok := product.Product{ID: "p1", Name: i18n.Text{EN: "Jersey"}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid product rejected: %v", err)
	}
	if err := (product.Product{Name: i18n.Text{EN: "Jersey"}}).Validate(); err != product.ErrInvalidProduct {
		t.Fatalf("missing ID: err = %v", err)
	}
	if err := (product.Product{ID: "p1"}).Validate(); err != product.ErrInvalidProduct {
		t.Fatalf("missing name: err = %v", err)
	}
}

func catalogProducts() []product.Product {
	return []product.Product{
		{ID: "p1", Href: "aero-jersey", MainVersion: true, CategoryIDs: []string{"1", "7"}},
		{ID: "p2", Href: "aero-jersey-red", MainVersion: false, CategoryIDs: []string{"1", "7"}},
		{ID: "p3", Href: "bib-shorts", MainVersion: true, CategoryIDs: []string{"2", "15"}},
		{ID: "p4", Href: "bottle", MainVersion: true, CategoryIDs: []string{"6"}},
	}
}

func TestFindByCategoryIDsRequiresAllAndMainVersion(t *testing.T) {
	products := catalogProducts()

	got := product.FindByCategoryIDs(products, []string{"1", "7"})
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("got %v, want only the main version p1", got)
	}

	if got := product.FindByCategoryIDs(products, []string{"1", "15"}); len(got) != 0 {
		t.Fatalf("got %v, want none for a category mix no product carries", got)
	}
}

func TestFindByCategoryHrefs(t *testing.T) {
	categories := []catalog.Category{
		{ID: "2", Href: "shorts"},
		{ID: "15", Href: "women"},
	}
	got := product.FindByCategoryHrefs(catalogProducts(), categories, []string{"shorts", "women"})
	if len(got) != 1 || got[0].ID != "p3" {
		t.Fatalf("got %v, want p3", got)
	}
}

func TestFindByIDsPreservesProductListOrder(t *testing.T) {
	got := product.FindByIDs(catalogProducts(), []string{"p4", "p1"})
	if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p4" {
		t.Fatalf("got %v, want [p1 p4] in product-list order", got)
	}
}

func TestFindSimilarExcludesSelfAndVariants(t *testing.T) {
	products := catalogProducts()
	self := products[0]
	self.VersionIDs = []string{"p2", "p3"}

	rng := rand.New(rand.NewSource(1))
	got := product.FindSimilar(products, self, 4, rng)
	if len(got) != 1 || got[0].ID != "p4" {
		t.Fatalf("got %v, want only p4 (self, non-main and variants excluded)", got)
	}
}

func TestFindByHref(t *testing.T) {
	p, ok := product.FindByHref(catalogProducts(), "bib-shorts")
	if !ok || p.ID != "p3" {
		t.Fatalf("FindByHref = (%v, %v)", p, ok)
	}
	if _, ok := product.FindByHref(catalogProducts(), "nope"); ok {
		t.Fatal("unknown href reported found")
	}
}
