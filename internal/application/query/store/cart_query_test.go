// internal/application/query/store/cart_query_test.go
package store_test

import (
	"context"
	"testing"

	storequery "radacycling/internal/application/query/store"
	cartdom "radacycling/internal/domain/cart"
	catalogdom "radacycling/internal/domain/catalog"
	"radacycling/internal/domain/i18n"
	productdom "radacycling/internal/domain/product"
)

func cartFixture() (*storequery.CartQuery, *cartdom.State) {
	products := []productdom.Product{
		{
			ID:        "p1",
			Name:      i18n.Text{EN: "Aero Jersey"},
			Price:     "$100.00",
			Href:      "aero-jersey",
			ImageKeys: []string{"aero-front.webp"},
			Stock: productdom.Stock{BySize: []productdom.SizeStock{
				{ID: "18", Name: "M", Units: 2},
			}},
		},
		{
			ID:    "p2",
			Name:  i18n.Text{EN: "Bottle"},
			Price: "$8.00",
			Href:  "bottle",
			Stock: productdom.Stock{Units: 5},
		},
	}
	categories := []catalogdom.Category{
		{ID: "18", Name: i18n.Text{EN: "M"}},
	}
	resolver := &fakeResolver{known: map[string]string{
		"products/aero-front.webp": "https://img.radacycling.com/products/aero-front.webp",
	}}
	q := storequery.NewCartQuery(
		&fakeProductRepo{products: products},
		&fakeCategoryRepo{categories: categories},
		resolver,
	)
	return q, cartdom.NewState(i18n.LangEN)
}

func TestCartViewTotalsAndImages(t *testing.T) {
	q, state := cartFixture()
	_ = state.AddToCart("p1", 2, "18", "")
	_ = state.AddToCart("p2", 1, "", "")
	state.DrainNotices()

	out, err := q.View(context.Background(), state, i18n.LangEN)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(out.Items) != 2 {
		t.Fatalf("got %d lines, want 2", len(out.Items))
	}
	if out.Total != 208.00 {
		t.Fatalf("total = %v, want 208.00", out.Total)
	}
	if out.Items[0].ImageURL != "https://img.radacycling.com/products/aero-front.webp" {
		t.Fatalf("line image = %q, want the resolved URL, not the raw key", out.Items[0].ImageURL)
	}
	// p2 has no image keys at all: no URL, no placeholder.
	if out.Items[1].ImageURL != "" {
		t.Fatalf("keyless line image = %q, want empty", out.Items[1].ImageURL)
	}
}

func TestCartViewAppliesClampBackToState(t *testing.T) {
	q, state := cartFixture()
	_ = state.AddToCart("p1", 9, "18", "")
	state.DrainNotices()

	out, err := q.View(context.Background(), state, i18n.LangEN)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if out.Items[0].Quantity != 2 {
		t.Fatalf("view quantity = %d, want clamped to 2", out.Items[0].Quantity)
	}
	if it, _ := state.Get("p1", "18"); it.Quantity != 2 {
		t.Fatalf("state quantity = %d, want the clamp written back", it.Quantity)
	}
	if len(out.Notices) != 1 || out.Notices[0].Kind != cartdom.NoticeAdjusted {
		t.Fatalf("notices = %v, want one stock notice", out.Notices)
	}

	// Subsequent views are settled: no further notices.
	out2, err := q.View(context.Background(), state, i18n.LangEN)
	if err != nil {
		t.Fatalf("second View: %v", err)
	}
	if len(out2.Notices) != 0 {
		t.Fatalf("second view notices = %v, want none", out2.Notices)
	}
}

func TestCartViewDropsVanishedProducts(t *testing.T) {
	q, state := cartFixture()
	state.Load([]cartdom.Item{{ProductID: "ghost", Quantity: 1}})

	out, err := q.View(context.Background(), state, i18n.LangEN)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(out.Items) != 0 || out.Total != 0 {
		t.Fatalf("out = %+v, want empty cart view", out)
	}
}
