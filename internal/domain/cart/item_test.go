// internal/domain/cart/item_test.go
package cart_test

import (
	"testing"

	"radacycling/internal/domain/cart"
)

func TestNormalizeSizeID(t *testing.T) {
	if got := cart.NormalizeSizeID(""); got != cart.NoSizeID {
		t.Fatalf("NormalizeSizeID(\"\") = %q, want %q", got, cart.NoSizeID)
	}
	if got := cart.NormalizeSizeID("  18 "); got != "18" {
		t.Fatalf("NormalizeSizeID trimmed = %q, want 18", got)
	}
}

func TestItemKeyTreatsEmptySizeAsSentinel(t *testing.T) {
	a := cart.Item{ProductID: "p1", SizeID: ""}
	b := cart.Item{ProductID: "p1", SizeID: cart.NoSizeID}
	if a.Key() != b.Key() {
		t.Fatalf("keys differ: %q vs %q", a.Key(), b.Key())
	}
	c := cart.Item{ProductID: "p1", SizeID: "18"}
	if a.Key() == c.Key() {
		t.Fatalf("sized and sizeless lines share key %q", a.Key())
	}
}

func TestItemValidate(t *testing.T) {
	if err := (cart.Item{ProductID: "p1", Quantity: 1}).Validate(); err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}
	if err := (cart.Item{ProductID: " ", Quantity: 1}).Validate(); err != cart.ErrInvalidItem {
		t.Fatalf("blank productID: err = %v, want ErrInvalidItem", err)
	}
	if err := (cart.Item{ProductID: "p1", Quantity: 0}).Validate(); err != cart.ErrInvalidItem {
		t.Fatalf("zero quantity: err = %v, want ErrInvalidItem", err)
	}
}

func TestFindItemMatchesSizePrecisely(t *testing.T) {
	items := []cart.Item{
		{ProductID: "p1", SizeID: "18", Quantity: 1},
		{ProductID: "p1", SizeID: "19", Quantity: 2},
		{ProductID: "p2", SizeID: "", Quantity: 3},
	}
	if idx := cart.FindItem(items, "p1", "19"); idx != 1 {
		t.Fatalf("FindItem(p1,19) = %d, want 1", idx)
	}
	if idx := cart.FindItem(items, "p2", cart.NoSizeID); idx != 2 {
		t.Fatalf("FindItem(p2,%q) = %d, want 2", cart.NoSizeID, idx)
	}
	if idx := cart.FindItem(items, "p1", "20"); idx != -1 {
		t.Fatalf("FindItem(p1,20) = %d, want -1", idx)
	}
}
