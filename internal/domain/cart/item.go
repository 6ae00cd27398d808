// internal/domain/cart/item.go
package cart

import (
	"errors"
	"strings"
)

var (
	ErrInvalidItem = errors.New("cart: invalid item")
	ErrNotFound    = errors.New("cart: item not found")
)

// NoSizeID is the sentinel size for products without a size choice.
const NoSizeID = "0"

// Item is one cart line. Uniqueness is defined by (ProductID, SizeID):
// the cart holds at most one line per pair.
//
// DocID is the identifier of the mirrored per-user Firestore document; it is
// empty until the persistence bridge has written the line.
type Item struct {
	ProductID string `json:"productId" firestore:"productId"`
	Quantity  int    `json:"quantity" firestore:"quantity"`
	SizeID    string `json:"sizeId" firestore:"sizeId"`
	DocID     string `json:"-" firestore:"-"`
}

// NormalizeSizeID maps an empty size to the NoSizeID sentinel.
func NormalizeSizeID(sizeID string) string {
	sizeID = strings.TrimSpace(sizeID)
	if sizeID == "" {
		return NoSizeID
	}
	return sizeID
}

// Key identifies the line within a cart.
func (it Item) Key() string {
	return it.ProductID + "__" + NormalizeSizeID(it.SizeID)
}

func (it Item) Validate() error {
	if strings.TrimSpace(it.ProductID) == "" || it.Quantity <= 0 {
		return ErrInvalidItem
	}
	return nil
}

// FindItem returns the index of the line matching (productID, sizeID), or -1.
func FindItem(items []Item, productID, sizeID string) int {
	productID = strings.TrimSpace(productID)
	sizeID = NormalizeSizeID(sizeID)
	for i := range items {
		if items[i].ProductID == productID && NormalizeSizeID(items[i].SizeID) == sizeID {
			return i
		}
	}
	return -1
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
