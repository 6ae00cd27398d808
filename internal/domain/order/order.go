// internal/domain/order/order.go
package order

import (
	"errors"
	"strings"
)

var (
	ErrInvalidOrder = errors.New("order: invalid")
)

// Order is one shipped (or pending) purchase line, keyed by userId.
// Orders are append-only: checkout creates them, the user-data endpoint
// reads them back, nothing updates them from the storefront.
type Order struct {
	ID          string `json:"id,omitempty" firestore:"id,omitempty"`
	UserID      string `json:"userId" firestore:"userId"`
	ProductID   string `json:"productId" firestore:"productId"`
	Quantity    int    `json:"quantity" firestore:"quantity"`
	SizeID      string `json:"sizeId" firestore:"sizeId"`
	ArrivalDate string `json:"arrivalDate" firestore:"arrivalDate"`

	TrackingNumber string `json:"trackingNumber" firestore:"trackingNumber"`
	TrackingURL    string `json:"trackingUrl" firestore:"trackingUrl"`
}

func (o Order) Validate() error {
	if strings.TrimSpace(o.UserID) == "" {
		return ErrInvalidOrder
	}
	if strings.TrimSpace(o.ProductID) == "" || o.Quantity <= 0 {
		return ErrInvalidOrder
	}
	return nil
}
