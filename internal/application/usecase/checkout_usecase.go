// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	httpout "radacycling/internal/adapters/out/http"
	cartdom "radacycling/internal/domain/cart"
	orderdom "radacycling/internal/domain/order"
)

// PaymentLinkPort is the outbound port to the hosted-checkout provider.
type PaymentLinkPort interface {
	CreatePaymentLink(ctx context.Context, lines []httpout.CheckoutLine) (string, error)
}

// OrderWriter persists purchase records.
type OrderWriter interface {
	Create(ctx context.Context, o orderdom.Order) (string, error)
}

var (
	ErrCheckoutPaymentsMissing = errors.New("checkout: payment port is not configured")
	ErrCheckoutCartEmpty       = errors.New("checkout: cart is empty")
)

// Estimated production + shipping lead time shown on new orders.
const arrivalLeadTime = 20 * 24 * time.Hour

// CheckoutUsecase turns a denormalized cart into a hosted payment link and
// records the purchased lines as orders.
type CheckoutUsecase struct {
	payments PaymentLinkPort
	orders   OrderWriter
	now      func() time.Time
}

func NewCheckoutUsecase(payments PaymentLinkPort, orders OrderWriter) *CheckoutUsecase {
	return &CheckoutUsecase{
		payments: payments,
		orders:   orders,
		now:      time.Now,
	}
}

// BuildLines converts cart views into payment lines with an explicit unit
// price in cents per line. Lines with no priceable content are skipped.
func BuildLines(views []cartdom.DenormalizedItem) []httpout.CheckoutLine {
	out := make([]httpout.CheckoutLine, 0, len(views))
	for _, v := range views {
		cents := int64(math.Round(v.UnitPrice * 100))
		if cents <= 0 || v.Quantity <= 0 {
			continue
		}
		out = append(out, httpout.CheckoutLine{
			Name:            v.Name,
			UnitAmountCents: cents,
			Quantity:        v.Quantity,
		})
	}
	return out
}

// CreatePaymentLink returns the hosted checkout URL for the cart views.
func (u *CheckoutUsecase) CreatePaymentLink(ctx context.Context, views []cartdom.DenormalizedItem) (string, error) {
	if u == nil || u.payments == nil {
		return "", ErrCheckoutPaymentsMissing
	}

	lines := BuildLines(views)
	if len(lines) == 0 {
		return "", ErrCheckoutCartEmpty
	}
	return u.payments.CreatePaymentLink(ctx, lines)
}

// RecordOrders writes one order per cart line for userID, stamped with the
// estimated arrival date. Returns the created document IDs.
func (u *CheckoutUsecase) RecordOrders(ctx context.Context, userID string, views []cartdom.DenormalizedItem) ([]string, error) {
	if u == nil || u.orders == nil {
		return nil, errors.New("checkout: order writer is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.New("checkout: userID is empty")
	}
	if len(views) == 0 {
		return nil, ErrCheckoutCartEmpty
	}

	arrival := u.now().Add(arrivalLeadTime).Format("2006-01-02")

	ids := make([]string, 0, len(views))
	for _, v := range views {
		id, err := u.orders.Create(ctx, orderdom.Order{
			UserID:      userID,
			ProductID:   v.ProductID,
			Quantity:    v.Quantity,
			SizeID:      v.SizeID,
			ArrivalDate: arrival,
		})
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
