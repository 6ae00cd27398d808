// internal/adapters/out/http/square_client.go
package httpout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SquareClient creates hosted payment links through the Square
// online-checkout API.
type SquareClient struct {
	baseURL     string
	accessToken string
	locationID  string
	redirectURL string
	client      *http.Client
}

// CheckoutLine is one order line handed to Square. UnitAmountCents is the
// price of a single unit; callers never pass extended totals here.
type CheckoutLine struct {
	Name            string
	UnitAmountCents int64
	Quantity        int
}

// baseURL example:
// - production: https://connect.squareup.com
// - sandbox: https://connect.squareupsandbox.com
func NewSquareClient(baseURL, accessToken, locationID, redirectURL string) *SquareClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return &SquareClient{
		baseURL:     baseURL,
		accessToken: strings.TrimSpace(accessToken),
		locationID:  strings.TrimSpace(locationID),
		redirectURL: strings.TrimSpace(redirectURL),
		client:      &http.Client{Timeout: 5 * time.Second},
	}
}

// BaseURLForEnv maps the configured Square environment name to an API host.
func BaseURLForEnv(env string) string {
	if strings.EqualFold(strings.TrimSpace(env), "production") {
		return "https://connect.squareup.com"
	}
	return "https://connect.squareupsandbox.com"
}

// UnitCentsFromTotal recovers a unit price in cents from an extended line
// total, matching ledgers that only kept `round(total*100)` per line.
func UnitCentsFromTotal(total float64, quantity int) int64 {
	if quantity <= 0 {
		return 0
	}
	return int64(math.Round(total*100)) / int64(quantity)
}

type paymentLinkRequest struct {
	IdempotencyKey string          `json:"idempotency_key"`
	Order          squareOrder     `json:"order"`
	CheckoutOpts   *checkoutOption `json:"checkout_options,omitempty"`
}

type squareOrder struct {
	LocationID string           `json:"location_id"`
	LineItems  []squareLineItem `json:"line_items"`
}

type squareLineItem struct {
	Name      string      `json:"name"`
	Quantity  string      `json:"quantity"`
	BasePrice squareMoney `json:"base_price_money"`
}

type squareMoney struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type checkoutOption struct {
	RedirectURL string `json:"redirect_url,omitempty"`
}

type paymentLinkResponse struct {
	PaymentLink struct {
		URL     string `json:"url"`
		LongURL string `json:"long_url"`
	} `json:"payment_link"`
	Errors []struct {
		Category string `json:"category"`
		Code     string `json:"code"`
		Detail   string `json:"detail"`
	} `json:"errors"`
}

// CreatePaymentLink posts the order lines and returns the hosted checkout
// URL the browser is redirected to.
func (c *SquareClient) CreatePaymentLink(ctx context.Context, lines []CheckoutLine) (string, error) {
	if c == nil {
		return "", fmt.Errorf("square client is nil")
	}
	if c.baseURL == "" {
		return "", fmt.Errorf("square client baseURL is empty")
	}
	if c.accessToken == "" {
		return "", fmt.Errorf("square access token is empty")
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("square: no checkout lines")
	}

	items := make([]squareLineItem, 0, len(lines))
	for _, ln := range lines {
		if ln.Quantity <= 0 || ln.UnitAmountCents <= 0 {
			return "", fmt.Errorf("square: invalid line %q (qty=%d, cents=%d)", ln.Name, ln.Quantity, ln.UnitAmountCents)
		}
		items = append(items, squareLineItem{
			Name:     strings.TrimSpace(ln.Name),
			Quantity: fmt.Sprintf("%d", ln.Quantity),
			BasePrice: squareMoney{
				Amount:   ln.UnitAmountCents,
				Currency: "USD",
			},
		})
	}

	payload := paymentLinkRequest{
		IdempotencyKey: uuid.NewString(),
		Order: squareOrder{
			LocationID: c.locationID,
			LineItems:  items,
		},
	}
	if c.redirectURL != "" {
		payload.CheckoutOpts = &checkoutOption{RedirectURL: c.redirectURL}
	}

	b, _ := json.Marshal(payload)

	url := c.baseURL + "/v2/online-checkout/payment-links"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if res.StatusCode >= 400 {
		return "", fmt.Errorf("square payment-link failed status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed paymentLinkResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("square payment-link decode: %w", err)
	}
	if len(parsed.Errors) > 0 {
		e := parsed.Errors[0]
		return "", fmt.Errorf("square payment-link error: %s/%s %s", e.Category, e.Code, e.Detail)
	}
	linkURL := strings.TrimSpace(parsed.PaymentLink.URL)
	if linkURL == "" {
		linkURL = strings.TrimSpace(parsed.PaymentLink.LongURL)
	}
	if linkURL == "" {
		return "", fmt.Errorf("square payment-link response had no url")
	}
	return linkURL, nil
}
