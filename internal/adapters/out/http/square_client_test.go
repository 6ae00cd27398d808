// internal/adapters/out/http/square_client_test.go
package httpout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpout "radacycling/internal/adapters/out/http"
)

func TestUnitCentsFromTotal(t *testing.T) {
	cases := []struct {
		total float64
		qty   int
		want  int64
	}{
		{241.00, 2, 12050},
		{8.00, 1, 800},
		{10.00, 3, 333},
		{0.10, 1, 10},
		{5.00, 0, 0},
		{5.00, -1, 0},
	}
	for _, c := range cases {
		if got := httpout.UnitCentsFromTotal(c.total, c.qty); got != c.want {
			t.Fatalf("UnitCentsFromTotal(%v, %d) = %d, want %d", c.total, c.qty, got, c.want)
		}
	}
}

func TestBaseURLForEnv(t *testing.T) {
	if got := httpout.BaseURLForEnv("production"); got != "https://connect.squareup.com" {
		t.Fatalf("production = %q", got)
	}
	if got := httpout.BaseURLForEnv(" Production "); got != "https://connect.squareup.com" {
		t.Fatalf("case-insensitive production = %q", got)
	}
	if got := httpout.BaseURLForEnv("sandbox"); got != "https://connect.squareupsandbox.com" {
		t.Fatalf("sandbox = %q", got)
	}
	if got := httpout.BaseURLForEnv(""); got != "https://connect.squareupsandbox.com" {
		t.Fatalf("empty env = %q, want sandbox default", got)
	}
}

func TestCreatePaymentLink(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/online-checkout/payment-links" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"payment_link": map[string]any{"url": "https://square.link/abc"},
		})
	}))
	defer srv.Close()

	c := httpout.NewSquareClient(srv.URL, "tok", "loc-1", "https://radacycling.com/thanks")
	url, err := c.CreatePaymentLink(context.Background(), []httpout.CheckoutLine{
		{Name: "Aero Jersey", UnitAmountCents: 12050, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("CreatePaymentLink: %v", err)
	}
	if url != "https://square.link/abc" {
		t.Fatalf("url = %q", url)
	}

	if key, _ := captured["idempotency_key"].(string); key == "" {
		t.Fatal("request carried no idempotency key")
	}
	order := captured["order"].(map[string]any)
	if order["location_id"] != "loc-1" {
		t.Fatalf("location_id = %v", order["location_id"])
	}
	items := order["line_items"].([]any)
	if len(items) != 1 {
		t.Fatalf("line_items = %v", items)
	}
	item := items[0].(map[string]any)
	if item["quantity"] != "2" {
		t.Fatalf("quantity = %v, want the string \"2\"", item["quantity"])
	}
	price := item["base_price_money"].(map[string]any)
	if price["amount"].(float64) != 12050 || price["currency"] != "USD" {
		t.Fatalf("base_price_money = %v", price)
	}
	opts := captured["checkout_options"].(map[string]any)
	if opts["redirect_url"] != "https://radacycling.com/thanks" {
		t.Fatalf("redirect_url = %v", opts["redirect_url"])
	}
}

func TestCreatePaymentLinkSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"category":"AUTHENTICATION_ERROR","code":"UNAUTHORIZED"}]}`))
	}))
	defer srv.Close()

	c := httpout.NewSquareClient(srv.URL, "bad", "loc-1", "")
	_, err := c.CreatePaymentLink(context.Background(), []httpout.CheckoutLine{
		{Name: "Jersey", UnitAmountCents: 100, Quantity: 1},
	})
	if err == nil || !strings.Contains(err.Error(), "status=401") {
		t.Fatalf("err = %v, want status=401 failure", err)
	}
}

func TestCreatePaymentLinkRejectsBadLines(t *testing.T) {
	c := httpout.NewSquareClient("https://example.invalid", "tok", "loc-1", "")

	if _, err := c.CreatePaymentLink(context.Background(), nil); err == nil {
		t.Fatal("empty lines accepted")
	}
	bad := []httpout.CheckoutLine{{Name: "Jersey", UnitAmountCents: 0, Quantity: 1}}
	if _, err := c.CreatePaymentLink(context.Background(), bad); err == nil {
		t.Fatal("zero-cent line accepted")
	}
}
