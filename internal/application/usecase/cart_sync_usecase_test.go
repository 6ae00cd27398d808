// internal/application/usecase/cart_sync_usecase_test.go
package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"radacycling/internal/application/usecase"
	cartdom "radacycling/internal/domain/cart"
	"radacycling/internal/domain/i18n"
)

// fakeLineStore is an in-memory CartLineStore safe for the bridge worker.
type fakeLineStore struct {
	mu     sync.Mutex
	nextID int
	docs   map[string]cartdom.Item // docID -> item
	adds   int
	upds   int
	dels   int
}

func newFakeLineStore() *fakeLineStore {
	return &fakeLineStore{docs: map[string]cartdom.Item{}}
}

func (f *fakeLineStore) List(ctx context.Context, userID string) ([]cartdom.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]cartdom.Item, 0, len(f.docs))
	for id, it := range f.docs {
		it.DocID = id
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeLineStore) Add(ctx context.Context, userID string, item cartdom.Item) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.adds++
	id := fmt.Sprintf("doc-%d", f.nextID)
	item.DocID = ""
	f.docs[id] = item
	return id, nil
}

func (f *fakeLineStore) Update(ctx context.Context, userID, docID string, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.docs[docID]
	if !ok {
		return cartdom.ErrNotFound
	}
	f.upds++
	it.Quantity = quantity
	f.docs[docID] = it
	return nil
}

func (f *fakeLineStore) Delete(ctx context.Context, userID, docID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dels++
	delete(f.docs, docID)
	return nil
}

func (f *fakeLineStore) snapshot() map[string]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]int{}
	for _, it := range f.docs {
		out[it.Key()] = it.Quantity
	}
	return out
}

func (f *fakeLineStore) counts() (adds, upds, dels int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.adds, f.upds, f.dels
}

func TestCartBridgeConvergesOnFinalState(t *testing.T) {
	store := newFakeLineStore()
	bridge, err := usecase.NewCartBridge(store, "user-1")
	if err != nil {
		t.Fatalf("NewCartBridge: %v", err)
	}
	if _, err := bridge.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}

	state := cartdom.NewState(i18n.LangEN)
	bridge.Attach(state)

	_ = state.AddToCart("p1", 1, "18", "")
	_ = state.AddToCart("p1", 4, "18", "")
	_ = state.AddToCart("p2", 2, "", "")
	state.RemoveFromCart("p1", "Jersey", "18")

	bridge.Close()

	got := store.snapshot()
	if len(got) != 1 {
		t.Fatalf("stored lines = %v, want only p2", got)
	}
	if got["p2__"+cartdom.NoSizeID] != 2 {
		t.Fatalf("stored lines = %v, want p2 qty 2", got)
	}
}

func TestCartBridgeHydrationIsWriteFree(t *testing.T) {
	store := newFakeLineStore()
	docID, _ := store.Add(context.Background(), "user-1", cartdom.Item{ProductID: "p1", Quantity: 2, SizeID: "18"})
	store.mu.Lock()
	store.adds = 0
	store.mu.Unlock()

	bridge, err := usecase.NewCartBridge(store, "user-1")
	if err != nil {
		t.Fatalf("NewCartBridge: %v", err)
	}
	items, err := bridge.Hydrate(context.Background())
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if len(items) != 1 || items[0].DocID != docID {
		t.Fatalf("hydrated = %v", items)
	}

	state := cartdom.NewState(i18n.LangEN)
	state.Load(items)
	bridge.Attach(state)
	bridge.Close()

	adds, upds, dels := store.counts()
	if adds != 0 || upds != 0 || dels != 0 {
		t.Fatalf("hydration caused writes: adds=%d upds=%d dels=%d", adds, upds, dels)
	}
}

func TestCartBridgeUpdatesExistingDocInsteadOfReadding(t *testing.T) {
	store := newFakeLineStore()
	_, _ = store.Add(context.Background(), "user-1", cartdom.Item{ProductID: "p1", Quantity: 1, SizeID: "18"})
	store.mu.Lock()
	store.adds = 0
	store.mu.Unlock()

	bridge, err := usecase.NewCartBridge(store, "user-1")
	if err != nil {
		t.Fatalf("NewCartBridge: %v", err)
	}
	items, _ := bridge.Hydrate(context.Background())

	state := cartdom.NewState(i18n.LangEN)
	state.Load(items)
	bridge.Attach(state)

	_ = state.AddToCart("p1", 5, "18", "")
	bridge.Close()

	adds, upds, _ := store.counts()
	if adds != 0 {
		t.Fatalf("quantity change created %d new docs, want update of the existing one", adds)
	}
	if upds == 0 {
		t.Fatal("no update issued for the quantity change")
	}
	if got := store.snapshot()["p1__18"]; got != 5 {
		t.Fatalf("stored quantity = %d, want 5", got)
	}
}

func TestNewCartBridgeValidation(t *testing.T) {
	if _, err := usecase.NewCartBridge(nil, "user-1"); err == nil {
		t.Fatal("nil store accepted")
	}
	if _, err := usecase.NewCartBridge(newFakeLineStore(), "  "); err == nil {
		t.Fatal("blank userID accepted")
	}
}
