// internal/application/usecase/cart_sync_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	cartdom "radacycling/internal/domain/cart"
)

// CartLineStore is the persistence port for per-user cart documents.
type CartLineStore interface {
	List(ctx context.Context, userID string) ([]cartdom.Item, error)
	Add(ctx context.Context, userID string, item cartdom.Item) (string, error)
	Update(ctx context.Context, userID, docID string, quantity int) error
	Delete(ctx context.Context, userID, docID string) error
}

const cartSyncTimeout = 10 * time.Second

// CartBridge mirrors one buyer's in-memory cart to storage, one document
// per line. All writes for the user flow through a single worker goroutine,
// so two rapid mutations can never interleave their diff-then-write cycles.
// The channel holds only the newest snapshot; intermediate states a buyer
// clicked through are skipped, the stored cart always converges on the last.
type CartBridge struct {
	store  CartLineStore
	userID string

	snapshots chan []cartdom.Item
	quit      chan struct{}
	wg        sync.WaitGroup

	// known maps line key -> stored item (with DocID). Owned by the worker
	// after Hydrate.
	known map[string]cartdom.Item
}

// NewCartBridge creates a bridge for userID and starts its worker.
func NewCartBridge(store CartLineStore, userID string) (*CartBridge, error) {
	if store == nil {
		return nil, errors.New("cart bridge: store is nil")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.New("cart bridge: userID is empty")
	}

	b := &CartBridge{
		store:     store,
		userID:    userID,
		snapshots: make(chan []cartdom.Item, 1),
		quit:      make(chan struct{}),
		known:     map[string]cartdom.Item{},
	}
	b.wg.Add(1)
	go b.run()
	return b, nil
}

// Hydrate loads the stored cart. Call before Attach; the returned items
// seed State.Load so hydration itself triggers no writes.
func (b *CartBridge) Hydrate(ctx context.Context) ([]cartdom.Item, error) {
	items, err := b.store.List(ctx, b.userID)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		b.known[it.Key()] = it
	}
	return items, nil
}

// Attach subscribes the bridge to state mutations.
func (b *CartBridge) Attach(state *cartdom.State) {
	if state == nil {
		return
	}
	state.Subscribe(b.push)
}

// push hands the worker the newest snapshot, displacing any queued one.
func (b *CartBridge) push(items []cartdom.Item) {
	for {
		select {
		case b.snapshots <- items:
			return
		default:
			select {
			case <-b.snapshots:
			default:
			}
		}
	}
}

// Close stops the worker after flushing any queued snapshot.
func (b *CartBridge) Close() {
	close(b.quit)
	b.wg.Wait()
}

func (b *CartBridge) run() {
	defer b.wg.Done()
	for {
		select {
		case items := <-b.snapshots:
			b.sync(items)
		case <-b.quit:
			select {
			case items := <-b.snapshots:
				b.sync(items)
			default:
			}
			return
		}
	}
}

// sync diffs the desired lines against the stored ones and issues the
// minimal adds/updates/deletes. A failed write is logged and skipped; the
// next snapshot retries it naturally.
func (b *CartBridge) sync(items []cartdom.Item) {
	ctx, cancel := context.WithTimeout(context.Background(), cartSyncTimeout)
	defer cancel()

	desired := make(map[string]cartdom.Item, len(items))
	for _, it := range items {
		desired[it.Key()] = it
	}

	for key, it := range desired {
		stored, ok := b.known[key]
		if ok && stored.DocID != "" {
			if stored.Quantity == it.Quantity {
				continue
			}
			if err := b.store.Update(ctx, b.userID, stored.DocID, it.Quantity); err != nil {
				log.Printf("[cart.bridge] update %s for %s failed: %v", key, b.userID, err)
				continue
			}
			stored.Quantity = it.Quantity
			b.known[key] = stored
			continue
		}

		docID, err := b.store.Add(ctx, b.userID, it)
		if err != nil {
			log.Printf("[cart.bridge] add %s for %s failed: %v", key, b.userID, err)
			continue
		}
		it.DocID = docID
		b.known[key] = it
	}

	for key, stored := range b.known {
		if _, ok := desired[key]; ok {
			continue
		}
		if stored.DocID != "" {
			if err := b.store.Delete(ctx, b.userID, stored.DocID); err != nil {
				log.Printf("[cart.bridge] delete %s for %s failed: %v", key, b.userID, err)
				continue
			}
		}
		delete(b.known, key)
	}
}
