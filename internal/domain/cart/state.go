// internal/domain/cart/state.go
package cart

import (
	"fmt"
	"strings"
	"sync"

	"radacycling/internal/domain/i18n"
)

// NoticeKind classifies buyer-facing cart notices.
type NoticeKind string

const (
	NoticeAdded    NoticeKind = "added"
	NoticeUpdated  NoticeKind = "updated"
	NoticeRemoved  NoticeKind = "removed"
	NoticeAdjusted NoticeKind = "adjusted"
)

// Notice is a transient message for the buyer (rendered as a toast).
type Notice struct {
	Kind NoticeKind `json:"kind"`
	Text string     `json:"text"`
}

// Subscriber receives a snapshot of the cart after every mutation.
type Subscriber func(items []Item)

// State is the canonical in-memory cart for one buyer session. It is an
// explicit object passed to handlers, not a process-wide singleton, so
// concurrent sessions never share cart state.
//
// Mutations notify subscribers (the persistence bridge) with a defensive
// snapshot; subscribers must not retain or mutate the slice they receive
// beyond their own call.
type State struct {
	mu    sync.Mutex
	lang  i18n.Lang
	items []Item

	subs    []Subscriber
	notices []Notice
}

// NewState creates an empty cart for lang.
func NewState(lang i18n.Lang) *State {
	return &State{lang: lang}
}

// Load replaces the cart wholesale (initial hydration from storage).
// Subscribers are not notified: the loaded state is already persisted.
func (s *State) Load(items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = cloneItems(items)
}

// Items returns a snapshot of the current lines.
func (s *State) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

// Subscribe registers fn to run after every mutation.
func (s *State) Subscribe(fn Subscriber) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// AddToCart inserts or replaces the line for (productID, sizeID).
//
// An existing line's quantity is replaced wholesale, not incremented. The
// buyer notice is emitted only when name is non-empty; internal callers
// (quantity clamping) pass "" to mutate silently.
func (s *State) AddToCart(productID string, quantity int, sizeID, name string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" || quantity <= 0 {
		return ErrInvalidItem
	}
	sizeID = NormalizeSizeID(sizeID)

	s.mu.Lock()
	idx := FindItem(s.items, productID, sizeID)
	if idx >= 0 {
		s.items[idx].Quantity = quantity
		if name != "" {
			s.notices = append(s.notices, Notice{Kind: NoticeUpdated, Text: i18n.Dict(s.lang).QuantityUpdated})
		}
	} else {
		s.items = append(s.items, Item{ProductID: productID, Quantity: quantity, SizeID: sizeID})
		if name != "" {
			s.notices = append(s.notices, Notice{
				Kind: NoticeAdded,
				Text: fmt.Sprintf("%q %s", name, i18n.Dict(s.lang).HasBeenAddedToTheCart),
			})
		}
	}
	snapshot := cloneItems(s.items)
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
	return nil
}

// RemoveFromCart removes the line matching (productID, sizeID) and always
// emits a removal notice. Lines sharing productID but a different size are
// untouched.
func (s *State) RemoveFromCart(productID, name, sizeID string) {
	productID = strings.TrimSpace(productID)
	sizeID = NormalizeSizeID(sizeID)

	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ProductID == productID && NormalizeSizeID(it.SizeID) == sizeID {
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	s.notices = append(s.notices, Notice{
		Kind: NoticeRemoved,
		Text: fmt.Sprintf("%q %s", name, i18n.Dict(s.lang).HasBeenRemovedFromTheCart),
	})
	snapshot := cloneItems(s.items)
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
}

// ApplyAdjustments writes clamped quantities from Denormalize back into the
// canonical cart. Each adjustment surfaces its stock notice; the quantity
// write itself stays silent (no "quantity updated" toast).
func (s *State) ApplyAdjustments(adjs []Adjustment) {
	if len(adjs) == 0 {
		return
	}

	s.mu.Lock()
	for _, a := range adjs {
		idx := FindItem(s.items, a.ProductID, a.SizeID)
		if idx < 0 {
			continue
		}
		s.items[idx].Quantity = a.Available
		s.notices = append(s.notices, Notice{Kind: NoticeAdjusted, Text: a.Notice(s.lang)})
	}
	snapshot := cloneItems(s.items)
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
}

// Get returns the line for (productID, sizeID), or ok=false.
func (s *State) Get(productID, sizeID string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := FindItem(s.items, productID, sizeID)
	if idx < 0 {
		return Item{}, false
	}
	return s.items[idx], true
}

// DrainNotices returns accumulated notices and clears them.
func (s *State) DrainNotices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notices
	s.notices = nil
	return out
}

func notify(subs []Subscriber, snapshot []Item) {
	for _, fn := range subs {
		fn(cloneItems(snapshot))
	}
}
