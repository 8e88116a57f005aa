package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"campus-market/internal/marketerrors"
	model "campus-market/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of
// CatalogStore, AccountStore and MessageStore. It backs tests and local
// runs without a MongoDB instance.
//
// Collection membership is stored as a single placement tag per
// (user, listing) pair, so a listing id can never be observed in two
// collections at once; the slice views are materialized on read.
type MemoryRepo struct {
	mu         sync.RWMutex
	listings   map[string]model.Listing
	users      map[string]model.User
	placements map[string]map[string]string // userID -> listingID -> collection
	messages   []model.Message
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		listings:   make(map[string]model.Listing),
		users:      make(map[string]model.User),
		placements: make(map[string]map[string]string),
	}
}

// CreateListing stores a new listing record
func (r *MemoryRepo) CreateListing(_ context.Context, l model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings[l.ID] = l
	return nil
}

// GetListing returns a listing by id
func (r *MemoryRepo) GetListing(_ context.Context, id string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.listings[id]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	return l, nil
}

// AllListings returns every listing, newest first
func (r *MemoryRepo) AllListings(_ context.Context) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		out = append(out, l)
	}
	sortNewestFirst(out)
	return out, nil
}

// ListingsByOwner returns the listings owned by the given account, newest first
func (r *MemoryRepo) ListingsByOwner(_ context.Context, accountID string) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Listing
	for _, l := range r.listings {
		if l.OwnerAccountID == accountID {
			out = append(out, l)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// ReplaceListing overwrites an existing listing record
func (r *MemoryRepo) ReplaceListing(_ context.Context, l model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[l.ID]; !ok {
		return fmt.Errorf("replace listing %s: %w", l.ID, marketerrors.ErrListingNotFound)
	}
	r.listings[l.ID] = l
	return nil
}

// AppendBid appends a bid to the listing's bid history and returns the
// updated listing
func (r *MemoryRepo) AppendBid(_ context.Context, id string, bid model.Bid) (model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return model.Listing{}, fmt.Errorf("append bid for listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	l.Bids = append(append([]model.Bid(nil), l.Bids...), bid)
	l.UpdatedAt = bid.PlacedAt
	r.listings[id] = l
	return l, nil
}

// DecrementQuantity decrements stock by one for Sale listings with stock
// remaining. Any other listing is returned unchanged.
func (r *MemoryRepo) DecrementQuantity(_ context.Context, id string) (model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return model.Listing{}, fmt.Errorf("decrement quantity for listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	if l.SellingMode == model.ModeSale && l.Quantity > 0 {
		l.Quantity--
		r.listings[id] = l
	}
	return l, nil
}

// DeleteListing removes a listing record
func (r *MemoryRepo) DeleteListing(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[id]; !ok {
		return fmt.Errorf("delete listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	delete(r.listings, id)
	return nil
}

// CreateUser stores a new user record
func (r *MemoryRepo) CreateUser(_ context.Context, u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

// GetUser returns a user by id with the collection views materialized
func (r *MemoryRepo) GetUser(_ context.Context, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", id, marketerrors.ErrUserNotFound)
	}
	return r.materialize(u), nil
}

// GetUserByEmail returns a user by unique email
func (r *MemoryRepo) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return r.materialize(u), nil
		}
	}
	return model.User{}, fmt.Errorf("get user by email %s: %w", email, marketerrors.ErrUserNotFound)
}

// GetUserByAccountID returns a user by public account handle
func (r *MemoryRepo) GetUserByAccountID(_ context.Context, accountID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.AccountID == accountID {
			return r.materialize(u), nil
		}
	}
	return model.User{}, fmt.Errorf("get user by account id %s: %w", accountID, marketerrors.ErrUserNotFound)
}

// UpdateProfile overwrites the mutable profile fields
func (r *MemoryRepo) UpdateProfile(_ context.Context, id string, p model.ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("update profile %s: %w", id, marketerrors.ErrUserNotFound)
	}
	u.Email = p.Email
	u.Phone = p.Phone
	u.OnCampus = p.OnCampus
	u.BuildingNumber = p.BuildingNumber
	u.RoomNumber = p.RoomNumber
	r.users[id] = u
	return nil
}

// AppendListingRef records a listing id in the user's myListings
func (r *MemoryRepo) AppendListingRef(_ context.Context, userID, listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("append listing ref for user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	u.MyListings = append(append([]string(nil), u.MyListings...), listingID)
	r.users[userID] = u
	return nil
}

// SetPlacement moves the listing reference into the named collection. The
// single tag write under the lock guarantees the id is never in two
// collections simultaneously.
func (r *MemoryRepo) SetPlacement(_ context.Context, userID, listingID, collection string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return fmt.Errorf("set placement for user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	if r.placements[userID] == nil {
		r.placements[userID] = make(map[string]string)
	}
	r.placements[userID][listingID] = collection
	return nil
}

// ClearPlacement removes the listing reference only if it currently sits in
// the named collection
func (r *MemoryRepo) ClearPlacement(_ context.Context, userID, listingID, collection string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return fmt.Errorf("clear placement for user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	if r.placements[userID][listingID] == collection {
		delete(r.placements[userID], listingID)
	}
	return nil
}

// ListingRefs returns the listing ids currently placed in the named collection
func (r *MemoryRepo) ListingRefs(_ context.Context, userID, collection string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.users[userID]; !ok {
		return nil, fmt.Errorf("listing refs for user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	var out []string
	for id, col := range r.placements[userID] {
		if col == collection {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out, nil
}

// PurgeListingRefs removes every reference to the listing across all users:
// the three collections and the owner's myListings
func (r *MemoryRepo) PurgeListingRefs(_ context.Context, listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tags := range r.placements {
		delete(tags, listingID)
	}
	for id, u := range r.users {
		kept := u.MyListings[:0:0]
		for _, ref := range u.MyListings {
			if ref != listingID {
				kept = append(kept, ref)
			}
		}
		u.MyListings = kept
		r.users[id] = u
	}
	return nil
}

// AppendMessage stores a message record
func (r *MemoryRepo) AppendMessage(_ context.Context, m model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
	return nil
}

// MessagesBetween returns both directions of the exchange, oldest first
func (r *MemoryRepo) MessagesBetween(_ context.Context, a, b string) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Message
	for _, m := range r.messages {
		if (m.From == a && m.To == b) || (m.From == b && m.To == a) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SentAt.Before(out[j].SentAt) })
	return out, nil
}

// LatestByCounterpart returns the most recent message per counterpart,
// newest conversation first
func (r *MemoryRepo) LatestByCounterpart(_ context.Context, userID string) ([]model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	latest := make(map[string]model.Message)
	for _, m := range r.messages {
		var other string
		switch {
		case m.From == userID:
			other = m.To
		case m.To == userID:
			other = m.From
		default:
			continue
		}
		if prev, ok := latest[other]; !ok || m.SentAt.After(prev.SentAt) {
			latest[other] = m
		}
	}
	out := make([]model.Conversation, 0, len(latest))
	for other, m := range latest {
		conv := model.Conversation{
			UserID:      other,
			LastMessage: m.Content,
			Timestamp:   m.SentAt,
		}
		if u, ok := r.users[other]; ok {
			conv.Name = u.Name
			conv.AccountID = u.AccountID
		}
		out = append(out, conv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

// materialize fills the user's collection views from the placement tags.
// Callers must hold at least the read lock.
func (r *MemoryRepo) materialize(u model.User) model.User {
	u.Cart, u.Watchlist, u.Bidlist = nil, nil, nil
	var ids []string
	for id := range r.placements[u.ID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		switch r.placements[u.ID][id] {
		case model.CollectionCart:
			u.Cart = append(u.Cart, id)
		case model.CollectionWatchlist:
			u.Watchlist = append(u.Watchlist, id)
		case model.CollectionBidlist:
			u.Bidlist = append(u.Bidlist, id)
		}
	}
	return u
}

func sortNewestFirst(listings []model.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
}
