package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"campus-market/internal/marketerrors"
	model "campus-market/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Listing
func newListing(id, mode string, quantity int) model.Listing {
	return model.Listing{
		ID:             id,
		Name:           fmt.Sprintf("listing %s", id),
		Description:    fmt.Sprintf("%s description", id),
		SellingMode:    mode,
		Categories:     []string{"Books"},
		Quantity:       quantity,
		Images:         []string{"/uploads/one.jpg"},
		OwnerAccountID: "acct-owner",
		CreatedAt:      time.Now().UTC(),
	}
}

// Helper to create a new User
func newUser(id string) model.User {
	return model.User{
		ID:        id,
		Name:      "user " + id,
		Email:     id + "@campus.edu",
		AccountID: "acct-" + id,
	}
}

// Test AppendBid
func TestMemoryRepo_AppendBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateListing(ctx, newListing("l1", model.ModeAuction, 1)))

	tests := []struct {
		name      string
		listingID string
		bid       model.Bid
		wantError bool
	}{
		{name: "valid_bid", listingID: "l1", bid: model.Bid{UserID: "u1", Amount: 100, PlacedAt: time.Now()}, wantError: false},
		{name: "listing_not_found", listingID: "missing", bid: model.Bid{UserID: "u1", Amount: 50, PlacedAt: time.Now()}, wantError: true},
		{name: "zero_amount_bid", listingID: "l1", bid: model.Bid{UserID: "u2", Amount: 0, PlacedAt: time.Now()}, wantError: false},
		{name: "lower_than_current_bid", listingID: "l1", bid: model.Bid{UserID: "u3", Amount: 5, PlacedAt: time.Now()}, wantError: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			updated, err := repo.AppendBid(ctx, tc.listingID, tc.bid)
			if tc.wantError {
				require.Error(t, err)
				require.True(t, errors.Is(err, marketerrors.ErrListingNotFound))
			} else {
				require.NoError(t, err)
				require.Contains(t, updated.Bids, tc.bid)
			}
		})
	}
}

// Test DecrementQuantity edge behavior: Sale-only effect, zero floor
func TestMemoryRepo_DecrementQuantity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateListing(ctx, newListing("sale", model.ModeSale, 1)))
	require.NoError(t, repo.CreateListing(ctx, newListing("auction", model.ModeAuction, 4)))

	l, err := repo.DecrementQuantity(ctx, "sale")
	require.NoError(t, err)
	require.Equal(t, 0, l.Quantity)

	// Second decrement floors at zero
	l, err = repo.DecrementQuantity(ctx, "sale")
	require.NoError(t, err)
	require.Equal(t, 0, l.Quantity)

	// Auction listings are not stock-tracked
	l, err = repo.DecrementQuantity(ctx, "auction")
	require.NoError(t, err)
	require.Equal(t, 4, l.Quantity)

	_, err = repo.DecrementQuantity(ctx, "missing")
	require.True(t, errors.Is(err, marketerrors.ErrListingNotFound))
}

// Test SetPlacement: the mutual-exclusion invariant across the three collections
func TestMemoryRepo_SetPlacement_Exclusive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateUser(ctx, newUser("u1")))

	require.NoError(t, repo.SetPlacement(ctx, "u1", "l1", model.CollectionWatchlist))
	require.NoError(t, repo.SetPlacement(ctx, "u1", "l1", model.CollectionCart))

	u, err := repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"l1"}, u.Cart)
	require.Empty(t, u.Watchlist)
	require.Empty(t, u.Bidlist)
}

// The invariant must hold even under concurrent adds targeting different
// collections: whichever write lands last wins, never both.
func TestMemoryRepo_SetPlacement_ConcurrentAdds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateUser(ctx, newUser("u1")))

	var wg sync.WaitGroup
	cols := []string{model.CollectionCart, model.CollectionWatchlist, model.CollectionBidlist}
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func(col string) {
			defer wg.Done()
			_ = repo.SetPlacement(ctx, "u1", "l1", col)
		}(cols[i%len(cols)])
	}
	wg.Wait()

	u, err := repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	total := len(u.Cart) + len(u.Watchlist) + len(u.Bidlist)
	require.Equal(t, 1, total)
}

// Test ClearPlacement only touches the named collection
func TestMemoryRepo_ClearPlacement(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateUser(ctx, newUser("u1")))
	require.NoError(t, repo.SetPlacement(ctx, "u1", "l1", model.CollectionBidlist))

	// Clearing a collection the listing is not in is a no-op
	require.NoError(t, repo.ClearPlacement(ctx, "u1", "l1", model.CollectionCart))
	refs, err := repo.ListingRefs(ctx, "u1", model.CollectionBidlist)
	require.NoError(t, err)
	require.Equal(t, []string{"l1"}, refs)

	require.NoError(t, repo.ClearPlacement(ctx, "u1", "l1", model.CollectionBidlist))
	refs, err = repo.ListingRefs(ctx, "u1", model.CollectionBidlist)
	require.NoError(t, err)
	require.Empty(t, refs)
}

// Test PurgeListingRefs: deleting a listing leaves no references anywhere
func TestMemoryRepo_PurgeListingRefs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateUser(ctx, newUser("owner")))
	require.NoError(t, repo.CreateUser(ctx, newUser("buyer")))
	require.NoError(t, repo.AppendListingRef(ctx, "owner", "l1"))
	require.NoError(t, repo.SetPlacement(ctx, "buyer", "l1", model.CollectionCart))
	require.NoError(t, repo.SetPlacement(ctx, "buyer", "l2", model.CollectionWatchlist))

	require.NoError(t, repo.PurgeListingRefs(ctx, "l1"))

	owner, err := repo.GetUser(ctx, "owner")
	require.NoError(t, err)
	require.Empty(t, owner.MyListings)

	buyer, err := repo.GetUser(ctx, "buyer")
	require.NoError(t, err)
	require.Empty(t, buyer.Cart)
	require.Equal(t, []string{"l2"}, buyer.Watchlist)
}

// Test user lookups by id, email and account handle
func TestMemoryRepo_UserLookups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateUser(ctx, newUser("u1")))

	u, err := repo.GetUserByEmail(ctx, "u1@campus.edu")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)

	u, err = repo.GetUserByAccountID(ctx, "acct-u1")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)

	_, err = repo.GetUserByEmail(ctx, "nobody@campus.edu")
	require.True(t, errors.Is(err, marketerrors.ErrUserNotFound))
}

// Test message history ordering and conversation folding
func TestMemoryRepo_Messages(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateUser(ctx, newUser("a")))
	require.NoError(t, repo.CreateUser(ctx, newUser("b")))
	require.NoError(t, repo.CreateUser(ctx, newUser("c")))

	base := time.Now().UTC()
	msgs := []model.Message{
		{ID: "m1", From: "a", To: "b", Content: "hi", SentAt: base},
		{ID: "m2", From: "b", To: "a", Content: "hello", SentAt: base.Add(time.Minute)},
		{ID: "m3", From: "c", To: "a", Content: "is this still available?", SentAt: base.Add(2 * time.Minute)},
	}
	for _, m := range msgs {
		require.NoError(t, repo.AppendMessage(ctx, m))
	}

	history, err := repo.MessagesBetween(ctx, "a", "b")
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, "m1", history[0].ID)
	require.Equal(t, "m2", history[1].ID)

	convos, err := repo.LatestByCounterpart(ctx, "a")
	require.NoError(t, err)
	require.Len(t, convos, 2)
	require.Equal(t, "c", convos[0].UserID)
	require.Equal(t, "is this still available?", convos[0].LastMessage)
	require.Equal(t, "b", convos[1].UserID)
	require.Equal(t, "hello", convos[1].LastMessage)
}

// Test listing ordering: newest first in catalog and owner views
func TestMemoryRepo_ListingOrdering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	old := newListing("old", model.ModeSale, 1)
	old.CreatedAt = time.Now().UTC().Add(-time.Hour)
	recent := newListing("recent", model.ModeSale, 1)
	recent.CreatedAt = time.Now().UTC()

	require.NoError(t, repo.CreateListing(ctx, old))
	require.NoError(t, repo.CreateListing(ctx, recent))

	all, err := repo.AllListings(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"recent", "old"}, []string{all[0].ID, all[1].ID})

	mine, err := repo.ListingsByOwner(ctx, "acct-owner")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, "recent", mine[0].ID)
}
