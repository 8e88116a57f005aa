package listing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campus-market/internal/marketerrors"
	"campus-market/internal/models"
	"campus-market/internal/repository"
	"campus-market/utils"
)

// ListingService defines the business logic for the listing lifecycle:
// creation, partial edits, bidding, stock decrement and deletion.
type ListingService struct {
	listings repository.CatalogStore
	accounts repository.AccountStore
}

// NewListingService creates a new ListingService instance
func NewListingService(listings repository.CatalogStore, accounts repository.AccountStore) *ListingService {
	return &ListingService{
		listings: listings,
		accounts: accounts,
	}
}

// Input is the explicit input schema for create and update operations.
// A nil pointer means the field was absent or unusable in the request;
// the engine substitutes the documented default on create and leaves the
// stored value untouched on update. Numeric parse failures never surface
// as errors.
type Input struct {
	Name         string
	Description  string
	SellingMode  string
	Categories   []string
	Price        *float64
	Quantity     *int
	StartingBid  *float64
	DurationDays *int
	Width        *float64
	Length       *float64
	Height       *float64
	Weight       *float64
	Images       []string
}

// Create validates and stores a new listing owned by owner, and records the
// listing id in the owner's myListings.
func (s *ListingService) Create(ctx context.Context, in Input, owner models.Identity) (models.Listing, error) {
	if len(in.Images) == 0 {
		return models.Listing{}, fmt.Errorf("service: %w - at least one image is required", marketerrors.ErrValidation)
	}
	if !models.ValidMode(in.SellingMode) {
		return models.Listing{}, fmt.Errorf("service: %w - missing or unknown selling mode", marketerrors.ErrValidation)
	}

	now := time.Now().UTC()
	l := models.Listing{
		ID:             utils.GenerateID(),
		Name:           in.Name,
		Description:    in.Description,
		SellingMode:    in.SellingMode,
		Categories:     normalizeCategories(in.Categories),
		Price:          floatOr(in.Price, 0),
		Quantity:       intOr(in.Quantity, 1),
		StartingBid:    floatOr(in.StartingBid, 0),
		Images:         capImages(in.Images),
		OwnerAccountID: owner.AccountID,
		Width:          dimension(in.Width),
		Length:         dimension(in.Length),
		Height:         dimension(in.Height),
		Weight:         dimension(in.Weight),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if models.AuctionCapable(l.SellingMode) {
		end := now.Add(time.Duration(intOr(in.DurationDays, 7)) * 24 * time.Hour)
		l.AuctionEndAt = &end
	}

	if err := s.listings.CreateListing(ctx, l); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to create listing: %w", err)
	}
	if err := s.accounts.AppendListingRef(ctx, owner.UserID, l.ID); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to record listing %s for owner %s: %w", l.ID, owner.UserID, err)
	}
	return l, nil
}

// Update applies a partial edit to an owned listing. Absent or zero-valued
// input fields leave the stored value alone. Saving in an auction-capable
// mode always restarts the auction countdown; saving as Sale clears the
// auction end date and the bid history.
func (s *ListingService) Update(ctx context.Context, id string, in Input, actor models.Identity) (models.Listing, error) {
	l, err := s.listings.GetListing(ctx, id)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: update listing %s: %w", id, err)
	}
	if l.OwnerAccountID != actor.AccountID {
		return models.Listing{}, fmt.Errorf("service: %w - listing %s is not owned by %s", marketerrors.ErrForbidden, id, actor.AccountID)
	}

	if in.Name != "" {
		l.Name = in.Name
	}
	if in.Description != "" {
		l.Description = in.Description
	}
	if models.ValidMode(in.SellingMode) {
		l.SellingMode = in.SellingMode
	}
	if cats := normalizeCategories(in.Categories); len(cats) > 0 {
		l.Categories = cats
	}
	if in.Price != nil && *in.Price != 0 {
		l.Price = *in.Price
	}
	if in.Quantity != nil && *in.Quantity != 0 {
		l.Quantity = *in.Quantity
	}
	if in.StartingBid != nil && *in.StartingBid != 0 {
		l.StartingBid = *in.StartingBid
	}
	if in.Width != nil && *in.Width != 0 {
		l.Width = in.Width
	}
	if in.Length != nil && *in.Length != 0 {
		l.Length = in.Length
	}
	if in.Height != nil && *in.Height != 0 {
		l.Height = in.Height
	}
	if in.Weight != nil && *in.Weight != 0 {
		l.Weight = in.Weight
	}
	if len(in.Images) > 0 {
		// New images replace the old list outright, never merged
		l.Images = capImages(in.Images)
	}

	now := time.Now().UTC()
	if models.AuctionCapable(l.SellingMode) {
		end := now.Add(time.Duration(intOr(in.DurationDays, 7)) * 24 * time.Hour)
		l.AuctionEndAt = &end
	} else {
		l.AuctionEndAt = nil
		l.Bids = nil
	}
	l.UpdatedAt = now

	if err := s.listings.ReplaceListing(ctx, l); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to save listing %s: %w", id, err)
	}
	return l, nil
}

// PlaceBid appends a bid to an auction-capable listing and returns the full
// bid history. Amounts are recorded as given, with no minimum or increment
// rule: the current-bid view is still the maximum.
func (s *ListingService) PlaceBid(ctx context.Context, id string, bidder models.Identity, amount *float64) ([]models.Bid, error) {
	l, err := s.listings.GetListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: place bid on listing %s: %w", id, err)
	}
	if !models.AuctionCapable(l.SellingMode) {
		return nil, fmt.Errorf("service: %w - listing %s has mode %s", marketerrors.ErrInvalidMode, id, l.SellingMode)
	}

	bid := models.Bid{
		UserID:   bidder.UserID,
		Amount:   floatOr(amount, 0),
		PlacedAt: time.Now().UTC(),
	}
	updated, err := s.listings.AppendBid(ctx, id, bid)
	if err != nil {
		return nil, fmt.Errorf("service: failed to record bid on listing %s: %w", id, err)
	}
	return updated.Bids, nil
}

// DecrementQuantity reduces Sale-mode stock by one, flooring at zero. Any
// authenticated purchaser may trigger it; auction listings are untouched.
func (s *ListingService) DecrementQuantity(ctx context.Context, id string) (models.Listing, error) {
	l, err := s.listings.DecrementQuantity(ctx, id)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: decrement quantity for listing %s: %w", id, err)
	}
	return l, nil
}

// Delete removes an owned listing and purges every reference to it from all
// users' collections and the owner's myListings.
func (s *ListingService) Delete(ctx context.Context, id string, actor models.Identity) error {
	l, err := s.listings.GetListing(ctx, id)
	if err != nil {
		return fmt.Errorf("service: delete listing %s: %w", id, err)
	}
	if l.OwnerAccountID != actor.AccountID {
		return fmt.Errorf("service: %w - listing %s is not owned by %s", marketerrors.ErrForbidden, id, actor.AccountID)
	}
	if err := s.listings.DeleteListing(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete listing %s: %w", id, err)
	}
	if err := s.accounts.PurgeListingRefs(ctx, id); err != nil {
		return fmt.Errorf("service: failed to purge references to listing %s: %w", id, err)
	}
	return nil
}

// Catalog returns the browseable listings, newest first. Sold-out Sale
// listings and ended auctions are filtered out at read time.
func (s *ListingService) Catalog(ctx context.Context) ([]models.Listing, error) {
	all, err := s.listings.AllListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load catalog: %w", err)
	}
	now := time.Now().UTC()
	live := make([]models.Listing, 0, len(all))
	for _, l := range all {
		if l.Live(now) {
			live = append(live, l)
		}
	}
	return live, nil
}

// Get returns a single listing by id
func (s *ListingService) Get(ctx context.Context, id string) (models.Listing, error) {
	l, err := s.listings.GetListing(ctx, id)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: get listing %s: %w", id, err)
	}
	return l, nil
}

// ListByOwner returns all listings owned by the given account, newest first
func (s *ListingService) ListByOwner(ctx context.Context, accountID string) ([]models.Listing, error) {
	out, err := s.listings.ListingsByOwner(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list listings for %s: %w", accountID, err)
	}
	return out, nil
}

// normalizeCategories trims labels and drops empty entries
func normalizeCategories(cats []string) []string {
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// capImages keeps at most three image references, matching the upload limit
func capImages(images []string) []string {
	if len(images) > 3 {
		return images[:3]
	}
	return images
}

// dimension drops absent or zero advisory measurements entirely
func dimension(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// intOr treats zero like absent, so a zero quantity or duration still takes
// the documented default
func intOr(v *int, def int) int {
	if v == nil || *v == 0 {
		return def
	}
	return *v
}
