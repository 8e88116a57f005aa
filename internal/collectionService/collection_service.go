package collection

import (
	"context"
	"errors"
	"fmt"

	"campus-market/internal/marketerrors"
	"campus-market/internal/models"
	"campus-market/internal/repository"
)

// CollectionService maintains the three-way mutual exclusion invariant over
// a user's cart, watchlist and bidlist: a listing id lives in at most one of
// them at a time.
type CollectionService struct {
	accounts repository.AccountStore
	listings repository.CatalogStore
}

// NewCollectionService creates a new CollectionService instance
func NewCollectionService(accounts repository.AccountStore, listings repository.CatalogStore) *CollectionService {
	return &CollectionService{
		accounts: accounts,
		listings: listings,
	}
}

// AddTo places the listing reference into the named collection, removing it
// from the other two in the same atomic store update. Adding an id that is
// already there is a no-op.
func (s *CollectionService) AddTo(ctx context.Context, collection, userID, listingID string) error {
	if !models.ValidCollection(collection) {
		return fmt.Errorf("service: %w - unknown collection %q", marketerrors.ErrValidation, collection)
	}
	if _, err := s.listings.GetListing(ctx, listingID); err != nil {
		return fmt.Errorf("service: add to %s: %w", collection, err)
	}
	if err := s.accounts.SetPlacement(ctx, userID, listingID, collection); err != nil {
		return fmt.Errorf("service: failed to add listing %s to %s for user %s: %w", listingID, collection, userID, err)
	}
	return nil
}

// RemoveFrom removes the listing reference from exactly the named
// collection; the other two are untouched.
func (s *CollectionService) RemoveFrom(ctx context.Context, collection, userID, listingID string) error {
	if !models.ValidCollection(collection) {
		return fmt.Errorf("service: %w - unknown collection %q", marketerrors.ErrValidation, collection)
	}
	if err := s.accounts.ClearPlacement(ctx, userID, listingID, collection); err != nil {
		return fmt.Errorf("service: failed to remove listing %s from %s for user %s: %w", listingID, collection, userID, err)
	}
	return nil
}

// MoveTo relocates the listing reference from source to target. It is the
// same atomic placement write as AddTo; the source only names the intent.
func (s *CollectionService) MoveTo(ctx context.Context, source, target, userID, listingID string) error {
	if !models.ValidCollection(source) || !models.ValidCollection(target) || source == target {
		return fmt.Errorf("service: %w - invalid move %s to %s", marketerrors.ErrValidation, source, target)
	}
	return s.AddTo(ctx, target, userID, listingID)
}

// Items resolves the listings currently referenced by the named collection.
// References to listings deleted since are skipped rather than surfaced.
func (s *CollectionService) Items(ctx context.Context, collection, userID string) ([]models.Listing, error) {
	if !models.ValidCollection(collection) {
		return nil, fmt.Errorf("service: %w - unknown collection %q", marketerrors.ErrValidation, collection)
	}
	refs, err := s.accounts.ListingRefs(ctx, userID, collection)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read %s for user %s: %w", collection, userID, err)
	}
	out := make([]models.Listing, 0, len(refs))
	for _, id := range refs {
		l, err := s.listings.GetListing(ctx, id)
		if errors.Is(err, marketerrors.ErrListingNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("service: failed to resolve listing %s: %w", id, err)
		}
		out = append(out, l)
	}
	return out, nil
}
