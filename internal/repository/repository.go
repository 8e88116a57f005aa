package repository

import (
	"context"

	model "campus-market/internal/models"
)

// CatalogStore defines listing persistence for the marketplace
type CatalogStore interface {
	CreateListing(ctx context.Context, l model.Listing) error
	GetListing(ctx context.Context, id string) (model.Listing, error)
	AllListings(ctx context.Context) ([]model.Listing, error)
	ListingsByOwner(ctx context.Context, accountID string) ([]model.Listing, error)
	ReplaceListing(ctx context.Context, l model.Listing) error
	AppendBid(ctx context.Context, id string, bid model.Bid) (model.Listing, error)
	DecrementQuantity(ctx context.Context, id string) (model.Listing, error)
	DeleteListing(ctx context.Context, id string) error
}

// AccountStore defines user persistence, including the three reference
// collections. SetPlacement must apply the insert and both removals as one
// atomic update so a listing id is never visible in two collections.
type AccountStore interface {
	CreateUser(ctx context.Context, u model.User) error
	GetUser(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByAccountID(ctx context.Context, accountID string) (model.User, error)
	UpdateProfile(ctx context.Context, id string, p model.ProfileUpdate) error
	AppendListingRef(ctx context.Context, userID, listingID string) error
	SetPlacement(ctx context.Context, userID, listingID, collection string) error
	ClearPlacement(ctx context.Context, userID, listingID, collection string) error
	ListingRefs(ctx context.Context, userID, collection string) ([]string, error)
	PurgeListingRefs(ctx context.Context, listingID string) error
}

// MessageStore defines persistence for the messaging records
type MessageStore interface {
	AppendMessage(ctx context.Context, m model.Message) error
	MessagesBetween(ctx context.Context, a, b string) ([]model.Message, error)
	LatestByCounterpart(ctx context.Context, userID string) ([]model.Conversation, error)
}
