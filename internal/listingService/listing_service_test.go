package listing

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-market/internal/marketerrors"
	"campus-market/internal/models"
	"campus-market/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

// Tests Create
func TestListingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockListings := repository.NewMockCatalogStore(ctrl)
	mockAccounts := repository.NewMockAccountStore(ctrl)
	service := NewListingService(mockListings, mockAccounts)

	owner := models.Identity{UserID: "u1", AccountID: "acct1"}
	ctx := context.Background()
	now := time.Now().UTC()

	tests := []struct {
		name          string
		input         Input
		mockSetup     func()
		expectError   bool
		expectedError error
		validate      func(t *testing.T, l models.Listing)
	}{
		{
			name: "sale_without_price_defaults_to_zero",
			input: Input{
				Name:        "Desk lamp",
				SellingMode: models.ModeSale,
				Categories:  []string{" Furniture ", ""},
				Images:      []string{"/uploads/lamp.jpg"},
			},
			mockSetup: func() {
				mockListings.EXPECT().CreateListing(ctx, gomock.Any()).Return(nil)
				mockAccounts.EXPECT().AppendListingRef(ctx, "u1", gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, l models.Listing) {
				require.Equal(t, 0.0, l.Price)
				require.Equal(t, 1, l.Quantity)
				require.Equal(t, []string{"Furniture"}, l.Categories)
				require.Nil(t, l.AuctionEndAt)
				require.Equal(t, "acct1", l.OwnerAccountID)
				_, parseErr := uuid.Parse(l.ID)
				require.NoError(t, parseErr)
			},
		},
		{
			name: "auction_sets_end_date_from_duration",
			input: Input{
				Name:         "Textbook",
				SellingMode:  models.ModeAuction,
				Categories:   []string{"Books"},
				StartingBid:  ptrF(20),
				DurationDays: ptrI(3),
				Images:       []string{"/uploads/book.jpg"},
			},
			mockSetup: func() {
				mockListings.EXPECT().CreateListing(ctx, gomock.Any()).Return(nil)
				mockAccounts.EXPECT().AppendListingRef(ctx, "u1", gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, l models.Listing) {
				require.NotNil(t, l.AuctionEndAt)
				require.WithinDuration(t, now.Add(3*24*time.Hour), *l.AuctionEndAt, 5*time.Second)
				require.Equal(t, 20.0, l.StartingBid)
			},
		},
		{
			name: "auction_duration_defaults_to_seven_days",
			input: Input{
				Name:        "Bike",
				SellingMode: models.ModeBoth,
				Categories:  []string{"Sports"},
				Price:       ptrF(100),
				Images:      []string{"/uploads/bike.jpg"},
			},
			mockSetup: func() {
				mockListings.EXPECT().CreateListing(ctx, gomock.Any()).Return(nil)
				mockAccounts.EXPECT().AppendListingRef(ctx, "u1", gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, l models.Listing) {
				require.NotNil(t, l.AuctionEndAt)
				require.WithinDuration(t, now.Add(7*24*time.Hour), *l.AuctionEndAt, 5*time.Second)
				require.Equal(t, 100.0, l.Price)
			},
		},
		{
			name: "missing_images",
			input: Input{
				Name:        "No photos",
				SellingMode: models.ModeSale,
			},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: marketerrors.ErrValidation,
		},
		{
			name: "missing_mode",
			input: Input{
				Name:   "No mode",
				Images: []string{"/uploads/x.jpg"},
			},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: marketerrors.ErrValidation,
		},
		{
			name: "zero_dimensions_dropped",
			input: Input{
				Name:        "Shelf",
				SellingMode: models.ModeSale,
				Width:       ptrF(0),
				Height:      ptrF(80),
				Images:      []string{"/uploads/shelf.jpg"},
			},
			mockSetup: func() {
				mockListings.EXPECT().CreateListing(ctx, gomock.Any()).Return(nil)
				mockAccounts.EXPECT().AppendListingRef(ctx, "u1", gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, l models.Listing) {
				require.Nil(t, l.Width)
				require.NotNil(t, l.Height)
				require.Equal(t, 80.0, *l.Height)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			l, err := service.Create(ctx, tc.input, owner)

			if tc.expectError {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(l.Images), 1)
			tc.validate(t, l)
		})
	}
}

// Tests Update
func TestListingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockListings := repository.NewMockCatalogStore(ctrl)
	mockAccounts := repository.NewMockAccountStore(ctrl)
	service := NewListingService(mockListings, mockAccounts)

	owner := models.Identity{UserID: "u1", AccountID: "acct1"}
	stranger := models.Identity{UserID: "u2", AccountID: "acct2"}
	ctx := context.Background()
	now := time.Now().UTC()
	oldEnd := now.Add(24 * time.Hour)

	stored := func() models.Listing {
		return models.Listing{
			ID:             "l1",
			Name:           "Bike",
			SellingMode:    models.ModeBoth,
			Categories:     []string{"Sports"},
			Price:          100,
			Quantity:       1,
			StartingBid:    20,
			Bids:           []models.Bid{{UserID: "u3", Amount: 25, PlacedAt: now}},
			AuctionEndAt:   &oldEnd,
			Images:         []string{"/uploads/bike.jpg"},
			OwnerAccountID: "acct1",
			CreatedAt:      now.Add(-time.Hour),
		}
	}

	t.Run("forbidden_for_non_owner", func(t *testing.T) {
		mockListings.EXPECT().GetListing(ctx, "l1").Return(stored(), nil)

		_, err := service.Update(ctx, "l1", Input{Name: "Hijacked"}, stranger)
		require.True(t, errors.Is(err, marketerrors.ErrForbidden))
	})

	t.Run("not_found", func(t *testing.T) {
		mockListings.EXPECT().GetListing(ctx, "missing").
			Return(models.Listing{}, marketerrors.ErrListingNotFound)

		_, err := service.Update(ctx, "missing", Input{}, owner)
		require.True(t, errors.Is(err, marketerrors.ErrListingNotFound))
	})

	t.Run("switch_to_sale_clears_bids_and_end_date", func(t *testing.T) {
		mockListings.EXPECT().GetListing(ctx, "l1").Return(stored(), nil)
		mockListings.EXPECT().ReplaceListing(ctx, gomock.Any()).Return(nil)

		l, err := service.Update(ctx, "l1", Input{SellingMode: models.ModeSale}, owner)
		require.NoError(t, err)
		require.Empty(t, l.Bids)
		require.Nil(t, l.AuctionEndAt)
		require.Equal(t, 100.0, l.Price) // untouched
	})

	t.Run("auction_edit_resets_countdown", func(t *testing.T) {
		mockListings.EXPECT().GetListing(ctx, "l1").Return(stored(), nil)
		mockListings.EXPECT().ReplaceListing(ctx, gomock.Any()).Return(nil)

		// An unrelated edit still restarts the clock at the default duration
		l, err := service.Update(ctx, "l1", Input{Description: "minor touch-up"}, owner)
		require.NoError(t, err)
		require.NotNil(t, l.AuctionEndAt)
		require.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), *l.AuctionEndAt, 5*time.Second)
		require.Len(t, l.Bids, 1) // still auction-capable, bids kept
	})

	t.Run("zero_valued_fields_are_skipped", func(t *testing.T) {
		mockListings.EXPECT().GetListing(ctx, "l1").Return(stored(), nil)
		mockListings.EXPECT().ReplaceListing(ctx, gomock.Any()).Return(nil)

		l, err := service.Update(ctx, "l1", Input{Price: ptrF(0), Quantity: ptrI(0)}, owner)
		require.NoError(t, err)
		require.Equal(t, 100.0, l.Price)
		require.Equal(t, 1, l.Quantity)
	})

	t.Run("new_images_replace_old", func(t *testing.T) {
		mockListings.EXPECT().GetListing(ctx, "l1").Return(stored(), nil)
		mockListings.EXPECT().ReplaceListing(ctx, gomock.Any()).Return(nil)

		l, err := service.Update(ctx, "l1", Input{Images: []string{"/uploads/a.jpg", "/uploads/b.jpg"}}, owner)
		require.NoError(t, err)
		require.Equal(t, []string{"/uploads/a.jpg", "/uploads/b.jpg"}, l.Images)
	})
}

// Tests PlaceBid
func TestListingService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockListings := repository.NewMockCatalogStore(ctrl)
	mockAccounts := repository.NewMockAccountStore(ctrl)
	service := NewListingService(mockListings, mockAccounts)

	bidder := models.Identity{UserID: "u2", AccountID: "acct2"}
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("invalid_mode_on_sale_listing", func(t *testing.T) {
		mockListings.EXPECT().GetListing(ctx, "l1").
			Return(models.Listing{ID: "l1", SellingMode: models.ModeSale}, nil)

		_, err := service.PlaceBid(ctx, "l1", bidder, ptrF(50))
		require.True(t, errors.Is(err, marketerrors.ErrInvalidMode))
	})

	t.Run("not_found", func(t *testing.T) {
		mockListings.EXPECT().GetListing(ctx, "missing").
			Return(models.Listing{}, marketerrors.ErrListingNotFound)

		_, err := service.PlaceBid(ctx, "missing", bidder, ptrF(50))
		require.True(t, errors.Is(err, marketerrors.ErrListingNotFound))
	})

	t.Run("low_bid_is_still_appended", func(t *testing.T) {
		existing := models.Bid{UserID: "u3", Amount: 50, PlacedAt: now}
		l := models.Listing{ID: "l1", SellingMode: models.ModeAuction, StartingBid: 10, Bids: []models.Bid{existing}}
		mockListings.EXPECT().GetListing(ctx, "l1").Return(l, nil)
		mockListings.EXPECT().AppendBid(ctx, "l1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, bid models.Bid) (models.Listing, error) {
				require.Equal(t, 5.0, bid.Amount)
				require.Equal(t, "u2", bid.UserID)
				l.Bids = append(l.Bids, bid)
				return l, nil
			})

		bids, err := service.PlaceBid(ctx, "l1", bidder, ptrF(5))
		require.NoError(t, err)
		require.Len(t, bids, 2)

		updated := l
		require.Equal(t, 50.0, updated.CurrentBid())
	})

	t.Run("missing_amount_coerces_to_zero", func(t *testing.T) {
		l := models.Listing{ID: "l1", SellingMode: models.ModeBoth}
		mockListings.EXPECT().GetListing(ctx, "l1").Return(l, nil)
		mockListings.EXPECT().AppendBid(ctx, "l1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, bid models.Bid) (models.Listing, error) {
				require.Equal(t, 0.0, bid.Amount)
				l.Bids = append(l.Bids, bid)
				return l, nil
			})

		bids, err := service.PlaceBid(ctx, "l1", bidder, nil)
		require.NoError(t, err)
		require.Len(t, bids, 1)
	})
}

// Tests Delete
func TestListingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockListings := repository.NewMockCatalogStore(ctrl)
	mockAccounts := repository.NewMockAccountStore(ctrl)
	service := NewListingService(mockListings, mockAccounts)

	owner := models.Identity{UserID: "u1", AccountID: "acct1"}
	ctx := context.Background()

	t.Run("owner_delete_purges_references", func(t *testing.T) {
		mockListings.EXPECT().GetListing(ctx, "l1").
			Return(models.Listing{ID: "l1", OwnerAccountID: "acct1"}, nil)
		mockListings.EXPECT().DeleteListing(ctx, "l1").Return(nil)
		mockAccounts.EXPECT().PurgeListingRefs(ctx, "l1").Return(nil)

		require.NoError(t, service.Delete(ctx, "l1", owner))
	})

	t.Run("forbidden_for_non_owner", func(t *testing.T) {
		mockListings.EXPECT().GetListing(ctx, "l1").
			Return(models.Listing{ID: "l1", OwnerAccountID: "someone-else"}, nil)

		err := service.Delete(ctx, "l1", owner)
		require.True(t, errors.Is(err, marketerrors.ErrForbidden))
	})
}

// Tests Catalog filtering
func TestListingService_Catalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockListings := repository.NewMockCatalogStore(ctrl)
	mockAccounts := repository.NewMockAccountStore(ctrl)
	service := NewListingService(mockListings, mockAccounts)

	ctx := context.Background()
	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(time.Hour)

	mockListings.EXPECT().AllListings(ctx).Return([]models.Listing{
		{ID: "live-sale", SellingMode: models.ModeSale, Quantity: 2},
		{ID: "sold-out", SellingMode: models.ModeSale, Quantity: 0},
		{ID: "open-auction", SellingMode: models.ModeAuction, AuctionEndAt: &future},
		{ID: "ended-auction", SellingMode: models.ModeAuction, AuctionEndAt: &past},
	}, nil)

	live, err := service.Catalog(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(live))
	for _, l := range live {
		ids = append(ids, l.ID)
	}
	require.Equal(t, []string{"live-sale", "open-auction"}, ids)
}
