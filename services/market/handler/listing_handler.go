package handler

import (
	"context"
	"fmt"
	"net/http"

	"campus-market/internal/listingService"
	"campus-market/internal/models"
	"campus-market/services/market/helpers"
	"campus-market/utils"

	"github.com/gin-gonic/gin"
)

type ListingServiceInterface interface {
	Create(ctx context.Context, in listing.Input, owner models.Identity) (models.Listing, error)
	Update(ctx context.Context, id string, in listing.Input, actor models.Identity) (models.Listing, error)
	PlaceBid(ctx context.Context, id string, bidder models.Identity, amount *float64) ([]models.Bid, error)
	DecrementQuantity(ctx context.Context, id string) (models.Listing, error)
	Delete(ctx context.Context, id string, actor models.Identity) error
	Catalog(ctx context.Context) ([]models.Listing, error)
	Get(ctx context.Context, id string) (models.Listing, error)
	ListByOwner(ctx context.Context, accountID string) ([]models.Listing, error)
}

type ListingHandler struct {
	service ListingServiceInterface
}

func NewListingHandler(service ListingServiceInterface) *ListingHandler {
	return &ListingHandler{service: service}
}

// CreateListingHandler handles POST /items
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	caller, ok := helpers.IdentityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketAuthErr, "authentication required")
		return
	}

	var req helpers.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToInput(), caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateListingHandler: failed to create listing", map[string]any{
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewListingView(created), "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"item_id": created.ID,
		"user_id": caller.UserID,
		"mode":    created.SellingMode,
	})
}

// UpdateListingHandler handles PUT /items/:item_id
func (h *ListingHandler) UpdateListingHandler(c *gin.Context) {
	caller, ok := helpers.IdentityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketAuthErr, "authentication required")
		return
	}

	itemID := c.Param("item_id")
	var req helpers.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateListingHandler", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), itemID, req.ToInput(), caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateListingHandler: failed to update listing", map[string]any{
			"item_id": itemID,
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingView(updated), "listing updated successfully")
	helpers.LogSuccess("UpdateListingHandler", "listing updated successfully", map[string]any{
		"item_id": updated.ID,
		"user_id": caller.UserID,
	})
}

// DeleteListingHandler handles DELETE /items/:item_id
func (h *ListingHandler) DeleteListingHandler(c *gin.Context) {
	caller, ok := helpers.IdentityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketAuthErr, "authentication required")
		return
	}

	itemID := c.Param("item_id")
	if err := h.service.Delete(c.Request.Context(), itemID, caller); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteListingHandler: failed to delete listing", map[string]any{
			"item_id": itemID,
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONMessage(c, http.StatusOK, "listing deleted successfully")
	helpers.LogSuccess("DeleteListingHandler", "listing deleted successfully", map[string]any{
		"item_id": itemID,
		"user_id": caller.UserID,
	})
}

// PlaceBidHandler handles POST /items/:item_id/bids
func (h *ListingHandler) PlaceBidHandler(c *gin.Context) {
	caller, ok := helpers.IdentityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketAuthErr, "authentication required")
		return
	}

	itemID := c.Param("item_id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bids, err := h.service.PlaceBid(c.Request.Context(), itemID, caller, req.Amount.Ptr())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: failed to place bid", map[string]any{
			"item_id": itemID,
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bids, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"item_id": itemID,
		"user_id": caller.UserID,
		"bids":    len(bids),
	})
}

// PurchaseHandler handles POST /items/:item_id/purchase
func (h *ListingHandler) PurchaseHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	updated, err := h.service.DecrementQuantity(c.Request.Context(), itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PurchaseHandler: failed to decrement quantity", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingView(updated), "quantity updated successfully")
	helpers.LogSuccess("PurchaseHandler", "quantity updated successfully", map[string]any{
		"item_id":  updated.ID,
		"quantity": updated.Quantity,
	})
}

// CatalogHandler handles GET /items
func (h *ListingHandler) CatalogHandler(c *gin.Context) {
	listings, err := h.service.Catalog(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CatalogHandler: error retrieving catalog", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingViews(listings), "listings retrieved successfully")
	helpers.LogSuccess("CatalogHandler", "listings retrieved successfully", map[string]any{
		"count": len(listings),
	})
}

// GetListingHandler handles GET /items/:item_id
func (h *ListingHandler) GetListingHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	found, err := h.service.Get(c.Request.Context(), itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetListingHandler: error retrieving listing", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingView(found), "listing retrieved successfully")
	helpers.LogSuccess("GetListingHandler", "listing retrieved successfully", map[string]any{
		"item_id": found.ID,
	})
}

// MyListingsHandler handles GET /users/me/items
func (h *ListingHandler) MyListingsHandler(c *gin.Context) {
	caller, ok := helpers.IdentityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketAuthErr, "authentication required")
		return
	}

	listings, err := h.service.ListByOwner(c.Request.Context(), caller.AccountID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MyListingsHandler: error retrieving listings", map[string]any{
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewListingViews(listings), "listings retrieved successfully")
	helpers.LogSuccess("MyListingsHandler", "listings retrieved successfully", map[string]any{
		"user_id": caller.UserID,
		"count":   len(listings),
	})
}
