package handler

import (
	"context"
	"fmt"
	"net/http"

	"campus-market/internal/models"
	"campus-market/services/market/helpers"
	"campus-market/utils"

	"github.com/gin-gonic/gin"
)

type CollectionServiceInterface interface {
	AddTo(ctx context.Context, collection, userID, listingID string) error
	RemoveFrom(ctx context.Context, collection, userID, listingID string) error
	MoveTo(ctx context.Context, source, target, userID, listingID string) error
	Items(ctx context.Context, collection, userID string) ([]models.Listing, error)
}

type CollectionHandler struct {
	service CollectionServiceInterface
}

func NewCollectionHandler(service CollectionServiceInterface) *CollectionHandler {
	return &CollectionHandler{service: service}
}

// AddHandler returns the POST /users/<collection>/add/:item_id handler for a
// fixed collection. Adding to one collection silently evicts the listing from
// the other two.
func (h *CollectionHandler) AddHandler(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := helpers.IdentityFromContext(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, marketAuthErr, "authentication required")
			return
		}

		itemID := c.Param("item_id")
		if err := h.service.AddTo(c.Request.Context(), collection, caller.UserID, itemID); err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
			utils.Warn("AddHandler: failed to add listing", map[string]any{
				"collection": collection,
				"item_id":    itemID,
				"user_id":    caller.UserID,
				"error":      err.Error(),
			})
			return
		}

		utils.JSONMessage(c, http.StatusOK, "listing added to "+collection)
		helpers.LogSuccess("AddHandler", "listing added to "+collection, map[string]any{
			"collection": collection,
			"item_id":    itemID,
			"user_id":    caller.UserID,
		})
	}
}

// RemoveHandler returns the DELETE /users/<collection>/remove/:item_id handler
func (h *CollectionHandler) RemoveHandler(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := helpers.IdentityFromContext(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, marketAuthErr, "authentication required")
			return
		}

		itemID := c.Param("item_id")
		if err := h.service.RemoveFrom(c.Request.Context(), collection, caller.UserID, itemID); err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
			utils.Warn("RemoveHandler: failed to remove listing", map[string]any{
				"collection": collection,
				"item_id":    itemID,
				"user_id":    caller.UserID,
				"error":      err.Error(),
			})
			return
		}

		utils.JSONMessage(c, http.StatusOK, "listing removed from "+collection)
		helpers.LogSuccess("RemoveHandler", "listing removed from "+collection, map[string]any{
			"collection": collection,
			"item_id":    itemID,
			"user_id":    caller.UserID,
		})
	}
}

// MoveHandler returns the POST /users/<collection>/move/:item_id handler; the
// target collection comes from the request body.
func (h *CollectionHandler) MoveHandler(source string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := helpers.IdentityFromContext(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, marketAuthErr, "authentication required")
			return
		}

		itemID := c.Param("item_id")
		var req helpers.MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, "MoveHandler", err)
			return
		}

		if err := h.service.MoveTo(c.Request.Context(), source, req.To, caller.UserID, itemID); err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
			utils.Warn("MoveHandler: failed to move listing", map[string]any{
				"source":  source,
				"target":  req.To,
				"item_id": itemID,
				"user_id": caller.UserID,
				"error":   err.Error(),
			})
			return
		}

		utils.JSONMessage(c, http.StatusOK, "listing moved to "+req.To)
		helpers.LogSuccess("MoveHandler", "listing moved to "+req.To, map[string]any{
			"source":  source,
			"target":  req.To,
			"item_id": itemID,
			"user_id": caller.UserID,
		})
	}
}

// ItemsHandler returns the GET /users/<collection> handler
func (h *CollectionHandler) ItemsHandler(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := helpers.IdentityFromContext(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, marketAuthErr, "authentication required")
			return
		}

		listings, err := h.service.Items(c.Request.Context(), collection, caller.UserID)
		if err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
			utils.Warn("ItemsHandler: error retrieving collection", map[string]any{
				"collection": collection,
				"user_id":    caller.UserID,
				"error":      err.Error(),
			})
			return
		}

		utils.JSONResponse(c, http.StatusOK, helpers.NewListingViews(listings), collection+" retrieved successfully")
		helpers.LogSuccess("ItemsHandler", collection+" retrieved successfully", map[string]any{
			"collection": collection,
			"user_id":    caller.UserID,
			"count":      len(listings),
		})
	}
}
