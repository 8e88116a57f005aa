package handler

import (
	"context"
	"fmt"
	"net/http"

	"campus-market/internal/accountService"
	"campus-market/internal/models"
	"campus-market/services/market/helpers"
	"campus-market/utils"

	"github.com/gin-gonic/gin"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, in account.RegisterInput) (models.User, error)
	Login(ctx context.Context, email, password string) (string, models.User, error)
	Profile(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, p models.ProfileUpdate) error
}

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// RegisterHandler handles POST /auth/register
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	created, err := h.service.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterHandler: failed to register", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "account created successfully")
	helpers.LogSuccess("RegisterHandler", "account created successfully", map[string]any{
		"user_id":    created.ID,
		"account_id": created.AccountID,
	})
}

// LoginHandler handles POST /auth/login
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.LoginResponse{Token: token, User: user}, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"user_id": user.ID,
	})
}

// ProfileHandler handles GET /users/me
func (h *AccountHandler) ProfileHandler(c *gin.Context) {
	caller, ok := helpers.IdentityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketAuthErr, "authentication required")
		return
	}

	user, err := h.service.Profile(c.Request.Context(), caller.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ProfileHandler: error retrieving profile", map[string]any{
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "profile retrieved successfully")
	helpers.LogSuccess("ProfileHandler", "profile retrieved successfully", map[string]any{
		"user_id": user.ID,
	})
}

// UpdateProfileHandler handles PUT /users/me/profile
func (h *AccountHandler) UpdateProfileHandler(c *gin.Context) {
	caller, ok := helpers.IdentityFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketAuthErr, "authentication required")
		return
	}

	var req models.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), caller.UserID, req); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateProfileHandler: failed to update profile", map[string]any{
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONMessage(c, http.StatusOK, "profile updated successfully")
	helpers.LogSuccess("UpdateProfileHandler", "profile updated successfully", map[string]any{
		"user_id": caller.UserID,
	})
}
