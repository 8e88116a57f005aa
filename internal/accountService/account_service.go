package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-market/internal/marketerrors"
	"campus-market/internal/models"
	"campus-market/internal/repository"
	"campus-market/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AccountService handles registration, credential verification, token
// issuance and profile management. It is the identity provider the rest of
// the API trusts for the acting-user context.
type AccountService struct {
	store     repository.AccountStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAccountService creates a new AccountService instance
func NewAccountService(store repository.AccountStore, jwtSecret string, tokenTTL time.Duration) *AccountService {
	return &AccountService{
		store:     store,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// RegisterInput carries the signup fields
type RegisterInput struct {
	Name           string
	StudentID      string
	Email          string
	Phone          string
	Password       string
	IsStudent      bool
	OnCampus       bool
	BuildingNumber string
	RoomNumber     string
}

// Register creates a new account with a bcrypt password hash and a freshly
// generated public account handle.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return models.User{}, fmt.Errorf("service: %w - name, email and password are required", marketerrors.ErrValidation)
	}

	if _, err := s.store.GetUserByEmail(ctx, in.Email); err == nil {
		return models.User{}, fmt.Errorf("service: %w - %s", marketerrors.ErrEmailTaken, in.Email)
	} else if !errors.Is(err, marketerrors.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("service: failed to check email %s: %w", in.Email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	u := models.User{
		ID:             utils.GenerateID(),
		Name:           in.Name,
		StudentID:      in.StudentID,
		Email:          in.Email,
		Phone:          in.Phone,
		PasswordHash:   string(hash),
		AccountID:      utils.ShortID(),
		IsStudent:      in.IsStudent,
		OnCampus:       in.OnCampus,
		BuildingNumber: in.BuildingNumber,
		RoomNumber:     in.RoomNumber,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return models.User{}, fmt.Errorf("service: failed to create user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and returns a signed bearer token together
// with the authenticated user.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	u, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return "", models.User{}, fmt.Errorf("service: login for %s: %w", email, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, fmt.Errorf("service: login for %s: %w", email, marketerrors.ErrInvalidCredentials)
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   u.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", models.User{}, fmt.Errorf("service: failed to sign token: %w", err)
	}
	return token, u, nil
}

// VerifyToken parses and validates a bearer token and resolves the user it
// identifies. Consumed by the auth middleware on every protected request.
func (s *AccountService) VerifyToken(ctx context.Context, raw string) (models.User, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return models.User{}, fmt.Errorf("service: %w: %v", marketerrors.ErrInvalidToken, err)
	}
	u, err := s.store.GetUser(ctx, claims.Subject)
	if err != nil {
		return models.User{}, fmt.Errorf("service: token subject %s: %w", claims.Subject, err)
	}
	return u, nil
}

// Profile returns the user's own record
func (s *AccountService) Profile(ctx context.Context, userID string) (models.User, error) {
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: profile for %s: %w", userID, err)
	}
	return u, nil
}

// UpdateProfile overwrites the mutable profile fields. Moving off campus
// clears the housing details.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, p models.ProfileUpdate) error {
	if !p.OnCampus {
		p.BuildingNumber = ""
		p.RoomNumber = ""
	}
	if err := s.store.UpdateProfile(ctx, userID, p); err != nil {
		return fmt.Errorf("service: failed to update profile for %s: %w", userID, err)
	}
	return nil
}
