package services

import (
	"context"
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
)

// UserSvcFacade defines the user account operations.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// AuthenticateUser verifies email/password credentials.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// FindOrCreateOAuthUser resolves a user for a validated external identity,
	// creating the account on first sign-in.
	FindOrCreateOAuthUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error)

	// StoreRefreshTokenHash persists the hash + expiry of an issued refresh token.
	StoreRefreshTokenHash(ctx context.Context, userID, tokenHash string, expiryTime time.Time) error

	// ClearRefreshToken invalidates the stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error
}

// TokenSvcFacade mints and validates session tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a presented refresh token against the
	// stored hash and expiry for the user.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error)
}

// GoogleOAuthHandlerSvcFacade drives the Google sign-in flow.
type GoogleOAuthHandlerSvcFacade interface {
	GenerateStateString(ctx context.Context) (string, error)
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ValidateIDToken verifies a Google ID token and extracts the identity.
	ValidateIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error)

	// ExchangeCodeForIDToken completes the authorization-code flow and returns
	// the verified identity from the exchanged ID token.
	ExchangeCodeForIDToken(ctx context.Context, code string) (*domain.GoogleUserInfo, error)
}
