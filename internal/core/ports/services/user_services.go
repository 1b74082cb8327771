package services

import (
	"context"
	"time"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	"github.com/SscSPs/checkin_ledger/internal/dto"
)

// UserReaderSvc defines read operations for users
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for users
type UserWriterSvc interface {
	// CreateUser registers a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
}

// UserAuthSvc defines credential checks
type UserAuthSvc interface {
	// AuthenticateUser returns the user for valid credentials or apperrors.ErrUnauthorized.
	AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error)
}

// UserSvcFacade combines all user service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}

// TokenSvcFacade issues access tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
