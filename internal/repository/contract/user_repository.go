package contract

import (
	"context"

	"github.com/google/uuid"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business Specific
	MarkEmailVerified(ctx context.Context, userId uuid.UUID) error
	UpdateEmail(ctx context.Context, userId uuid.UUID, email string) error
	UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error
	UpdateRole(ctx context.Context, userId uuid.UUID, role entity.UserRole, listingLimit int) error

	// Token Management
	CreateEmailVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error
	FindEmailVerificationToken(ctx context.Context, specs ...specification.Specification) (*entity.EmailVerificationToken, error)
	DeleteEmailVerificationToken(ctx context.Context, id uuid.UUID) error

	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error
	FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllRefreshTokens(ctx context.Context, userId uuid.UUID) error

	// OAuth
	SaveOAuthCredential(ctx context.Context, cred *entity.OAuthCredential) error
	FindOAuthCredential(ctx context.Context, provider, providerUserId string) (*entity.OAuthCredential, error)
}
