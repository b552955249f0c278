package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleRenterBuyer   UserRole = "renter_buyer"
	UserRolePrivateSeller UserRole = "private_seller"
	UserRoleAgency        UserRole = "agency"
	UserRoleModerator     UserRole = "moderator"
	UserRoleAdmin         UserRole = "admin"
)

// ValidRole reports whether r is one of the registerable roles.
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleRenterBuyer, UserRolePrivateSeller, UserRoleAgency,
		UserRoleModerator, UserRoleAdmin:
		return true
	}
	return false
}

// ListingLimitForRole returns the number of active listings a freshly
// registered account of the given role may hold. -1 means unlimited.
func ListingLimitForRole(r UserRole) int {
	switch r {
	case UserRolePrivateSeller:
		return 5
	case UserRoleAgency:
		return 1000
	default:
		return -1
	}
}

type User struct {
	Id              uuid.UUID
	Username        string
	Email           string
	PasswordHash    *string
	Role            UserRole
	IsEmailVerified bool
	ListingLimit    int
	AvatarURL       string
	Bio             string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type EmailVerificationToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type RefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

type OAuthCredential struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Provider       string // "google" or "facebook"
	ProviderUserId string
	AccessToken    string
	ExpiresAt      *time.Time
	CreatedAt      time.Time
}
