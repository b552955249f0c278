package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChangeRequestType string

const (
	ChangeRequestTypeEmail    ChangeRequestType = "email"
	ChangeRequestTypePassword ChangeRequestType = "password"

	// Issued from the forgot-password flow; the new password arrives
	// together with the token, so NewValue stays empty.
	ChangeRequestTypePasswordReset ChangeRequestType = "password_reset"
)

// ChangeRequest is a single-use, time-bounded token authorizing an
// email or password change. NewValue holds the plaintext email or the
// pre-hashed password, depending on Type. The row is deleted on
// confirmation, which is what makes consumption at-most-once.
type ChangeRequest struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Type      ChangeRequestType
	NewValue  string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
