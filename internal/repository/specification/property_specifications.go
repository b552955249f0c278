package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy filters rows to a single user.
type OwnedBy struct {
	UserId uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

// ByOwner filters properties by their owner column.
type ByOwner struct {
	OwnerId uuid.UUID
}

func (s ByOwner) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerId)
}

// ActiveListings keeps properties visible to searchers.
type ActiveListings struct{}

func (s ActiveListings) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "active")
}

// ByConversation filters messages to a conversation.
type ByConversation struct {
	ConversationId uuid.UUID
}

func (s ByConversation) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationId)
}

// VisibleOnly hides bootstrap system messages from history reads.
type VisibleOnly struct{}

func (s VisibleOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_visible = ?", true)
}

// ByProperty filters rows by their property column.
type ByProperty struct {
	PropertyId uuid.UUID
}

func (s ByProperty) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("property_id = ?", s.PropertyId)
}
