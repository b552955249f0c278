package model

import (
	"time"

	"github.com/google/uuid"
)

type SystemPrompt struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Content   string    `gorm:"type:text;not null"`
	IsDefault bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SystemPrompt) TableName() string {
	return "system_prompts"
}

type Conversation struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	SystemPromptId *uuid.UUID `gorm:"type:uuid"`
	Title          string     `gorm:"type:varchar(255)"`
	IsActive       bool       `gorm:"default:true"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}

type Message struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID  `gorm:"type:uuid;not null;index"`
	Sender         string     `gorm:"type:varchar(20);not null"`
	Content        string     `gorm:"type:text;not null"`
	TokenCount     *int
	IsVisible      bool       `gorm:"default:true"`
	PropertyId     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
