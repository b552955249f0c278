package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageSender string

const (
	MessageSenderUser   MessageSender = "user"
	MessageSenderAI     MessageSender = "ai"
	MessageSenderSystem MessageSender = "system"
)

type SystemPrompt struct {
	Id        uuid.UUID
	Name      string
	Content   string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Conversation struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	SystemPromptId *uuid.UUID
	Title          string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Message struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Sender         MessageSender
	Content        string
	TokenCount     *int
	IsVisible      bool
	PropertyId     *uuid.UUID
	CreatedAt      time.Time
}
