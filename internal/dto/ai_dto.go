package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConversationRequest struct {
	Title string `json:"title" validate:"required,min=1"`
}

type ConversationResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SendMessageRequest struct {
	ConversationId uuid.UUID `json:"conversation_id" validate:"required"`
	Content        string    `json:"content" validate:"required,min=1"`
}

type MessageDTO struct {
	Id         uuid.UUID  `json:"id"`
	Index      int        `json:"index"`
	Sender     string     `json:"sender"`
	Content    string     `json:"content"`
	PropertyId *uuid.UUID `json:"property_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type SendMessageResponse struct {
	UserMessage MessageDTO `json:"user_message"`
	AiMessage   MessageDTO `json:"ai_message"`
}

type UpdateSystemPromptRequest struct {
	Name    string `json:"name" validate:"required"`
	Content string `json:"content" validate:"required,min=1"`
}

type SystemPromptResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	IsDefault bool      `json:"is_default"`
}
