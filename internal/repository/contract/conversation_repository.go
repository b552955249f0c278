package contract

import (
	"context"

	"github.com/google/uuid"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/repository/specification"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	Update(ctx context.Context, conversation *entity.Conversation) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error)

	// FindActiveByUser returns the single active conversation or nil.
	FindActiveByUser(ctx context.Context, userId uuid.UUID) (*entity.Conversation, error)
	Deactivate(ctx context.Context, conversationId uuid.UUID) error
}

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type SystemPromptRepository interface {
	Create(ctx context.Context, prompt *entity.SystemPrompt) error
	UpdateContentByName(ctx context.Context, name, content string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SystemPrompt, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SystemPrompt, error)
}
