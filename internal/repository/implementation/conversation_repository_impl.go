package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/mapper"
	"estateflow-be/internal/model"
	"estateflow-be/internal/repository/contract"
	"estateflow-be/internal/repository/specification"
)

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ConversationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConversationRepositoryImpl) Create(ctx context.Context, conversation *entity.Conversation) error {
	modelConv := r.mapper.ToModel(conversation)
	if err := r.db.WithContext(ctx).Create(modelConv).Error; err != nil {
		return err
	}
	*conversation = *r.mapper.ToEntity(modelConv)
	return nil
}

func (r *ConversationRepositoryImpl) Update(ctx context.Context, conversation *entity.Conversation) error {
	modelConv := r.mapper.ToModel(conversation)
	if err := r.db.WithContext(ctx).Save(modelConv).Error; err != nil {
		return err
	}
	*conversation = *r.mapper.ToEntity(modelConv)
	return nil
}

func (r *ConversationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	var modelConv model.Conversation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelConv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelConv), nil
}

func (r *ConversationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	var modelConvs []*model.Conversation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelConvs).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(modelConvs), nil
}

func (r *ConversationRepositoryImpl) FindActiveByUser(ctx context.Context, userId uuid.UUID) (*entity.Conversation, error) {
	var modelConv model.Conversation
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userId, true).
		First(&modelConv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelConv), nil
}

func (r *ConversationRepositoryImpl) Deactivate(ctx context.Context, conversationId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Conversation{}).
		Where("id = ?", conversationId).
		Update("is_active", false).Error
}

// Messages

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewMessageRepository(db *gorm.DB) contract.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *MessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *entity.Message) error {
	modelMsg := r.mapper.MessageToModel(message)
	if err := r.db.WithContext(ctx).Create(modelMsg).Error; err != nil {
		return err
	}
	*message = *r.mapper.MessageToEntity(modelMsg)
	return nil
}

func (r *MessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var modelMsgs []*model.Message
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelMsgs).Error; err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(modelMsgs), nil
}

func (r *MessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Message{}), specs...)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// System Prompts

type SystemPromptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewSystemPromptRepository(db *gorm.DB) contract.SystemPromptRepository {
	return &SystemPromptRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *SystemPromptRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SystemPromptRepositoryImpl) Create(ctx context.Context, prompt *entity.SystemPrompt) error {
	modelPrompt := r.mapper.SystemPromptToModel(prompt)
	if err := r.db.WithContext(ctx).Create(modelPrompt).Error; err != nil {
		return err
	}
	*prompt = *r.mapper.SystemPromptToEntity(modelPrompt)
	return nil
}

func (r *SystemPromptRepositoryImpl) UpdateContentByName(ctx context.Context, name, content string) error {
	return r.db.WithContext(ctx).Model(&model.SystemPrompt{}).
		Where("name = ?", name).
		Update("content", content).Error
}

func (r *SystemPromptRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SystemPrompt, error) {
	var modelPrompt model.SystemPrompt
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelPrompt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SystemPromptToEntity(&modelPrompt), nil
}

func (r *SystemPromptRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SystemPrompt, error) {
	var modelPrompts []*model.SystemPrompt
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelPrompts).Error; err != nil {
		return nil, err
	}
	return r.mapper.SystemPromptsToEntities(modelPrompts), nil
}
