package mapper

import (
	"estateflow-be/internal/entity"
	"estateflow-be/internal/model"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}
	return &entity.Conversation{
		Id:             c.Id,
		UserId:         c.UserId,
		SystemPromptId: c.SystemPromptId,
		Title:          c.Title,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m *ConversationMapper) ToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}
	return &model.Conversation{
		Id:             c.Id,
		UserId:         c.UserId,
		SystemPromptId: c.SystemPromptId,
		Title:          c.Title,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m *ConversationMapper) ToEntities(convs []*model.Conversation) []*entity.Conversation {
	entities := make([]*entity.Conversation, len(convs))
	for i, c := range convs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *ConversationMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Sender:         entity.MessageSender(msg.Sender),
		Content:        msg.Content,
		TokenCount:     msg.TokenCount,
		IsVisible:      msg.IsVisible,
		PropertyId:     msg.PropertyId,
		CreatedAt:      msg.CreatedAt,
	}
}

func (m *ConversationMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Sender:         string(msg.Sender),
		Content:        msg.Content,
		TokenCount:     msg.TokenCount,
		IsVisible:      msg.IsVisible,
		PropertyId:     msg.PropertyId,
		CreatedAt:      msg.CreatedAt,
	}
}

func (m *ConversationMapper) MessagesToEntities(msgs []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}

func (m *ConversationMapper) SystemPromptToEntity(p *model.SystemPrompt) *entity.SystemPrompt {
	if p == nil {
		return nil
	}
	return &entity.SystemPrompt{
		Id:        p.Id,
		Name:      p.Name,
		Content:   p.Content,
		IsDefault: p.IsDefault,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *ConversationMapper) SystemPromptToModel(p *entity.SystemPrompt) *model.SystemPrompt {
	if p == nil {
		return nil
	}
	return &model.SystemPrompt{
		Id:        p.Id,
		Name:      p.Name,
		Content:   p.Content,
		IsDefault: p.IsDefault,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *ConversationMapper) SystemPromptsToEntities(prompts []*model.SystemPrompt) []*entity.SystemPrompt {
	entities := make([]*entity.SystemPrompt, len(prompts))
	for i, p := range prompts {
		entities[i] = m.SystemPromptToEntity(p)
	}
	return entities
}
