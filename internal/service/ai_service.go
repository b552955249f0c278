package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"estateflow-be/internal/constant"
	"estateflow-be/internal/dto"
	"estateflow-be/internal/entity"
	"estateflow-be/internal/pkg/apperr"
	"estateflow-be/internal/repository/memory"
	"estateflow-be/internal/repository/specification"
	"estateflow-be/internal/repository/unitofwork"
	"estateflow-be/pkg/gemini"
)

type IAiService interface {
	CreateConversation(ctx context.Context, userId uuid.UUID, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	GetConversations(ctx context.Context, userId uuid.UUID) ([]dto.ConversationResponse, error)
	GetHistory(ctx context.Context, userId, conversationId uuid.UUID) ([]dto.MessageDTO, error)
	GetFullHistory(ctx context.Context, userId, conversationId uuid.UUID) ([]dto.MessageDTO, error)
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	DeactivateConversation(ctx context.Context, userId, conversationId uuid.UUID) error
	UpdateSystemPrompt(ctx context.Context, req *dto.UpdateSystemPromptRequest) error
	GetSystemPrompts(ctx context.Context) ([]dto.SystemPromptResponse, error)
	GetDefaultSystemPrompt(ctx context.Context, userId uuid.UUID) (*dto.SystemPromptResponse, error)
}

type aiService struct {
	uowFactory   unitofwork.RepositoryFactory
	geminiClient *gemini.Client
	sessions     *memory.SessionRepository
}

func NewAiService(uowFactory unitofwork.RepositoryFactory, geminiClient *gemini.Client, sessions *memory.SessionRepository) IAiService {
	return &aiService{
		uowFactory:   uowFactory,
		geminiClient: geminiClient,
		sessions:     sessions,
	}
}

func conversationToDTO(c *entity.Conversation) dto.ConversationResponse {
	return dto.ConversationResponse{
		Id:        c.Id,
		Title:     c.Title,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// propertySummary is the compact listing shape fed to the model. The id is
// included so the model can build listing links, never shown as text.
type propertySummary struct {
	Id              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	PropertyType    string         `json:"property_type"`
	TransactionType string         `json:"transaction_type"`
	Price           float64        `json:"price"`
	Currency        string         `json:"currency"`
	Area            float64        `json:"area,omitempty"`
	Rooms           int            `json:"rooms,omitempty"`
	Address         string         `json:"address"`
	Status          string         `json:"status"`
	ImageCount      int            `json:"image_count"`
	PricingHistory  []pricingPoint `json:"pricing_history,omitempty"`
}

type pricingPoint struct {
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	EffectiveDate string  `json:"effective_date"`
}

func (s *aiService) buildPropertiesContext(ctx context.Context, uow unitofwork.UnitOfWork) (string, error) {
	properties, err := uow.PropertyRepository().FindAll(ctx, specification.ActiveListings{})
	if err != nil {
		return "", err
	}

	summaries := make([]propertySummary, len(properties))
	for i, p := range properties {
		history := make([]pricingPoint, len(p.PricingHistory))
		for j, ph := range p.PricingHistory {
			history[j] = pricingPoint{
				Price:         ph.Price,
				Currency:      ph.Currency,
				EffectiveDate: ph.EffectiveDate.Format("2006-01-02"),
			}
		}
		summaries[i] = propertySummary{
			Id:              p.Id,
			Title:           p.Title,
			PropertyType:    string(p.PropertyType),
			TransactionType: string(p.TransactionType),
			Price:           p.Price,
			Currency:        p.Currency,
			Area:            p.Area,
			Rooms:           p.Rooms,
			Address:         p.Address,
			Status:          string(p.Status),
			ImageCount:      len(p.Images),
			PricingHistory:  history,
		}
	}

	data, err := json.Marshal(summaries)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("\n\n## Available Properties Data:\n%s", data), nil
}

func (s *aiService) CreateConversation(ctx context.Context, userId uuid.UUID, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	active, err := uow.ConversationRepository().FindActiveByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, apperr.Conflict("an active conversation already exists")
	}

	promptName := constant.DefaultPromptNameForRole(user.Role)
	prompt, err := uow.SystemPromptRepository().FindOne(ctx, specification.ByName{Name: promptName})
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, apperr.NotFound(fmt.Sprintf("system prompt %q is not seeded", promptName))
	}

	propertiesContext, err := s.buildPropertiesContext(ctx, uow)
	if err != nil {
		return nil, err
	}

	conversation := &entity.Conversation{
		Id:             uuid.New(),
		UserId:         userId,
		SystemPromptId: &prompt.Id,
		Title:          req.Title,
		IsActive:       true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, err
	}

	// The bootstrap turn carries the prompt and the listing snapshot. It is
	// hidden from history reads but replayed to the model on every send.
	systemMessage := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Sender:         entity.MessageSenderSystem,
		Content:        prompt.Content + propertiesContext,
		IsVisible:      false,
		CreatedAt:      time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, systemMessage); err != nil {
		return nil, err
	}

	welcomeMessage := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Sender:         entity.MessageSenderAI,
		Content:        constant.ConversationWelcomeMessage,
		IsVisible:      true,
		CreatedAt:      time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, welcomeMessage); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	session := gemini.NewChatSession(s.geminiClient, []*gemini.ChatHistory{
		{Chat: systemMessage.Content, Role: gemini.ChatMessageRoleUser},
		{Chat: constant.AiModelAcknowledgement, Role: gemini.ChatMessageRoleModel},
	})
	s.sessions.Save(conversation.Id.String(), session)

	res := conversationToDTO(conversation)
	return &res, nil
}

func (s *aiService) GetConversations(ctx context.Context, userId uuid.UUID) ([]dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.OwnedBy{UserId: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ConversationResponse, len(conversations))
	for i, c := range conversations {
		res[i] = conversationToDTO(c)
	}
	return res, nil
}

func (s *aiService) findOwnedConversation(ctx context.Context, uow unitofwork.UnitOfWork, userId, conversationId uuid.UUID) (*entity.Conversation, error) {
	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: conversationId})
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, apperr.NotFound("conversation not found")
	}
	if conversation.UserId != userId {
		return nil, apperr.Forbidden("conversation belongs to another user")
	}
	return conversation, nil
}

func (s *aiService) history(ctx context.Context, userId, conversationId uuid.UUID, visibleOnly bool) ([]dto.MessageDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedConversation(ctx, uow, userId, conversationId); err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.ByConversation{ConversationId: conversationId},
		specification.OrderBy{Field: "created_at", Desc: false},
	}
	if visibleOnly {
		specs = append(specs, specification.VisibleOnly{})
	}

	messages, err := uow.MessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]dto.MessageDTO, len(messages))
	for i, m := range messages {
		res[i] = dto.MessageDTO{
			Id:         m.Id,
			Index:      i,
			Sender:     string(m.Sender),
			Content:    m.Content,
			PropertyId: m.PropertyId,
			CreatedAt:  m.CreatedAt,
		}
	}
	return res, nil
}

func (s *aiService) GetHistory(ctx context.Context, userId, conversationId uuid.UUID) ([]dto.MessageDTO, error) {
	return s.history(ctx, userId, conversationId, true)
}

// GetFullHistory includes the hidden bootstrap turn, for clients that need
// the raw transcript.
func (s *aiService) GetFullHistory(ctx context.Context, userId, conversationId uuid.UUID) ([]dto.MessageDTO, error) {
	return s.history(ctx, userId, conversationId, false)
}

// loadSession returns the cached session or rebuilds one from the persisted
// messages after an eviction or restart.
func (s *aiService) loadSession(ctx context.Context, uow unitofwork.UnitOfWork, conversationId uuid.UUID) (*gemini.ChatSession, error) {
	if session, found := s.sessions.Get(conversationId.String()); found {
		return session, nil
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversation{ConversationId: conversationId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	histories := make([]*gemini.ChatHistory, 0, len(messages)+1)
	for _, m := range messages {
		role := gemini.ChatMessageRoleUser
		if m.Sender == entity.MessageSenderAI {
			role = gemini.ChatMessageRoleModel
		}
		histories = append(histories, &gemini.ChatHistory{
			Chat: m.Content,
			Role: role,
		})

		// Keep user/model turns alternating after the bootstrap message.
		if m.Sender == entity.MessageSenderSystem {
			histories = append(histories, &gemini.ChatHistory{
				Chat: constant.AiModelAcknowledgement,
				Role: gemini.ChatMessageRoleModel,
			})
		}
	}

	return gemini.NewChatSession(s.geminiClient, histories), nil
}

func (s *aiService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := s.findOwnedConversation(ctx, uow, userId, req.ConversationId)
	if err != nil {
		return nil, err
	}
	if !conversation.IsActive {
		return nil, apperr.Validation("conversation is no longer active")
	}

	lock := s.sessions.Lock(conversation.Id.String())
	lock.Lock()
	defer lock.Unlock()

	session, err := s.loadSession(ctx, uow, conversation.Id)
	if err != nil {
		return nil, err
	}

	reply, err := session.Send(ctx, req.Content)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "ai provider request failed", err)
	}

	userMessage := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Sender:         entity.MessageSenderUser,
		Content:        req.Content,
		IsVisible:      true,
		CreatedAt:      time.Now(),
	}
	aiMessage := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Sender:         entity.MessageSenderAI,
		Content:        reply,
		IsVisible:      true,
		CreatedAt:      time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}
	if err := uow.MessageRepository().Create(ctx, aiMessage); err != nil {
		return nil, err
	}

	// Conversation lists are ordered by recent activity.
	conversation.UpdatedAt = time.Now()
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.sessions.Save(conversation.Id.String(), session)

	count, err := uow.MessageRepository().Count(ctx,
		specification.ByConversation{ConversationId: conversation.Id},
		specification.VisibleOnly{},
	)
	if err != nil {
		return nil, err
	}

	return &dto.SendMessageResponse{
		UserMessage: dto.MessageDTO{
			Id:        userMessage.Id,
			Index:     int(count) - 2,
			Sender:    string(userMessage.Sender),
			Content:   userMessage.Content,
			CreatedAt: userMessage.CreatedAt,
		},
		AiMessage: dto.MessageDTO{
			Id:        aiMessage.Id,
			Index:     int(count) - 1,
			Sender:    string(aiMessage.Sender),
			Content:   aiMessage.Content,
			CreatedAt: aiMessage.CreatedAt,
		},
	}, nil
}

func (s *aiService) DeactivateConversation(ctx context.Context, userId, conversationId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := s.findOwnedConversation(ctx, uow, userId, conversationId)
	if err != nil {
		return err
	}
	if !conversation.IsActive {
		return nil
	}

	if err := uow.ConversationRepository().Deactivate(ctx, conversationId); err != nil {
		return err
	}

	s.sessions.Delete(conversationId.String())
	return nil
}

func (s *aiService) UpdateSystemPrompt(ctx context.Context, req *dto.UpdateSystemPromptRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompt, err := uow.SystemPromptRepository().FindOne(ctx, specification.ByName{Name: req.Name})
	if err != nil {
		return err
	}
	if prompt == nil {
		return apperr.NotFound("system prompt not found")
	}

	return uow.SystemPromptRepository().UpdateContentByName(ctx, req.Name, req.Content)
}

// GetDefaultSystemPrompt resolves the prompt a new conversation would be
// seeded with, based on the caller's role.
func (s *aiService) GetDefaultSystemPrompt(ctx context.Context, userId uuid.UUID) (*dto.SystemPromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	promptName := constant.DefaultPromptNameForRole(user.Role)
	prompt, err := uow.SystemPromptRepository().FindOne(ctx, specification.ByName{Name: promptName})
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, apperr.NotFound(fmt.Sprintf("system prompt %q is not seeded", promptName))
	}

	return &dto.SystemPromptResponse{
		Id:        prompt.Id,
		Name:      prompt.Name,
		Content:   prompt.Content,
		IsDefault: prompt.IsDefault,
	}, nil
}

func (s *aiService) GetSystemPrompts(ctx context.Context) ([]dto.SystemPromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompts, err := uow.SystemPromptRepository().FindAll(ctx,
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.SystemPromptResponse, len(prompts))
	for i, p := range prompts {
		res[i] = dto.SystemPromptResponse{
			Id:        p.Id,
			Name:      p.Name,
			Content:   p.Content,
			IsDefault: p.IsDefault,
		}
	}
	return res, nil
}
