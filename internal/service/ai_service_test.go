package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateflow-be/internal/constant"
	"estateflow-be/internal/dto"
	"estateflow-be/internal/entity"
	"estateflow-be/internal/pkg/apperr"
	"estateflow-be/internal/repository/memory"
	"estateflow-be/pkg/gemini"
)

type aiFixture struct {
	uow      *fakeUow
	sessions *memory.SessionRepository
	service  IAiService

	mu          sync.Mutex
	lastRequest *gemini.GeminiChatRequest
}

func newAiFixture(t *testing.T, reply string) *aiFixture {
	t.Helper()

	f := &aiFixture{
		uow:      newFakeUow(),
		sessions: memory.NewSessionRepository(),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gemini.GeminiChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		f.mu.Lock()
		f.lastRequest = &req
		f.mu.Unlock()

		res := gemini.GeminiChatResponse{
			Candidates: []*gemini.GeminiChatCandidate{
				{Content: &gemini.GeminiChatContent{
					Parts: []*gemini.GeminiChatParts{{Text: reply}},
					Role:  gemini.ChatMessageRoleModel,
				}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(res))
	}))
	t.Cleanup(server.Close)

	client := gemini.NewClientWithEndpoint("test-key", server.URL)
	f.service = NewAiService(&fakeFactory{uow: f.uow}, client, f.sessions)
	return f
}

func (f *aiFixture) seedUser(role entity.UserRole) *entity.User {
	user := &entity.User{
		Id:       uuid.New(),
		Username: "tester",
		Email:    "tester@example.com",
		Role:     role,
	}
	f.uow.users.users[user.Id] = user
	return user
}

func (f *aiFixture) seedPrompts() {
	for _, name := range []string{constant.SystemPromptRenterBuyer, constant.SystemPromptSellerAgency} {
		f.uow.prompts.prompts[name] = &entity.SystemPrompt{
			Id:        uuid.New(),
			Name:      name,
			Content:   "You are assisting role " + name + ".",
			IsDefault: true,
		}
	}
}

func TestCreateConversationSeedsHiddenBootstrapAndWelcome(t *testing.T) {
	f := newAiFixture(t, "ok")
	user := f.seedUser(entity.UserRoleRenterBuyer)
	f.seedPrompts()

	res, err := f.service.CreateConversation(context.Background(), user.Id, &dto.CreateConversationRequest{Title: "Apartment hunt"})
	require.NoError(t, err)
	assert.Equal(t, "Apartment hunt", res.Title)
	assert.True(t, res.IsActive)

	messages := f.uow.messages.messages
	require.Len(t, messages, 2)

	system := messages[0]
	assert.Equal(t, entity.MessageSenderSystem, system.Sender)
	assert.False(t, system.IsVisible)
	assert.True(t, strings.HasPrefix(system.Content, "You are assisting role "+constant.SystemPromptRenterBuyer))
	assert.Contains(t, system.Content, "## Available Properties Data:")

	welcome := messages[1]
	assert.Equal(t, entity.MessageSenderAI, welcome.Sender)
	assert.True(t, welcome.IsVisible)
	assert.Equal(t, constant.ConversationWelcomeMessage, welcome.Content)

	_, cached := f.sessions.Get(res.Id.String())
	assert.True(t, cached)
	assert.Equal(t, 1, f.uow.commits)
}

func TestCreateConversationPicksPromptByRole(t *testing.T) {
	f := newAiFixture(t, "ok")
	user := f.seedUser(entity.UserRoleAgency)
	f.seedPrompts()

	_, err := f.service.CreateConversation(context.Background(), user.Id, &dto.CreateConversationRequest{Title: "Selling"})
	require.NoError(t, err)

	system := f.uow.messages.messages[0]
	assert.Contains(t, system.Content, constant.SystemPromptSellerAgency)
}

func TestCreateConversationConflictsOnActive(t *testing.T) {
	f := newAiFixture(t, "ok")
	user := f.seedUser(entity.UserRoleRenterBuyer)
	f.seedPrompts()

	_, err := f.service.CreateConversation(context.Background(), user.Id, &dto.CreateConversationRequest{Title: "First"})
	require.NoError(t, err)

	_, err = f.service.CreateConversation(context.Background(), user.Id, &dto.CreateConversationRequest{Title: "Second"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestGetHistoryHidesBootstrapMessage(t *testing.T) {
	f := newAiFixture(t, "ok")
	user := f.seedUser(entity.UserRoleRenterBuyer)
	f.seedPrompts()

	res, err := f.service.CreateConversation(context.Background(), user.Id, &dto.CreateConversationRequest{Title: "Hunt"})
	require.NoError(t, err)

	history, err := f.service.GetHistory(context.Background(), user.Id, res.Id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 0, history[0].Index)
	assert.Equal(t, string(entity.MessageSenderAI), history[0].Sender)
	assert.Equal(t, constant.ConversationWelcomeMessage, history[0].Content)
}

func TestGetHistoryForbiddenForStranger(t *testing.T) {
	f := newAiFixture(t, "ok")
	user := f.seedUser(entity.UserRoleRenterBuyer)
	f.seedPrompts()

	res, err := f.service.CreateConversation(context.Background(), user.Id, &dto.CreateConversationRequest{Title: "Hunt"})
	require.NoError(t, err)

	_, err = f.service.GetHistory(context.Background(), uuid.New(), res.Id)
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestSendMessagePersistsBothTurns(t *testing.T) {
	f := newAiFixture(t, "Here are two listings that match.")
	user := f.seedUser(entity.UserRoleRenterBuyer)
	f.seedPrompts()

	conv, err := f.service.CreateConversation(context.Background(), user.Id, &dto.CreateConversationRequest{Title: "Hunt"})
	require.NoError(t, err)

	res, err := f.service.SendMessage(context.Background(), user.Id, &dto.SendMessageRequest{
		ConversationId: conv.Id,
		Content:        "Two rooms in Kyiv under 80k",
	})
	require.NoError(t, err)

	// Welcome is index 0, so the new pair lands at 1 and 2.
	assert.Equal(t, 1, res.UserMessage.Index)
	assert.Equal(t, 2, res.AiMessage.Index)
	assert.Equal(t, "Two rooms in Kyiv under 80k", res.UserMessage.Content)
	assert.Equal(t, "Here are two listings that match.", res.AiMessage.Content)

	history, err := f.service.GetHistory(context.Background(), user.Id, conv.Id)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestSendMessageRejectsInactiveConversation(t *testing.T) {
	f := newAiFixture(t, "ok")
	user := f.seedUser(entity.UserRoleRenterBuyer)
	f.seedPrompts()

	conv, err := f.service.CreateConversation(context.Background(), user.Id, &dto.CreateConversationRequest{Title: "Hunt"})
	require.NoError(t, err)
	require.NoError(t, f.service.DeactivateConversation(context.Background(), user.Id, conv.Id))

	_, err = f.service.SendMessage(context.Background(), user.Id, &dto.SendMessageRequest{
		ConversationId: conv.Id,
		Content:        "still there?",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSendMessageRebuildsSessionAfterEviction(t *testing.T) {
	f := newAiFixture(t, "rebuilt fine")
	user := f.seedUser(entity.UserRoleRenterBuyer)
	f.seedPrompts()

	conv, err := f.service.CreateConversation(context.Background(), user.Id, &dto.CreateConversationRequest{Title: "Hunt"})
	require.NoError(t, err)

	f.sessions.Delete(conv.Id.String())

	_, err = f.service.SendMessage(context.Background(), user.Id, &dto.SendMessageRequest{
		ConversationId: conv.Id,
		Content:        "anything new?",
	})
	require.NoError(t, err)

	f.mu.Lock()
	sent := f.lastRequest
	f.mu.Unlock()
	require.NotNil(t, sent)
	// Bootstrap user turn, injected acknowledgement, welcome, then the question.
	require.Len(t, sent.Contents, 4)
	assert.Equal(t, gemini.ChatMessageRoleUser, sent.Contents[0].Role)
	assert.Contains(t, sent.Contents[0].Parts[0].Text, "## Available Properties Data:")
	assert.Equal(t, gemini.ChatMessageRoleModel, sent.Contents[1].Role)
	assert.Equal(t, constant.AiModelAcknowledgement, sent.Contents[1].Parts[0].Text)
	assert.Equal(t, gemini.ChatMessageRoleModel, sent.Contents[2].Role)
	assert.Equal(t, gemini.ChatMessageRoleUser, sent.Contents[3].Role)
	assert.Equal(t, "anything new?", sent.Contents[3].Parts[0].Text)
}

func TestCreateConversationUnseededPromptNotFound(t *testing.T) {
	f := newAiFixture(t, "ok")
	user := f.seedUser(entity.UserRoleRenterBuyer)

	_, err := f.service.CreateConversation(context.Background(), user.Id, &dto.CreateConversationRequest{Title: "Hunt"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateConversationBootstrapCarriesPricingHistory(t *testing.T) {
	f := newAiFixture(t, "ok")
	user := f.seedUser(entity.UserRoleRenterBuyer)
	f.seedPrompts()

	listing := seedListing(f.uow, "Flat on Khreshchatyk")
	listing.PricingHistory = []*entity.PricingHistory{
		{
			Id:            uuid.New(),
			PropertyId:    listing.Id,
			Price:         95000,
			Currency:      "USD",
			EffectiveDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Id:            uuid.New(),
			PropertyId:    listing.Id,
			Price:         89000,
			Currency:      "USD",
			EffectiveDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	_, err := f.service.CreateConversation(context.Background(), user.Id, &dto.CreateConversationRequest{Title: "Hunt"})
	require.NoError(t, err)

	system := f.uow.messages.messages[0]
	assert.Contains(t, system.Content, `"pricing_history"`)
	assert.Contains(t, system.Content, `"effective_date":"2026-03-15"`)
	assert.Contains(t, system.Content, `"price":89000`)
}

func TestGetFullHistoryIncludesBootstrap(t *testing.T) {
	f := newAiFixture(t, "ok")
	user := f.seedUser(entity.UserRoleRenterBuyer)
	f.seedPrompts()

	res, err := f.service.CreateConversation(context.Background(), user.Id, &dto.CreateConversationRequest{Title: "Hunt"})
	require.NoError(t, err)

	full, err := f.service.GetFullHistory(context.Background(), user.Id, res.Id)
	require.NoError(t, err)
	require.Len(t, full, 2)
	assert.Equal(t, 0, full[0].Index)
	assert.Equal(t, string(entity.MessageSenderSystem), full[0].Sender)
	assert.Contains(t, full[0].Content, "## Available Properties Data:")
	assert.Equal(t, constant.ConversationWelcomeMessage, full[1].Content)

	_, err = f.service.GetFullHistory(context.Background(), uuid.New(), res.Id)
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestSendMessageBumpsConversationActivity(t *testing.T) {
	f := newAiFixture(t, "ok")
	user := f.seedUser(entity.UserRoleRenterBuyer)
	f.seedPrompts()

	conv, err := f.service.CreateConversation(context.Background(), user.Id, &dto.CreateConversationRequest{Title: "Hunt"})
	require.NoError(t, err)

	stored := f.uow.conversations.conversations[conv.Id]
	stale := time.Now().Add(-48 * time.Hour)
	stored.UpdatedAt = stale

	_, err = f.service.SendMessage(context.Background(), user.Id, &dto.SendMessageRequest{
		ConversationId: conv.Id,
		Content:        "any updates?",
	})
	require.NoError(t, err)

	assert.True(t, stored.UpdatedAt.After(stale))
}

func TestGetDefaultSystemPromptByRole(t *testing.T) {
	tests := []struct {
		name   string
		role   entity.UserRole
		prompt string
	}{
		{name: "renter buyer", role: entity.UserRoleRenterBuyer, prompt: constant.SystemPromptRenterBuyer},
		{name: "agency", role: entity.UserRoleAgency, prompt: constant.SystemPromptSellerAgency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAiFixture(t, "ok")
			user := f.seedUser(tt.role)
			f.seedPrompts()

			res, err := f.service.GetDefaultSystemPrompt(context.Background(), user.Id)
			require.NoError(t, err)
			assert.Equal(t, tt.prompt, res.Name)
		})
	}
}

func TestGetDefaultSystemPromptUnseeded(t *testing.T) {
	f := newAiFixture(t, "ok")
	user := f.seedUser(entity.UserRoleRenterBuyer)

	_, err := f.service.GetDefaultSystemPrompt(context.Background(), user.Id)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateSystemPromptUnknownName(t *testing.T) {
	f := newAiFixture(t, "ok")
	f.seedPrompts()

	err := f.service.UpdateSystemPrompt(context.Background(), &dto.UpdateSystemPromptRequest{
		Name:    "missing-prompt",
		Content: "new content",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.NoError(t, f.service.UpdateSystemPrompt(context.Background(), &dto.UpdateSystemPromptRequest{
		Name:    constant.SystemPromptRenterBuyer,
		Content: "new content",
	}))
	assert.Equal(t, "new content", f.uow.prompts.prompts[constant.SystemPromptRenterBuyer].Content)
}
