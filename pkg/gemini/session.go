package gemini

import "context"

// ChatSession accumulates the turn history for one conversation so each call
// carries the full context. Callers are responsible for serializing access.
type ChatSession struct {
	client    *Client
	histories []*ChatHistory
}

func NewChatSession(client *Client, initial []*ChatHistory) *ChatSession {
	histories := make([]*ChatHistory, len(initial))
	copy(histories, initial)
	return &ChatSession{
		client:    client,
		histories: histories,
	}
}

// Send appends the user turn, requests a completion over the whole history,
// and records the model reply. On error the user turn is rolled back so a
// retry does not duplicate it.
func (s *ChatSession) Send(ctx context.Context, text string) (string, error) {
	s.histories = append(s.histories, &ChatHistory{
		Chat: text,
		Role: ChatMessageRoleUser,
	})

	reply, err := s.client.Generate(ctx, s.histories)
	if err != nil {
		s.histories = s.histories[:len(s.histories)-1]
		return "", err
	}

	s.histories = append(s.histories, &ChatHistory{
		Chat: reply,
		Role: ChatMessageRoleModel,
	})
	return reply, nil
}

func (s *ChatSession) History() []*ChatHistory {
	return s.histories
}
