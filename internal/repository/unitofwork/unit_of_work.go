package unitofwork

import (
	"context"

	"estateflow-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PropertyRepository() contract.PropertyRepository
	PropertyViewRepository() contract.PropertyViewRepository
	WishlistRepository() contract.WishlistRepository

	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	SystemPromptRepository() contract.SystemPromptRepository

	ChangeRequestRepository() contract.ChangeRequestRepository
	SubscriptionRepository() contract.SubscriptionRepository
	StatisticsRepository() contract.StatisticsRepository
	FilterRepository() contract.FilterRepository
}
