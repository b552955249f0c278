package unitofwork

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"estateflow-be/internal/repository/contract"
	"estateflow-be/internal/repository/implementation"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PropertyRepository() contract.PropertyRepository {
	return implementation.NewPropertyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PropertyViewRepository() contract.PropertyViewRepository {
	return implementation.NewPropertyViewRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WishlistRepository() contract.WishlistRepository {
	return implementation.NewWishlistRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ConversationRepository() contract.ConversationRepository {
	return implementation.NewConversationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MessageRepository() contract.MessageRepository {
	return implementation.NewMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SystemPromptRepository() contract.SystemPromptRepository {
	return implementation.NewSystemPromptRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChangeRequestRepository() contract.ChangeRequestRepository {
	return implementation.NewChangeRequestRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SubscriptionRepository() contract.SubscriptionRepository {
	return implementation.NewSubscriptionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StatisticsRepository() contract.StatisticsRepository {
	return implementation.NewStatisticsRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FilterRepository() contract.FilterRepository {
	return implementation.NewFilterRepository(u.getDB())
}
