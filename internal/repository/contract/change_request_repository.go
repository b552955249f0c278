package contract

import (
	"context"

	"github.com/google/uuid"

	"estateflow-be/internal/entity"
)

type ChangeRequestRepository interface {
	Create(ctx context.Context, request *entity.ChangeRequest) error
	FindByToken(ctx context.Context, token string) (*entity.ChangeRequest, error)

	// Consume deletes the request by token and reports whether this call
	// removed the row. A false return means another request already spent it.
	Consume(ctx context.Context, token string) (bool, error)

	DeleteByUserAndType(ctx context.Context, userId uuid.UUID, reqType entity.ChangeRequestType) error
	DeleteExpired(ctx context.Context) (int64, error)
}
