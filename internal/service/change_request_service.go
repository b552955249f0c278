package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"estateflow-be/internal/dto"
	"estateflow-be/internal/entity"
	"estateflow-be/internal/pkg/apperr"
	"estateflow-be/internal/pkg/mailer"
	"estateflow-be/internal/repository/specification"
	"estateflow-be/internal/repository/unitofwork"
)

type IChangeRequestService interface {
	RequestEmailChange(ctx context.Context, userId uuid.UUID, req *dto.RequestEmailChangeRequest) (*dto.ChangeRequestResponse, error)
	RequestPasswordChange(ctx context.Context, userId uuid.UUID, req *dto.RequestPasswordChangeRequest) (*dto.ChangeRequestResponse, error)
	ConfirmChange(ctx context.Context, req *dto.ConfirmChangeRequest) error
	RequestPasswordReset(ctx context.Context, req *dto.RequestPasswordResetRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type changeRequestService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewChangeRequestService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService) IChangeRequestService {
	return &changeRequestService{
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

const changeRequestTTL = 24 * time.Hour

func (s *changeRequestService) RequestEmailChange(ctx context.Context, userId uuid.UUID, req *dto.RequestEmailChangeRequest) (*dto.ChangeRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	taken, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.NewEmail})
	if taken != nil {
		return nil, apperr.Conflict("email already registered")
	}

	request := &entity.ChangeRequest{
		Id:        uuid.New(),
		UserId:    userId,
		Type:      entity.ChangeRequestTypeEmail,
		NewValue:  req.NewEmail,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(changeRequestTTL),
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// A new request supersedes any pending one of the same type.
	if err := uow.ChangeRequestRepository().DeleteByUserAndType(ctx, userId, entity.ChangeRequestTypeEmail); err != nil {
		return nil, err
	}
	if err := uow.ChangeRequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	go func() {
		if emailErr := s.emailService.SendEmailChangeConfirmation(req.NewEmail, request.Token); emailErr != nil {
			fmt.Printf("Error sending email change confirmation: %v\n", emailErr)
		}
	}()

	return &dto.ChangeRequestResponse{
		Type:      string(request.Type),
		ExpiresAt: request.ExpiresAt,
	}, nil
}

func (s *changeRequestService) RequestPasswordChange(ctx context.Context, userId uuid.UUID, req *dto.RequestPasswordChangeRequest) (*dto.ChangeRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	// Hash up front so the plaintext never touches the database.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	request := &entity.ChangeRequest{
		Id:        uuid.New(),
		UserId:    userId,
		Type:      entity.ChangeRequestTypePassword,
		NewValue:  string(hash),
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(changeRequestTTL),
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChangeRequestRepository().DeleteByUserAndType(ctx, userId, entity.ChangeRequestTypePassword); err != nil {
		return nil, err
	}
	if err := uow.ChangeRequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	go func() {
		if emailErr := s.emailService.SendPasswordChangeConfirmation(user.Email, request.Token); emailErr != nil {
			fmt.Printf("Error sending password change confirmation: %v\n", emailErr)
		}
	}()

	return &dto.ChangeRequestResponse{
		Type:      string(request.Type),
		ExpiresAt: request.ExpiresAt,
	}, nil
}

func (s *changeRequestService) RequestPasswordReset(ctx context.Context, req *dto.RequestPasswordResetRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return err
	}
	if user == nil {
		// Stay silent so the endpoint cannot be used to probe for accounts.
		return nil
	}

	request := &entity.ChangeRequest{
		Id:        uuid.New(),
		UserId:    user.Id,
		Type:      entity.ChangeRequestTypePasswordReset,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(changeRequestTTL),
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChangeRequestRepository().DeleteByUserAndType(ctx, user.Id, entity.ChangeRequestTypePasswordReset); err != nil {
		return err
	}
	if err := uow.ChangeRequestRepository().Create(ctx, request); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	go func() {
		if emailErr := s.emailService.SendPasswordResetLink(user.Email, request.Token); emailErr != nil {
			fmt.Printf("Error sending password reset link: %v\n", emailErr)
		}
	}()

	return nil
}

func (s *changeRequestService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.ChangeRequestRepository().FindByToken(ctx, req.Token)
	if err != nil {
		return err
	}
	if request == nil || request.Type != entity.ChangeRequestTypePasswordReset || time.Now().After(request.ExpiresAt) {
		return apperr.Validation("invalid or expired token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	consumed, err := uow.ChangeRequestRepository().Consume(ctx, req.Token)
	if err != nil {
		return err
	}
	if !consumed {
		return apperr.Validation("invalid or expired token")
	}

	if err := uow.UserRepository().UpdatePassword(ctx, request.UserId, string(hash)); err != nil {
		return err
	}
	if err := uow.UserRepository().RevokeAllRefreshTokens(ctx, request.UserId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *changeRequestService) ConfirmChange(ctx context.Context, req *dto.ConfirmChangeRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.ChangeRequestRepository().FindByToken(ctx, req.Token)
	if err != nil {
		return err
	}
	if request == nil || time.Now().After(request.ExpiresAt) {
		return apperr.Validation("invalid or expired token")
	}
	// Reset tokens carry no pre-staged value and are redeemed through the
	// reset-password endpoint instead.
	if request.Type == entity.ChangeRequestTypePasswordReset {
		return apperr.Validation("invalid or expired token")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Delete-first guards against two confirmations racing on one token:
	// only the call that actually removes the row applies the change.
	consumed, err := uow.ChangeRequestRepository().Consume(ctx, req.Token)
	if err != nil {
		return err
	}
	if !consumed {
		return apperr.Validation("invalid or expired token")
	}

	switch request.Type {
	case entity.ChangeRequestTypeEmail:
		if err := uow.UserRepository().UpdateEmail(ctx, request.UserId, request.NewValue); err != nil {
			return err
		}
	case entity.ChangeRequestTypePassword:
		if err := uow.UserRepository().UpdatePassword(ctx, request.UserId, request.NewValue); err != nil {
			return err
		}
		// Force re-login everywhere after a password change.
		if err := uow.UserRepository().RevokeAllRefreshTokens(ctx, request.UserId); err != nil {
			return err
		}
	default:
		return apperr.Validation("unknown change request type")
	}

	return uow.Commit()
}
