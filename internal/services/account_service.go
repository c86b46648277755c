package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountLoginResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	Me(ctx context.Context, userID string) (*response_models.CurrentUser, error)
}

type accountService struct {
	repo   repositories.AccountRepository
	vault  TripVaultServiceInterface
	logger *zap.Logger
}

func NewAccountService(repo repositories.AccountRepository, vault TripVaultServiceInterface, logger *zap.Logger) AccountServiceInterface {
	return &accountService{
		repo:   repo,
		vault:  vault,
		logger: logger,
	}
}

func (s *accountService) SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountLoginResponse, error) {
	if s.repo == nil {
		return nil, utils.ErrDatabaseError
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.repo.Insert(ctx, account); err != nil {
		s.logger.Error("failed to create account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return s.issueSession(ctx, account)
}

func (s *accountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	if s.repo == nil {
		return nil, utils.ErrDatabaseError
	}

	account, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if utils.ComparePasswords(account.PasswordHash, req.Password) != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return s.issueSession(ctx, account)
}

func (s *accountService) Me(ctx context.Context, userID string) (*response_models.CurrentUser, error) {
	if s.repo == nil {
		return nil, utils.ErrDatabaseError
	}

	account, err := s.repo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.CurrentUser{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
	}, nil
}

// issueSession mints the JWT and mirrors the signed-in user into the vault's
// current_user key so the dashboard can read it without another round trip.
func (s *accountService) issueSession(ctx context.Context, account *db_models.Account) (*response_models.AccountLoginResponse, error) {
	token, err := utils.CreateToken(account.ID, account.Email)
	if err != nil {
		return nil, err
	}

	user := response_models.CurrentUser{
		ID:      account.ID.String(),
		Name:    account.Name,
		Email:   account.Email,
		LoginAt: time.Now().UnixMilli(),
	}

	if err := s.vault.SetCurrentUser(ctx, user); err != nil {
		s.logger.Warn("failed to record current user", zap.Error(err))
	}

	return &response_models.AccountLoginResponse{
		Token: token,
		User:  user,
	}, nil
}
