package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/pkg/kvstore"
	"wander/pkg/utils"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Account), args.Error(1)
}

func newTestAccountService(t *testing.T, repo *MockAccountRepository) AccountServiceInterface {
	t.Helper()
	cipher, err := utils.NewVaultCipher("test-passphrase")
	require.NoError(t, err)
	vault := NewTripVaultService(kvstore.NewMemoryStore(), cipher, zap.NewNop())
	return NewAccountService(repo, vault, zap.NewNop())
}

func TestSignUp_NewAccount(t *testing.T) {
	repo := new(MockAccountRepository)
	repo.On("FindByEmail", mock.Anything, "asha@example.com").Return(nil, nil)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(a *db_models.Account) bool {
		return a.Email == "asha@example.com" && a.Name == "Asha" && a.PasswordHash != "secret123"
	})).Return(nil)

	svc := newTestAccountService(t, repo)

	session, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "asha@example.com", session.User.Email)
	repo.AssertExpectations(t)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	repo := new(MockAccountRepository)
	repo.On("FindByEmail", mock.Anything, "asha@example.com").
		Return(&db_models.Account{Email: "asha@example.com"}, nil)

	svc := newTestAccountService(t, repo)

	_, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("right-password")
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	repo.On("FindByEmail", mock.Anything, "asha@example.com").
		Return(&db_models.Account{Email: "asha@example.com", PasswordHash: hash}, nil)

	svc := newTestAccountService(t, repo)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(MockAccountRepository)
	repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	svc := newTestAccountService(t, repo)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	repo.On("FindByEmail", mock.Anything, "asha@example.com").
		Return(&db_models.Account{Name: "Asha", Email: "asha@example.com", PasswordHash: hash}, nil)

	svc := newTestAccountService(t, repo)

	session, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.NotZero(t, session.User.LoginAt)
}

func TestAccountService_WithoutDatabase(t *testing.T) {
	cipher, err := utils.NewVaultCipher("test-passphrase")
	require.NoError(t, err)
	vault := NewTripVaultService(kvstore.NewMemoryStore(), cipher, zap.NewNop())
	svc := NewAccountService(nil, vault, zap.NewNop())

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
