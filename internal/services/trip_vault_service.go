package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/pkg/kvstore"
	"wander/pkg/utils"
)

const (
	savedTripsKey  = "saved_trips"
	currentUserKey = "current_user"
)

type TripVaultServiceInterface interface {
	SaveTrip(ctx context.Context, query request_models.PlanRequest, plan response_models.TripPlanResponse) (*response_models.SavedTrip, error)
	ListTrips(ctx context.Context) ([]response_models.SavedTrip, error)
	DeleteTrip(ctx context.Context, id string) ([]response_models.SavedTrip, error)

	SetCurrentUser(ctx context.Context, user response_models.CurrentUser) error
	GetCurrentUser(ctx context.Context) (*response_models.CurrentUser, error)
	ClearCurrentUser(ctx context.Context) error
}

// tripVaultService persists the saved-trip list as one encrypted blob under
// a single key. The current user record is stored in plaintext beside it.
type tripVaultService struct {
	store  kvstore.Store
	cipher *utils.VaultCipher
	logger *zap.Logger
}

func NewTripVaultService(store kvstore.Store, cipher *utils.VaultCipher, logger *zap.Logger) TripVaultServiceInterface {
	return &tripVaultService{
		store:  store,
		cipher: cipher,
		logger: logger,
	}
}

// SaveTrip prepends the new trip so the newest entry always lists first.
func (s *tripVaultService) SaveTrip(ctx context.Context, query request_models.PlanRequest, plan response_models.TripPlanResponse) (*response_models.SavedTrip, error) {
	trips, err := s.ListTrips(ctx)
	if err != nil {
		return nil, err
	}

	newTrip := response_models.SavedTrip{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UnixMilli(),
		Query:     query,
		Plan:      plan,
	}

	updated := append([]response_models.SavedTrip{newTrip}, trips...)
	if err := s.writeTrips(ctx, updated); err != nil {
		return nil, err
	}

	return &newTrip, nil
}

// ListTrips decrypts the stored blob. Data written before encryption was
// introduced is plain JSON; that parses as-is and is kept readable.
// Anything else unreadable counts as an empty vault rather than an error.
func (s *tripVaultService) ListTrips(ctx context.Context) ([]response_models.SavedTrip, error) {
	raw, err := s.store.Get(ctx, savedTripsKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return []response_models.SavedTrip{}, nil
		}
		return nil, utils.ErrDatabaseError
	}

	payload, err := s.cipher.Decrypt(raw)
	if err != nil {
		payload = raw
	}

	var trips []response_models.SavedTrip
	if err := json.Unmarshal([]byte(payload), &trips); err != nil {
		s.logger.Warn("stored trips are unreadable, treating vault as empty", zap.Error(err))
		return []response_models.SavedTrip{}, nil
	}
	return trips, nil
}

func (s *tripVaultService) DeleteTrip(ctx context.Context, id string) ([]response_models.SavedTrip, error) {
	trips, err := s.ListTrips(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]response_models.SavedTrip, 0, len(trips))
	found := false
	for _, t := range trips {
		if t.ID == id {
			found = true
			continue
		}
		updated = append(updated, t)
	}
	if !found {
		return nil, utils.ErrTripNotFound
	}

	if err := s.writeTrips(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *tripVaultService) writeTrips(ctx context.Context, trips []response_models.SavedTrip) error {
	payload, err := json.Marshal(trips)
	if err != nil {
		return err
	}

	encrypted, err := s.cipher.Encrypt(string(payload))
	if err != nil {
		return err
	}

	if err := s.store.Set(ctx, savedTripsKey, encrypted); err != nil {
		s.logger.Error("failed to persist trips", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *tripVaultService) SetCurrentUser(ctx context.Context, user response_models.CurrentUser) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, currentUserKey, string(payload)); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *tripVaultService) GetCurrentUser(ctx context.Context) (*response_models.CurrentUser, error) {
	raw, err := s.store.Get(ctx, currentUserKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, utils.ErrAccountNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	var user response_models.CurrentUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, utils.ErrAccountNotFound
	}
	return &user, nil
}

func (s *tripVaultService) ClearCurrentUser(ctx context.Context) error {
	if err := s.store.Delete(ctx, currentUserKey); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
