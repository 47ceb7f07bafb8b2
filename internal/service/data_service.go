package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/myclassprogress/internal/models"
	"github.com/noah-isme/myclassprogress/internal/validation"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

type dataStore interface {
	Export() models.Snapshot
	Import(ctx context.Context, payload models.ImportPayload)
	RequestReset() (string, time.Time, error)
	ConfirmReset(ctx context.Context, token string) error
	Settings() models.Settings
	UpdateSettings(ctx context.Context, patch models.SettingsPatch) models.Settings
	Save(ctx context.Context) error
}

// ResetTicket is returned by the first step of a reset.
type ResetTicket struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ResetConfirmRequest carries the token from ResetTicket.
type ResetConfirmRequest struct {
	Token string `json:"token" validate:"required"`
}

// DataService covers backup, restore, reset and settings.
type DataService struct {
	store     dataStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDataService constructs the data service.
func NewDataService(store dataStore, validate *validator.Validate, logger *zap.Logger) *DataService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataService{store: store, validator: validate, logger: logger}
}

// Export returns a full backup snapshot.
func (s *DataService) Export() models.Snapshot {
	return s.store.Export()
}

// Import replaces the collections present in payload. Grades outside
// [0, 100] reject the whole payload.
func (s *DataService) Import(ctx context.Context, payload models.ImportPayload) error {
	for _, g := range payload.Grades {
		if !validation.IsValidGrade(g.Score) {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("grade %s has score %v outside 0-100", g.ID, g.Score))
		}
	}
	s.store.Import(ctx, payload)
	s.logger.Info("data imported",
		zap.Int("students", len(payload.Students)),
		zap.Int("teachers", len(payload.Teachers)),
		zap.Int("tasks", len(payload.Tasks)),
		zap.Int("grades", len(payload.Grades)),
		zap.Bool("settings", payload.Settings != nil),
	)
	return nil
}

// RequestReset issues the confirmation token for a reset to demo data.
func (s *DataService) RequestReset() (*ResetTicket, error) {
	token, expiresAt, err := s.store.RequestReset()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue reset token")
	}
	s.logger.Info("reset requested", zap.Time("expires_at", expiresAt))
	return &ResetTicket{Token: token, ExpiresAt: expiresAt}, nil
}

// ConfirmReset wipes all data back to the demo data set when the token is valid.
func (s *DataService) ConfirmReset(ctx context.Context, req ResetConfirmRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid reset payload")
	}
	if err := s.store.ConfirmReset(ctx, req.Token); err != nil {
		s.logger.Warn("reset confirmation rejected", zap.Error(err))
		return err
	}
	return nil
}

// Settings returns the school settings.
func (s *DataService) Settings() models.Settings {
	return s.store.Settings()
}

// UpdateSettings merges the patch into the settings.
func (s *DataService) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (*models.Settings, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid settings payload")
	}
	settings := s.store.UpdateSettings(ctx, patch)
	return &settings, nil
}

// Save retries persisting the full state after a reported failure.
func (s *DataService) Save(ctx context.Context) error {
	return s.store.Save(ctx)
}
