package service

import (
	"context"
	"errors"
	"log"
	"strings"

	errorvalues "github.com/homeright/backend/internal/error_values"
	"github.com/homeright/backend/internal/repository"
	"github.com/homeright/backend/pkg/entity"
)

type SettingsService struct {
	repo repository.SettingsRepositoryI
}

func NewSettingsService(settingsRepo repository.SettingsRepositoryI) *SettingsService {
	if settingsRepo == nil {
		log.Fatal("provided nil settingsRepo")
	}
	return &SettingsService{
		repo: settingsRepo,
	}
}

func (ss *SettingsService) GetOrCreateDefault(ctx context.Context, ownerID string) (*entity.Settings, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, errorvalues.NewValidationError("owner_id", "required")
	}
	settings, err := ss.repo.GetOrCreateDefault(ctx, ownerID)
	if err != nil {
		return nil, errors.New("settings repository error: " + err.Error())
	}
	return settings, nil
}

func (ss *SettingsService) Upsert(ctx context.Context, ownerID string, req *UpsertSettingsRequest) (*entity.Settings, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, errorvalues.NewValidationError("owner_id", "required")
	}
	if err := toValidationError(validate.Struct(req)); err != nil {
		return nil, err
	}
	settings, err := ss.repo.Upsert(ctx, ownerID, req.SelectedYear)
	if err != nil {
		return nil, errors.New("settings repository error: " + err.Error())
	}
	return settings, nil
}

func (ss *SettingsService) Delete(ctx context.Context, ownerID string) error {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return errorvalues.NewValidationError("owner_id", "required")
	}
	err := ss.repo.Delete(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSettingsNotFound) {
			return err
		}
		return errors.New("settings repository error: " + err.Error())
	}
	return nil
}
