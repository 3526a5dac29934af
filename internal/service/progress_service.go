package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	errorvalues "github.com/homeright/backend/internal/error_values"
	"github.com/homeright/backend/internal/repository"
	"github.com/homeright/backend/pkg/entity"
)

type ProgressService struct {
	repo repository.ProgressRepositoryI
}

func NewProgressService(progressRepo repository.ProgressRepositoryI) *ProgressService {
	if progressRepo == nil {
		log.Fatal("provided nil progressRepo")
	}
	return &ProgressService{
		repo: progressRepo,
	}
}

func (ps *ProgressService) validatedRecord(req *CreateProgressRequest) (*entity.Progress, error) {
	req.OwnerID = strings.TrimSpace(req.OwnerID)
	req.TaskID = strings.TrimSpace(req.TaskID)
	if req.Status == "" {
		req.Status = entity.StatusNotStarted
	}
	if err := toValidationError(validate.Struct(req)); err != nil {
		return nil, err
	}
	return &entity.Progress{
		OwnerID: req.OwnerID,
		TaskID:  req.TaskID,
		Year:    req.Year,
		Month:   req.Month,
		Status:  req.Status,
		Cost:    req.Cost,
		Note:    req.Note,
		Date:    req.Date,
	}, nil
}

func (ps *ProgressService) Create(ctx context.Context, req *CreateProgressRequest) (*entity.Progress, error) {
	record, err := ps.validatedRecord(req)
	if err != nil {
		return nil, err
	}
	stored, err := ps.repo.Create(ctx, record)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProgressExists) {
			return nil, err
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return stored, nil
}

func (ps *ProgressService) Get(ctx context.Context, ownerID, progressID string) (*entity.Progress, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, errorvalues.NewValidationError("owner_id", "required")
	}
	id, err := primitive.ObjectIDFromHex(progressID)
	if err != nil {
		return nil, errorvalues.ErrInvalidID
	}
	record, err := ps.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProgressNotFound) {
			return nil, err
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return record, nil
}

func (ps *ProgressService) List(ctx context.Context, ownerID string, filters repository.ProgressFilters, pagination PaginationOpts) ([]*entity.Progress, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, errorvalues.NewValidationError("owner_id", "required")
	}
	if filters.TaskID != nil {
		trimmed := strings.TrimSpace(*filters.TaskID)
		filters.TaskID = &trimmed
	}
	records, err := ps.repo.List(ctx, ownerID, filters, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return records, nil
}

func (ps *ProgressService) UpsertByKey(ctx context.Context, req *CreateProgressRequest) (*entity.Progress, error) {
	record, err := ps.validatedRecord(req)
	if err != nil {
		return nil, err
	}
	stored, err := ps.repo.UpsertByKey(ctx, record)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProgressExists) {
			return nil, err
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return stored, nil
}

func (ps *ProgressService) Patch(ctx context.Context, ownerID, progressID string, req *PatchProgressRequest) (*entity.Progress, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, errorvalues.NewValidationError("owner_id", "required")
	}
	id, err := primitive.ObjectIDFromHex(progressID)
	if err != nil {
		return nil, errorvalues.ErrInvalidID
	}
	if err := toValidationError(validate.Struct(req)); err != nil {
		return nil, err
	}
	patch := entity.ProgressPatch{
		Status: req.Status,
		Cost:   req.Cost,
		Note:   req.Note,
		Date:   req.Date,
	}
	patched, err := ps.repo.Patch(ctx, ownerID, id, &patch)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProgressNotFound) {
			return nil, err
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return patched, nil
}

func (ps *ProgressService) Replace(ctx context.Context, ownerID, progressID string, req *CreateProgressRequest) (*entity.Progress, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, errorvalues.NewValidationError("owner_id", "required")
	}
	id, err := primitive.ObjectIDFromHex(progressID)
	if err != nil {
		return nil, errorvalues.ErrInvalidID
	}
	record, err := ps.validatedRecord(req)
	if err != nil {
		return nil, err
	}
	replaced, err := ps.repo.Replace(ctx, ownerID, id, record)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrProgressNotFound):
			return nil, err
		case errors.Is(err, errorvalues.ErrProgressExists):
			return nil, err
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return replaced, nil
}

func (ps *ProgressService) Delete(ctx context.Context, ownerID, progressID string) error {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return errorvalues.NewValidationError("owner_id", "required")
	}
	id, err := primitive.ObjectIDFromHex(progressID)
	if err != nil {
		return errorvalues.ErrInvalidID
	}
	err = ps.repo.Delete(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProgressNotFound) {
			return err
		}
		return errors.New("progress repository error: " + err.Error())
	}
	return nil
}
