package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aquabase/wellreg-backend/internal/data/repos"
	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/apierr"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
	"github.com/aquabase/wellreg-backend/internal/stacking"
)

// SubmissionService accepts filed reports and drives the reconciliation
// that keeps the well record canonical.
type SubmissionService interface {
	CreateSubmission(ctx context.Context, sub *domain.ActivitySubmission) (*domain.ActivitySubmission, *domain.Well, error)
	GetSubmission(ctx context.Context, filingNumber uuid.UUID) (*domain.ActivitySubmission, error)
	ListSubmissionsForWell(ctx context.Context, wellTagNumber int64) ([]*domain.ActivitySubmission, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ActivitySubmission, error)
}

type submissionService struct {
	db             *gorm.DB
	log            *logger.Logger
	submissionRepo repos.SubmissionRepo
	stacker        *stacking.Stacker
}

func NewSubmissionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	submissionRepo repos.SubmissionRepo,
	stacker *stacking.Stacker,
) SubmissionService {
	serviceLog := baseLog.With("service", "SubmissionService")
	return &submissionService{
		db:             db,
		log:            serviceLog,
		submissionRepo: submissionRepo,
		stacker:        stacker,
	}
}

// CreateSubmission validates and persists a filed report, then restacks the
// affected well. The returned well is the reconciled state after this
// filing.
func (ss *submissionService) CreateSubmission(ctx context.Context, sub *domain.ActivitySubmission) (*domain.ActivitySubmission, *domain.Well, error) {
	if err := domain.ValidateSubmission(sub, domain.ValidationStrict); err != nil {
		return nil, nil, apierr.NewValidation(err)
	}

	if _, err := ss.submissionRepo.Create(ctx, nil, sub); err != nil {
		return nil, nil, fmt.Errorf("persist submission: %w", err)
	}

	well, err := ss.stacker.ProcessFiling(ctx, sub.FilingNumber)
	if err != nil {
		// The filing is already durable; surface the reconciliation
		// failure as-is so the caller sees what actually went wrong.
		ss.log.Error("stacking failed after filing was persisted",
			"filing_number", sub.FilingNumber,
			"error", err)
		return nil, nil, err
	}

	ss.log.Info("submission accepted",
		"filing_number", sub.FilingNumber,
		"activity", sub.WellActivityCode,
		"well_tag_number", well.WellTagNumber)
	return sub, well, nil
}

func (ss *submissionService) GetSubmission(ctx context.Context, filingNumber uuid.UUID) (*domain.ActivitySubmission, error) {
	sub, err := ss.submissionRepo.GetByFilingNumber(ctx, nil, filingNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.New(404, "submission_not_found", fmt.Errorf("submission %s not found", filingNumber))
		}
		return nil, err
	}
	return sub, nil
}

func (ss *submissionService) ListSubmissionsForWell(ctx context.Context, wellTagNumber int64) ([]*domain.ActivitySubmission, error) {
	return ss.submissionRepo.GetByWellTagNumber(ctx, nil, wellTagNumber)
}

func (ss *submissionService) ListRecent(ctx context.Context, limit int) ([]*domain.ActivitySubmission, error) {
	return ss.submissionRepo.ListRecent(ctx, nil, limit)
}
