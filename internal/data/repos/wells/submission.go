package wells

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
)

// Associations loaded whenever a submission is read back; stacking needs
// the full record, not just the scalar row.
var submissionPreloads = []string{
	"DrillingMethods",
	"DevelopmentMethods",
	"Casings",
	"Screens",
	"LinerPerforations",
	"LithologyDescriptions",
	"DecommissionDescriptions",
}

type SubmissionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sub *domain.ActivitySubmission) (*domain.ActivitySubmission, error)
	GetByFilingNumber(ctx context.Context, tx *gorm.DB, filingNumber uuid.UUID) (*domain.ActivitySubmission, error)
	GetByWellTagNumber(ctx context.Context, tx *gorm.DB, wellTagNumber int64) ([]*domain.ActivitySubmission, error)
	AttachWell(ctx context.Context, tx *gorm.DB, filingNumber uuid.UUID, wellTagNumber int64) error
	ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.ActivitySubmission, error)
}

type submissionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) SubmissionRepo {
	repoLog := baseLog.With("repo", "SubmissionRepo")
	return &submissionRepo{db: db, log: repoLog}
}

func (r *submissionRepo) Create(ctx context.Context, tx *gorm.DB, sub *domain.ActivitySubmission) (*domain.ActivitySubmission, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *submissionRepo) GetByFilingNumber(ctx context.Context, tx *gorm.DB, filingNumber uuid.UUID) (*domain.ActivitySubmission, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result domain.ActivitySubmission
	query := transaction.WithContext(ctx)
	for _, preload := range submissionPreloads {
		query = query.Preload(preload)
	}
	if err := query.
		Where("filing_number = ?", filingNumber).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *submissionRepo) GetByWellTagNumber(ctx context.Context, tx *gorm.DB, wellTagNumber int64) ([]*domain.ActivitySubmission, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.ActivitySubmission
	query := transaction.WithContext(ctx)
	for _, preload := range submissionPreloads {
		query = query.Preload(preload)
	}
	if err := query.
		Where("well_tag_number = ?", wellTagNumber).
		Order("create_date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *submissionRepo) AttachWell(ctx context.Context, tx *gorm.DB, filingNumber uuid.UUID, wellTagNumber int64) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Model(&domain.ActivitySubmission{}).
		Where("filing_number = ?", filingNumber).
		Update("well_tag_number", wellTagNumber).Error; err != nil {
		return err
	}
	return nil
}

func (r *submissionRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.ActivitySubmission, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if limit <= 0 {
		limit = 50
	}

	var results []*domain.ActivitySubmission
	if err := transaction.WithContext(ctx).
		Order("create_date DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
