package wells

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
	"github.com/aquabase/wellreg-backend/internal/stacking"
)

type stackingRepo struct {
	db          *gorm.DB
	submissions SubmissionRepo
	wells       WellRepo
	log         *logger.Logger
}

// NewStackingRepo adapts the well and submission repos to the persistence
// surface the stacker expects, adding transaction and advisory lock
// control.
func NewStackingRepo(db *gorm.DB, submissions SubmissionRepo, wellRepo WellRepo, baseLog *logger.Logger) stacking.Repository {
	repoLog := baseLog.With("repo", "StackingRepo")
	return &stackingRepo{db: db, submissions: submissions, wells: wellRepo, log: repoLog}
}

func (r *stackingRepo) GetSubmission(ctx context.Context, tx *gorm.DB, filingNumber uuid.UUID) (*domain.ActivitySubmission, error) {
	return r.submissions.GetByFilingNumber(ctx, tx, filingNumber)
}

func (r *stackingRepo) GetSubmissionsForWell(ctx context.Context, tx *gorm.DB, wellTagNumber int64) ([]*domain.ActivitySubmission, error) {
	return r.submissions.GetByWellTagNumber(ctx, tx, wellTagNumber)
}

func (r *stackingRepo) CreateSubmission(ctx context.Context, tx *gorm.DB, sub *domain.ActivitySubmission) error {
	_, err := r.submissions.Create(ctx, tx, sub)
	return err
}

func (r *stackingRepo) AttachWell(ctx context.Context, tx *gorm.DB, filingNumber uuid.UUID, wellTagNumber int64) error {
	return r.submissions.AttachWell(ctx, tx, filingNumber, wellTagNumber)
}

func (r *stackingRepo) GetWell(ctx context.Context, tx *gorm.DB, wellTagNumber int64) (*domain.Well, error) {
	return r.wells.GetByTagNumber(ctx, tx, wellTagNumber)
}

func (r *stackingRepo) CreateWell(ctx context.Context, tx *gorm.DB, well *domain.Well) error {
	_, err := r.wells.Create(ctx, tx, well)
	return err
}

func (r *stackingRepo) SaveWell(ctx context.Context, tx *gorm.DB, well *domain.Well, comp *stacking.Composite) error {
	return r.wells.Save(ctx, tx, well, comp)
}

func (r *stackingRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// LockWell takes a transaction-scoped advisory lock on the well so two
// filings against the same well reconcile one after the other. Released
// automatically at commit or rollback.
func (r *stackingRepo) LockWell(ctx context.Context, tx *gorm.DB, wellTagNumber int64) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?)", wellTagNumber).Error
}
