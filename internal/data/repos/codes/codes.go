package codes

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
)

// CodeRepo serves the reference code tables backing submission fields.
// These change rarely; the codes service keeps a cache in front of this.
type CodeRepo interface {
	ListActivityCodes(ctx context.Context, tx *gorm.DB) ([]domain.WellActivityCode, error)
	ListWellClassCodes(ctx context.Context, tx *gorm.DB) ([]domain.WellClassCode, error)
	ListWellStatusCodes(ctx context.Context, tx *gorm.DB) ([]domain.WellStatusCode, error)
	ListIntendedWaterUseCodes(ctx context.Context, tx *gorm.DB) ([]domain.IntendedWaterUseCode, error)
	ListDrillingMethodCodes(ctx context.Context, tx *gorm.DB) ([]domain.DrillingMethodCode, error)
	ListDevelopmentMethodCodes(ctx context.Context, tx *gorm.DB) ([]domain.DevelopmentMethodCode, error)
	ListDecommissionMethodCodes(ctx context.Context, tx *gorm.DB) ([]domain.DecommissionMethodCode, error)
	SeedActivityCodes(ctx context.Context, tx *gorm.DB) error
}

type codeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCodeRepo(db *gorm.DB, baseLog *logger.Logger) CodeRepo {
	repoLog := baseLog.With("repo", "CodeRepo")
	return &codeRepo{db: db, log: repoLog}
}

func listCodes[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	var results []T
	if err := db.WithContext(ctx).
		Order("display_order ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *codeRepo) ListActivityCodes(ctx context.Context, tx *gorm.DB) ([]domain.WellActivityCode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return listCodes[domain.WellActivityCode](ctx, transaction)
}

func (r *codeRepo) ListWellClassCodes(ctx context.Context, tx *gorm.DB) ([]domain.WellClassCode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return listCodes[domain.WellClassCode](ctx, transaction)
}

func (r *codeRepo) ListWellStatusCodes(ctx context.Context, tx *gorm.DB) ([]domain.WellStatusCode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return listCodes[domain.WellStatusCode](ctx, transaction)
}

func (r *codeRepo) ListIntendedWaterUseCodes(ctx context.Context, tx *gorm.DB) ([]domain.IntendedWaterUseCode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return listCodes[domain.IntendedWaterUseCode](ctx, transaction)
}

func (r *codeRepo) ListDrillingMethodCodes(ctx context.Context, tx *gorm.DB) ([]domain.DrillingMethodCode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return listCodes[domain.DrillingMethodCode](ctx, transaction)
}

func (r *codeRepo) ListDevelopmentMethodCodes(ctx context.Context, tx *gorm.DB) ([]domain.DevelopmentMethodCode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return listCodes[domain.DevelopmentMethodCode](ctx, transaction)
}

func (r *codeRepo) ListDecommissionMethodCodes(ctx context.Context, tx *gorm.DB) ([]domain.DecommissionMethodCode, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return listCodes[domain.DecommissionMethodCode](ctx, transaction)
}

// SeedActivityCodes installs the activity code rows stacking depends on.
// Idempotent; existing rows are left alone.
func (r *codeRepo) SeedActivityCodes(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	rows := []domain.WellActivityCode{
		{Code: domain.ActivityLegacy},
		{Code: domain.ActivityConstruction},
		{Code: domain.ActivityAlteration},
		{Code: domain.ActivityDecommission},
		{Code: domain.ActivityStaffEdit},
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}
