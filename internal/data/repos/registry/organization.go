package registry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
)

type OrganizationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, org *domain.Organization) (*domain.Organization, error)
	GetByGUID(ctx context.Context, tx *gorm.DB, orgGUID uuid.UUID) (*domain.Organization, error)
	List(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Organization, error)
	Update(ctx context.Context, tx *gorm.DB, org *domain.Organization) error
}

type organizationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrganizationRepo(db *gorm.DB, baseLog *logger.Logger) OrganizationRepo {
	repoLog := baseLog.With("repo", "OrganizationRepo")
	return &organizationRepo{db: db, log: repoLog}
}

func (r *organizationRepo) Create(ctx context.Context, tx *gorm.DB, org *domain.Organization) (*domain.Organization, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(org).Error; err != nil {
		return nil, err
	}
	return org, nil
}

func (r *organizationRepo) GetByGUID(ctx context.Context, tx *gorm.DB, orgGUID uuid.UUID) (*domain.Organization, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result domain.Organization
	if err := transaction.WithContext(ctx).
		Where("org_guid = ?", orgGUID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *organizationRepo) List(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Organization, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var results []*domain.Organization
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *organizationRepo) Update(ctx context.Context, tx *gorm.DB, org *domain.Organization) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).Save(org).Error
}
