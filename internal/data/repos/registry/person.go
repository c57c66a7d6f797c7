package registry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
)

// PersonSearch narrows a registry listing; empty fields are ignored.
type PersonSearch struct {
	Surname            string
	RegistrationNumber string
	RegistryActivity   string
	Limit              int
}

type PersonRepo interface {
	Create(ctx context.Context, tx *gorm.DB, person *domain.Person) (*domain.Person, error)
	GetByGUID(ctx context.Context, tx *gorm.DB, personGUID uuid.UUID) (*domain.Person, error)
	Search(ctx context.Context, tx *gorm.DB, q PersonSearch) ([]*domain.Person, error)
	Update(ctx context.Context, tx *gorm.DB, person *domain.Person) error
}

type personRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPersonRepo(db *gorm.DB, baseLog *logger.Logger) PersonRepo {
	repoLog := baseLog.With("repo", "PersonRepo")
	return &personRepo{db: db, log: repoLog}
}

func (r *personRepo) Create(ctx context.Context, tx *gorm.DB, person *domain.Person) (*domain.Person, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(person).Error; err != nil {
		return nil, err
	}
	return person, nil
}

func (r *personRepo) GetByGUID(ctx context.Context, tx *gorm.DB, personGUID uuid.UUID) (*domain.Person, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result domain.Person
	if err := transaction.WithContext(ctx).
		Preload("Organization").
		Where("person_guid = ?", personGUID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *personRepo) Search(ctx context.Context, tx *gorm.DB, q PersonSearch) ([]*domain.Person, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	limit := q.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := transaction.WithContext(ctx).Model(&domain.Person{}).Preload("Organization")
	if q.Surname != "" {
		query = query.Where("surname ILIKE ?", q.Surname+"%")
	}
	if q.RegistrationNumber != "" {
		query = query.Where("registration_no = ?", q.RegistrationNumber)
	}
	if q.RegistryActivity != "" {
		query = query.Where("registry_activity_code = ?", q.RegistryActivity)
	}

	var results []*domain.Person
	if err := query.
		Order("surname ASC, first_name ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *personRepo) Update(ctx context.Context, tx *gorm.DB, person *domain.Person) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).Save(person).Error
}
