package wells

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
	"github.com/aquabase/wellreg-backend/internal/stacking"
)

var wellPreloads = []string{
	"DrillingMethods",
	"DevelopmentMethods",
	"Casings",
	"Screens",
	"LinerPerforations",
	"LithologyDescriptions",
	"DecommissionDescriptions",
}

// WellSearch narrows a well listing; empty fields are ignored.
type WellSearch struct {
	OwnerFullName string
	StreetAddress string
	LegalPlan     string
	Limit         int
}

type WellRepo interface {
	GetByTagNumber(ctx context.Context, tx *gorm.DB, wellTagNumber int64) (*domain.Well, error)
	Create(ctx context.Context, tx *gorm.DB, well *domain.Well) (*domain.Well, error)
	Save(ctx context.Context, tx *gorm.DB, well *domain.Well, comp *stacking.Composite) error
	Search(ctx context.Context, tx *gorm.DB, q WellSearch) ([]*domain.Well, error)
}

type wellRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWellRepo(db *gorm.DB, baseLog *logger.Logger) WellRepo {
	repoLog := baseLog.With("repo", "WellRepo")
	return &wellRepo{db: db, log: repoLog}
}

func (r *wellRepo) GetByTagNumber(ctx context.Context, tx *gorm.DB, wellTagNumber int64) (*domain.Well, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result domain.Well
	query := transaction.WithContext(ctx)
	for _, preload := range wellPreloads {
		query = query.Preload(preload)
	}
	if err := query.
		Where("well_tag_number = ?", wellTagNumber).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *wellRepo) Create(ctx context.Context, tx *gorm.DB, well *domain.Well) (*domain.Well, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(well).Error; err != nil {
		return nil, err
	}
	return well, nil
}

// Save rewrites a stacked well. Scalar columns are written wholesale; the
// composite says which child sets and code collections the history actually
// touched, and only those are replaced.
func (r *wellRepo) Save(ctx context.Context, tx *gorm.DB, well *domain.Well, comp *stacking.Composite) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	transaction = transaction.WithContext(ctx)

	if err := transaction.
		Omit(clause.Associations).
		Save(well).Error; err != nil {
		return err
	}

	if _, ok := comp.Value("drilling_methods"); ok {
		if err := transaction.Model(well).Association("DrillingMethods").Replace(well.DrillingMethods); err != nil {
			return err
		}
	}
	if _, ok := comp.Value("development_methods"); ok {
		if err := transaction.Model(well).Association("DevelopmentMethods").Replace(well.DevelopmentMethods); err != nil {
			return err
		}
	}

	if _, ok := comp.Value("casing_set"); ok {
		if err := replaceChildren(transaction, well.WellTagNumber, &domain.Casing{}, toRows(well.Casings, func(c *domain.Casing) { c.WellTagNumber = &well.WellTagNumber })); err != nil {
			return err
		}
	}
	if _, ok := comp.Value("screen_set"); ok {
		if err := replaceChildren(transaction, well.WellTagNumber, &domain.Screen{}, toRows(well.Screens, func(s *domain.Screen) { s.WellTagNumber = &well.WellTagNumber })); err != nil {
			return err
		}
	}
	if _, ok := comp.Value("linerperforation_set"); ok {
		if err := replaceChildren(transaction, well.WellTagNumber, &domain.LinerPerforation{}, toRows(well.LinerPerforations, func(p *domain.LinerPerforation) { p.WellTagNumber = &well.WellTagNumber })); err != nil {
			return err
		}
	}
	if _, ok := comp.Value("lithologydescription_set"); ok {
		if err := replaceChildren(transaction, well.WellTagNumber, &domain.LithologyDescription{}, toRows(well.LithologyDescriptions, func(l *domain.LithologyDescription) { l.WellTagNumber = &well.WellTagNumber })); err != nil {
			return err
		}
	}
	if _, ok := comp.Value("decommission_description_set"); ok {
		if err := replaceChildren(transaction, well.WellTagNumber, &domain.DecommissionDescription{}, toRows(well.DecommissionDescriptions, func(d *domain.DecommissionDescription) { d.WellTagNumber = &well.WellTagNumber })); err != nil {
			return err
		}
	}
	return nil
}

// replaceChildren swaps the full well-side set of one child table: delete
// everything for the well, then insert the reconciled rows.
func replaceChildren[T any](tx *gorm.DB, wellTagNumber int64, model *T, rows []T) error {
	if err := tx.
		Where("well_tag_number = ?", wellTagNumber).
		Delete(model).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func toRows[T any](rows []T, link func(*T)) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	for i := range out {
		link(&out[i])
	}
	return out
}

func (r *wellRepo) Search(ctx context.Context, tx *gorm.DB, q WellSearch) ([]*domain.Well, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	limit := q.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := transaction.WithContext(ctx).Model(&domain.Well{})
	if q.OwnerFullName != "" {
		query = query.Where("owner_full_name ILIKE ?", "%"+q.OwnerFullName+"%")
	}
	if q.StreetAddress != "" {
		query = query.Where("street_address ILIKE ?", "%"+q.StreetAddress+"%")
	}
	if q.LegalPlan != "" {
		query = query.Where("legal_plan = ?", q.LegalPlan)
	}

	var results []*domain.Well
	if err := query.
		Order("well_tag_number ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
