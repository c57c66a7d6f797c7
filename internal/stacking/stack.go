package stacking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/apierr"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
)

// Repository is the persistence surface stacking needs. The gorm-backed
// implementation lives in the repos package; tests substitute an in-memory
// one and pass a nil tx.
type Repository interface {
	GetSubmission(ctx context.Context, tx *gorm.DB, filingNumber uuid.UUID) (*domain.ActivitySubmission, error)
	GetSubmissionsForWell(ctx context.Context, tx *gorm.DB, wellTagNumber int64) ([]*domain.ActivitySubmission, error)
	CreateSubmission(ctx context.Context, tx *gorm.DB, sub *domain.ActivitySubmission) error
	AttachWell(ctx context.Context, tx *gorm.DB, filingNumber uuid.UUID, wellTagNumber int64) error

	GetWell(ctx context.Context, tx *gorm.DB, wellTagNumber int64) (*domain.Well, error)
	CreateWell(ctx context.Context, tx *gorm.DB, well *domain.Well) error
	SaveWell(ctx context.Context, tx *gorm.DB, well *domain.Well, comp *Composite) error

	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	LockWell(ctx context.Context, tx *gorm.DB, wellTagNumber int64) error
}

// Stacker reconciles a well from its submission history whenever a new
// filing lands.
type Stacker struct {
	repo Repository
	log  *logger.Logger
}

func NewStacker(repo Repository, baseLog *logger.Logger) *Stacker {
	return &Stacker{repo: repo, log: baseLog.With("component", "stacker")}
}

// ProcessFiling folds the submission history of the well the filing belongs
// to back into the canonical well record, creating the well first if the
// filing is not yet attached to one. The whole reconciliation runs in one
// transaction holding a per-well advisory lock, so concurrent filings
// against the same well serialize instead of interleaving.
func (s *Stacker) ProcessFiling(ctx context.Context, filingNumber uuid.UUID) (*domain.Well, error) {
	var result *domain.Well
	err := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		sub, err := s.repo.GetSubmission(ctx, tx, filingNumber)
		if err != nil {
			return fmt.Errorf("load filing %s: %w", filingNumber, err)
		}

		if sub.WellTagNumber == nil {
			well, err := s.createWell(ctx, tx, sub)
			if err != nil {
				return err
			}
			result = well
			return nil
		}

		tag := *sub.WellTagNumber
		if err := s.repo.LockWell(ctx, tx, tag); err != nil {
			return fmt.Errorf("lock well %d: %w", tag, err)
		}
		well, err := s.repo.GetWell(ctx, tx, tag)
		if err != nil {
			return fmt.Errorf("load well %d: %w", tag, err)
		}
		records, err := s.repo.GetSubmissionsForWell(ctx, tx, tag)
		if err != nil {
			return fmt.Errorf("load submissions for well %d: %w", tag, err)
		}
		if len(records) == 0 {
			return apierr.NewIntegrity(fmt.Errorf("filing %s is attached to well %d but the well has no submissions", filingNumber, tag))
		}

		// A lone legacy snapshot is by definition the well it was taken
		// from; restacking it would be a no-op.
		if len(records) == 1 && records[0].WellActivityCode == domain.ActivityLegacy {
			result = well
			return nil
		}

		// A single non-legacy record on an existing well means the well
		// predates per-activity filing: capture its stored state as a
		// legacy snapshot first, so stacking does not erase history.
		if len(records) == 1 {
			legacy, err := s.backfillLegacy(ctx, tx, well)
			if err != nil {
				return err
			}
			records = append([]*domain.ActivitySubmission{legacy}, records...)
		}

		stacked, err := s.stack(ctx, tx, well, records)
		if err != nil {
			return err
		}
		result = stacked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// createWell materializes a brand-new well from a filing that is not yet
// attached to one, then attaches it.
func (s *Stacker) createWell(ctx context.Context, tx *gorm.DB, sub *domain.ActivitySubmission) (*domain.Well, error) {
	comp, err := BuildComposite([]*domain.ActivitySubmission{sub})
	if err != nil {
		return nil, err
	}
	well := &domain.Well{}
	if err := comp.Apply(well); err != nil {
		return nil, err
	}
	rehomeChildren(well)
	well.CreateUser, well.CreateDate = comp.CreateUser, comp.CreateDate
	well.UpdateUser, well.UpdateDate = comp.UpdateUser, comp.UpdateDate

	if err := s.repo.CreateWell(ctx, tx, well); err != nil {
		return nil, fmt.Errorf("create well for filing %s: %w", sub.FilingNumber, err)
	}
	if err := s.repo.AttachWell(ctx, tx, sub.FilingNumber, well.WellTagNumber); err != nil {
		return nil, fmt.Errorf("attach filing %s to well %d: %w", sub.FilingNumber, well.WellTagNumber, err)
	}
	s.log.Info("created well from filing",
		"filing_number", sub.FilingNumber,
		"well_tag_number", well.WellTagNumber,
		"activity", sub.WellActivityCode)
	return well, nil
}

func (s *Stacker) backfillLegacy(ctx context.Context, tx *gorm.DB, well *domain.Well) (*domain.ActivitySubmission, error) {
	legacy := SynthesizeLegacy(well, s.log)
	if err := domain.ValidateSubmission(legacy, domain.ValidationRelaxed); err != nil {
		// The well itself holds data that cannot round-trip through a
		// submission; stacking on top of it would corrupt the record.
		return nil, apierr.NewIntegrity(fmt.Errorf("well %d cannot be captured as a legacy snapshot: %w", well.WellTagNumber, err))
	}
	if err := s.repo.CreateSubmission(ctx, tx, legacy); err != nil {
		return nil, fmt.Errorf("persist legacy snapshot for well %d: %w", well.WellTagNumber, err)
	}
	s.log.Info("backfilled legacy snapshot", "well_tag_number", well.WellTagNumber)
	return legacy, nil
}

func (s *Stacker) stack(ctx context.Context, tx *gorm.DB, well *domain.Well, records []*domain.ActivitySubmission) (*domain.Well, error) {
	ordered := OrderSubmissions(records)
	comp, err := BuildComposite(ordered)
	if err != nil {
		return nil, err
	}

	stacked := &domain.Well{
		WellTagNumber: well.WellTagNumber,
		WellGUID:      well.WellGUID,
	}
	if err := comp.Apply(stacked); err != nil {
		return nil, err
	}
	rehomeChildren(stacked)
	stacked.CreateUser, stacked.CreateDate = comp.CreateUser, comp.CreateDate
	stacked.UpdateUser, stacked.UpdateDate = comp.UpdateUser, comp.UpdateDate

	if err := s.repo.SaveWell(ctx, tx, stacked, comp); err != nil {
		return nil, fmt.Errorf("save well %d: %w", well.WellTagNumber, err)
	}
	s.log.Info("stacked well",
		"well_tag_number", well.WellTagNumber,
		"submissions", len(ordered),
		"status", stacked.WellStatusCode)
	return stacked, nil
}

// Child records arriving through a composite still belong to submissions.
// Clear their identities and filing links so they persist as fresh well-side
// rows; the repository fills in the well tag.
func rehomeChildren(w *domain.Well) {
	for i := range w.Casings {
		w.Casings[i].CasingGUID = uuid.Nil
		w.Casings[i].FilingNumber = nil
		w.Casings[i].WellTagNumber = nil
	}
	for i := range w.Screens {
		w.Screens[i].ScreenGUID = uuid.Nil
		w.Screens[i].FilingNumber = nil
		w.Screens[i].WellTagNumber = nil
	}
	for i := range w.LinerPerforations {
		w.LinerPerforations[i].LinerPerforationGUID = uuid.Nil
		w.LinerPerforations[i].FilingNumber = nil
		w.LinerPerforations[i].WellTagNumber = nil
	}
	for i := range w.LithologyDescriptions {
		w.LithologyDescriptions[i].LithologyDescriptionGUID = uuid.Nil
		w.LithologyDescriptions[i].FilingNumber = nil
		w.LithologyDescriptions[i].WellTagNumber = nil
	}
	for i := range w.DecommissionDescriptions {
		w.DecommissionDescriptions[i].DecommissionDescriptionGUID = uuid.Nil
		w.DecommissionDescriptions[i].FilingNumber = nil
		w.DecommissionDescriptions[i].WellTagNumber = nil
	}
}
