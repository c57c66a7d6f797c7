package stacking

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aquabase/wellreg-backend/internal/domain"
)

// fakeRepo keeps wells and submissions in maps so the orchestrator's state
// machine can be exercised without a database. The tx handle is ignored.
type fakeRepo struct {
	submissions map[uuid.UUID]*domain.ActivitySubmission
	wells       map[int64]*domain.Well
	nextTag     int64
	locks       []int64
	saves       int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		submissions: make(map[uuid.UUID]*domain.ActivitySubmission),
		wells:       make(map[int64]*domain.Well),
		nextTag:     100,
	}
}

func (f *fakeRepo) GetSubmission(_ context.Context, _ *gorm.DB, filingNumber uuid.UUID) (*domain.ActivitySubmission, error) {
	sub, ok := f.submissions[filingNumber]
	if !ok {
		return nil, fmt.Errorf("submission %s not found", filingNumber)
	}
	return sub, nil
}

func (f *fakeRepo) GetSubmissionsForWell(_ context.Context, _ *gorm.DB, wellTagNumber int64) ([]*domain.ActivitySubmission, error) {
	var out []*domain.ActivitySubmission
	for _, sub := range f.submissions {
		if sub.WellTagNumber != nil && *sub.WellTagNumber == wellTagNumber {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreateDate.Before(out[j].CreateDate) })
	return out, nil
}

func (f *fakeRepo) CreateSubmission(_ context.Context, _ *gorm.DB, sub *domain.ActivitySubmission) error {
	if sub.FilingNumber == uuid.Nil {
		sub.FilingNumber = uuid.New()
	}
	f.submissions[sub.FilingNumber] = sub
	return nil
}

func (f *fakeRepo) AttachWell(_ context.Context, _ *gorm.DB, filingNumber uuid.UUID, wellTagNumber int64) error {
	sub, ok := f.submissions[filingNumber]
	if !ok {
		return fmt.Errorf("submission %s not found", filingNumber)
	}
	sub.WellTagNumber = &wellTagNumber
	return nil
}

func (f *fakeRepo) GetWell(_ context.Context, _ *gorm.DB, wellTagNumber int64) (*domain.Well, error) {
	well, ok := f.wells[wellTagNumber]
	if !ok {
		return nil, fmt.Errorf("well %d not found", wellTagNumber)
	}
	return well, nil
}

func (f *fakeRepo) CreateWell(_ context.Context, _ *gorm.DB, well *domain.Well) error {
	f.nextTag++
	well.WellTagNumber = f.nextTag
	well.WellGUID = uuid.New()
	f.wells[well.WellTagNumber] = well
	return nil
}

func (f *fakeRepo) SaveWell(_ context.Context, _ *gorm.DB, well *domain.Well, _ *Composite) error {
	f.saves++
	f.wells[well.WellTagNumber] = well
	return nil
}

func (f *fakeRepo) Transaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (f *fakeRepo) LockWell(_ context.Context, _ *gorm.DB, wellTagNumber int64) error {
	f.locks = append(f.locks, wellTagNumber)
	return nil
}

func (f *fakeRepo) addSubmission(sub *domain.ActivitySubmission) *domain.ActivitySubmission {
	sub.FilingNumber = uuid.New()
	f.submissions[sub.FilingNumber] = sub
	return sub
}

func (f *fakeRepo) addWell(well *domain.Well) *domain.Well {
	f.nextTag++
	well.WellTagNumber = f.nextTag
	well.WellGUID = uuid.New()
	f.wells[well.WellTagNumber] = well
	return well
}

func TestProcessFilingCreatesWellForUnattachedFiling(t *testing.T) {
	repo := newFakeRepo()
	stacker := NewStacker(repo, testLogger(t))

	sub := repo.addSubmission(&domain.ActivitySubmission{
		WellActivityCode: domain.ActivityConstruction,
		OwnerFullName:    sp("A. Driller"),
		Casings:          []domain.Casing{casing(fp(0), fp(12))},
	})
	sub.CreateUser = "driller@example.org"
	sub.CreateDate = time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)

	well, err := stacker.ProcessFiling(context.Background(), sub.FilingNumber)
	if err != nil {
		t.Fatalf("ProcessFiling: %v", err)
	}
	if well.WellTagNumber == 0 {
		t.Fatalf("well was not assigned a tag number")
	}
	if sub.WellTagNumber == nil || *sub.WellTagNumber != well.WellTagNumber {
		t.Fatalf("filing was not attached to the new well")
	}
	if well.WellStatusCode == nil || *well.WellStatusCode != domain.WellStatusUnderConstruction {
		t.Fatalf("status = %v, want %s", well.WellStatusCode, domain.WellStatusUnderConstruction)
	}
	if well.OwnerFullName == nil || *well.OwnerFullName != "A. Driller" {
		t.Fatalf("owner_full_name = %v, want copied from filing", well.OwnerFullName)
	}
	if len(well.Casings) != 1 || well.Casings[0].FilingNumber != nil {
		t.Fatalf("casings not rehomed onto the well: %+v", well.Casings)
	}
	if well.CreateUser != "driller@example.org" {
		t.Fatalf("create_user = %s, want the filing's", well.CreateUser)
	}
}

func TestProcessFilingBackfillsLegacyForPreexistingWell(t *testing.T) {
	repo := newFakeRepo()
	stacker := NewStacker(repo, testLogger(t))

	well := repo.addWell(&domain.Well{
		OwnerFullName: sp("Original Owner"),
		Casings: []domain.Casing{
			casing(fp(0), fp(10)),
			casing(fp(20), fp(30)),
		},
	})
	well.CreateUser = "loader@example.org"
	well.CreateDate = time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC)

	sub := repo.addSubmission(&domain.ActivitySubmission{
		WellTagNumber:    &well.WellTagNumber,
		WellActivityCode: domain.ActivityAlteration,
		Casings:          []domain.Casing{casing(fp(5), fp(15))},
	})
	sub.CreateUser = "driller@example.org"
	sub.CreateDate = time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)

	stacked, err := stacker.ProcessFiling(context.Background(), sub.FilingNumber)
	if err != nil {
		t.Fatalf("ProcessFiling: %v", err)
	}

	records, _ := repo.GetSubmissionsForWell(context.Background(), nil, well.WellTagNumber)
	if len(records) != 2 {
		t.Fatalf("expected legacy snapshot + alteration, got %d submissions", len(records))
	}
	legacy := records[0]
	if legacy.WellActivityCode != domain.ActivityLegacy {
		t.Fatalf("oldest record is %s, want %s", legacy.WellActivityCode, domain.ActivityLegacy)
	}
	if len(legacy.Casings) != 2 {
		t.Fatalf("legacy snapshot has %d casings, want the well's 2", len(legacy.Casings))
	}

	// [5,15] knocks out [0,10]; [20,30] survives from the snapshot.
	if len(stacked.Casings) != 2 {
		t.Fatalf("stacked well has %d casings, want 2", len(stacked.Casings))
	}
	if *stacked.Casings[0].Start != 5 || *stacked.Casings[0].End != 15 {
		t.Fatalf("first casing [%v,%v], want [5,15]", *stacked.Casings[0].Start, *stacked.Casings[0].End)
	}
	if stacked.OwnerFullName == nil || *stacked.OwnerFullName != "Original Owner" {
		t.Fatalf("owner_full_name = %v, want preserved from snapshot", stacked.OwnerFullName)
	}
	if stacked.WellStatusCode == nil || *stacked.WellStatusCode != domain.WellStatusAltered {
		t.Fatalf("status = %v, want %s", stacked.WellStatusCode, domain.WellStatusAltered)
	}
	if len(repo.locks) != 1 || repo.locks[0] != well.WellTagNumber {
		t.Fatalf("well was not locked during stacking: %v", repo.locks)
	}
}

func TestProcessFilingLoneLegacyShortCircuits(t *testing.T) {
	repo := newFakeRepo()
	stacker := NewStacker(repo, testLogger(t))

	well := repo.addWell(&domain.Well{OwnerFullName: sp("Original Owner")})
	sub := repo.addSubmission(&domain.ActivitySubmission{
		WellTagNumber:    &well.WellTagNumber,
		WellActivityCode: domain.ActivityLegacy,
	})

	got, err := stacker.ProcessFiling(context.Background(), sub.FilingNumber)
	if err != nil {
		t.Fatalf("ProcessFiling: %v", err)
	}
	if got.WellTagNumber != well.WellTagNumber {
		t.Fatalf("returned well %d, want %d", got.WellTagNumber, well.WellTagNumber)
	}
	if repo.saves != 0 {
		t.Fatalf("lone legacy snapshot must not rewrite the well, saves = %d", repo.saves)
	}
}

func TestProcessFilingStacksFullHistory(t *testing.T) {
	repo := newFakeRepo()
	stacker := NewStacker(repo, testLogger(t))

	well := repo.addWell(&domain.Well{})
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	leg := repo.addSubmission(&domain.ActivitySubmission{
		WellTagNumber:    &well.WellTagNumber,
		WellActivityCode: domain.ActivityLegacy,
		OwnerFullName:    sp("Original Owner"),
	})
	leg.CreateDate = base

	con := repo.addSubmission(&domain.ActivitySubmission{
		WellTagNumber:     &well.WellTagNumber,
		WellActivityCode:  domain.ActivityConstruction,
		TotalDepthDrilled: fp(120),
	})
	con.CreateDate = base.Add(time.Hour)

	alt := repo.addSubmission(&domain.ActivitySubmission{
		WellTagNumber:    &well.WellTagNumber,
		WellActivityCode: domain.ActivityAlteration,
		OwnerFullName:    sp("New Owner"),
	})
	alt.CreateDate = base.Add(2 * time.Hour)

	stacked, err := stacker.ProcessFiling(context.Background(), alt.FilingNumber)
	if err != nil {
		t.Fatalf("ProcessFiling: %v", err)
	}
	if stacked.OwnerFullName == nil || *stacked.OwnerFullName != "New Owner" {
		t.Fatalf("owner_full_name = %v, want the alteration's", stacked.OwnerFullName)
	}
	if stacked.TotalDepthDrilled == nil || *stacked.TotalDepthDrilled != 120 {
		t.Fatalf("total_depth_drilled = %v, want carried from construction", stacked.TotalDepthDrilled)
	}
	if stacked.CreateUser != leg.CreateUser || !stacked.CreateDate.Equal(leg.CreateDate) {
		t.Fatalf("creation provenance should come from the oldest record")
	}
}
