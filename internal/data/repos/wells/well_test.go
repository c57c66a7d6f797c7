package wells

import (
	"context"
	"testing"

	"github.com/aquabase/wellreg-backend/internal/data/repos/testutil"
	types "github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/stacking"
)

func TestWellRepoSaveReplacesWrittenChildSets(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewWellRepo(db, testutil.Logger(t))

	well := testutil.SeedWell(t, ctx, tx, "Original Owner")
	if err := tx.WithContext(ctx).Create(&types.Casing{
		WellTagNumber: &well.WellTagNumber,
		Start:         testutil.PtrFloat(0),
		End:           testutil.PtrFloat(10),
	}).Error; err != nil {
		t.Fatalf("seed casing: %v", err)
	}

	sub := &types.ActivitySubmission{
		WellActivityCode: types.ActivityAlteration,
		Casings: []types.Casing{
			{Start: testutil.PtrFloat(5), End: testutil.PtrFloat(15)},
		},
	}
	sub.CreateUser = "tester"
	comp, err := stacking.BuildComposite([]*types.ActivitySubmission{sub})
	if err != nil {
		t.Fatalf("BuildComposite: %v", err)
	}

	stacked := &types.Well{WellTagNumber: well.WellTagNumber, WellGUID: well.WellGUID}
	if err := comp.Apply(stacked); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	stacked.CreateUser, stacked.UpdateUser = well.CreateUser, sub.CreateUser

	if err := repo.Save(ctx, tx, stacked, comp); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByTagNumber(ctx, tx, well.WellTagNumber)
	if err != nil {
		t.Fatalf("GetByTagNumber: %v", err)
	}
	if len(got.Casings) != 1 {
		t.Fatalf("expected the written casing set to replace the old one, got %d rows", len(got.Casings))
	}
	if *got.Casings[0].Start != 5 || *got.Casings[0].End != 15 {
		t.Fatalf("casing = [%v,%v], want [5,15]", *got.Casings[0].Start, *got.Casings[0].End)
	}
	if got.WellStatusCode == nil || *got.WellStatusCode != types.WellStatusAltered {
		t.Fatalf("status = %v, want %s", got.WellStatusCode, types.WellStatusAltered)
	}
}

func TestWellRepoSearch(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewWellRepo(db, testutil.Logger(t))

	testutil.SeedWell(t, ctx, tx, "Searchable Owner")
	rows, err := repo.Search(ctx, tx, WellSearch{OwnerFullName: "searchable"})
	if err != nil || len(rows) != 1 {
		t.Fatalf("Search: err=%v len=%d", err, len(rows))
	}
}
