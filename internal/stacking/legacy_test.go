package stacking

import (
	"testing"
	"time"

	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func TestSynthesizeLegacyRestoresWorkDates(t *testing.T) {
	start := time.Date(1987, 7, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	well := &domain.Well{
		WellTagNumber:         11223,
		ConstructionStartDate: tp(start),
		ConstructionEndDate:   tp(end),
	}
	well.CreateUser = "loader@example.org"

	legacy := SynthesizeLegacy(well, testLogger(t))

	if legacy.WellActivityCode != domain.ActivityLegacy {
		t.Fatalf("activity = %s, want %s", legacy.WellActivityCode, domain.ActivityLegacy)
	}
	if legacy.WellTagNumber == nil || *legacy.WellTagNumber != 11223 {
		t.Fatalf("well tag = %v, want 11223", legacy.WellTagNumber)
	}
	if legacy.WorkStartDate == nil || !legacy.WorkStartDate.Equal(start) {
		t.Fatalf("work_start_date = %v, want %v", legacy.WorkStartDate, start)
	}
	if legacy.WorkEndDate == nil || !legacy.WorkEndDate.Equal(end) {
		t.Fatalf("work_end_date = %v, want %v", legacy.WorkEndDate, end)
	}
	if legacy.CreateUser != "loader@example.org" {
		t.Fatalf("create_user = %s, want the well's", legacy.CreateUser)
	}
}

func TestSynthesizeLegacyDropsEmptyStrings(t *testing.T) {
	well := &domain.Well{
		WellTagNumber: 5,
		OwnerFullName: sp(""),
		Comments:      sp("historic comments"),
	}
	well.CreateUser = "loader@example.org"

	legacy := SynthesizeLegacy(well, testLogger(t))

	if legacy.OwnerFullName != nil {
		t.Fatalf("owner_full_name = %q, want dropped", *legacy.OwnerFullName)
	}
	if legacy.Comments == nil || *legacy.Comments != "historic comments" {
		t.Fatalf("comments = %v, want kept", legacy.Comments)
	}
}

func TestSynthesizeLegacyFallsBackToDataloadUser(t *testing.T) {
	well := &domain.Well{WellTagNumber: 6}

	legacy := SynthesizeLegacy(well, testLogger(t))

	if legacy.CreateUser != domain.DataloadUser {
		t.Fatalf("create_user = %s, want %s", legacy.CreateUser, domain.DataloadUser)
	}
}

func TestSynthesizeLegacyCopiesChildrenWithoutIdentity(t *testing.T) {
	well := &domain.Well{
		WellTagNumber: 7,
		Casings: []domain.Casing{
			{Start: fp(0), End: fp(10), WellTagNumber: func() *int64 { v := int64(7); return &v }()},
		},
	}
	well.CreateUser = "loader@example.org"

	legacy := SynthesizeLegacy(well, testLogger(t))

	if len(legacy.Casings) != 1 {
		t.Fatalf("expected 1 casing, got %d", len(legacy.Casings))
	}
	c := legacy.Casings[0]
	if c.WellTagNumber != nil || c.FilingNumber != nil {
		t.Fatalf("casing still linked: well=%v filing=%v", c.WellTagNumber, c.FilingNumber)
	}
	if *c.Start != 0 || *c.End != 10 {
		t.Fatalf("casing bounds lost: [%v,%v]", *c.Start, *c.End)
	}
	// Snapshot validates under the relaxed rules even with sparse data.
	if err := domain.ValidateSubmission(legacy, domain.ValidationRelaxed); err != nil {
		t.Fatalf("relaxed validation: %v", err)
	}
}
