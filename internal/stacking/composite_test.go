package stacking

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/aquabase/wellreg-backend/internal/domain"
)

func sp(s string) *string { return &s }

func tp(t time.Time) *time.Time { return &t }

func TestBuildCompositeRenamesWorkDatesPerActivity(t *testing.T) {
	conStart := time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC)
	conEnd := conStart.AddDate(0, 0, 14)
	altStart := time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC)

	con := &domain.ActivitySubmission{
		WellActivityCode: domain.ActivityConstruction,
		WorkStartDate:    tp(conStart),
		WorkEndDate:      tp(conEnd),
	}
	alt := &domain.ActivitySubmission{
		WellActivityCode: domain.ActivityAlteration,
		WorkStartDate:    tp(altStart),
	}
	alt.CreateDate = con.CreateDate.Add(time.Hour)

	comp, err := BuildComposite([]*domain.ActivitySubmission{con, alt})
	if err != nil {
		t.Fatalf("BuildComposite: %v", err)
	}

	well := &domain.Well{}
	if err := comp.Apply(well); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if well.ConstructionStartDate == nil || !well.ConstructionStartDate.Equal(conStart) {
		t.Fatalf("construction_start_date = %v, want %v", well.ConstructionStartDate, conStart)
	}
	if well.AlterationStartDate == nil || !well.AlterationStartDate.Equal(altStart) {
		t.Fatalf("alteration_start_date = %v, want %v", well.AlterationStartDate, altStart)
	}
	// The alteration carried no end date and must not bleed into the
	// construction columns.
	if well.AlterationEndDate != nil {
		t.Fatalf("alteration_end_date = %v, want nil", *well.AlterationEndDate)
	}
	if well.ConstructionEndDate == nil || !well.ConstructionEndDate.Equal(conEnd) {
		t.Fatalf("construction_end_date = %v, want %v", well.ConstructionEndDate, conEnd)
	}
}

func TestBuildCompositeLastWriterWinsIncludingZeroValues(t *testing.T) {
	first := &domain.ActivitySubmission{
		WellActivityCode: domain.ActivityConstruction,
		OwnerFullName:    sp("A. Driller"),
		Comments:         sp("original comments"),
	}
	second := &domain.ActivitySubmission{
		WellActivityCode: domain.ActivityAlteration,
		Comments:         sp(""),
	}
	second.CreateDate = first.CreateDate.Add(time.Hour)

	comp, err := BuildComposite([]*domain.ActivitySubmission{first, second})
	if err != nil {
		t.Fatalf("BuildComposite: %v", err)
	}
	if v, _ := comp.Value("owner_full_name"); v != "A. Driller" {
		t.Fatalf("owner_full_name = %v, want untouched value", v)
	}
	// A set-but-empty string is an update, not an omission.
	if v, _ := comp.Value("comments"); v != "" {
		t.Fatalf("comments = %v, want empty string", v)
	}
}

func TestBuildCompositeStaffEditExplicitClear(t *testing.T) {
	con := &domain.ActivitySubmission{
		WellActivityCode: domain.ActivityConstruction,
		OwnerFullName:    sp("A. Driller"),
		Comments:         sp("keep me"),
	}
	edit := &domain.ActivitySubmission{
		WellActivityCode: domain.ActivityStaffEdit,
		FieldsProvided:   datatypes.JSONMap{"owner_full_name": true},
	}
	edit.CreateDate = con.CreateDate.Add(time.Hour)

	comp, err := BuildComposite([]*domain.ActivitySubmission{con, edit})
	if err != nil {
		t.Fatalf("BuildComposite: %v", err)
	}
	v, written := comp.Value("owner_full_name")
	if !written || v != nil {
		t.Fatalf("owner_full_name = (%v, %v), want explicit nil", v, written)
	}
	if v, _ := comp.Value("comments"); v != "keep me" {
		t.Fatalf("comments = %v, fields outside the edit must survive", v)
	}
}

func TestBuildCompositeIntervalMergeAcrossSubmissions(t *testing.T) {
	con := &domain.ActivitySubmission{
		WellActivityCode: domain.ActivityConstruction,
		Casings: []domain.Casing{
			casing(fp(0), fp(10)),
			casing(fp(20), fp(30)),
		},
	}
	alt := &domain.ActivitySubmission{
		WellActivityCode: domain.ActivityAlteration,
		Casings:          []domain.Casing{casing(fp(5), fp(15))},
	}
	alt.CreateDate = con.CreateDate.Add(time.Hour)

	comp, err := BuildComposite([]*domain.ActivitySubmission{con, alt})
	if err != nil {
		t.Fatalf("BuildComposite: %v", err)
	}
	v, _ := comp.Value("casing_set")
	casings := v.([]domain.Casing)
	if len(casings) != 2 {
		t.Fatalf("expected 2 casings, got %d", len(casings))
	}
	if *casings[0].Start != 5 || *casings[0].End != 15 {
		t.Fatalf("expected incoming [5,15] to replace [0,10], got [%v,%v]", *casings[0].Start, *casings[0].End)
	}
	if *casings[1].Start != 20 || *casings[1].End != 30 {
		t.Fatalf("expected [20,30] kept, got [%v,%v]", *casings[1].Start, *casings[1].End)
	}
}

func TestBuildCompositeStaffEditReplacesIntervalSetWholesale(t *testing.T) {
	con := &domain.ActivitySubmission{
		WellActivityCode: domain.ActivityConstruction,
		Casings: []domain.Casing{
			casing(fp(0), fp(10)),
			casing(fp(20), fp(30)),
		},
	}
	edit := &domain.ActivitySubmission{
		WellActivityCode: domain.ActivityStaffEdit,
		FieldsProvided:   datatypes.JSONMap{"casing_set": true},
	}
	edit.CreateDate = con.CreateDate.Add(time.Hour)

	comp, err := BuildComposite([]*domain.ActivitySubmission{con, edit})
	if err != nil {
		t.Fatalf("BuildComposite: %v", err)
	}
	v, written := comp.Value("casing_set")
	if !written {
		t.Fatalf("casing_set should be written by the edit")
	}
	if casings := v.([]domain.Casing); len(casings) != 0 {
		t.Fatalf("expected edit to clear all casings, got %d", len(casings))
	}
}

func TestBuildCompositeEmptyMethodListDoesNotClear(t *testing.T) {
	con := &domain.ActivitySubmission{
		WellActivityCode: domain.ActivityConstruction,
		DrillingMethods:  []domain.DrillingMethodCode{{Code: "AIR_ROTARY"}},
	}
	alt := &domain.ActivitySubmission{WellActivityCode: domain.ActivityAlteration}
	alt.CreateDate = con.CreateDate.Add(time.Hour)

	comp, err := BuildComposite([]*domain.ActivitySubmission{con, alt})
	if err != nil {
		t.Fatalf("BuildComposite: %v", err)
	}
	v, _ := comp.Value("drilling_methods")
	codes := v.([]string)
	if len(codes) != 1 || codes[0] != "AIR_ROTARY" {
		t.Fatalf("drilling_methods = %v, want [AIR_ROTARY]", codes)
	}
}

func TestBuildCompositeStatusFollowsActivity(t *testing.T) {
	con := &domain.ActivitySubmission{WellActivityCode: domain.ActivityConstruction}
	dec := &domain.ActivitySubmission{WellActivityCode: domain.ActivityDecommission}
	dec.CreateDate = con.CreateDate.Add(time.Hour)
	edit := &domain.ActivitySubmission{WellActivityCode: domain.ActivityStaffEdit}
	edit.CreateDate = con.CreateDate.Add(2 * time.Hour)

	comp, err := BuildComposite([]*domain.ActivitySubmission{con, dec, edit})
	if err != nil {
		t.Fatalf("BuildComposite: %v", err)
	}
	if v, _ := comp.Value("well_status"); v != domain.WellStatusDecommissioned {
		t.Fatalf("well_status = %v, want %s", v, domain.WellStatusDecommissioned)
	}
}

func TestBuildCompositeActivityStatusOverridesCarriedStatus(t *testing.T) {
	// A report's activity decides the status even when the filing carries
	// one; only a staff edit sets the status on its own authority.
	con := &domain.ActivitySubmission{
		WellActivityCode: domain.ActivityConstruction,
		WellStatusCode:   sp("NEW"),
	}

	comp, err := BuildComposite([]*domain.ActivitySubmission{con})
	if err != nil {
		t.Fatalf("BuildComposite: %v", err)
	}
	if v, _ := comp.Value("well_status"); v != domain.WellStatusUnderConstruction {
		t.Fatalf("well_status = %v, want %s", v, domain.WellStatusUnderConstruction)
	}

	edit := &domain.ActivitySubmission{
		WellActivityCode: domain.ActivityStaffEdit,
		WellStatusCode:   sp("CLOSURE"),
	}
	edit.CreateDate = con.CreateDate.Add(time.Hour)

	comp, err = BuildComposite([]*domain.ActivitySubmission{con, edit})
	if err != nil {
		t.Fatalf("BuildComposite: %v", err)
	}
	if v, _ := comp.Value("well_status"); v != "CLOSURE" {
		t.Fatalf("well_status = %v, want the staff edit's explicit value", v)
	}
}

func TestBuildCompositeAuditProvenance(t *testing.T) {
	first := &domain.ActivitySubmission{WellActivityCode: domain.ActivityConstruction}
	first.CreateUser = "driller@example.org"
	first.CreateDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	last := &domain.ActivitySubmission{WellActivityCode: domain.ActivityAlteration}
	last.CreateUser = "inspector@example.org"
	last.CreateDate = first.CreateDate.AddDate(1, 0, 0)
	// Attaching the well bumps update_date after filing; the composite
	// must carry the last change, not the filing time.
	last.UpdateDate = last.CreateDate.AddDate(0, 5, 0)

	comp, err := BuildComposite([]*domain.ActivitySubmission{first, last})
	if err != nil {
		t.Fatalf("BuildComposite: %v", err)
	}
	if comp.CreateUser != "driller@example.org" || !comp.CreateDate.Equal(first.CreateDate) {
		t.Fatalf("creation provenance = %s/%v, want first submission's", comp.CreateUser, comp.CreateDate)
	}
	if comp.UpdateUser != "inspector@example.org" || !comp.UpdateDate.Equal(last.UpdateDate) {
		t.Fatalf("update provenance = %s/%v, want last submission's update time", comp.UpdateUser, comp.UpdateDate)
	}
}

func TestBuildCompositeRejectsEmptyHistory(t *testing.T) {
	if _, err := BuildComposite(nil); err == nil {
		t.Fatalf("expected an error for an empty history")
	}
}
