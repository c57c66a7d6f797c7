package domain

import (
	"testing"
	"time"

	"gorm.io/datatypes"
)

func strp(s string) *string { return &s }

func fl(v float64) *float64 { return &v }

func TestValidateSubmissionStrict(t *testing.T) {
	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -7)

	cases := []struct {
		name    string
		sub     *ActivitySubmission
		wantErr bool
	}{
		{
			"valid construction",
			&ActivitySubmission{
				WellActivityCode: ActivityConstruction,
				OwnerFullName:    strp("A. Driller"),
				WorkStartDate:    &start,
			},
			false,
		},
		{
			"unknown activity",
			&ActivitySubmission{WellActivityCode: "PAINT"},
			true,
		},
		{
			"construction without owner",
			&ActivitySubmission{
				WellActivityCode: ActivityConstruction,
				WorkStartDate:    &start,
			},
			true,
		},
		{
			"work dates reversed",
			&ActivitySubmission{
				WellActivityCode: ActivityAlteration,
				WorkStartDate:    &start,
				WorkEndDate:      &end,
			},
			true,
		},
		{
			"fields_provided on non staff edit",
			&ActivitySubmission{
				WellActivityCode: ActivityAlteration,
				FieldsProvided:   datatypes.JSONMap{"comments": true},
			},
			true,
		},
		{
			"interval ends above start",
			&ActivitySubmission{
				WellActivityCode: ActivityAlteration,
				Casings:          []Casing{{Start: fl(20), End: fl(10)}},
			},
			true,
		},
		{
			"negative depth",
			&ActivitySubmission{
				WellActivityCode: ActivityAlteration,
				Screens:          []Screen{{Start: fl(-1), End: fl(10)}},
			},
			true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSubmission(tc.sub, ValidationStrict)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateSubmission() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateSubmissionRelaxedSkipsRequireds(t *testing.T) {
	sub := &ActivitySubmission{WellActivityCode: ActivityLegacy}
	if err := ValidateSubmission(sub, ValidationRelaxed); err != nil {
		t.Fatalf("relaxed validation of a sparse legacy record: %v", err)
	}
	// Structural checks still apply.
	sub.Casings = []Casing{{Start: fl(20), End: fl(10)}}
	if err := ValidateSubmission(sub, ValidationRelaxed); err == nil {
		t.Fatalf("expected structural interval check to fail in relaxed mode")
	}
}
