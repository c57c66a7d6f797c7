package domain

import (
	"errors"
	"fmt"
)

// ValidateSubmission checks a submission against the well schema before it
// is persisted. Strict mode applies the full rule set to newly arriving
// reports; relaxed mode keeps only the structural checks so historical
// legacy data with missing or inconsistent fields can still be recorded.
func ValidateSubmission(s *ActivitySubmission, mode ValidationMode) error {
	if s == nil {
		return errors.New("submission is nil")
	}
	if !s.WellActivityCode.Valid() {
		return fmt.Errorf("unknown well activity type %q", s.WellActivityCode)
	}
	if s.FieldsProvided != nil && s.WellActivityCode != ActivityStaffEdit {
		return fmt.Errorf("fields_provided is only valid on staff edits, got %q", s.WellActivityCode)
	}

	if err := validateIntervals(s); err != nil {
		return err
	}

	if mode == ValidationRelaxed {
		return nil
	}

	if s.WorkStartDate != nil && s.WorkEndDate != nil && s.WorkEndDate.Before(*s.WorkStartDate) {
		return errors.New("work_end_date is before work_start_date")
	}
	if s.WellActivityCode == ActivityConstruction {
		if s.OwnerFullName == nil || *s.OwnerFullName == "" {
			return errors.New("owner_full_name is required for construction reports")
		}
		if s.WorkStartDate == nil {
			return errors.New("work_start_date is required for construction reports")
		}
	}
	return nil
}

func validateIntervals(s *ActivitySubmission) error {
	check := func(kind string, start, end *float64) error {
		if start != nil && *start < 0 {
			return fmt.Errorf("%s start %.2f is negative", kind, *start)
		}
		if end != nil && *end < 0 {
			return fmt.Errorf("%s end %.2f is negative", kind, *end)
		}
		if start != nil && end != nil && *end < *start {
			return fmt.Errorf("%s interval ends (%.2f) above its start (%.2f)", kind, *end, *start)
		}
		return nil
	}
	for _, c := range s.Casings {
		if err := check("casing", c.Start, c.End); err != nil {
			return err
		}
	}
	for _, sc := range s.Screens {
		if err := check("screen", sc.Start, sc.End); err != nil {
			return err
		}
	}
	for _, p := range s.LinerPerforations {
		if err := check("liner perforation", p.Start, p.End); err != nil {
			return err
		}
	}
	for _, l := range s.LithologyDescriptions {
		if err := check("lithology", l.Start, l.End); err != nil {
			return err
		}
	}
	for _, d := range s.DecommissionDescriptions {
		if err := check("decommission layer", d.Start, d.End); err != nil {
			return err
		}
	}
	return nil
}
