package stacking

import (
	"errors"
	"fmt"
	"time"

	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/apierr"
)

// Composite is the reconciled well state produced by folding an ordered
// submission history. Keys are well-side column names; a nil value records
// an explicit clear, distinct from a key that was never written.
type Composite struct {
	fields map[string]any

	CreateUser string
	CreateDate time.Time
	UpdateUser string
	UpdateDate time.Time
}

// Value returns the folded value for a well-side key and whether any
// submission wrote it.
func (c *Composite) Value(key string) (any, bool) {
	v, ok := c.fields[key]
	return v, ok
}

// Fields returns a copy of the folded key set.
func (c *Composite) Fields() map[string]any {
	out := make(map[string]any, len(c.fields))
	for k, v := range c.fields {
		out[k] = v
	}
	return out
}

// BuildComposite folds submissions, already in stacking order, into a
// single composite. Later submissions overwrite earlier ones field by
// field; fields a submission does not carry are left untouched. Creation
// provenance comes from the first submission, update provenance from the
// last.
func BuildComposite(ordered []*domain.ActivitySubmission) (*Composite, error) {
	if len(ordered) == 0 {
		return nil, apierr.NewIntegrity(errors.New("cannot build a composite from zero submissions"))
	}
	comp := &Composite{fields: make(map[string]any)}
	for _, sub := range ordered {
		if err := comp.fold(sub); err != nil {
			return nil, err
		}
	}
	first, last := ordered[0], ordered[len(ordered)-1]
	comp.CreateUser, comp.CreateDate = first.CreateUser, first.CreateDate
	comp.UpdateUser, comp.UpdateDate = last.CreateUser, last.UpdateDate
	return comp, nil
}

func (c *Composite) fold(sub *domain.ActivitySubmission) error {
	for _, d := range catalogue {
		value, present := d.read(sub)
		provided := sub.FieldProvided(d.Source)
		if !present && !provided {
			continue
		}
		target, ok := d.Target(sub.WellActivityCode)
		if !ok {
			continue
		}
		switch d.Kind {
		case KindScalar, KindSingleReference, KindManyToMany:
			// A staff edit that provided the field but carries no value
			// is an explicit clear; value is already nil (or an empty
			// code list) in that case.
			c.fields[target] = value
		case KindIntervalSet:
			if sub.WellActivityCode == domain.ActivityStaffEdit {
				// Staff edits replace the whole set, including replacing
				// it with nothing.
				c.fields[target] = value
				continue
			}
			existing, written := c.fields[target]
			if !written {
				c.fields[target] = value
				continue
			}
			merged, err := d.merge(existing, value)
			if err != nil {
				return err
			}
			c.fields[target] = merged
		default:
			return apierr.NewIntegrity(fmt.Errorf("field %q has unknown kind %d", d.Source, d.Kind))
		}
	}

	// The reported activity drives the well status; staff edits and legacy
	// snapshots only change status when they say so explicitly.
	if status, ok := statusForActivity(sub.WellActivityCode); ok {
		c.fields["well_status"] = status
	}
	return nil
}

func statusForActivity(code domain.ActivityCode) (string, bool) {
	switch code {
	case domain.ActivityConstruction:
		return domain.WellStatusUnderConstruction, true
	case domain.ActivityAlteration:
		return domain.WellStatusAltered, true
	case domain.ActivityDecommission:
		return domain.WellStatusDecommissioned, true
	}
	return "", false
}

// Apply writes the composite onto a well. Audit columns are left to the
// caller, which knows whether this is a create or an update.
func (c *Composite) Apply(well *domain.Well) error {
	for key, value := range c.fields {
		if err := applyField(well, key, value); err != nil {
			return err
		}
	}
	return nil
}

// Values in the composite come from the typed readers in the descriptor
// catalogue, so the assertions below cannot miss.
func ptrTo[T any](v any) *T {
	if v == nil {
		return nil
	}
	t := v.(T)
	return &t
}

func setOf[T DepthRanged](v any) []T {
	if v == nil {
		return nil
	}
	return v.([]T)
}

func codeList(v any) []string {
	if v == nil {
		return nil
	}
	return v.([]string)
}

func applyField(w *domain.Well, key string, value any) error {
	switch key {
	case "construction_start_date":
		w.ConstructionStartDate = ptrTo[time.Time](value)
	case "construction_end_date":
		w.ConstructionEndDate = ptrTo[time.Time](value)
	case "alteration_start_date":
		w.AlterationStartDate = ptrTo[time.Time](value)
	case "alteration_end_date":
		w.AlterationEndDate = ptrTo[time.Time](value)
	case "decommission_start_date":
		w.DecommissionStartDate = ptrTo[time.Time](value)
	case "decommission_end_date":
		w.DecommissionEndDate = ptrTo[time.Time](value)
	case "owner_full_name":
		w.OwnerFullName = ptrTo[string](value)
	case "owner_mailing_address":
		w.OwnerMailingAddress = ptrTo[string](value)
	case "owner_city":
		w.OwnerCity = ptrTo[string](value)
	case "owner_province_state":
		w.OwnerProvinceState = ptrTo[string](value)
	case "owner_postal_code":
		w.OwnerPostalCode = ptrTo[string](value)
	case "street_address":
		w.StreetAddress = ptrTo[string](value)
	case "city":
		w.City = ptrTo[string](value)
	case "legal_lot":
		w.LegalLot = ptrTo[string](value)
	case "legal_plan":
		w.LegalPlan = ptrTo[string](value)
	case "legal_district_lot":
		w.LegalDistrictLot = ptrTo[string](value)
	case "well_location_description":
		w.WellLocationDescription = ptrTo[string](value)
	case "identification_plate_number":
		w.IdentificationPlateNumber = ptrTo[int64](value)
	case "well_identification_plate_attached":
		w.WellIdentificationPlateAttached = ptrTo[string](value)
	case "well_class":
		w.WellClassCode = ptrTo[string](value)
	case "intended_water_use":
		w.IntendedWaterUseCode = ptrTo[string](value)
	case "well_status":
		w.WellStatusCode = ptrTo[string](value)
	case "ground_elevation":
		w.GroundElevation = ptrTo[float64](value)
	case "ground_elevation_method":
		w.GroundElevationMethodCode = ptrTo[string](value)
	case "well_orientation":
		w.WellOrientation = ptrTo[bool](value)
	case "surface_seal_material":
		w.SurfaceSealMaterialCode = ptrTo[string](value)
	case "surface_seal_length":
		w.SurfaceSealLength = ptrTo[float64](value)
	case "surface_seal_thickness":
		w.SurfaceSealThickness = ptrTo[float64](value)
	case "liner_material":
		w.LinerMaterialCode = ptrTo[string](value)
	case "liner_diameter":
		w.LinerDiameter = ptrTo[float64](value)
	case "liner_thickness":
		w.LinerThickness = ptrTo[float64](value)
	case "total_depth_drilled":
		w.TotalDepthDrilled = ptrTo[float64](value)
	case "finished_well_depth":
		w.FinishedWellDepth = ptrTo[float64](value)
	case "static_water_level":
		w.StaticWaterLevel = ptrTo[float64](value)
	case "well_yield":
		w.WellYield = ptrTo[float64](value)
	case "artesian_flow":
		w.ArtesianFlow = ptrTo[float64](value)
	case "artesian_pressure":
		w.ArtesianPressure = ptrTo[float64](value)
	case "well_cap_type":
		w.WellCapType = ptrTo[string](value)
	case "well_disinfected":
		w.WellDisinfected = ptrTo[bool](value)
	case "comments":
		w.Comments = ptrTo[string](value)
	case "alternative_specs_submitted":
		w.AlternativeSpecsSubmitted = ptrTo[bool](value)
	case "decommission_reason":
		w.DecommissionReason = ptrTo[string](value)
	case "decommission_method":
		w.DecommissionMethodCode = ptrTo[string](value)
	case "decommission_sealant_material":
		w.DecommissionSealantMaterial = ptrTo[string](value)
	case "decommission_backfill_material":
		w.DecommissionBackfillMaterial = ptrTo[string](value)
	case "drilling_methods":
		codes := codeList(value)
		methods := make([]domain.DrillingMethodCode, 0, len(codes))
		for _, code := range codes {
			methods = append(methods, domain.DrillingMethodCode{Code: code})
		}
		w.DrillingMethods = methods
	case "development_methods":
		codes := codeList(value)
		methods := make([]domain.DevelopmentMethodCode, 0, len(codes))
		for _, code := range codes {
			methods = append(methods, domain.DevelopmentMethodCode{Code: code})
		}
		w.DevelopmentMethods = methods
	case "casing_set":
		w.Casings = setOf[domain.Casing](value)
	case "screen_set":
		w.Screens = setOf[domain.Screen](value)
	case "linerperforation_set":
		w.LinerPerforations = setOf[domain.LinerPerforation](value)
	case "lithologydescription_set":
		w.LithologyDescriptions = setOf[domain.LithologyDescription](value)
	case "decommission_description_set":
		w.DecommissionDescriptions = setOf[domain.DecommissionDescription](value)
	default:
		return apierr.NewIntegrity(fmt.Errorf("composite key %q has no well column", key))
	}
	return nil
}
