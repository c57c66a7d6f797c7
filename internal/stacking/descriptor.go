package stacking

import (
	"fmt"
	"time"

	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/apierr"
)

// FieldKind classifies how a submission field is carried onto the composite
// well.
type FieldKind int

const (
	// KindScalar copies the value onto the composite, last writer wins.
	KindScalar FieldKind = iota
	// KindSingleReference stores the referenced code table entry as its
	// scalar code value.
	KindSingleReference
	// KindManyToMany stores a code collection as a plain list of codes.
	KindManyToMany
	// KindIntervalSet carries a depth-ranged child collection through the
	// overlap-merge rules.
	KindIntervalSet
)

// FieldDescriptor describes one composite field: where it comes from on a
// submission, what kind of storage it has, how it renames per activity
// type, and how interval sets merge. The full catalogue is assembled once
// at process start and is read-only from then on.
type FieldDescriptor struct {
	Source  string
	Kind    FieldKind
	renames map[domain.ActivityCode]string
	read    func(s *domain.ActivitySubmission) (value any, present bool)
	merge   func(existing, incoming any) (any, error)
}

// Target resolves the composite key this field lands on for the given
// activity type. Fields with per-activity renames do not apply at all to
// activity types outside their rename table (a staff edit has no work
// dates to carry, for example).
func (d *FieldDescriptor) Target(activity domain.ActivityCode) (string, bool) {
	if d.renames == nil {
		return d.Source, true
	}
	target, ok := d.renames[activity]
	return target, ok
}

// Resolve looks a descriptor up by its submission-side field name. An
// unknown name is a programmer error, not user input.
func Resolve(source string) (*FieldDescriptor, error) {
	d, ok := catalogueBySource[source]
	if !ok {
		return nil, apierr.NewIntegrity(fmt.Errorf("no field descriptor for %q", source))
	}
	return d, nil
}

// Catalogue returns the full descriptor table in declaration order.
func Catalogue() []*FieldDescriptor { return catalogue }

func scalar[T any](source string, get func(*domain.ActivitySubmission) *T) *FieldDescriptor {
	return &FieldDescriptor{Source: source, Kind: KindScalar, read: readPtr(get)}
}

func reference[T any](source string, get func(*domain.ActivitySubmission) *T) *FieldDescriptor {
	return &FieldDescriptor{Source: source, Kind: KindSingleReference, read: readPtr(get)}
}

// Present under the inclusive truthiness rule: a set pointer counts even
// when it holds the zero value, so an empty string, 0 or false still
// participates in the update.
func readPtr[T any](get func(*domain.ActivitySubmission) *T) func(*domain.ActivitySubmission) (any, bool) {
	return func(s *domain.ActivitySubmission) (any, bool) {
		p := get(s)
		if p == nil {
			return nil, false
		}
		return *p, true
	}
}

func manyToMany(source string, get func(*domain.ActivitySubmission) []string) *FieldDescriptor {
	return &FieldDescriptor{
		Source: source,
		Kind:   KindManyToMany,
		read: func(s *domain.ActivitySubmission) (any, bool) {
			codes := get(s)
			return codes, len(codes) > 0
		},
	}
}

func intervalSet[T DepthRanged](source string, get func(*domain.ActivitySubmission) []T) *FieldDescriptor {
	return &FieldDescriptor{
		Source: source,
		Kind:   KindIntervalSet,
		read: func(s *domain.ActivitySubmission) (any, bool) {
			set := get(s)
			return set, len(set) > 0
		},
		merge: func(existing, incoming any) (any, error) {
			prev, ok := existing.([]T)
			if !ok {
				return nil, apierr.NewIntegrity(fmt.Errorf("field %q holds %T, cannot merge", source, existing))
			}
			next, ok := incoming.([]T)
			if !ok {
				return nil, apierr.NewIntegrity(fmt.Errorf("field %q received %T, cannot merge", source, incoming))
			}
			return MergeIntervals(prev, next), nil
		},
	}
}

func withRenames(d *FieldDescriptor, renames map[domain.ActivityCode]string) *FieldDescriptor {
	d.renames = renames
	return d
}

// The generic work date pair lands on activity-specific well columns. A
// legacy snapshot restores the construction dates it was synthesized from.
var (
	workStartRenames = map[domain.ActivityCode]string{
		domain.ActivityLegacy:       "construction_start_date",
		domain.ActivityConstruction: "construction_start_date",
		domain.ActivityAlteration:   "alteration_start_date",
		domain.ActivityDecommission: "decommission_start_date",
	}
	workEndRenames = map[domain.ActivityCode]string{
		domain.ActivityLegacy:       "construction_end_date",
		domain.ActivityConstruction: "construction_end_date",
		domain.ActivityAlteration:   "alteration_end_date",
		domain.ActivityDecommission: "decommission_end_date",
	}
)

var catalogue = []*FieldDescriptor{
	withRenames(scalar("work_start_date", func(s *domain.ActivitySubmission) *time.Time { return s.WorkStartDate }), workStartRenames),
	withRenames(scalar("work_end_date", func(s *domain.ActivitySubmission) *time.Time { return s.WorkEndDate }), workEndRenames),

	scalar("owner_full_name", func(s *domain.ActivitySubmission) *string { return s.OwnerFullName }),
	scalar("owner_mailing_address", func(s *domain.ActivitySubmission) *string { return s.OwnerMailingAddress }),
	scalar("owner_city", func(s *domain.ActivitySubmission) *string { return s.OwnerCity }),
	reference("owner_province_state", func(s *domain.ActivitySubmission) *string { return s.OwnerProvinceState }),
	scalar("owner_postal_code", func(s *domain.ActivitySubmission) *string { return s.OwnerPostalCode }),

	scalar("street_address", func(s *domain.ActivitySubmission) *string { return s.StreetAddress }),
	scalar("city", func(s *domain.ActivitySubmission) *string { return s.City }),
	scalar("legal_lot", func(s *domain.ActivitySubmission) *string { return s.LegalLot }),
	scalar("legal_plan", func(s *domain.ActivitySubmission) *string { return s.LegalPlan }),
	scalar("legal_district_lot", func(s *domain.ActivitySubmission) *string { return s.LegalDistrictLot }),
	scalar("well_location_description", func(s *domain.ActivitySubmission) *string { return s.WellLocationDescription }),

	scalar("identification_plate_number", func(s *domain.ActivitySubmission) *int64 { return s.IdentificationPlateNumber }),
	scalar("well_identification_plate_attached", func(s *domain.ActivitySubmission) *string { return s.WellIdentificationPlateAttached }),

	reference("well_class", func(s *domain.ActivitySubmission) *string { return s.WellClassCode }),
	reference("intended_water_use", func(s *domain.ActivitySubmission) *string { return s.IntendedWaterUseCode }),
	scalar("well_status", func(s *domain.ActivitySubmission) *string { return s.WellStatusCode }),

	scalar("ground_elevation", func(s *domain.ActivitySubmission) *float64 { return s.GroundElevation }),
	reference("ground_elevation_method", func(s *domain.ActivitySubmission) *string { return s.GroundElevationMethodCode }),
	scalar("well_orientation", func(s *domain.ActivitySubmission) *bool { return s.WellOrientation }),

	reference("surface_seal_material", func(s *domain.ActivitySubmission) *string { return s.SurfaceSealMaterialCode }),
	scalar("surface_seal_length", func(s *domain.ActivitySubmission) *float64 { return s.SurfaceSealLength }),
	scalar("surface_seal_thickness", func(s *domain.ActivitySubmission) *float64 { return s.SurfaceSealThickness }),

	reference("liner_material", func(s *domain.ActivitySubmission) *string { return s.LinerMaterialCode }),
	scalar("liner_diameter", func(s *domain.ActivitySubmission) *float64 { return s.LinerDiameter }),
	scalar("liner_thickness", func(s *domain.ActivitySubmission) *float64 { return s.LinerThickness }),

	scalar("total_depth_drilled", func(s *domain.ActivitySubmission) *float64 { return s.TotalDepthDrilled }),
	scalar("finished_well_depth", func(s *domain.ActivitySubmission) *float64 { return s.FinishedWellDepth }),
	scalar("static_water_level", func(s *domain.ActivitySubmission) *float64 { return s.StaticWaterLevel }),
	scalar("well_yield", func(s *domain.ActivitySubmission) *float64 { return s.WellYield }),
	scalar("artesian_flow", func(s *domain.ActivitySubmission) *float64 { return s.ArtesianFlow }),
	scalar("artesian_pressure", func(s *domain.ActivitySubmission) *float64 { return s.ArtesianPressure }),

	scalar("well_cap_type", func(s *domain.ActivitySubmission) *string { return s.WellCapType }),
	scalar("well_disinfected", func(s *domain.ActivitySubmission) *bool { return s.WellDisinfected }),

	scalar("comments", func(s *domain.ActivitySubmission) *string { return s.Comments }),
	scalar("alternative_specs_submitted", func(s *domain.ActivitySubmission) *bool { return s.AlternativeSpecsSubmitted }),

	scalar("decommission_reason", func(s *domain.ActivitySubmission) *string { return s.DecommissionReason }),
	reference("decommission_method", func(s *domain.ActivitySubmission) *string { return s.DecommissionMethodCode }),
	scalar("decommission_sealant_material", func(s *domain.ActivitySubmission) *string { return s.DecommissionSealantMaterial }),
	scalar("decommission_backfill_material", func(s *domain.ActivitySubmission) *string { return s.DecommissionBackfillMaterial }),

	manyToMany("drilling_methods", func(s *domain.ActivitySubmission) []string {
		codes := make([]string, 0, len(s.DrillingMethods))
		for _, m := range s.DrillingMethods {
			codes = append(codes, m.Code)
		}
		return codes
	}),
	manyToMany("development_methods", func(s *domain.ActivitySubmission) []string {
		codes := make([]string, 0, len(s.DevelopmentMethods))
		for _, m := range s.DevelopmentMethods {
			codes = append(codes, m.Code)
		}
		return codes
	}),

	intervalSet("casing_set", func(s *domain.ActivitySubmission) []domain.Casing { return s.Casings }),
	intervalSet("screen_set", func(s *domain.ActivitySubmission) []domain.Screen { return s.Screens }),
	intervalSet("linerperforation_set", func(s *domain.ActivitySubmission) []domain.LinerPerforation { return s.LinerPerforations }),
	intervalSet("lithologydescription_set", func(s *domain.ActivitySubmission) []domain.LithologyDescription { return s.LithologyDescriptions }),
	intervalSet("decommission_description_set", func(s *domain.ActivitySubmission) []domain.DecommissionDescription { return s.DecommissionDescriptions }),
}

var catalogueBySource = func() map[string]*FieldDescriptor {
	index := make(map[string]*FieldDescriptor, len(catalogue))
	for _, d := range catalogue {
		index[d.Source] = d
	}
	return index
}()
