package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivitySubmission is one filed report of work performed on a well, or an
// administrative staff edit, or a synthesized legacy snapshot. Submissions
// are immutable once created; the only later write is attaching the well
// tag number the first time a well is created for the filing.
type ActivitySubmission struct {
	FilingNumber     uuid.UUID    `gorm:"column:filing_number;type:uuid;default:uuid_generate_v4();primaryKey" json:"filing_number"`
	WellTagNumber    *int64       `gorm:"column:well_tag_number;index" json:"well_tag_number,omitempty"`
	WellActivityCode ActivityCode `gorm:"column:well_activity_type_code;size:10;not null" json:"well_activity_code"`

	// Generic work dates; renamed to activity-specific well columns when
	// the submission is stacked.
	WorkStartDate *time.Time `gorm:"column:work_start_date;type:date" json:"work_start_date,omitempty"`
	WorkEndDate   *time.Time `gorm:"column:work_end_date;type:date" json:"work_end_date,omitempty"`

	OwnerFullName       *string `gorm:"column:owner_full_name;size:200" json:"owner_full_name,omitempty"`
	OwnerMailingAddress *string `gorm:"column:owner_mailing_address;size:100" json:"owner_mailing_address,omitempty"`
	OwnerCity           *string `gorm:"column:owner_city;size:100" json:"owner_city,omitempty"`
	OwnerProvinceState  *string `gorm:"column:province_state_code;size:10" json:"owner_province_state,omitempty"`
	OwnerPostalCode     *string `gorm:"column:owner_postal_code;size:10" json:"owner_postal_code,omitempty"`

	StreetAddress           *string `gorm:"column:street_address;size:100" json:"street_address,omitempty"`
	City                    *string `gorm:"column:city;size:50" json:"city,omitempty"`
	LegalLot                *string `gorm:"column:legal_lot;size:10" json:"legal_lot,omitempty"`
	LegalPlan               *string `gorm:"column:legal_plan;size:20" json:"legal_plan,omitempty"`
	LegalDistrictLot        *string `gorm:"column:legal_district_lot;size:20" json:"legal_district_lot,omitempty"`
	WellLocationDescription *string `gorm:"column:well_location_description;size:500" json:"well_location_description,omitempty"`

	IdentificationPlateNumber       *int64  `gorm:"column:identification_plate_number" json:"identification_plate_number,omitempty"`
	WellIdentificationPlateAttached *string `gorm:"column:well_identification_plate_attached;size:500" json:"well_identification_plate_attached,omitempty"`

	WellClassCode        *string `gorm:"column:well_class_code;size:10" json:"well_class,omitempty"`
	IntendedWaterUseCode *string `gorm:"column:intended_water_use_code;size:10" json:"intended_water_use,omitempty"`
	WellStatusCode       *string `gorm:"column:well_status_code;size:25" json:"well_status,omitempty"`

	GroundElevation           *float64 `gorm:"column:ground_elevation;type:numeric(10,2)" json:"ground_elevation,omitempty"`
	GroundElevationMethodCode *string  `gorm:"column:ground_elevation_method_code;size:10" json:"ground_elevation_method,omitempty"`
	WellOrientation           *bool    `gorm:"column:well_orientation" json:"well_orientation,omitempty"`

	SurfaceSealMaterialCode *string  `gorm:"column:surface_seal_material_code;size:30" json:"surface_seal_material,omitempty"`
	SurfaceSealLength       *float64 `gorm:"column:surface_seal_length;type:numeric(5,2)" json:"surface_seal_length,omitempty"`
	SurfaceSealThickness    *float64 `gorm:"column:surface_seal_thickness;type:numeric(7,2)" json:"surface_seal_thickness,omitempty"`

	LinerMaterialCode *string  `gorm:"column:liner_material_code;size:10" json:"liner_material,omitempty"`
	LinerDiameter     *float64 `gorm:"column:liner_diameter;type:numeric(7,2)" json:"liner_diameter,omitempty"`
	LinerThickness    *float64 `gorm:"column:liner_thickness;type:numeric(5,3)" json:"liner_thickness,omitempty"`

	TotalDepthDrilled *float64 `gorm:"column:total_depth_drilled;type:numeric(7,2)" json:"total_depth_drilled,omitempty"`
	FinishedWellDepth *float64 `gorm:"column:finished_well_depth;type:numeric(7,2)" json:"finished_well_depth,omitempty"`
	StaticWaterLevel  *float64 `gorm:"column:static_water_level;type:numeric(7,2)" json:"static_water_level,omitempty"`
	WellYield         *float64 `gorm:"column:well_yield;type:numeric(8,3)" json:"well_yield,omitempty"`
	ArtesianFlow      *float64 `gorm:"column:artesian_flow;type:numeric(7,2)" json:"artesian_flow,omitempty"`
	ArtesianPressure  *float64 `gorm:"column:artesian_pressure;type:numeric(7,2)" json:"artesian_pressure,omitempty"`

	WellCapType     *string `gorm:"column:well_cap_type;size:40" json:"well_cap_type,omitempty"`
	WellDisinfected *bool   `gorm:"column:well_disinfected" json:"well_disinfected,omitempty"`

	Comments                  *string `gorm:"column:comments;size:3000" json:"comments,omitempty"`
	AlternativeSpecsSubmitted *bool   `gorm:"column:alternative_specs_submitted" json:"alternative_specs_submitted,omitempty"`

	DecommissionReason           *string `gorm:"column:decommission_reason;size:250" json:"decommission_reason,omitempty"`
	DecommissionMethodCode       *string `gorm:"column:decommission_method_code;size:10" json:"decommission_method,omitempty"`
	DecommissionSealantMaterial  *string `gorm:"column:decommission_sealant_material;size:100" json:"decommission_sealant_material,omitempty"`
	DecommissionBackfillMaterial *string `gorm:"column:decommission_backfill_material;size:100" json:"decommission_backfill_material,omitempty"`

	DrillingMethods    []DrillingMethodCode    `gorm:"many2many:activity_submission_drilling_method;joinForeignKey:filing_number;joinReferences:drilling_method_code" json:"drilling_methods,omitempty"`
	DevelopmentMethods []DevelopmentMethodCode `gorm:"many2many:activity_submission_development_method;joinForeignKey:filing_number;joinReferences:development_method_code" json:"development_methods,omitempty"`

	Casings                  []Casing                  `gorm:"foreignKey:FilingNumber;references:FilingNumber" json:"casing_set,omitempty"`
	Screens                  []Screen                  `gorm:"foreignKey:FilingNumber;references:FilingNumber" json:"screen_set,omitempty"`
	LinerPerforations        []LinerPerforation        `gorm:"foreignKey:FilingNumber;references:FilingNumber" json:"linerperforation_set,omitempty"`
	LithologyDescriptions    []LithologyDescription    `gorm:"foreignKey:FilingNumber;references:FilingNumber" json:"lithologydescription_set,omitempty"`
	DecommissionDescriptions []DecommissionDescription `gorm:"foreignKey:FilingNumber;references:FilingNumber" json:"decommission_description_set,omitempty"`

	// Only meaningful on staff edits: marks which fields were explicitly
	// present in the edit, so an explicit clear can be told apart from an
	// omitted field.
	FieldsProvided datatypes.JSONMap `gorm:"column:fields_provided;type:jsonb" json:"fields_provided,omitempty"`

	AuditFields
}

func (ActivitySubmission) TableName() string { return "activity_submission" }

// FieldProvided reports whether a staff edit explicitly supplied the named
// field. Always false for other activity types.
func (s *ActivitySubmission) FieldProvided(name string) bool {
	if s.WellActivityCode != ActivityStaffEdit || s.FieldsProvided == nil {
		return false
	}
	v, ok := s.FieldsProvided[name]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}
