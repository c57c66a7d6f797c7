package domain

import (
	"time"

	"github.com/google/uuid"
)

// Well is the canonical aggregate reconciled from a well's submission
// history. Its scalar columns mirror a superset of the submission fields
// under well-specific names; its depth-interval child sets carry the
// no-overlap invariant maintained by stacking.
type Well struct {
	WellTagNumber int64     `gorm:"column:well_tag_number;primaryKey;autoIncrement" json:"well_tag_number"`
	WellGUID      uuid.UUID `gorm:"column:well_guid;type:uuid;default:uuid_generate_v4();uniqueIndex" json:"well_guid"`

	WellStatusCode *string `gorm:"column:well_status_code;size:25" json:"well_status,omitempty"`

	ConstructionStartDate *time.Time `gorm:"column:construction_start_date;type:date" json:"construction_start_date,omitempty"`
	ConstructionEndDate   *time.Time `gorm:"column:construction_end_date;type:date" json:"construction_end_date,omitempty"`
	AlterationStartDate   *time.Time `gorm:"column:alteration_start_date;type:date" json:"alteration_start_date,omitempty"`
	AlterationEndDate     *time.Time `gorm:"column:alteration_end_date;type:date" json:"alteration_end_date,omitempty"`
	DecommissionStartDate *time.Time `gorm:"column:decommission_start_date;type:date" json:"decommission_start_date,omitempty"`
	DecommissionEndDate   *time.Time `gorm:"column:decommission_end_date;type:date" json:"decommission_end_date,omitempty"`

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

	IdentificationPlateNumber       *int64  `gorm:"column:identification_plate_number;uniqueIndex" json:"identification_plate_number,omitempty"`
	WellIdentificationPlateAttached *string `gorm:"column:well_identification_plate_attached;size:500" json:"well_identification_plate_attached,omitempty"`

	WellClassCode        *string `gorm:"column:well_class_code;size:10" json:"well_class,omitempty"`
	IntendedWaterUseCode *string `gorm:"column:intended_water_use_code;size:10" json:"intended_water_use,omitempty"`

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

	DrillingMethods    []DrillingMethodCode    `gorm:"many2many:well_drilling_method;joinForeignKey:well_tag_number;joinReferences:drilling_method_code" json:"drilling_methods,omitempty"`
	DevelopmentMethods []DevelopmentMethodCode `gorm:"many2many:well_development_method;joinForeignKey:well_tag_number;joinReferences:development_method_code" json:"development_methods,omitempty"`

	Casings                  []Casing                  `gorm:"foreignKey:WellTagNumber;references:WellTagNumber" json:"casing_set,omitempty"`
	Screens                  []Screen                  `gorm:"foreignKey:WellTagNumber;references:WellTagNumber" json:"screen_set,omitempty"`
	LinerPerforations        []LinerPerforation        `gorm:"foreignKey:WellTagNumber;references:WellTagNumber" json:"linerperforation_set,omitempty"`
	LithologyDescriptions    []LithologyDescription    `gorm:"foreignKey:WellTagNumber;references:WellTagNumber" json:"lithologydescription_set,omitempty"`
	DecommissionDescriptions []DecommissionDescription `gorm:"foreignKey:WellTagNumber;references:WellTagNumber" json:"decommission_description_set,omitempty"`

	AuditFields
}

func (Well) TableName() string { return "well" }
