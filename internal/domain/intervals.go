package domain

import (
	"github.com/google/uuid"
)

// Each depth-ranged child record belongs either to an activity submission
// (filing_number) or to a well (well_tag_number), never both. Start/end are
// nullable: a lot of historical data is missing one or both bounds, and a
// record with an absent bound never takes part in overlap resolution.

type Casing struct {
	CasingGUID   uuid.UUID `gorm:"column:casing_guid;type:uuid;default:uuid_generate_v4();primaryKey" json:"casing_guid"`
	FilingNumber *uuid.UUID `gorm:"column:filing_number;type:uuid;index" json:"filing_number,omitempty"`
	WellTagNumber *int64   `gorm:"column:well_tag_number;index" json:"well_tag_number,omitempty"`
	Start        *float64  `gorm:"column:casing_from;type:numeric(7,2)" json:"start"`
	End          *float64  `gorm:"column:casing_to;type:numeric(7,2)" json:"end"`
	Diameter     *float64  `gorm:"column:diameter;type:numeric(8,3)" json:"diameter,omitempty"`
	CasingCode   *string   `gorm:"column:casing_code;size:10" json:"casing_code,omitempty"`
	CasingMaterialCode *string `gorm:"column:casing_material_code;size:10" json:"casing_material_code,omitempty"`
	WallThickness *float64 `gorm:"column:wall_thickness;type:numeric(6,3)" json:"wall_thickness,omitempty"`
	DriveShoe    *bool     `gorm:"column:drive_shoe" json:"drive_shoe,omitempty"`
}

func (Casing) TableName() string { return "casing" }

func (c Casing) DepthRange() (start, end *float64) { return c.Start, c.End }

type Screen struct {
	ScreenGUID   uuid.UUID `gorm:"column:screen_guid;type:uuid;default:uuid_generate_v4();primaryKey" json:"screen_guid"`
	FilingNumber *uuid.UUID `gorm:"column:filing_number;type:uuid;index" json:"filing_number,omitempty"`
	WellTagNumber *int64   `gorm:"column:well_tag_number;index" json:"well_tag_number,omitempty"`
	Start        *float64  `gorm:"column:screen_from;type:numeric(7,2)" json:"start"`
	End          *float64  `gorm:"column:screen_to;type:numeric(7,2)" json:"end"`
	InternalDiameter *float64 `gorm:"column:internal_diameter;type:numeric(7,2)" json:"internal_diameter,omitempty"`
	AssemblyTypeCode *string  `gorm:"column:screen_assembly_type_code;size:10" json:"assembly_type_code,omitempty"`
	SlotSize     *float64  `gorm:"column:slot_size;type:numeric(7,2)" json:"slot_size,omitempty"`
}

func (Screen) TableName() string { return "screen" }

func (s Screen) DepthRange() (start, end *float64) { return s.Start, s.End }

type LinerPerforation struct {
	LinerPerforationGUID uuid.UUID `gorm:"column:liner_perforation_guid;type:uuid;default:uuid_generate_v4();primaryKey" json:"liner_perforation_guid"`
	FilingNumber  *uuid.UUID `gorm:"column:filing_number;type:uuid;index" json:"filing_number,omitempty"`
	WellTagNumber *int64     `gorm:"column:well_tag_number;index" json:"well_tag_number,omitempty"`
	Start         *float64   `gorm:"column:liner_perforation_from;type:numeric(7,2)" json:"start"`
	End           *float64   `gorm:"column:liner_perforation_to;type:numeric(7,2)" json:"end"`
}

func (LinerPerforation) TableName() string { return "liner_perforation" }

func (p LinerPerforation) DepthRange() (start, end *float64) { return p.Start, p.End }

type LithologyDescription struct {
	LithologyDescriptionGUID uuid.UUID `gorm:"column:lithology_description_guid;type:uuid;default:uuid_generate_v4();primaryKey" json:"lithology_description_guid"`
	FilingNumber  *uuid.UUID `gorm:"column:filing_number;type:uuid;index" json:"filing_number,omitempty"`
	WellTagNumber *int64     `gorm:"column:well_tag_number;index" json:"well_tag_number,omitempty"`
	Start         *float64   `gorm:"column:lithology_from;type:numeric(7,2)" json:"start"`
	End           *float64   `gorm:"column:lithology_to;type:numeric(7,2)" json:"end"`
	RawData       *string    `gorm:"column:lithology_raw_data;size:250" json:"raw_data,omitempty"`
	ColourCode    *string    `gorm:"column:lithology_colour_code;size:10" json:"colour_code,omitempty"`
	HardnessCode  *string    `gorm:"column:lithology_hardness_code;size:10" json:"hardness_code,omitempty"`
	MaterialCode  *string    `gorm:"column:lithology_material_code;size:10" json:"material_code,omitempty"`
	Observation   *string    `gorm:"column:lithology_observation;size:250" json:"observation,omitempty"`
}

func (LithologyDescription) TableName() string { return "lithology_description" }

func (l LithologyDescription) DepthRange() (start, end *float64) { return l.Start, l.End }

type DecommissionDescription struct {
	DecommissionDescriptionGUID uuid.UUID `gorm:"column:decommission_description_guid;type:uuid;default:uuid_generate_v4();primaryKey" json:"decommission_description_guid"`
	FilingNumber  *uuid.UUID `gorm:"column:filing_number;type:uuid;index" json:"filing_number,omitempty"`
	WellTagNumber *int64     `gorm:"column:well_tag_number;index" json:"well_tag_number,omitempty"`
	Start         *float64   `gorm:"column:decommission_description_from;type:numeric(7,2)" json:"start"`
	End           *float64   `gorm:"column:decommission_description_to;type:numeric(7,2)" json:"end"`
	MaterialCode  *string    `gorm:"column:decommission_material_code;size:30" json:"material_code,omitempty"`
	Observations  *string    `gorm:"column:observations;size:255" json:"observations,omitempty"`
}

func (DecommissionDescription) TableName() string { return "decommission_description" }

func (d DecommissionDescription) DepthRange() (start, end *float64) { return d.Start, d.End }
