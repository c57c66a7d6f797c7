package domain

import "time"

// ActivityCode identifies the kind of work a submission reports.
type ActivityCode string

const (
	ActivityLegacy       ActivityCode = "LEGACY"
	ActivityConstruction ActivityCode = "CON"
	ActivityAlteration   ActivityCode = "ALT"
	ActivityDecommission ActivityCode = "DEC"
	ActivityStaffEdit    ActivityCode = "STAFF_EDIT"
)

func (a ActivityCode) Valid() bool {
	switch a {
	case ActivityLegacy, ActivityConstruction, ActivityAlteration, ActivityDecommission, ActivityStaffEdit:
		return true
	}
	return false
}

// Well status codes, assigned from the activity type during stacking.
const (
	WellStatusUnderConstruction = "UNDER_CONSTRUCTION"
	WellStatusAltered           = "ALTERED"
	WellStatusDecommissioned    = "DECOMMISSIONED"
)

// DataloadUser is the identity recorded on synthesized legacy submissions
// when the stored well carries no provenance of its own.
const DataloadUser = "DATALOAD_USER"

// ValidationMode selects how strictly a submission is validated before it
// is persisted. Relaxed mode exists for legacy records whose historical
// data predates current constraints.
type ValidationMode int

const (
	ValidationStrict ValidationMode = iota
	ValidationRelaxed
)

type codeTable struct {
	Description  string    `gorm:"column:description;size:100" json:"description"`
	DisplayOrder int       `gorm:"column:display_order" json:"display_order"`
	CreateDate   time.Time `gorm:"column:create_date;autoCreateTime" json:"create_date"`
	UpdateDate   time.Time `gorm:"column:update_date;autoUpdateTime" json:"update_date"`
}

type WellActivityCode struct {
	Code ActivityCode `gorm:"column:well_activity_type_code;primaryKey;size:10" json:"code"`
	codeTable
}

func (WellActivityCode) TableName() string { return "well_activity_code" }

type WellClassCode struct {
	Code string `gorm:"column:well_class_code;primaryKey;size:10" json:"code"`
	codeTable
}

func (WellClassCode) TableName() string { return "well_class_code" }

type WellStatusCode struct {
	Code string `gorm:"column:well_status_code;primaryKey;size:25" json:"code"`
	codeTable
}

func (WellStatusCode) TableName() string { return "well_status_code" }

type IntendedWaterUseCode struct {
	Code string `gorm:"column:intended_water_use_code;primaryKey;size:10" json:"code"`
	codeTable
}

func (IntendedWaterUseCode) TableName() string { return "intended_water_use_code" }

type DrillingMethodCode struct {
	Code string `gorm:"column:drilling_method_code;primaryKey;size:10" json:"code"`
	codeTable
}

func (DrillingMethodCode) TableName() string { return "drilling_method_code" }

type DevelopmentMethodCode struct {
	Code string `gorm:"column:development_method_code;primaryKey;size:10" json:"code"`
	codeTable
}

func (DevelopmentMethodCode) TableName() string { return "development_method_code" }

type GroundElevationMethodCode struct {
	Code string `gorm:"column:ground_elevation_method_code;primaryKey;size:10" json:"code"`
	codeTable
}

func (GroundElevationMethodCode) TableName() string { return "ground_elevation_method_code" }

type SurfaceSealMaterialCode struct {
	Code string `gorm:"column:surface_seal_material_code;primaryKey;size:30" json:"code"`
	codeTable
}

func (SurfaceSealMaterialCode) TableName() string { return "surface_seal_material_code" }

type LinerMaterialCode struct {
	Code string `gorm:"column:liner_material_code;primaryKey;size:10" json:"code"`
	codeTable
}

func (LinerMaterialCode) TableName() string { return "liner_material_code" }

type CasingCode struct {
	Code string `gorm:"column:casing_code;primaryKey;size:10" json:"code"`
	codeTable
}

func (CasingCode) TableName() string { return "casing_code" }

type CasingMaterialCode struct {
	Code string `gorm:"column:casing_material_code;primaryKey;size:10" json:"code"`
	codeTable
}

func (CasingMaterialCode) TableName() string { return "casing_material_code" }

type ScreenAssemblyTypeCode struct {
	Code string `gorm:"column:screen_assembly_type_code;primaryKey;size:10" json:"code"`
	codeTable
}

func (ScreenAssemblyTypeCode) TableName() string { return "screen_assembly_type_code" }

type DecommissionMethodCode struct {
	Code string `gorm:"column:decommission_method_code;primaryKey;size:10" json:"code"`
	codeTable
}

func (DecommissionMethodCode) TableName() string { return "decommission_method_code" }

type DecommissionMaterialCode struct {
	Code string `gorm:"column:decommission_material_code;primaryKey;size:30" json:"code"`
	codeTable
}

func (DecommissionMaterialCode) TableName() string { return "decommission_material_code" }

type ProvinceStateCode struct {
	Code string `gorm:"column:province_state_code;primaryKey;size:10" json:"code"`
	codeTable
}

func (ProvinceStateCode) TableName() string { return "province_state_code" }
