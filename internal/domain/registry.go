package domain

import "github.com/google/uuid"

// Registry of qualified well drillers and pump installers.

const (
	RegistryActivityDrilling    = "DRILL"
	RegistryActivityPumpInstall = "PUMP"
)

type Organization struct {
	OrgGUID       uuid.UUID `gorm:"column:org_guid;type:uuid;default:uuid_generate_v4();primaryKey" json:"org_guid"`
	Name          string    `gorm:"column:name;size:200;not null" json:"name"`
	StreetAddress *string   `gorm:"column:street_address;size:100" json:"street_address,omitempty"`
	City          *string   `gorm:"column:city;size:50" json:"city,omitempty"`
	ProvinceState *string   `gorm:"column:province_state_code;size:10" json:"province_state,omitempty"`
	PostalCode    *string   `gorm:"column:postal_code;size:10" json:"postal_code,omitempty"`
	MainTel       *string   `gorm:"column:main_tel;size:25" json:"main_tel,omitempty"`
	Email         *string   `gorm:"column:email;size:254" json:"email,omitempty"`
	WebsiteURL    *string   `gorm:"column:website_url;size:200" json:"website_url,omitempty"`
	AuditFields
}

func (Organization) TableName() string { return "registries_organization" }

type Person struct {
	PersonGUID         uuid.UUID     `gorm:"column:person_guid;type:uuid;default:uuid_generate_v4();primaryKey" json:"person_guid"`
	FirstName          string        `gorm:"column:first_name;size:100;not null" json:"first_name"`
	Surname            string        `gorm:"column:surname;size:100;not null" json:"surname"`
	RegistrationNumber *string       `gorm:"column:registration_no;size:15;uniqueIndex" json:"registration_no,omitempty"`
	RegistryActivity   *string       `gorm:"column:registry_activity_code;size:10" json:"registry_activity,omitempty"`
	OrgGUID            *uuid.UUID    `gorm:"column:org_guid;type:uuid;index" json:"org_guid,omitempty"`
	Organization       *Organization `gorm:"foreignKey:OrgGUID;references:OrgGUID" json:"organization,omitempty"`
	ContactTel         *string       `gorm:"column:contact_tel;size:25" json:"contact_tel,omitempty"`
	ContactEmail       *string       `gorm:"column:contact_email;size:254" json:"contact_email,omitempty"`
	AuditFields
}

func (Person) TableName() string { return "registries_person" }
