package domain

import "time"

// AuditFields mirror the audit columns carried by every record in the
// registry. CreateUser/CreateDate are fixed at intake; UpdateUser/UpdateDate
// track the most recent writer.
type AuditFields struct {
	CreateUser string    `gorm:"column:create_user;size:60" json:"create_user"`
	CreateDate time.Time `gorm:"column:create_date;autoCreateTime" json:"create_date"`
	UpdateUser string    `gorm:"column:update_user;size:60" json:"update_user"`
	UpdateDate time.Time `gorm:"column:update_date;autoUpdateTime" json:"update_date"`
}
