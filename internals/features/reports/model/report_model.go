// file: internals/features/reports/model/report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status laporan; berubah mengikuti respon admin
const (
	ReportStatusPending    = "pending"
	ReportStatusInProgress = "in_progress"
	ReportStatusResolved   = "resolved"
)

func IsValidReportStatus(s string) bool {
	switch s {
	case ReportStatusPending, ReportStatusInProgress, ReportStatusResolved:
		return true
	}
	return false
}

type ReportModel struct {
	ReportID          uuid.UUID `gorm:"column:report_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"report_id"`
	ReportUserID      uuid.UUID `gorm:"column:report_user_id;type:uuid;not null;index" json:"report_user_id"`
	ReportTitle       string    `gorm:"column:report_title;type:varchar(255);not null" json:"report_title"`
	ReportDescription string    `gorm:"column:report_description;type:text;not null" json:"report_description"`
	ReportLocation    *string   `gorm:"column:report_location;type:varchar(255)" json:"report_location,omitempty"`
	ReportImageURL    *string   `gorm:"column:report_image_url;type:text" json:"report_image_url,omitempty"`
	ReportStatus      string    `gorm:"column:report_status;type:varchar(20);not null;default:'pending'" json:"report_status"`
	ReportCreatedAt   time.Time `gorm:"column:report_created_at;autoCreateTime" json:"report_created_at"`
	ReportUpdatedAt   time.Time `gorm:"column:report_updated_at;autoUpdateTime" json:"report_updated_at"`
}

func (ReportModel) TableName() string {
	return "reports"
}
