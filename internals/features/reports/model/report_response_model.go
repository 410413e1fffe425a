// file: internals/features/reports/model/report_response_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Timeline respon admin; status = status laporan setelah respon ini
type ReportResponseModel struct {
	ReportResponseID        uuid.UUID `gorm:"column:report_response_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"report_response_id"`
	ReportResponseReportID  uuid.UUID `gorm:"column:report_response_report_id;type:uuid;not null;index" json:"report_response_report_id"`
	ReportResponseAdminID   uuid.UUID `gorm:"column:report_response_admin_id;type:uuid;not null" json:"report_response_admin_id"`
	ReportResponseMessage   string    `gorm:"column:report_response_message;type:text;not null" json:"report_response_message"`
	ReportResponseStatus    string    `gorm:"column:report_response_status;type:varchar(20);not null" json:"report_response_status"`
	ReportResponseCreatedAt time.Time `gorm:"column:report_response_created_at;autoCreateTime" json:"report_response_created_at"`
}

func (ReportResponseModel) TableName() string {
	return "report_responses"
}
