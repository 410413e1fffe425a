// file: internals/features/reports/dto/report_dto.go
package dto

import (
	"time"

	"agripadi_backend/internals/features/reports/model"
)

// CreateReportRequest dikirim multipart (foto kejadian opsional)
type CreateReportRequest struct {
	ReportTitle       string  `json:"report_title" form:"report_title" validate:"required,max=255"`
	ReportDescription string  `json:"report_description" form:"report_description" validate:"required"`
	ReportLocation    *string `json:"report_location" form:"report_location" validate:"omitempty,max=255"`
}

// RespondReportRequest: satu respon admin = satu entry timeline +
// perpindahan status laporan
type RespondReportRequest struct {
	ReportResponseMessage string `json:"report_response_message" validate:"required"`
	ReportResponseStatus  string `json:"report_response_status" validate:"required,oneof=pending in_progress resolved"`
}

type ReportDTO struct {
	ReportID          string    `json:"report_id"`
	ReportUserID      string    `json:"report_user_id"`
	ReportUserName    string    `json:"report_user_name,omitempty"`
	ReportTitle       string    `json:"report_title"`
	ReportDescription string    `json:"report_description"`
	ReportLocation    *string   `json:"report_location,omitempty"`
	ReportImageURL    *string   `json:"report_image_url,omitempty"`
	ReportStatus      string    `json:"report_status"`
	ReportCreatedAt   time.Time `json:"report_created_at"`
	ReportUpdatedAt   time.Time `json:"report_updated_at"`
}

type ReportResponseDTO struct {
	ReportResponseID        string    `json:"report_response_id"`
	ReportResponseAdminID   string    `json:"report_response_admin_id"`
	ReportResponseAdminName string    `json:"report_response_admin_name,omitempty"`
	ReportResponseMessage   string    `json:"report_response_message"`
	ReportResponseStatus    string    `json:"report_response_status"`
	ReportResponseCreatedAt time.Time `json:"report_response_created_at"`
}

type ReportWithTimelineDTO struct {
	ReportDTO
	Responses []ReportResponseDTO `json:"responses"`
}

func ToReportDTO(m model.ReportModel, userName string) ReportDTO {
	return ReportDTO{
		ReportID:          m.ReportID.String(),
		ReportUserID:      m.ReportUserID.String(),
		ReportUserName:    userName,
		ReportTitle:       m.ReportTitle,
		ReportDescription: m.ReportDescription,
		ReportLocation:    m.ReportLocation,
		ReportImageURL:    m.ReportImageURL,
		ReportStatus:      m.ReportStatus,
		ReportCreatedAt:   m.ReportCreatedAt,
		ReportUpdatedAt:   m.ReportUpdatedAt,
	}
}

func ToReportResponseDTO(m model.ReportResponseModel, adminName string) ReportResponseDTO {
	return ReportResponseDTO{
		ReportResponseID:        m.ReportResponseID.String(),
		ReportResponseAdminID:   m.ReportResponseAdminID.String(),
		ReportResponseAdminName: adminName,
		ReportResponseMessage:   m.ReportResponseMessage,
		ReportResponseStatus:    m.ReportResponseStatus,
		ReportResponseCreatedAt: m.ReportResponseCreatedAt,
	}
}
