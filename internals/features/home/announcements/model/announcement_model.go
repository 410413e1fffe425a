// file: internals/features/home/announcements/model/announcement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementModel struct {
	AnnouncementID          uuid.UUID      `gorm:"column:announcement_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"announcement_id"`
	AnnouncementTitle       string         `gorm:"column:announcement_title;type:varchar(255);not null" json:"announcement_title"`
	AnnouncementContent     string         `gorm:"column:announcement_content;type:text;not null" json:"announcement_content"`
	AnnouncementImageURL    *string        `gorm:"column:announcement_image_url;type:text" json:"announcement_image_url,omitempty"`
	AnnouncementIsPublished bool           `gorm:"column:announcement_is_published;not null;default:false" json:"announcement_is_published"`
	AnnouncementCreatedBy   uuid.UUID      `gorm:"column:announcement_created_by;type:uuid;not null" json:"announcement_created_by"`
	AnnouncementCreatedAt   time.Time      `gorm:"column:announcement_created_at;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt   time.Time      `gorm:"column:announcement_updated_at;autoUpdateTime" json:"announcement_updated_at"`
	AnnouncementDeletedAt   gorm.DeletedAt `gorm:"column:announcement_deleted_at;index" json:"-"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
