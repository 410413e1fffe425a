// file: internals/features/home/tours/model/tour_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TourModel struct {
	TourID          uuid.UUID      `gorm:"column:tour_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"tour_id"`
	TourTitle       string         `gorm:"column:tour_title;type:varchar(255);not null" json:"tour_title"`
	TourDescription string         `gorm:"column:tour_description;type:text;not null" json:"tour_description"`
	TourLocation    *string        `gorm:"column:tour_location;type:varchar(255)" json:"tour_location,omitempty"`
	TourImageURL    string         `gorm:"column:tour_image_url;type:text;not null" json:"tour_image_url"`
	TourEmbedURL    *string        `gorm:"column:tour_embed_url;type:text" json:"tour_embed_url,omitempty"`
	TourCreatedBy   uuid.UUID      `gorm:"column:tour_created_by;type:uuid;not null" json:"tour_created_by"`
	TourCreatedAt   time.Time      `gorm:"column:tour_created_at;autoCreateTime" json:"tour_created_at"`
	TourUpdatedAt   time.Time      `gorm:"column:tour_updated_at;autoUpdateTime" json:"tour_updated_at"`
	TourDeletedAt   gorm.DeletedAt `gorm:"column:tour_deleted_at;index" json:"-"`
}

func (TourModel) TableName() string {
	return "tours"
}
