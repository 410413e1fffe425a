// file: internals/features/community/posts/model/post_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post forum komunitas; tampil publik hanya setelah disetujui admin
type PostModel struct {
	PostID         uuid.UUID      `gorm:"column:post_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"post_id"`
	PostUserID     uuid.UUID      `gorm:"column:post_user_id;type:uuid;not null;index" json:"post_user_id"`
	PostTitle      string         `gorm:"column:post_title;type:varchar(255);not null" json:"post_title"`
	PostContent    string         `gorm:"column:post_content;type:text;not null" json:"post_content"`
	PostImageURL   *string        `gorm:"column:post_image_url;type:text" json:"post_image_url,omitempty"`
	PostIsApproved bool           `gorm:"column:post_is_approved;not null;default:false" json:"post_is_approved"`
	PostCreatedAt  time.Time      `gorm:"column:post_created_at;autoCreateTime" json:"post_created_at"`
	PostUpdatedAt  time.Time      `gorm:"column:post_updated_at;autoUpdateTime" json:"post_updated_at"`
	PostDeletedAt  gorm.DeletedAt `gorm:"column:post_deleted_at;index" json:"-"`
}

func (PostModel) TableName() string {
	return "posts"
}
