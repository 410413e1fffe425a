// file: internals/features/community/posts/model/post_comment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type PostCommentModel struct {
	PostCommentID        uuid.UUID `gorm:"column:post_comment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"post_comment_id"`
	PostCommentPostID    uuid.UUID `gorm:"column:post_comment_post_id;type:uuid;not null;index" json:"post_comment_post_id"`
	PostCommentUserID    uuid.UUID `gorm:"column:post_comment_user_id;type:uuid;not null" json:"post_comment_user_id"`
	PostCommentContent   string    `gorm:"column:post_comment_content;type:text;not null" json:"post_comment_content"`
	PostCommentCreatedAt time.Time `gorm:"column:post_comment_created_at;autoCreateTime" json:"post_comment_created_at"`
}

func (PostCommentModel) TableName() string {
	return "post_comments"
}
