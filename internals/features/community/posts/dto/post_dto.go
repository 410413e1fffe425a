// file: internals/features/community/posts/dto/post_dto.go
package dto

import (
	"time"

	"agripadi_backend/internals/features/community/posts/model"
)

// CreatePostRequest dikirim multipart (field form + file gambar opsional)
type CreatePostRequest struct {
	PostTitle   string `json:"post_title" form:"post_title" validate:"required,max=255"`
	PostContent string `json:"post_content" form:"post_content" validate:"required"`
}

type CreatePostCommentRequest struct {
	PostCommentContent string `json:"post_comment_content" validate:"required"`
}

type PostDTO struct {
	PostID         string    `json:"post_id"`
	PostUserID     string    `json:"post_user_id"`
	PostUserName   string    `json:"post_user_name,omitempty"`
	PostTitle      string    `json:"post_title"`
	PostContent    string    `json:"post_content"`
	PostImageURL   *string   `json:"post_image_url,omitempty"`
	PostIsApproved bool      `json:"post_is_approved"`
	CommentCount   int64     `json:"comment_count"`
	PostCreatedAt  time.Time `json:"post_created_at"`
}

type PostCommentDTO struct {
	PostCommentID        string    `json:"post_comment_id"`
	PostCommentPostID    string    `json:"post_comment_post_id"`
	PostCommentUserID    string    `json:"post_comment_user_id"`
	PostCommentUserName  string    `json:"post_comment_user_name,omitempty"`
	PostCommentContent   string    `json:"post_comment_content"`
	PostCommentCreatedAt time.Time `json:"post_comment_created_at"`
}

type PostWithCommentsDTO struct {
	PostDTO
	Comments []PostCommentDTO `json:"comments"`
}

func ToPostDTO(m model.PostModel, userName string, commentCount int64) PostDTO {
	return PostDTO{
		PostID:         m.PostID.String(),
		PostUserID:     m.PostUserID.String(),
		PostUserName:   userName,
		PostTitle:      m.PostTitle,
		PostContent:    m.PostContent,
		PostImageURL:   m.PostImageURL,
		PostIsApproved: m.PostIsApproved,
		CommentCount:   commentCount,
		PostCreatedAt:  m.PostCreatedAt,
	}
}

func ToPostCommentDTO(m model.PostCommentModel, userName string) PostCommentDTO {
	return PostCommentDTO{
		PostCommentID:        m.PostCommentID.String(),
		PostCommentPostID:    m.PostCommentPostID.String(),
		PostCommentUserID:    m.PostCommentUserID.String(),
		PostCommentUserName:  userName,
		PostCommentContent:   m.PostCommentContent,
		PostCommentCreatedAt: m.PostCommentCreatedAt,
	}
}
