// file: internals/features/community/posts/controller/post_user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/community/posts/dto"
	"agripadi_backend/internals/features/community/posts/model"
	helper "agripadi_backend/internals/helpers"
)

type PostUserController struct {
	DB *gorm.DB
}

func NewPostUserController(db *gorm.DB) *PostUserController {
	return &PostUserController{DB: db}
}

var validate = validator.New()

// Row gabungan post + nama penulis + jumlah komentar
type postRow struct {
	model.PostModel
	UserName     string `gorm:"column:user_name"`
	CommentCount int64  `gorm:"column:comment_count"`
}

func (ctrl *PostUserController) basePostQuery(c *fiber.Ctx) *gorm.DB {
	return ctrl.DB.WithContext(c.Context()).
		Model(&model.PostModel{}).
		Select(`posts.*,
			users.user_name AS user_name,
			(SELECT COUNT(*) FROM post_comments WHERE post_comments.post_comment_post_id = posts.post_id) AS comment_count`).
		Joins("JOIN users ON users.user_id = posts.post_user_id")
}

// =============================
// ➕ Create Post (multipart, gambar opsional)
// =============================
func (ctrl *PostUserController) CreatePost(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreatePostRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	post := model.PostModel{
		PostUserID:  userID,
		PostTitle:   strings.TrimSpace(body.PostTitle),
		PostContent: body.PostContent,
	}

	// Gambar opsional; dinormalisasi ke WebP
	if fh, err := c.FormFile("post_image"); err == nil && fh != nil {
		imageURL, err := helper.SaveImageAsWebP("posts", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Gambar tidak valid: "+err.Error())
		}
		post.PostImageURL = &imageURL
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat post")
	}

	return helper.JsonCreated(c, "Post berhasil dibuat, menunggu persetujuan admin", dto.ToPostDTO(post, "", 0))
}

// =============================
// 📄 List Post Disetujui
// =============================
func (ctrl *PostUserController) GetApprovedPosts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	countQuery := ctrl.DB.WithContext(c.Context()).
		Model(&model.PostModel{}).
		Where("post_is_approved = ?", true)

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung post")
	}

	var rows []postRow
	if err := ctrl.basePostQuery(c).
		Where("post_is_approved = ?", true).
		Order("post_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil post")
	}

	result := make([]dto.PostDTO, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ToPostDTO(r.PostModel, r.UserName, r.CommentCount))
	}
	return helper.JsonList(c, "OK", result, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// 📄 List Post Milik Sendiri (status moderasi terlihat)
// =============================
func (ctrl *PostUserController) GetMyPosts(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var rows []postRow
	if err := ctrl.basePostQuery(c).
		Where("post_user_id = ?", userID).
		Order("post_created_at DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil post")
	}

	result := make([]dto.PostDTO, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ToPostDTO(r.PostModel, r.UserName, r.CommentCount))
	}
	return helper.JsonOK(c, "OK", result)
}

// =============================
// 🔍 Detail Post + Komentar (disetujui, atau milik sendiri)
// =============================
func (ctrl *PostUserController) GetPostByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	userID := helper.GetUserUUID(c)

	var row postRow
	if err := ctrl.basePostQuery(c).
		Where("post_id = ?", id).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil post")
	}

	// Post belum disetujui hanya terlihat oleh penulisnya
	if !row.PostIsApproved && row.PostUserID != userID {
		return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
	}

	type commentRow struct {
		model.PostCommentModel
		UserName string `gorm:"column:user_name"`
	}
	var commentRows []commentRow
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.PostCommentModel{}).
		Select("post_comments.*, users.user_name AS user_name").
		Joins("JOIN users ON users.user_id = post_comments.post_comment_user_id").
		Where("post_comment_post_id = ?", id).
		Order("post_comment_created_at ASC").
		Scan(&commentRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}

	comments := make([]dto.PostCommentDTO, 0, len(commentRows))
	for _, cr := range commentRows {
		comments = append(comments, dto.ToPostCommentDTO(cr.PostCommentModel, cr.UserName))
	}

	return helper.JsonOK(c, "OK", dto.PostWithCommentsDTO{
		PostDTO:  dto.ToPostDTO(row.PostModel, row.UserName, row.CommentCount),
		Comments: comments,
	})
}

// =============================
// 💬 Komentar (hanya di post yang sudah disetujui)
// =============================
func (ctrl *PostUserController) CreateComment(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreatePostCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var post model.PostModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&post, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil post")
	}
	if !post.PostIsApproved {
		return helper.JsonError(c, fiber.StatusBadRequest, "Post belum disetujui, tidak bisa dikomentari")
	}

	comment := model.PostCommentModel{
		PostCommentPostID:  postID,
		PostCommentUserID:  userID,
		PostCommentContent: body.PostCommentContent,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan komentar")
	}

	return helper.JsonCreated(c, "Komentar berhasil ditambahkan", dto.ToPostCommentDTO(comment, ""))
}
