// file: internals/features/community/posts/controller/post_admin_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agripadi_backend/internals/features/community/posts/dto"
	"agripadi_backend/internals/features/community/posts/model"
	helper "agripadi_backend/internals/helpers"
)

type PostAdminController struct {
	DB *gorm.DB
}

func NewPostAdminController(db *gorm.DB) *PostAdminController {
	return &PostAdminController{DB: db}
}

// =============================
// 📄 List Semua Post (filter ?approved=true|false)
// =============================
func (ctrl *PostAdminController) GetAllPosts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.WithContext(c.Context()).Model(&model.PostModel{})
	if approved := c.Query("approved"); approved != "" {
		query = query.Where("post_is_approved = ?", approved == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung post")
	}

	var rows []postRow
	listQuery := ctrl.DB.WithContext(c.Context()).
		Model(&model.PostModel{}).
		Select(`posts.*,
			users.user_name AS user_name,
			(SELECT COUNT(*) FROM post_comments WHERE post_comments.post_comment_post_id = posts.post_id) AS comment_count`).
		Joins("JOIN users ON users.user_id = posts.post_user_id")
	if approved := c.Query("approved"); approved != "" {
		listQuery = listQuery.Where("post_is_approved = ?", approved == "true")
	}
	if err := listQuery.
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
// ✅ Setujui / ❌ Tolak Post
// =============================
func (ctrl *PostAdminController) SetPostApproval(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body struct {
		PostIsApproved *bool `json:"post_is_approved"`
	}
	if err := c.BodyParser(&body); err != nil || body.PostIsApproved == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Field post_is_approved wajib diisi")
	}

	var post model.PostModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&post, "post_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil post")
	}

	post.PostIsApproved = *body.PostIsApproved
	if err := ctrl.DB.WithContext(c.Context()).Save(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status post")
	}

	msg := "Post ditolak"
	if post.PostIsApproved {
		msg = "Post disetujui"
	}
	return helper.JsonUpdated(c, msg, dto.ToPostDTO(post, "", 0))
}

// =============================
// ❌ Delete Post (komentar ikut terhapus)
// =============================
func (ctrl *PostAdminController) DeletePostByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PostCommentModel{}, "post_comment_post_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.PostModel{}, "post_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus post")
	}

	return helper.JsonDeleted(c, "Post berhasil dihapus", fiber.Map{"post_id": id})
}

// =============================
// ❌ Delete Komentar
// =============================
func (ctrl *PostAdminController) DeleteCommentByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("comment_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.PostCommentModel{}, "post_comment_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus komentar")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Komentar tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Komentar berhasil dihapus", fiber.Map{"post_comment_id": id})
}
