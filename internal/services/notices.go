package services

import (
	"strings"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/policy"
	"github.com/digisamuday/samuday/internal/types"
	"gorm.io/gorm"
)

// NoticeInput carries notice fields; nil fields are left alone on update
type NoticeInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ListNotices returns every notice, newest first
func ListNotices(db *gorm.DB, caller *models.Resident) ([]models.Notice, error) {
	if err := policy.IsAuthenticated(caller); err != nil {
		return nil, err
	}
	return listAll[models.Notice](db, "created_at DESC, id DESC", "PostedBy")
}

// GetNotice returns one notice
func GetNotice(db *gorm.DB, caller *models.Resident, id uint) (*models.Notice, error) {
	if err := policy.IsAuthenticated(caller); err != nil {
		return nil, err
	}
	return findByID[models.Notice](db, "Notice", id, "PostedBy")
}

// PostNotice publishes a notice signed by the calling admin
func PostNotice(db *gorm.DB, caller *models.Resident, in NoticeInput) (*models.Notice, error) {
	if err := policy.IsAdmin(caller); err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	title := ""
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
	}
	if title == "" {
		fields["title"] = "This field is required."
	}
	checkLength(fields, "title", title, 150)
	if in.Content == nil || strings.TrimSpace(*in.Content) == "" {
		fields["content"] = "This field is required."
	}
	if len(fields) > 0 {
		return nil, types.ValidationError("Notice is invalid", fields)
	}

	notice := &models.Notice{
		Title:      title,
		Content:    *in.Content,
		PostedByID: caller.ID,
	}
	if err := db.Create(notice).Error; err != nil {
		return nil, types.InternalError(err)
	}
	notice.PostedBy = caller
	return notice, nil
}

// UpdateNotice edits a notice
func UpdateNotice(db *gorm.DB, caller *models.Resident, id uint, in NoticeInput) (*models.Notice, error) {
	if err := policy.IsAdmin(caller); err != nil {
		return nil, err
	}
	notice, err := findByID[models.Notice](db, "Notice", id)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	updates := make(map[string]interface{})
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			fields["title"] = "This field may not be blank."
		}
		checkLength(fields, "title", title, 150)
		updates["title"] = title
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			fields["content"] = "This field may not be blank."
		}
		updates["content"] = *in.Content
	}
	if len(fields) > 0 {
		return nil, types.ValidationError("Notice is invalid", fields)
	}

	if len(updates) > 0 {
		if err := db.Model(notice).Updates(updates).Error; err != nil {
			return nil, types.InternalError(err)
		}
	}
	return findByID[models.Notice](db, "Notice", id, "PostedBy")
}

// DeleteNotice removes a notice
func DeleteNotice(db *gorm.DB, caller *models.Resident, id uint) error {
	if err := policy.IsAdmin(caller); err != nil {
		return err
	}
	return deleteByID[models.Notice](db, "Notice", id)
}
