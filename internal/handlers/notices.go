package handlers

import (
	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NoticeHandler handles notice board routes
type NoticeHandler struct {
	DB *gorm.DB
}

// List handles GET /api/notices/
// @Summary List notices, newest first
// @Tags Notices
// @Produce json
// @Security TokenAuth
// @Success 200 {array} NoticeResponse
// @Router /notices/ [get]
func (h *NoticeHandler) List(c *fiber.Ctx) error {
	rows, err := services.ListNotices(h.DB, currentUser(c))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(mapSlice(rows, newNoticeResponse))
}

// Get handles GET /api/notices/:id/
// @Summary Get a notice
// @Tags Notices
// @Produce json
// @Security TokenAuth
// @Param id path int true "Notice ID"
// @Success 200 {object} NoticeResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /notices/{id}/ [get]
func (h *NoticeHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.GetNotice(h.DB, currentUser(c), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newNoticeResponse(row))
}

// Create handles POST /api/notices/
// @Summary Post a notice
// @Tags Notices
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param body body services.NoticeInput true "Notice"
// @Success 201 {object} NoticeResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /notices/ [post]
func (h *NoticeHandler) Create(c *fiber.Ctx) error {
	var in services.NoticeInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.PostNotice(h.DB, currentUser(c), in)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newNoticeResponse(row))
}

// Update handles PUT and PATCH /api/notices/:id/
// @Summary Edit a notice
// @Tags Notices
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Notice ID"
// @Param body body services.NoticeInput true "Fields to change"
// @Success 200 {object} NoticeResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /notices/{id}/ [patch]
func (h *NoticeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	var in services.NoticeInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.UpdateNotice(h.DB, currentUser(c), id, in)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newNoticeResponse(row))
}

// Delete handles DELETE /api/notices/:id/
// @Summary Take down a notice
// @Tags Notices
// @Security TokenAuth
// @Param id path int true "Notice ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /notices/{id}/ [delete]
func (h *NoticeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	if err := services.DeleteNotice(h.DB, currentUser(c), id); err != nil {
		return utils.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
