package handlers

import (
	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ActivityHandler serves the status change history
type ActivityHandler struct {
	DB *gorm.DB
}

// List handles GET /api/activity/
// @Summary List recorded status changes, newest first
// @Tags Activity
// @Produce json
// @Security TokenAuth
// @Param limit query int false "Maximum rows (default 100, max 500)"
// @Success 200 {array} ActivityResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /activity/ [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	rows, err := services.ListActivity(h.DB, currentUser(c), c.QueryInt("limit", 0))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(mapSlice(rows, newActivityResponse))
}
