package handlers

import (
	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ResidentHandler handles the admin account routes
type ResidentHandler struct {
	DB         *gorm.DB
	BcryptCost int
}

// List handles GET /api/residents/
// @Summary List residents
// @Tags Residents
// @Produce json
// @Security TokenAuth
// @Success 200 {array} ResidentResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /residents/ [get]
func (h *ResidentHandler) List(c *fiber.Ctx) error {
	rows, err := services.ListResidents(h.DB, currentUser(c))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(mapSlice(rows, newResidentResponse))
}

// Get handles GET /api/residents/:id/
// @Summary Get a resident
// @Tags Residents
// @Produce json
// @Security TokenAuth
// @Param id path int true "Resident ID"
// @Success 200 {object} ResidentResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /residents/{id}/ [get]
func (h *ResidentHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.GetResident(h.DB, currentUser(c), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newResidentResponse(row))
}

// Create handles POST /api/residents/
// @Summary Create a resident
// @Tags Residents
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param body body services.RegisterInput true "Account"
// @Success 201 {object} ResidentResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /residents/ [post]
func (h *ResidentHandler) Create(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.CreateResident(h.DB, currentUser(c), in, h.BcryptCost)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newResidentResponse(row))
}

// Update handles PUT and PATCH /api/residents/:id/
// @Summary Update a resident
// @Tags Residents
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Resident ID"
// @Param body body services.ResidentInput true "Fields to change"
// @Success 200 {object} ResidentResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /residents/{id}/ [patch]
func (h *ResidentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	var in services.ResidentInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.UpdateResident(h.DB, currentUser(c), id, in)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newResidentResponse(row))
}

// Delete handles DELETE /api/residents/:id/
// @Summary Delete a resident and everything they own
// @Tags Residents
// @Security TokenAuth
// @Param id path int true "Resident ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /residents/{id}/ [delete]
func (h *ResidentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	if err := services.DeleteResident(h.DB, currentUser(c), id); err != nil {
		return utils.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
