package handlers

import (
	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FacilityHandler handles facility routes
type FacilityHandler struct {
	DB *gorm.DB
}

// List handles GET /api/facilities/
// @Summary List facilities
// @Tags Facilities
// @Produce json
// @Security TokenAuth
// @Success 200 {array} FacilityResponse
// @Router /facilities/ [get]
func (h *FacilityHandler) List(c *fiber.Ctx) error {
	rows, err := services.ListFacilities(h.DB, currentUser(c))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(mapSlice(rows, newFacilityResponse))
}

// Get handles GET /api/facilities/:id/
// @Summary Get a facility
// @Tags Facilities
// @Produce json
// @Security TokenAuth
// @Param id path int true "Facility ID"
// @Success 200 {object} FacilityResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /facilities/{id}/ [get]
func (h *FacilityHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.GetFacility(h.DB, currentUser(c), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newFacilityResponse(row))
}

// Create handles POST /api/facilities/
// @Summary Add a facility
// @Tags Facilities
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param body body services.FacilityInput true "Facility"
// @Success 201 {object} FacilityResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /facilities/ [post]
func (h *FacilityHandler) Create(c *fiber.Ctx) error {
	var in services.FacilityInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.CreateFacility(h.DB, currentUser(c), in)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newFacilityResponse(row))
}

// Update handles PUT and PATCH /api/facilities/:id/
// @Summary Update a facility
// @Tags Facilities
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Facility ID"
// @Param body body services.FacilityInput true "Fields to change"
// @Success 200 {object} FacilityResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /facilities/{id}/ [patch]
func (h *FacilityHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	var in services.FacilityInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.UpdateFacility(h.DB, currentUser(c), id, in)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newFacilityResponse(row))
}

// Delete handles DELETE /api/facilities/:id/
// @Summary Remove a facility
// @Tags Facilities
// @Security TokenAuth
// @Param id path int true "Facility ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /facilities/{id}/ [delete]
func (h *FacilityHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	if err := services.DeleteFacility(h.DB, currentUser(c), id); err != nil {
		return utils.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
