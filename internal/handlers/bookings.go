package handlers

import (
	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingHandler handles facility booking routes
type BookingHandler struct {
	DB *gorm.DB
}

// List handles GET /api/facility-bookings/
// @Summary List bookings
// @Tags Bookings
// @Produce json
// @Security TokenAuth
// @Success 200 {array} BookingResponse
// @Router /facility-bookings/ [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	rows, err := services.ListBookings(h.DB, currentUser(c))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(mapSlice(rows, newBookingResponse))
}

// Get handles GET /api/facility-bookings/:id/
// @Summary Get a booking
// @Tags Bookings
// @Produce json
// @Security TokenAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} BookingResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /facility-bookings/{id}/ [get]
func (h *BookingHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.GetBooking(h.DB, currentUser(c), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newBookingResponse(row))
}

// Create handles POST /api/facility-bookings/
// @Summary Request a booking
// @Description The booking is filed as pending for the caller
// @Tags Bookings
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param body body services.BookingInput true "Booking"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /facility-bookings/ [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in services.BookingInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.CreateBooking(h.DB, currentUser(c), in)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newBookingResponse(row))
}

// Update handles PUT and PATCH /api/facility-bookings/:id/
// @Summary Change a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Booking ID"
// @Param body body services.BookingInput true "Fields to change"
// @Success 200 {object} BookingResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /facility-bookings/{id}/ [patch]
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	var in services.BookingInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.UpdateBooking(h.DB, currentUser(c), id, in)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newBookingResponse(row))
}

// Approve handles PATCH /api/facility-bookings/:id/approve/
// @Summary Approve a booking
// @Tags Bookings
// @Produce json
// @Security TokenAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /facility-bookings/{id}/approve/ [patch]
func (h *BookingHandler) Approve(c *fiber.Ctx) error {
	return h.setStatus(c, models.BookingApproved, "Booking approved")
}

// Reject handles PATCH /api/facility-bookings/:id/reject/
// @Summary Reject a booking
// @Tags Bookings
// @Produce json
// @Security TokenAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /facility-bookings/{id}/reject/ [patch]
func (h *BookingHandler) Reject(c *fiber.Ctx) error {
	return h.setStatus(c, models.BookingRejected, "Booking rejected")
}

func (h *BookingHandler) setStatus(c *fiber.Ctx, target models.BookingStatus, message string) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.SetBookingStatus(h.DB, currentUser(c), id, target)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, message, fiber.Map{"status": row.Status})
}

// Delete handles DELETE /api/facility-bookings/:id/
// @Summary Cancel a booking
// @Tags Bookings
// @Security TokenAuth
// @Param id path int true "Booking ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /facility-bookings/{id}/ [delete]
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	if err := services.DeleteBooking(h.DB, currentUser(c), id); err != nil {
		return utils.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
