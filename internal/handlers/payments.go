package handlers

import (
	"fmt"

	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PaymentHandler handles payment routes
type PaymentHandler struct {
	DB *gorm.DB
}

// PaymentStatusRequest is the body of the payment approval route
type PaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

// List handles GET /api/payments/
// @Summary List payments
// @Tags Payments
// @Produce json
// @Security TokenAuth
// @Success 200 {array} PaymentResponse
// @Router /payments/ [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	rows, err := services.ListPayments(h.DB, currentUser(c))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(mapSlice(rows, newPaymentResponse))
}

// Get handles GET /api/payments/:id/
// @Summary Get a payment
// @Tags Payments
// @Produce json
// @Security TokenAuth
// @Param id path int true "Payment ID"
// @Success 200 {object} PaymentResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /payments/{id}/ [get]
func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.GetPayment(h.DB, currentUser(c), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newPaymentResponse(row))
}

// Create handles POST /api/payments/
// @Summary Submit a payment
// @Description The payment is recorded as pending for the caller
// @Tags Payments
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param body body services.PaymentInput true "Payment"
// @Success 201 {object} PaymentResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /payments/ [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in services.PaymentInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.CreatePayment(h.DB, currentUser(c), in)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newPaymentResponse(row))
}

// Update handles PUT and PATCH /api/payments/:id/
// @Summary Correct a payment
// @Tags Payments
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Payment ID"
// @Param body body services.PaymentInput true "Fields to change"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /payments/{id}/ [patch]
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	var in services.PaymentInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.UpdatePayment(h.DB, currentUser(c), id, in)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newPaymentResponse(row))
}

// Approve handles PATCH /api/payments/:id/approve_payment/
// @Summary Complete or reject a payment
// @Tags Payments
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Payment ID"
// @Param body body PaymentStatusRequest true "completed or rejected"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /payments/{id}/approve_payment/ [patch]
func (h *PaymentHandler) Approve(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	var in PaymentStatusRequest
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.SetPaymentStatus(h.DB, currentUser(c), id, in.PaymentStatus)
	if err != nil {
		return utils.HandleError(c, err)
	}
	message := fmt.Sprintf("Payment status updated to %s", row.PaymentStatus)
	return utils.MessageResponse(c, fiber.StatusOK, message, fiber.Map{"status": row.PaymentStatus})
}

// Delete handles DELETE /api/payments/:id/
// @Summary Delete a payment
// @Tags Payments
// @Security TokenAuth
// @Param id path int true "Payment ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /payments/{id}/ [delete]
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	if err := services.DeletePayment(h.DB, currentUser(c), id); err != nil {
		return utils.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
