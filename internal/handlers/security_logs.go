// security_logs.go
//
// Residential society management data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of samuday.
// samuday is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// samuday is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with samuday.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"time"

	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SecurityLogHandler handles the visit log routes
type SecurityLogHandler struct {
	DB *gorm.DB
}

// CheckoutResponse carries the recorded exit time
type CheckoutResponse struct {
	Message  string    `json:"message"`
	ExitTime time.Time `json:"exit_time"`
}

// List handles GET /api/security-logs/
// @Summary List visit logs, newest entry first
// @Tags SecurityLogs
// @Produce json
// @Security TokenAuth
// @Success 200 {array} SecurityLogResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /security-logs/ [get]
func (h *SecurityLogHandler) List(c *fiber.Ctx) error {
	rows, err := services.ListSecurityLogs(h.DB, currentUser(c))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(mapSlice(rows, newSecurityLogResponse))
}

// Get handles GET /api/security-logs/:id/
// @Summary Get a visit log
// @Tags SecurityLogs
// @Produce json
// @Security TokenAuth
// @Param id path int true "Log ID"
// @Success 200 {object} SecurityLogResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /security-logs/{id}/ [get]
func (h *SecurityLogHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.GetSecurityLog(h.DB, currentUser(c), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newSecurityLogResponse(row))
}

// Checkout handles PATCH /api/security-logs/:id/checkout/
// @Summary Check a visitor out
// @Tags SecurityLogs
// @Produce json
// @Security TokenAuth
// @Param id path int true "Log ID"
// @Success 200 {object} CheckoutResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /security-logs/{id}/checkout/ [patch]
func (h *SecurityLogHandler) Checkout(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.CheckoutVisitor(h.DB, currentUser(c), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(CheckoutResponse{
		Message:  "Check-out successful",
		ExitTime: *row.ExitTime,
	})
}
