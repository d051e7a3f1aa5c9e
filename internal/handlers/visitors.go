// visitors.go
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
	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// VisitorHandler handles the gate routes used by security
type VisitorHandler struct {
	DB *gorm.DB
}

// VisitorEntryResponse is returned when a visitor is let in
type VisitorEntryResponse struct {
	Message     string              `json:"message"`
	Visitor     VisitorResponse     `json:"visitor"`
	SecurityLog SecurityLogResponse `json:"security_log"`
}

// LogEntry handles POST /api/visitors/
// @Summary Log a visitor entry
// @Description Registers the visitor and opens a security log signed by the guard
// @Tags Visitors
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param body body services.VisitorEntryInput true "Visitor"
// @Success 201 {object} VisitorEntryResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /visitors/ [post]
func (h *VisitorHandler) LogEntry(c *fiber.Ctx) error {
	var in services.VisitorEntryInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	visitor, entry, err := services.LogVisitorEntry(h.DB, currentUser(c), in)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(VisitorEntryResponse{
		Message:     "Visitor entry logged successfully.",
		Visitor:     newVisitorResponse(visitor),
		SecurityLog: newSecurityLogResponse(entry),
	})
}

// List handles GET /api/visitors/
// @Summary List visitors
// @Tags Visitors
// @Produce json
// @Security TokenAuth
// @Success 200 {array} VisitorResponse
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /visitors/ [get]
func (h *VisitorHandler) List(c *fiber.Ctx) error {
	rows, err := services.ListVisitors(h.DB, currentUser(c))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(mapSlice(rows, newVisitorResponse))
}

// Get handles GET /api/visitors/:id/
// @Summary Get a visitor
// @Tags Visitors
// @Produce json
// @Security TokenAuth
// @Param id path int true "Visitor ID"
// @Success 200 {object} VisitorResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visitors/{id}/ [get]
func (h *VisitorHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.GetVisitor(h.DB, currentUser(c), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newVisitorResponse(row))
}

// Update handles PUT and PATCH /api/visitors/:id/
// @Summary Update a visitor
// @Tags Visitors
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Visitor ID"
// @Param body body services.VisitorInput true "Fields to change"
// @Success 200 {object} VisitorResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /visitors/{id}/ [patch]
func (h *VisitorHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	var in services.VisitorInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.UpdateVisitor(h.DB, currentUser(c), id, in)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newVisitorResponse(row))
}

// Delete handles DELETE /api/visitors/:id/
// @Summary Delete a visitor and its security logs
// @Tags Visitors
// @Security TokenAuth
// @Param id path int true "Visitor ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visitors/{id}/ [delete]
func (h *VisitorHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	if err := services.DeleteVisitor(h.DB, currentUser(c), id); err != nil {
		return utils.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
