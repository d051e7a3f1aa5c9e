// complaints.go
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

// ComplaintHandler handles complaint routes
type ComplaintHandler struct {
	DB *gorm.DB
}

// StatusRequest is the body of the status transition routes
type StatusRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/complaints/
// @Summary List complaints
// @Description Admins see every complaint, everyone else only their own
// @Tags Complaints
// @Produce json
// @Security TokenAuth
// @Success 200 {array} ComplaintResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /complaints/ [get]
func (h *ComplaintHandler) List(c *fiber.Ctx) error {
	rows, err := services.ListComplaints(h.DB, currentUser(c))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(mapSlice(rows, newComplaintResponse))
}

// Get handles GET /api/complaints/:id/
// @Summary Get a complaint
// @Tags Complaints
// @Produce json
// @Security TokenAuth
// @Param id path int true "Complaint ID"
// @Success 200 {object} ComplaintResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /complaints/{id}/ [get]
func (h *ComplaintHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.GetComplaint(h.DB, currentUser(c), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newComplaintResponse(row))
}

// Create handles POST /api/complaints/
// @Summary File a complaint
// @Tags Complaints
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param body body services.ComplaintInput true "Complaint"
// @Success 201 {object} ComplaintResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /complaints/ [post]
func (h *ComplaintHandler) Create(c *fiber.Ctx) error {
	var in services.ComplaintInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.FileComplaint(h.DB, currentUser(c), in)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newComplaintResponse(row))
}

// Update handles PUT and PATCH /api/complaints/:id/
// @Summary Update a complaint
// @Tags Complaints
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Complaint ID"
// @Param body body services.ComplaintInput true "Fields to change"
// @Success 200 {object} ComplaintResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /complaints/{id}/ [patch]
func (h *ComplaintHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	var in services.ComplaintInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.UpdateComplaint(h.DB, currentUser(c), id, in)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(newComplaintResponse(row))
}

// UpdateStatus handles PATCH /api/complaints/:id/update-status/
// @Summary Move a complaint to another status
// @Tags Complaints
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Complaint ID"
// @Param body body StatusRequest true "open, in_progress or resolved"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /complaints/{id}/update-status/ [patch]
func (h *ComplaintHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	var in StatusRequest
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	row, err := services.UpdateComplaintStatus(h.DB, currentUser(c), id, in.Status)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Complaint status updated", fiber.Map{"status": row.Status})
}

// Delete handles DELETE /api/complaints/:id/
// @Summary Delete a complaint
// @Tags Complaints
// @Security TokenAuth
// @Param id path int true "Complaint ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /complaints/{id}/ [delete]
func (h *ComplaintHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	if err := services.DeleteComplaint(h.DB, currentUser(c), id); err != nil {
		return utils.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
