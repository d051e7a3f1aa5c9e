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

package services

import (
	"strings"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/policy"
	"github.com/digisamuday/samuday/internal/types"
	"gorm.io/gorm"
)

// ComplaintInput carries complaint fields; nil fields are left alone on update
type ComplaintInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// ListComplaints returns every complaint to admins and only their own complaints to everyone else
func ListComplaints(db *gorm.DB, caller *models.Resident) ([]models.Complaint, error) {
	if err := policy.IsAuthenticated(caller); err != nil {
		return nil, err
	}
	query := db
	if policy.IsAdmin(caller) != nil {
		query = query.Where("resident_id = ?", caller.ID)
	}
	return listAll[models.Complaint](query, "id", "Resident")
}

// GetComplaint returns one complaint visible to the caller
func GetComplaint(db *gorm.DB, caller *models.Resident, id uint) (*models.Complaint, error) {
	if err := policy.IsAuthenticated(caller); err != nil {
		return nil, err
	}
	complaint, err := findByID[models.Complaint](db, "Complaint", id, "Resident")
	if err != nil {
		return nil, err
	}
	if policy.IsAdmin(caller) != nil && complaint.ResidentID != caller.ID {
		return nil, types.NotFound("Complaint")
	}
	return complaint, nil
}

// FileComplaint stores a new open complaint owned by the filing resident
func FileComplaint(db *gorm.DB, caller *models.Resident, in ComplaintInput) (*models.Complaint, error) {
	if err := policy.IsResident(caller); err != nil {
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
	description := ""
	if in.Description != nil {
		description = *in.Description
	}
	if strings.TrimSpace(description) == "" {
		fields["description"] = "This field is required."
	}
	if len(fields) > 0 {
		return nil, types.ValidationError("Complaint is invalid", fields)
	}

	complaint := &models.Complaint{
		Title:       title,
		Description: description,
		Status:      models.ComplaintOpen,
		ResidentID:  caller.ID,
	}
	if err := db.Create(complaint).Error; err != nil {
		return nil, types.InternalError(err)
	}
	complaint.Resident = caller
	return complaint, nil
}

// UpdateComplaint applies an admin's edits to a complaint
func UpdateComplaint(db *gorm.DB, caller *models.Resident, id uint, in ComplaintInput) (*models.Complaint, error) {
	if err := policy.IsAdmin(caller); err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	updates := make(map[string]interface{})
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			fields["title"] = "This field may not be blank."
		}
		checkLength(fields, "title", *in.Title, 150)
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Status != nil {
		status := models.ComplaintStatus(*in.Status)
		if !status.Valid() {
			fields["status"] = "Must be one of: open, in_progress, resolved."
		}
		updates["status"] = status
	}
	if len(fields) > 0 {
		return nil, types.ValidationError("Complaint is invalid", fields)
	}

	complaint, err := findByID[models.Complaint](db, "Complaint", id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := db.Model(complaint).Updates(updates).Error; err != nil {
			return nil, types.InternalError(err)
		}
	}
	return findByID[models.Complaint](db, "Complaint", id, "Resident")
}

// UpdateComplaintStatus moves a complaint to target and records the change
func UpdateComplaintStatus(db *gorm.DB, caller *models.Resident, id uint, target string) (*models.Complaint, error) {
	status, err := policy.ComplaintTransition(caller, target)
	if err != nil {
		return nil, err
	}

	var complaint *models.Complaint
	err = db.Transaction(func(tx *gorm.DB) error {
		var err error
		complaint, err = lockByID[models.Complaint](tx, "Complaint", id)
		if err != nil {
			return err
		}
		from := complaint.Status
		if err := tx.Model(complaint).Update("status", status).Error; err != nil {
			return err
		}
		complaint.Status = status
		return recordActivity(tx, caller, ActionComplaintStatus, "complaint", id, string(from), string(status))
	})
	if err != nil {
		return nil, storeError("Complaint", err)
	}
	return complaint, nil
}

// DeleteComplaint removes a complaint
func DeleteComplaint(db *gorm.DB, caller *models.Resident, id uint) error {
	if err := policy.IsAdmin(caller); err != nil {
		return err
	}
	return deleteByID[models.Complaint](db, "Complaint", id)
}
