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

package services

import (
	"errors"
	"strings"
	"time"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/policy"
	"github.com/digisamuday/samuday/internal/types"
	"gorm.io/gorm"
)

// VisitorEntryInput is the body of a gate entry
type VisitorEntryInput struct {
	Name          string       `json:"name"`
	PhoneNumber   string       `json:"phone_number"`
	VehicleNumber string       `json:"vehicle_number"`
	ResidentID    types.FlexID `json:"resident_id"`
}

// VisitorInput carries the visitor fields security may change; nil fields are left alone
type VisitorInput struct {
	Name          *string       `json:"name"`
	PhoneNumber   *string       `json:"phone_number"`
	VehicleNumber *string       `json:"vehicle_number"`
	ResidentID    *types.FlexID `json:"resident"`
	CheckOut      *time.Time    `json:"check_out"`
}

// LogVisitorEntry registers a visitor at the gate and opens a security log for the visit.
// Both rows are written in one transaction.
func LogVisitorEntry(db *gorm.DB, caller *models.Resident, in VisitorEntryInput) (*models.Visitor, *models.SecurityLog, error) {
	if err := policy.IsSecurity(caller); err != nil {
		return nil, nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.PhoneNumber == "" {
		missing = append(missing, "phone_number")
	}
	if in.ResidentID.IsZero() {
		missing = append(missing, "resident_id")
	}
	if len(missing) > 0 {
		return nil, nil, types.MissingFields(missing...)
	}

	fields := make(map[string]string)
	checkLength(fields, "name", in.Name, 100)
	checkLength(fields, "phone_number", in.PhoneNumber, 15)
	checkLength(fields, "vehicle_number", in.VehicleNumber, 20)
	if len(fields) > 0 {
		return nil, nil, types.ValidationError("Visitor entry failed", fields)
	}

	now := db.NowFunc()
	visitor := &models.Visitor{
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		CheckIn:     now,
		ResidentID:  in.ResidentID.Uint(),
	}
	if in.VehicleNumber != "" {
		vehicle := in.VehicleNumber
		visitor.VehicleNumber = &vehicle
	}
	entry := &models.SecurityLog{
		EntryTime: now,
		GuardName: caller.Username,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := residentExists(tx, in.ResidentID.Uint()); err != nil {
			return err
		}
		if err := tx.Create(visitor).Error; err != nil {
			return err
		}
		entry.VisitorID = visitor.ID
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, nil, storeError("Visitor", err)
	}
	return visitor, entry, nil
}

// ListVisitors returns every visitor
func ListVisitors(db *gorm.DB, caller *models.Resident) ([]models.Visitor, error) {
	if err := policy.IsSecurity(caller); err != nil {
		return nil, err
	}
	return listAll[models.Visitor](db, "id")
}

// GetVisitor returns one visitor
func GetVisitor(db *gorm.DB, caller *models.Resident, id uint) (*models.Visitor, error) {
	if err := policy.IsSecurity(caller); err != nil {
		return nil, err
	}
	return findByID[models.Visitor](db, "Visitor", id)
}

// UpdateVisitor applies security's changes to a visitor record
func UpdateVisitor(db *gorm.DB, caller *models.Resident, id uint, in VisitorInput) (*models.Visitor, error) {
	if err := policy.IsSecurity(caller); err != nil {
		return nil, err
	}
	visitor, err := findByID[models.Visitor](db, "Visitor", id)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	updates := make(map[string]interface{})
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			fields["name"] = "This field may not be blank."
		}
		checkLength(fields, "name", *in.Name, 100)
		updates["name"] = *in.Name
	}
	if in.PhoneNumber != nil {
		if strings.TrimSpace(*in.PhoneNumber) == "" {
			fields["phone_number"] = "This field may not be blank."
		}
		checkLength(fields, "phone_number", *in.PhoneNumber, 15)
		updates["phone_number"] = *in.PhoneNumber
	}
	if in.VehicleNumber != nil {
		checkLength(fields, "vehicle_number", *in.VehicleNumber, 20)
		if *in.VehicleNumber == "" {
			updates["vehicle_number"] = nil
		} else {
			updates["vehicle_number"] = *in.VehicleNumber
		}
	}
	if in.CheckOut != nil {
		if in.CheckOut.Before(visitor.CheckIn) {
			fields["check_out"] = "Check-out cannot be earlier than check-in."
		}
		updates["check_out"] = in.CheckOut.UTC()
	}
	if in.ResidentID != nil {
		if in.ResidentID.IsZero() {
			fields["resident"] = "This field may not be null."
		} else if err := residentExists(db, in.ResidentID.Uint()); err != nil {
			if types.KindOf(err) != types.KindResidentNotFound {
				return nil, storeError("Resident", err)
			}
			fields["resident"] = "Resident not found."
		}
		updates["resident_id"] = in.ResidentID.Uint()
	}
	if len(fields) > 0 {
		return nil, types.ValidationError("Visitor update failed", fields)
	}

	if len(updates) > 0 {
		if err := db.Model(visitor).Updates(updates).Error; err != nil {
			return nil, types.InternalError(err)
		}
	}
	return findByID[models.Visitor](db, "Visitor", id)
}

// DeleteVisitor removes a visitor and the security logs of the visit
func DeleteVisitor(db *gorm.DB, caller *models.Resident, id uint) error {
	if err := policy.IsSecurity(caller); err != nil {
		return err
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("visitor_id = ?", id).Delete(&models.SecurityLog{}).Error; err != nil {
			return err
		}
		return deleteByID[models.Visitor](tx, "Visitor", id)
	})
	if err != nil {
		return storeError("Visitor", err)
	}
	return nil
}

func residentExists(db *gorm.DB, id uint) error {
	var resident models.Resident
	if err := db.Select("id").First(&resident, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.ResidentNotFound()
		}
		return err
	}
	return nil
}
