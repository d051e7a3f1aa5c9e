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

package services

import (
	"time"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/policy"
	"github.com/digisamuday/samuday/internal/types"
	"gorm.io/gorm"
)

// canReadLogs gates the security log listing
var canReadLogs = policy.AnyRole(models.RoleAdmin, models.RoleSecurity)

// ListSecurityLogs returns every security log, newest entry first
func ListSecurityLogs(db *gorm.DB, caller *models.Resident) ([]models.SecurityLog, error) {
	if err := canReadLogs(caller); err != nil {
		return nil, err
	}
	return listAll[models.SecurityLog](db, "entry_time DESC, id DESC")
}

// GetSecurityLog returns one security log
func GetSecurityLog(db *gorm.DB, caller *models.Resident, id uint) (*models.SecurityLog, error) {
	if err := policy.IsAuthenticated(caller); err != nil {
		return nil, err
	}
	return findByID[models.SecurityLog](db, "Visitor log", id)
}

// CheckoutVisitor stamps the exit time of a visit and the visitor's check out.
// A log that already has an exit time is left untouched.
func CheckoutVisitor(db *gorm.DB, caller *models.Resident, id uint) (*models.SecurityLog, error) {
	if err := policy.IsAuthenticated(caller); err != nil {
		return nil, err
	}

	var entry *models.SecurityLog
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		entry, err = lockByID[models.SecurityLog](tx, "Visitor log", id)
		if err != nil {
			return err
		}
		exit, err := policy.Checkout(entry.ExitTime, tx.NowFunc())
		if err != nil {
			return err
		}

		// engines without FOR UPDATE (sqlite) can race between the read and here;
		// the exit_time guard keeps a concurrent checkout from overwriting this one
		result := tx.Model(&models.SecurityLog{}).
			Where("id = ? AND exit_time IS NULL", id).
			Update("exit_time", exit)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return types.AlreadyCheckedOut()
		}
		entry.ExitTime = &exit

		err = tx.Model(&models.Visitor{}).
			Where("id = ? AND check_out IS NULL", entry.VisitorID).
			Update("check_out", exit).Error
		if err != nil {
			return err
		}
		return recordActivity(tx, caller, ActionCheckout, "security_log", id, "", exit.Format(time.RFC3339))
	})
	if err != nil {
		return nil, storeError("Visitor log", err)
	}
	return entry, nil
}
