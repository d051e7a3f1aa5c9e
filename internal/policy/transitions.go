// transitions.go
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

package policy

import (
	"time"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/types"
)

// ComplaintTransition validates an admin moving a complaint to target.
// Any of the three statuses may follow any other.
func ComplaintTransition(caller *models.Resident, target string) (models.ComplaintStatus, error) {
	if err := IsAdmin(caller); err != nil {
		return "", err
	}
	status := models.ComplaintStatus(target)
	if !status.Valid() {
		return "", types.ValidationError("Invalid status", map[string]string{
			"status": "Must be one of: open, in_progress, resolved.",
		})
	}
	return status, nil
}

// PaymentTransition validates an admin settling a payment as completed or rejected.
// The current status is not consulted, so a settled payment may be settled again.
func PaymentTransition(caller *models.Resident, target string) (models.PaymentStatus, error) {
	if err := IsAdmin(caller); err != nil {
		return "", err
	}
	status := models.PaymentStatus(target)
	if status != models.PaymentCompleted && status != models.PaymentRejected {
		return "", types.ValidationError("Invalid status. Use 'completed' or 'rejected'.", map[string]string{
			"payment_status": "Must be one of: completed, rejected.",
		})
	}
	return status, nil
}

// BookingTransition validates an admin approving or rejecting a booking.
// It overwrites whatever status the booking holds.
func BookingTransition(caller *models.Resident, target models.BookingStatus) (models.BookingStatus, error) {
	if err := IsAdmin(caller); err != nil {
		return "", err
	}
	if target != models.BookingApproved && target != models.BookingRejected {
		return "", types.ValidationError("Invalid booking status", map[string]string{
			"status": "Must be one of: approved, rejected.",
		})
	}
	return target, nil
}

// Checkout returns the exit time for a log that is still checked in.
// A log with an exit time is final.
func Checkout(exitTime *time.Time, now time.Time) (time.Time, error) {
	if exitTime != nil {
		return time.Time{}, types.AlreadyCheckedOut()
	}
	return now, nil
}
