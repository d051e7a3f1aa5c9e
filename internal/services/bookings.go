package services

import (
	"strings"
	"time"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/policy"
	"github.com/digisamuday/samuday/internal/types"
	"gorm.io/gorm"
)

// BookingInput carries booking fields. Status and resident are assigned by the server.
type BookingInput struct {
	FacilityName *string    `json:"facility_name"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
}

// ListBookings returns every booking with its resident
func ListBookings(db *gorm.DB, caller *models.Resident) ([]models.FacilityBooking, error) {
	if err := policy.IsAuthenticated(caller); err != nil {
		return nil, err
	}
	return listAll[models.FacilityBooking](db, "id", "Resident")
}

// GetBooking returns one booking with its resident
func GetBooking(db *gorm.DB, caller *models.Resident, id uint) (*models.FacilityBooking, error) {
	if err := policy.IsAuthenticated(caller); err != nil {
		return nil, err
	}
	return findByID[models.FacilityBooking](db, "Booking", id, "Resident")
}

// CreateBooking files a pending booking for the caller.
// The facility defaults to the community hall and the start to now.
func CreateBooking(db *gorm.DB, caller *models.Resident, in BookingInput) (*models.FacilityBooking, error) {
	if err := policy.IsAuthenticated(caller); err != nil {
		return nil, err
	}

	booking := &models.FacilityBooking{
		ResidentID:   caller.ID,
		FacilityName: models.DefaultFacilityName,
		StartTime:    db.NowFunc(),
		EndTime:      in.EndTime,
		Status:       models.BookingPending,
	}
	if in.FacilityName != nil && strings.TrimSpace(*in.FacilityName) != "" {
		booking.FacilityName = strings.TrimSpace(*in.FacilityName)
	}
	if in.StartTime != nil {
		booking.StartTime = *in.StartTime
	}
	if fields := validateBooking(booking); len(fields) > 0 {
		return nil, types.ValidationError("Booking is invalid", fields)
	}

	if err := db.Create(booking).Error; err != nil {
		return nil, types.InternalError(err)
	}
	booking.Resident = caller
	return booking, nil
}

// UpdateBooking lets the owner or an admin move a booking or rename its facility
func UpdateBooking(db *gorm.DB, caller *models.Resident, id uint, in BookingInput) (*models.FacilityBooking, error) {
	booking, err := findByID[models.FacilityBooking](db, "Booking", id)
	if err != nil {
		return nil, err
	}
	if err := policy.OwnerOrAdmin(booking.ResidentID)(caller); err != nil {
		return nil, err
	}

	if in.FacilityName != nil {
		booking.FacilityName = strings.TrimSpace(*in.FacilityName)
	}
	if in.StartTime != nil {
		booking.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		booking.EndTime = in.EndTime
	}
	fields := validateBooking(booking)
	if booking.FacilityName == "" {
		fields["facility_name"] = "This field may not be blank."
	}
	if len(fields) > 0 {
		return nil, types.ValidationError("Booking is invalid", fields)
	}

	err = db.Model(booking).Select("facility_name", "start_time", "end_time").Updates(booking).Error
	if err != nil {
		return nil, types.InternalError(err)
	}
	return findByID[models.FacilityBooking](db, "Booking", id, "Resident")
}

// SetBookingStatus approves or rejects a booking whatever its current status
func SetBookingStatus(db *gorm.DB, caller *models.Resident, id uint, target models.BookingStatus) (*models.FacilityBooking, error) {
	status, err := policy.BookingTransition(caller, target)
	if err != nil {
		return nil, err
	}

	var booking *models.FacilityBooking
	err = db.Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = lockByID[models.FacilityBooking](tx, "Booking", id)
		if err != nil {
			return err
		}
		from := booking.Status
		if err := tx.Model(booking).Update("status", status).Error; err != nil {
			return err
		}
		booking.Status = status
		return recordActivity(tx, caller, ActionBookingStatus, "facility_booking", id, string(from), string(status))
	})
	if err != nil {
		return nil, storeError("Booking", err)
	}
	return booking, nil
}

// DeleteBooking lets the owner or an admin cancel a booking
func DeleteBooking(db *gorm.DB, caller *models.Resident, id uint) error {
	booking, err := findByID[models.FacilityBooking](db, "Booking", id)
	if err != nil {
		return err
	}
	if err := policy.OwnerOrAdmin(booking.ResidentID)(caller); err != nil {
		return err
	}
	return deleteByID[models.FacilityBooking](db, "Booking", id)
}

func validateBooking(b *models.FacilityBooking) map[string]string {
	fields := make(map[string]string)
	checkLength(fields, "facility_name", b.FacilityName, 255)
	if b.EndTime != nil && b.EndTime.Before(b.StartTime) {
		fields["end_time"] = "End time must not be before the start time."
	}
	return fields
}
