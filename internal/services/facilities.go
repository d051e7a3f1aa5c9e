package services

import (
	"strings"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/policy"
	"github.com/digisamuday/samuday/internal/types"
	"gorm.io/gorm"
)

// FacilityInput carries facility fields; nil fields are left alone on update
type FacilityInput struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	AvailabilityStatus *string `json:"availability_status"`
}

func (in FacilityInput) validate(creating bool) map[string]string {
	fields := make(map[string]string)
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			fields["name"] = "This field may not be blank."
		}
		checkLength(fields, "name", *in.Name, 100)
	} else if creating {
		fields["name"] = "This field is required."
	}
	if in.AvailabilityStatus != nil && !models.Availability(*in.AvailabilityStatus).Valid() {
		fields["availability_status"] = "Must be one of: available, booked."
	}
	return fields
}

// ListFacilities returns every facility
func ListFacilities(db *gorm.DB, caller *models.Resident) ([]models.Facility, error) {
	if err := policy.IsAuthenticated(caller); err != nil {
		return nil, err
	}
	return listAll[models.Facility](db, "id")
}

// GetFacility returns one facility
func GetFacility(db *gorm.DB, caller *models.Resident, id uint) (*models.Facility, error) {
	if err := policy.IsAuthenticated(caller); err != nil {
		return nil, err
	}
	return findByID[models.Facility](db, "Facility", id)
}

// CreateFacility stores a new facility. Only admins may add facilities.
func CreateFacility(db *gorm.DB, caller *models.Resident, in FacilityInput) (*models.Facility, error) {
	if err := policy.IsAdmin(caller); err != nil {
		return nil, err
	}
	if fields := in.validate(true); len(fields) > 0 {
		return nil, types.ValidationError("Facility is invalid", fields)
	}

	facility := &models.Facility{
		Name:               strings.TrimSpace(*in.Name),
		AvailabilityStatus: models.FacilityAvailable,
	}
	if in.Description != nil {
		facility.Description = *in.Description
	}
	if in.AvailabilityStatus != nil {
		facility.AvailabilityStatus = models.Availability(*in.AvailabilityStatus)
	}
	if err := db.Create(facility).Error; err != nil {
		return nil, types.InternalError(err)
	}
	return facility, nil
}

// UpdateFacility changes a facility
func UpdateFacility(db *gorm.DB, caller *models.Resident, id uint, in FacilityInput) (*models.Facility, error) {
	if err := policy.IsAdmin(caller); err != nil {
		return nil, err
	}
	facility, err := findByID[models.Facility](db, "Facility", id)
	if err != nil {
		return nil, err
	}
	if fields := in.validate(false); len(fields) > 0 {
		return nil, types.ValidationError("Facility is invalid", fields)
	}

	updates := make(map[string]interface{})
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.AvailabilityStatus != nil {
		updates["availability_status"] = *in.AvailabilityStatus
	}
	if len(updates) > 0 {
		if err := db.Model(facility).Updates(updates).Error; err != nil {
			return nil, types.InternalError(err)
		}
	}
	return findByID[models.Facility](db, "Facility", id)
}

// DeleteFacility removes a facility
func DeleteFacility(db *gorm.DB, caller *models.Resident, id uint) error {
	if err := policy.IsAdmin(caller); err != nil {
		return err
	}
	return deleteByID[models.Facility](db, "Facility", id)
}
