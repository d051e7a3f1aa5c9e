package services

import (
	"fmt"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/policy"
	"github.com/digisamuday/samuday/internal/types"
	"gorm.io/gorm"
)

// ResidentInput carries the account fields an admin may change; nil fields are left alone
type ResidentInput struct {
	Username    *string `json:"username"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	ApartmentNo *string `json:"apartment_no"`
	PhoneNumber *string `json:"phone_number"`
	Role        *string `json:"role"`
	Status      *string `json:"status"`
}

// ListResidents returns every account
func ListResidents(db *gorm.DB, caller *models.Resident) ([]models.Resident, error) {
	if err := policy.IsAdmin(caller); err != nil {
		return nil, err
	}
	return listAll[models.Resident](db, "id")
}

// GetResident returns one account
func GetResident(db *gorm.DB, caller *models.Resident, id uint) (*models.Resident, error) {
	if err := policy.IsAdmin(caller); err != nil {
		return nil, err
	}
	return findByID[models.Resident](db, "Resident", id)
}

// CreateResident registers an account on behalf of an admin
func CreateResident(db *gorm.DB, caller *models.Resident, in RegisterInput, cost int) (*models.Resident, error) {
	if err := policy.IsAdmin(caller); err != nil {
		return nil, err
	}
	return Register(db, in, cost)
}

// UpdateResident applies an admin's changes to an account
func UpdateResident(db *gorm.DB, caller *models.Resident, id uint, in ResidentInput) (*models.Resident, error) {
	if err := policy.IsAdmin(caller); err != nil {
		return nil, err
	}
	resident, err := findByID[models.Resident](db, "Resident", id)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	updates := make(map[string]interface{})
	if in.Username != nil {
		switch {
		case *in.Username == "":
			fields["username"] = "This field may not be blank."
		case *in.Username != resident.Username:
			var count int64
			if err := db.Model(&models.Resident{}).Where("username = ? AND id <> ?", *in.Username, id).Count(&count).Error; err != nil {
				return nil, types.InternalError(err)
			}
			if count > 0 {
				fields["username"] = "A user with that username already exists."
			}
		}
		checkLength(fields, "username", *in.Username, 150)
		updates["username"] = *in.Username
	}
	if in.FirstName != nil {
		checkLength(fields, "first_name", *in.FirstName, 150)
		updates["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		checkLength(fields, "last_name", *in.LastName, 150)
		updates["last_name"] = *in.LastName
	}
	if in.Email != nil {
		checkEmail(fields, *in.Email)
		updates["email"] = *in.Email
	}
	if in.ApartmentNo != nil {
		checkLength(fields, "apartment_no", *in.ApartmentNo, 20)
		updates["apartment_no"] = *in.ApartmentNo
	}
	if in.PhoneNumber != nil {
		checkLength(fields, "phone_number", *in.PhoneNumber, 15)
		updates["phone_number"] = *in.PhoneNumber
	}
	if in.Role != nil {
		role, err := models.ParseRole(*in.Role)
		if err != nil {
			fields["role"] = fmt.Sprintf("%q is not a valid choice.", *in.Role)
		} else if resident.Role == models.RoleAdmin && role != models.RoleAdmin {
			// notices may only be owned by admins
			var notices int64
			if err := db.Model(&models.Notice{}).Where("posted_by_id = ?", id).Count(&notices).Error; err != nil {
				return nil, types.InternalError(err)
			}
			if notices > 0 {
				fields["role"] = "Cannot change the role of an account that has posted notices."
			}
		}
		updates["role"] = role
	}
	if in.Status != nil {
		status := models.ResidentStatus(*in.Status)
		if !status.Valid() {
			fields["status"] = fmt.Sprintf("%q is not a valid choice.", *in.Status)
		}
		updates["status"] = status
	}
	if len(fields) > 0 {
		return nil, types.ValidationError("Resident update failed", fields)
	}

	if len(updates) > 0 {
		if err := db.Model(resident).Updates(updates).Error; err != nil {
			return nil, types.InternalError(err)
		}
	}
	return findByID[models.Resident](db, "Resident", id)
}

// DeleteResident removes an account and every row that references it
func DeleteResident(db *gorm.DB, caller *models.Resident, id uint) error {
	if err := policy.IsAdmin(caller); err != nil {
		return err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockByID[models.Resident](tx, "Resident", id); err != nil {
			return err
		}

		visitorIDs := tx.Model(&models.Visitor{}).Select("id").Where("resident_id = ?", id)
		if err := tx.Where("visitor_id IN (?)", visitorIDs).Delete(&models.SecurityLog{}).Error; err != nil {
			return err
		}

		owned := []interface{}{
			&models.Visitor{},
			&models.Complaint{},
			&models.Payment{},
			&models.FacilityBooking{},
			&models.AuthToken{},
		}
		for _, model := range owned {
			if err := tx.Where("resident_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("posted_by_id = ?", id).Delete(&models.Notice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("actor_id = ?", id).Delete(&models.ActivityLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Resident{}, id).Error
	})
	if err != nil {
		return storeError("Resident", err)
	}
	return nil
}
