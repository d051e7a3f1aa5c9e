package services

import (
	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/policy"
	"gorm.io/gorm"
)

// Activity actions
const (
	ActionComplaintStatus = "complaint.status"
	ActionPaymentStatus   = "payment.status"
	ActionBookingStatus   = "booking.status"
	ActionCheckout        = "security_log.checkout"
)

// transitionDetails is the JSON payload of an activity row
type transitionDetails struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
}

// recordActivity appends an activity row using the caller's transaction
func recordActivity(tx *gorm.DB, actor *models.Resident, action, entity string, entityID uint, from, to string) error {
	details, err := models.NewJSON(transitionDetails{From: from, To: to})
	if err != nil {
		return err
	}
	return tx.Create(&models.ActivityLog{
		ActorID:  actor.ID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Details:  details,
	}).Error
}

// ListActivity returns the activity log newest first
func ListActivity(db *gorm.DB, caller *models.Resident, limit int) ([]models.ActivityLog, error) {
	if err := policy.IsAdmin(caller); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return listAll[models.ActivityLog](db.Limit(limit), "created_at DESC, id DESC", "Actor")
}
