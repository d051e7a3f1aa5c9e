package models

import "time"

// ActivityLog records a status change made by a resident
type ActivityLog struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ActorID   uint      `gorm:"not null;index"`
	Actor     *Resident `gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE"`
	Action    string    `gorm:"size:50;not null"`
	Entity    string    `gorm:"size:50;not null;index:idx_activity_entity"`
	EntityID  uint      `gorm:"not null;index:idx_activity_entity"`
	Details   JSON
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// All returns every model owned by the entity store, parents first
func All() []interface{} {
	return []interface{}{
		&Resident{},
		&AuthToken{},
		&Visitor{},
		&SecurityLog{},
		&Complaint{},
		&Payment{},
		&Facility{},
		&FacilityBooking{},
		&Notice{},
		&ActivityLog{},
	}
}
