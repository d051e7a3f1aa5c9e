package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultFacilityName is used when a booking does not name a facility
const DefaultFacilityName = "Community Hall"

// Visitor is a guest registered at the gate for a host resident
type Visitor struct {
	ID            uint    `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"size:100;not null"`
	PhoneNumber   string  `gorm:"size:15;not null"`
	VehicleNumber *string `gorm:"size:20"`
	CheckIn       time.Time
	CheckOut      *time.Time
	ResidentID    uint      `gorm:"not null;index"`
	Resident      *Resident `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE"`
}

// SecurityLog tracks the entry and exit of one visit
type SecurityLog struct {
	ID        uint `gorm:"primaryKey;autoIncrement"`
	VisitorID uint `gorm:"not null;index"`
	Visitor   *Visitor `gorm:"foreignKey:VisitorID;constraint:OnDelete:CASCADE"`
	EntryTime time.Time
	ExitTime  *time.Time
	GuardName string `gorm:"size:100;not null"`
}

// Complaint is filed by a resident and worked by admins
type Complaint struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	Title       string          `gorm:"size:150;not null"`
	Description string          `gorm:"type:text"`
	Status      ComplaintStatus `gorm:"size:20;not null;default:open"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
	ResidentID  uint            `gorm:"not null;index"`
	Resident    *Resident       `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE"`
}

// Payment is a maintenance or dues payment submitted by a resident
type Payment struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentDate   time.Time       `gorm:"autoCreateTime"`
	PaymentStatus PaymentStatus   `gorm:"size:20;not null;default:pending"`
	PaymentMethod string          `gorm:"size:50"`
	ResidentID    uint            `gorm:"not null;index"`
	Resident      *Resident       `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE"`
}

// Facility is a shared amenity of the society
type Facility struct {
	ID                 uint         `gorm:"primaryKey;autoIncrement"`
	Name               string       `gorm:"size:100;not null"`
	Description        string       `gorm:"type:text"`
	AvailabilityStatus Availability `gorm:"size:20;not null;default:available"`
}

// FacilityBooking is a reservation request for an amenity
type FacilityBooking struct {
	ID           uint          `gorm:"primaryKey;autoIncrement"`
	ResidentID   uint          `gorm:"not null;index"`
	Resident     *Resident     `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE"`
	FacilityName string        `gorm:"size:255;not null"`
	StartTime    time.Time     `gorm:"not null"`
	EndTime      *time.Time
	Status       BookingStatus `gorm:"size:10;not null;default:pending"`
	CreatedAt    time.Time     `gorm:"autoCreateTime"`
}

// Notice is an announcement posted by an admin
type Notice struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	Title      string    `gorm:"size:150;not null"`
	Content    string    `gorm:"type:text"`
	PostedByID uint      `gorm:"not null;index"`
	PostedBy   *Resident `gorm:"foreignKey:PostedByID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the table name for Visitor
func (Visitor) TableName() string {
	return "visitors"
}

// TableName overrides the table name for SecurityLog
func (SecurityLog) TableName() string {
	return "security_logs"
}

// TableName overrides the table name for Complaint
func (Complaint) TableName() string {
	return "complaints"
}

// TableName overrides the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// TableName overrides the table name for Facility
func (Facility) TableName() string {
	return "facilities"
}

// TableName overrides the table name for FacilityBooking
func (FacilityBooking) TableName() string {
	return "facility_bookings"
}

// TableName overrides the table name for Notice
func (Notice) TableName() string {
	return "notices"
}
