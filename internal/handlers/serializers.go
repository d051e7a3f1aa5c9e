package handlers

import (
	"encoding/json"
	"time"

	"github.com/digisamuday/samuday/internal/models"
)

// ResidentResponse is an account without its password hash
type ResidentResponse struct {
	ID          uint        `json:"id"`
	Username    string      `json:"username"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       string      `json:"email"`
	ApartmentNo string      `json:"apartment_no"`
	PhoneNumber string      `json:"phone_number"`
	Role        models.Role `json:"role" swaggertype:"string" enums:"resident,admin,security"`
	Status      string      `json:"status"`
	DateJoined  time.Time   `json:"date_joined"`
}

// VisitorResponse is a visitor with its host resident id
type VisitorResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	PhoneNumber   string     `json:"phone_number"`
	VehicleNumber *string    `json:"vehicle_number"`
	CheckIn       time.Time  `json:"check_in"`
	CheckOut      *time.Time `json:"check_out"`
	Resident      uint       `json:"resident"`
}

// SecurityLogResponse is one visit at the gate
type SecurityLogResponse struct {
	ID        uint       `json:"id"`
	Visitor   uint       `json:"visitor"`
	EntryTime time.Time  `json:"entry_time"`
	ExitTime  *time.Time `json:"exit_time"`
	GuardName string     `json:"guard_name"`
}

// ComplaintResponse is a complaint with the filer's username
type ComplaintResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ResidentName string    `json:"resident_name"`
}

// PaymentResponse is a payment with the payer's id. Amount keeps two decimal places.
type PaymentResponse struct {
	ID            uint      `json:"id"`
	Amount        string    `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method"`
	Resident      uint      `json:"resident"`
}

// FacilityResponse is a shared amenity
type FacilityResponse struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	AvailabilityStatus string `json:"availability_status"`
}

// BookingResponse is a booking with the booker's username
type BookingResponse struct {
	ID           uint       `json:"id"`
	FacilityName string     `json:"facility_name"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	Status       string     `json:"status"`
	Resident     string     `json:"resident"`
}

// NoticeResponse is a notice with the posting admin's username
type NoticeResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	PostedBy  string    `json:"posted_by"`
}

// ActivityResponse is one recorded status change
type ActivityResponse struct {
	ID        uint64          `json:"id"`
	Actor     string          `json:"actor"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  uint            `json:"entity_id"`
	Details   json.RawMessage `json:"details" swaggertype:"object"`
	CreatedAt time.Time       `json:"created_at"`
}

func usernameOf(r *models.Resident) string {
	if r == nil {
		return ""
	}
	return r.Username
}

func newResidentResponse(r *models.Resident) ResidentResponse {
	return ResidentResponse{
		ID:          r.ID,
		Username:    r.Username,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		ApartmentNo: r.ApartmentNo,
		PhoneNumber: r.PhoneNumber,
		Role:        r.Role,
		Status:      string(r.Status),
		DateJoined:  r.DateJoined,
	}
}

func newVisitorResponse(v *models.Visitor) VisitorResponse {
	return VisitorResponse{
		ID:            v.ID,
		Name:          v.Name,
		PhoneNumber:   v.PhoneNumber,
		VehicleNumber: v.VehicleNumber,
		CheckIn:       v.CheckIn,
		CheckOut:      v.CheckOut,
		Resident:      v.ResidentID,
	}
}

func newSecurityLogResponse(l *models.SecurityLog) SecurityLogResponse {
	return SecurityLogResponse{
		ID:        l.ID,
		Visitor:   l.VisitorID,
		EntryTime: l.EntryTime,
		ExitTime:  l.ExitTime,
		GuardName: l.GuardName,
	}
}

func newComplaintResponse(c *models.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		ResidentName: usernameOf(c.Resident),
	}
}

func newPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Amount:        p.Amount.StringFixed(2),
		PaymentDate:   p.PaymentDate,
		PaymentStatus: string(p.PaymentStatus),
		PaymentMethod: p.PaymentMethod,
		Resident:      p.ResidentID,
	}
}

func newFacilityResponse(f *models.Facility) FacilityResponse {
	return FacilityResponse{
		ID:                 f.ID,
		Name:               f.Name,
		Description:        f.Description,
		AvailabilityStatus: string(f.AvailabilityStatus),
	}
}

func newBookingResponse(b *models.FacilityBooking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		FacilityName: b.FacilityName,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       string(b.Status),
		Resident:     usernameOf(b.Resident),
	}
}

func newNoticeResponse(n *models.Notice) NoticeResponse {
	return NoticeResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		PostedBy:  usernameOf(n.PostedBy),
	}
}

func newActivityResponse(a *models.ActivityLog) ActivityResponse {
	details := json.RawMessage("null")
	if len(a.Details.JSON) > 0 {
		details = json.RawMessage(a.Details.JSON)
	}
	return ActivityResponse{
		ID:        a.ID,
		Actor:     usernameOf(a.Actor),
		Action:    a.Action,
		Entity:    a.Entity,
		EntityID:  a.EntityID,
		Details:   details,
		CreatedAt: a.CreatedAt,
	}
}

// mapSlice serializes every row with fn
func mapSlice[T any, R any](rows []T, fn func(*T) R) []R {
	out := make([]R, len(rows))
	for i := range rows {
		out[i] = fn(&rows[i])
	}
	return out
}
