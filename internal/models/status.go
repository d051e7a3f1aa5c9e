package models

// ResidentStatus marks whether an account is in use
type ResidentStatus string

const (
	ResidentActive   ResidentStatus = "active"
	ResidentInactive ResidentStatus = "inactive"
)

// ComplaintStatus is the lifecycle state of a complaint
type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "open"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

// PaymentStatus is the review state of a payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRejected  PaymentStatus = "rejected"
)

// BookingStatus is the review state of a facility booking
type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingRejected BookingStatus = "rejected"
)

// Availability is the booking state of a facility
type Availability string

const (
	FacilityAvailable Availability = "available"
	FacilityBooked    Availability = "booked"
)

// Valid reports whether s is a known resident status
func (s ResidentStatus) Valid() bool {
	return s == ResidentActive || s == ResidentInactive
}

// Valid reports whether s is a known complaint status
func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintOpen, ComplaintInProgress, ComplaintResolved:
		return true
	}
	return false
}

// Valid reports whether s is a known payment status
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentRejected:
		return true
	}
	return false
}

// Valid reports whether s is a known booking status
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected:
		return true
	}
	return false
}

// Valid reports whether a is a known availability
func (a Availability) Valid() bool {
	return a == FacilityAvailable || a == FacilityBooked
}
