package services

import (
	"strings"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/policy"
	"github.com/digisamuday/samuday/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxAmount is the largest value a decimal(10,2) column holds
var maxAmount = decimal.New(1, 8)

// PaymentInput carries payment fields. Status and resident are never read from clients.
type PaymentInput struct {
	Amount        *decimal.Decimal `json:"amount" swaggertype:"string" example:"1500.00"`
	PaymentMethod *string          `json:"payment_method"`
}

// ListPayments returns every payment
func ListPayments(db *gorm.DB, caller *models.Resident) ([]models.Payment, error) {
	if err := policy.IsAuthenticated(caller); err != nil {
		return nil, err
	}
	return listAll[models.Payment](db, "id")
}

// GetPayment returns one payment
func GetPayment(db *gorm.DB, caller *models.Resident, id uint) (*models.Payment, error) {
	if err := policy.IsAuthenticated(caller); err != nil {
		return nil, err
	}
	return findByID[models.Payment](db, "Payment", id)
}

// CreatePayment stores a pending payment owned by the caller
func CreatePayment(db *gorm.DB, caller *models.Resident, in PaymentInput) (*models.Payment, error) {
	if err := policy.IsAuthenticated(caller); err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	if in.Amount == nil {
		fields["amount"] = "This field is required."
	} else {
		checkAmount(fields, *in.Amount)
	}
	method := ""
	if in.PaymentMethod != nil {
		method = strings.TrimSpace(*in.PaymentMethod)
	}
	if method == "" {
		fields["payment_method"] = "This field is required."
	}
	checkLength(fields, "payment_method", method, 50)
	if len(fields) > 0 {
		return nil, types.ValidationError("Payment is invalid", fields)
	}

	payment := &models.Payment{
		Amount:        *in.Amount,
		PaymentMethod: method,
		PaymentStatus: models.PaymentPending,
		ResidentID:    caller.ID,
	}
	if err := db.Create(payment).Error; err != nil {
		return nil, types.InternalError(err)
	}
	return payment, nil
}

// UpdatePayment lets the owner or an admin correct the amount or method
func UpdatePayment(db *gorm.DB, caller *models.Resident, id uint, in PaymentInput) (*models.Payment, error) {
	payment, err := findByID[models.Payment](db, "Payment", id)
	if err != nil {
		return nil, err
	}
	if err := policy.OwnerOrAdmin(payment.ResidentID)(caller); err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	updates := make(map[string]interface{})
	if in.Amount != nil {
		checkAmount(fields, *in.Amount)
		updates["amount"] = *in.Amount
	}
	if in.PaymentMethod != nil {
		if strings.TrimSpace(*in.PaymentMethod) == "" {
			fields["payment_method"] = "This field may not be blank."
		}
		checkLength(fields, "payment_method", *in.PaymentMethod, 50)
		updates["payment_method"] = *in.PaymentMethod
	}
	if len(fields) > 0 {
		return nil, types.ValidationError("Payment is invalid", fields)
	}

	if len(updates) > 0 {
		if err := db.Model(payment).Updates(updates).Error; err != nil {
			return nil, types.InternalError(err)
		}
	}
	return findByID[models.Payment](db, "Payment", id)
}

// SetPaymentStatus settles a payment as completed or rejected
func SetPaymentStatus(db *gorm.DB, caller *models.Resident, id uint, target string) (*models.Payment, error) {
	status, err := policy.PaymentTransition(caller, target)
	if err != nil {
		return nil, err
	}

	var payment *models.Payment
	err = db.Transaction(func(tx *gorm.DB) error {
		var err error
		payment, err = lockByID[models.Payment](tx, "Payment", id)
		if err != nil {
			return err
		}
		from := payment.PaymentStatus
		if err := tx.Model(payment).Update("payment_status", status).Error; err != nil {
			return err
		}
		payment.PaymentStatus = status
		return recordActivity(tx, caller, ActionPaymentStatus, "payment", id, string(from), string(status))
	})
	if err != nil {
		return nil, storeError("Payment", err)
	}
	return payment, nil
}

// DeletePayment lets the owner or an admin remove a payment
func DeletePayment(db *gorm.DB, caller *models.Resident, id uint) error {
	payment, err := findByID[models.Payment](db, "Payment", id)
	if err != nil {
		return err
	}
	if err := policy.OwnerOrAdmin(payment.ResidentID)(caller); err != nil {
		return err
	}
	return deleteByID[models.Payment](db, "Payment", id)
}

func checkAmount(fields map[string]string, amount decimal.Decimal) {
	switch {
	case !amount.IsPositive():
		fields["amount"] = "Ensure this value is greater than 0."
	case amount.GreaterThanOrEqual(maxAmount):
		fields["amount"] = "Ensure that there are no more than 10 digits in total."
	case !amount.Equal(amount.Truncate(2)):
		fields["amount"] = "Ensure that there are no more than 2 decimal places."
	}
}
