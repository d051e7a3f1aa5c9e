package services_test

import (
	"testing"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/testhelpers"
	"github.com/digisamuday/samuday/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func amount(t *testing.T, value string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return &d
}

func TestCreatePayment(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	resident := testhelpers.CreateResident(t, db, "asha", models.RoleResident)

	payment, err := services.CreatePayment(db, resident, services.PaymentInput{
		Amount: amount(t, "1500.00"), PaymentMethod: strPtr("upi"),
	})
	require.NoError(t, err)
	require.Equal(t, models.PaymentPending, payment.PaymentStatus)
	require.Equal(t, resident.ID, payment.ResidentID)

	stored, err := services.GetPayment(db, resident, payment.ID)
	require.NoError(t, err)
	require.Equal(t, "1500.00", stored.Amount.StringFixed(2))
	require.Equal(t, "upi", stored.PaymentMethod)
}

func TestCreatePaymentValidation(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	resident := testhelpers.CreateResident(t, db, "asha", models.RoleResident)

	cases := map[string]services.PaymentInput{
		"missing":   {},
		"zero":      {Amount: amount(t, "0"), PaymentMethod: strPtr("cash")},
		"negative":  {Amount: amount(t, "-10"), PaymentMethod: strPtr("cash")},
		"precision": {Amount: amount(t, "10.005"), PaymentMethod: strPtr("cash")},
		"too large": {Amount: amount(t, "100000000"), PaymentMethod: strPtr("cash")},
	}
	for name, in := range cases {
		_, err := services.CreatePayment(db, resident, in)
		requireKind(t, err, types.KindValidation)
		require.Contains(t, err.(*types.CustomError).Fields, "amount", name)
	}

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSetPaymentStatus(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	resident := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	admin := testhelpers.CreateResident(t, db, "office", models.RoleAdmin)

	payment, err := services.CreatePayment(db, resident, services.PaymentInput{
		Amount: amount(t, "250.50"), PaymentMethod: strPtr("cash"),
	})
	require.NoError(t, err)

	_, err = services.SetPaymentStatus(db, resident, payment.ID, "completed")
	requireKind(t, err, types.KindPermissionDenied)

	_, err = services.SetPaymentStatus(db, admin, payment.ID, "refunded")
	requireKind(t, err, types.KindValidation)

	approved, err := services.SetPaymentStatus(db, admin, payment.ID, "completed")
	require.NoError(t, err)
	require.Equal(t, models.PaymentCompleted, approved.PaymentStatus)

	// settled payments may be settled again
	rejected, err := services.SetPaymentStatus(db, admin, payment.ID, "rejected")
	require.NoError(t, err)
	require.Equal(t, models.PaymentRejected, rejected.PaymentStatus)

	_, err = services.SetPaymentStatus(db, admin, 9999, "completed")
	requireKind(t, err, types.KindNotFound)
}

func TestPaymentOwnership(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	owner := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	other := testhelpers.CreateResident(t, db, "bilal", models.RoleResident)
	admin := testhelpers.CreateResident(t, db, "office", models.RoleAdmin)

	payment, err := services.CreatePayment(db, owner, services.PaymentInput{
		Amount: amount(t, "99.99"), PaymentMethod: strPtr("card"),
	})
	require.NoError(t, err)

	_, err = services.UpdatePayment(db, other, payment.ID, services.PaymentInput{PaymentMethod: strPtr("cash")})
	requireKind(t, err, types.KindPermissionDenied)

	updated, err := services.UpdatePayment(db, owner, payment.ID, services.PaymentInput{Amount: amount(t, "100")})
	require.NoError(t, err)
	require.True(t, updated.Amount.Equal(decimal.NewFromInt(100)))

	requireKind(t, services.DeletePayment(db, other, payment.ID), types.KindPermissionDenied)
	require.NoError(t, services.DeletePayment(db, admin, payment.ID))
	requireKind(t, services.DeletePayment(db, admin, payment.ID), types.KindNotFound)
}
