package services_test

import (
	"testing"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/testhelpers"
	"github.com/digisamuday/samuday/internal/types"
	"github.com/stretchr/testify/require"
)

func TestResidentAdministration(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	admin := testhelpers.CreateResident(t, db, "office", models.RoleAdmin)
	resident := testhelpers.CreateResident(t, db, "asha", models.RoleResident)

	_, err := services.ListResidents(db, resident)
	requireKind(t, err, types.KindPermissionDenied)

	listed, err := services.ListResidents(db, admin)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	created, err := services.CreateResident(db, admin, services.RegisterInput{
		Username: "gate", Password: "pass", PhoneNumber: "5550123", ApartmentNo: "Lobby", Role: "security",
	}, testhelpers.TestBcryptCost)
	require.NoError(t, err)
	require.Equal(t, models.RoleSecurity, created.Role)

	_, err = services.UpdateResident(db, admin, resident.ID, services.ResidentInput{Username: strPtr("gate")})
	requireKind(t, err, types.KindValidation)

	_, err = services.UpdateResident(db, admin, resident.ID, services.ResidentInput{Role: strPtr("owner")})
	requireKind(t, err, types.KindValidation)

	updated, err := services.UpdateResident(db, admin, resident.ID, services.ResidentInput{
		Role: strPtr("admin"), Status: strPtr("inactive"), ApartmentNo: strPtr("B-202"),
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, updated.Role)
	require.Equal(t, models.ResidentInactive, updated.Status)
	require.Equal(t, "B-202", updated.ApartmentNo)

	_, err = services.GetResident(db, admin, 9999)
	requireKind(t, err, types.KindNotFound)
}

func TestUpdateResidentKeepsNoticeAuthorsAdmin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	office := testhelpers.CreateResident(t, db, "office", models.RoleAdmin)
	deputy := testhelpers.CreateResident(t, db, "deputy", models.RoleAdmin)

	_, err := services.PostNotice(db, office, services.NoticeInput{Title: strPtr("Water cut"), Content: strPtr("Tank cleaning on Sunday")})
	require.NoError(t, err)

	_, err = services.UpdateResident(db, deputy, office.ID, services.ResidentInput{Role: strPtr("resident")})
	requireKind(t, err, types.KindValidation)
	require.Equal(t, "Cannot change the role of an account that has posted notices.", err.(*types.CustomError).Fields["role"])

	stored, err := services.GetResident(db, deputy, office.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, stored.Role)

	// an admin without notices can still be demoted
	demoted, err := services.UpdateResident(db, office, deputy.ID, services.ResidentInput{Role: strPtr("security")})
	require.NoError(t, err)
	require.Equal(t, models.RoleSecurity, demoted.Role)
}

func TestDeleteResidentCascades(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	admin := testhelpers.CreateResident(t, db, "office", models.RoleAdmin)
	guard := testhelpers.CreateResident(t, db, "gate", models.RoleSecurity)
	resident := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	testhelpers.Login(t, db, "asha")

	_, _, err := services.LogVisitorEntry(db, guard, services.VisitorEntryInput{
		Name: "Ravi", PhoneNumber: "5550111", ResidentID: types.FlexID(resident.ID),
	})
	require.NoError(t, err)
	_, err = services.FileComplaint(db, resident, services.ComplaintInput{Title: strPtr("Tap"), Description: strPtr("Leaks")})
	require.NoError(t, err)
	_, err = services.CreatePayment(db, resident, services.PaymentInput{Amount: amount(t, "10"), PaymentMethod: strPtr("cash")})
	require.NoError(t, err)
	_, err = services.CreateBooking(db, resident, services.BookingInput{})
	require.NoError(t, err)

	requireKind(t, services.DeleteResident(db, guard, resident.ID), types.KindPermissionDenied)
	require.NoError(t, services.DeleteResident(db, admin, resident.ID))

	for _, model := range []interface{}{
		&models.Visitor{}, &models.SecurityLog{}, &models.Complaint{},
		&models.Payment{}, &models.FacilityBooking{}, &models.AuthToken{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		require.Zero(t, count, "%T rows survived", model)
	}

	requireKind(t, services.DeleteResident(db, admin, resident.ID), types.KindNotFound)
}
