package services_test

import (
	"testing"
	"time"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/testhelpers"
	"github.com/digisamuday/samuday/internal/types"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingDefaults(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	resident := testhelpers.CreateResident(t, db, "asha", models.RoleResident)

	booking, err := services.CreateBooking(db, resident, services.BookingInput{})
	require.NoError(t, err)
	require.Equal(t, models.DefaultFacilityName, booking.FacilityName)
	require.Equal(t, models.BookingPending, booking.Status)
	require.Equal(t, resident.ID, booking.ResidentID)
	require.False(t, booking.StartTime.IsZero())
	require.Nil(t, booking.EndTime)

	stored, err := services.GetBooking(db, resident, booking.ID)
	require.NoError(t, err)
	require.Equal(t, "asha", stored.Resident.Username)
}

func TestCreateBookingValidation(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	resident := testhelpers.CreateResident(t, db, "asha", models.RoleResident)

	start := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	_, err := services.CreateBooking(db, resident, services.BookingInput{StartTime: &start, EndTime: &end})
	requireKind(t, err, types.KindValidation)
	require.Contains(t, err.(*types.CustomError).Fields, "end_time")

	_, err = services.CreateBooking(db, nil, services.BookingInput{})
	requireKind(t, err, types.KindNotAuthenticated)
}

func TestBookingApproval(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	resident := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	admin := testhelpers.CreateResident(t, db, "office", models.RoleAdmin)

	start := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	booking, err := services.CreateBooking(db, resident, services.BookingInput{
		FacilityName: strPtr("Pool"), StartTime: &start, EndTime: &end,
	})
	require.NoError(t, err)

	_, err = services.SetBookingStatus(db, resident, booking.ID, models.BookingApproved)
	requireKind(t, err, types.KindPermissionDenied)

	approved, err := services.SetBookingStatus(db, admin, booking.ID, models.BookingApproved)
	require.NoError(t, err)
	require.Equal(t, models.BookingApproved, approved.Status)

	rejected, err := services.SetBookingStatus(db, admin, booking.ID, models.BookingRejected)
	require.NoError(t, err)
	require.Equal(t, models.BookingRejected, rejected.Status)

	_, err = services.SetBookingStatus(db, admin, 9999, models.BookingApproved)
	requireKind(t, err, types.KindNotFound)

	activity, err := services.ListActivity(db, admin, 0)
	require.NoError(t, err)
	require.Len(t, activity, 2)
	require.Equal(t, services.ActionBookingStatus, activity[0].Action)
	require.Equal(t, "office", activity[0].Actor.Username)
}

func TestBookingOwnership(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	owner := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	other := testhelpers.CreateResident(t, db, "bilal", models.RoleResident)
	admin := testhelpers.CreateResident(t, db, "office", models.RoleAdmin)

	booking, err := services.CreateBooking(db, owner, services.BookingInput{FacilityName: strPtr("Gym")})
	require.NoError(t, err)

	_, err = services.UpdateBooking(db, other, booking.ID, services.BookingInput{FacilityName: strPtr("Pool")})
	requireKind(t, err, types.KindPermissionDenied)

	updated, err := services.UpdateBooking(db, owner, booking.ID, services.BookingInput{FacilityName: strPtr("Pool")})
	require.NoError(t, err)
	require.Equal(t, "Pool", updated.FacilityName)
	require.Equal(t, models.BookingPending, updated.Status)

	_, err = services.UpdateBooking(db, owner, booking.ID, services.BookingInput{FacilityName: strPtr("")})
	requireKind(t, err, types.KindValidation)

	requireKind(t, services.DeleteBooking(db, other, booking.ID), types.KindPermissionDenied)
	require.NoError(t, services.DeleteBooking(db, admin, booking.ID))
	requireKind(t, services.DeleteBooking(db, admin, booking.ID), types.KindNotFound)
}
