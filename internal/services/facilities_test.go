package services_test

import (
	"testing"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/testhelpers"
	"github.com/digisamuday/samuday/internal/types"
	"github.com/stretchr/testify/require"
)

func TestCreateFacilityRequiresAdmin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	resident := testhelpers.CreateResident(t, db, "asha", models.RoleResident)

	_, err := services.CreateFacility(db, resident, services.FacilityInput{Name: strPtr("Pool")})
	requireKind(t, err, types.KindPermissionDenied)

	_, err = services.CreateFacility(db, nil, services.FacilityInput{Name: strPtr("Pool")})
	requireKind(t, err, types.KindNotAuthenticated)

	var count int64
	require.NoError(t, db.Model(&models.Facility{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestFacilityLifecycle(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	admin := testhelpers.CreateResident(t, db, "office", models.RoleAdmin)
	resident := testhelpers.CreateResident(t, db, "asha", models.RoleResident)

	_, err := services.CreateFacility(db, admin, services.FacilityInput{})
	requireKind(t, err, types.KindValidation)

	facility, err := services.CreateFacility(db, admin, services.FacilityInput{
		Name: strPtr(" Pool "), Description: strPtr("Rooftop"),
	})
	require.NoError(t, err)
	require.Equal(t, "Pool", facility.Name)
	require.Equal(t, models.FacilityAvailable, facility.AvailabilityStatus)

	listed, err := services.ListFacilities(db, resident)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	_, err = services.UpdateFacility(db, admin, facility.ID, services.FacilityInput{AvailabilityStatus: strPtr("closed")})
	requireKind(t, err, types.KindValidation)

	updated, err := services.UpdateFacility(db, admin, facility.ID, services.FacilityInput{AvailabilityStatus: strPtr("booked")})
	require.NoError(t, err)
	require.Equal(t, models.FacilityBooked, updated.AvailabilityStatus)
	require.Equal(t, "Rooftop", updated.Description)

	_, err = services.UpdateFacility(db, resident, facility.ID, services.FacilityInput{Name: strPtr("Mine")})
	requireKind(t, err, types.KindPermissionDenied)

	require.NoError(t, services.DeleteFacility(db, admin, facility.ID))
	_, err = services.GetFacility(db, resident, facility.ID)
	requireKind(t, err, types.KindNotFound)
}
