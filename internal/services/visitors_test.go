// visitors_test.go
//
// Residential society management data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of samuday.
// samuday is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// samuday is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with samuday.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services_test

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/testhelpers"
	"github.com/digisamuday/samuday/internal/types"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLogVisitorEntry(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	host := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	guard := testhelpers.CreateResident(t, db, "gate", models.RoleSecurity)

	var in services.VisitorEntryInput
	body := `{"name":"Ravi","phone_number":"5550111","vehicle_number":"KA01AB1234","resident_id":"` +
		strconv.FormatUint(uint64(host.ID), 10) + `"}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	visitor, entry, err := services.LogVisitorEntry(db, guard, in)
	require.NoError(t, err)
	require.Equal(t, host.ID, visitor.ResidentID)
	require.NotNil(t, visitor.VehicleNumber)
	require.Equal(t, "KA01AB1234", *visitor.VehicleNumber)
	require.Nil(t, visitor.CheckOut)
	require.Equal(t, visitor.ID, entry.VisitorID)
	require.Equal(t, "gate", entry.GuardName)
	require.Nil(t, entry.ExitTime)
	require.True(t, entry.EntryTime.Equal(visitor.CheckIn))

	var logs int64
	require.NoError(t, db.Model(&models.SecurityLog{}).Where("visitor_id = ?", visitor.ID).Count(&logs).Error)
	require.EqualValues(t, 1, logs)
}

func TestLogVisitorEntryErrors(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	resident := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	guard := testhelpers.CreateResident(t, db, "gate", models.RoleSecurity)

	_, _, err := services.LogVisitorEntry(db, resident, services.VisitorEntryInput{Name: "Ravi", PhoneNumber: "1", ResidentID: 1})
	requireKind(t, err, types.KindPermissionDenied)

	_, _, err = services.LogVisitorEntry(db, guard, services.VisitorEntryInput{})
	requireKind(t, err, types.KindMissingFields)
	fields := err.(*types.CustomError).Fields
	require.Len(t, fields, 3)
	require.Contains(t, fields, "resident_id")

	_, _, err = services.LogVisitorEntry(db, guard, services.VisitorEntryInput{
		Name: "Ravi", PhoneNumber: "5550111", ResidentID: 9999,
	})
	requireKind(t, err, types.KindResidentNotFound)

	// nothing is written when the host is missing
	var visitors, logs int64
	require.NoError(t, db.Model(&models.Visitor{}).Count(&visitors).Error)
	require.NoError(t, db.Model(&models.SecurityLog{}).Count(&logs).Error)
	require.Zero(t, visitors)
	require.Zero(t, logs)
}

func TestLogVisitorEntryRollsBackOnLogFailure(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	host := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	guard := testhelpers.CreateResident(t, db, "gate", models.RoleSecurity)

	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_security_logs", func(tx *gorm.DB) {
		if tx.Statement.Table == "security_logs" {
			tx.AddError(errors.New("disk full"))
		}
	}))

	_, _, err := services.LogVisitorEntry(db, guard, services.VisitorEntryInput{
		Name: "Ravi", PhoneNumber: "5550111", ResidentID: types.FlexID(host.ID),
	})
	requireKind(t, err, types.KindInternal)
	require.NotContains(t, err.(*types.CustomError).Message, "disk full")

	var visitors, logs int64
	require.NoError(t, db.Model(&models.Visitor{}).Count(&visitors).Error)
	require.NoError(t, db.Model(&models.SecurityLog{}).Count(&logs).Error)
	require.Zero(t, visitors)
	require.Zero(t, logs)
}

func TestCheckoutVisitorTwice(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	host := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	guard := testhelpers.CreateResident(t, db, "gate", models.RoleSecurity)

	visitor, entry, err := services.LogVisitorEntry(db, guard, services.VisitorEntryInput{
		Name: "Ravi", PhoneNumber: "5550111", ResidentID: types.FlexID(host.ID),
	})
	require.NoError(t, err)

	checkedOut, err := services.CheckoutVisitor(db, guard, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, checkedOut.ExitTime)
	first := *checkedOut.ExitTime

	_, err = services.CheckoutVisitor(db, guard, entry.ID)
	requireKind(t, err, types.KindAlreadyCheckedOut)

	var stored models.SecurityLog
	require.NoError(t, db.First(&stored, entry.ID).Error)
	require.NotNil(t, stored.ExitTime)
	require.True(t, first.Equal(*stored.ExitTime))

	var storedVisitor models.Visitor
	require.NoError(t, db.First(&storedVisitor, visitor.ID).Error)
	require.NotNil(t, storedVisitor.CheckOut)

	_, err = services.CheckoutVisitor(db, guard, 9999)
	requireKind(t, err, types.KindNotFound)
	_, err = services.CheckoutVisitor(db, nil, entry.ID)
	requireKind(t, err, types.KindNotAuthenticated)

	var activity int64
	require.NoError(t, db.Model(&models.ActivityLog{}).Where("action = ?", services.ActionCheckout).Count(&activity).Error)
	require.EqualValues(t, 1, activity)
}

func TestCheckoutVisitorLosesRace(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	host := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	guard := testhelpers.CreateResident(t, db, "gate", models.RoleSecurity)

	visitor, entry, err := services.LogVisitorEntry(db, guard, services.VisitorEntryInput{
		Name: "Ravi", PhoneNumber: "5550111", ResidentID: types.FlexID(host.ID),
	})
	require.NoError(t, err)

	// another guard checks the visitor out right after the log is read
	other := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	armed := true
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:concurrent_checkout", func(tx *gorm.DB) {
		if !armed || tx.Statement.Table != "security_logs" {
			return
		}
		armed = false
		err := tx.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE security_logs SET exit_time = ? WHERE id = ?", other, entry.ID).Error
		if err != nil {
			tx.AddError(err)
		}
	}))

	_, err = services.CheckoutVisitor(db, guard, entry.ID)
	requireKind(t, err, types.KindAlreadyCheckedOut)
	require.False(t, armed)

	var stored models.SecurityLog
	require.NoError(t, db.First(&stored, entry.ID).Error)
	require.NotNil(t, stored.ExitTime)
	require.True(t, other.Equal(*stored.ExitTime))

	// the losing checkout rolls back and leaves the visitor untouched
	var storedVisitor models.Visitor
	require.NoError(t, db.First(&storedVisitor, visitor.ID).Error)
	require.Nil(t, storedVisitor.CheckOut)

	var activity int64
	require.NoError(t, db.Model(&models.ActivityLog{}).Where("action = ?", services.ActionCheckout).Count(&activity).Error)
	require.Zero(t, activity)
}

func TestSecurityLogAccess(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	resident := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	guard := testhelpers.CreateResident(t, db, "gate", models.RoleSecurity)
	admin := testhelpers.CreateResident(t, db, "office", models.RoleAdmin)

	for i := 0; i < 2; i++ {
		_, _, err := services.LogVisitorEntry(db, guard, services.VisitorEntryInput{
			Name: "Ravi", PhoneNumber: "5550111", ResidentID: types.FlexID(resident.ID),
		})
		require.NoError(t, err)
	}

	logs, err := services.ListSecurityLogs(db, admin)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Greater(t, logs[0].ID, logs[1].ID)

	_, err = services.ListSecurityLogs(db, guard)
	require.NoError(t, err)

	_, err = services.ListSecurityLogs(db, resident)
	requireKind(t, err, types.KindPermissionDenied)

	_, err = services.GetSecurityLog(db, admin, 9999)
	requireKind(t, err, types.KindNotFound)
	require.Equal(t, "Visitor log not found", err.(*types.CustomError).Message)
}

func TestUpdateAndDeleteVisitor(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	host := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	guard := testhelpers.CreateResident(t, db, "gate", models.RoleSecurity)

	visitor, entry, err := services.LogVisitorEntry(db, guard, services.VisitorEntryInput{
		Name: "Ravi", PhoneNumber: "5550111", ResidentID: types.FlexID(host.ID),
	})
	require.NoError(t, err)

	earlier := visitor.CheckIn.Add(-time.Hour)
	_, err = services.UpdateVisitor(db, guard, visitor.ID, services.VisitorInput{CheckOut: &earlier})
	requireKind(t, err, types.KindValidation)

	missing := types.FlexID(9999)
	_, err = services.UpdateVisitor(db, guard, visitor.ID, services.VisitorInput{ResidentID: &missing})
	requireKind(t, err, types.KindValidation)
	require.Equal(t, "Resident not found.", err.(*types.CustomError).Fields["resident"])

	updated, err := services.UpdateVisitor(db, guard, visitor.ID, services.VisitorInput{Name: strPtr("Ravi Kumar")})
	require.NoError(t, err)
	require.Equal(t, "Ravi Kumar", updated.Name)

	require.NoError(t, services.DeleteVisitor(db, guard, visitor.ID))
	var logs int64
	require.NoError(t, db.Model(&models.SecurityLog{}).Where("id = ?", entry.ID).Count(&logs).Error)
	require.Zero(t, logs)
}
