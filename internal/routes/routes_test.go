// routes_test.go
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

package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/testhelpers"
	"github.com/digisamuday/samuday/internal/types"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupApp mounts the API on a fresh in-memory database
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	cfg := testhelpers.NewTestConfig(t)
	db := testhelpers.SetupTestDBWithConfig(t, cfg)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	Register(app, cfg, db)
	return app, db
}

func do(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

type errorBody struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Ok      bool              `json:"ok"`
	Type    string            `json:"type"`
	Fields  map[string]string `json:"fields"`
}

func expectError(t *testing.T, resp *http.Response, status int, kind string) errorBody {
	t.Helper()
	testhelpers.AssertStatus(t, resp, status)
	var body errorBody
	testhelpers.ParseJSON(t, resp, &body)
	require.False(t, body.Ok)
	require.Equal(t, status, body.Status)
	require.Equal(t, kind, body.Type)
	return body
}

func idPath(prefix string, id uint, suffix string) string {
	return prefix + strconv.FormatUint(uint64(id), 10) + suffix
}

func TestAuthFlow(t *testing.T) {
	app, _ := setupApp(t)

	resp := do(t, app, "POST", "/api/register/", "", fiber.Map{
		"username": "asha", "password": "pa55word", "phone_number": "5550100",
		"apartment_no": "A-101", "role": "resident", "email": "asha@example.com",
	})
	testhelpers.AssertStatus(t, resp, http.StatusCreated)
	var registered map[string]string
	testhelpers.ParseJSON(t, resp, &registered)
	require.Equal(t, "User registered successfully", registered["message"])

	body := expectError(t, do(t, app, "POST", "/api/register/", "", fiber.Map{
		"username": "asha", "password": "x", "phone_number": "1", "apartment_no": "B", "role": "resident",
	}), http.StatusBadRequest, types.KindValidation)
	require.Contains(t, body.Fields, "username")

	expectError(t, do(t, app, "POST", "/api/login/", "", fiber.Map{"username": "asha", "password": "nope"}),
		http.StatusBadRequest, types.KindInvalidCredentials)

	var login struct {
		Message string `json:"message"`
		Role    string `json:"role"`
		Token   string `json:"token"`
	}
	resp = do(t, app, "POST", "/api/login/", "", fiber.Map{"username": "asha", "password": "pa55word"})
	testhelpers.AssertStatus(t, resp, http.StatusOK)
	testhelpers.ParseJSON(t, resp, &login)
	require.Equal(t, "resident", login.Role)
	require.Len(t, login.Token, 40)

	var again struct {
		Token string `json:"token"`
	}
	resp = do(t, app, "POST", "/api/login/", "", fiber.Map{"username": "asha", "password": "pa55word"})
	testhelpers.ParseJSON(t, resp, &again)
	require.Equal(t, login.Token, again.Token)

	var profile map[string]interface{}
	resp = do(t, app, "GET", "/api/user-profile/", login.Token, nil)
	testhelpers.AssertStatus(t, resp, http.StatusOK)
	testhelpers.ParseJSON(t, resp, &profile)
	require.Equal(t, "asha", profile["username"])
	require.Equal(t, "resident", profile["role"])
	require.NotContains(t, profile, "password")

	resp = do(t, app, "PATCH", "/api/update-profile/", login.Token, fiber.Map{"first_name": "Asha"})
	testhelpers.AssertStatus(t, resp, http.StatusOK)

	resp = do(t, app, "POST", "/api/logout/", login.Token, nil)
	testhelpers.AssertStatus(t, resp, http.StatusOK)

	expectError(t, do(t, app, "GET", "/api/user-profile/", login.Token, nil),
		http.StatusUnauthorized, types.KindNotAuthenticated)
	expectError(t, do(t, app, "GET", "/api/user-profile/", "", nil),
		http.StatusUnauthorized, types.KindNotAuthenticated)
}

func TestVisitorEntryAndCheckout(t *testing.T) {
	app, db := setupApp(t)
	host := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	testhelpers.CreateResident(t, db, "gate", models.RoleSecurity)
	guardToken := testhelpers.Login(t, db, "gate")
	residentToken := testhelpers.Login(t, db, "asha")

	entry := fiber.Map{"name": "Ravi", "phone_number": "5550111", "resident_id": strconv.FormatUint(uint64(host.ID), 10)}

	expectError(t, do(t, app, "POST", "/api/visitors/", "", entry), http.StatusUnauthorized, types.KindNotAuthenticated)
	expectError(t, do(t, app, "POST", "/api/visitors/", residentToken, entry), http.StatusForbidden, types.KindPermissionDenied)

	body := expectError(t, do(t, app, "POST", "/api/visitors/", guardToken, fiber.Map{}),
		http.StatusBadRequest, types.KindMissingFields)
	require.Len(t, body.Fields, 3)

	expectError(t, do(t, app, "POST", "/api/visitors/", guardToken, fiber.Map{
		"name": "Ravi", "phone_number": "5550111", "resident_id": 9999,
	}), http.StatusBadRequest, types.KindResidentNotFound)

	var created struct {
		Message     string `json:"message"`
		SecurityLog struct {
			ID        uint    `json:"id"`
			GuardName string  `json:"guard_name"`
			ExitTime  *string `json:"exit_time"`
		} `json:"security_log"`
		Visitor struct {
			Resident uint `json:"resident"`
		} `json:"visitor"`
	}
	resp := do(t, app, "POST", "/api/visitors/", guardToken, entry)
	testhelpers.AssertStatus(t, resp, http.StatusCreated)
	testhelpers.ParseJSON(t, resp, &created)
	require.Equal(t, "Visitor entry logged successfully.", created.Message)
	require.Equal(t, "gate", created.SecurityLog.GuardName)
	require.Nil(t, created.SecurityLog.ExitTime)
	require.Equal(t, host.ID, created.Visitor.Resident)

	checkout := idPath("/api/security-logs/", created.SecurityLog.ID, "/checkout/")
	var out struct {
		Message  string `json:"message"`
		ExitTime string `json:"exit_time"`
	}
	resp = do(t, app, "PATCH", checkout, guardToken, nil)
	testhelpers.AssertStatus(t, resp, http.StatusOK)
	testhelpers.ParseJSON(t, resp, &out)
	require.Equal(t, "Check-out successful", out.Message)
	require.NotEmpty(t, out.ExitTime)

	body = expectError(t, do(t, app, "PATCH", checkout, guardToken, nil), http.StatusBadRequest, types.KindAlreadyCheckedOut)
	require.Equal(t, "Visitor has already checked out.", body.Message)

	expectError(t, do(t, app, "PATCH", "/api/security-logs/9999/checkout/", guardToken, nil),
		http.StatusNotFound, types.KindNotFound)
}

func TestComplaintsOverHTTP(t *testing.T) {
	app, db := setupApp(t)
	testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	testhelpers.CreateResident(t, db, "bilal", models.RoleResident)
	testhelpers.CreateResident(t, db, "office", models.RoleAdmin)
	a := testhelpers.Login(t, db, "asha")
	b := testhelpers.Login(t, db, "bilal")
	admin := testhelpers.Login(t, db, "office")

	var complaint struct {
		ID           uint   `json:"id"`
		Status       string `json:"status"`
		ResidentName string `json:"resident_name"`
	}
	resp := do(t, app, "POST", "/api/complaints/", a, fiber.Map{"title": "Leak", "description": "Kitchen tap", "status": "resolved"})
	testhelpers.AssertStatus(t, resp, http.StatusCreated)
	testhelpers.ParseJSON(t, resp, &complaint)
	require.Equal(t, "open", complaint.Status)
	require.Equal(t, "asha", complaint.ResidentName)

	var listed []map[string]interface{}
	resp = do(t, app, "GET", "/api/complaints/", b, nil)
	testhelpers.AssertStatus(t, resp, http.StatusOK)
	testhelpers.ParseJSON(t, resp, &listed)
	require.Empty(t, listed)

	expectError(t, do(t, app, "GET", idPath("/api/complaints/", complaint.ID, "/"), b, nil),
		http.StatusNotFound, types.KindNotFound)

	status := idPath("/api/complaints/", complaint.ID, "/update-status/")
	expectError(t, do(t, app, "PATCH", status, a, fiber.Map{"status": "resolved"}),
		http.StatusForbidden, types.KindPermissionDenied)
	expectError(t, do(t, app, "PATCH", status, admin, fiber.Map{"status": "closed"}),
		http.StatusBadRequest, types.KindValidation)

	var updated map[string]string
	resp = do(t, app, "PATCH", idPath("/api/complaints/", complaint.ID, "/update_status/"), admin, fiber.Map{"status": "resolved"})
	testhelpers.AssertStatus(t, resp, http.StatusOK)
	testhelpers.ParseJSON(t, resp, &updated)
	require.Equal(t, "Complaint status updated", updated["message"])
	require.Equal(t, "resolved", updated["status"])

	resp = do(t, app, "DELETE", idPath("/api/complaints/", complaint.ID, "/"), admin, nil)
	testhelpers.AssertStatus(t, resp, http.StatusNoContent)
	testhelpers.AssertNoContent(t, resp)
}

func TestBookingsAndPayments(t *testing.T) {
	app, db := setupApp(t)
	testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	testhelpers.CreateResident(t, db, "office", models.RoleAdmin)
	resident := testhelpers.Login(t, db, "asha")
	admin := testhelpers.Login(t, db, "office")

	var booking struct {
		ID       uint   `json:"id"`
		Status   string `json:"status"`
		Resident string `json:"resident"`
		Facility string `json:"facility_name"`
	}
	resp := do(t, app, "POST", "/api/facility-bookings/", resident, fiber.Map{"status": "approved", "resident": 42})
	testhelpers.AssertStatus(t, resp, http.StatusCreated)
	testhelpers.ParseJSON(t, resp, &booking)
	require.Equal(t, "pending", booking.Status)
	require.Equal(t, "asha", booking.Resident)
	require.Equal(t, models.DefaultFacilityName, booking.Facility)

	expectError(t, do(t, app, "PATCH", idPath("/api/facility-bookings/", booking.ID, "/approve/"), resident, nil),
		http.StatusForbidden, types.KindPermissionDenied)

	var approved map[string]string
	resp = do(t, app, "PATCH", idPath("/api/facility-bookings/", booking.ID, "/approve/"), admin, nil)
	testhelpers.AssertStatus(t, resp, http.StatusOK)
	testhelpers.ParseJSON(t, resp, &approved)
	require.Equal(t, "Booking approved", approved["message"])

	var payment struct {
		ID            uint   `json:"id"`
		Amount        string `json:"amount"`
		PaymentStatus string `json:"payment_status"`
	}
	resp = do(t, app, "POST", "/api/payments/", resident, fiber.Map{"amount": 1500, "payment_method": "upi", "payment_status": "completed"})
	testhelpers.AssertStatus(t, resp, http.StatusCreated)
	testhelpers.ParseJSON(t, resp, &payment)
	require.Equal(t, "1500.00", payment.Amount)
	require.Equal(t, "pending", payment.PaymentStatus)

	approve := idPath("/api/payments/", payment.ID, "/approve_payment/")
	expectError(t, do(t, app, "PATCH", approve, admin, fiber.Map{"payment_status": "pending"}),
		http.StatusBadRequest, types.KindValidation)

	var settled map[string]string
	resp = do(t, app, "PATCH", approve, admin, fiber.Map{"payment_status": "completed"})
	testhelpers.AssertStatus(t, resp, http.StatusOK)
	testhelpers.ParseJSON(t, resp, &settled)
	require.Equal(t, "completed", settled["status"])
}

func TestFacilityCreateRequiresAdmin(t *testing.T) {
	app, db := setupApp(t)
	testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	testhelpers.CreateResident(t, db, "office", models.RoleAdmin)
	resident := testhelpers.Login(t, db, "asha")
	admin := testhelpers.Login(t, db, "office")

	expectError(t, do(t, app, "POST", "/api/facilities/", resident, fiber.Map{"name": "Pool"}),
		http.StatusForbidden, types.KindPermissionDenied)

	var count int64
	require.NoError(t, db.Model(&models.Facility{}).Count(&count).Error)
	require.Zero(t, count)

	resp := do(t, app, "POST", "/api/facilities/", admin, fiber.Map{"name": "Pool"})
	testhelpers.AssertStatus(t, resp, http.StatusCreated)

	var facilities []map[string]interface{}
	resp = do(t, app, "GET", "/api/facilities/", resident, nil)
	testhelpers.AssertStatus(t, resp, http.StatusOK)
	testhelpers.ParseJSON(t, resp, &facilities)
	require.Len(t, facilities, 1)
	require.Equal(t, "available", facilities[0]["availability_status"])
}

func TestReports(t *testing.T) {
	app, db := setupApp(t)
	testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	testhelpers.CreateResident(t, db, "office", models.RoleAdmin)
	resident := testhelpers.Login(t, db, "asha")
	admin := testhelpers.Login(t, db, "office")

	expectError(t, do(t, app, "GET", "/api/reports/complaints/", resident, nil),
		http.StatusForbidden, types.KindPermissionDenied)

	resp := do(t, app, "GET", "/api/reports/payments/", admin, nil)
	testhelpers.AssertStatus(t, resp, http.StatusOK)
	require.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	require.Equal(t, `attachment; filename="payments_report.csv"`, resp.Header.Get("Content-Disposition"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "Payment ID,Amount,Status,Resident,Date", strings.TrimSpace(string(body)))

	resp = do(t, app, "GET", "/api/reports/unknown/", admin, nil)
	testhelpers.AssertStatus(t, resp, http.StatusOK)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "Error,Invalid Report Type", strings.TrimSpace(string(body)))
}

func TestRoleGatedGroups(t *testing.T) {
	app, db := setupApp(t)
	testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	testhelpers.CreateResident(t, db, "gate", models.RoleSecurity)
	resident := testhelpers.Login(t, db, "asha")
	guard := testhelpers.Login(t, db, "gate")

	expectError(t, do(t, app, "GET", "/api/residents/", guard, nil), http.StatusForbidden, types.KindPermissionDenied)
	expectError(t, do(t, app, "GET", "/api/visitors/", resident, nil), http.StatusForbidden, types.KindPermissionDenied)
	expectError(t, do(t, app, "GET", "/api/security-logs/", resident, nil), http.StatusForbidden, types.KindPermissionDenied)
	expectError(t, do(t, app, "GET", "/api/activity/", guard, nil), http.StatusForbidden, types.KindPermissionDenied)

	resp := do(t, app, "GET", "/api/security-logs/", guard, nil)
	testhelpers.AssertStatus(t, resp, http.StatusOK)
}

func TestUnknownTokenAndRoute(t *testing.T) {
	app, _ := setupApp(t)

	expectError(t, do(t, app, "GET", "/api/notices/", "0123456789abcdef0123456789abcdef01234567", nil),
		http.StatusUnauthorized, types.KindNotAuthenticated)

	resp := do(t, app, "GET", "/api/nothing-here/", "", nil)
	testhelpers.AssertStatus(t, resp, http.StatusNotFound)

	resp = do(t, app, "GET", "/api/health/", "", nil)
	testhelpers.AssertStatus(t, resp, http.StatusOK)
	require.Equal(t, "1.0.0", resp.Header.Get("X-Api-Version"))
}
