// report_service.go
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

package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/policy"
	"github.com/digisamuday/samuday/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// Report types
const (
	ReportComplaints = "complaints"
	ReportPayments   = "payments"
	ReportBookings   = "bookings"
)

var (
	complaintReportHeader = []string{"Complaint ID", "Title", "Description", "Status", "Resident", "Created At"}
	paymentReportHeader   = []string{"Payment ID", "Amount", "Status", "Resident", "Date"}
	bookingReportHeader   = []string{"Booking ID", "Facility", "Start Time", "End Time", "Resident", "Status"}
	invalidReportRow      = []string{"Error", "Invalid Report Type"}
)

// GenerateReport writes every row of reportType to w as CSV.
// An unknown report type writes a single error row instead of failing.
func GenerateReport(db *gorm.DB, caller *models.Resident, reportType string, w io.Writer) error {
	if err := policy.IsAdmin(caller); err != nil {
		return err
	}

	writer := csv.NewWriter(w)

	var err error
	switch reportType {
	case ReportComplaints:
		err = writeComplaints(reportQuery(db, reportType), writer)
	case ReportPayments:
		err = writePayments(reportQuery(db, reportType), writer)
	case ReportBookings:
		err = writeBookings(reportQuery(db, reportType), writer)
	default:
		err = writer.Write(invalidReportRow)
	}
	if err != nil {
		return storeError("Report", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return types.InternalError(fmt.Errorf("failed to write %s report: %w", reportType, err))
	}
	return nil
}

// reportQuery tags report reads so they can be told apart in the database's query log.
// reportType must be one of the known constants since the comment is not escaped.
func reportQuery(db *gorm.DB, reportType string) *gorm.DB {
	return db.Clauses(hints.Comment("select", "report:"+reportType))
}

func writeComplaints(db *gorm.DB, w *csv.Writer) error {
	var rows []models.Complaint
	if err := db.Preload("Resident").Order("id").Find(&rows).Error; err != nil {
		return err
	}
	if err := w.Write(complaintReportHeader); err != nil {
		return err
	}
	for _, c := range rows {
		record := []string{
			formatID(c.ID), c.Title, c.Description, string(c.Status), username(c.Resident), formatTime(&c.CreatedAt),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writePayments(db *gorm.DB, w *csv.Writer) error {
	var rows []models.Payment
	if err := db.Preload("Resident").Order("id").Find(&rows).Error; err != nil {
		return err
	}
	if err := w.Write(paymentReportHeader); err != nil {
		return err
	}
	for _, p := range rows {
		record := []string{
			formatID(p.ID), p.Amount.StringFixed(2), string(p.PaymentStatus), username(p.Resident), formatTime(&p.PaymentDate),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeBookings(db *gorm.DB, w *csv.Writer) error {
	var rows []models.FacilityBooking
	if err := db.Preload("Resident").Order("id").Find(&rows).Error; err != nil {
		return err
	}
	if err := w.Write(bookingReportHeader); err != nil {
		return err
	}
	for _, b := range rows {
		record := []string{
			formatID(b.ID), b.FacilityName, formatTime(&b.StartTime), formatTime(b.EndTime), username(b.Resident), string(b.Status),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func username(r *models.Resident) string {
	if r == nil {
		return ""
	}
	return r.Username
}
