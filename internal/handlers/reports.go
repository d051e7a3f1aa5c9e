// reports.go
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

package handlers

import (
	"bytes"
	"fmt"

	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReportHandler serves the CSV exports
type ReportHandler struct {
	DB *gorm.DB
}

// Generate handles GET /api/reports/:type/
// @Summary Download a CSV report
// @Description An unknown report type yields a single error row
// @Tags Reports
// @Produce text/csv
// @Security TokenAuth
// @Param type path string true "complaints, payments or bookings"
// @Success 200 {file} file
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /reports/{type}/ [get]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	reportType := c.Params("type")

	var buf bytes.Buffer
	if err := services.GenerateReport(h.DB, currentUser(c), reportType, &buf); err != nil {
		return utils.HandleError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", reportType+"_report.csv"))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
