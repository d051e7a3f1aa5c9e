// common.go
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
	"strconv"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/middleware"
	"github.com/digisamuday/samuday/internal/types"
	"github.com/gofiber/fiber/v2"
)

// parseID reads the :id route parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, types.NotFound("Resource")
	}
	return uint(id), nil
}

// parseBody decodes the JSON request body into target. An empty body leaves target untouched.
func parseBody(c *fiber.Ctx, target interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(target); err != nil {
		return types.ValidationError("Invalid input", map[string]string{"body": err.Error()})
	}
	return nil
}

// currentUser is the authenticated caller, or nil
func currentUser(c *fiber.Ctx) *models.Resident {
	return middleware.CurrentUser(c)
}
