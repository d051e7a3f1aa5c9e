// predicates.go
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

// Package policy holds the authorization predicates and status transitions of the society service.
// Everything here is a pure function of the caller and the entity state; no store access.
package policy

import (
	"fmt"
	"strings"

	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/types"
)

// Predicate decides whether caller may perform an action. A nil caller is unauthenticated.
type Predicate func(caller *models.Resident) error

// IsAuthenticated passes for any resolved caller
func IsAuthenticated(caller *models.Resident) error {
	if caller == nil || caller.ID == 0 {
		return types.NotAuthenticated()
	}
	return nil
}

// HasRole passes when the caller is authenticated and holds role
func HasRole(role models.Role) Predicate {
	return func(caller *models.Resident) error {
		if err := IsAuthenticated(caller); err != nil {
			return err
		}
		if caller.Role != role {
			return types.PermissionDenied(fmt.Sprintf("This action requires the %s role.", role))
		}
		return nil
	}
}

var (
	// IsResident passes for residents
	IsResident = HasRole(models.RoleResident)
	// IsAdmin passes for admins
	IsAdmin = HasRole(models.RoleAdmin)
	// IsSecurity passes for security guards
	IsSecurity = HasRole(models.RoleSecurity)
)

// AnyRole passes when the caller holds at least one of roles
func AnyRole(roles ...models.Role) Predicate {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = role.String()
	}
	return func(caller *models.Resident) error {
		if err := IsAuthenticated(caller); err != nil {
			return err
		}
		for _, role := range roles {
			if caller.Role == role {
				return nil
			}
		}
		return types.PermissionDenied(fmt.Sprintf("This action requires one of the roles: %s.", strings.Join(names, ", ")))
	}
}

// OwnerOrAdmin passes for admins and for the resident who owns the row
func OwnerOrAdmin(ownerID uint) Predicate {
	return func(caller *models.Resident) error {
		if err := IsAuthenticated(caller); err != nil {
			return err
		}
		if caller.Role == models.RoleAdmin || caller.ID == ownerID {
			return nil
		}
		return types.PermissionDenied("You do not have permission to modify this record.")
	}
}

// All combines predicates with logical AND; the first failure is returned
func All(preds ...Predicate) Predicate {
	return func(caller *models.Resident) error {
		for _, pred := range preds {
			if err := pred(caller); err != nil {
				return err
			}
		}
		return nil
	}
}
