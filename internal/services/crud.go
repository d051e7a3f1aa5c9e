// crud.go
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
	"errors"
	"fmt"

	"github.com/digisamuday/samuday/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// findByID loads one row of T with the given associations preloaded
func findByID[T any](db *gorm.DB, entity string, id uint, preloads ...string) (*T, error) {
	var row T
	query := db
	for _, assoc := range preloads {
		query = query.Preload(assoc)
	}
	if err := query.First(&row, id).Error; err != nil {
		return nil, storeError(entity, err)
	}
	return &row, nil
}

// lockByID loads one row of T for update inside a transaction
func lockByID[T any](tx *gorm.DB, entity string, id uint) (*T, error) {
	var row T
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&row, id).Error; err != nil {
		return nil, storeError(entity, err)
	}
	return &row, nil
}

// listAll loads every row of T in the given order
func listAll[T any](db *gorm.DB, order string, preloads ...string) ([]T, error) {
	rows := make([]T, 0)
	query := db
	for _, assoc := range preloads {
		query = query.Preload(assoc)
	}
	if order != "" {
		query = query.Order(order)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, types.InternalError(err)
	}
	return rows, nil
}

// deleteByID removes one row of T, reporting NotFound when nothing matched
func deleteByID[T any](db *gorm.DB, entity string, id uint) error {
	var row T
	result := db.Delete(&row, id)
	if result.Error != nil {
		return types.InternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return types.NotFound(entity)
	}
	return nil
}

// storeError maps gorm errors onto the service error taxonomy
func storeError(entity string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.NotFound(entity)
	}
	var ce *types.CustomError
	if errors.As(err, &ce) {
		return ce
	}
	return types.InternalError(fmt.Errorf("%s: %w", entity, err))
}
