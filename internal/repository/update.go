package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hbnb/internal/pkg/apperr"
)

// forUpdate locks the selected row until the surrounding transaction
// ends. SQLite ignores the clause; its single writer already serializes.
func forUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// writeBack stores every column of m over its existing row. It never
// inserts: a row removed since it was loaded reports NotFound.
func writeBack(tx *gorm.DB, m any, entity string) error {
	res := tx.Model(m).Select("*").Omit(clause.Associations).Updates(m)
	if res.Error != nil {
		return translateError(res.Error, entity)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("%s not found", entity)
	}
	return nil
}
