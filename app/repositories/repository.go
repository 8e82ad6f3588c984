package repositories

import (
	"errors"

	"github.com/artesania/artesania-api/app/apperrors"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const mysqlDuplicateEntry = 1062

// translate maps driver errors onto the application taxonomy so callers
// never compare against gorm sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrConflict
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return apperrors.ErrConflict
	}
	return err
}

// forUpdate adds a row lock on dialects that support it. SQLite (tests) runs
// on a single connection, which serializes writers anyway.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "mysql" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}
