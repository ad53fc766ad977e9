package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a gorm handle whose statements run on tx. A nil tx returns db unchanged.
// The returned handle never mutates db.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil || db == nil {
		return db
	}

	bound := db.Session(&gorm.Session{Context: context.Background(), NewDB: true})
	bound.Statement.ConnPool = tx
	return bound
}
