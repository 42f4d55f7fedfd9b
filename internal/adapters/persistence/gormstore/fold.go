package gormstore

import (
	"database/sql/driver"
	"strings"

	gosqlite "github.com/glebarez/go-sqlite"
	"gorm.io/gorm"
)

// unicodeLower is registered on every SQLite connection. The built-in
// LOWER only folds ASCII letters there.
const unicodeLower = "unicode_lower"

func init() {
	gosqlite.MustRegisterDeterministicScalarFunction(unicodeLower, 1, foldValue)
}

func foldValue(_ *gosqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// lowerFunc is the SQL function that lowercases text the same way
// strings.ToLower does on db's dialect.
func lowerFunc(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return unicodeLower
	}

	return "LOWER"
}
