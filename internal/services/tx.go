package services

import "gorm.io/gorm"

// transact wraps fn in a database transaction. Unit tests without a live
// database swap this for a passthrough.
var transact = func(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}
