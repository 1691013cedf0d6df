package scope

import "gorm.io/gorm"

// OrderByCreatedAsc is server arrival order. Client timestamps are never
// used for ordering.
func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}
