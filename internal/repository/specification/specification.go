package specification

import "gorm.io/gorm"

// Specification narrows or orders a repository query. Specifications are
// applied in the order given, so filters should come before Pagination.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
