package specification

import "gorm.io/gorm"

// Specification is a composable query constraint. Repositories apply all
// given specs in order; tenant scoping is expressed as a spec like any other.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
