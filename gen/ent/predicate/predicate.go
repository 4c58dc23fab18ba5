// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// Scoresheet is the predicate function for scoresheet builders.
type Scoresheet func(*sql.Selector)

// SoldierResult is the predicate function for soldierresult builders.
type SoldierResult func(*sql.Selector)
