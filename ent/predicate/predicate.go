// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// SessionSlot is the predicate function for sessionslot builders.
type SessionSlot func(*sql.Selector)

// UserRecord is the predicate function for userrecord builders.
type UserRecord func(*sql.Selector)
