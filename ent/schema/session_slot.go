package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SessionSlot points at the currently signed-in email. The repo keeps at
// most one row; sign-out deletes it without touching the UserRecord.
type SessionSlot struct {
	ent.Schema
}

func (SessionSlot) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
