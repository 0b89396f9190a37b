package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserRecord is the durable per-email record. One row per distinct email,
// replaced wholesale on every write.
type UserRecord struct {
	ent.Schema
}

// SavedScoreData is the serialized form of one completed attempt.
type SavedScoreData struct {
	ID     string         `json:"id"`
	Date   string         `json:"date"`
	Total  int            `json:"total"`
	Scores map[string]int `json:"scores"`
}

func (UserRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("Exact-match key; no normalization"),
		field.JSON("history", []SavedScoreData{}).
			Optional().
			Comment("Saved scores, newest first, capped at 10"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (UserRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}
