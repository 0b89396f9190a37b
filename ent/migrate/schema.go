// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SessionSlotsColumns holds the columns for the "session_slots" table.
	SessionSlotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionSlotsTable holds the schema information for the "session_slots" table.
	SessionSlotsTable = &schema.Table{
		Name:       "session_slots",
		Columns:    SessionSlotsColumns,
		PrimaryKey: []*schema.Column{SessionSlotsColumns[0]},
	}
	// UserRecordsColumns holds the columns for the "user_records" table.
	UserRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "history", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserRecordsTable holds the schema information for the "user_records" table.
	UserRecordsTable = &schema.Table{
		Name:       "user_records",
		Columns:    UserRecordsColumns,
		PrimaryKey: []*schema.Column{UserRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userrecord_email",
				Unique:  false,
				Columns: []*schema.Column{UserRecordsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SessionSlotsTable,
		UserRecordsTable,
	}
)

func init() {
}
