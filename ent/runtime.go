// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/wesboland/bolandindex/ent/schema"
	"github.com/wesboland/bolandindex/ent/sessionslot"
	"github.com/wesboland/bolandindex/ent/userrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	sessionslotFields := schema.SessionSlot{}.Fields()
	_ = sessionslotFields
	// sessionslotDescEmail is the schema descriptor for email field.
	sessionslotDescEmail := sessionslotFields[0].Descriptor()
	// sessionslot.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	sessionslot.EmailValidator = sessionslotDescEmail.Validators[0].(func(string) error)
	// sessionslotDescCreatedAt is the schema descriptor for created_at field.
	sessionslotDescCreatedAt := sessionslotFields[1].Descriptor()
	// sessionslot.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionslot.DefaultCreatedAt = sessionslotDescCreatedAt.Default.(func() time.Time)
	userrecordFields := schema.UserRecord{}.Fields()
	_ = userrecordFields
	// userrecordDescEmail is the schema descriptor for email field.
	userrecordDescEmail := userrecordFields[0].Descriptor()
	// userrecord.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	userrecord.EmailValidator = userrecordDescEmail.Validators[0].(func(string) error)
	// userrecordDescCreatedAt is the schema descriptor for created_at field.
	userrecordDescCreatedAt := userrecordFields[2].Descriptor()
	// userrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	userrecord.DefaultCreatedAt = userrecordDescCreatedAt.Default.(func() time.Time)
	// userrecordDescUpdatedAt is the schema descriptor for updated_at field.
	userrecordDescUpdatedAt := userrecordFields[3].Descriptor()
	// userrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userrecord.DefaultUpdatedAt = userrecordDescUpdatedAt.Default.(func() time.Time)
	// userrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userrecord.UpdateDefaultUpdatedAt = userrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
