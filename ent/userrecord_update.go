// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/wesboland/bolandindex/ent/predicate"
	"github.com/wesboland/bolandindex/ent/schema"
	"github.com/wesboland/bolandindex/ent/userrecord"
)

// UserRecordUpdate is the builder for updating UserRecord entities.
type UserRecordUpdate struct {
	config
	hooks    []Hook
	mutation *UserRecordMutation
}

// Where appends a list predicates to the UserRecordUpdate builder.
func (_u *UserRecordUpdate) Where(ps ...predicate.UserRecord) *UserRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserRecordUpdate) SetEmail(v string) *UserRecordUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserRecordUpdate) SetNillableEmail(v *string) *UserRecordUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetHistory sets the "history" field.
func (_u *UserRecordUpdate) SetHistory(v []schema.SavedScoreData) *UserRecordUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *UserRecordUpdate) AppendHistory(v []schema.SavedScoreData) *UserRecordUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *UserRecordUpdate) ClearHistory() *UserRecordUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserRecordUpdate) SetUpdatedAt(v time.Time) *UserRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserRecordMutation object of the builder.
func (_u *UserRecordUpdate) Mutation() *UserRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserRecordUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := userrecord.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "UserRecord.email": %w`, err)}
		}
	}
	return nil
}

func (_u *UserRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userrecord.Table, userrecord.Columns, sqlgraph.NewFieldSpec(userrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(userrecord.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(userrecord.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userrecord.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(userrecord.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserRecordUpdateOne is the builder for updating a single UserRecord entity.
type UserRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserRecordMutation
}

// SetEmail sets the "email" field.
func (_u *UserRecordUpdateOne) SetEmail(v string) *UserRecordUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserRecordUpdateOne) SetNillableEmail(v *string) *UserRecordUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetHistory sets the "history" field.
func (_u *UserRecordUpdateOne) SetHistory(v []schema.SavedScoreData) *UserRecordUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *UserRecordUpdateOne) AppendHistory(v []schema.SavedScoreData) *UserRecordUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *UserRecordUpdateOne) ClearHistory() *UserRecordUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserRecordUpdateOne) SetUpdatedAt(v time.Time) *UserRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserRecordMutation object of the builder.
func (_u *UserRecordUpdateOne) Mutation() *UserRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserRecordUpdate builder.
func (_u *UserRecordUpdateOne) Where(ps ...predicate.UserRecord) *UserRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserRecordUpdateOne) Select(field string, fields ...string) *UserRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserRecord entity.
func (_u *UserRecordUpdateOne) Save(ctx context.Context) (*UserRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserRecordUpdateOne) SaveX(ctx context.Context) *UserRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := userrecord.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "UserRecord.email": %w`, err)}
		}
	}
	return nil
}

func (_u *UserRecordUpdateOne) sqlSave(ctx context.Context) (_node *UserRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userrecord.Table, userrecord.Columns, sqlgraph.NewFieldSpec(userrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userrecord.FieldID)
		for _, f := range fields {
			if !userrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(userrecord.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(userrecord.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userrecord.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(userrecord.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
