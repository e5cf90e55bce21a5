// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/fika/ent/devicerecord"
	"github.com/abhisek/fika/ent/predicate"
)

// DeviceRecordUpdate is the builder for updating DeviceRecord entities.
type DeviceRecordUpdate struct {
	config
	hooks    []Hook
	mutation *DeviceRecordMutation
}

// Where appends a list predicates to the DeviceRecordUpdate builder.
func (_u *DeviceRecordUpdate) Where(ps ...predicate.DeviceRecord) *DeviceRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *DeviceRecordUpdate) SetKey(v string) *DeviceRecordUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *DeviceRecordUpdate) SetNillableKey(v *string) *DeviceRecordUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DeviceRecordUpdate) SetPayload(v []byte) *DeviceRecordUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeviceRecordUpdate) SetUpdatedAt(v time.Time) *DeviceRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DeviceRecordMutation object of the builder.
func (_u *DeviceRecordUpdate) Mutation() *DeviceRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeviceRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeviceRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeviceRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeviceRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeviceRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := devicerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeviceRecordUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := devicerecord.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "DeviceRecord.key": %w`, err)}
		}
	}
	return nil
}

func (_u *DeviceRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(devicerecord.Table, devicerecord.Columns, sqlgraph.NewFieldSpec(devicerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(devicerecord.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(devicerecord.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(devicerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{devicerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeviceRecordUpdateOne is the builder for updating a single DeviceRecord entity.
type DeviceRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeviceRecordMutation
}

// SetKey sets the "key" field.
func (_u *DeviceRecordUpdateOne) SetKey(v string) *DeviceRecordUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *DeviceRecordUpdateOne) SetNillableKey(v *string) *DeviceRecordUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DeviceRecordUpdateOne) SetPayload(v []byte) *DeviceRecordUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeviceRecordUpdateOne) SetUpdatedAt(v time.Time) *DeviceRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DeviceRecordMutation object of the builder.
func (_u *DeviceRecordUpdateOne) Mutation() *DeviceRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeviceRecordUpdate builder.
func (_u *DeviceRecordUpdateOne) Where(ps ...predicate.DeviceRecord) *DeviceRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeviceRecordUpdateOne) Select(field string, fields ...string) *DeviceRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeviceRecord entity.
func (_u *DeviceRecordUpdateOne) Save(ctx context.Context) (*DeviceRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeviceRecordUpdateOne) SaveX(ctx context.Context) *DeviceRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeviceRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeviceRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeviceRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := devicerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeviceRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := devicerecord.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "DeviceRecord.key": %w`, err)}
		}
	}
	return nil
}

func (_u *DeviceRecordUpdateOne) sqlSave(ctx context.Context) (_node *DeviceRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(devicerecord.Table, devicerecord.Columns, sqlgraph.NewFieldSpec(devicerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeviceRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, devicerecord.FieldID)
		for _, f := range fields {
			if !devicerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != devicerecord.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(devicerecord.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(devicerecord.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(devicerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DeviceRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{devicerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
