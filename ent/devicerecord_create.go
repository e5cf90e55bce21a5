// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/fika/ent/devicerecord"
)

// DeviceRecordCreate is the builder for creating a DeviceRecord entity.
type DeviceRecordCreate struct {
	config
	mutation *DeviceRecordMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *DeviceRecordCreate) SetKey(v string) *DeviceRecordCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *DeviceRecordCreate) SetPayload(v []byte) *DeviceRecordCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DeviceRecordCreate) SetUpdatedAt(v time.Time) *DeviceRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DeviceRecordCreate) SetNillableUpdatedAt(v *time.Time) *DeviceRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the DeviceRecordMutation object of the builder.
func (_c *DeviceRecordCreate) Mutation() *DeviceRecordMutation {
	return _c.mutation
}

// Save creates the DeviceRecord in the database.
func (_c *DeviceRecordCreate) Save(ctx context.Context) (*DeviceRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeviceRecordCreate) SaveX(ctx context.Context) *DeviceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeviceRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeviceRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeviceRecordCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := devicerecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeviceRecordCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "DeviceRecord.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := devicerecord.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "DeviceRecord.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "DeviceRecord.payload"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DeviceRecord.updated_at"`)}
	}
	return nil
}

func (_c *DeviceRecordCreate) sqlSave(ctx context.Context) (*DeviceRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeviceRecordCreate) createSpec() (*DeviceRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &DeviceRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(devicerecord.Table, sqlgraph.NewFieldSpec(devicerecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(devicerecord.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(devicerecord.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(devicerecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DeviceRecordCreateBulk is the builder for creating many DeviceRecord entities in bulk.
type DeviceRecordCreateBulk struct {
	config
	err      error
	builders []*DeviceRecordCreate
}

// Save creates the DeviceRecord entities in the database.
func (_c *DeviceRecordCreateBulk) Save(ctx context.Context) ([]*DeviceRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeviceRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeviceRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DeviceRecordCreateBulk) SaveX(ctx context.Context) []*DeviceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeviceRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeviceRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
