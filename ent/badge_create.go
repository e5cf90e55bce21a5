// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/fika/ent/badge"
)

// BadgeCreate is the builder for creating a Badge entity.
type BadgeCreate struct {
	config
	mutation *BadgeMutation
	hooks    []Hook
}

// SetBadgeID sets the "badge_id" field.
func (_c *BadgeCreate) SetBadgeID(v string) *BadgeCreate {
	_c.mutation.SetBadgeID(v)
	return _c
}

// SetIcon sets the "icon" field.
func (_c *BadgeCreate) SetIcon(v string) *BadgeCreate {
	_c.mutation.SetIcon(v)
	return _c
}

// SetName sets the "name" field.
func (_c *BadgeCreate) SetName(v string) *BadgeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *BadgeCreate) SetDescription(v string) *BadgeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *BadgeCreate) SetNillableDescription(v *string) *BadgeCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *BadgeCreate) SetCategory(v badge.Category) *BadgeCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *BadgeCreate) SetSortOrder(v int) *BadgeCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *BadgeCreate) SetNillableSortOrder(v *int) *BadgeCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// Mutation returns the BadgeMutation object of the builder.
func (_c *BadgeCreate) Mutation() *BadgeMutation {
	return _c.mutation
}

// Save creates the Badge in the database.
func (_c *BadgeCreate) Save(ctx context.Context) (*Badge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BadgeCreate) SaveX(ctx context.Context) *Badge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BadgeCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := badge.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := badge.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BadgeCreate) check() error {
	if _, ok := _c.mutation.BadgeID(); !ok {
		return &ValidationError{Name: "badge_id", err: errors.New(`ent: missing required field "Badge.badge_id"`)}
	}
	if v, ok := _c.mutation.BadgeID(); ok {
		if err := badge.BadgeIDValidator(v); err != nil {
			return &ValidationError{Name: "badge_id", err: fmt.Errorf(`ent: validator failed for field "Badge.badge_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Icon(); !ok {
		return &ValidationError{Name: "icon", err: errors.New(`ent: missing required field "Badge.icon"`)}
	}
	if v, ok := _c.mutation.Icon(); ok {
		if err := badge.IconValidator(v); err != nil {
			return &ValidationError{Name: "icon", err: fmt.Errorf(`ent: validator failed for field "Badge.icon": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Badge.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := badge.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Badge.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Badge.description"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Badge.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := badge.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Badge.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "Badge.sort_order"`)}
	}
	return nil
}

func (_c *BadgeCreate) sqlSave(ctx context.Context) (*Badge, error) {
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

func (_c *BadgeCreate) createSpec() (*Badge, *sqlgraph.CreateSpec) {
	var (
		_node = &Badge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(badge.Table, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.BadgeID(); ok {
		_spec.SetField(badge.FieldBadgeID, field.TypeString, value)
		_node.BadgeID = value
	}
	if value, ok := _c.mutation.Icon(); ok {
		_spec.SetField(badge.FieldIcon, field.TypeString, value)
		_node.Icon = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(badge.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(badge.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(badge.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(badge.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	return _node, _spec
}

// BadgeCreateBulk is the builder for creating many Badge entities in bulk.
type BadgeCreateBulk struct {
	config
	err      error
	builders []*BadgeCreate
}

// Save creates the Badge entities in the database.
func (_c *BadgeCreateBulk) Save(ctx context.Context) ([]*Badge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Badge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BadgeMutation)
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
func (_c *BadgeCreateBulk) SaveX(ctx context.Context) []*Badge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
