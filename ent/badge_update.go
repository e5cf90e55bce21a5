// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/fika/ent/badge"
	"github.com/abhisek/fika/ent/predicate"
)

// BadgeUpdate is the builder for updating Badge entities.
type BadgeUpdate struct {
	config
	hooks    []Hook
	mutation *BadgeMutation
}

// Where appends a list predicates to the BadgeUpdate builder.
func (_u *BadgeUpdate) Where(ps ...predicate.Badge) *BadgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIcon sets the "icon" field.
func (_u *BadgeUpdate) SetIcon(v string) *BadgeUpdate {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableIcon(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BadgeUpdate) SetName(v string) *BadgeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableName(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BadgeUpdate) SetDescription(v string) *BadgeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableDescription(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *BadgeUpdate) SetCategory(v badge.Category) *BadgeUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableCategory(v *badge.Category) *BadgeUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *BadgeUpdate) SetSortOrder(v int) *BadgeUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableSortOrder(v *int) *BadgeUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *BadgeUpdate) AddSortOrder(v int) *BadgeUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// Mutation returns the BadgeMutation object of the builder.
func (_u *BadgeUpdate) Mutation() *BadgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BadgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BadgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeUpdate) check() error {
	if v, ok := _u.mutation.Icon(); ok {
		if err := badge.IconValidator(v); err != nil {
			return &ValidationError{Name: "icon", err: fmt.Errorf(`ent: validator failed for field "Badge.icon": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := badge.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Badge.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := badge.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Badge.category": %w`, err)}
		}
	}
	return nil
}

func (_u *BadgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badge.Table, badge.Columns, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(badge.FieldIcon, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(badge.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(badge.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(badge.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(badge.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(badge.FieldSortOrder, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BadgeUpdateOne is the builder for updating a single Badge entity.
type BadgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BadgeMutation
}

// SetIcon sets the "icon" field.
func (_u *BadgeUpdateOne) SetIcon(v string) *BadgeUpdateOne {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableIcon(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BadgeUpdateOne) SetName(v string) *BadgeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableName(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BadgeUpdateOne) SetDescription(v string) *BadgeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableDescription(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *BadgeUpdateOne) SetCategory(v badge.Category) *BadgeUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableCategory(v *badge.Category) *BadgeUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *BadgeUpdateOne) SetSortOrder(v int) *BadgeUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableSortOrder(v *int) *BadgeUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *BadgeUpdateOne) AddSortOrder(v int) *BadgeUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// Mutation returns the BadgeMutation object of the builder.
func (_u *BadgeUpdateOne) Mutation() *BadgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the BadgeUpdate builder.
func (_u *BadgeUpdateOne) Where(ps ...predicate.Badge) *BadgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BadgeUpdateOne) Select(field string, fields ...string) *BadgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Badge entity.
func (_u *BadgeUpdateOne) Save(ctx context.Context) (*Badge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeUpdateOne) SaveX(ctx context.Context) *Badge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BadgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeUpdateOne) check() error {
	if v, ok := _u.mutation.Icon(); ok {
		if err := badge.IconValidator(v); err != nil {
			return &ValidationError{Name: "icon", err: fmt.Errorf(`ent: validator failed for field "Badge.icon": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := badge.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Badge.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := badge.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Badge.category": %w`, err)}
		}
	}
	return nil
}

func (_u *BadgeUpdateOne) sqlSave(ctx context.Context) (_node *Badge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badge.Table, badge.Columns, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Badge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, badge.FieldID)
		for _, f := range fields {
			if !badge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != badge.FieldID {
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
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(badge.FieldIcon, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(badge.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(badge.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(badge.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(badge.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(badge.FieldSortOrder, field.TypeInt, value)
	}
	_node = &Badge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
