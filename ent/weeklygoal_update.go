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
	"github.com/abhisek/fika/ent/predicate"
	"github.com/abhisek/fika/ent/weeklygoal"
)

// WeeklyGoalUpdate is the builder for updating WeeklyGoal entities.
type WeeklyGoalUpdate struct {
	config
	hooks    []Hook
	mutation *WeeklyGoalMutation
}

// Where appends a list predicates to the WeeklyGoalUpdate builder.
func (_u *WeeklyGoalUpdate) Where(ps ...predicate.WeeklyGoal) *WeeklyGoalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WeeklyGoalUpdate) SetUpdatedAt(v time.Time) *WeeklyGoalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTargetXp sets the "target_xp" field.
func (_u *WeeklyGoalUpdate) SetTargetXp(v int) *WeeklyGoalUpdate {
	_u.mutation.ResetTargetXp()
	_u.mutation.SetTargetXp(v)
	return _u
}

// SetNillableTargetXp sets the "target_xp" field if the given value is not nil.
func (_u *WeeklyGoalUpdate) SetNillableTargetXp(v *int) *WeeklyGoalUpdate {
	if v != nil {
		_u.SetTargetXp(*v)
	}
	return _u
}

// AddTargetXp adds value to the "target_xp" field.
func (_u *WeeklyGoalUpdate) AddTargetXp(v int) *WeeklyGoalUpdate {
	_u.mutation.AddTargetXp(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *WeeklyGoalUpdate) SetXpEarned(v int) *WeeklyGoalUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *WeeklyGoalUpdate) SetNillableXpEarned(v *int) *WeeklyGoalUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *WeeklyGoalUpdate) AddXpEarned(v int) *WeeklyGoalUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetTopicsCompleted sets the "topics_completed" field.
func (_u *WeeklyGoalUpdate) SetTopicsCompleted(v int) *WeeklyGoalUpdate {
	_u.mutation.ResetTopicsCompleted()
	_u.mutation.SetTopicsCompleted(v)
	return _u
}

// SetNillableTopicsCompleted sets the "topics_completed" field if the given value is not nil.
func (_u *WeeklyGoalUpdate) SetNillableTopicsCompleted(v *int) *WeeklyGoalUpdate {
	if v != nil {
		_u.SetTopicsCompleted(*v)
	}
	return _u
}

// AddTopicsCompleted adds value to the "topics_completed" field.
func (_u *WeeklyGoalUpdate) AddTopicsCompleted(v int) *WeeklyGoalUpdate {
	_u.mutation.AddTopicsCompleted(v)
	return _u
}

// Mutation returns the WeeklyGoalMutation object of the builder.
func (_u *WeeklyGoalUpdate) Mutation() *WeeklyGoalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WeeklyGoalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeeklyGoalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WeeklyGoalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeeklyGoalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WeeklyGoalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := weeklygoal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeeklyGoalUpdate) check() error {
	if v, ok := _u.mutation.TargetXp(); ok {
		if err := weeklygoal.TargetXpValidator(v); err != nil {
			return &ValidationError{Name: "target_xp", err: fmt.Errorf(`ent: validator failed for field "WeeklyGoal.target_xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpEarned(); ok {
		if err := weeklygoal.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "WeeklyGoal.xp_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicsCompleted(); ok {
		if err := weeklygoal.TopicsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "topics_completed", err: fmt.Errorf(`ent: validator failed for field "WeeklyGoal.topics_completed": %w`, err)}
		}
	}
	return nil
}

func (_u *WeeklyGoalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weeklygoal.Table, weeklygoal.Columns, sqlgraph.NewFieldSpec(weeklygoal.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(weeklygoal.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TargetXp(); ok {
		_spec.SetField(weeklygoal.FieldTargetXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetXp(); ok {
		_spec.AddField(weeklygoal.FieldTargetXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(weeklygoal.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(weeklygoal.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicsCompleted(); ok {
		_spec.SetField(weeklygoal.FieldTopicsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicsCompleted(); ok {
		_spec.AddField(weeklygoal.FieldTopicsCompleted, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weeklygoal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WeeklyGoalUpdateOne is the builder for updating a single WeeklyGoal entity.
type WeeklyGoalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WeeklyGoalMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WeeklyGoalUpdateOne) SetUpdatedAt(v time.Time) *WeeklyGoalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTargetXp sets the "target_xp" field.
func (_u *WeeklyGoalUpdateOne) SetTargetXp(v int) *WeeklyGoalUpdateOne {
	_u.mutation.ResetTargetXp()
	_u.mutation.SetTargetXp(v)
	return _u
}

// SetNillableTargetXp sets the "target_xp" field if the given value is not nil.
func (_u *WeeklyGoalUpdateOne) SetNillableTargetXp(v *int) *WeeklyGoalUpdateOne {
	if v != nil {
		_u.SetTargetXp(*v)
	}
	return _u
}

// AddTargetXp adds value to the "target_xp" field.
func (_u *WeeklyGoalUpdateOne) AddTargetXp(v int) *WeeklyGoalUpdateOne {
	_u.mutation.AddTargetXp(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *WeeklyGoalUpdateOne) SetXpEarned(v int) *WeeklyGoalUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *WeeklyGoalUpdateOne) SetNillableXpEarned(v *int) *WeeklyGoalUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *WeeklyGoalUpdateOne) AddXpEarned(v int) *WeeklyGoalUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetTopicsCompleted sets the "topics_completed" field.
func (_u *WeeklyGoalUpdateOne) SetTopicsCompleted(v int) *WeeklyGoalUpdateOne {
	_u.mutation.ResetTopicsCompleted()
	_u.mutation.SetTopicsCompleted(v)
	return _u
}

// SetNillableTopicsCompleted sets the "topics_completed" field if the given value is not nil.
func (_u *WeeklyGoalUpdateOne) SetNillableTopicsCompleted(v *int) *WeeklyGoalUpdateOne {
	if v != nil {
		_u.SetTopicsCompleted(*v)
	}
	return _u
}

// AddTopicsCompleted adds value to the "topics_completed" field.
func (_u *WeeklyGoalUpdateOne) AddTopicsCompleted(v int) *WeeklyGoalUpdateOne {
	_u.mutation.AddTopicsCompleted(v)
	return _u
}

// Mutation returns the WeeklyGoalMutation object of the builder.
func (_u *WeeklyGoalUpdateOne) Mutation() *WeeklyGoalMutation {
	return _u.mutation
}

// Where appends a list predicates to the WeeklyGoalUpdate builder.
func (_u *WeeklyGoalUpdateOne) Where(ps ...predicate.WeeklyGoal) *WeeklyGoalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WeeklyGoalUpdateOne) Select(field string, fields ...string) *WeeklyGoalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WeeklyGoal entity.
func (_u *WeeklyGoalUpdateOne) Save(ctx context.Context) (*WeeklyGoal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeeklyGoalUpdateOne) SaveX(ctx context.Context) *WeeklyGoal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WeeklyGoalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeeklyGoalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WeeklyGoalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := weeklygoal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeeklyGoalUpdateOne) check() error {
	if v, ok := _u.mutation.TargetXp(); ok {
		if err := weeklygoal.TargetXpValidator(v); err != nil {
			return &ValidationError{Name: "target_xp", err: fmt.Errorf(`ent: validator failed for field "WeeklyGoal.target_xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpEarned(); ok {
		if err := weeklygoal.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "WeeklyGoal.xp_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicsCompleted(); ok {
		if err := weeklygoal.TopicsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "topics_completed", err: fmt.Errorf(`ent: validator failed for field "WeeklyGoal.topics_completed": %w`, err)}
		}
	}
	return nil
}

func (_u *WeeklyGoalUpdateOne) sqlSave(ctx context.Context) (_node *WeeklyGoal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weeklygoal.Table, weeklygoal.Columns, sqlgraph.NewFieldSpec(weeklygoal.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WeeklyGoal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weeklygoal.FieldID)
		for _, f := range fields {
			if !weeklygoal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != weeklygoal.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(weeklygoal.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TargetXp(); ok {
		_spec.SetField(weeklygoal.FieldTargetXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetXp(); ok {
		_spec.AddField(weeklygoal.FieldTargetXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(weeklygoal.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(weeklygoal.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicsCompleted(); ok {
		_spec.SetField(weeklygoal.FieldTopicsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicsCompleted(); ok {
		_spec.AddField(weeklygoal.FieldTopicsCompleted, field.TypeInt, value)
	}
	_node = &WeeklyGoal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weeklygoal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
