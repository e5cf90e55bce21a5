// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/fika/ent/predicate"
	"github.com/abhisek/fika/ent/weeklygoal"
)

// WeeklyGoalDelete is the builder for deleting a WeeklyGoal entity.
type WeeklyGoalDelete struct {
	config
	hooks    []Hook
	mutation *WeeklyGoalMutation
}

// Where appends a list predicates to the WeeklyGoalDelete builder.
func (_d *WeeklyGoalDelete) Where(ps ...predicate.WeeklyGoal) *WeeklyGoalDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WeeklyGoalDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WeeklyGoalDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WeeklyGoalDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(weeklygoal.Table, sqlgraph.NewFieldSpec(weeklygoal.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// WeeklyGoalDeleteOne is the builder for deleting a single WeeklyGoal entity.
type WeeklyGoalDeleteOne struct {
	_d *WeeklyGoalDelete
}

// Where appends a list predicates to the WeeklyGoalDelete builder.
func (_d *WeeklyGoalDeleteOne) Where(ps ...predicate.WeeklyGoal) *WeeklyGoalDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WeeklyGoalDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{weeklygoal.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WeeklyGoalDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
